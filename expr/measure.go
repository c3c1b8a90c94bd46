package expr

import (
	"sort"

	"github.com/xtgo/set"
)

// Histogram counts the nodes of an expression tree per kind
type Histogram struct {
	// Nodes is the total node count, Depth the length of the longest root-to-leaf path
	Nodes, Depth int

	Numbers, Variables         int
	Additions, Multiplications int
	Powers, Logarithms         int
}

func (h Histogram) Add(other Histogram) Histogram {
	return Histogram{
		Nodes:           h.Nodes + other.Nodes,
		Depth:           max(h.Depth, other.Depth),
		Numbers:         h.Numbers + other.Numbers,
		Variables:       h.Variables + other.Variables,
		Additions:       h.Additions + other.Additions,
		Multiplications: h.Multiplications + other.Multiplications,
		Powers:          h.Powers + other.Powers,
		Logarithms:      h.Logarithms + other.Logarithms,
	}
}

func Measure(e Expression) Histogram {
	var children Histogram
	for child := range e.Children() {
		children = children.Add(Measure(child))
	}
	res := children
	res.Nodes++
	res.Depth++
	switch e.(type) {
	case Integer, Real:
		res.Numbers++
	case Variable:
		res.Variables++
	case Addition:
		res.Additions++
	case Multiplication:
		res.Multiplications++
	case Power:
		res.Powers++
	case Logarithm:
		res.Logarithms++
	}
	return res
}

// Variables lists the distinct labels of the free variables of e, sorted
func Variables(e Expression) []string {
	var labels []string
	var collect func(Expression)
	collect = func(e Expression) {
		if v, ok := e.(Variable); ok {
			labels = append(labels, v.label)
			return
		}
		for child := range e.Children() {
			collect(child)
		}
	}
	collect(e)

	data := sort.StringSlice(labels)
	sort.Sort(data)
	return labels[:set.Uniq(data)]
}
