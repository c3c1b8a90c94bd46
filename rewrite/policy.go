package rewrite

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/gitnlsn/ncas/expr"
	"github.com/gitnlsn/ncas/util/hset"
	"github.com/hashicorp/go-set/v3"
)

// Policy picks one expression among the distinct alternatives a rule proposed
type Policy interface {
	Name() string
	// Pick is never called with an empty slice
	Pick(alternatives []expr.Expression) expr.Expression
}

var (
	_ Policy = MaxOrder{}
	_ Policy = SmallestMeasure{}
)

// MaxOrder picks the greatest alternative under expr.Compare
type MaxOrder struct{}

func (MaxOrder) Name() string { return "max-order" }

func (MaxOrder) Pick(alternatives []expr.Expression) expr.Expression {
	ordered := set.NewTreeSet[expr.Expression](expr.Compare)
	ordered.InsertSlice(alternatives)
	return ordered.Max()
}

// SmallestMeasure picks the alternative with the fewest nodes, then the least under expr.Compare
type SmallestMeasure struct{}

func (SmallestMeasure) Name() string { return "smallest" }

func (SmallestMeasure) Pick(alternatives []expr.Expression) expr.Expression {
	return slices.MinFunc(alternatives, func(a, b expr.Expression) int {
		if bySize := cmp.Compare(expr.Measure(a).Nodes, expr.Measure(b).Nodes); bySize != 0 {
			return bySize
		}
		return expr.Compare(a, b)
	})
}

// PolicyByName resolves the names accepted on the command line
func PolicyByName(name string) (Policy, error) {
	switch name {
	case "", MaxOrder{}.Name():
		return MaxOrder{}, nil
	case SmallestMeasure{}.Name():
		return SmallestMeasure{}, nil
	default:
		return nil, fmt.Errorf("unknown policy %q, expected %q or %q", name, MaxOrder{}.Name(), SmallestMeasure{}.Name())
	}
}

// distinctAlternatives applies rule to e and drops duplicates and no-op rewrites
func distinctAlternatives(rule Rule, e expr.Expression) []expr.Expression {
	distinct := hset.Empty[expr.Expression](expr.Hasher{})
	for _, alternative := range rule.Apply(e) {
		if expr.Equal(alternative, e) {
			continue
		}
		distinct.Add(alternative)
	}
	return slices.Collect(distinct.All())
}
