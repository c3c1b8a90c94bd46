package expr

import (
	"math"
	"strconv"
	"strings"
)

func (i Integer) String() string {
	return i.big().String()
}

// String always shows a decimal point so that Real literals
// read differently from Integer ones
func (r Real) String() string {
	s := strconv.FormatFloat(r.value, 'g', -1, 64)
	if math.IsInf(r.value, 0) || math.IsNaN(r.value) {
		return s
	}
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func (v Variable) String() string {
	return v.label
}

func joinItems(items []Expression, sep string) string {
	if len(items) == 0 {
		return ""
	}
	sb := &strings.Builder{}
	sb.WriteByte('(')
	for i, item := range items {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(item.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func (a Addition) String() string {
	return joinItems(a.items, " + ")
}

func (m Multiplication) String() string {
	return joinItems(m.items, " * ")
}

func (p Power) String() string {
	return "(" + p.base.String() + " ^ " + p.exponent.String() + ")"
}

func (l Logarithm) String() string {
	return "log(" + l.argument.String() + ", " + l.base.String() + ")"
}
