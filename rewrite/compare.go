package rewrite

import (
	"cmp"
	"math"

	"github.com/gitnlsn/ncas/expr"
	"github.com/gitnlsn/ncas/internal/log"
)

var compareLogger = expr.ExprLogger(log.DefaultLogger).With("section", "compare")

// Compare decides the sign of a - b by simplifying the difference.
// The difference must reduce to an exact ratio of Integers or to a signed
// Real literal. Anything else, variable-free or not, is undefined and ok is false.
func Compare(a, b expr.Expression) (sign int, ok bool) {
	return defaultSimplifier.Compare(a, b)
}

func (s *Simplifier) Compare(a, b expr.Expression) (sign int, ok bool) {
	difference := s.Simplify(expr.NewSubtraction(a, b))
	if r, isRational := expr.AsRational(difference); isRational {
		return r.Sign(), true
	}
	sign, ok = realSign(difference)
	if !ok {
		compareLogger.Debug("undefined comparison", "lhs", a, "rhs", b, "difference", difference)
	}
	return sign, ok
}

// realSign reads the sign of a Real literal, or of a product of literals such
// as the (-1 * r) form a negative Real takes once constructed
func realSign(e expr.Expression) (int, bool) {
	switch v := e.(type) {
	case expr.Real:
		if math.IsNaN(v.Value()) {
			return 0, false
		}
		return cmp.Compare(v.Value(), 0), true
	case expr.Multiplication:
		sign := 1
		for _, item := range v.Items() {
			switch literal := item.(type) {
			case expr.Integer:
				sign *= literal.Value().Sign()
			case expr.Real:
				if math.IsNaN(literal.Value()) {
					return 0, false
				}
				sign *= cmp.Compare(literal.Value(), 0)
			default:
				return 0, false
			}
		}
		return sign, true
	default:
		return 0, false
	}
}

func Equal(a, b expr.Expression) bool {
	sign, ok := Compare(a, b)
	return ok && sign == 0
}

func NotEqual(a, b expr.Expression) bool {
	sign, ok := Compare(a, b)
	return ok && sign != 0
}

func Greater(a, b expr.Expression) bool {
	sign, ok := Compare(a, b)
	return ok && sign > 0
}

func Lesser(a, b expr.Expression) bool {
	sign, ok := Compare(a, b)
	return ok && sign < 0
}

func GreaterEqual(a, b expr.Expression) bool {
	sign, ok := Compare(a, b)
	return ok && sign >= 0
}

func LesserEqual(a, b expr.Expression) bool {
	sign, ok := Compare(a, b)
	return ok && sign <= 0
}
