package expr

import (
	"fmt"
	"math"

	"github.com/gitnlsn/ncas/ncaserr"
)

// Bindings assigns numeric values to variable labels
type Bindings map[string]float64

// UnevaluableError reports the sub-expression that blocked evaluation
type UnevaluableError struct {
	Expr Expression
}

func (e UnevaluableError) Error() string {
	return fmt.Sprintf("cannot evaluate '%s': no value is bound to it", e.Expr)
}

func (e UnevaluableError) Code() ncaserr.ErrCode { return ncaserr.Unevaluable }

// Evaluate reduces e to a float. It fails on the first free Variable
// met, returning an error that unwraps to UnevaluableError.
func Evaluate(e Expression) (float64, error) {
	return EvaluateWith(e, nil)
}

// EvaluateWith is Evaluate where variables found in bindings take their bound value
func EvaluateWith(e Expression, bindings Bindings) (float64, error) {
	res, unbound := evaluate(e, bindings)
	if unbound != nil {
		logger.Debug("evaluation blocked", "expr", e, "unbound", unbound)
		return math.NaN(), ncaserr.New(UnevaluableError{Expr: unbound})
	}
	return res, nil
}

// evaluate returns the offending sub-expression when e cannot be reduced
func evaluate(e Expression, bindings Bindings) (float64, Expression) {
	switch v := e.(type) {
	case Integer, Real:
		return literalFloat(v), nil
	case Variable:
		if value, ok := bindings[v.label]; ok {
			return value, nil
		}
		return 0, v
	case Addition:
		sum := 0.0
		for _, item := range v.items {
			res, unbound := evaluate(item, bindings)
			if unbound != nil {
				return 0, unbound
			}
			sum += res
		}
		return sum, nil
	case Multiplication:
		product := 1.0
		for _, item := range v.items {
			res, unbound := evaluate(item, bindings)
			if unbound != nil {
				return 0, unbound
			}
			product *= res
		}
		return product, nil
	case Power:
		base, unbound := evaluate(v.base, bindings)
		if unbound != nil {
			return 0, unbound
		}
		exponent, unbound := evaluate(v.exponent, bindings)
		if unbound != nil {
			return 0, unbound
		}
		return math.Pow(base, exponent), nil
	case Logarithm:
		argument, unbound := evaluate(v.argument, bindings)
		if unbound != nil {
			return 0, unbound
		}
		base, unbound := evaluate(v.base, bindings)
		if unbound != nil {
			return 0, unbound
		}
		return realLog(argument, base), nil
	default:
		panic(fmt.Sprintf("unexpected expression %T", e))
	}
}
