package expr

import (
	"github.com/gitnlsn/ncas/rational"
)

// AsRational extracts the exact ratio represented by e. Only an Integer, an
// Integer reciprocal d^-1 and a product made solely of those are ratios.
func AsRational(e Expression) (rational.Rational, bool) {
	switch v := e.(type) {
	case Integer:
		return rational.FromInt(v.big()), true
	case Power:
		if d, ok := integerReciprocal(v); ok {
			return rational.New(bigOne, d), true
		}
	case Multiplication:
		acc := rational.FromInt64(1, 1)
		for _, item := range v.items {
			if _, isProduct := item.(Multiplication); isProduct {
				return rational.Rational{}, false
			}
			r, ok := AsRational(item)
			if !ok {
				return rational.Rational{}, false
			}
			acc = acc.Mul(r)
		}
		return acc, true
	}
	return rational.Rational{}, false
}

// FromRational builds n or n * d^-1
func FromRational(r rational.Rational) Expression {
	if r.IsInt() {
		return integer(r.Num())
	}
	return NewDivision(integer(r.Num()), integer(r.Denom()))
}
