package expr

import (
	"math"
	"math/big"

	"github.com/gitnlsn/ncas/util"
)

// exact Integer powers are only computed below this exponent
const maxFoldedExponent = 1 << 16

// NewPower builds the canonical form of base raised to exponent.
//
// In order: x^1 is x, x^0 is 1, 0^x is 0, a^log(x, a) is x, (b^e1)^e2 is
// b^(e1*e2), literal powers are folded, and a product raises each of its
// factors. Integer powers stay exact: a negative Integer exponent yields
// (b^|e|)^-1 rather than a Real.
func NewPower(base, exponent Expression) Expression {
	switch {
	case IsOne(exponent):
		return base
	case IsZero(exponent):
		return Int(1)
	case IsZero(base):
		return base
	}
	if logarithm, ok := exponent.(Logarithm); ok && Equal(logarithm.base, base) {
		return logarithm.argument
	}
	if tower, ok := base.(Power); ok {
		return NewPower(tower.base, NewMultiplication(tower.exponent, exponent))
	}
	if folded, ok := foldPower(base, exponent); ok {
		return folded
	}
	if product, ok := base.(Multiplication); ok {
		return NewMultiplication(util.MapSlice(product.items, func(factor Expression) Expression {
			return NewPower(factor, exponent)
		})...)
	}
	return Power{base: base, exponent: exponent}
}

func foldPower(base, exponent Expression) (Expression, bool) {
	if b, ok := base.(Integer); ok {
		if e, ok := exponent.(Integer); ok {
			return foldIntegerPower(b.big(), e.big())
		}
	}
	if !IsLiteral(base) || !IsLiteral(exponent) {
		return nil, false
	}
	res := math.Pow(literalFloat(base), literalFloat(exponent))
	if math.IsNaN(res) || math.IsInf(res, 0) {
		return nil, false
	}
	return Float(res), true
}

func foldIntegerPower(base, exponent *big.Int) (Expression, bool) {
	abs := new(big.Int).Abs(exponent)
	if abs.Cmp(big.NewInt(maxFoldedExponent)) > 0 && new(big.Int).Abs(base).Cmp(bigOne) > 0 {
		return nil, false
	}
	magnitude := new(big.Int).Exp(base, abs, nil)
	if exponent.Sign() >= 0 || new(big.Int).Abs(magnitude).Cmp(bigOne) == 0 {
		return integer(magnitude), true
	}
	return Power{base: integer(magnitude), exponent: Int(-1)}, true
}

// NewLogarithm builds the canonical logarithm of argument in base.
//
// log(b^x, b) is x. Two Integers fold only when the result is an exact
// Integer, two Reals fold when the result is finite, and everything else
// stays symbolic.
func NewLogarithm(argument, base Expression) Expression {
	if power, ok := argument.(Power); ok && Equal(power.base, base) {
		return power.exponent
	}
	switch arg := argument.(type) {
	case Integer:
		if b, ok := base.(Integer); ok {
			if k, ok := exactIntegerLog(arg.big(), b.big()); ok {
				return Int(k)
			}
		}
	case Real:
		if b, ok := base.(Real); ok {
			res := realLog(arg.value, b.value)
			if !math.IsNaN(res) && !math.IsInf(res, 0) {
				return Float(res)
			}
		}
	}
	return Logarithm{argument: argument, base: base}
}

// exactIntegerLog finds k with base^k == x
func exactIntegerLog(x, base *big.Int) (int64, bool) {
	if x.Sign() <= 0 || base.Cmp(bigOne) <= 0 {
		return 0, false
	}
	power := big.NewInt(1)
	k := int64(0)
	for power.Cmp(x) < 0 {
		power.Mul(power, base)
		k++
	}
	return k, power.Cmp(x) == 0
}

func realLog(x, base float64) float64 {
	switch base {
	case 2:
		return math.Log2(x)
	case 10:
		return math.Log10(x)
	default:
		return math.Log(x) / math.Log(base)
	}
}

func literalFloat(e Expression) float64 {
	switch v := e.(type) {
	case Integer:
		f, _ := new(big.Float).SetInt(v.big()).Float64()
		return f
	case Real:
		return v.value
	default:
		panic("not a literal: " + e.String())
	}
}
