package rewrite

import (
	"math/big"

	"github.com/benbjohnson/immutable"
	"github.com/gitnlsn/ncas/expr"
)

var (
	// AdditiveCommonAddend merges addends that only differ by their Integer coefficient: 2a + 3a is 5a
	AdditiveCommonAddend = NewRule("additive-common-addend", additiveCommonAddend)

	// MultiplicativeCommonFactor merges factors sharing a base by adding their exponents: a * a^2 is a^3
	MultiplicativeCommonFactor = NewRule("multiplicative-common-factor", multiplicativeCommonFactor)
)

func additiveCommonAddend(e expr.Expression) []expr.Expression {
	sum, ok := e.(expr.Addition)
	if !ok {
		return nil
	}
	items := sum.Items()
	coefficients := immutable.NewSortedMap[expr.Expression, *big.Int](expr.Comparer{})
	for _, item := range items {
		coefficient, addend := splitCoefficient(item)
		if acc, ok := coefficients.Get(addend); ok {
			coefficient = new(big.Int).Add(acc, coefficient)
		}
		coefficients = coefficients.Set(addend, coefficient)
	}
	if coefficients.Len() == len(items) {
		return nil
	}

	var merged []expr.Expression
	itr := coefficients.Iterator()
	for !itr.Done() {
		addend, coefficient, _ := itr.Next()
		if coefficient.Sign() == 0 {
			continue
		}
		merged = append(merged, expr.NewMultiplication(expr.BigInt(coefficient), addend))
	}
	return single(expr.NewAddition(merged...))
}

// splitCoefficient separates the Integer coefficient of an addend from the rest of it
func splitCoefficient(e expr.Expression) (*big.Int, expr.Expression) {
	switch v := e.(type) {
	case expr.Integer:
		return v.Value(), expr.Int(1)
	case expr.Multiplication:
		coefficient := big.NewInt(1)
		var rest []expr.Expression
		for _, factor := range v.Items() {
			if i, ok := factor.(expr.Integer); ok {
				coefficient.Mul(coefficient, i.Value())
				continue
			}
			rest = append(rest, factor)
		}
		return coefficient, expr.NewMultiplication(rest...)
	default:
		return big.NewInt(1), e
	}
}

func multiplicativeCommonFactor(e expr.Expression) []expr.Expression {
	product, ok := e.(expr.Multiplication)
	if !ok {
		return nil
	}
	items := product.Items()
	exponents := immutable.NewSortedMap[expr.Expression, []expr.Expression](expr.Comparer{})
	for _, item := range items {
		base, exponent := splitExponent(item)
		acc, _ := exponents.Get(base)
		exponents = exponents.Set(base, append(acc, exponent))
	}
	if exponents.Len() == len(items) {
		return nil
	}

	var merged []expr.Expression
	itr := exponents.Iterator()
	for !itr.Done() {
		base, exps, _ := itr.Next()
		merged = append(merged, expr.NewPower(base, expr.NewAddition(exps...)))
	}
	return single(expr.NewMultiplication(merged...))
}

func splitExponent(e expr.Expression) (base, exponent expr.Expression) {
	if power, ok := e.(expr.Power); ok {
		return power.Base(), power.Exponent()
	}
	return e, expr.Int(1)
}
