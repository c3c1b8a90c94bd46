package rewrite

import (
	"github.com/gitnlsn/ncas/expr"
	"github.com/gitnlsn/ncas/rational"
)

var (
	// RationalsAddition folds the exact ratios of a sum into one: 1/2 + 1/3 is 5/6
	RationalsAddition = NewRule("rationals-addition", rationalsAddition)

	// RationalsMultiplication folds the exact ratios of a product into one
	RationalsMultiplication = NewRule("rationals-multiplication", rationalsMultiplication)
)

func rationalsAddition(e expr.Expression) []expr.Expression {
	sum, ok := e.(expr.Addition)
	if !ok {
		return nil
	}
	return foldRationals(sum.Items(), rational.Rational.Add, rational.FromInt64(0, 1), expr.NewAddition)
}

func rationalsMultiplication(e expr.Expression) []expr.Expression {
	product, ok := e.(expr.Multiplication)
	if !ok {
		return nil
	}
	return foldRationals(product.Items(), rational.Rational.Mul, rational.FromInt64(1, 1), expr.NewMultiplication)
}

func foldRationals(
	items []expr.Expression,
	combine func(rational.Rational, rational.Rational) rational.Rational,
	acc rational.Rational,
	associate func(...expr.Expression) expr.Expression,
) []expr.Expression {
	var rest []expr.Expression
	folded := 0
	for _, item := range items {
		r, ok := expr.AsRational(item)
		if !ok {
			rest = append(rest, item)
			continue
		}
		acc = combine(acc, r)
		folded++
	}
	if folded < 2 {
		return nil
	}
	return single(associate(append(rest, expr.FromRational(acc))...))
}
