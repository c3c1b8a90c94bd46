package rewrite

import (
	"github.com/gitnlsn/ncas/expr"
	"github.com/gitnlsn/ncas/internal/log"
)

var expandLogger = expr.ExprLogger(log.DefaultLogger).With("section", "simplify.expand")

// powers of sums above this are left alone rather than multiplied out,
// (a + b)^n already yields 2^n terms before like terms are merged
const maxExpandedExponent = 16

var (
	// MultiplicativeDistributive turns a product with additive factors into a sum of products
	MultiplicativeDistributive = NewRule("multiplicative-distributive", multiplicativeDistributive)

	// PowerDistributive multiplies out integer powers of sums and raises each factor of a product
	PowerDistributive = NewRule("power-distributive", powerDistributive)
)

// Expand applies the expansion rules at the root of e, expands the children of
// the result and applies the root rules once more to the rebuilt node.
//
// This is a single structural pass, not a fixpoint.
func Expand(e expr.Expression) expr.Expression {
	if expr.IsLeaf(e) {
		return e
	}
	res := expandRoot(e)
	res = rebuild(res, Expand)
	res = expandRoot(res)
	if !expr.Equal(res, e) {
		expandLogger.Debug("expanded", "from", e, "to", res)
	}
	return res
}

// expandRoot calls the rule functions, the Rule values cannot be referenced
// here without an initialization cycle through PowerDistributive
func expandRoot(e expr.Expression) expr.Expression {
	for _, apply := range []func(expr.Expression) []expr.Expression{multiplicativeDistributive, powerDistributive} {
		if alternatives := apply(e); len(alternatives) > 0 {
			e = alternatives[0]
		}
	}
	return e
}

func multiplicativeDistributive(e expr.Expression) []expr.Expression {
	product, ok := e.(expr.Multiplication)
	if !ok {
		return nil
	}
	var sums, others []expr.Expression
	for _, factor := range product.Items() {
		if _, isSum := factor.(expr.Addition); isSum {
			sums = append(sums, factor)
		} else {
			others = append(others, factor)
		}
	}
	if len(sums) == 0 {
		return nil
	}
	acc := expr.NewMultiplication(others...)
	for _, sum := range sums {
		acc = distribute(acc, sum)
	}
	return single(acc)
}

// distribute multiplies left by right, spreading the product over whichever side is a sum
func distribute(left, right expr.Expression) expr.Expression {
	leftSum, leftIsSum := left.(expr.Addition)
	rightSum, rightIsSum := right.(expr.Addition)
	var terms []expr.Expression
	switch {
	case leftIsSum && rightIsSum:
		for _, l := range leftSum.Items() {
			for _, r := range rightSum.Items() {
				terms = append(terms, expr.NewMultiplication(l, r))
			}
		}
	case leftIsSum:
		for _, l := range leftSum.Items() {
			terms = append(terms, expr.NewMultiplication(l, right))
		}
	case rightIsSum:
		for _, r := range rightSum.Items() {
			terms = append(terms, expr.NewMultiplication(left, r))
		}
	default:
		return expr.NewMultiplication(left, right)
	}
	return expr.NewAddition(terms...)
}

func powerDistributive(e expr.Expression) []expr.Expression {
	power, ok := e.(expr.Power)
	if !ok {
		return nil
	}
	switch base := power.Base().(type) {
	case expr.Addition:
		if n, ok := smallInteger(power.Exponent()); ok {
			return single(expandIntegerPower(base, n))
		}
		if exponent, ok := power.Exponent().(expr.Multiplication); ok {
			var n int64
			var found bool
			var rest []expr.Expression
			for _, factor := range exponent.Items() {
				if k, ok := smallInteger(factor); ok && !found {
					n, found = k, true
					continue
				}
				rest = append(rest, factor)
			}
			if found {
				expanded := Expand(expr.NewPower(base, expr.Int(n)))
				return single(expr.NewPower(expanded, expr.NewMultiplication(rest...)))
			}
		}
	case expr.Multiplication:
		factors := base.Items()
		raised := make([]expr.Expression, len(factors))
		for i, factor := range factors {
			raised[i] = expr.NewPower(factor, power.Exponent())
		}
		return single(expr.NewMultiplication(raised...))
	}
	return nil
}

func expandIntegerPower(sum expr.Addition, n int64) expr.Expression {
	if n < 0 {
		return expr.NewPower(Expand(expr.NewPower(sum, expr.Int(-n))), expr.Int(-1))
	}
	factors := make([]expr.Expression, n)
	for i := range factors {
		factors[i] = sum
	}
	return Expand(expr.NewMultiplication(factors...))
}

// smallInteger matches an Integer literal whose magnitude can be multiplied out
func smallInteger(e expr.Expression) (int64, bool) {
	i, ok := e.(expr.Integer)
	if !ok {
		return 0, false
	}
	v := i.Value()
	if !v.IsInt64() {
		return 0, false
	}
	n := v.Int64()
	if n == 0 || n > maxExpandedExponent || n < -maxExpandedExponent {
		return 0, false
	}
	return n, true
}
