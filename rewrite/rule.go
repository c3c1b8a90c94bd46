// Package rewrite turns expressions into equivalent ones: Expand distributes
// products and integer powers over sums, and a Simplifier runs node-local
// rules bottom-up until a pass changes nothing.
package rewrite

import (
	"github.com/gitnlsn/ncas/expr"
	"github.com/gitnlsn/ncas/internal/log"
	"github.com/gitnlsn/ncas/util"
)

var logger = expr.ExprLogger(log.DefaultLogger).With("section", "simplify")

// Rule rewrites a single node without descending into its children.
// A rule that does not match returns no alternatives.
type Rule interface {
	Name() string
	Apply(e expr.Expression) []expr.Expression
}

// NewRule names apply as a Rule
func NewRule(name string, apply func(expr.Expression) []expr.Expression) Rule {
	return funcRule{name: name, apply: apply}
}

type funcRule struct {
	name  string
	apply func(expr.Expression) []expr.Expression
}

func (r funcRule) Name() string { return r.name }

func (r funcRule) Apply(e expr.Expression) []expr.Expression {
	return r.apply(e)
}

func single(e expr.Expression) []expr.Expression {
	return []expr.Expression{e}
}

// rebuild reconstructs e through the canonical constructors after mapping its children with f
func rebuild(e expr.Expression, f func(expr.Expression) expr.Expression) expr.Expression {
	switch v := e.(type) {
	case expr.Addition:
		return expr.NewAddition(util.MapSlice(v.Items(), f)...)
	case expr.Multiplication:
		return expr.NewMultiplication(util.MapSlice(v.Items(), f)...)
	case expr.Power:
		return expr.NewPower(f(v.Base()), f(v.Exponent()))
	case expr.Logarithm:
		return expr.NewLogarithm(f(v.Argument()), f(v.Base()))
	default:
		return e
	}
}
