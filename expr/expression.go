// Package expr holds the expression tree of the kernel: the closed set of node
// kinds, their canonical constructors, the total order used to place items of
// commutative nodes, and numeric evaluation.
//
// Expressions are immutable values. Every constructor and operator returns a
// new tree, and sub-trees may be shared freely between trees.
package expr

import (
	"iter"
	"math/big"
	"slices"
)

// Expression is one of Integer, Real, Variable, Addition, Multiplication,
// Power or Logarithm. The set is closed.
type Expression interface {
	Identity() Identity
	// Hash is consistent with Equal
	Hash() uint64
	// Children yields direct sub-expressions, in order
	Children() iter.Seq[Expression]
	String() string

	isExpression()
}

var (
	_ Expression = Integer{}
	_ Expression = Real{}
	_ Expression = Variable{}
	_ Expression = Addition{}
	_ Expression = Multiplication{}
	_ Expression = Power{}
	_ Expression = Logarithm{}
)

// Integer is an arbitrary-precision integer literal. The zero value is 0.
type Integer struct {
	value *big.Int
}

// Real is a 64-bit floating point literal
type Real struct {
	value float64
}

// Variable is a free symbol identified by its label
type Variable struct {
	label string
}

// Addition is a flattened, canonically ordered sum of at least two items
type Addition struct {
	items []Expression
}

// Multiplication is a flattened, canonically ordered product of at least two items
type Multiplication struct {
	items []Expression
}

// Power is base raised to exponent
type Power struct {
	base, exponent Expression
}

// Logarithm is the logarithm of argument in the given base
type Logarithm struct {
	argument, base Expression
}

func (Integer) isExpression()        {}
func (Real) isExpression()           {}
func (Variable) isExpression()       {}
func (Addition) isExpression()       {}
func (Multiplication) isExpression() {}
func (Power) isExpression()          {}
func (Logarithm) isExpression()      {}

func (Integer) Identity() Identity        { return IdentityNumber }
func (Real) Identity() Identity           { return IdentityNumber }
func (Variable) Identity() Identity       { return IdentityVariable }
func (Addition) Identity() Identity       { return IdentityAddition }
func (Multiplication) Identity() Identity { return IdentityMultiplication }
func (Power) Identity() Identity          { return IdentityPower }
func (Logarithm) Identity() Identity      { return IdentityLogarithm }

func Int(v int64) Expression {
	return Integer{value: big.NewInt(v)}
}

// BigInt copies v into an Integer literal
func BigInt(v *big.Int) Expression {
	return Integer{value: new(big.Int).Set(v)}
}

func Float(v float64) Expression {
	return Real{value: v}
}

func Var(label string) Expression {
	return Variable{label: label}
}

// integer wraps v without copying, v must not be modified afterwards
func integer(v *big.Int) Integer {
	return Integer{value: v}
}

func (i Integer) big() *big.Int {
	if i.value == nil {
		return new(big.Int)
	}
	return i.value
}

// Value returns a copy of the literal
func (i Integer) Value() *big.Int {
	return new(big.Int).Set(i.big())
}

func (r Real) Value() float64 {
	return r.value
}

func (v Variable) Label() string {
	return v.label
}

// Items returns a copy of the canonically ordered addends
func (a Addition) Items() []Expression {
	return slices.Clone(a.items)
}

// Items returns a copy of the canonically ordered factors
func (m Multiplication) Items() []Expression {
	return slices.Clone(m.items)
}

func (p Power) Base() Expression     { return p.base }
func (p Power) Exponent() Expression { return p.exponent }

func (l Logarithm) Argument() Expression { return l.argument }
func (l Logarithm) Base() Expression     { return l.base }

func noChildren(func(Expression) bool) {}

func (Integer) Children() iter.Seq[Expression]  { return noChildren }
func (Real) Children() iter.Seq[Expression]     { return noChildren }
func (Variable) Children() iter.Seq[Expression] { return noChildren }

func (a Addition) Children() iter.Seq[Expression] {
	return slices.Values(a.items)
}

func (m Multiplication) Children() iter.Seq[Expression] {
	return slices.Values(m.items)
}

func (p Power) Children() iter.Seq[Expression] {
	return slices.Values([]Expression{p.base, p.exponent})
}

func (l Logarithm) Children() iter.Seq[Expression] {
	return slices.Values([]Expression{l.argument, l.base})
}

// IsLeaf reports whether e has no sub-expressions
func IsLeaf(e Expression) bool {
	switch e.(type) {
	case Integer, Real, Variable:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether e is an Integer or Real
func IsLiteral(e Expression) bool {
	return e.Identity() == IdentityNumber
}

func IsZero(e Expression) bool {
	switch v := e.(type) {
	case Integer:
		return v.big().Sign() == 0
	case Real:
		return v.value == 0
	default:
		return false
	}
}

func IsOne(e Expression) bool {
	switch v := e.(type) {
	case Integer:
		return v.big().IsInt64() && v.big().Int64() == 1
	case Real:
		return v.value == 1
	default:
		return false
	}
}

// isInteger reports whether e is the Integer literal n
func isInteger(e Expression, n int64) bool {
	i, ok := e.(Integer)
	return ok && i.big().IsInt64() && i.big().Int64() == n
}
