package rewrite_test

import (
	"testing"

	. "github.com/gitnlsn/ncas/expr"
	"github.com/gitnlsn/ncas/rewrite"
	"github.com/stretchr/testify/assert"
)

func TestSimplify(t *testing.T) {
	tests := []struct {
		name     string
		input    Expression
		expected Expression
	}{
		{"square of doubled", Mul(Add(a, a), Add(a, a)), Mul(Int(4), Pow(a, Int(2)))},
		{"product of negations", Mul(Neg(a), Neg(a)), Pow(a, Int(2))},
		{"odd power of negation", Pow(Neg(a), Int(3)), Mul(Int(-1), Pow(a, Int(3)))},
		{"repeated addend", NewAddition(a, a, a, b), Add(Mul(Int(3), a), b)},
		{"cancelling terms", Add(Sub(Mul(Mul(Int(2), a), b), Mul(Mul(Int(2), a), b)), b), b},
		{"opposite products", Add(Neg(Mul(a, b)), Mul(a, b)), Int(0)},
		{"reciprocal ratios", Mul(Div(a, b), Div(b, a)), Int(1)},
		{"unit fractions", NewAddition(Div(Int(1), Int(2)), Div(Int(1), Int(3)), Div(Int(1), Int(6))), Int(1)},
		{"fraction sum", Add(Div(Int(1), Int(2)), Div(Int(1), Int(3))), Div(Int(5), Int(6))},
		{"power of log", Pow(Add(a, b), Log(Int(4), Add(a, b))), Int(4)},
		{"merged exponents", Mul(a, Pow(a, b)), Pow(a, Add(b, Int(1)))},
		{"opposite reals", Sub(Float(0.3), Float(0.3)), Int(0)},
		{"leaf", a, a},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertExpr(t, tt.expected, rewrite.Simplify(tt.input))
		})
	}
}

func TestSimplifyIsIdempotent(t *testing.T) {
	inputs := []Expression{
		Mul(Add(a, a), Add(a, a)),
		Pow(Add(a, b), Int(3)),
		Add(Pow(Add(a, b), Int(2)), Neg(Pow(Sub(a, b), Int(2)))),
	}
	for _, input := range inputs {
		t.Run(input.String(), func(t *testing.T) {
			once := rewrite.Simplify(input)
			assertExpr(t, once, rewrite.Simplify(once))
		})
	}
}

func TestDifferenceOfSquaresOfSums(t *testing.T) {
	// (a+b)^2 - (a-b)^2 = 4ab
	e := Sub(Pow(Add(a, b), Int(2)), Pow(Sub(a, b), Int(2)))
	assertExpr(t, NewMultiplication(Int(4), a, b), rewrite.Simplify(e))
}

func TestMaxPassesBoundsTheLoop(t *testing.T) {
	// merging the exponents leaves b + b for a second pass
	input := Mul(Pow(a, b), Pow(a, b))

	bounded := rewrite.NewSimplifier(rewrite.Config{MaxPasses: 1})
	assertExpr(t, Pow(a, NewAddition(b, b)), bounded.Simplify(input))

	assertExpr(t, Pow(a, Mul(Int(2), b)), rewrite.Simplify(input))
}

func TestCustomRules(t *testing.T) {
	simplifier := rewrite.NewSimplifier(rewrite.Config{
		Rules: map[Identity][]rewrite.Rule{},
	})
	input := NewAddition(a, a, b)
	assertExpr(t, input, simplifier.Simplify(input))
}

func TestSumTimesItsReciprocalIsDistributedFirst(t *testing.T) {
	// expansion runs before MultiplicativeCommonFactor can see (a + b) twice
	reciprocal := Pow(Add(a, b), Int(-1))
	simplified := rewrite.Simplify(Mul(Add(a, b), reciprocal))

	assertExpr(t, Add(Mul(a, reciprocal), Mul(b, reciprocal)), simplified)
	assert.False(t, Equal(Int(1), simplified))
}
