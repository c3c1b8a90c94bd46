package expr_test

import (
	"math"
	"testing"

	. "github.com/gitnlsn/ncas/expr"
	"github.com/gitnlsn/ncas/ncaserr"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateLiterals(t *testing.T) {
	tests := []struct {
		expr     Expression
		expected float64
	}{
		{Add(Int(1), Float(0.5)), 1.5},
		{Div(Int(1), Int(4)), 0.25},
		{Div(Int(9), Int(6)), 1.5},
		{Pow(Int(2), Float(0.5)), math.Sqrt2},
		{Mul(Float(2), Int(3)), 6},
		{Log(Int(5), Int(5)), 1},
	}
	for _, tt := range tests {
		t.Run(tt.expr.String(), func(t *testing.T) {
			res, err := Evaluate(tt.expr)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, res, 1e-12)
		})
	}
}

func TestEvaluateFreeVariable(t *testing.T) {
	_, err := Evaluate(Mul(Int(2), Add(x, Int(1))))
	require.Error(t, err)

	var unevaluable UnevaluableError
	require.True(t, errors.As(err, &unevaluable))
	assertExpr(t, x, unevaluable.Expr)
	assert.Equal(t, ncaserr.Unevaluable, ncaserr.CodeOf(err))
}

func TestEvaluateWithBindings(t *testing.T) {
	bindings := Bindings{"x": 3, "y": 8}

	res, err := EvaluateWith(Pow(x, Int(2)), bindings)
	require.NoError(t, err)
	assert.Equal(t, 9.0, res)

	res, err = EvaluateWith(Log(Var("y"), Int(2)), bindings)
	require.NoError(t, err)
	assert.Equal(t, 3.0, res)

	_, err = EvaluateWith(Add(x, Var("z")), bindings)
	var unevaluable UnevaluableError
	require.True(t, errors.As(err, &unevaluable))
	assertExpr(t, Var("z"), unevaluable.Expr)
}
