package expr_test

import (
	"testing"

	. "github.com/gitnlsn/ncas/expr"
	"github.com/stretchr/testify/assert"
)

func TestMeasure(t *testing.T) {
	y := Var("y")
	e := Add(x, Mul(Int(2), Pow(y, Int(3))))

	assert.Equal(t, Histogram{
		Nodes:           7,
		Depth:           4,
		Numbers:         2,
		Variables:       2,
		Additions:       1,
		Multiplications: 1,
		Powers:          1,
	}, Measure(e))

	assert.Equal(t, Histogram{Nodes: 1, Depth: 1, Numbers: 1}, Measure(Int(3)))
	assert.Equal(t, 1, Measure(Log(x, y)).Logarithms)
}

func TestVariables(t *testing.T) {
	e := NewAddition(Var("y"), x, Mul(x, Var("z")), Pow(Var("y"), Int(2)))
	assert.Equal(t, []string{"x", "y", "z"}, Variables(e))
	assert.Empty(t, Variables(Add(Int(1), Float(2))))
}
