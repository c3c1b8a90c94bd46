package rewrite_test

import (
	"testing"

	. "github.com/gitnlsn/ncas/expr"
	"github.com/gitnlsn/ncas/rewrite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyOnce(t *testing.T, rule rewrite.Rule, e Expression) Expression {
	t.Helper()
	alternatives := rule.Apply(e)
	require.Len(t, alternatives, 1, "%s on %s", rule.Name(), e)
	return alternatives[0]
}

func TestAdditiveCommonAddend(t *testing.T) {
	assertExpr(t, Add(Mul(Int(5), a), b), applyOnce(t, rewrite.AdditiveCommonAddend, NewAddition(Mul(Int(2), a), b, Mul(Int(3), a))))
	assertExpr(t, Int(0), applyOnce(t, rewrite.AdditiveCommonAddend, Add(a, Neg(a))))
	assertExpr(t, Mul(Int(-2), c), applyOnce(t, rewrite.AdditiveCommonAddend, NewAddition(Neg(c), Neg(c))))

	assert.Empty(t, rewrite.AdditiveCommonAddend.Apply(Add(a, b)))
	assert.Empty(t, rewrite.AdditiveCommonAddend.Apply(Mul(a, b)))
}

func TestMultiplicativeCommonFactor(t *testing.T) {
	assertExpr(t, Pow(a, Int(3)), applyOnce(t, rewrite.MultiplicativeCommonFactor, Mul(a, Pow(a, Int(2)))))
	assertExpr(t, Int(1), applyOnce(t, rewrite.MultiplicativeCommonFactor, Mul(a, Pow(a, Int(-1)))))
	assertExpr(t, Mul(b, Pow(a, Add(c, d))), applyOnce(t, rewrite.MultiplicativeCommonFactor, NewMultiplication(Pow(a, c), b, Pow(a, d))))

	assert.Empty(t, rewrite.MultiplicativeCommonFactor.Apply(Mul(Int(2), a)))
}

func TestRationalRules(t *testing.T) {
	sum := NewAddition(Div(Int(1), Int(2)), a, Div(Int(1), Int(3)))
	assertExpr(t, Add(a, Div(Int(5), Int(6))), applyOnce(t, rewrite.RationalsAddition, sum))

	// a lone ratio has nothing to fold with
	assert.Empty(t, rewrite.RationalsAddition.Apply(Add(Div(Int(1), Int(2)), a)))
	assert.Empty(t, rewrite.RationalsMultiplication.Apply(Mul(Int(2), a)))

	product := Mul(Int(3), Pow(Int(2), Int(-1)))
	assertExpr(t, product, applyOnce(t, rewrite.RationalsMultiplication, product))
}

func TestInversePowerLog(t *testing.T) {
	sum := Add(a, b)
	assert.Empty(t, rewrite.InversePowerLog.Apply(Pow(sum, Log(c, d))))
	assert.Empty(t, rewrite.InversePowerLog.Apply(Log(Pow(c, d), sum)))
	assert.Empty(t, rewrite.InversePowerLog.Apply(sum))
	assert.Equal(t, "inverse-power-log", rewrite.InversePowerLog.Name())
}
