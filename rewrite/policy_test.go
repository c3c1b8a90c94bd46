package rewrite_test

import (
	"testing"

	. "github.com/gitnlsn/ncas/expr"
	"github.com/gitnlsn/ncas/rewrite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// respell proposes fixed rewrites of any sum, including duplicates and the sum itself
var respell = rewrite.NewRule("respell", func(e Expression) []Expression {
	if _, ok := e.(Addition); !ok {
		return nil
	}
	return []Expression{e, Pow(a, Int(2)), Mul(Int(3), a), Pow(a, Int(2))}
})

func TestPolicies(t *testing.T) {
	alternatives := []Expression{Add(a, b), Mul(Int(3), a), Pow(a, Int(2)), Add(a, Mul(Int(2), b))}

	assertExpr(t, Add(a, Mul(Int(2), b)), rewrite.MaxOrder{}.Pick(alternatives))
	assertExpr(t, Pow(a, Int(2)), rewrite.SmallestMeasure{}.Pick(alternatives))
}

func TestSmallestMeasurePrefersFewerNodes(t *testing.T) {
	picked := rewrite.SmallestMeasure{}.Pick([]Expression{NewAddition(a, b, c), Mul(Int(3), a), Pow(Add(a, b), Int(2))})
	assertExpr(t, Mul(Int(3), a), picked)
}

func TestSimplifierUsesPolicy(t *testing.T) {
	rules := map[Identity][]rewrite.Rule{IdentityAddition: {respell}}
	tests := []struct {
		policy   rewrite.Policy
		expected Expression
	}{
		{rewrite.MaxOrder{}, Mul(Int(3), a)},
		{rewrite.SmallestMeasure{}, Pow(a, Int(2))},
	}
	for _, tt := range tests {
		t.Run(tt.policy.Name(), func(t *testing.T) {
			simplifier := rewrite.NewSimplifier(rewrite.Config{Policy: tt.policy, Rules: rules})
			assertExpr(t, tt.expected, simplifier.Simplify(Add(a, b)))
		})
	}
}

func TestPolicyByName(t *testing.T) {
	policy, err := rewrite.PolicyByName("smallest")
	require.NoError(t, err)
	assert.Equal(t, rewrite.SmallestMeasure{}, policy)

	policy, err = rewrite.PolicyByName("")
	require.NoError(t, err)
	assert.Equal(t, rewrite.MaxOrder{}, policy)

	_, err = rewrite.PolicyByName("random")
	assert.Error(t, err)
}
