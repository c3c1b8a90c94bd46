package expr_test

import (
	"math"
	"slices"
	"testing"

	. "github.com/gitnlsn/ncas/expr"
	"github.com/stretchr/testify/assert"
)

func TestCompareTiers(t *testing.T) {
	ascending := []Expression{
		Int(-3),
		Float(0.5),
		Int(1),
		Float(1),
		Float(math.NaN()),
		a,
		b,
		Pow(a, Int(2)),
		Log(a, Int(3)),
		Pow(b, Int(2)),
		Mul(Int(2), a),
		NewMultiplication(a, b, c),
		Add(a, b),
		NewAddition(a, b, c),
	}
	for i := range ascending {
		for j := range ascending {
			expected := 0
			if i < j {
				expected = -1
			} else if i > j {
				expected = 1
			}
			assert.Equal(t, expected, Compare(ascending[i], ascending[j]), "Compare(%s, %s)", ascending[i], ascending[j])
		}
	}
}

func TestSortingIsIndependentOfInputOrder(t *testing.T) {
	items := []Expression{Add(a, b), Int(2), c, Pow(a, Int(2)), Float(-1)}
	reversed := slices.Clone(items)
	slices.Reverse(reversed)

	slices.SortFunc(items, Compare)
	slices.SortFunc(reversed, Compare)
	for i := range items {
		assertExpr(t, items[i], reversed[i])
	}
}

func TestOrderHelpers(t *testing.T) {
	assert.True(t, Less(Int(1), a))
	assert.True(t, Greater(Add(a, b), Mul(a, b)))
	assert.True(t, LessEqual(a, a))
	assert.True(t, GreaterEqual(b, a))
	assert.False(t, Less(a, a))
}

func TestNaNEqualsItself(t *testing.T) {
	assert.True(t, Equal(Float(math.NaN()), Float(math.NaN())))
	assert.Equal(t, Float(math.NaN()).Hash(), Float(math.NaN()).Hash())
}

func TestHashIsConsistentWithEqual(t *testing.T) {
	pairs := [][2]Expression{
		{Add(a, b), Add(b, a)},
		{Mul(a, Int(2)), Mul(Int(2), a)},
		{Float(0), Float(math.Copysign(0, -1))},
		{Int(12), Mul(Int(3), Int(4))},
		{Pow(Add(a, b), Int(2)), Pow(Add(b, a), Int(2))},
	}
	for _, pair := range pairs {
		assert.True(t, Equal(pair[0], pair[1]), "%s and %s", pair[0], pair[1])
		assert.Equal(t, pair[0].Hash(), pair[1].Hash(), "%s and %s", pair[0], pair[1])
	}
	assert.NotEqual(t, Pow(a, b).Hash(), Log(a, b).Hash())
}

func TestHasherAdapter(t *testing.T) {
	var hasher Hasher
	assert.Equal(t, hasher.Hash(Add(a, b)), hasher.Hash(Add(b, a)))
	assert.True(t, hasher.Equal(Add(a, b), Add(b, a)))
	assert.Equal(t, -1, Comparer{}.Compare(a, b))
}
