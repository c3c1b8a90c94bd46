package expr

import (
	"cmp"
	"fmt"
	"math"
	"math/big"
)

// Compare is the total order over expressions, returning -1, 0 or +1.
//
// Expressions are ranked by identity tier first: numbers, variables, powers
// and logarithms, multiplications, additions. Within a tier, numbers compare
// by value (an Integer sorts before a Real of equal value, NaN sorts last),
// variables by label, powers and logarithms by their first then second
// operand, and associations by item count then item by item.
//
// Compare(a, b) == 0 exactly when a and b are structurally equal.
func Compare(a, b Expression) int {
	if byTier := cmp.Compare(a.Identity().Precedence(), b.Identity().Precedence()); byTier != 0 {
		return byTier
	}
	switch left := a.(type) {
	case Integer, Real:
		return compareNumbers(a, b)
	case Variable:
		return cmp.Compare(left.label, b.(Variable).label)
	case Power, Logarithm:
		return compareOperations(a, b)
	case Multiplication:
		return compareItems(left.items, b.(Multiplication).items)
	case Addition:
		return compareItems(left.items, b.(Addition).items)
	default:
		panic(fmt.Sprintf("unexpected expression %T", a))
	}
}

func Equal(a, b Expression) bool {
	return Compare(a, b) == 0
}

func Less(a, b Expression) bool {
	return Compare(a, b) < 0
}

func Greater(a, b Expression) bool {
	return Compare(a, b) > 0
}

func LessEqual(a, b Expression) bool {
	return Compare(a, b) <= 0
}

func GreaterEqual(a, b Expression) bool {
	return Compare(a, b) >= 0
}

// numberKind breaks ties between literals of equal value
func numberKind(e Expression) int {
	if _, ok := e.(Integer); ok {
		return 0
	}
	return 1
}

func compareNumbers(a, b Expression) int {
	byValue := compareNumericValues(a, b)
	if byValue != 0 {
		return byValue
	}
	return cmp.Compare(numberKind(a), numberKind(b))
}

func compareNumericValues(a, b Expression) int {
	switch left := a.(type) {
	case Integer:
		switch right := b.(type) {
		case Integer:
			return left.big().Cmp(right.big())
		case Real:
			return -compareRealToInteger(right.value, left.big())
		}
	case Real:
		switch right := b.(type) {
		case Integer:
			return compareRealToInteger(left.value, right.big())
		case Real:
			return compareReals(left.value, right.value)
		}
	}
	panic(fmt.Sprintf("not a number: %T %T", a, b))
}

// compareReals orders NaN after every other value and equal to itself
func compareReals(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	}
	return cmp.Compare(a, b)
}

func compareRealToInteger(r float64, i *big.Int) int {
	if math.IsNaN(r) {
		return 1
	}
	return big.NewFloat(r).Cmp(new(big.Float).SetInt(i))
}

func compareOperations(a, b Expression) int {
	aFst, aSnd := operands(a)
	bFst, bSnd := operands(b)
	if c := Compare(aFst, bFst); c != 0 {
		return c
	}
	if c := Compare(aSnd, bSnd); c != 0 {
		return c
	}
	return cmp.Compare(a.Identity(), b.Identity())
}

func operands(e Expression) (fst, snd Expression) {
	switch v := e.(type) {
	case Power:
		return v.base, v.exponent
	case Logarithm:
		return v.argument, v.base
	default:
		panic(fmt.Sprintf("not a binary operation: %T", e))
	}
}

func compareItems(a, b []Expression) int {
	if byLen := cmp.Compare(len(a), len(b)); byLen != 0 {
		return byLen
	}
	for i := range a {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}
