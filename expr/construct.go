package expr

import (
	"math/big"
	"slices"

	"github.com/gitnlsn/ncas/util"
)

// NewAddition builds the canonical sum of items.
//
// Nested additions are flattened, zeros dropped, Integer literals folded into
// one Integer and Real literals into one Real. A negative folded literal is
// emitted as its negation multiplied by -1, which turns a negative Integer
// back into a single literal but keeps a negative Real as (-1 * r). An empty
// sum is the Integer 0, even when it is Real literals that cancelled out, and
// a sum of one item is that item.
func NewAddition(items ...Expression) Expression {
	work := util.NewStack(items...)
	intSum := new(big.Int)
	realSum := 0.0
	var rest []Expression
	for item := range work.Drain() {
		switch v := item.(type) {
		case Addition:
			work.Push(v.items...)
		case Integer:
			intSum.Add(intSum, v.big())
		case Real:
			realSum += v.value
		default:
			rest = append(rest, item)
		}
	}

	switch intSum.Sign() {
	case 1:
		rest = append(rest, integer(intSum))
	case -1:
		rest = append(rest, NewMultiplication(Int(-1), integer(new(big.Int).Neg(intSum))))
	}
	if realSum < 0 {
		rest = append(rest, NewMultiplication(Int(-1), Float(-realSum)))
	} else if realSum != 0 {
		rest = append(rest, Float(realSum))
	}

	return associate(IdentityAddition, rest)
}

// NewMultiplication builds the canonical product of items.
//
// Nested multiplications are flattened and literals folded as in NewAddition,
// with 1 as the neutral element. A zero literal absorbs the whole product,
// whatever the other factors are. Integer reciprocals d^-1 are collected into
// a single denominator reduced against the Integer literal by their GCD. The
// sign of a negative Real literal is carried by the Integer literal. A product
// of literals that involves a Real keeps a Real literal, even 1.0.
func NewMultiplication(items ...Expression) Expression {
	work := util.NewStack(items...)
	intProduct := big.NewInt(1)
	realProduct, sawReal := 1.0, false
	denominator := big.NewInt(1)
	var rest []Expression
	for item := range work.Drain() {
		switch v := item.(type) {
		case Multiplication:
			work.Push(v.items...)
		case Integer:
			if v.big().Sign() == 0 {
				return v
			}
			intProduct.Mul(intProduct, v.big())
		case Real:
			if v.value == 0 {
				return v
			}
			realProduct *= v.value
			sawReal = true
		case Power:
			if d, ok := integerReciprocal(v); ok {
				denominator.Mul(denominator, d)
				continue
			}
			rest = append(rest, item)
		default:
			rest = append(rest, item)
		}
	}
	if realProduct == 0 {
		// underflow
		return Float(0)
	}

	if denominator.Sign() < 0 {
		denominator.Neg(denominator)
		intProduct.Neg(intProduct)
	}
	if denominator.Cmp(bigOne) != 0 {
		gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(intProduct), denominator)
		intProduct.Quo(intProduct, gcd)
		denominator.Quo(denominator, gcd)
	}
	if realProduct < 0 {
		realProduct = -realProduct
		intProduct.Neg(intProduct)
	}

	// a product of literals only keeps its Real literal
	keepReal := sawReal && len(rest) == 0 && denominator.Cmp(bigOne) == 0

	if intProduct.Cmp(bigOne) != 0 {
		rest = append(rest, integer(intProduct))
	}
	if realProduct != 1 || keepReal {
		rest = append(rest, Float(realProduct))
	}
	if denominator.Cmp(bigOne) != 0 {
		rest = append(rest, Power{base: integer(denominator), exponent: Int(-1)})
	}

	return associate(IdentityMultiplication, rest)
}

var bigOne = big.NewInt(1)

// integerReciprocal matches d^-1 for a non-zero Integer d
func integerReciprocal(p Power) (*big.Int, bool) {
	d, ok := p.base.(Integer)
	if !ok || d.big().Sign() == 0 || !isInteger(p.exponent, -1) {
		return nil, false
	}
	return d.big(), true
}

// associate wraps items in a commutative node of the given identity,
// collapsing to the neutral element or to a single item
func associate(id Identity, items []Expression) Expression {
	switch len(items) {
	case 0:
		if id == IdentityAddition {
			return Int(0)
		}
		return Int(1)
	case 1:
		return items[0]
	}
	slices.SortStableFunc(items, Compare)
	if id == IdentityAddition {
		return Addition{items: items}
	}
	return Multiplication{items: items}
}
