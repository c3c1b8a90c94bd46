// Package rational implements exact fractions over arbitrary-precision integers.
//
// A Rational is always kept in lowest terms: every constructor and operator
// reduces by the greatest common divisor, the denominator is positive and a
// zero numerator forces the denominator to one.
package rational

import (
	"fmt"
	"math/big"
)

type Rational struct {
	num, den *big.Int
}

var bigOne = big.NewInt(1)

// New returns num/den in lowest terms. It panics if den is zero.
func New(num, den *big.Int) Rational {
	if den.Sign() == 0 {
		panic("rational: zero denominator")
	}
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	if n.Sign() == 0 {
		return Rational{num: n, den: big.NewInt(1)}
	}
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
	if gcd.Cmp(bigOne) != 0 {
		n.Quo(n, gcd)
		d.Quo(d, gcd)
	}
	return Rational{num: n, den: d}
}

func FromInt64(num, den int64) Rational {
	return New(big.NewInt(num), big.NewInt(den))
}

func FromInt(n *big.Int) Rational {
	return New(n, bigOne)
}

// Num returns a copy of the numerator
func (r Rational) Num() *big.Int {
	return new(big.Int).Set(r.numerator())
}

// Denom returns a copy of the denominator
func (r Rational) Denom() *big.Int {
	return new(big.Int).Set(r.denominator())
}

// the zero value of Rational behaves as 0/1
func (r Rational) numerator() *big.Int {
	if r.num == nil {
		return new(big.Int)
	}
	return r.num
}

func (r Rational) denominator() *big.Int {
	if r.den == nil {
		return bigOne
	}
	return r.den
}

func (r Rational) Sign() int {
	return r.numerator().Sign()
}

func (r Rational) IsInt() bool {
	return r.denominator().Cmp(bigOne) == 0
}

func (r Rational) Add(other Rational) Rational {
	n := new(big.Int).Mul(r.numerator(), other.denominator())
	n.Add(n, new(big.Int).Mul(other.numerator(), r.denominator()))
	return New(n, new(big.Int).Mul(r.denominator(), other.denominator()))
}

func (r Rational) Sub(other Rational) Rational {
	return r.Add(other.Neg())
}

func (r Rational) Mul(other Rational) Rational {
	return New(
		new(big.Int).Mul(r.numerator(), other.numerator()),
		new(big.Int).Mul(r.denominator(), other.denominator()),
	)
}

// Div panics when other is zero
func (r Rational) Div(other Rational) Rational {
	return New(
		new(big.Int).Mul(r.numerator(), other.denominator()),
		new(big.Int).Mul(r.denominator(), other.numerator()),
	)
}

func (r Rational) Neg() Rational {
	return Rational{num: new(big.Int).Neg(r.numerator()), den: r.denominator()}
}

func (r Rational) Cmp(other Rational) int {
	left := new(big.Int).Mul(r.numerator(), other.denominator())
	right := new(big.Int).Mul(other.numerator(), r.denominator())
	return left.Cmp(right)
}

func (r Rational) Equal(other Rational) bool {
	return r.Cmp(other) == 0
}

func (r Rational) Float64() float64 {
	f, _ := new(big.Rat).SetFrac(r.numerator(), r.denominator()).Float64()
	return f
}

func (r Rational) String() string {
	if r.IsInt() {
		return r.numerator().String()
	}
	return fmt.Sprintf("%s/%s", r.numerator(), r.denominator())
}
