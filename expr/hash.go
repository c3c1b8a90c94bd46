package expr

import (
	"hash/fnv"
	"math"

	"github.com/benbjohnson/immutable"
)

const (
	hashPrime1 uint64 = 14695981039346656037
	hashPrime2 uint64 = 1099511628211
)

func (i Integer) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte{byte(i.big().Sign() + 1)})
	_, _ = h.Write(i.big().Bytes())
	return h.Sum64()
}

func (r Real) Hash() uint64 {
	v := r.value
	switch {
	case v == 0:
		// -0.0 equals 0.0
		v = 0
	case math.IsNaN(v):
		return hashPrime2
	}
	return math.Float64bits(v)*31 + 17
}

func (v Variable) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(v.label))
	return h.Sum64() ^ hashPrime1
}

func hashItems(seed uint64, items []Expression) uint64 {
	hash := seed
	for _, item := range items {
		hash = hash*31 + item.Hash()
	}
	return hash
}

func (a Addition) Hash() uint64 {
	return hashItems(hashPrime1+uint64(IdentityAddition), a.items)
}

func (m Multiplication) Hash() uint64 {
	return hashItems(hashPrime1+uint64(IdentityMultiplication), m.items)
}

func (p Power) Hash() uint64 {
	return p.base.Hash()*41 + p.exponent.Hash()*43
}

func (l Logarithm) Hash() uint64 {
	return l.argument.Hash()*47 + l.base.Hash()*53
}

var (
	_ immutable.Hasher[Expression]   = Hasher{}
	_ immutable.Comparer[Expression] = Comparer{}
)

// Hasher adapts Expression hashing and structural equality to immutable.Hasher
type Hasher struct{}

func (Hasher) Hash(key Expression) uint32 {
	h := key.Hash()
	return uint32(h ^ (h >> 32))
}

func (Hasher) Equal(a, b Expression) bool {
	return Equal(a, b)
}

// Comparer adapts the total order to immutable.Comparer
type Comparer struct{}

func (Comparer) Compare(a, b Expression) int {
	return Compare(a, b)
}
