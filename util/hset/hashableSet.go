// Package hset implements a set of hashable elements, JVM style
package hset

import (
	"github.com/benbjohnson/immutable"
	"iter"
)

// HSet is a shallow wrapper around a map of hash buckets.
// Elements whose hashes collide are told apart with the hasher's Equal.
// Iteration follows insertion order.
type HSet[A any] struct {
	hasher     immutable.Hasher[A]
	underlying map[uint32][]A
	order      *[]A
}

func Empty[A any](hasher immutable.Hasher[A]) HSet[A] {
	return HSet[A]{
		hasher:     hasher,
		underlying: make(map[uint32][]A),
		order:      new([]A),
	}
}

func New[A any](hasher immutable.Hasher[A], elems ...A) HSet[A] {
	n := Empty(hasher)
	n.Add(elems...)
	return n
}

// Add inserts elems not already present and reports how many were new
func (s HSet[A]) Add(elems ...A) (added int) {
	for _, elem := range elems {
		h := s.hasher.Hash(elem)
		if s.inBucket(h, elem) {
			continue
		}
		s.underlying[h] = append(s.underlying[h], elem)
		*s.order = append(*s.order, elem)
		added++
	}
	return added
}

func (s HSet[A]) Contains(elem A) bool {
	return s.inBucket(s.hasher.Hash(elem), elem)
}

func (s HSet[A]) inBucket(h uint32, elem A) bool {
	for _, existing := range s.underlying[h] {
		if s.hasher.Equal(existing, elem) {
			return true
		}
	}
	return false
}

func (s HSet[A]) Len() int {
	return len(*s.order)
}

func (s HSet[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		for _, elem := range *s.order {
			if !yield(elem) {
				return
			}
		}
	}
}
