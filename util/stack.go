package util

import (
	"iter"
	"slices"
)

// Stack is a LIFO work-list
type Stack[A any] struct {
	items []A
}

// NewStack copies items, the last one is popped first
func NewStack[A any](items ...A) *Stack[A] {
	return &Stack[A]{items: slices.Clone(items)}
}

func (s *Stack[A]) Push(v ...A) {
	s.items = append(s.items, v...)
}

func (s *Stack[A]) Pop() (ret A, ok bool) {
	if len(s.items) <= 0 {
		return ret, false
	}
	lastIndex := len(s.items) - 1
	ret = s.items[lastIndex]
	s.items = s.items[:lastIndex]
	return ret, true
}

func (s *Stack[A]) Len() int {
	return len(s.items)
}

// Drain pops items until the stack is empty.
// Items pushed while draining are popped as well.
func (s *Stack[A]) Drain() iter.Seq[A] {
	return func(yield func(A) bool) {
		for {
			v, ok := s.Pop()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
