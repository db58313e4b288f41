package stack

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

// ChunkSize is the number of entries by which a Stack grows its backing
// storage whenever it is full.
const ChunkSize = 16

var (
	// ErrUnderflow indicates a pop or peek of an entry not on the stack.
	ErrUnderflow = errors.New("stack underflow")

	// ErrOverflow indicates that a push would exceed the stack's Limit.
	ErrOverflow = errors.New("stack overflow")
)

// IndexError records the peek index that caused an ErrUnderflow.
type IndexError struct {
	Index int
	Size  int
}

func (ie IndexError) Error() string {
	return fmt.Sprintf("%v: index %v not in [0, %v)", ErrUnderflow, ie.Index, ie.Size)
}

func (ie IndexError) Unwrap() error { return ErrUnderflow }

// Stack implements a LIFO of owned values.
//
// Push transfers ownership of a value to the stack, while Pop transfers it
// back to the caller; Peek only lends the value, the stack still owns it.
// The stack never releases a value itself.
type Stack[T any] struct {
	// Limit, if non-zero, bounds the number of entries.
	Limit int

	entries []T
}

// Size returns the number of entries currently on the stack.
func (s *Stack[T]) Size() int { return len(s.entries) }

// Push adds v as the new top entry.
func (s *Stack[T]) Push(v T) error {
	n := len(s.entries)
	if s.Limit != 0 && n >= s.Limit {
		return ErrOverflow
	}
	if n == cap(s.entries) {
		s.entries = slices.Grow(s.entries, ChunkSize)
	}
	s.entries = append(s.entries, v)
	return nil
}

// Pop removes and returns the top entry.
func (s *Stack[T]) Pop() (v T, err error) {
	i := len(s.entries) - 1
	if i < 0 {
		return v, ErrUnderflow
	}
	var zero T
	v, s.entries[i] = s.entries[i], zero
	s.entries = s.entries[:i]
	return v, nil
}

// Peek returns the entry at index i, counting down from the top at 0.
func (s *Stack[T]) Peek(i int) (v T, err error) {
	n := len(s.entries)
	if i < 0 || i >= n {
		return v, IndexError{i, n}
	}
	return s.entries[n-1-i], nil
}

// Wipe pops every entry, top first, passing each to release (if non-nil).
func (s *Stack[T]) Wipe(release func(T)) {
	for len(s.entries) > 0 {
		v, _ := s.Pop()
		if release != nil {
			release(v)
		}
	}
}
