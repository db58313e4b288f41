package stack_test

import (
	"errors"
	"testing"

	"github.com/jcorbin/matcalc/internal/stack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Stack(t *testing.T) {
	var s stack.Stack[int]

	_, err := s.Pop()
	require.True(t, errors.Is(err, stack.ErrUnderflow), "expected empty pop to underflow")
	_, err = s.Peek(0)
	require.True(t, errors.Is(err, stack.ErrUnderflow), "expected empty peek to underflow")

	for i := 1; i <= 3*stack.ChunkSize+1; i++ {
		require.NoError(t, s.Push(i), "must push %v", i)
	}
	require.Equal(t, 3*stack.ChunkSize+1, s.Size(), "expected size after pushes")

	top, err := s.Peek(0)
	require.NoError(t, err)
	assert.Equal(t, 3*stack.ChunkSize+1, top, "expected top at index 0")

	bottom, err := s.Peek(s.Size() - 1)
	require.NoError(t, err)
	assert.Equal(t, 1, bottom, "expected bottom at index size-1")

	for i := 3*stack.ChunkSize + 1; i >= 1; i-- {
		v, err := s.Pop()
		require.NoError(t, err, "must pop %v", i)
		require.Equal(t, i, v, "expected LIFO order")
	}
	assert.Equal(t, 0, s.Size(), "expected empty stack")
}

func Test_Stack_roundTrip(t *testing.T) {
	var s stack.Stack[*int]
	for i := 0; i < 5; i++ {
		v := i
		require.NoError(t, s.Push(&v))
	}

	p := new(int)
	require.NoError(t, s.Push(p))
	got, err := s.Pop()
	require.NoError(t, err)
	assert.True(t, got == p, "expected pop to return the pushed value")
	assert.Equal(t, 5, s.Size(), "expected push/pop to leave size unchanged")
}

func Test_Stack_Peek(t *testing.T) {
	var s stack.Stack[string]
	for _, v := range []string{"a", "b", "c"} {
		require.NoError(t, s.Push(v))
	}

	for i, want := range []string{"c", "b", "a"} {
		v, err := s.Peek(i)
		require.NoError(t, err, "must peek %v", i)
		assert.Equal(t, want, v, "expected peek %v", i)
	}

	for _, i := range []int{-1, 3, 42} {
		_, err := s.Peek(i)
		var ie stack.IndexError
		require.True(t, errors.As(err, &ie), "expected an index error for %v", i)
		assert.Equal(t, stack.IndexError{Index: i, Size: 3}, ie)
		assert.True(t, errors.Is(err, stack.ErrUnderflow), "expected index error to be an underflow")
	}
	assert.Equal(t, 3, s.Size(), "expected peek to leave size unchanged")
}

func Test_Stack_Limit(t *testing.T) {
	s := stack.Stack[int]{Limit: 2}
	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))
	assert.Equal(t, stack.ErrOverflow, s.Push(3), "expected overflow past limit")
	assert.Equal(t, 2, s.Size())
}

func Test_Stack_Wipe(t *testing.T) {
	var s stack.Stack[int]
	for i := 1; i <= 4; i++ {
		require.NoError(t, s.Push(i))
	}
	var released []int
	s.Wipe(func(v int) { released = append(released, v) })
	assert.Equal(t, []int{4, 3, 2, 1}, released, "expected wipe from top to bottom")
	assert.Equal(t, 0, s.Size())

	s.Wipe(nil)
	assert.Equal(t, 0, s.Size())
}
