package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/matcalc/internal/matrix"
	"github.com/jcorbin/matcalc/internal/mem"
	"github.com/jcorbin/matcalc/internal/stack"
)

func Test_NamedReader(t *testing.T) {
	nr := NamedReader("x.mc", strings.NewReader("abc"))
	assert.Equal(t, "x.mc", nr.(interface{ Name() string }).Name())
	b, err := io.ReadAll(nr)
	assert.NoError(t, err)
	assert.Equal(t, "abc", string(b))
	assert.NoError(t, nr.(io.Closer).Close())
}

func Test_errnoText(t *testing.T) {
	for _, tc := range []struct {
		err  error
		text string
	}{
		{stack.ErrUnderflow, "Bad address"},
		{stack.IndexError{Index: 0, Size: 0}, "Bad address"},
		{stack.ErrOverflow, "Cannot allocate memory"},
		{mem.LimitError{Need: 1, Limit: 1, Op: "alloc"}, "Cannot allocate memory"},
		{fmt.Errorf("%w: 9x9", matrix.ErrTooLarge), "Cannot allocate memory"},
		{matrix.ErrIndexOutOfRange, "Channel number out of range"},
		{matrix.ErrDimensionMismatch, "Invalid argument"},
		{fmt.Errorf("%w: rows", matrix.ErrParse), "Invalid argument"},
		{badTokenError('z'), "Bad message"},
		{errors.New("other"), "Input/output error"},
	} {
		assert.Equal(t, tc.text, errnoText(tc.err), "expected errno text for %v", tc.err)
	}
}
