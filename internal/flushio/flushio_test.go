package flushio_test

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/matcalc/internal/flushio"
)

func Test_New(t *testing.T) {
	var sb strings.Builder
	_, isBuf := flushio.New(&sb).(*bufio.Writer)
	assert.False(t, isBuf, "expected in-memory buffer to not be buffered again")

	bw := bufio.NewWriter(io.Discard)
	assert.True(t, flushio.New(bw) == flushio.WriteFlusher(bw), "expected WriteFlusher returned as-is")

	_, isBuf = flushio.New(os.Stdout).(*bufio.Writer)
	assert.True(t, isBuf, "expected file to be buffered")

	assert.True(t, flushio.New(nil) == flushio.Discard, "expected nil to discard")
	assert.True(t, flushio.New(io.Discard) == flushio.Discard, "expected io.Discard to discard")
}

func Test_Tee(t *testing.T) {
	var a, b bytes.Buffer
	var c strings.Builder
	bc := bufio.NewWriter(&c)

	wf := flushio.Tee(
		flushio.New(&a),
		nil,
		flushio.Discard,
		flushio.Tee(flushio.New(&b), bc),
	)
	_, err := io.WriteString(wf, "hello\n")
	require.NoError(t, err)
	assert.Equal(t, "", c.String(), "expected buffered output before flush")
	require.NoError(t, wf.Flush())

	assert.Equal(t, "hello\n", a.String())
	assert.Equal(t, "hello\n", b.String())
	assert.Equal(t, "hello\n", c.String())

	assert.True(t, flushio.Tee() == flushio.Discard, "expected empty tee to discard")
	assert.True(t, flushio.Tee(nil, bc) == flushio.WriteFlusher(bc), "expected single tee unwrapped")
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) { return len(p) / 2, nil }

func Test_Tee_shortWrite(t *testing.T) {
	var a strings.Builder
	wf := flushio.Tee(flushio.NopFlusher(shortWriter{}), flushio.New(&a))
	_, err := io.WriteString(wf, "hello")
	assert.True(t, errors.Is(err, io.ErrShortWrite), "expected short write, got %v", err)
	assert.Equal(t, "", a.String(), "expected later streams not written")
}
