package fileinput_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jcorbin/matcalc/internal/fileinput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedReader struct {
	io.Reader
	name   string
	closed *bool
}

func (nr namedReader) Name() string { return nr.name }

func (nr namedReader) Close() error {
	*nr.closed = true
	return nil
}

func Test_Input(t *testing.T) {
	var aClosed, bClosed bool
	in := fileinput.Input{Queue: []io.Reader{
		namedReader{strings.NewReader("ab\nc"), "a.txt", &aClosed},
		namedReader{strings.NewReader("d\n"), "b.txt", &bClosed},
	}}

	type read struct {
		r  rune
		at string
	}
	var reads []read
	for {
		r, _, err := in.ReadRune()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		reads = append(reads, read{r, in.At.String()})
	}
	assert.Equal(t, []read{
		{'a', "a.txt:1"},
		{'b', "a.txt:1"},
		{'\n', "a.txt:1"},
		{'c', "a.txt:2"},
		{'\n', "a.txt:2"},
		{'d', "b.txt:1"},
		{'\n', "b.txt:1"},
	}, reads, "expected runes and locations")
	assert.True(t, aClosed, "expected first input closed")
	assert.True(t, bClosed, "expected second input closed")
	assert.Equal(t, "b.txt:1 \"d\"", in.Last.String(), "expected last line")
}

func Test_Input_bytes(t *testing.T) {
	in := fileinput.Input{Queue: []io.Reader{
		strings.NewReader("é\xff\u00a0"),
	}}
	var got []rune
	for {
		r, n, err := in.ReadRune()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		require.Equal(t, 1, n, "expected single byte reads")
		got = append(got, r)
	}
	assert.Equal(t, []rune{0xc3, 0xa9, 0xff, 0xc2, 0xa0, '\n'}, got, "expected one rune per byte")
	assert.Equal(t, "é\xff\u00a0", in.Last.Buffer.String(), "expected raw line bytes")
}

func Test_Input_UnreadRune(t *testing.T) {
	in := fileinput.Input{Queue: []io.Reader{
		strings.NewReader("x\ny"),
	}}

	assert.Error(t, in.UnreadRune(), "expected unread before any read to fail")

	r, _, err := in.ReadRune()
	require.NoError(t, err)
	require.Equal(t, 'x', r)
	require.NoError(t, in.UnreadRune())
	assert.Error(t, in.UnreadRune(), "expected double unread to fail")

	r, _, err = in.ReadRune()
	require.NoError(t, err)
	require.Equal(t, 'x', r, "expected unread rune again")

	r, _, err = in.ReadRune()
	require.NoError(t, err)
	require.Equal(t, '\n', r)
	require.NoError(t, in.UnreadRune())
	r, _, _ = in.ReadRune()
	require.Equal(t, '\n', r)

	r, _, err = in.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'y', r)
	assert.Equal(t, 2, in.At.Line, "expected newline counted once")
	assert.Equal(t, "x", in.Last.Buffer.String(), "expected last line content")

	r, _, err = in.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, '\n', r, "expected line feed at end of stream")
	assert.Equal(t, "y", in.Last.Buffer.String(), "expected partial line rolled over")

	_, _, err = in.ReadRune()
	assert.Equal(t, io.EOF, err)
	assert.Error(t, in.UnreadRune(), "expected unread after EOF to fail")
}

func Test_Input_Close(t *testing.T) {
	var aClosed, bClosed bool
	in := fileinput.Input{Queue: []io.Reader{
		namedReader{strings.NewReader("a"), "a", &aClosed},
		namedReader{strings.NewReader("b"), "b", &bClosed},
	}}
	_, _, err := in.ReadRune()
	require.NoError(t, err)
	require.NoError(t, in.Close())
	assert.True(t, aClosed, "expected current input closed")
	assert.True(t, bClosed, "expected queued input closed")
}
