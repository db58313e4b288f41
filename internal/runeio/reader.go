package runeio

import (
	"bufio"
	"io"
)

// Reader is an io.Reader that also supports reading and unreading runes or
// bytes.
type Reader interface {
	io.Reader
	io.RuneScanner
	io.ByteScanner
}

// NewReader returns a Reader from r; if r already implements, it is simply returned.
// Otherwise bufio.Reader is used to provide rune scanning around the given reader.
// The returned Reader closes r, if it is an io.Closer, and implements
// Name() string if r does.
func NewReader(r io.Reader) Reader {
	if impl, ok := r.(Reader); ok {
		return impl
	}
	rr := runeReader{bufio.NewReader(r), r}
	if impl, ok := r.(interface{ Name() string }); ok {
		return namedRuneReader{rr, impl.Name()}
	}
	return rr
}

type runeReader struct {
	*bufio.Reader
	src io.Reader
}

func (rr runeReader) Close() error {
	if cl, ok := rr.src.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

type namedRuneReader struct {
	runeReader
	name string
}

func (nr namedRuneReader) Name() string { return nr.name }
