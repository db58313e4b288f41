// Package flushio provides buffered output streams that must be flushed
// before anything else, like an interactive prompt, is shown to the user.
package flushio

import (
	"bufio"
	"io"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// Discard is a WriteFlusher that drops everything.
var Discard WriteFlusher = nopFlusher{io.Discard}

// New returns w if it is already a WriteFlusher. In-memory buffers, like
// strings.Builder or bytes.Buffer, get a Flush that does nothing, since
// there is nothing to gain by buffering them again. Anything else is wrapped
// in a bufio.Writer.
func New(w io.Writer) WriteFlusher {
	switch impl := w.(type) {
	case nil:
		return Discard
	case WriteFlusher:
		return impl
	case buffer:
		return nopFlusher{w}
	}
	if w == io.Discard {
		return Discard
	}
	return bufio.NewWriter(w)
}

type buffer interface {
	io.Writer
	Cap() int
	Len() int
	Grow(n int)
	Reset()
}

// NopFlusher wraps w with a Flush that does nothing.
func NopFlusher(w io.Writer) WriteFlusher { return nopFlusher{w} }

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }

// Tee combines WriteFlusher-s into one that writes to, and flushes, each of
// them in order. Nil and Discard entries are dropped, and nested Tee-s are
// flattened.
func Tee(wfs ...WriteFlusher) WriteFlusher {
	var all tee
	for _, wf := range wfs {
		switch impl := wf.(type) {
		case tee:
			all = append(all, impl...)
		case nil:
		default:
			if wf != Discard {
				all = append(all, wf)
			}
		}
	}
	switch len(all) {
	case 0:
		return Discard
	case 1:
		return all[0]
	}
	return all
}

type tee []WriteFlusher

// Write stops at the first short or failed write.
func (t tee) Write(p []byte) (int, error) {
	for _, wf := range t {
		n, err := wf.Write(p)
		if err == nil && n < len(p) {
			err = io.ErrShortWrite
		}
		if err != nil {
			return n, err
		}
	}
	return len(p), nil
}

// Flush flushes every stream, returning the first error.
func (t tee) Flush() (err error) {
	for _, wf := range t {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}
