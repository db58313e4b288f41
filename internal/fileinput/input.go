package fileinput

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/jcorbin/matcalc/internal/runeio"
)

// Location names an a line in an Input file.
type Location struct {
	Name string
	Line int
}

// Line combines a Location along with a bytes.Buffer for handling it.
type Line struct {
	Location
	bytes.Buffer
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il Line) String() string      { return fmt.Sprintf("%v %q", il.Location, il.Buffer.String()) }

// Input implements sequential byte-wise rune scanning through a Queue of one or more
// input streams. Both the current and last scanned lines are tracked to
// facilitate user feedback; At holds the location of the last rune read.
type Input struct {
	rr    runeio.Reader
	Queue []io.Reader
	Last  Line
	Scan  Line
	At    Location

	last     rune
	haveLast bool
	unread   bool
}

// ReadRune reads one byte from the current input stream, returning it as the
// rune of the same value, so that every byte of a multi-byte UTF-8 sequence
// reads separately. At the end of each stream it moves on to the next queued
// one; a stream that does not end with a line feed reads as though it did, so
// that no token spans two streams. Every byte is appended to the current Scan
// line once, rolling Scan over to Last after line feed.
func (in *Input) ReadRune() (rune, int, error) {
	if in.unread {
		in.unread = false
		return in.last, 1, nil
	}

	for {
		if in.rr == nil && !in.nextIn() {
			in.haveLast = false
			return 0, 0, io.EOF
		}

		b, err := in.rr.ReadByte()
		if err == io.EOF {
			at, partial := in.Scan.Location, in.Scan.Len() > 0
			in.closeIn()
			if partial {
				in.At = at
				in.last, in.haveLast = '\n', true
				return '\n', 1, nil
			}
			continue
		} else if err != nil {
			in.haveLast = false
			return 0, 0, err
		}

		in.At = in.Scan.Location
		if b == '\n' {
			in.nextLine()
		} else {
			in.Scan.WriteByte(b)
		}
		in.last, in.haveLast = rune(b), true
		return rune(b), 1, nil
	}
}

// UnreadRune causes the next ReadRune to return the last rune read again.
// Only a single rune may be unread between reads.
func (in *Input) UnreadRune() error {
	if !in.haveLast || in.unread {
		return bufio.ErrInvalidUnreadRune
	}
	in.unread = true
	return nil
}

// Close closes the current input stream, and any queued ones that are closers.
func (in *Input) Close() (err error) {
	if in.rr != nil {
		err = in.closeIn()
	}
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) nextLine() {
	in.Last.Reset()
	in.Last.Name = in.Scan.Name
	in.Last.Line = in.Scan.Line
	in.Last.Write(in.Scan.Bytes())
	in.Scan.Reset()
	in.Scan.Line++
}

func (in *Input) closeIn() (err error) {
	if in.Scan.Len() > 0 {
		in.nextLine()
	}
	if cl, ok := in.rr.(io.Closer); ok {
		err = cl.Close()
	}
	in.rr = nil
	return err
}

func (in *Input) nextIn() bool {
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.rr = runeio.NewReader(r)
		in.Scan.Name = nameOf(r)
		in.Scan.Line = 1
	}
	return in.rr != nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
