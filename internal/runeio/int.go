package runeio

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrNotInt indicates that something other than a decimal integer was found
// where one was expected.
var ErrNotInt = errors.New("not an integer")

// NotIntError records the rune found instead of an integer.
type NotIntError struct{ Rune rune }

func (ni NotIntError) Error() string {
	return fmt.Sprintf("%v: found %v", ErrNotInt, Quote(ni.Rune))
}

func (ni NotIntError) Unwrap() error { return ErrNotInt }

// SkipSpace reads runes until the first non-space one, which it returns.
func SkipSpace(rr io.RuneReader) (rune, error) {
	for {
		r, _, err := rr.ReadRune()
		if err != nil {
			return 0, err
		}
		if !IsSpace(r) {
			return r, nil
		}
	}
}

// IsSpace reports whether r is ASCII white space: space, tab, line feed,
// vertical tab, form feed, or carriage return.
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// ReadInt reads the next signed decimal integer, skipping any leading space.
// An optional '-' sign may precede the digits; a '+' sign is not accepted.
//
// The rune that ends the digits is unread, so that it may start the next
// token. A rune that is not part of an integer where one was required is
// consumed, and reported as a NotIntError.
//
// Returns io.EOF if the stream ends before any integer starts, and
// io.ErrUnexpectedEOF if it ends right after a sign.
func ReadInt(rs io.RuneScanner) (int, error) {
	r, err := SkipSpace(rs)
	if err != nil {
		return 0, err
	}

	var buf [24]byte
	digits := buf[:0]
	if r == '-' {
		digits = append(digits, '-')
		r, _, err = rs.ReadRune()
		if err == io.EOF {
			return 0, io.ErrUnexpectedEOF
		} else if err != nil {
			return 0, err
		}
	}
	if !isDigit(r) {
		return 0, NotIntError{r}
	}

	for {
		digits = append(digits, byte(r))
		r, _, err = rs.ReadRune()
		if err == io.EOF {
			break
		} else if err != nil {
			return 0, err
		}
		if !isDigit(r) {
			if err := rs.UnreadRune(); err != nil {
				return 0, err
			}
			break
		}
	}

	n, err := strconv.ParseInt(string(digits), 10, strconv.IntSize)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }
