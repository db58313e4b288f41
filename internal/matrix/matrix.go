// Package matrix implements a dense, row-major integer matrix whose storage
// is explicitly owned: every Matrix must be released exactly once.
package matrix

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/jcorbin/matcalc/internal/runeio"
)

var (
	// ErrDimensionMismatch indicates operand shapes incompatible with an operation.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrIndexOutOfRange indicates element access outside of a matrix.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrParse indicates malformed or missing matrix entries in an input stream.
	ErrParse = errors.New("malformed matrix")

	// ErrTooLarge indicates dimensions whose cell count exceeds MaxCells.
	ErrTooLarge = errors.New("matrix too large")
)

// MaxCells bounds the number of cells in any one matrix, regardless of any
// Allocator limit.
const MaxCells = 1 << 26

// Allocator provides cell storage for matrices.
// Every slice returned by Alloc is eventually passed back to Free once.
type Allocator interface {
	Alloc(n int) ([]int, error)
	Free(cells []int)
}

// Matrix is a rows x columns integer matrix, stored in row-major order.
type Matrix struct {
	rows    int
	columns int
	data    []int

	alloc    Allocator
	released bool
}

// New creates a zeroed matrix, not drawing from any Allocator.
func New(rows, columns int) (*Matrix, error) { return Alloc(nil, rows, columns) }

// Alloc creates a zeroed matrix with storage from the given Allocator, or from
// the Go heap if it is nil. Results of Add and Multiply draw from the same
// Allocator as their first operand.
//
// Returns ErrTooLarge for more than MaxCells, before asking alloc for anything.
// Negative dimensions are a programming error, and panic.
func Alloc(alloc Allocator, rows, columns int) (*Matrix, error) {
	if rows < 0 || columns < 0 {
		panic(fmt.Sprintf("matrix: negative dimensions %vx%v", rows, columns))
	}
	if columns != 0 && rows > MaxCells/columns {
		return nil, fmt.Errorf("%w: %vx%v", ErrTooLarge, rows, columns)
	}
	m := &Matrix{rows: rows, columns: columns, alloc: alloc}
	if n := rows * columns; alloc != nil {
		data, err := alloc.Alloc(n)
		if err != nil {
			return nil, err
		}
		m.data = data
	} else {
		m.data = make([]int, n)
	}
	return m, nil
}

// Release returns the matrix storage to its Allocator.
// The matrix must not be used afterwards; releasing twice panics.
func (m *Matrix) Release() {
	m.mustLive("release")
	if m.alloc != nil {
		m.alloc.Free(m.data)
	}
	m.data = nil
	m.released = true
}

// Released returns true after Release.
func (m *Matrix) Released() bool { return m.released }

func (m *Matrix) mustLive(op string) {
	if m.released {
		panic(fmt.Sprintf("matrix: %v of released %vx%v matrix", op, m.rows, m.columns))
	}
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (rows, columns int) { return m.rows, m.columns }

// Get returns the entry at row i, column j, counting from 0.
func (m *Matrix) Get(i, j int) (int, error) {
	m.mustLive("get")
	if err := m.checkIndex(i, j); err != nil {
		return 0, err
	}
	return m.data[i*m.columns+j], nil
}

// Set sets the entry at row i, column j, counting from 0.
func (m *Matrix) Set(i, j, value int) error {
	m.mustLive("set")
	if err := m.checkIndex(i, j); err != nil {
		return err
	}
	m.data[i*m.columns+j] = value
	return nil
}

func (m *Matrix) checkIndex(i, j int) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.columns {
		return fmt.Errorf("%w: [%v][%v] of %vx%v", ErrIndexOutOfRange, i, j, m.rows, m.columns)
	}
	return nil
}

// Scan reads exactly rows*columns whitespace delimited decimal integers into
// the matrix in row-major order.
func (m *Matrix) Scan(rs io.RuneScanner) error {
	m.mustLive("scan")
	for k := range m.data {
		n, err := runeio.ReadInt(rs)
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		if err != nil {
			return fmt.Errorf("%w: entry [%v][%v] of %vx%v: %v",
				ErrParse, k/m.columns, k%m.columns, m.rows, m.columns, err)
		}
		m.data[k] = n
	}
	return nil
}

// WriteTo writes each row as fields formatted like "%8d ", each row ending
// with a newline, and the whole matrix followed by one more newline.
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	m.mustLive("write")
	var (
		total int64
		line  []byte
		field [24]byte
	)
	for i := 0; i < m.rows; i++ {
		line = line[:0]
		for _, v := range m.data[i*m.columns : (i+1)*m.columns] {
			digits := strconv.AppendInt(field[:0], int64(v), 10)
			for pad := fieldWidth - len(digits); pad > 0; pad-- {
				line = append(line, ' ')
			}
			line = append(line, digits...)
			line = append(line, ' ')
		}
		line = append(line, '\n')
		n, err := w.Write(line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	n, err := w.Write([]byte{'\n'})
	total += int64(n)
	return total, err
}

const fieldWidth = 8

func (m *Matrix) String() string {
	if m.released {
		return fmt.Sprintf("<released %vx%v>", m.rows, m.columns)
	}
	var sb strings.Builder
	m.WriteTo(&sb)
	return sb.String()
}

// Equal returns true if other has the same shape and entries.
func (m *Matrix) Equal(other *Matrix) bool {
	return m.rows == other.rows &&
		m.columns == other.columns &&
		slices.Equal(m.data, other.data)
}

// Add returns the entry-by-entry sum of a and b, which must have the same shape.
func Add(a, b *Matrix) (*Matrix, error) {
	a.mustLive("add")
	b.mustLive("add")
	if a.rows != b.rows || a.columns != b.columns {
		return nil, fmt.Errorf("%w: cannot add %vx%v and %vx%v",
			ErrDimensionMismatch, a.rows, a.columns, b.rows, b.columns)
	}
	c, err := Alloc(a.alloc, a.rows, a.columns)
	if err != nil {
		return nil, err
	}
	for k := range c.data {
		c.data[k] = a.data[k] + b.data[k]
	}
	return c, nil
}

// Multiply returns the matrix product a x b, which requires that a has as
// many columns as b has rows; the product has a's rows and b's columns.
func Multiply(a, b *Matrix) (*Matrix, error) {
	a.mustLive("multiply")
	b.mustLive("multiply")
	if a.columns != b.rows {
		return nil, fmt.Errorf("%w: cannot multiply %vx%v by %vx%v",
			ErrDimensionMismatch, a.rows, a.columns, b.rows, b.columns)
	}
	c, err := Alloc(a.alloc, a.rows, b.columns)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.rows; i++ {
		row := a.data[i*a.columns : (i+1)*a.columns]
		out := c.data[i*c.columns : (i+1)*c.columns]
		for k, aik := range row {
			if aik == 0 {
				continue
			}
			for j, bkj := range b.data[k*b.columns : (k+1)*b.columns] {
				out[j] += aik * bkj
			}
		}
	}
	return c, nil
}
