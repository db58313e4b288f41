package mem

import (
	"errors"
	"fmt"
)

// ErrExhausted indicates that an allocation would exceed a Cells limit.
var ErrExhausted = errors.New("cell budget exhausted")

// LimitError indicates that an operation, like alloc, exceeded a limit.
type LimitError struct {
	Need  uint
	InUse uint
	Limit uint
	Op    string
}

func (lim LimitError) Error() string {
	return fmt.Sprintf("cell limit %v exceeded by %v of %v with %v in use",
		lim.Limit, lim.Op, lim.Need, lim.InUse)
}

func (lim LimitError) Unwrap() error { return ErrExhausted }

// Cells implements an integer-oriented storage budget.
// Every slice handed out by Alloc must be handed back to Free exactly once;
// the zero value is an unlimited budget.
type Cells struct {
	// Limit specifies a limit, past which any alloc should result in an error.
	Limit uint

	inUse  uint
	peak   uint
	allocs uint
	frees  uint
}

// Stats summarizes a Cells budget for testing and dumping.
type Stats struct {
	InUse  uint
	Peak   uint
	Allocs uint
	Frees  uint
}

// Live returns the number of allocations not yet freed.
func (st Stats) Live() uint { return st.Allocs - st.Frees }

// Stats returns current accounting data.
func (c *Cells) Stats() Stats {
	return Stats{
		InUse:  c.inUse,
		Peak:   c.peak,
		Allocs: c.allocs,
		Frees:  c.frees,
	}
}

// InUse returns the number of cells currently allocated.
func (c *Cells) InUse() uint { return c.inUse }

// Alloc returns a zeroed slice of n cells.
// Returns an error if Limit would be exceeded; nothing is allocated then.
func (c *Cells) Alloc(n int) ([]int, error) {
	if n < 0 {
		panic(fmt.Sprintf("mem: negative alloc %v", n))
	}
	if err := c.checkLimit(uint(n), "alloc"); err != nil {
		return nil, err
	}
	cells := make([]int, n)
	c.inUse += uint(n)
	if c.inUse > c.peak {
		c.peak = c.inUse
	}
	c.allocs++
	return cells, nil
}

// Free returns cells to the budget.
func (c *Cells) Free(cells []int) {
	n := uint(len(cells))
	if n > c.inUse || c.frees >= c.allocs {
		panic(fmt.Sprintf("mem: free of %v cells exceeds %v in use", n, c.inUse))
	}
	c.inUse -= n
	c.frees++
}

func (c *Cells) checkLimit(n uint, op string) error {
	if maxSize := c.Limit; maxSize != 0 && c.inUse+n > maxSize {
		return LimitError{n, c.inUse, maxSize, op}
	}
	return nil
}
