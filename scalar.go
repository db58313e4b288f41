package main

import (
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/jcorbin/matcalc/internal/panicerr"
	"github.com/jcorbin/matcalc/internal/runeio"
	"github.com/jcorbin/matcalc/internal/stack"
)

// Scalar is a postfix integer calculator sharing the matrix calculator's
// input, output, and diagnostics handling: numbers are pushed, operators work
// on the top of the stack.
type Scalar struct {
	Core
	stack stack.Stack[int]
}

// Run evaluates tokens until the end of input, then wipes the stack.
func (sc *Scalar) Run(ctx context.Context) error {
	return panicerr.Recover("Scalar", func() error {
		defer sc.stack.Wipe(nil)
		sc.stack.Limit = sc.depthLimit
		sc.eval(ctx, sc.step)
		sc.logf("#", "stack %v", sc.values())
		return sc.out.Flush()
	})
}

func (sc *Scalar) step(r rune) {
	var op func(sc *Scalar) error
	if r == '-' || ('0' <= r && r <= '9') {
		if err := sc.UnreadRune(); err != nil {
			sc.halt(err)
		}
		op = (*Scalar).number
	} else if r >= 0 && r < utf8.RuneSelf {
		op = scalarOpTable[r]
	}
	if op == nil {
		sc.report(badTokenError(r))
		return
	}
	if err := op(sc); err != nil {
		sc.report(err)
	}
	if sc.logfn != nil {
		sc.logf(string(r), "%v", sc.values())
	}
}

// Symbol   Name      Function
//   -?N    number    push a decimal integer
func (sc *Scalar) number() error {
	n, err := runeio.ReadInt(sc)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return fmt.Errorf("%w: %v", errBadMessage, err)
	}
	return sc.stack.Push(n)
}

// Symbol   Name      Function
//    +     add       pop b and a, push a + b
func (sc *Scalar) add() error { return sc.binary(func(a, b int) int { return a + b }) }

// Symbol   Name      Function
//    *     multiply  pop b and a, push a * b
func (sc *Scalar) mul() error { return sc.binary(func(a, b int) int { return a * b }) }

func (sc *Scalar) binary(op func(a, b int) int) error {
	b, err := sc.stack.Pop()
	if err != nil {
		return err
	}
	a, err := sc.stack.Pop()
	if err != nil {
		return err
	}
	return sc.stack.Push(op(a, b))
}

// Symbol   Name      Function
//    >     pop       pop and print the top value
func (sc *Scalar) pop() error {
	n, err := sc.stack.Pop()
	if err != nil {
		return err
	}
	sc.writeInt(n)
	return nil
}

// Symbol   Name      Function
//    =     peek      print the top value
func (sc *Scalar) peek() error {
	n, err := sc.stack.Peek(0)
	if err != nil {
		return err
	}
	sc.writeInt(n)
	return nil
}

// Symbol   Name      Function
//    #     peekAll   print every value from top to bottom
func (sc *Scalar) peekAll() error {
	for i := 0; i < sc.stack.Size(); i++ {
		n, err := sc.stack.Peek(i)
		if err != nil {
			return err
		}
		sc.writeInt(n)
	}
	return nil
}

// values lists the stack bottom to top.
func (sc *Scalar) values() []int {
	values := make([]int, sc.stack.Size())
	for i := range values {
		values[len(values)-1-i], _ = sc.stack.Peek(i)
	}
	return values
}

var scalarOpTable [utf8.RuneSelf]func(sc *Scalar) error

func init() {
	scalarOpTable['+'] = (*Scalar).add
	scalarOpTable['*'] = (*Scalar).mul
	scalarOpTable['>'] = (*Scalar).pop
	scalarOpTable['='] = (*Scalar).peek
	scalarOpTable['#'] = (*Scalar).peekAll
}
