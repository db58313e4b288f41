package main

import (
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/jcorbin/matcalc/internal/matrix"
	"github.com/jcorbin/matcalc/internal/panicerr"
	"github.com/jcorbin/matcalc/internal/runeio"
	"github.com/jcorbin/matcalc/internal/stack"
)

// Calc evaluates postfix matrix expressions: literals push a new matrix onto
// the operand stack, operators pop their operands from it and push any
// result. Every matrix on the stack is owned by it; an operator releases
// what it pops.
type Calc struct {
	Core
	stack stack.Stack[*matrix.Matrix]
}

// Run evaluates tokens until the end of input, then wipes the stack.
// Problems with any one token are reported to the diagnostic sink, and do not
// stop evaluation; only input or output failure, or ctx being done, will
// return an error.
func (calc *Calc) Run(ctx context.Context) error {
	return panicerr.Recover("Calc", func() error {
		defer calc.wipe()
		calc.stack.Limit = calc.depthLimit
		calc.eval(ctx, calc.step)
		calc.dumpLog()
		return calc.out.Flush()
	})
}

func (calc *Calc) step(r rune) {
	var op func(calc *Calc) error
	if r >= 0 && r < utf8.RuneSelf {
		op = calcOpTable[r]
	}
	if op == nil {
		calc.report(badTokenError(r))
		return
	}
	if calc.logfn != nil {
		calc.logf(string(r), "%v %v", calcOpNames[r], calc.shapes())
	}
	if err := op(calc); err != nil {
		calc.report(err)
	}
}

//// Operations

// Symbol   Name      Function
//    [     literal   read rows, columns, then rows*columns entries in
//                    row-major order; push the new matrix
func (calc *Calc) literal() error {
	rows, err := calc.readDim("rows")
	if err != nil {
		return err
	}
	columns, err := calc.readDim("columns")
	if err != nil {
		return err
	}

	m, err := matrix.Alloc(&calc.cells, rows, columns)
	if err != nil {
		return err
	}
	if err := m.Scan(calc); err != nil {
		m.Release()
		return err
	}
	if err := calc.stack.Push(m); err != nil {
		m.Release()
		return err
	}
	return nil
}

func (calc *Calc) readDim(name string) (int, error) {
	n, err := runeio.ReadInt(calc)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v: %v", matrix.ErrParse, name, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative %v %v", matrix.ErrParse, name, n)
	}
	return n, nil
}

// Symbol   Name      Function
//    +     add       pop top and second, push their sum
func (calc *Calc) add() error { return calc.binary(matrix.Add) }

// Symbol   Name      Function
//    *     multiply  pop top and second, push the product top × second
func (calc *Calc) mul() error { return calc.binary(matrix.Multiply) }

// binary releases both operands whether or not op succeeds; when the second
// pop underflows, the top has already been consumed.
func (calc *Calc) binary(op func(top, second *matrix.Matrix) (*matrix.Matrix, error)) error {
	top, err := calc.stack.Pop()
	if err != nil {
		return err
	}
	defer top.Release()

	second, err := calc.stack.Pop()
	if err != nil {
		return err
	}
	defer second.Release()

	result, err := op(top, second)
	if err != nil {
		return err
	}
	if err := calc.stack.Push(result); err != nil {
		result.Release()
		return err
	}
	return nil
}

// Symbol   Name      Function
//    >     pop       pop the top matrix and discard it, without printing
func (calc *Calc) pop() error {
	m, err := calc.stack.Pop()
	if err != nil {
		return err
	}
	m.Release()
	return nil
}

// Symbol   Name      Function
//    =     peek      print the top matrix, leaving it on the stack
func (calc *Calc) peek() error {
	m, err := calc.stack.Peek(0)
	if err != nil {
		return err
	}
	calc.write(m)
	return nil
}

// Symbol   Name      Function
//    #     peekAll   print every matrix from top to bottom; an empty stack
//                    prints nothing
func (calc *Calc) peekAll() error {
	for i := 0; i < calc.stack.Size(); i++ {
		m, err := calc.stack.Peek(i)
		if err != nil {
			return err
		}
		calc.write(m)
	}
	return nil
}

// wipe releases every matrix left on the stack, top first.
func (calc *Calc) wipe() {
	if n := calc.stack.Size(); n > 0 {
		calc.logf("#", "wipe %v", calc.shapes())
	}
	calc.stack.Wipe((*matrix.Matrix).Release)
}

// shapes lists the dimensions of every stacked matrix, bottom to top.
func (calc *Calc) shapes() []string {
	shapes := make([]string, 0, calc.stack.Size())
	for i := calc.stack.Size() - 1; i >= 0; i-- {
		m, _ := calc.stack.Peek(i)
		rows, columns := m.Dims()
		shapes = append(shapes, fmt.Sprintf("%vx%v", rows, columns))
	}
	return shapes
}

var calcOpTable [utf8.RuneSelf]func(calc *Calc) error
var calcOpNames [utf8.RuneSelf]string

func init() {
	for _, def := range []struct {
		r    rune
		name string
		op   func(calc *Calc) error
	}{
		{'[', "literal", (*Calc).literal},
		{'+', "add", (*Calc).add},
		{'*', "mul", (*Calc).mul},
		{'>', "pop", (*Calc).pop},
		{'=', "peek", (*Calc).peek},
		{'#', "peekAll", (*Calc).peekAll},
	} {
		calcOpTable[def.r] = def.op
		calcOpNames[def.r] = def.name
	}
}
