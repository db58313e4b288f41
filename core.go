package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/jcorbin/matcalc/internal/fileinput"
	"github.com/jcorbin/matcalc/internal/flushio"
	"github.com/jcorbin/matcalc/internal/logio"
	"github.com/jcorbin/matcalc/internal/matrix"
	"github.com/jcorbin/matcalc/internal/mem"
	"github.com/jcorbin/matcalc/internal/panicerr"
	"github.com/jcorbin/matcalc/internal/runeio"
	"github.com/jcorbin/matcalc/internal/stack"
)

// Core holds everything an interpreter needs besides its operand stack: the
// queued input streams, the output and diagnostic sinks, and the cell budget
// that backs every matrix.
type Core struct {
	logging
	fileinput.Input
	out     flushio.WriteFlusher
	diag    *logio.Logger
	cells   mem.Cells
	closers []io.Closer

	depthLimit int
}

// Close closes any remaining input streams, and anything else registered by
// options, in reverse order.
func (core *Core) Close() (err error) {
	err = core.Input.Close()
	for i := len(core.closers) - 1; i >= 0; i-- {
		if cerr := core.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Diagnostics returns how many problems have been reported so far.
func (core *Core) Diagnostics() int { return core.diag.Reports() }

// ExitCode returns non-zero if any problems were reported.
func (core *Core) ExitCode() int { return core.diag.ExitCode() }

func (core *Core) halt(err error) {
	// ignore any panics while trying to flush output
	func() {
		defer func() { recover() }()
		if core.out != nil {
			if ferr := core.out.Flush(); err == nil {
				err = ferr
			}
		}
	}()

	// ignore any panics while logging
	func() {
		defer func() { recover() }()
		core.logf("#", "halt error: %v", err)
	}()

	panicerr.Halt(err)
}

// ReadRune reads from the current input, halting on any error other than the
// end of all input streams.
func (core *Core) ReadRune() (rune, int, error) {
	r, n, err := core.Input.ReadRune()
	if err != nil && err != io.EOF {
		core.halt(err)
	}
	return r, n, err
}

// token flushes output, then returns the next non-space rune, or false at the
// end of input.
func (core *Core) token() (rune, bool) {
	if err := core.out.Flush(); err != nil {
		core.halt(err)
	}
	r, err := runeio.SkipSpace(core)
	return r, err == nil
}

// eval calls step for each token until the end of input, checking ctx between
// tokens.
func (core *Core) eval(ctx context.Context, step func(r rune)) {
	for {
		if err := ctx.Err(); err != nil {
			core.halt(err)
		}
		r, ok := core.token()
		if !ok {
			return
		}
		step(r)
	}
}

func (core *Core) write(wt io.WriterTo) {
	if _, err := wt.WriteTo(core.out); err != nil {
		core.halt(err)
	}
}

func (core *Core) writeInt(n int) {
	var buf [24]byte
	b := strconv.AppendInt(buf[:0], int64(n), 10)
	b = append(b, '\n')
	if _, err := core.out.Write(b); err != nil {
		core.halt(err)
	}
}

// report writes a diagnostic line for err, located at the last rune read.
func (core *Core) report(err error) {
	core.logf("!", "%v", err)
	core.diag.Reportf("%v: %v: %v", core.At, errnoText(err), err)
}

var errBadMessage = errors.New("bad message")

type badTokenError rune

func (r badTokenError) Error() string {
	return fmt.Sprintf("unrecognized token %v", runeio.Quote(rune(r)))
}

func (r badTokenError) Unwrap() error { return errBadMessage }

// errnoText describes the class of err like the corresponding POSIX errno.
func errnoText(err error) string {
	switch {
	case errors.Is(err, stack.ErrUnderflow):
		return "Bad address"
	case errors.Is(err, mem.ErrExhausted),
		errors.Is(err, matrix.ErrTooLarge),
		errors.Is(err, stack.ErrOverflow):
		return "Cannot allocate memory"
	case errors.Is(err, matrix.ErrIndexOutOfRange):
		return "Channel number out of range"
	case errors.Is(err, matrix.ErrDimensionMismatch),
		errors.Is(err, matrix.ErrParse):
		return "Invalid argument"
	case errors.Is(err, errBadMessage):
		return "Bad message"
	}
	return "Input/output error"
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
