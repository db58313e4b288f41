package main

import (
	"io"

	"github.com/jcorbin/matcalc/internal/flushio"
	"github.com/jcorbin/matcalc/internal/logio"
)

// CalcOption configures the Core shared by Calc and Scalar.
type CalcOption interface{ apply(core *Core) }

var defaults = []CalcOption{
	withOutput(io.Discard),
	withDiagnostics(nil),
}

func (core *Core) apply(opts ...CalcOption) {
	for _, opt := range defaults {
		if opt != nil {
			opt.apply(core)
		}
	}
	CalcOptions(opts...).apply(core)
}

// CalcOptions combines any number of options into one, skipping nils.
func CalcOptions(opts ...CalcOption) CalcOption {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type options []CalcOption

func (opts options) apply(core *Core) {
	for _, opt := range opts {
		opt.apply(core)
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(core *Core) {
	core.logfn = logfn
}

type inputOption []io.Reader
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type diagOption struct{ *logio.Logger }
type cellLimitOption uint
type depthLimitOption int

func withInput(rs ...io.Reader) inputOption        { return inputOption(rs) }
func withOutput(w io.Writer) outputOption          { return outputOption{w} }
func withTee(w io.Writer) teeOption                { return teeOption{w} }
func withDiagnostics(log *logio.Logger) diagOption { return diagOption{log} }
func withCellLimit(limit uint) cellLimitOption     { return cellLimitOption(limit) }
func withDepthLimit(limit int) depthLimitOption    { return depthLimitOption(limit) }

func (rs inputOption) apply(core *Core) {
	core.Queue = append(core.Queue, rs...)
}

func (o outputOption) apply(core *Core) {
	if core.out != nil {
		core.out.Flush()
	}
	core.out = flushio.New(o.Writer)
}

func (o teeOption) apply(core *Core) {
	core.out = flushio.Tee(core.out, flushio.New(o.Writer))
}

func (o diagOption) apply(core *Core) {
	if o.Logger == nil {
		o.Logger = logio.NewLogger(nil)
	}
	core.diag = o.Logger
}

func (lim cellLimitOption) apply(core *Core) {
	core.cells.Limit = uint(lim)
}

func (lim depthLimitOption) apply(core *Core) {
	core.depthLimit = int(lim)
}
