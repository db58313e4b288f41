package main

import (
	"io"

	"github.com/jcorbin/matcalc/internal/logio"
)

// New creates a matrix calculator; by default it has no input, and discards
// both output and diagnostics.
func New(opts ...CalcOption) *Calc {
	var calc Calc
	calc.apply(opts...)
	return &calc
}

// NewScalar creates an integer calculator, configured like New.
func NewScalar(opts ...CalcOption) *Scalar {
	var sc Scalar
	sc.apply(opts...)
	return &sc
}

func WithInput(rs ...io.Reader) CalcOption              { return withInput(rs...) }
func WithOutput(w io.Writer) CalcOption                 { return withOutput(w) }
func WithTee(w io.Writer) CalcOption                    { return withTee(w) }
func WithCellLimit(limit uint) CalcOption               { return withCellLimit(limit) }
func WithDepthLimit(limit int) CalcOption               { return withDepthLimit(limit) }
func WithDiagnostics(w io.Writer) CalcOption            { return withDiagnostics(logio.NewLogger(w)) }
func WithDiagnosticLogger(log *logio.Logger) CalcOption { return withDiagnostics(log) }

func WithLogf(logfn func(mess string, args ...interface{})) CalcOption { return withLogfn(logfn) }
