package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/matcalc/internal/logio"
)

type calcDumper struct {
	calc *Calc
	out  io.Writer
}

func (dump calcDumper) dump() {
	fmt.Fprintf(dump.out, "# Calc Dump\n")
	fmt.Fprintf(dump.out, "  at: %v\n", dump.calc.At)
	fmt.Fprintf(dump.out, "  diagnostics: %v\n", dump.calc.Diagnostics())

	st := dump.calc.cells.Stats()
	fmt.Fprintf(dump.out, "  cells: %v in use, %v peak, %v live of %v allocs\n",
		st.InUse, st.Peak, st.Live(), st.Allocs)

	dump.dumpStack()
}

func (dump calcDumper) dumpStack() {
	fmt.Fprintf(dump.out, "  stack: %v\n", dump.calc.shapes())
	for i := 0; i < dump.calc.stack.Size(); i++ {
		m, _ := dump.calc.stack.Peek(i)
		rows, columns := m.Dims()
		fmt.Fprintf(dump.out, "# [%v] %vx%v\n", i, rows, columns)
		for _, line := range strings.Split(strings.TrimRight(m.String(), "\n"), "\n") {
			if line != "" {
				fmt.Fprintf(dump.out, "  %v\n", strings.TrimRight(line, " "))
			}
		}
	}
}

// dumpLog dumps calculator state through the trace log, if any.
func (calc *Calc) dumpLog() {
	if calc.logfn == nil {
		return
	}
	lw := &logio.Writer{Prefix: "dump: ", Logf: calc.logfn}
	defer lw.Close()
	calcDumper{calc: calc, out: lw}.dump()
}
