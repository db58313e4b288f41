package logio_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jcorbin/matcalc/internal/logio"
	"github.com/stretchr/testify/assert"
)

func Test_Logger(t *testing.T) {
	var out strings.Builder
	log := logio.NewLogger(&out)

	log.Printf("TRACE", "token %q", "+")
	assert.Equal(t, 0, log.ExitCode(), "expected clean exit after Printf")
	assert.Equal(t, 0, log.Reports())

	log.Reportf("stdin:1: Bad message")
	log.Reportf("stdin:%v: %v", 2, "Bad address")
	assert.Equal(t, 2, log.Reports())
	assert.Equal(t, 1, log.ExitCode(), "expected failing exit after Reportf")

	log.ErrorIf(nil)
	log.ErrorIf(errors.New("boom"))
	log.Leveledf("INFO")("done %v", 1)

	assert.Equal(t, strings.Join([]string{
		`TRACE: token "+"`,
		`stdin:1: Bad message`,
		`stdin:2: Bad address`,
		`ERROR: boom`,
		`INFO: done 1`,
	}, "\n")+"\n", out.String())
	assert.Equal(t, 2, log.Reports(), "expected errors not counted as reports")
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("nope") }

func Test_Logger_outputError(t *testing.T) {
	log := logio.NewLogger(failWriter{})
	log.Reportf("lost")
	assert.Equal(t, 2, log.ExitCode(), "expected output failure exit code")

	var quiet logio.Logger
	quiet.Reportf("nowhere")
	assert.Equal(t, 1, quiet.ExitCode(), "expected nil output to still count")
}

func Test_Writer(t *testing.T) {
	var lines []string
	lw := &logio.Writer{Prefix: "out: ", Logf: func(mess string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(mess, args...))
	}}
	fmt.Fprintf(lw, "a\nb")
	assert.Equal(t, []string{"out: a"}, lines, "expected only complete lines")
	fmt.Fprintf(lw, "c\n\nd")
	lw.Close()
	assert.Equal(t, []string{"out: a", "out: bc", "out: ", "out: d"}, lines)
}
