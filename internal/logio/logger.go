package logio

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Logger implements a leveled line logging facility, around an output
// stream, that counts reported problems.
type Logger struct {
	sync.Mutex
	output   io.Writer
	buf      bytes.Buffer
	reports  int
	exitCode int
}

// NewLogger creates a Logger writing to out.
func NewLogger(out io.Writer) *Logger {
	var log Logger
	log.SetOutput(out)
	return &log
}

// SetOutput sets the logger's output stream.
func (log *Logger) SetOutput(out io.Writer) {
	log.Lock()
	defer log.Unlock()
	log.output = out
}

// ExitCode returns a code to pass to os.Exit, facilitating "exit non-zero if
// any error log" semantics: 1 after any Reportf or Errorf, 2 if the output
// stream itself failed.
func (log *Logger) ExitCode() int {
	log.Lock()
	defer log.Unlock()
	return log.exitCode
}

// Reports returns how many times Reportf has been called.
func (log *Logger) Reports() int {
	log.Lock()
	defer log.Unlock()
	return log.reports
}

// Leveledf returns a typical printf-style formatting function that logs
// messages with the given level.
func (log *Logger) Leveledf(level string) func(mess string, args ...interface{}) {
	return func(mess string, args ...interface{}) { log.Printf(level, mess, args...) }
}

// ErrorIf logs any non-nil error through Errorf.
func (log *Logger) ErrorIf(err error) {
	if err != nil {
		log.Errorf("%+v", err)
	}
}

// Errorf is like `Printf("ERROR", ...)` but additionally retains state so that
// ExitCode() will return non-zero.
func (log *Logger) Errorf(mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	log.raise(1)
	if err := log.printf("ERROR", mess, args...); err != nil {
		log.raise(2)
	}
}

// Reportf prints an unleveled line, like "message...\n", counting it as a
// reported problem so that Reports() and ExitCode() reflect it.
func (log *Logger) Reportf(mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	log.reports++
	log.raise(1)
	if err := log.printf("", mess, args...); err != nil {
		log.raise(2)
	}
}

// Printf prints a line to the output stream like "level: message...\n".
// Any io error is retained for ExitCode().
func (log *Logger) Printf(level, mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	if err := log.printf(level, mess, args...); err != nil {
		log.raise(2)
	}
}

func (log *Logger) raise(code int) {
	if log.exitCode < code {
		log.exitCode = code
	}
}

func (log *Logger) printf(level, mess string, args ...interface{}) error {
	if log.output == nil {
		return nil
	}
	log.buf.Reset()
	if level != "" {
		log.buf.WriteString(level)
		log.buf.WriteString(": ")
	}
	if len(args) > 0 {
		fmt.Fprintf(&log.buf, mess, args...)
	} else {
		log.buf.WriteString(mess)
	}
	if b := log.buf.Bytes(); len(b) == 0 || b[len(b)-1] != '\n' {
		log.buf.WriteByte('\n')
	}
	_, err := log.buf.WriteTo(log.output)
	return err
}
