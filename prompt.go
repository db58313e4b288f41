package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/peterh/liner"
)

const historyFile = ".matcalc_history"

// promptReader reads input a line at a time from an interactive terminal,
// with line editing and history.
type promptReader struct {
	ln     *liner.State
	prompt string
	buf    []byte
	err    error
}

func newPromptReader(prompt string) *promptReader {
	pr := &promptReader{ln: liner.NewLiner(), prompt: prompt}
	pr.ln.SetCtrlCAborts(true)
	if f, err := os.Open(historyPath()); err == nil {
		_, _ = pr.ln.ReadHistory(f)
		_ = f.Close()
	}
	return pr
}

func historyPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, historyFile)
}

func (pr *promptReader) Name() string { return "<prompt>" }

// Read returns bytes from the last line entered, prompting for another line
// once that is used up; an aborted line is discarded.
func (pr *promptReader) Read(p []byte) (int, error) {
	for len(pr.buf) == 0 {
		if pr.err != nil {
			return 0, pr.err
		}
		if pr.ln == nil {
			return 0, os.ErrClosed
		}
		line, err := pr.ln.Prompt(pr.prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		} else if err != nil {
			pr.err = err
		}
		if line != "" {
			pr.ln.AppendHistory(line)
			pr.buf = append(pr.buf, line...)
			pr.buf = append(pr.buf, '\n')
		}
	}
	n := copy(p, pr.buf)
	pr.buf = pr.buf[n:]
	return n, nil
}

// Close saves history and restores the terminal; only the first call does
// anything.
func (pr *promptReader) Close() error {
	if pr.ln == nil {
		return nil
	}
	defer func() { pr.ln = nil }()
	if f, err := os.Create(historyPath()); err == nil {
		_, _ = pr.ln.WriteHistory(f)
		_ = f.Close()
	}
	return pr.ln.Close()
}

var _ io.ReadCloser = (*promptReader)(nil)
