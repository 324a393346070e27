package core

import (
	"bufio"
	"os"
)

// WriteLines writes each line to path followed by a newline, replacing any
// existing file. Every failure, including the final flush and close, is
// reported as a *WriteError.
func WriteLines(path string, lines []string) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &WriteError{Path: path, Err: cerr}
		}
	}()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return &WriteError{Path: path, Err: err}
		}
		if err := w.WriteByte('\n'); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}
	if err := w.Flush(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
