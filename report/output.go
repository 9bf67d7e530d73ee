// Package report serializes a finalized word tally to text, JSON, or CSV,
// and renders the -verbose summary, writing to a file or to stdout/stderr.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
)

// Output writes to either a file or a stream like stdout or stderr,
// buffering writes and translating a downstream broken pipe (e.g. piping
// into `head`) into a clean return rather than an error.
type Output struct {
	w *bufio.Writer
	c io.Closer
}

// NewOutput chooses a destination: "-" or "" means stdout, any other
// path is created (truncating any existing file).
func NewOutput(path string) (*Output, error) {
	switch path {
	case "", "-":
		return Stdout(), nil
	default:
		return FileOutput(path)
	}
}

// FileOutput creates path and returns an Output writing to it.
func FileOutput(path string) (*Output, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	return &Output{w: bufio.NewWriter(f), c: f}, nil
}

// Stdout returns an Output writing to os.Stdout.
func Stdout() *Output {
	return &Output{w: bufio.NewWriter(os.Stdout)}
}

// Stderr returns an Output writing to os.Stderr.
func Stderr() *Output {
	return &Output{w: bufio.NewWriter(os.Stderr)}
}

// WriteLine writes line as-is, treating a broken pipe from a downstream
// reader as success rather than an error.
func (o *Output) WriteLine(line string) error {
	_, err := o.w.WriteString(line)
	return handleBrokenPipe(err)
}

// Flush flushes buffered output, also tolerating a broken pipe.
func (o *Output) Flush() error {
	return handleBrokenPipe(o.w.Flush())
}

// Close flushes and releases any underlying file handle.
func (o *Output) Close() error {
	if err := o.Flush(); err != nil {
		return err
	}
	if o.c == nil {
		return nil
	}
	return o.c.Close()
}

func handleBrokenPipe(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, syscall.EPIPE) || errors.Is(err, os.ErrClosed) || errors.Is(err, io.ErrClosedPipe) {
		return nil
	}
	return err
}
