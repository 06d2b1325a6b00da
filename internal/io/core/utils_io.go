package core

import (
	"io"
	"strings"
)

// NewExactWriter turns a short write into io.ErrShortWrite instead of trusting the
// wrapped Writer to report it.
func NewExactWriter(w io.Writer) io.Writer {
	return &exactWriter{w}
}

type exactWriter struct {
	w io.Writer
}

func (e *exactWriter) Write(p []byte) (int, error) {
	n, err := e.w.Write(p)
	if err == nil && n != len(p) {
		err = io.ErrShortWrite
	}
	return n, err
}

// ------------------------------------------------------------------------

func NopWCloser(w io.Writer) io.WriteCloser {
	return WithWCloser(w, func() error { return nil })
}

func WithWCloser(w io.Writer, f func() error) io.WriteCloser {
	return &withWCloser{w, f}
}

type withWCloser struct {
	io.Writer
	f func() error
}

func (c *withWCloser) Close() error {
	return c.f()
}

// ------------------------------------------------------------------------

func NopRCloser(r io.Reader) io.ReadCloser {
	return WithRCloser(r, func() error { return nil })
}

func WithRCloser(r io.Reader, f func() error) io.ReadCloser {
	return &withRCloser{r, f}
}

type withRCloser struct {
	io.Reader
	f func() error
}

func (c *withRCloser) Close() error {
	return c.f()
}

// ------------------------------------------------------------------------

func IsAlreadyClosed(err error) bool {
	return err != nil && (strings.Contains(err.Error(), "use of closed") || strings.Contains(err.Error(), "already closed"))
}
