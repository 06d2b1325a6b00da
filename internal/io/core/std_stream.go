package core

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// StdStream is the path that stands for standard input or standard output.
const StdStream = "-"

// OpenInput opens path for reading. StdStream yields os.Stdin, which is never closed.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == StdStream {
		return NopRCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("opened \"%s\" for reading", path)
	return f, nil
}

// OpenOutput creates or truncates path, readable and writable by the owner only.
// StdStream yields os.Stdout, which is never closed.
func OpenOutput(path string) (io.WriteCloser, error) {
	if path == StdStream {
		return NopWCloser(os.Stdout), nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("opened \"%s\" for writing", path)
	return f, nil
}

// IsTerminal reports whether w ends up on a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := unwrapFile(w)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func unwrapFile(w io.Writer) (*os.File, bool) {
	for {
		switch v := w.(type) {
		case *os.File:
			return v, true
		case *withWCloser:
			w = v.Writer
		case *exactWriter:
			w = v.w
		case *WriterLogInterceptor:
			w = v.Writer
		default:
			return nil, false
		}
	}
}
