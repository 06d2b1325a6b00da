package codec

import (
	"github.com/Anivice/bin2hex/internal/io/core"
	"github.com/sirupsen/logrus"
	stdio "io"
)

const readBufferSize = 32 * 1024

type converter func(dst, p []byte) ([]byte, error)

// genericConverterWriter converts every Write and passes the result on to the wrapped Writer
// in a single call. Close reports errors only visible at end of stream, it does not close
// the wrapped Writer.
type genericConverterWriter struct {
	stdio.Writer
	Name      string
	Converter converter
	Finisher  func() error
	buf       []byte
}

func (w *genericConverterWriter) Write(p []byte) (int, error) {
	logrus.Tracef("request write to \"%s\" in %s (raw): %s", core.DetermineWriterName(w.Writer), w.Name, core.Preview(p))
	converted, err := w.Converter(w.buf[:0], p)
	w.buf = converted
	if err != nil {
		return 0, err
	}
	n, err := w.Writer.Write(converted)
	if err != nil {
		return 0, err
	}
	if n != len(converted) {
		return 0, stdio.ErrShortWrite
	}
	logrus.Tracef("wrote to \"%s\" in %s codec: %s", core.DetermineWriterName(w.Writer), w.Name, core.Preview(converted))

	return len(p), nil
}

func (w *genericConverterWriter) Close() error {
	return w.Finisher()
}

// ----------------------------------------------------------------------------------------------------------------

// genericConverterReader reads from the wrapped Reader and hands out converted data.
// Once the wrapped Reader is exhausted Finisher decides between io.EOF and an error.
type genericConverterReader struct {
	stdio.Reader
	Name      string
	Converter converter
	Finisher  func() error
	in        []byte
	out       []byte
	err       error
}

func (r *genericConverterReader) Read(p []byte) (int, error) {
	for len(r.out) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		if r.in == nil {
			r.in = make([]byte, readBufferSize)
		}

		n, err := r.Reader.Read(r.in)
		if n > 0 {
			logrus.Tracef("request read from \"%s\" in %s (raw): %s", core.DetermineReaderName(r.Reader), r.Name, core.Preview(r.in[:n]))
			converted, cerr := r.Converter(r.out[:0], r.in[:n])
			if cerr != nil {
				r.out = nil
				r.err = cerr
				return 0, cerr
			}
			r.out = converted
			logrus.Tracef("read from \"%s\" in %s codec: %s", core.DetermineReaderName(r.Reader), r.Name, core.Preview(converted))
		}

		if err == stdio.EOF {
			if ferr := r.Finisher(); ferr != nil {
				r.err = ferr
			} else {
				r.err = stdio.EOF
			}
		} else if err != nil {
			r.err = err
		}
	}

	n := copy(p, r.out)
	r.out = r.out[n:]
	return n, nil
}
