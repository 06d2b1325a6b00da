// Package stream drives the hex codec over byte streams: the source is consumed in fixed-size
// chunks and every chunk is converted and written out before the next one is read, so memory
// stays bounded by the chunk size however long the stream is.
package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/Anivice/bin2hex/internal/io/codec"
	"github.com/Anivice/bin2hex/internal/io/core"
	"github.com/alecthomas/units"
	"github.com/sirupsen/logrus"
)

const DefaultChunkSize = int(256 * units.KiB)

// ErrIOFailure marks errors of the source or the sink, as opposed to codec errors.
var ErrIOFailure = errors.New("i/o failure")

type Options struct {
	Codec     codec.Options
	ChunkSize int

	// TerminalNewline makes Hex2Bin end its output with a newline if the decoded data
	// does not already end with one.
	TerminalNewline bool
}

func DefaultOptions() Options {
	return Options{Codec: codec.DefaultOptions(), ChunkSize: DefaultChunkSize}
}

func (o Options) chunkSize() int {
	if o.ChunkSize <= 0 {
		return DefaultChunkSize
	}
	return o.ChunkSize
}

type Stats struct {
	Chunks   int
	BytesIn  int64
	BytesOut int64
}

// Bin2Hex encodes src to dst and terminates the output with exactly one newline, whether
// wrapping is enabled or not.
func Bin2Hex(src io.Reader, dst io.Writer, opts Options) (Stats, error) {
	out := newSink(dst)
	stats, err := pump(src, codec.HexWriter(out, opts.Codec), opts.chunkSize(), out)
	if err != nil {
		return stats, err
	}

	if _, err := out.Write([]byte{'\n'}); err != nil {
		return stats, err
	}
	stats.BytesOut = out.written
	logrus.Debugf("encoded %d bytes into %d characters in %d chunks", stats.BytesIn, stats.BytesOut, stats.Chunks)
	return stats, nil
}

// Hex2Bin decodes src to dst. With TerminalNewline set, a newline is appended when the decoded
// data does not end with one, so a terminal prompt starts on a fresh line.
func Hex2Bin(src io.Reader, dst io.Writer, opts Options) (Stats, error) {
	out := newSink(dst)
	stats, err := pump(src, codec.BinWriter(out, opts.Codec), opts.chunkSize(), out)
	if err != nil {
		return stats, err
	}

	if opts.TerminalNewline && out.last != '\n' {
		if _, err := out.Write([]byte{'\n'}); err != nil {
			return stats, err
		}
	}
	stats.BytesOut = out.written
	logrus.Debugf("decoded %d characters into %d bytes in %d chunks", stats.BytesIn, stats.BytesOut, stats.Chunks)
	return stats, nil
}

func pump(src io.Reader, conv io.WriteCloser, chunkSize int, out *sink) (Stats, error) {
	stats := Stats{}
	chunks := core.NewChunkReader(src, chunkSize)
	for {
		chunk, err := chunks.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("%w: reading from \"%s\": %w", ErrIOFailure, core.DetermineReaderName(src), err)
		}

		stats.Chunks++
		stats.BytesIn += int64(len(chunk))
		logrus.Tracef("chunk #%d: %d bytes", stats.Chunks, len(chunk))
		if _, err := conv.Write(chunk); err != nil {
			return stats, err
		}
	}

	if err := conv.Close(); err != nil {
		return stats, err
	}
	stats.BytesOut = out.written
	return stats, nil
}

// ----------------------------------------------------------------------------------------------------------------

// sink remembers the last byte that reached the destination and tags every failure
// as an ErrIOFailure.
type sink struct {
	w       io.Writer
	name    string
	last    byte
	written int64
}

func newSink(w io.Writer) *sink {
	return &sink{w: core.NewExactWriter(w), name: core.DetermineWriterName(w)}
}

func (s *sink) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n, err := s.w.Write(p)
	s.written += int64(n)
	if n > 0 {
		s.last = p[n-1]
	}
	if err != nil {
		return n, fmt.Errorf("%w: writing to \"%s\": %w", ErrIOFailure, s.name, err)
	}
	return n, nil
}
