package core

import (
	"errors"
	"io"
)

// ChunkReader cuts a stream into fixed-size chunks. Every chunk is filled completely unless
// the stream ends first; a short or empty chunk is therefore always the last one.
type ChunkReader struct {
	r    io.Reader
	buf  []byte
	done bool
}

func NewChunkReader(r io.Reader, size int) *ChunkReader {
	if size <= 0 {
		panic("chunk size must be positive")
	}
	return &ChunkReader{r: r, buf: make([]byte, size)}
}

// Next returns the next chunk, which is only valid until the following call.
// It returns io.EOF once the stream is exhausted; the last chunk itself is returned
// with a nil error.
func (c *ChunkReader) Next() ([]byte, error) {
	if c.done {
		return nil, io.EOF
	}

	n, err := io.ReadFull(c.r, c.buf)
	switch {
	case err == nil:
		return c.buf, nil
	case errors.Is(err, io.ErrUnexpectedEOF):
		c.done = true
		return c.buf[:n], nil
	case errors.Is(err, io.EOF):
		c.done = true
		return nil, io.EOF
	default:
		c.done = true
		return nil, err
	}
}

func (c *ChunkReader) Size() int {
	return len(c.buf)
}
