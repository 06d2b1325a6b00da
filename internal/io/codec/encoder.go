package codec

import "slices"

// Encoder turns bytes into hex text. When wrapping is enabled it remembers the column of
// the current line between calls, so feeding a stream chunk by chunk produces the same
// text as encoding it in one go.
type Encoder struct {
	table  *Table
	wrap   bool
	width  int
	column int
}

func NewEncoder(opts Options) *Encoder {
	return &Encoder{
		table: tableFor(opts.Case),
		wrap:  opts.Wrap,
		width: opts.lineWidth(),
	}
}

// Encode is the one-shot form of Encoder.Append. No trailing newline is added other than
// the one closing a full line.
func Encode(src []byte, opts Options) string {
	return string(NewEncoder(opts).Append(nil, src))
}

// EncodedLen returns the exact number of characters Append would produce for n more bytes.
func (e *Encoder) EncodedLen(n int) int {
	size := 2 * n
	if e.wrap {
		size += (e.column + 2*n) / e.width
	}
	return size
}

func (e *Encoder) Append(dst, src []byte) []byte {
	dst = slices.Grow(dst, e.EncodedLen(len(src)))
	enc := &e.table.encode
	for _, b := range src {
		dst = append(dst, enc[b>>4], enc[b&0x0F])
		if !e.wrap {
			continue
		}
		e.column += 2
		if e.column >= e.width {
			dst = append(dst, '\n')
			e.column = 0
		}
	}
	return dst
}

// Column is the number of characters already written on the current line.
func (e *Encoder) Column() int {
	return e.column
}

func (e *Encoder) Reset() {
	e.column = 0
}

// Finish exists so an Encoder can be driven like a Decoder; encoding never fails.
func (e *Encoder) Finish() error {
	return nil
}
