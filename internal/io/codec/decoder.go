package codec

import "slices"

// Decoder turns hex text back into bytes. A high nibble left over at the end of one call
// is kept until the next one, so a byte pair may be split by chunk boundaries or by a
// newline. Call Finish once the stream has ended.
//
// In lenient mode every '\n' is skipped. In strict mode '\n' is just another invalid digit.
type Decoder struct {
	table  *Table
	strict bool

	high      byte
	pending   bool
	pendingAt int64

	// offset of the next character in the whole stream
	offset int64
}

func NewDecoder(opts Options) *Decoder {
	return &Decoder{table: tableFor(opts.Case), strict: opts.Strict}
}

// Decode is the one-shot form of Decoder.Append followed by Decoder.Finish.
func Decode(src []byte, opts Options) ([]byte, error) {
	d := NewDecoder(opts)
	out, err := d.Append(nil, src)
	if err != nil {
		return nil, err
	}
	if err := d.Finish(); err != nil {
		return nil, err
	}
	if out == nil {
		out = []byte{}
	}
	return out, nil
}

// Append decodes src and appends the complete bytes to dst. On error the bytes decoded
// before the offending character are still returned.
func (d *Decoder) Append(dst, src []byte) ([]byte, error) {
	dst = slices.Grow(dst, (len(src)+1)/2)
	dec := &d.table.decode
	for i, c := range src {
		n := dec[c]
		if n == invalidNibble {
			if c == '\n' && !d.strict {
				continue
			}
			at := d.offset + int64(i)
			d.offset += int64(len(src))
			return dst, &DigitError{Char: c, Offset: at}
		}

		if d.pending {
			dst = append(dst, d.high<<4|n)
			d.pending = false
		} else {
			d.high = n
			d.pending = true
			d.pendingAt = d.offset + int64(i)
		}
	}
	d.offset += int64(len(src))
	return dst, nil
}

// Finish reports an AlignmentError if the stream ended in the middle of a byte pair.
func (d *Decoder) Finish() error {
	if d.pending {
		return &AlignmentError{Offset: d.pendingAt}
	}
	return nil
}

func (d *Decoder) Pending() bool {
	return d.pending
}

func (d *Decoder) Reset() {
	d.pending = false
	d.high = 0
	d.pendingAt = 0
	d.offset = 0
}
