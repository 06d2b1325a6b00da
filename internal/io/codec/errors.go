package codec

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDigit     = errors.New("invalid hex digit")
	ErrInvalidAlignment = errors.New("invalid hex alignment")
)

// DigitError reports a character outside the configured alphabet.
// Offset is the position in the whole hex stream, or -1 when unknown.
type DigitError struct {
	Char   byte
	Offset int64
}

func (e *DigitError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%s %q", ErrInvalidDigit, e.Char)
	}
	return fmt.Sprintf("%s %q at offset %d", ErrInvalidDigit, e.Char, e.Offset)
}

func (e *DigitError) Unwrap() error {
	return ErrInvalidDigit
}

// AlignmentError reports a hex stream that ended in the middle of a byte pair.
type AlignmentError struct {
	Offset int64
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("%s: incomplete byte pair at offset %d", ErrInvalidAlignment, e.Offset)
}

func (e *AlignmentError) Unwrap() error {
	return ErrInvalidAlignment
}
