package codec

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidNibble = errors.New("nibble out of range")

// Case selects the alphabet used for the digits 10 to 15.
type Case int

const (
	Upper Case = iota
	Lower
)

func (c Case) String() string {
	switch c {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	default:
		return fmt.Sprintf("Case(%d)", int(c))
	}
}

func ParseCase(s string) (Case, error) {
	switch strings.ToLower(s) {
	case "upper":
		return Upper, nil
	case "lower":
		return Lower, nil
	default:
		return Upper, fmt.Errorf("invalid case: %s", s)
	}
}

// ----------------------------------------------------------------------------------------------------------------

const invalidNibble = 0xFF

// Table is the two-way mapping between nibbles and the 16 digits of one alphabet.
// A table never accepts digits of the other case.
type Table struct {
	c      Case
	encode [16]byte
	decode [256]byte
}

var (
	UpperTable = NewTable(Upper)
	LowerTable = NewTable(Lower)
)

func NewTable(c Case) *Table {
	digits := "0123456789ABCDEF"
	if c == Lower {
		digits = "0123456789abcdef"
	}

	t := &Table{c: c}
	for i := range t.decode {
		t.decode[i] = invalidNibble
	}
	for n := 0; n < 16; n++ {
		t.encode[n] = digits[n]
		t.decode[digits[n]] = byte(n)
	}
	return t
}

func tableFor(c Case) *Table {
	if c == Lower {
		return LowerTable
	}
	return UpperTable
}

func (t *Table) Case() Case {
	return t.c
}

func (t *Table) NibbleToHex(n byte) (byte, error) {
	if n > 0x0F {
		return 0, fmt.Errorf("%w: %d", ErrInvalidNibble, n)
	}
	return t.encode[n], nil
}

func (t *Table) HexToNibble(c byte) (byte, error) {
	n := t.decode[c]
	if n == invalidNibble {
		return 0, &DigitError{Char: c, Offset: -1}
	}
	return n, nil
}
