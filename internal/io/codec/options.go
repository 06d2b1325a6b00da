package codec

import "fmt"

// DefaultLineWidth is the number of hex characters (32 bytes) per wrapped line.
const DefaultLineWidth = 64

// Options configure both directions of the codec. The zero value encodes upper case
// without wrapping and decodes leniently; DefaultOptions turns wrapping on.
type Options struct {
	Case Case

	// Wrap inserts a newline after every LineWidth encoded characters.
	Wrap      bool
	LineWidth int

	// Strict makes the decoder treat newlines as invalid digits.
	Strict bool
}

func DefaultOptions() Options {
	return Options{Case: Upper, Wrap: true, LineWidth: DefaultLineWidth}
}

func (o Options) Validate() error {
	if o.Case != Upper && o.Case != Lower {
		return fmt.Errorf("invalid case: %s", o.Case)
	}
	if o.Wrap && (o.LineWidth < 0 || o.LineWidth%2 != 0) {
		return fmt.Errorf("line width must be a positive even number, got %d", o.LineWidth)
	}
	return nil
}

func (o Options) lineWidth() int {
	if o.LineWidth <= 0 {
		return DefaultLineWidth
	}
	return o.LineWidth
}
