package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func strictOptions() Options {
	opts := DefaultOptions()
	opts.Strict = true
	return opts
}

func TestDecodeEmpty(t *testing.T) {
	for _, opts := range []Options{DefaultOptions(), strictOptions()} {
		decoded, err := Decode(nil, opts)
		require.NoError(t, err)
		require.Empty(t, decoded)
		require.NotNil(t, decoded)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		input  string
		strict bool
		kind   error
		offset int64
	}{
		{"4", false, ErrInvalidAlignment, 0},
		{"4", true, ErrInvalidAlignment, 0},
		{"4G", false, ErrInvalidDigit, 1},
		{"4G", true, ErrInvalidDigit, 1},
		{"414", false, ErrInvalidAlignment, 2},
		{"41\n4", false, ErrInvalidAlignment, 3},
		{"4\n", false, ErrInvalidAlignment, 0},
		{"41 42", false, ErrInvalidDigit, 2},
		{"41\r\n42", false, ErrInvalidDigit, 2},
		{"41\n42", true, ErrInvalidDigit, 2},
		{"4142\n", true, ErrInvalidDigit, 4},
		{"4a", false, ErrInvalidDigit, 1},
	}

	for _, tt := range tests {
		opts := DefaultOptions()
		opts.Strict = tt.strict
		_, err := Decode([]byte(tt.input), opts)
		require.ErrorIs(t, err, tt.kind, "input %q strict=%v", tt.input, tt.strict)

		if tt.kind == ErrInvalidDigit {
			var digitErr *DigitError
			require.ErrorAs(t, err, &digitErr)
			require.Equal(t, tt.offset, digitErr.Offset, "input %q", tt.input)
		} else {
			var alignErr *AlignmentError
			require.ErrorAs(t, err, &alignErr)
			require.Equal(t, tt.offset, alignErr.Offset, "input %q", tt.input)
		}
	}
}

func TestDecodeToleratesNewlines(t *testing.T) {
	inputs := []string{
		"4142",
		"41\n42",
		"4\n142",
		"41\n4\n2\n",
		"\n\n41\n\n42\n\n",
		"4142\n",
	}

	for _, input := range inputs {
		decoded, err := Decode([]byte(input), DefaultOptions())
		require.NoError(t, err, "input %q", input)
		require.Equal(t, []byte{0x41, 0x42}, decoded, "input %q", input)
	}
}

func TestDecodeRespectsCase(t *testing.T) {
	lower := DefaultOptions()
	lower.Case = Lower

	decoded, err := Decode([]byte("deadbeef"), lower)
	require.NoError(t, err)
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, decoded)

	_, err = Decode([]byte("DEADBEEF"), lower)
	require.ErrorIs(t, err, ErrInvalidDigit)

	_, err = Decode([]byte("deadbeef"), DefaultOptions())
	require.ErrorIs(t, err, ErrInvalidDigit)
}

func TestDecoderCarriesHalfPairAcrossCalls(t *testing.T) {
	dec := NewDecoder(DefaultOptions())

	out, err := dec.Append(nil, []byte("414"))
	require.NoError(t, err)
	require.Equal(t, []byte("A"), out)
	require.True(t, dec.Pending())

	out, err = dec.Append(out, []byte("\n"))
	require.NoError(t, err)
	require.True(t, dec.Pending())

	out, err = dec.Append(out, []byte("2"))
	require.NoError(t, err)
	require.Equal(t, []byte("AB"), out)
	require.NoError(t, dec.Finish())

	dec.Reset()
	_, err = dec.Append(nil, []byte("4"))
	require.NoError(t, err)
	require.ErrorIs(t, dec.Finish(), ErrInvalidAlignment)
}

func TestDecoderOffsetsSpanCalls(t *testing.T) {
	dec := NewDecoder(DefaultOptions())
	_, err := dec.Append(nil, []byte("4142\n"))
	require.NoError(t, err)

	_, err = dec.Append(nil, []byte("43x"))
	var digitErr *DigitError
	require.ErrorAs(t, err, &digitErr)
	require.Equal(t, int64(7), digitErr.Offset)
	require.Equal(t, byte('x'), digitErr.Char)
}

func TestRoundTripProperties(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		data := make([]byte, random.Intn(300))
		_, _ = random.Read(data)

		for _, c := range []Case{Upper, Lower} {
			for _, wrap := range []bool{true, false} {
				opts := Options{Case: c, Wrap: wrap, LineWidth: DefaultLineWidth}

				// decode(encode(b)) == b
				encoded := Encode(data, opts)
				decoded, err := Decode([]byte(encoded), opts)
				require.NoError(t, err)
				require.True(t, bytes.Equal(data, decoded))

				// encode(decode(h)) == h for unwrapped, newline free hex
				flat := strings.ReplaceAll(encoded, "\n", "")
				decoded, err = Decode([]byte(flat), Options{Case: c, Strict: true})
				require.NoError(t, err)
				require.Equal(t, flat, Encode(decoded, Options{Case: c}))
			}
		}
	}
}
