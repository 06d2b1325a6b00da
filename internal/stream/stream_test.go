package stream

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/Anivice/bin2hex/internal/io/codec"
	"github.com/Anivice/bin2hex/internal/io/core"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func randomBytes(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(rand.Intn(256))
	}
	return buf
}

func TestBin2HexMatchesOneShotEncoding(t *testing.T) {
	data := randomBytes(600 * 1024)

	for _, wrap := range []bool{true, false} {
		opts := DefaultOptions()
		opts.Codec.Wrap = wrap

		out := &bytes.Buffer{}
		stats, err := Bin2Hex(bytes.NewReader(data), out, opts)
		require.NoError(t, err)

		require.Equal(t, 3, stats.Chunks)
		require.Equal(t, int64(len(data)), stats.BytesIn)
		require.Equal(t, int64(out.Len()), stats.BytesOut)
		require.Equal(t, codec.Encode(data, opts.Codec)+"\n", out.String(), "wrap=%v", wrap)
	}
}

func TestBin2HexEmptyInput(t *testing.T) {
	out := &bytes.Buffer{}
	stats, err := Bin2Hex(bytes.NewReader(nil), out, DefaultOptions())

	require.NoError(t, err)
	require.Equal(t, "\n", out.String())
	require.Equal(t, 0, stats.Chunks)
}

func TestBin2HexFullLineGetsDriverNewlineToo(t *testing.T) {
	out := &bytes.Buffer{}
	_, err := Bin2Hex(bytes.NewReader(make([]byte, 32)), out, DefaultOptions())

	require.NoError(t, err)
	require.Equal(t, strings.Repeat("0", 64)+"\n\n", out.String())

	// and it still decodes
	decoded := &bytes.Buffer{}
	_, err = Hex2Bin(out, decoded, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, make([]byte, 32), decoded.Bytes())
}

func TestRoundTripWithOddChunkSizes(t *testing.T) {
	data := randomBytes(10000)

	for _, chunkSize := range []int{1, 3, 7, 64, 65, 4096} {
		for _, c := range []codec.Case{codec.Upper, codec.Lower} {
			opts := DefaultOptions()
			opts.ChunkSize = chunkSize
			opts.Codec.Case = c

			encoded := &bytes.Buffer{}
			_, err := Bin2Hex(bytes.NewReader(data), encoded, opts)
			require.NoError(t, err)

			decoded := &bytes.Buffer{}
			_, err = Hex2Bin(encoded, decoded, opts)
			require.NoError(t, err, "chunk size %d", chunkSize)
			require.Equal(t, data, decoded.Bytes(), "chunk size %d", chunkSize)
		}
	}
}

func TestHex2BinTerminalNewline(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		terminal bool
		expected string
	}{
		{"appended", "4142\n", true, "AB\n"},
		{"not needed", "41420A\n", true, "AB\n"},
		{"empty", "", true, "\n"},
		{"file target", "4142\n", false, "AB"},
		{"empty file target", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.TerminalNewline = tt.terminal
			out := &bytes.Buffer{}

			_, err := Hex2Bin(strings.NewReader(tt.input), out, opts)
			require.NoError(t, err)
			require.Equal(t, tt.expected, out.String())
		})
	}
}

func TestHex2BinTracksNewlineAcrossChunks(t *testing.T) {
	// the newline byte ends the first chunk's output, the second chunk only holds the line break
	opts := DefaultOptions()
	opts.ChunkSize = 6
	opts.TerminalNewline = true
	out := &bytes.Buffer{}

	_, err := Hex2Bin(strings.NewReader("41420A\n"), out, opts)
	require.NoError(t, err)
	require.Equal(t, "AB\n", out.String())
}

func TestHex2BinCodecErrors(t *testing.T) {
	out := &bytes.Buffer{}
	_, err := Hex2Bin(strings.NewReader("4142\n4G"), out, DefaultOptions())
	require.ErrorIs(t, err, codec.ErrInvalidDigit)
	require.NotErrorIs(t, err, ErrIOFailure)

	var digitErr *codec.DigitError
	require.ErrorAs(t, err, &digitErr)
	require.Equal(t, int64(6), digitErr.Offset)

	_, err = Hex2Bin(strings.NewReader("414"), &bytes.Buffer{}, DefaultOptions())
	require.ErrorIs(t, err, codec.ErrInvalidAlignment)
}

func TestHex2BinStrict(t *testing.T) {
	opts := DefaultOptions()
	opts.Codec.Strict = true

	out := &bytes.Buffer{}
	_, err := Hex2Bin(strings.NewReader("4142"), out, opts)
	require.NoError(t, err)
	require.Equal(t, "AB", out.String())

	_, err = Hex2Bin(strings.NewReader("41\n42"), &bytes.Buffer{}, opts)
	require.ErrorIs(t, err, codec.ErrInvalidDigit)
}

func TestShortWriteIsFatal(t *testing.T) {
	sink := &core.LimitedWriter{Limit: 10}
	_, err := Bin2Hex(bytes.NewReader(randomBytes(100)), sink, DefaultOptions())

	require.ErrorIs(t, err, ErrIOFailure)
	require.ErrorIs(t, err, io.ErrShortWrite)
	require.Len(t, sink.Written, 10)
}

func TestWriteErrorIsFatal(t *testing.T) {
	broken := errors.New("broken pipe")
	opts := DefaultOptions()
	opts.ChunkSize = 16

	_, err := Hex2Bin(strings.NewReader(strings.Repeat("AB", 100)), &core.FailingWriter{Budget: 20, Err: broken}, opts)
	require.ErrorIs(t, err, ErrIOFailure)
	require.ErrorIs(t, err, broken)
}

func TestReadErrorIsFatal(t *testing.T) {
	broken := errors.New("input/output error")
	src := core.NewChannelReader()
	src.WriteString("some bytes")
	src.Fail(broken)

	out := &bytes.Buffer{}
	_, err := Bin2Hex(src, out, DefaultOptions())
	require.ErrorIs(t, err, ErrIOFailure)
	require.ErrorIs(t, err, broken)
	require.Empty(t, out.String())
}

func TestStreamsThroughPipes(t *testing.T) {
	data := randomBytes(700 * 1024)
	opts := DefaultOptions()
	opts.ChunkSize = 64 * 1024

	binR, binW := io.Pipe()
	hexR, hexW := io.Pipe()
	decoded := &bytes.Buffer{}

	group := errgroup.Group{}
	group.Go(func() error {
		// many small writes, the reader still sees full chunks
		for _, piece := range core.RandomlySlice(data) {
			if _, err := binW.Write(piece); err != nil {
				return err
			}
		}
		return binW.Close()
	})
	group.Go(func() error {
		_, err := Bin2Hex(binR, hexW, opts)
		return hexW.CloseWithError(err)
	})
	group.Go(func() error {
		stats, err := Hex2Bin(hexR, decoded, opts)
		if err == nil && stats.BytesOut != int64(len(data)) {
			return errors.New("decoded size mismatch")
		}
		return err
	})

	require.NoError(t, group.Wait())
	require.Equal(t, data, decoded.Bytes())
}
