package codec

import (
	stdio "io"
)

type hexEncoderWriter struct {
	*genericConverterWriter
}

// HexWriter encodes everything written to it as hex text on dst. The line column is carried
// across writes. Close does not add a trailing newline.
func HexWriter(dst stdio.Writer, opts Options) stdio.WriteCloser {
	enc := NewEncoder(opts)
	converter := func(buf, p []byte) ([]byte, error) {
		return enc.Append(buf, p), nil
	}
	return &hexEncoderWriter{&genericConverterWriter{Writer: dst, Name: "hex", Converter: converter, Finisher: enc.Finish}}
}

// ----------------------------------------------------------------------------------------------------------------

type hexDecoderWriter struct {
	*genericConverterWriter
}

// BinWriter decodes the hex text written to it and writes the bytes to dst.
// Close fails with an AlignmentError when the text ended in the middle of a pair.
func BinWriter(dst stdio.Writer, opts Options) stdio.WriteCloser {
	dec := NewDecoder(opts)
	return &hexDecoderWriter{&genericConverterWriter{Writer: dst, Name: "hex", Converter: dec.Append, Finisher: dec.Finish}}
}

// ----------------------------------------------------------------------------------------------------------------

type hexDecoderReader struct {
	*genericConverterReader
}

// HexReader decodes the hex text read from src.
func HexReader(src stdio.Reader, opts Options) stdio.Reader {
	dec := NewDecoder(opts)
	return &hexDecoderReader{&genericConverterReader{Reader: src, Name: "hex", Converter: dec.Append, Finisher: dec.Finish}}
}
