package internal

import (
	"io"

	"github.com/Anivice/bin2hex/internal/config"
	"github.com/Anivice/bin2hex/internal/io/codec"
	"github.com/Anivice/bin2hex/internal/io/core"
	"github.com/Anivice/bin2hex/internal/stream"
	"github.com/sirupsen/logrus"
	"github.com/ztrue/tracerr"
)

// streamOptions translates the loaded configuration into driver options. The output path
// decides the terminal newline for the "stdout" policy.
func streamOptions(cfg *config.Struct, output string, dst io.Writer) (stream.Options, error) {
	c := codec.Upper
	if cfg.Codec.Case == config.Lower {
		c = codec.Lower
	}

	opts := stream.Options{
		Codec: codec.Options{
			Case:      c,
			Wrap:      cfg.Codec.Wrap,
			LineWidth: cfg.Codec.LineWidth,
			Strict:    cfg.Codec.Strict,
		},
		ChunkSize: int(cfg.Stream.ChunkSize),
	}
	if err := opts.Codec.Validate(); err != nil {
		return opts, tracerr.Wrap(err)
	}

	switch cfg.Stream.TerminalNewline {
	case config.Stdout:
		opts.TerminalNewline = output == core.StdStream
	case config.Tty:
		opts.TerminalNewline = core.IsTerminal(dst)
	case config.Never:
		opts.TerminalNewline = false
	}
	return opts, nil
}

type runFunc func(src io.Reader, dst io.Writer, opts stream.Options) (stream.Stats, error)

func run(input, output string, convert runFunc) (stream.Stats, error) {
	src, err := core.OpenInput(input)
	if err != nil {
		return stream.Stats{}, tracerr.Wrap(err)
	}
	defer func() {
		if err := src.Close(); err != nil && !core.IsAlreadyClosed(err) {
			logrus.Warnf("failed to close %s: %s", core.DetermineReaderName(src), err.Error())
		}
	}()

	dst, err := core.OpenOutput(output)
	if err != nil {
		return stream.Stats{}, tracerr.Wrap(err)
	}

	opts, err := streamOptions(&config.Config, output, dst)
	if err != nil {
		_ = dst.Close()
		return stream.Stats{}, err
	}
	logrus.Debugf("%s %s -> %s with %+v", config.Mode, core.DetermineReaderName(src), core.DetermineWriterName(dst), opts)

	// fully log byte transfers if trace-level logging is enabled
	var in io.Reader = src
	var out io.Writer = dst
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		in = core.NewReaderLogInterceptor(in)
		out = core.NewWriterLogInterceptor(out)
	}

	stats, err := convert(in, out, opts)
	if closeErr := dst.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return stats, tracerr.Wrap(err)
	}
	return stats, nil
}
