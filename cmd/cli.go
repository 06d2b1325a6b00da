package main

import (
	"fmt"
	"github.com/Anivice/bin2hex/internal"
	"github.com/Anivice/bin2hex/internal/config"
	"github.com/Anivice/bin2hex/internal/view"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ztrue/tracerr"
	"os"
)

type rootFlags struct {
	Config    string
	Lower     bool
	NoWrap    bool
	LineWidth int
	Strict    bool
	ChunkSize string
	Verbose   bool
}

func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "bin2hex",
		Short: "Convert files to hexadecimal text and back",
		Long: `bin2hex streams a file into its hexadecimal text representation, or decodes such text back into
the original bytes. Input is consumed in fixed-size chunks so files of any size can be converted with bounded memory.
Use "-" as a path to read from standard input or write to standard output.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	encodeCmd := &cobra.Command{
		Use:     "encode <input> <output>",
		Aliases: []string{"bin2hex", "enc"},
		Short:   "Encode binary input into hex text",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd.Flags(), flags, "bin2hex", func() error {
				return internal.Bin2Hex(args[0], args[1])
			})
		},
	}

	decodeCmd := &cobra.Command{
		Use:     "decode <input> <output>",
		Aliases: []string{"hex2bin", "dec"},
		Short:   "Decode hex text into binary output",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd.Flags(), flags, "hex2bin", func() error {
				return internal.Hex2Bin(args[0], args[1])
			})
		},
	}

	// shared flags
	for _, fs := range []*pflag.FlagSet{encodeCmd.Flags(), decodeCmd.Flags()} {
		fs.StringVarP(&flags.Config, "config", "c", "", "config file (toml)")
		fs.BoolVar(&flags.Lower, "lower", false, "use lower case hex digits")
		fs.IntVar(&flags.LineWidth, "line-width", 64, "hex characters per line when wrapping")
		fs.StringVar(&flags.ChunkSize, "chunk-size", "256KiB", "size of the chunks read from the input")
		fs.BoolVarP(&flags.Verbose, "verbose", "v", false, "log debug information to stderr")
	}
	encodeCmd.Flags().BoolVar(&flags.NoWrap, "no-wrap", false, "do not break the hex text into lines")
	decodeCmd.Flags().BoolVar(&flags.Strict, "strict", false, "reject newlines inside the hex text")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.Version = config.Version
	return rootCmd
}

func execute(fs *pflag.FlagSet, flags *rootFlags, mode string, run func() error) error {
	config.Mode = mode
	closeLog, err := configure(fs, flags)
	if err != nil {
		return err
	}
	defer closeLog()

	return run()
}

// configure loads the config file, if any, and lets explicitly given flags override it.
func configure(fs *pflag.FlagSet, flags *rootFlags) (func(), error) {
	config.Config.Reset()
	if flags.Config != "" {
		if err := (&config.Config).Load(flags.Config); err != nil {
			return nil, tracerr.Wrap(err)
		}
	}

	if fs.Changed("lower") && flags.Lower {
		config.Config.Codec.Case = config.Lower
	}
	if fs.Changed("no-wrap") {
		config.Config.Codec.Wrap = !flags.NoWrap
	}
	if fs.Changed("line-width") {
		config.Config.Codec.LineWidth = flags.LineWidth
	}
	if fs.Changed("strict") {
		config.Config.Codec.Strict = flags.Strict
	}
	if fs.Changed("chunk-size") {
		size, err := config.ParseByteSize(flags.ChunkSize)
		if err != nil {
			return nil, tracerr.Wrap(err)
		}
		config.Config.Stream.ChunkSize = size
	}
	if flags.Verbose && config.Config.Log.Level < logrus.DebugLevel {
		config.Config.Log.Level = logrus.DebugLevel
	}
	if err := config.Config.Validate(); err != nil {
		return nil, tracerr.Wrap(err)
	}

	return view.Init()
}

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		view.AppendRaw(fmt.Sprintln(tracerr.SprintSourceColor(err)))
		os.Exit(1)
	}
}
