package internal

import (
	"github.com/Anivice/bin2hex/internal/stream"
	"github.com/sirupsen/logrus"
)

// Hex2Bin decodes the hex text at input into output. Either path may be "-".
func Hex2Bin(input, output string) error {
	stats, err := run(input, output, stream.Hex2Bin)
	if err != nil {
		logrus.Errorf("decoding %s failed after %d chunks: %s", input, stats.Chunks, err.Error())
		return err
	}

	logrus.Infof("decoded %d characters from %s into %d bytes", stats.BytesIn, input, stats.BytesOut)
	return nil
}
