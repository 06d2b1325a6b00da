package internal

import (
	"github.com/Anivice/bin2hex/internal/stream"
	"github.com/sirupsen/logrus"
)

// Bin2Hex encodes the file at input into hex text at output. Either path may be "-".
func Bin2Hex(input, output string) error {
	stats, err := run(input, output, stream.Bin2Hex)
	if err != nil {
		logrus.Errorf("encoding %s failed after %d chunks: %s", input, stats.Chunks, err.Error())
		return err
	}

	logrus.Infof("encoded %d bytes from %s into %d characters", stats.BytesIn, input, stats.BytesOut)
	return nil
}
