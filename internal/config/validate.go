package config

import (
	"fmt"
	"github.com/alecthomas/units"
	"github.com/google/uuid"
	"strings"
	"time"
)

const maxChunkSize = ByteSize(units.GiB)

func (s *Struct) Validate() error {
	if s.Codec.Wrap && (s.Codec.LineWidth <= 0 || s.Codec.LineWidth%2 != 0) {
		return fmt.Errorf("config validation ['codec.line_width']: must be a positive even number of characters, got %d", s.Codec.LineWidth)
	}
	if s.Stream.ChunkSize <= 0 || s.Stream.ChunkSize > maxChunkSize {
		return fmt.Errorf("config validation ['stream.chunk_size']: must be between 1B and %s, got %d", units.Base2Bytes(maxChunkSize), s.Stream.ChunkSize)
	}

	return nil
}

func ProcessString(str string) string {
	if strings.Contains(str, "$(time)") {
		str = strings.ReplaceAll(str, "$(time)", time.Now().Format("2006-01-02-15-04-05"))
	}
	if strings.Contains(str, "$(random)") {
		str = strings.ReplaceAll(str, "$(random)", uuid.New().String())
	}
	if strings.Contains(str, "$(mode)") {
		str = strings.ReplaceAll(str, "$(mode)", Mode)
	}
	return str
}
