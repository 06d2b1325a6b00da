package config

import (
	"bytes"
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/alecthomas/units"
	"github.com/mcuadros/go-defaults"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"os"
	"strconv"
)

// Mode is the running direction, "bin2hex" or "hex2bin"; it fills $(mode) in templated strings.
var Mode string

var Version string

var Config Struct

type Struct struct {
	Codec struct {
		Case      CaseType `default:"upper" toml:"case"`
		Wrap      bool     `default:"true" toml:"wrap"`
		LineWidth int      `default:"64" toml:"line_width"`
		Strict    bool     `default:"false" toml:"strict"`
	} `toml:"codec"`
	Stream struct {
		ChunkSize       ByteSize      `default:"262144" toml:"chunk_size"`
		TerminalNewline NewlinePolicy `default:"stdout" toml:"terminal_newline"`
	} `toml:"stream"`
	Log struct {
		File  string       `default:"" toml:"file"`
		Level logrus.Level `default:"3" toml:"level"`
	} `toml:"log"`
}

// ---------------------------------------------------------------------------

type CaseType string

const (
	Upper CaseType = "upper"
	Lower CaseType = "lower"
)

func (s *CaseType) UnmarshalText(text []byte) error {
	validValues := []CaseType{Upper, Lower}
	caseType := CaseType(text)
	if !lo.Contains(validValues, caseType) {
		return fmt.Errorf("invalid case: %s", text)
	}
	*s = caseType
	return nil
}

// ---------------------------------------------------------------------------

// NewlinePolicy decides when decoded output gets a final newline appended.
type NewlinePolicy string

const (
	// Stdout appends it whenever the output is standard output.
	Stdout NewlinePolicy = "stdout"
	// Tty appends it only when the output is a terminal.
	Tty   NewlinePolicy = "tty"
	Never NewlinePolicy = "never"
)

func (s *NewlinePolicy) UnmarshalText(text []byte) error {
	validValues := []NewlinePolicy{Stdout, Tty, Never}
	policy := NewlinePolicy(text)
	if !lo.Contains(validValues, policy) {
		return fmt.Errorf("invalid terminal newline policy: %s", text)
	}
	*s = policy
	return nil
}

// ---------------------------------------------------------------------------

// ByteSize accepts plain byte counts as well as base 2 sizes such as "256KiB".
type ByteSize units.Base2Bytes

func ParseByteSize(text string) (ByteSize, error) {
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return ByteSize(n), nil
	}
	size, err := units.ParseBase2Bytes(text)
	if err != nil {
		return 0, fmt.Errorf("invalid size: %s", text)
	}
	return ByteSize(size), nil
}

func (b *ByteSize) UnmarshalText(text []byte) error {
	size, err := ParseByteSize(string(text))
	if err != nil {
		return err
	}
	*b = size
	return nil
}

func (b ByteSize) MarshalText() ([]byte, error) {
	return []byte(units.Base2Bytes(b).String()), nil
}

// ---------------------------------------------------------------------------

func (s *Struct) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Errorf("error reading toml config file %s: %s", path, err.Error())
		return err
	}
	return s.LoadData(string(data))
}

func (s *Struct) LoadData(data string) error {
	_, err := toml.Decode(data, s)
	if err != nil {
		logrus.Errorf("error parsing toml config: %s", err.Error())
		return err
	}
	return s.Validate()
}

func (s *Struct) Reset() {
	*s = Struct{}
	defaults.SetDefaults(s)
}

func (s *Struct) Clone() *Struct {
	clone := *s
	return &clone
}

func (s *Struct) SaveData() string {
	buf := bytes.NewBuffer(make([]byte, 0, 1024))
	encoder := toml.NewEncoder(buf)
	err := encoder.Encode(s)
	if err != nil {
		logrus.Errorf("error saving toml config: %s", err.Error())
		panic(err)
	}
	return buf.String()
}

func init() {
	defaults.SetDefaults(&Config)
}
