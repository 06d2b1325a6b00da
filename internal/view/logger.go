package view

import (
	"fmt"
	"github.com/Anivice/bin2hex/internal/config"
	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
	"io"
	"os"
	"path"
	"runtime"
)

// LogFile receives log lines; stdout is never used because it may carry the converted data.
var LogFile io.Writer = os.Stderr

func AppendRaw(str string) {
	_, _ = LogFile.Write([]byte(str))
}

// Init points logrus at config.Config.Log. It returns a function closing the log file, if any.
func Init() (func(), error) {
	logrus.SetLevel(config.Config.Log.Level)
	if config.Config.Log.File == "" {
		LogFile = os.Stderr
		logrus.SetOutput(LogFile)
		return func() {}, nil
	}

	file := config.ProcessString(config.Config.Log.File)
	logFile, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", file, err)
	}
	LogFile = logFile
	logrus.SetOutput(LogFile)

	return func() {
		logrus.SetOutput(os.Stderr)
		LogFile = os.Stderr
		_ = logFile.Close()
	}, nil
}

func init() {
	logrus.SetOutput(os.Stderr)
	logrus.SetReportCaller(true)
	logrus.SetFormatter(&nested.Formatter{
		NoColors:        true,
		TimestampFormat: "2006-01-02 15:04:05.000 ",
		CallerFirst:     true,
		CustomCallerFormatter: func(f *runtime.Frame) string {
			return fmt.Sprintf("%s:%d", path.Base(f.File), f.Line)
		},
	})
}
