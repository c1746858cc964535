package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var (
	logger = logrus.New()
	entry  = logrus.NewEntry(logger)
)

type Config struct {
	// Output is a file path to write logs to, stderr when empty.
	Output string `json:"output"`
	Debug  bool   `json:"debug"`
}

func init() {
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetLevel(logrus.InfoLevel)
}

// InitEngine configures the global logger. A failure to open the output file
// falls back to stderr.
func InitEngine(cfg *Config) {
	if cfg == nil {
		return
	}

	var out io.Writer = os.Stderr
	if cfg.Output != "" {
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			entry.Warnf("failed to open log output %s, falling back to stderr, err: %s", cfg.Output, err)
		} else {
			out = f
		}
	}
	logger.SetOutput(out)

	if cfg.Debug {
		SetDebug()
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

func SetDebug() {
	logger.SetLevel(logrus.DebugLevel)
}

func GetLevel() logrus.Level {
	return logger.GetLevel()
}

// Logger returns the underlying logrus logger.
func Logger() *logrus.Logger {
	return logger
}

func WithField(key string, value interface{}) *logrus.Entry {
	return entry.WithField(key, value)
}

func WithFields(fields logrus.Fields) *logrus.Entry {
	return entry.WithFields(fields)
}

func WithError(err error) *logrus.Entry {
	return entry.WithError(err)
}

func Debugf(format string, args ...interface{}) {
	entry.Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	entry.Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	entry.Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	entry.Errorf(format, args...)
}
