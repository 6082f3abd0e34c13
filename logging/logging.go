package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mau.fi/zeroconfig"
	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v3"
)

// Options selects how the global logger is built.
// ConfigPath wins: it points to a zeroconfig YAML file.
// Otherwise a console logger at Level is used, teed into File when set.
type Options struct {
	ConfigPath string
	Level      string
	File       string
}

func StrIf(e *zerolog.Event, k string, v string) {
	if v != "" {
		e.Str(k, v)
	}
}

func BoolIf(e *zerolog.Event, k string, v bool) {
	if v {
		e.Bool(k, v)
	}
}

func LoadLogging(opts Options) error {
	if opts.ConfigPath != "" {
		logger, err := loadZeroconfig(opts.ConfigPath)
		if err != nil {
			return err
		}
		log.Logger = *logger
		return nil
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return err
	}
	log.Logger = zerolog.New(Writer(os.Stderr, opts.File)).
		Level(level).
		With().
		Timestamp().
		Logger()
	return nil
}

func loadZeroconfig(path string) (*zerolog.Logger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("log config %s is not readable: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("log config %s is not readable: %w", path, err)
	}
	var cfg zeroconfig.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("log config %s is not valid yaml: %w", path, err)
	}
	logger, err := cfg.Compile()
	if err != nil {
		return nil, fmt.Errorf("log config %s is not valid for zerolog, see go.mau.fi/zeroconfig documentation: %w", path, err)
	}
	return logger, nil
}

// Writer returns a console writer on out, additionally writing JSON lines
// into a rotated file when file is set.
func Writer(out io.Writer, file string) io.Writer {
	console := zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	if file == "" {
		return console
	}
	return zerolog.MultiLevelWriter(console, &lumberjack.Logger{
		Filename:   file,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	})
}

func ParseLevel(level string) (zerolog.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zerolog.InfoLevel, nil
	}
	l, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}
