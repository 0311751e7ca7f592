package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config represents the logger configuration.
type Config struct {
	Filename   string `yaml:"filename"`
	Level      string `yaml:"level"`
	MaxSize    int    `yaml:"max_size_in_mb"`
	MaxBackups int    `yaml:"max_backups"`
	Targets    string `yaml:"targets"`
}

var globalLogger zerolog.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// InitGlobalLogger configures the process-wide logger. It writes to stderr,
// to a rotated file, or to both, depending on cfg.Targets.
func InitGlobalLogger(cfg *Config) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	writers := make([]io.Writer, 0, 2)
	targets := cfg.Targets
	if targets == "" {
		targets = "console"
	}

	if strings.Contains(targets, "console") {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if strings.Contains(targets, "file") && cfg.Filename != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
		})
	}

	if len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}

	globalLogger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).With().Timestamp().Logger()
}

func Debug(msg string, keyvals ...any) {
	globalLogger.Debug().Fields(keyvals).Msg(msg)
}

func Info(msg string, keyvals ...any) {
	globalLogger.Info().Fields(keyvals).Msg(msg)
}

func Warn(msg string, keyvals ...any) {
	globalLogger.Warn().Fields(keyvals).Msg(msg)
}

func Error(msg string, keyvals ...any) {
	globalLogger.Error().Fields(keyvals).Msg(msg)
}
