package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/thingsbridge/thingsbridge/internal/config"
	"github.com/thingsbridge/thingsbridge/internal/constants"
	"github.com/thingsbridge/thingsbridge/internal/errors"
)

// logFileWriter holds the log file writer for cleanup during shutdown.
var logFileWriter io.WriteCloser //nolint:gochecknoglobals // Needed for cleanup

// InitLogger creates and configures a zerolog.Logger based on verbosity
// flags and the logging configuration.
//
// Log levels: verbose maps to debug, quiet to warn, default to the
// configured level. Console output uses the zerolog console writer on a
// TTY without NO_COLOR, JSON to stderr otherwise. When file logging is
// enabled, logs also go to the rotating file under ~/.thingsbridge/logs/;
// if the file cannot be created, logging continues console-only.
func InitLogger(flags *GlobalFlags, logging config.LoggingConfig) zerolog.Logger {
	level := selectLevel(flags, logging.Level)
	console := selectOutput()

	writer := console
	if logging.File {
		if fileWriter, err := createLogFileWriter(); err == nil {
			logFileWriter = fileWriter
			writer = zerolog.MultiLevelWriter(console, fileWriter)
		}
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// InitLoggerWithWriter creates a logger with a custom writer, for tests.
func InitLoggerWithWriter(flags *GlobalFlags, w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(selectLevel(flags, "info")).With().Timestamp().Logger()
}

// CloseLogFile closes the log file writer if it was opened. Called during
// application shutdown.
func CloseLogFile() {
	if logFileWriter != nil {
		_ = logFileWriter.Close()
		logFileWriter = nil
	}
}

// selectLevel determines the log level from flags and configuration.
// Flags win over the configured level.
func selectLevel(flags *GlobalFlags, configured string) zerolog.Level {
	switch {
	case flags.Verbose:
		return zerolog.DebugLevel
	case flags.Quiet:
		return zerolog.WarnLevel
	}
	if level, err := zerolog.ParseLevel(configured); err == nil {
		return level
	}
	return zerolog.InfoLevel
}

// selectOutput determines the console writer based on terminal capabilities
// and environment settings.
func selectOutput() io.Writer {
	if term.IsTerminal(int(os.Stderr.Fd())) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		}
	}
	return os.Stderr
}

// createLogFileWriter creates the rotating file writer for the CLI log.
func createLogFileWriter() (io.WriteCloser, error) {
	logPath, err := config.LogFilePath()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o750); err != nil {
		return nil, errors.Wrap(err, "failed to create log directory")
	}

	return &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    constants.LogMaxSizeMB,
		MaxBackups: constants.LogMaxBackups,
		MaxAge:     constants.LogMaxAgeDays,
	}, nil
}
