package logger

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Package logger sets up the global zerolog logger.

// LevelWriter implements a struct to split logs by info and error and up level.
// See func WriteLevel about the separation.
type LevelWriter struct {
	io.Writer
	ErrorWriter io.Writer
	InfoWriter  io.Writer
	TraceWriter io.Writer
	WarnWriter  io.Writer
}

// WriteLevel splits logging by level and links the pointer to the target output depending on the logger defined.
func (lw *LevelWriter) WriteLevel(l zerolog.Level, p []byte) (n int, err error) {
	var w io.Writer

	// disabled logging
	if l == zerolog.Disabled {
		return 0, nil
	}

	// decide where to write this log content
	switch {
	case l == zerolog.TraceLevel:
		w = lw.TraceWriter
	case l == zerolog.WarnLevel:
		w = lw.WarnWriter
	case l > zerolog.WarnLevel: // error and fatal panic go to error
		w = lw.ErrorWriter
	default:
		w = lw.InfoWriter // debug and info go to info
	}

	return w.Write(p) //nolint:wrapcheck
}

// Init the zerolog logger.
// Depending on the config it enables console, file, both or no logger at all.
func Init(cfg Log) error {
	var (
		logLevel, err = zerolog.ParseLevel(cfg.LogLevel)
		writers       []io.Writer
		stack         bool
	)

	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("loglevel %s is not supported", cfg.LogLevel))
	}

	if cfg.ServiceName == "" {
		return ErrServiceNameIsEmpty
	}

	if cfg.AppName == "" {
		return ErrAppNameIsEmpty
	}

	// use zerolog stack marshal func if trace level is set
	if logLevel == zerolog.TraceLevel {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack //nolint:reassign
		stack = true
	}

	zerolog.SetGlobalLevel(logLevel)
	zerolog.ErrorHandler = ErrorHandler //nolint:reassign

	ph := NewPrometheusHook(cfg.ServiceName)

	if cfg.Console.Enabled {
		writers = append(writers, NewConsoleWriter(cfg))
	}

	if cfg.File.Enabled {
		if fw := newRollingFile(cfg); fw != nil {
			writers = append(writers, fw)
		}
	}

	mw := zerolog.MultiLevelWriter(writers...)
	ctx := zerolog.New(mw).Hook(ph).With().Timestamp().Str("app", cfg.AppName)

	switch {
	case cfg.ReportCaller && stack:
		log.Logger = ctx.Stack().Caller().Logger()
	case cfg.ReportCaller:
		log.Logger = ctx.Caller().Logger()
	default:
		log.Logger = ctx.Logger()
	}

	return nil
}

// newRollingFile uses LevelWriter and lumberjack to create file based log.
func newRollingFile(cfg Log) io.Writer {
	if err := os.MkdirAll(cfg.File.Path, 0o750); err != nil { //nolint: mnd
		log.Error().Err(err).Str("path", cfg.File.Path).Msg("can't create log directory")

		return nil
	}

	return &LevelWriter{
		ErrorWriter: rolling(cfg.File.Path, cfg.File.ErrorLog, cfg.File.ErrorMaxSize, cfg.File.ErrorMaxAge, cfg.File.ErrorMaxBackups),
		InfoWriter:  rolling(cfg.File.Path, cfg.File.InfoLog, cfg.File.InfoMaxSize, cfg.File.InfoMaxAge, cfg.File.InfoMaxBackups),
		TraceWriter: rolling(cfg.File.Path, cfg.File.TraceLog, cfg.File.TraceMaxSize, cfg.File.TraceMaxAge, cfg.File.TraceMaxBackups),
		WarnWriter:  rolling(cfg.File.Path, cfg.File.WarnLog, cfg.File.WarnMaxSize, cfg.File.WarnMaxAge, cfg.File.WarnMaxBackups),
	}
}

func rolling(dir, name string, maxSize, maxAge, maxBackups int) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path.Join(dir, name),
		MaxSize:    maxSize,
		MaxAge:     maxAge,
		MaxBackups: maxBackups,
		LocalTime:  false,
		Compress:   false,
	}
}

// NewConsoleWriter creates the console writer. Every level goes to stderr.
func NewConsoleWriter(cfg Log) io.Writer {
	if cfg.Console.UseConsoleWriter {
		return zerolog.ConsoleWriter{
			Out:        os.Stderr,
			NoColor:    false,
			TimeFormat: zerolog.TimeFieldFormat,
		}
	}

	return os.Stderr
}
