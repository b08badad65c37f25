// Package logger sets up the global zerolog logger of toolbox.
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

// LevelWriter splits logs by level into separate writers.
// See func WriteLevel about the separation.
type LevelWriter struct {
	io.Writer
	ErrorWriter io.Writer
	InfoWriter  io.Writer
	TraceWriter io.Writer
	WarnWriter  io.Writer
}

// WriteLevel writes p to the writer responsible for level l.
func (lw *LevelWriter) WriteLevel(l zerolog.Level, p []byte) (n int, err error) {
	var w io.Writer

	switch {
	case l == zerolog.Disabled:
		return 0, nil
	case l == zerolog.TraceLevel:
		w = lw.TraceWriter
	case l == zerolog.WarnLevel:
		w = lw.WarnWriter
	case l > zerolog.WarnLevel: // error, fatal and panic
		w = lw.ErrorWriter
	default: // debug and info
		w = lw.InfoWriter
	}

	if w == nil {
		return len(p), nil
	}

	return w.Write(p) //nolint:wrapcheck
}

// Init the zerolog logger.
// Depending on the config it enables all, some or no logger at all.
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

	if logLevel == zerolog.TraceLevel {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack //nolint:reassign
		stack = true
	}

	zerolog.SetGlobalLevel(logLevel)

	if cfg.Console.Enabled {
		writers = append(writers, NewConsoleWriter(cfg))
	}

	if cfg.File.Enabled {
		if fw := newRollingInfoErrorFile(cfg); fw != nil {
			writers = append(writers, fw)
		}
	}

	ctx := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Hook(NewPrometheusHook(cfg.ServiceName)).
		With().
		Timestamp().
		Str("app", cfg.AppName)

	switch {
	case cfg.ReportCaller && stack:
		ctx = ctx.Stack()
	case cfg.ReportCaller:
		ctx = ctx.Caller()
	}

	log.Logger = ctx.Logger()

	return nil
}

// NewRollingFile returns a lumberjack writer for f below dir.
func NewRollingFile(dir string, f RollingFile) io.Writer {
	return &lumberjack.Logger{
		Filename:   path.Join(dir, f.Name),
		MaxSize:    f.MaxSize,
		MaxAge:     f.MaxAge,
		MaxBackups: f.MaxBackups,
		LocalTime:  false,
		Compress:   false,
	}
}

// newRollingInfoErrorFile uses LevelWriter and lumberjack to create file based log.
func newRollingInfoErrorFile(cfg Log) io.Writer {
	if err := os.MkdirAll(cfg.File.Path, 0o750); err != nil { //nolint:mnd
		log.Error().Err(err).Str("path", cfg.File.Path).Msg("can't create log directory")

		return nil
	}

	return &LevelWriter{
		ErrorWriter: NewRollingFile(cfg.File.Path, cfg.File.Error),
		InfoWriter:  NewRollingFile(cfg.File.Path, cfg.File.Info),
		TraceWriter: NewRollingFile(cfg.File.Path, cfg.File.Trace),
		WarnWriter:  NewRollingFile(cfg.File.Path, cfg.File.Warn),
	}
}

// NewConsoleWriter creates a LevelWriter printing info to stdout and everything else to stderr.
func NewConsoleWriter(cfg Log) io.Writer {
	out, errOut := io.Writer(os.Stdout), io.Writer(os.Stderr)

	if cfg.Console.UseConsoleWriter {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: zerolog.TimeFieldFormat}
		errOut = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: zerolog.TimeFieldFormat}
	}

	return &LevelWriter{
		ErrorWriter: errOut,
		InfoWriter:  out,
		TraceWriter: errOut,
		WarnWriter:  errOut,
	}
}
