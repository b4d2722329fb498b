package main

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alnah/go-pageexport/internal/config"
)

// newLogger builds the console logger shared by the CLI and every exporter.
// Output has no timestamps or callers so batch logs stay readable.
func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(w)), level)
	return zap.New(core).Named("pageexport")
}

// resolveLevel picks the log level: --verbose and --quiet win over
// log.level, which defaults to warn.
func resolveLevel(common commonFlags, cfg *config.Config) zapcore.Level {
	switch {
	case common.verbose:
		return zapcore.DebugLevel
	case common.quiet:
		return zapcore.ErrorLevel
	}

	switch strings.ToLower(cfg.Log.Level) {
	case config.LevelDebug:
		return zapcore.DebugLevel
	case config.LevelInfo:
		return zapcore.InfoLevel
	case config.LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}
