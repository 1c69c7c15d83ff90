// Package logger implements a logging adapter using zap.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/ports"
	"go.trai.ch/zerr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using a zap console core.
type Logger struct {
	mu    sync.RWMutex
	zap   *zap.Logger
	level zap.AtomicLevel
}

// New creates a new Logger writing to stderr at info level.
func New() *Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a new Logger writing to w at info level.
func NewWithWriter(w io.Writer) *Logger {
	l := &Logger{level: zap.NewAtomicLevelAt(zapcore.InfoLevel)}
	l.zap = l.build(w)
	return l
}

func (l *Logger) build(w io.Writer) *zap.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.CallerKey = ""
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), l.level)
	return zap.New(core)
}

// SetOutput updates the logger's output destination.
func (l *Logger) SetOutput(w io.Writer) {
	next := l.build(w)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.zap = next
}

// SetLevel changes the minimum level. Accepts debug, info, warn and error.
func (l *Logger) SetLevel(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "invalid log level"), "level", level)
	}
	l.level.SetLevel(lvl)
	return nil
}

// Debug logs a diagnostic message.
func (l *Logger) Debug(msg string) {
	l.logger().Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.logger().Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.logger().Warn(msg)
}

// Error logs an error message.
func (l *Logger) Error(err error) {
	l.logger().Error("operation failed", zap.Error(err))
}

// Sync flushes any buffered entries.
func (l *Logger) Sync() error {
	return l.logger().Sync()
}

func (l *Logger) logger() *zap.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.zap
}
