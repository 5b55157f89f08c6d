package logging

import (
	"io"
	"log"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"smartsum/internal/config"
)

// Level filters which messages reach the log.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Logger writes leveled lines to a rotating log file. The terminal belongs
// to the UI, so nothing is printed to stdout or stderr.
type Logger struct {
	level       Level
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	closer      io.Closer
}

// New creates a logger from the log section of the config. An empty file
// name discards all output.
func New(cfg config.LogConfig) *Logger {
	if cfg.File == "" {
		l := NewDiscard()
		l.level = parseLevel(cfg.Level)
		return l
	}
	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB, // megabytes
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays, // days
		Compress:   cfg.Compress,
	}
	l := NewWriter(file, cfg.Level)
	l.closer = file
	return l
}

// NewWriter creates a logger writing to w.
func NewWriter(w io.Writer, level string) *Logger {
	flags := log.Ldate | log.Ltime | log.Lshortfile
	return &Logger{
		level:       parseLevel(level),
		infoLogger:  log.New(w, "INFO: ", flags),
		errorLogger: log.New(w, "ERROR: ", flags),
		debugLogger: log.New(w, "DEBUG: ", flags),
	}
}

// NewDiscard returns a logger that drops everything.
func NewDiscard() *Logger {
	return &Logger{
		level:       LevelInfo,
		infoLogger:  log.New(io.Discard, "", 0),
		errorLogger: log.New(io.Discard, "", 0),
		debugLogger: log.New(io.Discard, "", 0),
	}
}

func parseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l *Logger) Info(format string, v ...any) {
	if l.level == LevelError {
		return
	}
	l.infoLogger.Printf(format, v...)
}

func (l *Logger) Error(format string, v ...any) {
	l.errorLogger.Printf(format, v...)
}

func (l *Logger) Debug(format string, v ...any) {
	if l.level != LevelDebug {
		return
	}
	l.debugLogger.Printf(format, v...)
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
