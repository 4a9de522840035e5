// Package logger provides levelled logging for the minijava tools.
// The lexer itself never logs; only the CLI and the playground do.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger writes info and warn lines to one writer and errors to another.
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// NewLogger creates a logger writing to stdout and stderr.
func NewLogger() *Logger {
	return New(os.Stdout, os.Stderr)
}

// New creates a logger over explicit writers.
func New(out, errOut io.Writer) *Logger {
	const flags = log.Ldate | log.Ltime | log.Lshortfile
	return &Logger{
		infoLogger:  log.New(out, "[MINIJAVA-INFO] ", flags),
		warnLogger:  log.New(out, "[MINIJAVA-WARN] ", flags),
		errorLogger: log.New(errOut, "[MINIJAVA-ERROR] ", flags),
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, io.Discard)
}

func (l *Logger) Info(msg string) {
	l.infoLogger.Output(2, msg)
}

func (l *Logger) Infof(format string, args ...any) {
	l.infoLogger.Output(2, fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(msg string) {
	l.warnLogger.Output(2, msg)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.warnLogger.Output(2, fmt.Sprintf(format, args...))
}

func (l *Logger) Error(msg string) {
	l.errorLogger.Output(2, msg)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.errorLogger.Output(2, fmt.Sprintf(format, args...))
}

// Scan records the outcome of one tokenization.
func (l *Logger) Scan(source string, tokens, errors int) {
	if errors > 0 {
		l.warnLogger.Printf("[SCAN] source:%s | tokens:%d errors:%d", source, tokens, errors)
		return
	}
	l.infoLogger.Printf("[SCAN] source:%s | tokens:%d", source, tokens)
}
