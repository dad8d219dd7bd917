// Package logx is the process-wide leveled logger.
package logx

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Level represents severity.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "INFO"
}

var baseLogger = log.New(os.Stderr, "", log.Ldate|log.Ltime)

// SetOutput redirects all log output.
func SetOutput(w io.Writer) { baseLogger.SetOutput(w) }

func logf(l Level, format string, args ...interface{}) {
	baseLogger.Printf("[%s] %s", l, fmt.Sprintf(format, args...))
}

func Infof(format string, a ...interface{})  { logf(LevelInfo, format, a...) }
func Warnf(format string, a ...interface{})  { logf(LevelWarn, format, a...) }
func Errorf(format string, a ...interface{}) { logf(LevelError, format, a...) }
