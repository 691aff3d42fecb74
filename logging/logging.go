package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	level   atomic.Int32
	enabled atomic.Bool
)

func init() {
	level.Store(int32(LevelInfo))
}

// ParseLevel accepts debug, info, warn and error (case-insensitive).
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

func SetLevel(l Level) { level.Store(int32(l)) }

// IsDebugMode is true when logs are written somewhere and debug lines are kept.
func IsDebugMode() bool {
	return enabled.Load() && Level(level.Load()) == LevelDebug
}

// SetupLogging configures logging.
// If filename is empty, logging is disabled (except log.Fatal/panic).
// If filename is set, logs go to that file and Bubble Tea logs are enabled too.
func SetupLogging(filename string) (cleanup func(), err error) {
	if filename == "" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		log.SetOutput(io.Discard)
		enabled.Store(false)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	tf, err := tea.LogToFile(filename, "tea")
	if err != nil {
		f.Close()
		return nil, err
	}
	enabled.Store(true)

	cleanup = func() {
		enabled.Store(false)
		tf.Close()
		f.Close()
	}
	return cleanup, nil
}

func logf(l Level, tag string, format string, args ...any) {
	if !enabled.Load() || l < Level(level.Load()) {
		return
	}
	// depth 3: logf -> Debugf/Infof/... -> caller
	log.Output(3, tag+" "+fmt.Sprintf(format, args...))
}

func Debug(msg string)                  { logf(LevelDebug, "DEBUG", "%s", msg) }
func Debugf(format string, args ...any) { logf(LevelDebug, "DEBUG", format, args...) }
func Infof(format string, args ...any)  { logf(LevelInfo, "INFO ", format, args...) }
func Warnf(format string, args ...any)  { logf(LevelWarn, "WARN ", format, args...) }
func Errorf(format string, args ...any) { logf(LevelError, "ERROR", format, args...) }
