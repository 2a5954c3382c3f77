// Package logging provides component-scoped loggers backed by a single
// log file. The CLI owns the terminal for prompts and reporting, so
// logs go to a file under the XDG state directory instead of stderr.
//
// Basic usage:
//
//	if err := logging.Init(logging.Config{Level: "info"}); err != nil {
//	    ...
//	}
//	defer logging.Close()
//
//	logger := logging.Get("executor")
//	logger.Info("rename applied", "from", old, "to", new)
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// Config configures the logging system.
type Config struct {
	// Level is the log level: debug, info, warn, or error.
	Level string

	// Path is the log file path. Empty uses DefaultLogPath().
	Path string
}

// DefaultLogPath returns the default log file location,
// $XDG_STATE_HOME/edir/edir.log.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, "edir", "edir.log")
}

type state struct {
	mu          sync.Mutex
	initialized bool
	file        *os.File
	level       log.Level
	loggers     map[string]*log.Logger
}

var globalState = &state{loggers: make(map[string]*log.Logger)}

// Init opens the log file and sets the level. Before Init is called,
// loggers returned by Get write to io.Discard.
func Init(cfg Config) error {
	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}

	path := cfg.Path
	if path == "" {
		path = DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	if globalState.file != nil {
		_ = globalState.file.Close()
	}
	globalState.file = f
	globalState.level = level
	globalState.initialized = true

	// Loggers handed out before Init are held as package-level vars
	// by their callers, so they must be retargeted in place rather
	// than replaced in the map.
	for _, logger := range globalState.loggers {
		logger.SetOutput(f)
		logger.SetLevel(level)
	}
	return nil
}

// Get returns the logger for a component, creating it on first use.
func Get(component string) *log.Logger {
	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	if logger, ok := globalState.loggers[component]; ok {
		return logger
	}
	logger := newLogger(component)
	globalState.loggers[component] = logger
	return logger
}

// newLogger builds a logger for component. Must be called with
// globalState.mu held.
func newLogger(component string) *log.Logger {
	var w io.Writer = io.Discard
	level := log.InfoLevel
	if globalState.initialized {
		w = globalState.file
		level = globalState.level
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          component,
	})
}

// Close flushes and closes the log file.
func Close() error {
	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	if !globalState.initialized {
		return nil
	}
	globalState.initialized = false

	// Issued loggers may still be written to after Close; point them
	// back at io.Discard before the file goes away.
	for _, logger := range globalState.loggers {
		logger.SetOutput(io.Discard)
		logger.SetLevel(log.InfoLevel)
	}

	if globalState.file != nil {
		err := globalState.file.Close()
		globalState.file = nil
		if err != nil {
			return fmt.Errorf("closing log file: %w", err)
		}
	}
	return nil
}
