// Package debug provides optional development-time diagnostics.
//
// When the MULTISPLIT_DEBUG environment variable is set, layout invariants
// are re-verified after every structural mutation, and debug messages are
// appended to the file it names (or "debug.log" when set to "1").
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	logFile *os.File

	once    sync.Once
	enabled bool
	path    string
)

func load() {
	v := os.Getenv("MULTISPLIT_DEBUG")
	if v == "" {
		return
	}
	enabled = true
	if v != "1" {
		path = v
	}
}

// Enabled reports whether MULTISPLIT_DEBUG is set.
func Enabled() bool {
	once.Do(load)
	return enabled
}

// Log appends a timestamped message to the debug log. No-op unless
// debugging is enabled.
func Log(format string, args ...any) {
	if !Enabled() {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		if err := openLocked(); err != nil {
			return
		}
	}

	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
	logFile.Sync()
}

// openLocked opens the log file. Caller must hold mu.
func openLocked() error {
	p := path
	if p == "" {
		p = "debug.log"
	}

	if dir := filepath.Dir(p); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	logFile = f
	return nil
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}
