// Package eventlog appends observed input events to a size-rotated log
// file. It backs the --log flag of `autoit watch`.
package eventlog

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Lonami/autoit/internal/watcher"
)

// Config holds the file logger settings.
type Config struct {
	FilePath  string
	MaxSizeMB int
	MaxFiles  int
}

// Logger writes event lines with file rotation.
type Logger struct {
	mu          sync.Mutex
	file        *os.File
	config      Config
	currentSize int64
}

// New opens (or creates) the log file.
func New(cfg Config) (*Logger, error) {
	dir := filepath.Dir(cfg.FilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", cfg.FilePath, err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat log file: %w", err)
	}

	return &Logger{
		file:        f,
		config:      cfg,
		currentSize: stat.Size(),
	}, nil
}

// LogKey records a keyboard event.
func (l *Logger) LogKey(e watcher.KeyEvent) {
	action := "up"
	if e.Down {
		action = "down"
	}
	l.write(fmt.Sprintf("key %s name=%q sym=0x%x shift=%v caps=%v",
		action, e.Name, e.Sym, e.Shift, e.Caps))
}

// LogMouse records a mouse event.
func (l *Logger) LogMouse(e watcher.MouseEvent) {
	if e.Move {
		l.write(fmt.Sprintf("mouse move x=%d y=%d", e.X, e.Y))
		return
	}
	action := "up"
	if e.Down {
		action = "down"
	}
	l.write(fmt.Sprintf("mouse %s button=%d x=%d y=%d wheel=%d",
		action, e.Button, e.X, e.Y, e.Wheel()))
}

func (l *Logger) write(line string) {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return
	}

	maxBytes := int64(l.config.MaxSizeMB) * 1024 * 1024
	if maxBytes > 0 && l.currentSize >= maxBytes {
		if err := l.rotate(); err != nil {
			fmt.Fprintf(os.Stderr, "log rotation failed: %v\n", err)
		}
		if l.file == nil {
			return
		}
	}

	entry := time.Now().Format("2006-01-02 15:04:05.000") + " " + line + "\n"
	n, err := l.file.WriteString(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
		return
	}
	l.currentSize += int64(n)
}

// Close closes the logger and releases resources.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	err := l.file.Close()
	l.file = nil
	return err
}

// rotate shifts events.log -> events.log.1 -> events.log.2 and so on,
// dropping the oldest file, then reopens a fresh log.
func (l *Logger) rotate() error {
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}

	basePath := l.config.FilePath
	for i := l.config.MaxFiles; i >= 1; i-- {
		oldPath := fmt.Sprintf("%s.%d", basePath, i)
		if i == l.config.MaxFiles {
			os.Remove(oldPath)
		} else {
			os.Rename(oldPath, fmt.Sprintf("%s.%d", basePath, i+1))
		}
	}

	if err := os.Rename(basePath, basePath+".1"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	f, err := os.OpenFile(basePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open new log file: %w", err)
	}

	l.file = f
	l.currentSize = 0
	return nil
}
