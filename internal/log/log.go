// Package log provides structured debug logging for navdrawer.
// Output goes to a file opened with tea.LogToFile, since stdout belongs to
// the terminal UI. Logging stays silent until Init is called, which the
// root command only does for --debug or NAVDRAWER_DEBUG.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/zjrosen/navdrawer/internal/pubsub"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category groups related log messages.
type Category string

const (
	CatUI      Category = "ui"      // Host page updates
	CatMenu    Category = "menu"    // Menu transitions and focus movement
	CatHotkey  Category = "hotkey"  // Listener install/release and dispatch
	CatConfig  Category = "config"  // Configuration loading/saving
	CatWatcher Category = "watcher" // Config file watcher events
	CatCache   Category = "cache"   // Render cache operations
)

// Logger writes structured entries and republishes them to listeners.
type Logger struct {
	mu       sync.Mutex
	closer   io.Closer
	writer   io.Writer
	session  string
	enabled  bool
	minLevel Level
	broker   *pubsub.Broker[string]
}

var (
	defaultMu     sync.RWMutex
	defaultLogger *Logger
)

// Init opens path for appending and installs it as the global logger.
// The returned cleanup closes the file and uninstalls the logger.
func Init(path string) (func(), error) {
	f, err := tea.LogToFile(path, "")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	install(newLogger(f, f))
	return func() {
		uninstall()
		_ = f.Close()
	}, nil
}

// InitWriter installs a logger writing to w. Used by tests.
func InitWriter(w io.Writer) func() {
	install(newLogger(w, nil))
	return uninstall
}

func newLogger(w io.Writer, c io.Closer) *Logger {
	return &Logger{
		writer:   w,
		closer:   c,
		session:  uuid.NewString()[:8],
		enabled:  true,
		minLevel: LevelDebug,
		broker:   pubsub.NewBroker[string](),
	}
}

func install(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger != nil {
		defaultLogger.broker.Close()
	}
	defaultLogger = l
}

func uninstall() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger != nil {
		defaultLogger.broker.Close()
		defaultLogger = nil
	}
}

func current() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetEnabled toggles logging on/off.
func SetEnabled(enabled bool) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.enabled = enabled
		l.mu.Unlock()
	}
}

// SetMinLevel sets the minimum log level.
func SetMinLevel(level Level) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.minLevel = level
		l.mu.Unlock()
	}
}

// ParseLevel maps a level name to a Level. Unknown names map to LevelDebug.
func ParseLevel(name string) Level {
	switch strings.ToLower(name) {
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelDebug
	}
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	write(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	write(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	write(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	write(LevelError, cat, msg, fields...)
}

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	write(LevelError, cat, msg, fields...)
}

func write(level Level, cat Category, msg string, fields ...any) {
	l := current()
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled || level < l.minLevel {
		return
	}

	// 2026-01-02T15:04:05 [DEBUG] [menu] session=ab12cd34 message key=value
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] [%s] session=%s %s",
		time.Now().Format("2006-01-02T15:04:05"), level, cat, l.session, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		fmt.Fprintf(&b, " %v=<missing>", fields[len(fields)-1])
	}
	entry := b.String()

	if l.writer != nil {
		_, _ = io.WriteString(l.writer, entry+"\n")
	}
	l.broker.Publish(pubsub.EntryEvent, entry)
}

// LogEvent is a pubsub event carrying one formatted entry.
type LogEvent = pubsub.Event[string]

// LogListener delivers log entries into a Bubble Tea update loop.
type LogListener = pubsub.Feed[string]

// NewListener subscribes to log entries until ctx is cancelled.
// Returns nil when logging is not initialized.
func NewListener(ctx context.Context) *LogListener {
	l := current()
	if l == nil {
		return nil
	}
	return pubsub.NewFeed(ctx, l.broker, pubsub.EntryEvent)
}
