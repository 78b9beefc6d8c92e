// Package logger is the structured diagnostic log for idmctl.
//
// Diagnostics go to stderr so they never mix with command output on stdout.
// The default level is WARN; --debug lowers it to DEBUG. Attributes whose
// key names a credential (password, token, cookie...) are masked by every
// handler.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/term"
)

// Config holds logger configuration
type Config struct {
	Level  string // DEBUG, INFO, WARN, ERROR
	Format string // text, json
	Output string // stdout, stderr, or file path
}

// Redacted replaces the value of secret attributes.
const Redacted = "[REDACTED]"

// sink is where records go and how they look.
type sink struct {
	w      io.Writer
	file   *os.File // non-nil when w is a log file we opened
	format string
	color  bool
}

var (
	level   = new(slog.LevelVar)
	current atomic.Pointer[slog.Logger]

	mu  sync.Mutex
	out = sink{w: os.Stderr, format: "text"}
)

func init() {
	level.Set(slog.LevelWarn)
	out.color = isTerminal(os.Stderr)
	rebuild()
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ParseLevel converts a level name to a slog level. WARNING is accepted as
// WARN.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
}

// rebuild swaps in a handler for the current sink. Level changes need no
// rebuild; handlers read the shared LevelVar.
func rebuild() {
	mu.Lock()
	defer mu.Unlock()

	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: redact}
	var handler slog.Handler
	if out.format == "json" {
		handler = slog.NewJSONHandler(out.w, opts)
	} else {
		handler = NewColorTextHandler(out.w, opts, out.color)
	}
	current.Store(slog.New(handler))
}

// Init configures the logger. Output can be "stdout", "stderr" or a file
// path; an empty output keeps the current one. Nothing changes when any
// setting is invalid.
func Init(cfg Config) error {
	var lvl slog.Level
	if cfg.Level != "" {
		l, err := ParseLevel(cfg.Level)
		if err != nil {
			return err
		}
		lvl = l
	}
	format := strings.ToLower(cfg.Format)
	if format != "" && format != "text" && format != "json" {
		return fmt.Errorf("invalid log format %q", cfg.Format)
	}

	next, err := openSink(cfg.Output)
	if err != nil {
		return err
	}

	mu.Lock()
	if next != nil {
		if out.file != nil {
			_ = out.file.Close()
		}
		next.format = out.format
		out = *next
	}
	if format != "" {
		out.format = format
	}
	mu.Unlock()

	if cfg.Level != "" {
		level.Set(lvl)
	}
	rebuild()
	return nil
}

// openSink resolves an output name. It returns nil for "".
func openSink(output string) (*sink, error) {
	switch strings.ToLower(output) {
	case "":
		return nil, nil
	case "stdout":
		return &sink{w: os.Stdout, color: isTerminal(os.Stdout)}, nil
	case "stderr":
		return &sink{w: os.Stderr, color: isTerminal(os.Stderr)}, nil
	}
	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %q: %w", output, err)
	}
	return &sink{w: f, file: f}, nil
}

// SetLevel sets the minimum log level. Unknown names are ignored.
func SetLevel(name string) {
	if l, err := ParseLevel(name); err == nil {
		level.Set(l)
	}
}

// Level returns the active minimum level.
func Level() slog.Level {
	return level.Level()
}

// Logger returns the current slog logger.
func Logger() *slog.Logger {
	return current.Load()
}

// Debug logs at debug level with structured fields
func Debug(msg string, args ...any) { logAt(context.Background(), slog.LevelDebug, msg, args) }

// Info logs at info level with structured fields
func Info(msg string, args ...any) { logAt(context.Background(), slog.LevelInfo, msg, args) }

// Warn logs at warn level with structured fields
func Warn(msg string, args ...any) { logAt(context.Background(), slog.LevelWarn, msg, args) }

// Error logs at error level with structured fields
func Error(msg string, args ...any) { logAt(context.Background(), slog.LevelError, msg, args) }

// DebugCtx logs at debug level, prefixed with the LogContext fields of ctx.
func DebugCtx(ctx context.Context, msg string, args ...any) { logAt(ctx, slog.LevelDebug, msg, args) }

// InfoCtx logs at info level with context
func InfoCtx(ctx context.Context, msg string, args ...any) { logAt(ctx, slog.LevelInfo, msg, args) }

// WarnCtx logs at warn level with context
func WarnCtx(ctx context.Context, msg string, args ...any) { logAt(ctx, slog.LevelWarn, msg, args) }

// ErrorCtx logs at error level with context
func ErrorCtx(ctx context.Context, msg string, args ...any) { logAt(ctx, slog.LevelError, msg, args) }

func logAt(ctx context.Context, l slog.Level, msg string, args []any) {
	if ctx == nil {
		ctx = context.Background()
	}
	lg := current.Load()
	if !lg.Enabled(ctx, l) {
		return
	}
	if lc := FromContext(ctx); lc != nil {
		args = append(lc.attrs(), args...)
	}
	lg.Log(ctx, l, msg, args...)
}

// secretKeys are attribute keys, compared case-insensitively, whose values
// are never written.
var secretKeys = map[string]bool{
	"password":      true,
	"token":         true,
	"tokenid":       true,
	"session_token": true,
	"authorization": true,
	"cookie":        true,
	"secret":        true,
	"client_secret": true,
}

// redact is the ReplaceAttr hook shared by both handlers.
func redact(_ []string, a slog.Attr) slog.Attr {
	if secretKeys[strings.ToLower(a.Key)] && a.Value.Kind() != slog.KindGroup {
		return slog.String(a.Key, Redacted)
	}
	return a
}

// Duration returns duration since start time in milliseconds
func Duration(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
