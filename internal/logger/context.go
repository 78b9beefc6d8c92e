package logger

import (
	"context"
	"time"
)

type contextKey struct{}

// LogContext holds the fields shared by every log line of one command
// invocation. It is immutable; the With methods return copies.
type LogContext struct {
	InvocationID string
	Command      string // e.g. "agent web delete"
	Host         string
	Realm        string
	Mode         string // resolved option mode, set after disambiguation
	StartTime    time.Time
}

// NewLogContext starts a LogContext for one command invocation.
func NewLogContext(invocationID, command string) *LogContext {
	return &LogContext{
		InvocationID: invocationID,
		Command:      command,
		StartTime:    time.Now(),
	}
}

// WithContext returns a new context carrying lc.
func WithContext(ctx context.Context, lc *LogContext) context.Context {
	return context.WithValue(ctx, contextKey{}, lc)
}

// FromContext retrieves the LogContext from ctx, or nil if not present.
func FromContext(ctx context.Context) *LogContext {
	if ctx == nil {
		return nil
	}
	lc, _ := ctx.Value(contextKey{}).(*LogContext)
	return lc
}

// WithTarget returns a copy with host and realm set.
func (lc *LogContext) WithTarget(host, realm string) *LogContext {
	if lc == nil {
		return nil
	}
	c := *lc
	c.Host, c.Realm = host, realm
	return &c
}

// WithMode returns a copy with the resolved mode set.
func (lc *LogContext) WithMode(mode string) *LogContext {
	if lc == nil {
		return nil
	}
	c := *lc
	c.Mode = mode
	return &c
}

// Elapsed returns the time since StartTime.
func (lc *LogContext) Elapsed() time.Duration {
	if lc == nil || lc.StartTime.IsZero() {
		return 0
	}
	return time.Since(lc.StartTime)
}

// attrs returns the non-empty fields as slog key/value pairs, in a fixed
// order so they lead every line.
func (lc *LogContext) attrs() []any {
	fields := [...]struct{ key, value string }{
		{KeyInvocation, lc.InvocationID},
		{KeyCommand, lc.Command},
		{KeyHost, lc.Host},
		{KeyRealm, lc.Realm},
		{KeyMode, lc.Mode},
	}
	args := make([]any, 0, 2*len(fields))
	for _, f := range fields {
		if f.value != "" {
			args = append(args, f.key, f.value)
		}
	}
	return args
}
