package logger

import "log/slog"

// Standard field keys. Use these instead of ad-hoc strings so log lines can
// be filtered consistently.
const (
	KeyInvocation     = "invocation"
	KeyCommand        = "command"
	KeyHost           = "host"
	KeyRealm          = "realm"
	KeyUsername       = "username"
	KeyDeploymentType = "deployment_type"
	KeyMode           = "mode"
	KeyState          = "state"
	KeyOutcome        = "outcome"
	KeyExitCode       = "exit_code"

	KeyMethod     = "method"
	KeyURL        = "url"
	KeyStatus     = "status"
	KeyDurationMs = "duration_ms"
	KeyCached     = "cached"

	KeyResource = "resource"
	KeyID       = "id"
	KeyName     = "name"
	KeyCount    = "count"
	KeyPath     = "path"
	KeyProfile  = "profile"

	KeyError = "error"
)

// Command returns a slog.Attr for the command path
func Command(path string) slog.Attr {
	return slog.String(KeyCommand, path)
}

// Host returns a slog.Attr for the tenant host
func Host(host string) slog.Attr {
	return slog.String(KeyHost, host)
}

// Realm returns a slog.Attr for the realm
func Realm(realm string) slog.Attr {
	return slog.String(KeyRealm, realm)
}

// Username returns a slog.Attr for the login name. Never log passwords.
func Username(name string) slog.Attr {
	return slog.String(KeyUsername, name)
}

// DeploymentType returns a slog.Attr for the deployment type
func DeploymentType(t string) slog.Attr {
	return slog.String(KeyDeploymentType, t)
}

// Mode returns a slog.Attr for the resolved option mode
func Mode(m string) slog.Attr {
	return slog.String(KeyMode, m)
}

// State returns a slog.Attr for a lifecycle state
func State(s string) slog.Attr {
	return slog.String(KeyState, s)
}

// Outcome returns a slog.Attr for an outcome status
func Outcome(s string) slog.Attr {
	return slog.String(KeyOutcome, s)
}

// ExitCode returns a slog.Attr for the process exit code
func ExitCode(code int) slog.Attr {
	return slog.Int(KeyExitCode, code)
}

// Method returns a slog.Attr for the HTTP method
func Method(m string) slog.Attr {
	return slog.String(KeyMethod, m)
}

// URL returns a slog.Attr for a request URL
func URL(u string) slog.Attr {
	return slog.String(KeyURL, u)
}

// Status returns a slog.Attr for an HTTP status code
func Status(code int) slog.Attr {
	return slog.Int(KeyStatus, code)
}

// DurationMs returns a slog.Attr for duration in milliseconds
func DurationMs(ms float64) slog.Attr {
	return slog.Float64(KeyDurationMs, ms)
}

// Cached returns a slog.Attr flagging a cache hit
func Cached(hit bool) slog.Attr {
	return slog.Bool(KeyCached, hit)
}

// Resource returns a slog.Attr for a resource kind
func Resource(kind string) slog.Attr {
	return slog.String(KeyResource, kind)
}

// ID returns a slog.Attr for a resource identifier
func ID(id string) slog.Attr {
	return slog.String(KeyID, id)
}

// Name returns a slog.Attr for a resource name
func Name(name string) slog.Attr {
	return slog.String(KeyName, name)
}

// Count returns a slog.Attr for a count
func Count(n int) slog.Attr {
	return slog.Int(KeyCount, n)
}

// Path returns a slog.Attr for a filesystem path
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// Profile returns a slog.Attr for a connection profile name
func Profile(name string) slog.Attr {
	return slog.String(KeyProfile, name)
}

// Err returns a slog.Attr for an error
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}
