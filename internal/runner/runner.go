// Package runner drives one command invocation through its lifecycle:
// authenticate, select the option mode, dispatch the operation and report
// the outcome.
package runner

import (
	"context"

	"github.com/google/uuid"

	"github.com/marmos91/idmctl/internal/auth"
	"github.com/marmos91/idmctl/internal/console"
	"github.com/marmos91/idmctl/internal/dispatch"
	"github.com/marmos91/idmctl/internal/logger"
	"github.com/marmos91/idmctl/internal/mode"
	"github.com/marmos91/idmctl/internal/report"
	"github.com/marmos91/idmctl/internal/session"
)

// State is a lifecycle state of an invocation.
type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticated
	StateModeSelected
	StateDispatched
	StateReported
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	case StateModeSelected:
		return "mode-selected"
	case StateDispatched:
		return "dispatched"
	case StateReported:
		return "reported"
	default:
		return "unknown"
	}
}

// Gate acquires tokens for a session.
type Gate interface {
	AcquireTokens(ctx context.Context, sess *session.Context, allowed ...session.DeploymentType) (*auth.Tokens, error)
}

// Command describes one CLI command to the runner.
type Command struct {
	// Name is the command path used in logs, e.g. "agent web delete".
	Name string
	// Resolver maps the supplied options to a mode.
	Resolver *mode.Resolver
	// Operations builds the operation table once tokens are available.
	Operations func(tokens *auth.Tokens) dispatch.Table
	// DeploymentTypes restricts the command; empty means unrestricted.
	DeploymentTypes []session.DeploymentType
	// Help prints usage for unrecognized option combinations.
	Help func() error
	// Progress returns the verbose message printed before dispatch.
	Progress func(m mode.Mode) string
}

// Result is the record of one invocation.
type Result struct {
	ExitCode int
	Outcome  dispatch.Outcome
	Mode     mode.Mode
	States   []State
}

// Final returns the last state reached.
func (r Result) Final() State {
	if len(r.States) == 0 {
		return StateUnauthenticated
	}
	return r.States[len(r.States)-1]
}

// Runner executes commands. It holds no per-invocation state, so one
// Runner may serve many invocations.
type Runner struct {
	gate    Gate
	console *console.Console
}

// New creates a Runner.
func New(gate Gate, c *console.Console) *Runner {
	return &Runner{gate: gate, console: c}
}

// Run executes cmd for sess with the supplied options. Authentication
// happens once, before the mode is resolved; a failure there skips straight
// to reporting.
func (r *Runner) Run(ctx context.Context, sess *session.Context, opts mode.Options, cmd Command) Result {
	lc := logger.NewLogContext(uuid.NewString(), cmd.Name).WithTarget(sess.Host(), sess.Realm())
	ctx = logger.WithContext(ctx, lc)

	res := Result{States: []State{StateUnauthenticated}}

	tokens, err := r.gate.AcquireTokens(ctx, sess, cmd.DeploymentTypes...)
	if err != nil {
		logger.DebugCtx(ctx, "authentication gate refused", logger.Err(err))
		res.Outcome = dispatch.FailedWith(err)
		return r.report(ctx, res, cmd)
	}
	res.States = append(res.States, StateAuthenticated)

	res.Mode = cmd.Resolver.Resolve(opts)
	res.States = append(res.States, StateModeSelected)
	ctx = logger.WithContext(ctx, lc.WithMode(res.Mode.String()))
	logger.DebugCtx(ctx, "mode selected", logger.State(StateModeSelected.String()))

	if res.Mode.Recognized() && cmd.Progress != nil {
		if msg := cmd.Progress(res.Mode); msg != "" {
			r.console.VerboseMessage(msg)
		}
	}

	var table dispatch.Table
	if res.Mode.Recognized() && cmd.Operations != nil {
		table = cmd.Operations(tokens)
	}
	res.Outcome = dispatch.Dispatch(ctx, res.Mode, table)
	res.States = append(res.States, StateDispatched)

	return r.report(ctx, res, cmd)
}

func (r *Runner) report(ctx context.Context, res Result, cmd Command) Result {
	res.ExitCode = report.New(r.console, cmd.Help).Report(res.Outcome)
	res.States = append(res.States, StateReported)
	logger.DebugCtx(ctx, "invocation finished",
		logger.Outcome(res.Outcome.Status.String()),
		logger.ExitCode(res.ExitCode),
		logger.DurationMs(elapsedMs(ctx)),
	)
	return res
}

func elapsedMs(ctx context.Context) float64 {
	return float64(logger.FromContext(ctx).Elapsed().Microseconds()) / 1000.0
}
