// Package report turns an invocation outcome into console output and a
// process exit code.
package report

import (
	"github.com/marmos91/idmctl/internal/console"
	"github.com/marmos91/idmctl/internal/dispatch"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Reporter prints outcomes. Help is called for unrecognized option
// combinations and may be nil.
type Reporter struct {
	console *console.Console
	help    func() error
}

// New creates a Reporter.
func New(c *console.Console, help func() error) *Reporter {
	return &Reporter{console: c, help: help}
}

// Report prints what the outcome requires and returns the exit code.
func (r *Reporter) Report(out dispatch.Outcome) int {
	switch out.Status {
	case dispatch.StatusSuccess:
		return ExitOK
	case dispatch.StatusUnrecognized:
		r.console.VerboseMessage("Unrecognized combination of options or no options...")
		if r.help != nil {
			if err := r.help(); err != nil {
				r.console.PrintMessage(err.Error(), console.ChannelError)
			}
		}
		return ExitFailure
	default:
		if out.Message != "" {
			r.console.PrintMessage(out.Message, console.ChannelError)
		}
		return ExitFailure
	}
}
