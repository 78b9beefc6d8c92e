// Package console writes user-facing messages for idmctl commands.
//
// Info messages go to the output stream; errors and warnings go to the error
// stream. Verbose and debug messages are printed only when the session asks
// for them.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/marmos91/idmctl/internal/cli/output"
)

// Channel selects where a message is written.
type Channel string

const (
	// ChannelInfo writes to the output stream.
	ChannelInfo Channel = "info"
	// ChannelError writes to the error stream.
	ChannelError Channel = "error"
	// ChannelWarn writes to the error stream.
	ChannelWarn Channel = "warn"
)

// Console is the message sink for one invocation.
type Console struct {
	out     *output.Printer
	err     *output.Printer
	verbose bool
	debug   bool
}

// Options configures a Console.
type Options struct {
	Verbose bool
	Debug   bool
	Color   bool
}

// New creates a Console writing to out and errOut.
func New(out, errOut io.Writer, opts Options) *Console {
	return &Console{
		out:     output.NewPrinter(out, output.FormatTable, opts.Color),
		err:     output.NewPrinter(errOut, output.FormatTable, opts.Color),
		verbose: opts.Verbose,
		debug:   opts.Debug,
	}
}

// Default creates a Console on stdout/stderr without verbose output.
func Default() *Console {
	return New(os.Stdout, os.Stderr, Options{})
}

// Out returns the output stream.
func (c *Console) Out() io.Writer { return c.out.Writer() }

// ErrOut returns the error stream.
func (c *Console) ErrOut() io.Writer { return c.err.Writer() }

// PrintMessage writes text on the given channel.
func (c *Console) PrintMessage(text string, ch Channel) {
	switch ch {
	case ChannelError:
		c.err.Error(text)
	case ChannelWarn:
		c.err.Warning(text)
	default:
		c.out.Println(text)
	}
}

// Printf writes a formatted info message.
func (c *Console) Printf(format string, args ...any) {
	c.PrintMessage(fmt.Sprintf(format, args...), ChannelInfo)
}

// Success writes a highlighted info message.
func (c *Console) Success(text string) {
	c.out.Success(text)
}

// VerboseMessage writes text to the error stream when verbose or debug
// output is enabled.
func (c *Console) VerboseMessage(text string) {
	if !c.verbose && !c.debug {
		return
	}
	c.err.Println(text)
}

// DebugMessage writes text to the error stream when debug output is enabled.
func (c *Console) DebugMessage(text string) {
	if !c.debug {
		return
	}
	c.err.Println(text)
}

// Verbose reports whether verbose messages are printed.
func (c *Console) Verbose() bool { return c.verbose || c.debug }
