package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintMessage_Channels(t *testing.T) {
	var out, errOut bytes.Buffer
	c := New(&out, &errOut, Options{})

	c.PrintMessage("listing", ChannelInfo)
	c.PrintMessage("not found", ChannelError)
	c.PrintMessage("careful", ChannelWarn)

	assert.Equal(t, "listing\n", out.String())
	assert.Equal(t, "not found\ncareful\n", errOut.String())
}

func TestVerboseMessage(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		expected string
	}{
		{name: "quiet", opts: Options{}, expected: ""},
		{name: "verbose", opts: Options{Verbose: true}, expected: "Deleting...\n"},
		{name: "debug implies verbose", opts: Options{Debug: true}, expected: "Deleting...\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			c := New(&out, &errOut, tt.opts)
			c.VerboseMessage("Deleting...")
			assert.Equal(t, tt.expected, errOut.String())
			assert.Empty(t, out.String())
		})
	}
}

func TestDebugMessage(t *testing.T) {
	var out, errOut bytes.Buffer
	New(&out, &errOut, Options{Verbose: true}).DebugMessage("hidden")
	assert.Empty(t, errOut.String())

	New(&out, &errOut, Options{Debug: true}).DebugMessage("shown")
	assert.Equal(t, "shown\n", errOut.String())
}

func TestColor(t *testing.T) {
	var out, errOut bytes.Buffer
	c := New(&out, &errOut, Options{Color: true})
	c.PrintMessage("bad", ChannelError)
	assert.Equal(t, "\033[31mbad\033[0m\n", errOut.String())
}
