package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/marmos91/idmctl/internal/console"
	"github.com/marmos91/idmctl/internal/dispatch"
	"github.com/stretchr/testify/assert"
)

func newReporter(verbose bool) (*Reporter, *bytes.Buffer, *bytes.Buffer, *int) {
	var out, errOut bytes.Buffer
	helpCalls := 0
	c := console.New(&out, &errOut, console.Options{Verbose: verbose})
	r := New(c, func() error {
		helpCalls++
		out.WriteString("Usage: idmctl agent web delete\n")
		return nil
	})
	return r, &out, &errOut, &helpCalls
}

func TestReport_Success(t *testing.T) {
	r, out, errOut, helpCalls := newReporter(false)

	assert.Equal(t, ExitOK, r.Report(dispatch.Succeeded()))
	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
	assert.Zero(t, *helpCalls)
}

func TestReport_FailureAndThrown(t *testing.T) {
	tests := []struct {
		name    string
		outcome dispatch.Outcome
	}{
		{name: "failure", outcome: dispatch.Failed("not found")},
		{name: "failure from error", outcome: dispatch.FailedWith(errors.New("not found"))},
		{name: "thrown", outcome: dispatch.Threw(errors.New("not found"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out, errOut, _ := newReporter(false)

			assert.Equal(t, ExitFailure, r.Report(tt.outcome))
			assert.Equal(t, "not found\n", errOut.String())
			assert.Empty(t, out.String())
		})
	}
}

func TestReport_Unrecognized(t *testing.T) {
	r, out, errOut, helpCalls := newReporter(true)

	assert.Equal(t, ExitFailure, r.Report(dispatch.NotRecognized()))
	assert.Equal(t, 1, *helpCalls)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, errOut.String(), "Unrecognized combination of options or no options...")
}

func TestReport_UnrecognizedWithoutHelp(t *testing.T) {
	var out, errOut bytes.Buffer
	r := New(console.New(&out, &errOut, console.Options{}), nil)
	assert.Equal(t, ExitFailure, r.Report(dispatch.NotRecognized()))
}
