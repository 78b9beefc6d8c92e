package prompt

import (
	"errors"
	"fmt"
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
)

func nonInteractive(t *testing.T) {
	t.Helper()
	orig := Interactive
	Interactive = func() bool { return false }
	t.Cleanup(func() { Interactive = orig })
}

func TestPromptsRequireTerminal(t *testing.T) {
	nonInteractive(t)

	_, err := InputRequired("Username")
	assert.ErrorIs(t, err, ErrNotInteractive)

	_, err = Password("Password")
	assert.ErrorIs(t, err, ErrNotInteractive)

	_, err = Confirm("Delete?", false)
	assert.ErrorIs(t, err, ErrNotInteractive)
}

func TestConfirmWithForce(t *testing.T) {
	nonInteractive(t)

	ok, err := ConfirmWithForce("Delete?", true)
	assert.NoError(t, err)
	assert.True(t, ok)

	_, err = ConfirmWithForce("Delete?", false)
	assert.ErrorIs(t, err, ErrNotInteractive)
}

func TestIsAborted(t *testing.T) {
	assert.True(t, IsAborted(promptui.ErrInterrupt))
	assert.True(t, IsAborted(fmt.Errorf("prompt: %w", ErrAborted)))
	assert.False(t, IsAborted(errors.New("boom")))
	assert.NoError(t, wrapError(nil))
	assert.Equal(t, ErrAborted, wrapError(promptui.ErrAbort))
}

func TestAnswer(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name       string
		result     string
		err        error
		defaultYes bool
		want       bool
		wantErr    error
	}{
		{name: "yes", result: "y", want: true},
		{name: "yes spelled out", result: " YES ", want: true},
		{name: "other text", result: "maybe", want: false},
		{name: "empty takes default", result: "", defaultYes: true, want: true},
		{name: "no", result: "n", err: promptui.ErrAbort, defaultYes: true, want: false},
		{name: "empty abort takes default", result: "", err: promptui.ErrAbort, defaultYes: true, want: true},
		{name: "ctrl-c", err: promptui.ErrInterrupt, wantErr: ErrAborted},
		{name: "other error", err: boom, wantErr: boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := answer(tt.result, tt.err, tt.defaultYes)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNotBlank(t *testing.T) {
	validate := notBlank("username")
	assert.EqualError(t, validate("   "), "username required")
	assert.NoError(t, validate(" admin "))
}
