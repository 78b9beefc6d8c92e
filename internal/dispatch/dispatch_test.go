package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/marmos91/idmctl/internal/mode"
	"github.com/stretchr/testify/assert"
)

func TestDispatch_Success(t *testing.T) {
	var got mode.Mode
	calls := 0
	ops := Table{
		mode.ByIdentifier: func(ctx context.Context, m mode.Mode) error {
			calls++
			got = m
			return nil
		},
		mode.All: func(ctx context.Context, m mode.Mode) error {
			t.Fatal("all operation must not run")
			return nil
		},
	}

	out := Dispatch(context.Background(), mode.Mode{Kind: mode.ByIdentifier, ID: "web1"}, ops)

	assert.True(t, out.OK())
	assert.Equal(t, 1, calls)
	assert.Equal(t, "web1", got.ID)
}

func TestDispatch_Failure(t *testing.T) {
	notFound := errors.New("not found")
	ops := Table{
		mode.ByIdentifier: func(ctx context.Context, m mode.Mode) error { return notFound },
	}

	out := Dispatch(context.Background(), mode.Mode{Kind: mode.ByIdentifier, ID: "x"}, ops)

	assert.Equal(t, StatusFailure, out.Status)
	assert.Equal(t, "not found", out.Message)
	assert.ErrorIs(t, out.Err, notFound)
}

func TestDispatch_Panic(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		message string
	}{
		{name: "error value", value: errors.New("boom"), message: "boom"},
		{name: "string value", value: "kaput", message: "kaput"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := Table{
				mode.All: func(ctx context.Context, m mode.Mode) error { panic(tt.value) },
			}

			out := Dispatch(context.Background(), mode.Mode{Kind: mode.All}, ops)

			assert.Equal(t, StatusThrown, out.Status)
			assert.Equal(t, tt.message, out.Message)
		})
	}
}

func TestDispatch_Unrecognized(t *testing.T) {
	called := false
	ops := Table{
		mode.ByIdentifier: func(ctx context.Context, m mode.Mode) error { called = true; return nil },
	}

	assert.Equal(t, StatusUnrecognized, Dispatch(context.Background(), mode.Mode{Kind: mode.Unrecognized}, ops).Status)
	assert.Equal(t, StatusUnrecognized, Dispatch(context.Background(), mode.Mode{Kind: mode.ByName}, ops).Status)
	assert.False(t, called)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "thrown", StatusThrown.String())
	assert.Equal(t, "status(42)", Status(42).String())
}
