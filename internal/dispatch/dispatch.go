// Package dispatch runs the one operation bound to a resolved mode and turns
// whatever it does (return, fail, panic) into an Outcome.
package dispatch

import (
	"context"
	"fmt"

	"github.com/marmos91/idmctl/internal/mode"
)

// Operation performs one remote action for a resolved mode.
type Operation func(ctx context.Context, m mode.Mode) error

// Table binds operation modes to operations.
type Table map[mode.Kind]Operation

// Dispatch calls the operation registered for m.Kind exactly once. Errors
// become failure outcomes and panics become thrown outcomes; neither escapes.
func Dispatch(ctx context.Context, m mode.Mode, ops Table) (out Outcome) {
	if !m.Recognized() {
		return NotRecognized()
	}
	op, ok := ops[m.Kind]
	if !ok || op == nil {
		return NotRecognized()
	}

	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}
			out = Threw(err)
		}
	}()

	if err := op(ctx, m); err != nil {
		return FailedWith(err)
	}
	return Succeeded()
}
