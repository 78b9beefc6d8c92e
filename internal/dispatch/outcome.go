package dispatch

import "fmt"

// Status classifies how an invocation ended.
type Status int

const (
	// StatusSuccess means the operation completed.
	StatusSuccess Status = iota
	// StatusFailure means the operation returned an error.
	StatusFailure
	// StatusThrown means the operation panicked.
	StatusThrown
	// StatusUnrecognized means no operation matched the supplied options.
	StatusUnrecognized
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusThrown:
		return "thrown"
	case StatusUnrecognized:
		return "unrecognized"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Outcome is the structured result of one invocation.
type Outcome struct {
	Status  Status
	Message string
	Err     error
}

// Succeeded returns a success outcome.
func Succeeded() Outcome {
	return Outcome{Status: StatusSuccess}
}

// Failed returns a failure outcome carrying a user-facing message.
func Failed(message string) Outcome {
	return Outcome{Status: StatusFailure, Message: message}
}

// FailedWith returns a failure outcome for err, keeping err for errors.Is.
func FailedWith(err error) Outcome {
	return Outcome{Status: StatusFailure, Message: err.Error(), Err: err}
}

// Threw returns the outcome of a recovered panic.
func Threw(err error) Outcome {
	return Outcome{Status: StatusThrown, Message: err.Error(), Err: err}
}

// NotRecognized returns the outcome for an unmatched option combination.
func NotRecognized() Outcome {
	return Outcome{Status: StatusUnrecognized}
}

// OK reports whether the outcome is a success.
func (o Outcome) OK() bool {
	return o.Status == StatusSuccess
}
