// Package mode selects the single operation a command invocation performs.
//
// Commands accept several mutually exclusive options (an id, a name, --all,
// --all-separate, a file). A Resolver holds an ordered rule table; the first
// rule whose options are present wins and every later rule is ignored. The
// resolver performs no I/O.
package mode

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedOptions reports that no rule matched the supplied options.
var ErrUnrecognizedOptions = errors.New("unrecognized combination of options or no options")

// Kind identifies an operation mode.
type Kind int

const (
	// Unrecognized means no rule matched; the command prints help and fails.
	Unrecognized Kind = iota
	// ByIdentifier targets one resource by id.
	ByIdentifier
	// ByName targets one resource by name.
	ByName
	// All targets every resource of the kind in the realm.
	All
	// AllFromSingleSource imports or exports every resource via one file.
	AllFromSingleSource
	// AllFromSeparateSources imports or exports every resource, one file each.
	AllFromSeparateSources
	// FirstFromSource imports the first resource found in a file.
	FirstFromSource
	// Default is the only mode of commands without alternatives (list).
	Default
)

var kindNames = map[Kind]string{
	Unrecognized:           "unrecognized",
	ByIdentifier:           "by-identifier",
	ByName:                 "by-name",
	All:                    "all",
	AllFromSingleSource:    "all-from-single-source",
	AllFromSeparateSources: "all-from-separate-sources",
	FirstFromSource:        "first-from-source",
	Default:                "default",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Mode is the resolved operation together with its parameters.
type Mode struct {
	Kind Kind
	// ID is the resource identifier for ByIdentifier.
	ID string
	// Name is the resource name for ByName.
	Name string
	// File is the source or target file, when one was supplied.
	File string
}

// Recognized reports whether a rule matched.
func (m Mode) Recognized() bool {
	return m.Kind != Unrecognized
}

func (m Mode) String() string {
	switch m.Kind {
	case ByIdentifier:
		return fmt.Sprintf("%s(%s)", m.Kind, m.ID)
	case ByName:
		return fmt.Sprintf("%s(%s)", m.Kind, m.Name)
	case AllFromSingleSource, FirstFromSource:
		return fmt.Sprintf("%s(%s)", m.Kind, m.File)
	default:
		return m.Kind.String()
	}
}
