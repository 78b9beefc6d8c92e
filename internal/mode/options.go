package mode

import (
	"fmt"
	"sort"

	"github.com/spf13/pflag"
)

// Options is the set of options explicitly supplied for one invocation.
// Values are either string or bool; options left at their defaults are absent.
type Options map[string]any

// FromFlags collects the flags the user set on the command line. It reads
// each flag's Changed mark rather than the set's own bookkeeping, so derived
// sets such as cobra's LocalFlags() work too.
func FromFlags(fs *pflag.FlagSet) Options {
	opts := Options{}
	fs.VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		if f.Value.Type() == "bool" {
			opts[f.Name] = f.Value.String() == "true"
			return
		}
		opts[f.Name] = f.Value.String()
	})
	return opts
}

// Has reports whether the option is present with a usable value: a non-empty
// string, or a boolean that is true.
func (o Options) Has(name string) bool {
	switch v := o[name].(type) {
	case bool:
		return v
	case string:
		return v != ""
	case nil:
		return false
	default:
		return true
	}
}

// String returns the option's value as a string, or "" when absent.
func (o Options) String(name string) string {
	switch v := o[name].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Names returns the supplied option names in sorted order.
func (o Options) Names() []string {
	names := make([]string, 0, len(o))
	for name := range o {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
