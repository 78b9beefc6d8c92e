package mode

import "strings"

// Rule selects Kind when Option is present. A rule with an empty Option
// always matches.
type Rule struct {
	Kind   Kind
	Option string
}

// Resolver picks a Mode from an Options set using an ordered rule table.
type Resolver struct {
	rules      []Rule
	fileOption string
}

// NewResolver creates a resolver. Rules are evaluated in order and the first
// match wins. fileOption, when non-empty, names the option whose value is
// copied into Mode.File.
func NewResolver(fileOption string, rules ...Rule) *Resolver {
	return &Resolver{
		rules:      append([]Rule(nil), rules...),
		fileOption: fileOption,
	}
}

// Resolve returns the mode of the first matching rule, or an Unrecognized
// mode when none match.
func (r *Resolver) Resolve(opts Options) Mode {
	for _, rule := range r.rules {
		if rule.Option != "" && !opts.Has(rule.Option) {
			continue
		}

		m := Mode{Kind: rule.Kind}
		if r.fileOption != "" {
			m.File = opts.String(r.fileOption)
		}
		switch rule.Kind {
		case ByIdentifier:
			m.ID = opts.String(rule.Option)
		case ByName:
			m.Name = opts.String(rule.Option)
		}
		return m
	}
	return Mode{Kind: Unrecognized}
}

// Precedence returns the kinds in evaluation order.
func (r *Resolver) Precedence() []Kind {
	kinds := make([]Kind, 0, len(r.rules))
	for _, rule := range r.rules {
		kinds = append(kinds, rule.Kind)
	}
	return kinds
}

// Describe renders the option precedence for help text, for example
// "--agent-id > --all".
func (r *Resolver) Describe() string {
	parts := make([]string, 0, len(r.rules))
	for _, rule := range r.rules {
		if rule.Option == "" {
			continue
		}
		parts = append(parts, "--"+rule.Option)
	}
	return strings.Join(parts, " > ")
}
