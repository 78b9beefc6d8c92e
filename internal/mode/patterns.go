package mode

// Option names shared by the resource commands.
const (
	OptionAll         = "all"
	OptionAllSeparate = "all-separate"
	OptionFile        = "file"
)

// DeletePattern: an id beats --all.
func DeletePattern(idOption string) *Resolver {
	return NewResolver("",
		Rule{Kind: ByIdentifier, Option: idOption},
		Rule{Kind: All, Option: OptionAll},
	)
}

// DeleteByIDOrNamePattern: an id beats a name, which beats --all.
func DeleteByIDOrNamePattern(idOption, nameOption string) *Resolver {
	return NewResolver("",
		Rule{Kind: ByIdentifier, Option: idOption},
		Rule{Kind: ByName, Option: nameOption},
		Rule{Kind: All, Option: OptionAll},
	)
}

// ImportPattern orders id > name > --all > --all-separate > --file. An empty
// nameOption leaves the by-name rule out.
func ImportPattern(idOption, nameOption string) *Resolver {
	rules := []Rule{{Kind: ByIdentifier, Option: idOption}}
	if nameOption != "" {
		rules = append(rules, Rule{Kind: ByName, Option: nameOption})
	}
	rules = append(rules,
		Rule{Kind: AllFromSingleSource, Option: OptionAll},
		Rule{Kind: AllFromSeparateSources, Option: OptionAllSeparate},
		Rule{Kind: FirstFromSource, Option: OptionFile},
	)
	return NewResolver(OptionFile, rules...)
}

// ExportPattern orders id > --all > --all-separate.
func ExportPattern(idOption string) *Resolver {
	return NewResolver(OptionFile,
		Rule{Kind: ByIdentifier, Option: idOption},
		Rule{Kind: AllFromSingleSource, Option: OptionAll},
		Rule{Kind: AllFromSeparateSources, Option: OptionAllSeparate},
	)
}

// Require matches kind only when option is present.
func Require(kind Kind, option string) *Resolver {
	return NewResolver("", Rule{Kind: kind, Option: option})
}

// Always matches kind unconditionally.
func Always(kind Kind) *Resolver {
	return NewResolver("", Rule{Kind: kind})
}
