package arggo

type argKind int

const (
	flagArg argKind = iota
	optionalArg
	mandatoryArg
	positionalArg
	subcommandArg
)

// argument is the single declaration record behind every registrable kind.
// kind selects the variant; value is the type-erased payload of the last
// parse (empty for flags, the nested parser carries subcommand state).
type argument struct {
	key         Keyword // normalized for optionalArg/mandatoryArg
	rawKey      Keyword // as registered, before dash normalization
	description string
	kind        argKind

	parsed bool
	value  string

	sub *Parser // subcommandArg only
}

func newFlag(key Keyword, description string) *argument {
	return &argument{key: key, rawKey: key, description: description, kind: flagArg}
}

func newOptional(key Keyword, description string) *argument {
	return &argument{
		key: normalizeOption(key), rawKey: key,
		description: description, kind: optionalArg,
	}
}

func newMandatory(key Keyword, description string) *argument {
	return &argument{
		key: normalizeOption(key), rawKey: key,
		description: description, kind: mandatoryArg,
	}
}

func newPositional(name, description string) *argument {
	return &argument{
		key: Keyword{Key: name}, rawKey: Keyword{Key: name},
		description: description, kind: positionalArg,
	}
}

func newSubcommand(name, description string) *argument {
	return &argument{
		key: Keyword{Key: name}, rawKey: Keyword{Key: name},
		description: description, kind: subcommandArg,
		sub: NewParser(),
	}
}

// reset clears the per-parse state. Subcommand parsers reset themselves
// lazily when dispatch recurses into them.
func (a *argument) reset() {
	a.parsed = false
	a.value = ""
}

func (a *argument) setValue(v string) {
	a.parsed = true
	a.value = v
}

// matchesLookup reports whether s names this argument in an accessor
// call, accepting both the registered and the dash-normalized spelling.
func (a *argument) matchesLookup(s string) bool {
	return a.rawKey.Matches(s) || a.key.Matches(s)
}
