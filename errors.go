package arggo

import "errors"

// Registration errors are programming errors and are raised as panics by
// the Add* methods. Parse errors are returned by ParseArgs.
var (
	ErrDuplicateKeyword   = errors.New("keyword already used")
	ErrAmbiguousKeyword   = errors.New("keyword is a prefix of another keyword")
	ErrUnknownArguments   = errors.New("found unknown arguments")
	ErrMissingPositional  = errors.New("missing positional arguments")
	ErrSubcommandNotFound = errors.New("subcommand not found")
	ErrMissingMandatory   = errors.New("missing mandatory argument")
	ErrMissingValue       = errors.New("no value provided for argument")
	ErrValueConversion    = errors.New("cannot convert value")
	ErrNotParsed          = errors.New("argument not supplied")
)
