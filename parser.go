package arggo

import (
	"fmt"
	"os"
	"strings"
)

// Parser matches a token vector against registered subcommands, flags,
// keyed arguments and positionals. Registration happens once through the
// fluent Add* methods; ParseArgs may then run any number of times, each
// run resetting the previous state first.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	keywords []Keyword // registered raw keywords, duplicate detection only

	subcommands []*argument
	flags       []*argument
	mandatories []*argument
	optionals   []*argument
	positionals []*argument
}

func NewParser() *Parser {
	return &Parser{}
}

// AddSubcommand registers a named branch and returns its nested parser so
// chained calls build the subtree. The name joins the node's keyword
// namespace unnormalized.
func (p *Parser) AddSubcommand(name, description string) *Parser {
	kw := Keyword{Key: name}
	p.register(kw, nil)
	sub := newSubcommand(name, description)
	p.subcommands = append(p.subcommands, sub)
	return sub.sub
}

// AddFlag registers a valueless flag under its literal name.
func (p *Parser) AddFlag(key Keyword, description string) *Parser {
	f := newFlag(key, description)
	p.register(key, f)
	p.flags = append(p.flags, f)
	return p
}

// AddOptional registers a keyed argument whose absence is permitted.
func (p *Parser) AddOptional(key Keyword, description string) *Parser {
	o := newOptional(key, description)
	p.register(key, o)
	p.optionals = append(p.optionals, o)
	return p
}

// AddMandatory registers a keyed argument whose absence fails the parse.
func (p *Parser) AddMandatory(key Keyword, description string) *Parser {
	m := newMandatory(key, description)
	p.register(key, m)
	p.mandatories = append(p.mandatories, m)
	return p
}

// AddArgument registers an optional or mandatory keyed argument.
func (p *Parser) AddArgument(key Keyword, description string, optional bool) *Parser {
	if optional {
		return p.AddOptional(key, description)
	}
	return p.AddMandatory(key, description)
}

// AddPositional registers a positional argument. Positional names do not
// join the keyword namespace and may repeat.
func (p *Parser) AddPositional(name, description string) *Parser {
	p.positionals = append(p.positionals, newPositional(name, description))
	return p
}

// register checks the new keyword against this node's namespace and
// records it. Keyword collisions are programming errors, raised as panics
// at registration time, never at parse time.
func (p *Parser) register(kw Keyword, arg *argument) {
	for _, existing := range p.keywords {
		if existing.Equals(kw) {
			panic(fmt.Errorf("%w: %s", ErrDuplicateKeyword, kw))
		}
	}
	if err := p.checkGluedPrefix(arg); err != nil {
		panic(err)
	}
	p.keywords = append(p.keywords, kw)
}

// checkGluedPrefix rejects registrations that make glued option matching
// ambiguous: an option key that is a strict prefix of another option key
// or flag name would claim that name's exact tokens as glued values.
// Subcommand names are exempt, dispatch matches them only as the literal
// first token.
func (p *Parser) checkGluedPrefix(arg *argument) error {
	if arg == nil {
		return nil
	}
	newIsOption := arg.kind == optionalArg || arg.kind == mandatoryArg
	for _, group := range [][]*argument{p.flags, p.mandatories, p.optionals} {
		for _, other := range group {
			otherIsOption := other.kind != flagArg
			for _, name := range other.key.names() {
				for _, newName := range arg.key.names() {
					if otherIsOption && name != newName && strings.HasPrefix(newName, name) {
						return fmt.Errorf("%w: %q and %q", ErrAmbiguousKeyword, name, newName)
					}
					if newIsOption && name != newName && strings.HasPrefix(name, newName) {
						return fmt.Errorf("%w: %q and %q", ErrAmbiguousKeyword, newName, name)
					}
				}
			}
		}
	}
	return nil
}

// Subcommands returns the number of registered subcommands.
func (p *Parser) Subcommands() int { return len(p.subcommands) }

// Flags returns the number of registered flags.
func (p *Parser) Flags() int { return len(p.flags) }

// Mandatories returns the number of registered mandatory arguments.
func (p *Parser) Mandatories() int { return len(p.mandatories) }

// Optionals returns the number of registered optional arguments.
func (p *Parser) Optionals() int { return len(p.optionals) }

// Positionals returns the number of registered positionals.
func (p *Parser) Positionals() int { return len(p.positionals) }

// SubcommandParser returns the nested parser registered under key.
func (p *Parser) SubcommandParser(key string) (*Parser, error) {
	sub, err := p.findSubcommand(key)
	if err != nil {
		return nil, err
	}
	return sub.sub, nil
}

func (p *Parser) findSubcommand(name string) (*argument, error) {
	for _, sub := range p.subcommands {
		if sub.key.Matches(name) {
			return sub, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrSubcommandNotFound, name)
}

// GetFlag reports whether the flag named key was set by the last parse.
func (p *Parser) GetFlag(key string) bool {
	for _, f := range p.flags {
		if f.key.Matches(key) {
			return f.parsed
		}
	}
	return false
}

// Parsed reports whether the named declaration of any kind matched during
// the last parse.
func (p *Parser) Parsed(key string) bool {
	for _, args := range [][]*argument{
		p.subcommands, p.flags, p.mandatories, p.optionals, p.positionals,
	} {
		for _, a := range args {
			if a.matchesLookup(key) {
				return a.parsed
			}
		}
	}
	return false
}

// Parse parses the process arguments. On failure it prints the error and
// the usage text and exits with status 2.
func (p *Parser) Parse() {
	if err := p.ParseArgs(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n\n", err)
		fmt.Fprint(os.Stderr, p.Usage(os.Args[0]))
		os.Exit(2)
	}
}

// ParseArgs matches args against the registered declarations. The passes
// run in fixed order: subcommand dispatch, keyed options, flags,
// positionals. A subcommand match consumes the whole remaining vector
// recursively and skips the later passes at this node. A failed parse
// still leaves the previous state cleared.
func (p *Parser) ParseArgs(args []string) error {
	for _, group := range [][]*argument{
		p.subcommands, p.flags, p.optionals, p.mandatories, p.positionals,
	} {
		for _, a := range group {
			a.reset()
		}
	}

	if len(args) > 0 {
		if sub, err := p.findSubcommand(args[0]); err == nil {
			if err := sub.sub.ParseArgs(args[1:]); err != nil {
				return err
			}
			sub.parsed = true
			return nil
		}
	}

	rest, err := p.consumeOptions(args)
	if err != nil {
		return err
	}
	for _, m := range p.mandatories {
		if !m.parsed {
			return fmt.Errorf("%w: %s", ErrMissingMandatory, m.key)
		}
	}
	rest = p.consumeFlags(rest)
	return p.assignPositionals(rest)
}

// optionMatch is how a token (or token pair) supplied a keyed value.
type optionMatch int

const (
	noMatch optionMatch = iota
	whitespaceMatch
	gluedMatch
	equalSignMatch
	colonMatch
)

// consumeOptions claims every token interpretable as a mandatory or
// optional keyed argument and returns the unconsumed remainder.
func (p *Parser) consumeOptions(tokens []string) ([]string, error) {
	rest := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		arg, value, match := p.findOption(tokens[i])
		if arg == nil {
			rest = append(rest, tokens[i])
			continue
		}
		if match == whitespaceMatch {
			if i+1 >= len(tokens) {
				return nil, fmt.Errorf("%w: %s", ErrMissingValue, arg.key)
			}
			i++
			value = tokens[i]
		}
		arg.setValue(value)
	}
	return rest, nil
}

// findOption tries tok against mandatories first, then optionals.
func (p *Parser) findOption(tok string) (*argument, string, optionMatch) {
	for _, group := range [][]*argument{p.mandatories, p.optionals} {
		for _, a := range group {
			if value, match := matchOption(a.key, tok); match != noMatch {
				return a, value, match
			}
		}
	}
	return nil, "", noMatch
}

// matchOption matches tok against one normalized keyword. An exact match
// of either name takes the value from the following token; a strict
// prefix match takes the in-token suffix, stripping a single "=" or ":"
// separator when one directly follows the name.
func matchOption(key Keyword, tok string) (string, optionMatch) {
	for _, name := range key.names() {
		if tok == name {
			return "", whitespaceMatch
		}
		if len(tok) > len(name) && strings.HasPrefix(tok, name) {
			suffix := tok[len(name):]
			switch suffix[0] {
			case '=':
				return suffix[1:], equalSignMatch
			case ':':
				return suffix[1:], colonMatch
			default:
				return suffix, gluedMatch
			}
		}
	}
	return "", noMatch
}

// consumeFlags claims every token equal to a registered flag name.
func (p *Parser) consumeFlags(tokens []string) []string {
	rest := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		matched := false
		for _, f := range p.flags {
			if f.key.Matches(tok) {
				f.parsed = true
				matched = true
				break
			}
		}
		if !matched {
			rest = append(rest, tok)
		}
	}
	return rest
}

// assignPositionals maps the remaining tokens onto the positionals in
// order. The counts must agree exactly: leftover tokens are unknown
// arguments, missing tokens are missing positionals.
func (p *Parser) assignPositionals(tokens []string) error {
	if len(tokens) > len(p.positionals) {
		return fmt.Errorf("%w: %s", ErrUnknownArguments,
			strings.Join(tokens[len(p.positionals):], " "))
	}
	if len(tokens) < len(p.positionals) {
		return fmt.Errorf("%w: %s", ErrMissingPositional,
			p.positionals[len(tokens)].key)
	}
	for i, tok := range tokens {
		p.positionals[i].setValue(tok)
	}
	return nil
}
