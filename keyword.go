package arggo

import "strings"

// Keyword names a registrable argument: a primary name plus an optional
// abbreviation. An empty Abbr means the keyword has no abbreviation.
type Keyword struct {
	Key  string
	Abbr string
}

// Key returns a Keyword without abbreviation.
func Key(key string) Keyword {
	return Keyword{Key: key}
}

// Abbr returns a Keyword with abbreviation.
func Abbr(key, abbr string) Keyword {
	return Keyword{Key: key, Abbr: abbr}
}

// Equals reports whether any name of k matches any name of other.
// An abbreviation is interchangeable with a full name, so
// {out, o} equals {o} and equals {other, o}.
func (k Keyword) Equals(other Keyword) bool {
	return k.Key == other.Key ||
		(other.Abbr != "" && k.Key == other.Abbr) ||
		(k.Abbr != "" && k.Abbr == other.Key) ||
		(k.Abbr != "" && other.Abbr != "" && k.Abbr == other.Abbr)
}

// Matches reports whether s equals the primary name or the abbreviation.
func (k Keyword) Matches(s string) bool {
	return k.Key == s || (k.Abbr != "" && k.Abbr == s)
}

func (k Keyword) String() string {
	if k.Abbr == "" {
		return k.Key
	}
	return k.Key + ", " + k.Abbr
}

// normalizeOption canonicalizes a keyword for a value-bearing keyed
// argument: the primary name gets a "--" prefix, the abbreviation a "-"
// prefix. Idempotent. Flags and positionals keep their literal names.
func normalizeOption(k Keyword) Keyword {
	if !strings.HasPrefix(k.Key, "--") {
		k.Key = "--" + strings.TrimLeft(k.Key, "-")
	}
	if k.Abbr != "" && !strings.HasPrefix(k.Abbr, "-") {
		k.Abbr = "-" + k.Abbr
	}
	return k
}

// names lists the present names of k.
func (k Keyword) names() []string {
	if k.Abbr == "" {
		return []string{k.Key}
	}
	return []string{k.Key, k.Abbr}
}
