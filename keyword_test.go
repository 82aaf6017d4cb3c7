package arggo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordEquals(t *testing.T) {
	cases := []struct {
		about string
		a, b  Keyword
		equal bool
	}{
		{"same key", Abbr("key", "abbr"), Key("key"), true},
		{"key matches other abbreviation", Key("abbr"), Abbr("key", "abbr"), true},
		{"abbreviation matches other key", Abbr("key", "abbr"), Key("abbr"), true},
		{"same abbreviation only", Abbr("key", "abbr"), Abbr("another", "abbr"), true},
		{"different names", Abbr("key", "abbr"), Key("another"), false},
		{"absent abbreviations never match", Key("key"), Key("another"), false},
	}
	for _, c := range cases {
		t.Run(c.about, func(t *testing.T) {
			assert.Equal(t, c.equal, c.a.Equals(c.b))
			assert.Equal(t, c.equal, c.b.Equals(c.a), "Equals must be symmetric")
		})
	}
}

func TestKeywordMatches(t *testing.T) {
	kw := Abbr("key", "abbr")
	assert.True(t, kw.Matches("key"))
	assert.True(t, kw.Matches("abbr"))
	assert.False(t, kw.Matches("another"))
	assert.False(t, Key("key").Matches(""), "absent abbreviation matches nothing")
}

func TestNormalizeOption(t *testing.T) {
	cases := []struct {
		about string
		in    Keyword
		out   Keyword
	}{
		{"bare names", Abbr("output", "o"), Abbr("--output", "-o")},
		{"already normalized", Abbr("--output", "-o"), Abbr("--output", "-o")},
		{"single dash key", Abbr("-output", "o"), Abbr("--output", "-o")},
		{"no abbreviation", Key("output"), Key("--output")},
	}
	for _, c := range cases {
		t.Run(c.about, func(t *testing.T) {
			assert.Equal(t, c.out, normalizeOption(c.in))
			assert.Equal(t, c.out, normalizeOption(normalizeOption(c.in)), "must be idempotent")
		})
	}
}
