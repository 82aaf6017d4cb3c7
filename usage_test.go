package arggo

import (
	"strings"
	"testing"
)

var usageCases = []struct {
	about        string
	build        func() *Parser
	expectSubStr string
}{{
	"flags and options",
	func() *Parser {
		p := NewParser()
		p.AddFlag(Abbr("verbose", "v"), "verbose output").
			AddMandatory(Abbr("output", "o"), "output file").
			AddOptional(Key("level"), "compression level")
		return p
	},
	`
Options:
	verbose, v            verbose output
	--output, -o <value>  output file  (required)
	--level <value>       compression level
`,
}, {
	"positionals",
	func() *Parser {
		p := NewParser()
		p.AddPositional("input", "input file").
			AddPositional("x", "")
		return p
	},
	`
Arguments:
	<input>  input file
	<x>
`,
}, {
	"subcommand alignment",
	func() *Parser {
		p := NewParser()
		p.AddSubcommand("build", "compile the project")
		p.AddSubcommand("go", "run it")
		return p
	},
	`
Commands:
	build  compile the project
	go     run it
`,
}, {
	"synopsis line",
	func() *Parser {
		p := NewParser()
		p.AddSubcommand("sub", "")
		p.AddFlag(Key("f"), "").AddPositional("input", "")
		return p
	},
	"Usage: prog [OPTIONS] [COMMAND] <input>\n",
}}

func TestUsage(t *testing.T) {
	for _, c := range usageCases {
		t.Run(c.about, func(t *testing.T) {
			helpText := c.build().Usage("prog")
			realTrimmed, expTrimmed := trimEveryLine(helpText), trimEveryLine(c.expectSubStr)
			if !strings.Contains(realTrimmed, expTrimmed) {
				t.Fatalf(
					"error: does not contain expected substr\n>>>real>>>\n%s\n===\n%s\n<<<expect<<<\n"+
						">>>real.trimmed>>>\n%s\n===\n%s\n<<<expect.trimmed<<<\n",
					helpText, c.expectSubStr,
					realTrimmed, expTrimmed,
				)
			}
		})
	}
}

func trimEveryLine(s string) string {
	ret := []string{}
	lines := strings.Split(s, "\n")
	for _, l := range lines {
		ret = append(ret, strings.TrimSpace(l))
	}
	return strings.Join(ret, "\n")
}
