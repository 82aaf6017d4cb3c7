package main

import (
	"fmt"

	"github.com/cemoktra/arggo"
)

func main() {
	p := arggo.NewParser()

	// subcommands return their own parser, chained calls build the subtree
	p.AddSubcommand("build", "compile the project").
		AddFlag(arggo.Abbr("release", "r"), "optimized build").
		AddOptional(arggo.Abbr("jobs", "j"), "parallel jobs")

	p.AddFlag(arggo.Abbr("verbose", "v"), "verbose output").
		AddMandatory(arggo.Abbr("output", "o"), "output file").
		AddOptional(arggo.Abbr("level", "l"), "compression level").
		AddPositional("input", "input file")

	// all of these spell the same invocation:
	//   verbose --output result.txt -l:9 input.txt
	//   verbose -o=result.txt --level 9 input.txt
	//   verbose -oresult.txt --level=9 input.txt
	p.Parse()

	if p.Parsed("build") {
		sub, _ := p.SubcommandParser("build")
		fmt.Printf("build: release=%v jobs=%d\n",
			sub.GetFlag("release"), arggo.ValueOr(sub, "jobs", 1))
		return
	}

	output, _ := arggo.Value[string](p, "output")
	input, _ := arggo.Value[string](p, "input")
	fmt.Printf("verbose=%v output=%q level=%d input=%q\n",
		p.GetFlag("verbose"), output, arggo.ValueOr(p, "level", 0), input)
}
