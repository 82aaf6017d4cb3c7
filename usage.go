package arggo

import (
	"fmt"
	"strings"
)

// Usage renders the help text for this node from the registered
// declarations. program is the name printed in the synopsis line,
// typically os.Args[0].
func (p *Parser) Usage(program string) string {
	cmdList := p.subcommandUsageList()
	optList := p.optionUsageList()
	argList := p.positionalUsageList()

	usage := fmt.Sprintf("Usage: %s", program)
	if len(optList) > 0 {
		usage += " [OPTIONS]"
	}
	if len(cmdList) > 0 {
		usage += " [COMMAND]"
	}
	for _, pos := range p.positionals {
		usage = fmt.Sprintf("%s <%s>", usage, pos.key.Key)
	}
	usage += "\n"

	if len(cmdList) > 0 {
		usage += fmt.Sprintf(
			"\nCommands:\n%s\n", strings.Join(fmap(cmdList, shiftFour), "\n"),
		)
	}
	if len(argList) > 0 {
		usage += fmt.Sprintf(
			"\nArguments:\n%s\n", strings.Join(fmap(argList, shiftFour), "\n"),
		)
	}
	if len(optList) > 0 {
		usage += fmt.Sprintf(
			"\nOptions:\n%s\n", strings.Join(fmap(optList, shiftFour), "\n"),
		)
	}
	if len(cmdList) > 0 {
		usage += fmt.Sprintf(
			"\nRun `%s [COMMAND]` with its own arguments to use a COMMAND\n",
			program,
		)
	}
	return usage
}

func (p *Parser) optionUsageList() []string {
	type entry struct {
		name string
		desc string
	}
	entries := []entry{}
	for _, f := range p.flags {
		entries = append(entries, entry{f.key.String(), f.description})
	}
	for _, m := range p.mandatories {
		entries = append(entries, entry{
			fmt.Sprintf("%s <value>", m.key.String()),
			strings.TrimSpace(m.description + "  (required)"),
		})
	}
	for _, o := range p.optionals {
		entries = append(entries, entry{
			fmt.Sprintf("%s <value>", o.key.String()), o.description,
		})
	}

	maxNameLength := 0
	for _, e := range entries {
		maxNameLength = maxInt(maxNameLength, len(e.name))
	}
	list := []string{}
	for _, e := range entries {
		if e.desc == "" {
			list = append(list, e.name)
			continue
		}
		list = append(list, fmt.Sprintf(
			"%s  %s", appendSpacesToLength(e.name, maxNameLength), e.desc,
		))
	}
	return list
}

func (p *Parser) positionalUsageList() []string {
	maxNameLength := 0
	for _, pos := range p.positionals {
		// add 2 for <> around the name
		maxNameLength = maxInt(maxNameLength, 2+len(pos.key.Key))
	}
	list := []string{}
	for _, pos := range p.positionals {
		name := appendSpacesToLength(fmt.Sprintf("<%s>", pos.key.Key), maxNameLength)
		if pos.description == "" {
			list = append(list, strings.TrimRight(name, " "))
			continue
		}
		list = append(list, fmt.Sprintf("%s  %s", name, pos.description))
	}
	return list
}

func (p *Parser) subcommandUsageList() []string {
	maxCmdLength := 0
	for _, sub := range p.subcommands {
		maxCmdLength = maxInt(maxCmdLength, len(sub.key.Key))
	}
	list := []string{}
	for _, sub := range p.subcommands {
		if sub.description == "" {
			list = append(list, sub.key.Key)
			continue
		}
		list = append(list, fmt.Sprintf(
			"%s  %s", appendSpacesToLength(sub.key.Key, maxCmdLength), sub.description,
		))
	}
	return list
}

func shiftFour(s string) string {
	const fourSpace = "    "
	return fourSpace + s
}

func fmap(ss []string, f func(string) string) []string {
	for i, s := range ss {
		ss[i] = f(s)
	}
	return ss
}

func appendSpacesToLength(s string, toLength int) string {
	needSpace := toLength - len(s)
	for i := 0; i < needSpace; i++ {
		s += " "
	}
	return s
}

func maxInt(a, b int) int {
	if a < b {
		return b
	}
	return a
}
