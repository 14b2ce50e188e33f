package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

func (p *Executor) WriteUsage(w io.Writer) {
	writeCommands(w, p.commands, 0)
}

func writeCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases point to the same command; list each command once under its first sorted name
	names := make(map[*Command][]string)
	var order []*Command
	keys := make([]string, 0, len(commands))
	for name := range commands {
		keys = append(keys, name)
	}
	slices.Sort(keys)
	for _, name := range keys {
		cmd := commands[name]
		if cmd == nil || cmd.Hidden {
			continue
		}
		if _, ok := names[cmd]; !ok {
			order = append(order, cmd)
		}
		names[cmd] = append(names[cmd], name)
	}

	indent := strings.Repeat("  ", depth)
	for _, cmd := range order {
		line := indent + strings.Join(names[cmd], ", ")
		if len(cmd.Params) > 0 {
			line += " " + strings.Join(cmd.Params, " ")
		}
		if cmd.Description != "" {
			line += "\t" + cmd.Description
		}
		fmt.Fprintln(w, line)
		if len(cmd.Subs) > 0 {
			writeCommands(w, cmd.Subs, depth+1)
		}
	}
}
