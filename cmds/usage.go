package cmds

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
)

func (e *Executor) PrintUsage() {
	printCommands(e.commands, 0)
}

func printCommands(commands map[string]*Command, indent int) {
	// group aliases under their primary name
	printed := make(map[*Command]bool)
	names := slices.Sorted(maps.Keys(commands))
	for _, name := range names {
		command := commands[name]
		if command == nil || printed[command] {
			continue
		}
		printed[command] = true

		label := name
		if len(command.Aliases) > 0 {
			label += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		pad := strings.Repeat("  ", indent)
		if command.Description != "" {
			fmt.Fprintf(os.Stderr, "%s%s\n%s  %s\n", pad, label, pad, command.Description)
		} else {
			fmt.Fprintf(os.Stderr, "%s%s\n", pad, label)
		}

		if len(command.Subs) > 0 {
			printCommands(command.Subs, indent+1)
		}
	}
}
