package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/bfic/bfvm"
	"github.com/reusee/bfic/cmds"
	"github.com/reusee/bfic/modes"
	"github.com/reusee/dscope"
)

var (
	fileFlag     = cmds.Var[string]("-file", "program file, stdin if not set")
	outputFlag   = cmds.Var[string]("-o", "output file, stdout if not set")
	dataFlag     = cmds.Var[string]("-data", "file read by ',' instead of the program")
	tapFlag      = cmds.Switch("-tap", "open a starlark prompt at every # in debug mode")
	snapshotFlag = cmds.Var[string]("-snapshot", "save the tape to this file when the run ends")
	inspectFlag  = cmds.Var[string]("-inspect", "print the dump of a saved tape and exit")
)

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(bfvm.Error.ExitCode())
	}

	if *inspectFlag != "" {
		if err := inspect(*inspectFlag, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(bfvm.Error.ExitCode())
		}
		return
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)
	result := run(context.Background(), scope, os.Stdin, os.Stdout)
	os.Exit(result.ExitCode())
}
