package debugs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/reusee/bfic/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// TapInput is where tap statements are read from.
type TapInput io.Reader

func (Module) TapInput() TapInput {
	return os.Stdin
}

// TapOutput receives the prompt, printed values and errors of a tap.
type TapOutput io.Writer

func (Module) TapOutput() TapOutput {
	return os.Stderr
}

// Tap evaluates one Starlark statement or expression per input line with globals predeclared.
// A session ends at a "continue" line or at the end of the input. Lines after "continue" are left for the next session.
type Tap func(ctx context.Context, what string, globals map[string]any)

var tapFileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

func (Module) Tap(
	logger logs.Logger,
	input TapInput,
	output TapOutput,
) Tap {
	// one scanner for all sessions of this input
	scanner := bufio.NewScanner(input)
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		env := toStarlarkGlobals(globals)
		thread := &starlark.Thread{
			Name: "tap",
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Fprintln(output, msg)
			},
		}

		for {
			fmt.Fprint(output, what+"> ")
			if !scanner.Scan() {
				fmt.Fprintln(output)
				return
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "continue" {
				return
			}
			if err := tapLine(thread, env, line, output); err != nil {
				fmt.Fprintln(output, err)
			}
		}
	}
}

func tapLine(thread *starlark.Thread, env starlark.StringDict, line string, output io.Writer) error {
	value, err := starlark.EvalOptions(tapFileOptions, thread, "<tap>", line, env)
	var syntaxErr syntax.Error
	if errors.As(err, &syntaxErr) {
		// not an expression, run it as statements
		defined, err := starlark.ExecFileOptions(tapFileOptions, thread, "<tap>", line, env)
		if err != nil {
			return err
		}
		maps.Copy(env, defined)
		return nil
	}
	if err != nil {
		return err
	}
	if value != starlark.None {
		fmt.Fprintln(output, value.String())
	}
	return nil
}
