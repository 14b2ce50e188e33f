package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/bfic/bficonfigs"
	"github.com/reusee/bfic/bfvm"
	"github.com/reusee/bfic/debugs"
	"github.com/reusee/bfic/logs"
	"github.com/reusee/bfic/tapes"
	"github.com/reusee/dscope"
)

// run executes one program as configured by flags and config files.
// Programs from stdin are read into memory since loops need a seekable source.
func run(ctx context.Context, scope dscope.Scope, stdin io.Reader, stdout io.Writer) (result bfvm.Result) {
	defer func() {
		// invalid config files panic in providers
		if p := recover(); p != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", p)
			result = bfvm.Error
		}
	}()

	scope.Call(func(
		logger logs.Logger,
		newVM bfvm.NewVM,
		tap debugs.Tap,
		tapeSize bficonfigs.TapeSize,
		width bficonfigs.ElementWidth,
		overflow bficonfigs.OverflowMode,
		debug bficonfigs.Debug,
		matchNested bficonfigs.MatchNested,
		endChar bficonfigs.EndChar,
		count bficonfigs.Count,
		closeWriter logs.CloseWriter,
	) {
		defer func() {
			if err := closeWriter(); err != nil {
				fmt.Fprintf(os.Stderr, "close log file: %v\n", err)
			}
		}()

		fail := func(what string, err error) {
			logger.ErrorContext(ctx, what, "error", err)
			result = bfvm.Error
		}

		input, closeInput, err := openProgram(*fileFlag, stdin)
		if err != nil {
			fail("open program", err)
			return
		}
		defer closeInput()

		output := stdout
		if *outputFlag != "" {
			f, err := os.Create(*outputFlag)
			if err != nil {
				fail("create output", err)
				return
			}
			defer func() {
				if err := f.Close(); err != nil && result == bfvm.Success {
					fail("close output", err)
				}
			}()
			output = f
		}

		config := bfvm.Config{
			TapeSize:    int(tapeSize),
			Width:       tapes.Width(width),
			Overflow:    tapes.OverflowMode(overflow),
			Debug:       bool(debug),
			MatchNested: bool(matchNested),
			EndChar:     byte(endChar),
			Input:       input,
			Output:      output,
		}
		if *dataFlag != "" {
			f, err := os.Open(*dataFlag)
			if err != nil {
				fail("open data", err)
				return
			}
			defer f.Close()
			config.Data = f
		}

		vm := newVM(config)
		if *tapFlag {
			if *fileFlag == "" {
				logger.WarnContext(ctx, "program read from stdin, tap prompts will see end of input")
			}
			vm.Tap = tap
		}
		stats, err := vm.Run(ctx)
		result = bfvm.ResultOf(err)

		if count {
			logger.InfoContext(ctx, "run stats",
				"result", result,
				"instructions", stats.Instructions,
				"iterations", stats.Iterations,
				"max_depth", stats.MaxDepth,
				"written", stats.Written,
			)
		}

		if *snapshotFlag != "" && vm.Tape != nil {
			if err := writeSnapshot(*snapshotFlag, vm.Tape); err != nil {
				logger.ErrorContext(ctx, "write snapshot", "error", err)
				if result == bfvm.Success {
					result = bfvm.Error
				}
			}
		}
	})

	return
}

func openProgram(path string, stdin io.Reader) (io.ReadSeeker, func() error, error) {
	if path == "" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("read stdin: %w", err)
		}
		return bytes.NewReader(content), func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func writeSnapshot(path string, tape *tapes.Tape) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := tape.Snapshot(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// inspect prints the dump of a saved snapshot.
func inspect(path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	tape, err := tapes.Restore(f)
	if err != nil {
		return fmt.Errorf("restore %s: %w", path, err)
	}
	return tapes.Dump(w, tape)
}
