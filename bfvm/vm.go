package bfvm

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/reusee/bfic/debugs"
	"github.com/reusee/bfic/logs"
	"github.com/reusee/bfic/tapes"
)

const Theory = `
Loop execution:
The program is never parsed. Each byte read from the source is one instruction.
A '[' with a nonzero guard records the source offset after itself and executes the
body by calling the dispatch loop recursively; the matching ']' returns from that call.
The caller then seeks back and pushes the '[' again, so the next read evaluates the
guard once more and the body bytes are read from the source anew on every iteration.
Recursion depth follows loop nesting, not iteration count.

A '[' with a zero guard discards bytes up to the first ']'. Nested brackets inside the
skipped region are not counted unless MatchNested is set.
`

// Stats counts what a run did.
type Stats struct {
	// Instructions is the number of recognized instructions dispatched, loop headers included on every evaluation.
	Instructions int64
	// Iterations is the number of loop body executions.
	Iterations int64
	MaxDepth   int
	Written    int64
}

type VM struct {
	Config  Config
	Logger  logs.Logger
	NewSpan logs.NewSpan
	// Tap, when set, is opened by '#' in debug mode.
	Tap debugs.Tap

	// Tape is the memory of the last run.
	Tape *tapes.Tape
}

// Run executes the program until the source is exhausted or the run aborts.
// The error is nil, a SetupError, an *AbortError, or a stream failure; see ResultOf.
func (v *VM) Run(ctx context.Context) (stats Stats, err error) {
	logger := v.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if v.NewSpan != nil {
		ctx, _ = v.NewSpan(ctx, "")
	}
	defer func() {
		if err != nil {
			err = logs.WrapSpan(ctx, err)
		}
	}()

	cfg := v.Config
	src, err := cfg.source()
	if err != nil {
		logger.ErrorContext(ctx, "open source", "error", err)
		return stats, SetupError{Err: err}
	}
	if cfg.Output == nil {
		logger.ErrorContext(ctx, "open output", "error", ErrNilOutput)
		return stats, SetupError{Err: ErrNilOutput}
	}
	tape, err := tapes.New(cfg.TapeSize, cfg.Width, cfg.Overflow)
	if err != nil {
		logger.ErrorContext(ctx, "allocate tape", "error", err)
		return stats, SetupError{Err: err}
	}
	v.Tape = tape

	logger.DebugContext(ctx, "run start",
		"tape_size", tape.Size(),
		"width", tape.Width(),
		"overflow", tape.Mode(),
		"footprint", tape.Footprint().HR(),
		"debug", cfg.Debug,
	)

	out := bufio.NewWriter(cfg.Output)
	e := &execution{
		ctx:    ctx,
		cfg:    &cfg,
		tape:   tape,
		src:    src,
		out:    out,
		logger: logger,
		tap:    v.Tap,
	}
	e.data = src
	if cfg.Data != nil {
		if br, ok := cfg.Data.(io.ByteReader); ok {
			e.data = br
		} else {
			e.data = bufio.NewReader(cfg.Data)
		}
	}

	err = e.run()
	if flushErr := out.Flush(); err == nil {
		err = flushErr
	}
	stats = e.stats

	var abortErr *AbortError
	switch {
	case err == nil:
		logger.DebugContext(ctx, "run finished",
			"instructions", stats.Instructions,
			"iterations", stats.Iterations,
			"max_depth", stats.MaxDepth,
			"written", stats.Written,
		)
	case errors.As(err, &abortErr):
		logger.ErrorContext(ctx, "run aborted",
			"reason", abortErr.Err,
			"offset", abortErr.Offset,
			"cursor", tape.Cursor(),
		)
	default:
		logger.ErrorContext(ctx, "run failed", "error", err)
	}

	return stats, err
}
