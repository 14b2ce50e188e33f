package bfvm

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/reusee/bfic/debugs"
	"github.com/reusee/bfic/logs"
	"github.com/reusee/bfic/tapes"
)

// execution is the state of one run, shared by all recursive loop invocations.
type execution struct {
	ctx    context.Context
	cfg    *Config
	tape   *tapes.Tape
	src    Source
	data   io.ByteReader
	out    *bufio.Writer
	logger logs.Logger
	tap    debugs.Tap

	depth int
	stats Stats
}

func (e *execution) abort(err error) error {
	return &AbortError{
		Err:    err,
		Offset: e.src.Offset(),
	}
}

// run dispatches instructions until the source is exhausted or a ']' closes the current loop body.
func (e *execution) run() error {
	for {
		c, err := e.src.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return fmt.Errorf("read program: %w", err)
		}
		if e.cfg.EndChar != 0 && c == e.cfg.EndChar {
			break
		}

		switch c {

		case '>':
			if !e.tape.Advance() {
				return e.abort(ErrCursorOverflow)
			}

		case '<':
			if !e.tape.Retreat() {
				return e.abort(ErrCursorOverflow)
			}

		case '+':
			if !e.tape.InBounds() {
				return e.abort(ErrCursorOutOfRange)
			}
			e.tape.Increment()

		case '-':
			if !e.tape.InBounds() {
				return e.abort(ErrCursorOutOfRange)
			}
			e.tape.Decrement()

		case '.':
			if !e.tape.InBounds() {
				return e.abort(ErrCursorOutOfRange)
			}
			if err := e.write(); err != nil {
				return err
			}

		case ',':
			if !e.tape.InBounds() {
				return e.abort(ErrCursorOutOfRange)
			}
			if err := e.read(); err != nil {
				return err
			}

		case '[':
			if !e.tape.InBounds() {
				return e.abort(ErrCursorOutOfRange)
			}
			e.stats.Instructions++
			if e.tape.Read() == 0 {
				if err := e.skip(); err != nil {
					return err
				}
				continue
			}
			offset := e.src.Offset()
			e.depth++
			e.stats.Iterations++
			e.stats.MaxDepth = max(e.stats.MaxDepth, e.depth)
			if err := e.run(); err != nil {
				return err
			}
			if err := e.src.Seek(offset); err != nil {
				return fmt.Errorf("rewind loop: %w", err)
			}
			e.src.Pushback('[')
			continue

		case ']':
			if e.depth == 0 {
				return e.abort(ErrUnmatchedClose)
			}
			e.stats.Instructions++
			e.depth--
			return nil

		case '#':
			if !e.cfg.Debug {
				continue
			}
			if err := e.dump(); err != nil {
				return err
			}

		default:
			continue
		}

		e.stats.Instructions++
	}

	if e.depth != 0 {
		return e.abort(ErrMissingClose)
	}
	return nil
}

// skip discards bytes up to the ']' closing a zero-guarded loop.
func (e *execution) skip() error {
	level := 0
	for {
		c, err := e.src.ReadByte()
		if errors.Is(err, io.EOF) {
			return e.abort(ErrMissingClose)
		} else if err != nil {
			return fmt.Errorf("read program: %w", err)
		}
		switch c {
		case '[':
			if e.cfg.MatchNested {
				level++
			}
		case ']':
			if level == 0 {
				return nil
			}
			level--
		}
	}
}

func (e *execution) write() error {
	value := e.tape.Read()
	if e.tape.Width() == tapes.Byte {
		if err := e.out.WriteByte(byte(value)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		e.stats.Written++
		return nil
	}
	n, err := fmt.Fprintf(e.out, "%s\n", e.tape.Width().Format(value))
	e.stats.Written += int64(n)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// read loads one big-endian value of the element width.
func (e *execution) read() error {
	var value uint64
	for range int(e.tape.Width()) {
		b, err := e.data.ReadByte()
		if errors.Is(err, io.EOF) {
			return e.abort(ErrTruncatedRead)
		} else if err != nil {
			return fmt.Errorf("read value: %w", err)
		}
		value = value<<8 | uint64(b)
	}
	e.tape.WriteRaw(value)
	return nil
}

func (e *execution) dump() error {
	if err := tapes.Dump(e.out, e.tape); err != nil {
		return fmt.Errorf("dump tape: %w", err)
	}
	if e.tap == nil {
		return nil
	}
	if err := e.out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	tape := e.tape
	start, window := tape.Window()
	e.tap(e.ctx, "tape", map[string]any{
		"cursor":       tape.Cursor(),
		"size":         tape.Size(),
		"width":        tape.Width().String(),
		"mode":         tape.Mode().String(),
		"window_start": start,
		"window":       window,
		"peek": func(i int) int64 {
			if i < 0 || i >= tape.Size() {
				return 0
			}
			return tape.At(i)
		},
	})
	return nil
}
