package bfvm

import (
	"io"

	"github.com/reusee/bfic/tapes"
)

// Config is everything a run needs. It is read only to the VM.
type Config struct {
	TapeSize int
	Width    tapes.Width
	Overflow tapes.OverflowMode

	// Debug enables the '#' instruction.
	Debug bool

	// MatchNested makes the skip scan of a zero-guarded '[' track nested brackets.
	// When false the scan stops at the first ']', which ends the skip early for nested loops.
	MatchNested bool

	// EndChar, when not zero, ends the program as if the stream was exhausted.
	EndChar byte

	// Input is the program. ',' reads from it too unless Data is set.
	Input io.ReadSeeker
	// Source replaces Input when set.
	Source Source
	// Data is an optional separate stream for ','.
	Data   io.Reader
	Output io.Writer
}

func (c Config) source() (Source, error) {
	if c.Source != nil {
		return c.Source, nil
	}
	if c.Input == nil {
		return nil, ErrNilInput
	}
	return NewStream(c.Input)
}
