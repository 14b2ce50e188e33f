package bfvm

import (
	"errors"
	"fmt"
)

var (
	ErrSetup = errors.New("setup error")
	ErrAbort = errors.New("run aborted")

	ErrNilInput  = errors.New("input stream cannot be nil")
	ErrNilOutput = errors.New("output stream cannot be nil")

	ErrCursorOverflow   = errors.New("cursor moved past tape bounds")
	ErrCursorOutOfRange = errors.New("cell access with cursor outside of tape")
	ErrUnmatchedClose   = errors.New("unexpected end of loop")
	ErrMissingClose     = errors.New("unexpected end of file, missing ']'")
	ErrTruncatedRead    = errors.New("unexpected end of file when loading value")
)

// SetupError is returned when the run could not start.
type SetupError struct {
	Err error
}

func (s SetupError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSetup, s.Err)
}

func (s SetupError) Unwrap() error {
	return s.Err
}

func (s SetupError) Is(target error) bool {
	return target == ErrSetup
}

// AbortError is a handled run-time violation. Offset is the stream position right after the failing instruction.
type AbortError struct {
	Err    error
	Offset int64
}

func (a *AbortError) Error() string {
	return fmt.Sprintf("%s: %s at offset %d", ErrAbort, a.Err, a.Offset)
}

func (a *AbortError) Unwrap() error {
	return a.Err
}

func (a *AbortError) Is(target error) bool {
	return target == ErrAbort
}
