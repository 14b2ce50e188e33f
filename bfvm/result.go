package bfvm

import "errors"

// Result is the completion status of a run.
type Result int

const (
	Success Result = iota
	Abort
	Error
)

func (r Result) String() string {
	switch r {
	case Success:
		return "success"
	case Abort:
		return "abort"
	}
	return "error"
}

// ExitCode is the process exit status for a result.
func (r Result) ExitCode() int {
	return int(r)
}

// ResultOf classifies the error returned by VM.Run.
func ResultOf(err error) Result {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrAbort):
		return Abort
	}
	return Error
}
