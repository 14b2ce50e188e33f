package logs

import (
	"fmt"
	"io"
	"os"

	"github.com/reusee/bfic/cmds"
)

var logFileFlag = cmds.Var[string]("-log-file", "append logs to this file instead of stderr")

// Writer receives terminal log output. Program output never goes here.
type Writer io.Writer

func (Module) Writer() Writer {
	if *logFileFlag == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(*logFileFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v, using stderr\n", err)
		return os.Stderr
	}
	return f
}

// CloseWriter closes the file opened for -log-file. It does nothing when logging to stderr.
type CloseWriter func() error

func (Module) CloseWriter(
	writer Writer,
) CloseWriter {
	return func() error {
		if f, ok := writer.(*os.File); ok && f != os.Stderr {
			return f.Close()
		}
		return nil
	}
}
