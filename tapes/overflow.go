package tapes

import (
	"fmt"
	"strings"
)

// OverflowMode decides what happens when the cursor is moved past either end of the tape.
type OverflowMode int

const (
	// Default moves the cursor without any bounds check.
	// Cell access through an out of range cursor is undefined for Tape; callers must check InBounds.
	Default OverflowMode = iota
	// Wrap moves the cursor modulo the tape size.
	Wrap
	// Abort refuses the move and reports failure.
	Abort
)

var overflowNames = []string{
	Default: "default",
	Wrap:    "wrap",
	Abort:   "abort",
}

func (m OverflowMode) Valid() bool {
	return m >= Default && m <= Abort
}

func (m OverflowMode) String() string {
	if m.Valid() {
		return overflowNames[m]
	}
	return fmt.Sprintf("OverflowMode(%d)", int(m))
}

func (m OverflowMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadMode, int(m))
	}
	return []byte(m.String()), nil
}

func (m *OverflowMode) UnmarshalText(text []byte) error {
	parsed, err := ParseOverflowMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func ParseOverflowMode(s string) (OverflowMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for mode, n := range overflowNames {
		if n == name {
			return OverflowMode(mode), nil
		}
	}
	return 0, fmt.Errorf("%w: %q, possible values: default, wrap, abort", ErrBadMode, s)
}
