package tapes

import (
	"fmt"

	"github.com/c2h5oh/datasize"
)

const (
	DefaultSize = 1024

	// MaxFootprint is the upper bound of size * width.
	MaxFootprint = datasize.GB
)

// Tape is the interpreter memory: a fixed number of signed cells of one width and a cursor.
type Tape struct {
	cells  cells
	width  Width
	mode   OverflowMode
	cursor int
}

// New allocates a zeroed tape of size elements.
func New(size int, width Width, mode OverflowMode) (*Tape, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrZeroSize, size)
	}
	if !width.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadWidth, int(width))
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadMode, int(mode))
	}
	if uint64(size) > MaxFootprint.Bytes()/uint64(width) {
		requested := datasize.ByteSize(uint64(size)) * datasize.ByteSize(width)
		return nil, fmt.Errorf(
			"%w: max size %d bytes (%s), requested %d bytes (%s)",
			ErrTooLarge,
			MaxFootprint.Bytes(), MaxFootprint.HR(),
			requested.Bytes(), requested.HR(),
		)
	}
	return &Tape{
		cells: makeCells(width, size),
		width: width,
		mode:  mode,
	}, nil
}

func (t *Tape) Size() int {
	return t.cells.len()
}

func (t *Tape) Width() Width {
	return t.width
}

func (t *Tape) Mode() OverflowMode {
	return t.mode
}

func (t *Tape) Cursor() int {
	return t.cursor
}

func (t *Tape) Footprint() datasize.ByteSize {
	return datasize.ByteSize(t.Size()) * datasize.ByteSize(t.width)
}

// InBounds reports whether the cursor addresses a cell. Only Default mode can make it false.
func (t *Tape) InBounds() bool {
	return t.cursor >= 0 && t.cursor < t.Size()
}

func (t *Tape) Read() int64 {
	return t.cells.get(t.cursor)
}

// At returns the value of cell i regardless of the cursor.
func (t *Tape) At(i int) int64 {
	return t.cells.get(i)
}

func (t *Tape) Increment() {
	t.cells.add(t.cursor, 1)
}

func (t *Tape) Decrement() {
	t.cells.add(t.cursor, -1)
}

// WriteRaw stores v truncated to the element width.
func (t *Tape) WriteRaw(v uint64) {
	t.cells.set(t.cursor, int64(v))
}

func (t *Tape) Advance() bool {
	switch t.mode {
	case Wrap:
		t.cursor = (t.cursor + 1) % t.Size()
	case Abort:
		if t.cursor >= t.Size()-1 {
			return false
		}
		t.cursor++
	default:
		t.cursor++
	}
	return true
}

func (t *Tape) Retreat() bool {
	switch t.mode {
	case Wrap:
		t.cursor = (t.cursor + t.Size() - 1) % t.Size()
	case Abort:
		if t.cursor <= 0 {
			return false
		}
		t.cursor--
	default:
		t.cursor--
	}
	return true
}
