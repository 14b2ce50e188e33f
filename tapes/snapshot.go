package tapes

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

type snapshot struct {
	Width  Width        `cbor:"1,keyasint"`
	Mode   OverflowMode `cbor:"2,keyasint"`
	Size   int          `cbor:"3,keyasint"`
	Cursor int          `cbor:"4,keyasint"`
	// trailing zero cells are not stored
	Cells []int64 `cbor:"5,keyasint,omitempty"`
}

// Snapshot writes the tape state as CBOR.
func (t *Tape) Snapshot(w io.Writer) error {
	n := t.Size()
	for n > 0 && t.At(n-1) == 0 {
		n--
	}
	cells := make([]int64, n)
	for i := range cells {
		cells[i] = t.At(i)
	}
	return cbor.NewEncoder(w).Encode(snapshot{
		Width:  t.width,
		Mode:   t.mode,
		Size:   t.Size(),
		Cursor: t.cursor,
		Cells:  cells,
	})
}

// Restore reads a tape written by Snapshot.
func Restore(r io.Reader) (*Tape, error) {
	var snap snapshot
	if err := cbor.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	tape, err := New(snap.Size, snap.Width, snap.Mode)
	if err != nil {
		return nil, fmt.Errorf("restore snapshot: %w", err)
	}
	if len(snap.Cells) > snap.Size {
		return nil, fmt.Errorf("restore snapshot: %d cells for tape size %d", len(snap.Cells), snap.Size)
	}
	for i, v := range snap.Cells {
		tape.cells.set(i, v)
	}
	tape.cursor = snap.Cursor
	return tape, nil
}
