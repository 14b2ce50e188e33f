package tapes

import (
	"fmt"
	"io"
	"strings"
)

const (
	// DumpRadius is the number of cells shown on each side of the cursor.
	DumpRadius = 8
	// dumpEdge is the number of cells shown at each end of the tape when the window does not reach it.
	dumpEdge = DumpRadius / 2
)

// Dump writes a windowed view of the tape around the cursor. It does not modify the tape.
func Dump(w io.Writer, t *Tape) error {
	size := t.Size()
	center := min(max(t.cursor, 0), size-1)
	start := max(center-DumpRadius, 0)
	end := min(center+DumpRadius+1, size)

	var items []string
	cell := func(i int) {
		item := t.width.Format(t.At(i))
		if i == t.cursor {
			item = ">>> " + item + " <<<"
		}
		items = append(items, item)
	}

	if start > 0 {
		head := min(dumpEdge, start)
		for i := range head {
			cell(i)
		}
		if head < start {
			items = append(items, "...")
		}
	}

	for i := start; i < end; i++ {
		cell(i)
	}

	if end < size {
		tail := max(end, size-dumpEdge)
		if tail > end {
			items = append(items, "...")
		}
		for i := tail; i < size; i++ {
			cell(i)
		}
	}

	cursor := fmt.Sprint(t.cursor)
	if !t.InBounds() {
		cursor += " (out of range)"
	}
	_, err := fmt.Fprintf(w,
		"Tape size: %d, cursor: %s\nDumping tape: [%s]\n",
		size, cursor, strings.Join(items, ", "),
	)
	return err
}

// Window returns the cells within DumpRadius of the cursor.
func (t *Tape) Window() (start int, values []int64) {
	center := min(max(t.cursor, 0), t.Size()-1)
	start = max(center-DumpRadius, 0)
	end := min(center+DumpRadius+1, t.Size())
	values = make([]int64, 0, end-start)
	for i := start; i < end; i++ {
		values = append(values, t.At(i))
	}
	return start, values
}
