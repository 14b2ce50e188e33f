package tapes

import (
	"errors"
	"testing"

	"github.com/c2h5oh/datasize"
)

var allWidths = []Width{Byte, Word, DWord, QWord}

func TestNewZeroed(t *testing.T) {
	for _, width := range allWidths {
		for _, size := range []int{1, 2, 7, DefaultSize, 65536} {
			tape, err := New(size, width, Default)
			if err != nil {
				t.Fatalf("%v %d: %v", width, size, err)
			}
			if tape.Size() != size {
				t.Fatalf("got %d", tape.Size())
			}
			if tape.Footprint() != datasize.ByteSize(size*int(width)) {
				t.Fatalf("got %v", tape.Footprint())
			}
			for i := range size {
				if v := tape.At(i); v != 0 {
					t.Fatalf("%v %d: cell %d is %d", width, size, i, v)
				}
			}
		}
	}
}

func TestNewFootprintCeiling(t *testing.T) {
	tape, err := New(1<<20, QWord, Wrap)
	if err != nil {
		t.Fatal(err)
	}
	if tape.Footprint() != 8*datasize.MB {
		t.Fatalf("got %v", tape.Footprint())
	}

	_, err = New(int(MaxFootprint.Bytes())/8+1, QWord, Wrap)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("got %v", err)
	}
	_, err = New(int(MaxFootprint.Bytes())+1, Byte, Wrap)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("got %v", err)
	}
}

func TestNewInvalid(t *testing.T) {
	if _, err := New(0, Byte, Default); !errors.Is(err, ErrZeroSize) {
		t.Fatalf("got %v", err)
	}
	if _, err := New(-1, Byte, Default); !errors.Is(err, ErrZeroSize) {
		t.Fatalf("got %v", err)
	}
	if _, err := New(10, Width(3), Default); !errors.Is(err, ErrBadWidth) {
		t.Fatalf("got %v", err)
	}
	if _, err := New(10, Byte, OverflowMode(42)); !errors.Is(err, ErrBadMode) {
		t.Fatalf("got %v", err)
	}
}

func TestIncrementDecrement(t *testing.T) {
	for _, width := range allWidths {
		tape, err := New(4, width, Default)
		if err != nil {
			t.Fatal(err)
		}

		for _, raw := range []uint64{0, 1, 42, width.Mask() >> 1, width.Mask()} {
			tape.WriteRaw(raw)
			before := tape.Read()
			tape.Increment()
			tape.Decrement()
			if got := tape.Read(); got != before {
				t.Fatalf("%v: raw %x: got %d, want %d", width, raw, got, before)
			}
			tape.Decrement()
			tape.Increment()
			if got := tape.Read(); got != before {
				t.Fatalf("%v: raw %x: got %d, want %d", width, raw, got, before)
			}
		}

		// all bits set is -1, incrementing wraps to 0
		tape.WriteRaw(width.Mask())
		if v := tape.Read(); v != -1 {
			t.Fatalf("%v: got %d", width, v)
		}
		tape.Increment()
		if v := tape.Read(); v != 0 {
			t.Fatalf("%v: got %d", width, v)
		}
		tape.Decrement()
		if v := tape.Read(); v != -1 {
			t.Fatalf("%v: got %d", width, v)
		}

		// signed maximum wraps to signed minimum
		tape.WriteRaw(width.Mask() >> 1)
		tape.Increment()
		if got, want := uint64(tape.Read())&width.Mask(), width.Mask()>>1+1; got != want {
			t.Fatalf("%v: got %x, want %x", width, got, want)
		}
	}
}

func TestByteWrap(t *testing.T) {
	tape, err := New(1, Byte, Default)
	if err != nil {
		t.Fatal(err)
	}
	for range 255 {
		tape.Increment()
	}
	if got := uint8(tape.Read()); got != 255 {
		t.Fatalf("got %d", got)
	}
	tape.Increment()
	if got := tape.Read(); got != 0 {
		t.Fatalf("got %d", got)
	}
}

func TestWriteRawTruncates(t *testing.T) {
	cases := []struct {
		width Width
		raw   uint64
		want  int64
	}{
		{Byte, 0x1234, 0x34},
		{Byte, 0x80, -128},
		{Word, 0x12345678, 0x5678},
		{Word, 0xFFFF, -1},
		{DWord, 0x1_0000_0005, 5},
		{DWord, 0x7FFF_FFFF, 0x7FFF_FFFF},
		{QWord, 0xFFFF_FFFF_FFFF_FFFE, -2},
	}
	for _, c := range cases {
		tape, err := New(1, c.width, Default)
		if err != nil {
			t.Fatal(err)
		}
		tape.WriteRaw(c.raw)
		if got := tape.Read(); got != c.want {
			t.Fatalf("%v %x: got %d, want %d", c.width, c.raw, got, c.want)
		}
	}
}

func TestWrapMode(t *testing.T) {
	tape, err := New(5, Byte, Wrap)
	if err != nil {
		t.Fatal(err)
	}
	if !tape.Retreat() {
		t.Fatal()
	}
	if tape.Cursor() != 4 {
		t.Fatalf("got %d", tape.Cursor())
	}
	if !tape.Advance() {
		t.Fatal()
	}
	if tape.Cursor() != 0 {
		t.Fatalf("got %d", tape.Cursor())
	}
	for range 12 {
		tape.Advance()
	}
	if tape.Cursor() != 2 {
		t.Fatalf("got %d", tape.Cursor())
	}
}

func TestAbortMode(t *testing.T) {
	tape, err := New(3, Word, Abort)
	if err != nil {
		t.Fatal(err)
	}
	if tape.Retreat() {
		t.Fatal("retreat from 0 should fail")
	}
	if tape.Cursor() != 0 || !tape.InBounds() {
		t.Fatalf("got %d", tape.Cursor())
	}
	if !tape.Advance() || !tape.Advance() {
		t.Fatal()
	}
	if tape.Advance() {
		t.Fatal("advance from last should fail")
	}
	if tape.Cursor() != 2 || !tape.InBounds() {
		t.Fatalf("got %d", tape.Cursor())
	}
	tape.Increment()
	if tape.Read() != 1 {
		t.Fatal()
	}
	if !tape.Retreat() || tape.Cursor() != 1 {
		t.Fatalf("got %d", tape.Cursor())
	}
}

func TestDefaultModeLeavesBounds(t *testing.T) {
	tape, err := New(2, Byte, Default)
	if err != nil {
		t.Fatal(err)
	}
	if !tape.Retreat() {
		t.Fatal()
	}
	if tape.Cursor() != -1 || tape.InBounds() {
		t.Fatalf("got %d", tape.Cursor())
	}
	tape.Advance()
	tape.Advance()
	tape.Advance()
	if tape.Cursor() != 2 || tape.InBounds() {
		t.Fatalf("got %d", tape.Cursor())
	}
	tape.Retreat()
	if !tape.InBounds() {
		t.Fatal()
	}
}
