package tapes

import (
	"fmt"
	"strings"
)

// Width is the number of bytes in one tape element.
type Width int

const (
	Byte  Width = 1
	Word  Width = 2
	DWord Width = 4
	QWord Width = 8
)

var widthNames = map[Width]string{
	Byte:  "byte",
	Word:  "word",
	DWord: "dword",
	QWord: "qword",
}

func (w Width) Valid() bool {
	_, ok := widthNames[w]
	return ok
}

func (w Width) String() string {
	if name, ok := widthNames[w]; ok {
		return name
	}
	return fmt.Sprintf("Width(%d)", int(w))
}

func (w Width) Bits() int {
	return int(w) * 8
}

// Mask selects the low Bits() bits of a value.
func (w Width) Mask() uint64 {
	if w >= QWord {
		return ^uint64(0)
	}
	return uint64(1)<<w.Bits() - 1
}

// Format renders a cell value as decimal followed by the element's own two's complement hex.
func (w Width) Format(v int64) string {
	return fmt.Sprintf("%d (0x%X)", v, uint64(v)&w.Mask())
}

func (w Width) MarshalText() ([]byte, error) {
	if !w.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadWidth, int(w))
	}
	return []byte(w.String()), nil
}

func (w *Width) UnmarshalText(text []byte) error {
	parsed, err := ParseWidth(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

func ParseWidth(s string) (Width, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for w, n := range widthNames {
		if n == name {
			return w, nil
		}
	}
	return 0, fmt.Errorf("%w: %q, possible values: byte, word, dword, qword", ErrBadWidth, s)
}
