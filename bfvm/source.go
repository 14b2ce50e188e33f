package bfvm

import (
	"bufio"
	"io"
)

// Source is the instruction stream.
// Loops are executed by seeking back to the header, so every iteration reads the body again.
type Source interface {
	io.ByteReader
	// Pushback makes b the next byte returned by ReadByte.
	Pushback(b byte)
	// Offset is the position of the next byte to be read.
	Offset() int64
	// Seek moves to an absolute offset and drops pushed back bytes.
	Seek(offset int64) error
}

// Stream is a Source over an io.ReadSeeker.
type Stream struct {
	upstream io.ReadSeeker
	reader   io.ByteReader
	buffered *bufio.Reader
	offset   int64
	pushed   []byte
}

var _ Source = new(Stream)

func NewStream(r io.ReadSeeker) (*Stream, error) {
	offset, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	s := &Stream{
		upstream: r,
		offset:   offset,
	}
	if br, ok := r.(io.ByteReader); ok {
		s.reader = br
	} else {
		s.buffered = bufio.NewReader(r)
		s.reader = s.buffered
	}
	return s, nil
}

func (s *Stream) ReadByte() (byte, error) {
	if n := len(s.pushed); n > 0 {
		b := s.pushed[n-1]
		s.pushed = s.pushed[:n-1]
		s.offset++
		return b, nil
	}
	b, err := s.reader.ReadByte()
	if err != nil {
		return 0, err
	}
	s.offset++
	return b, nil
}

func (s *Stream) Pushback(b byte) {
	s.pushed = append(s.pushed, b)
	s.offset--
}

func (s *Stream) Offset() int64 {
	return s.offset
}

func (s *Stream) Seek(offset int64) error {
	if _, err := s.upstream.Seek(offset, io.SeekStart); err != nil {
		return err
	}
	if s.buffered != nil {
		s.buffered.Reset(s.upstream)
	}
	s.pushed = s.pushed[:0]
	s.offset = offset
	return nil
}
