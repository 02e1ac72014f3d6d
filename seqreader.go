package exifcore

import "encoding/binary"

// SequentialReader is the read-and-advance counterpart to
// RandomAccessReader, modelled on the teacher's streamReader
// (io.go): a thin cursor over a RandomAccessReader.
type SequentialReader struct {
	r   RandomAccessReader
	pos int64
}

// NewSequentialReader returns a SequentialReader positioned at offset 0
// of r.
func NewSequentialReader(r RandomAccessReader) *SequentialReader {
	return &SequentialReader{r: r}
}

// Pos returns the current cursor position.
func (s *SequentialReader) Pos() int64 { return s.pos }

// Seek moves the cursor to an absolute position.
func (s *SequentialReader) Seek(pos int64) { s.pos = pos }

// Skip advances the cursor by n bytes without reading.
func (s *SequentialReader) Skip(n int64) { s.pos += n }

// TrySkip advances the cursor by n bytes, reporting whether the
// underlying reader actually has that many bytes available.
func (s *SequentialReader) TrySkip(n int64) bool {
	if n <= 0 {
		s.pos += n
		return true
	}
	if s.IsCloserToEnd(n) {
		return false
	}
	s.pos += n
	return true
}

// IsCloserToEnd reports whether fewer than n bytes remain readable from
// the current position.
func (s *SequentialReader) IsCloserToEnd(n int64) bool {
	probe := make([]byte, 1)
	_, err := s.r.ReadAt(probe, s.pos+n-1)
	return err != nil
}

// ReadU8 reads an unsigned 8-bit integer at the cursor and advances it.
func (s *SequentialReader) ReadU8() (uint8, error) {
	v, err := ReadU8At(s.r, s.pos)
	if err == nil {
		s.pos++
	}
	return v, err
}

// ReadI8 reads a signed 8-bit integer at the cursor and advances it.
func (s *SequentialReader) ReadI8() (int8, error) {
	v, err := s.ReadU8()
	return int8(v), err
}

// ReadU16 reads an unsigned 16-bit integer at the cursor and advances it.
func (s *SequentialReader) ReadU16() (uint16, error) {
	v, err := ReadU16At(s.r, s.pos)
	if err == nil {
		s.pos += 2
	}
	return v, err
}

// ReadI16 reads a signed 16-bit integer at the cursor and advances it.
func (s *SequentialReader) ReadI16() (int16, error) {
	v, err := s.ReadU16()
	return int16(v), err
}

// ReadU32 reads an unsigned 32-bit integer at the cursor and advances it.
func (s *SequentialReader) ReadU32() (uint32, error) {
	v, err := ReadU32At(s.r, s.pos)
	if err == nil {
		s.pos += 4
	}
	return v, err
}

// ReadI32 reads a signed 32-bit integer at the cursor and advances it.
func (s *SequentialReader) ReadI32() (int32, error) {
	v, err := s.ReadU32()
	return int32(v), err
}

// ReadU64 reads an unsigned 64-bit integer at the cursor and advances it.
func (s *SequentialReader) ReadU64() (uint64, error) {
	v, err := ReadU64At(s.r, s.pos)
	if err == nil {
		s.pos += 8
	}
	return v, err
}

// ReadI64 reads a signed 64-bit integer at the cursor and advances it.
func (s *SequentialReader) ReadI64() (int64, error) {
	v, err := s.ReadU64()
	return int64(v), err
}

// ReadF32 reads a 32-bit IEEE-754 float at the cursor and advances it.
func (s *SequentialReader) ReadF32() (float32, error) {
	v, err := ReadF32At(s.r, s.pos)
	if err == nil {
		s.pos += 4
	}
	return v, err
}

// ReadF64 reads a 64-bit IEEE-754 float at the cursor and advances it.
func (s *SequentialReader) ReadF64() (float64, error) {
	v, err := ReadF64At(s.r, s.pos)
	if err == nil {
		s.pos += 8
	}
	return v, err
}

// ReadFixed16_16 reads the S15.16 fixed-point representation at the
// cursor and advances it by 4 bytes.
func (s *SequentialReader) ReadFixed16_16() (float64, error) {
	v, err := ReadFixed16_16At(s.r, s.pos)
	if err == nil {
		s.pos += 4
	}
	return v, err
}

// ReadBytes reads n raw bytes at the cursor and advances past them.
func (s *SequentialReader) ReadBytes(n int) ([]byte, error) {
	v, err := ReadBytesAt(s.r, s.pos, n)
	if err == nil {
		s.pos += int64(n)
	}
	return v, err
}

// ReadString reads a fixed-length string at the cursor and advances past it.
func (s *SequentialReader) ReadString(n int, enc StringEncoding) (string, error) {
	v, err := ReadStringAt(s.r, s.pos, n, enc)
	if err == nil {
		s.pos += int64(n)
	}
	return v, err
}

// ReadNullTerminatedBytes reads a slice of bytes from the current
// position until a zero byte is encountered, advancing the cursor past
// the bytes consumed (including the terminator, if found). max is the
// maximum number of bytes to consider, including the terminator.
func (s *SequentialReader) ReadNullTerminatedBytes(max int) ([]byte, error) {
	b, err := ReadNullTerminatedBytesAt(s.r, s.pos, max)
	if err != nil {
		return nil, err
	}
	if len(b) < max {
		s.pos += int64(len(b)) + 1
	} else {
		s.pos += int64(len(b))
	}
	return b, nil
}

// ByteOrder returns the underlying reader's current byte order.
func (s *SequentialReader) ByteOrder() binary.ByteOrder {
	return s.r.ByteOrder()
}
