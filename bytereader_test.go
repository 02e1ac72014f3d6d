package exifcore

import (
	"encoding/binary"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestRandomAccessReaderPrimitives(t *testing.T) {
	c := qt.New(t)
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	r := newReaderAt(data, binary.LittleEndian)

	u8, err := ReadU8At(r, 0)
	c.Assert(err, qt.IsNil)
	c.Assert(u8, qt.Equals, uint8(0x01))

	u16, err := ReadU16At(r, 0)
	c.Assert(err, qt.IsNil)
	c.Assert(u16, qt.Equals, uint16(0x0201))

	u32, err := ReadU32At(r, 0)
	c.Assert(err, qt.IsNil)
	c.Assert(u32, qt.Equals, uint32(0x04030201))

	u64, err := ReadU64At(r, 0)
	c.Assert(err, qt.IsNil)
	c.Assert(u64, qt.Equals, uint64(0x0807060504030201))
}

func TestRandomAccessReaderBigEndian(t *testing.T) {
	c := qt.New(t)
	data := []byte{0x00, 0x0A}
	r := newReaderAt(data, binary.BigEndian)
	v, err := ReadU16At(r, 0)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint16(10))
}

func TestWithByteOrderDoesNotMutateReceiver(t *testing.T) {
	c := qt.New(t)
	data := []byte{0x00, 0x0A}
	r := newReaderAt(data, binary.LittleEndian)
	derived := r.WithByteOrder(binary.BigEndian)

	c.Assert(r.ByteOrder(), qt.Equals, binary.ByteOrder(binary.LittleEndian))
	c.Assert(derived.ByteOrder(), qt.Equals, binary.ByteOrder(binary.BigEndian))
}

func TestWithBaseOffsetShiftsReads(t *testing.T) {
	c := qt.New(t)
	data := []byte{0xFF, 0xFF, 0x2A, 0x00}
	r := newReaderAt(data, binary.LittleEndian)
	shifted := r.WithBaseOffset(2)

	v, err := ReadU16At(shifted, 0)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint16(0x002A))
}

func TestReadNullTerminatedBytesAt(t *testing.T) {
	c := qt.New(t)
	data := []byte("hello\x00world")
	r := newReaderAt(data, binary.LittleEndian)

	b, err := ReadNullTerminatedBytesAt(r, 0, len(data))
	c.Assert(err, qt.IsNil)
	c.Assert(string(b), qt.Equals, "hello")
}

func TestReadNullTerminatedBytesAtNoTerminator(t *testing.T) {
	c := qt.New(t)
	data := []byte("hello")
	r := newReaderAt(data, binary.LittleEndian)

	b, err := ReadNullTerminatedBytesAt(r, 0, len(data))
	c.Assert(err, qt.IsNil)
	c.Assert(string(b), qt.Equals, "hello")
}

func TestReadFixed16_16AtLittleEndian(t *testing.T) {
	c := qt.New(t)
	// Fixed 16.16 little-endian layout: the signed integer part occupies
	// the first two bytes, the fraction numerator the last two.
	data := make([]byte, 4)
	binary.LittleEndian.PutUint16(data[0:2], 3)     // integer part 3
	binary.LittleEndian.PutUint16(data[2:4], 32768) // fraction 0.5
	r := newReaderAt(data, binary.LittleEndian)

	v, err := ReadFixed16_16At(r, 0)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, 3.5)
}

func TestReadBytesAtShortReadErrors(t *testing.T) {
	c := qt.New(t)
	data := []byte{0x01, 0x02}
	r := newReaderAt(data, binary.LittleEndian)

	_, err := ReadBytesAt(r, 0, 10)
	c.Assert(err, qt.IsNotNil)
	c.Assert(IsFormatError(err, ErrIOTruncated), qt.IsTrue)
}

func TestReadStringAtUTF16(t *testing.T) {
	c := qt.New(t)
	data := []byte{'h', 0, 'i', 0, 0, 0}
	r := newReaderAt(data, binary.LittleEndian)

	s, err := ReadStringAt(r, 0, len(data), EncodingUTF16)
	c.Assert(err, qt.IsNil)
	c.Assert(s, qt.Equals, "hi")
}
