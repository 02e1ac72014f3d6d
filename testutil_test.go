package exifcore

import (
	"encoding/binary"
	"io"
)

// entryDef is one not-yet-placed IFD entry for the test builders below:
// value is either the raw inline bytes (<=4, zero-padded holes are the
// caller's problem) or the out-of-line payload the builder appends after
// the directory block, patching the pointer field itself.
type entryDef struct {
	tag    uint16
	format uint16
	count  uint32
	value  []byte
}

// buildIFDBytes lays out one classic-TIFF IFD (entry count, 12-byte
// entries, next-IFD pointer) as it would appear starting at absolute
// file offset base, appending any out-of-line values immediately after
// the fixed-size directory block and patching their pointers to the
// resulting absolute offsets.
func buildIFDBytes(order binary.ByteOrder, base int, entries []entryDef, next uint32) []byte {
	dirSize := 2 + len(entries)*12 + 4
	out := make([]byte, dirSize)
	order.PutUint16(out[0:2], uint16(len(entries)))

	var payload []byte
	payloadBase := base + dirSize
	pos := 2
	for _, e := range entries {
		order.PutUint16(out[pos:pos+2], e.tag)
		order.PutUint16(out[pos+2:pos+4], e.format)
		order.PutUint32(out[pos+4:pos+8], e.count)
		if len(e.value) <= 4 {
			copy(out[pos+8:pos+12], e.value)
		} else {
			order.PutUint32(out[pos+8:pos+12], uint32(payloadBase+len(payload)))
			payload = append(payload, e.value...)
		}
		pos += 12
	}
	order.PutUint32(out[pos:pos+4], next)
	return append(out, payload...)
}

// u16b encodes v as a 4-byte inline field (one SHORT component).
func u16b(order binary.ByteOrder, v uint16) []byte {
	b := make([]byte, 4)
	order.PutUint16(b[0:2], v)
	return b
}

// u32b encodes v as a 4-byte inline field (one LONG component, or a
// sub-IFD/makernote pointer).
func u32b(order binary.ByteOrder, v uint32) []byte {
	b := make([]byte, 4)
	order.PutUint32(b, v)
	return b
}

// asciiB encodes s as a NUL-terminated ASCII value, inline if it fits.
func asciiB(s string) []byte {
	return append([]byte(s), 0)
}

// rationalB encodes one (num, den) RATIONAL/SRATIONAL component pair.
func rationalB(order binary.ByteOrder, num, den uint32) []byte {
	b := make([]byte, 8)
	order.PutUint32(b[0:4], num)
	order.PutUint32(b[4:8], den)
	return b
}

// tiffHeader returns the 8-byte classic-TIFF header: byte-order mark,
// marker 0x002A, and the 32-bit offset to IFD0.
func tiffHeader(order binary.ByteOrder, ifd0Offset uint32) []byte {
	b := make([]byte, 8)
	if order == binary.BigEndian {
		copy(b[0:2], []byte("MM"))
	} else {
		copy(b[0:2], []byte("II"))
	}
	order.PutUint16(b[2:4], 0x002A)
	order.PutUint32(b[4:8], ifd0Offset)
	return b
}

func newReaderAt(data []byte, order binary.ByteOrder) RandomAccessReader {
	return NewRandomAccessReader(bytesReaderAt(data), order)
}

// bytesReaderAt is a trivial io.ReaderAt over a fixed byte slice.
type bytesReaderAt []byte

func (b bytesReaderAt) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= int64(len(b)) {
		return 0, io.EOF
	}
	n := copy(p, b[off:])
	if n < len(p) {
		return n, io.ErrUnexpectedEOF
	}
	return n, nil
}
