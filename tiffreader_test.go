package exifcore

import (
	"encoding/binary"
	"testing"

	qt "github.com/frankban/quicktest"
)

// minimalTIFF builds the smallest possible classic little-endian TIFF:
// header at offset 0, one IFD0 at offset 8 with zero entries and no
// follower.
func minimalTIFF() []byte {
	order := binary.LittleEndian
	buf := tiffHeader(order, 8)
	buf = append(buf, buildIFDBytes(order, 8, nil, 0)...)
	return buf
}

func TestWalkMinimalTIFF(t *testing.T) {
	c := qt.New(t)
	data := minimalTIFF()
	r := newReaderAt(data, binary.LittleEndian)

	dirs, err := Decode(Options{R: r})
	c.Assert(err, qt.IsNil)
	c.Assert(dirs, qt.HasLen, 1)
	c.Assert(dirs[0].Kind(), qt.Equals, KindIFD0)
	c.Assert(dirs[0].Len(), qt.Equals, 0)
	c.Assert(dirs[0].Errors(), qt.HasLen, 0)
}

func TestWalkIFD0WithTags(t *testing.T) {
	c := qt.New(t)
	order := binary.LittleEndian
	entries := []entryDef{
		{tag: tagMake, format: 2, count: 6, value: asciiB("Kodak")},
		{tag: tagModel, format: 2, count: 4, value: asciiB("Z1")},
	}
	buf := tiffHeader(order, 8)
	buf = append(buf, buildIFDBytes(order, 8, entries, 0)...)

	r := newReaderAt(buf, order)
	dirs, err := Decode(Options{R: r})
	c.Assert(err, qt.IsNil)
	c.Assert(dirs, qt.HasLen, 1)

	v, ok := dirs[0].Get(tagMake)
	c.Assert(ok, qt.IsTrue)
	c.Assert(v, qt.Equals, "Kodak")

	v, ok = dirs[0].Get(tagModel)
	c.Assert(ok, qt.IsTrue)
	c.Assert(v, qt.Equals, "Z1")
}

func TestWalkBigEndianByteOrder(t *testing.T) {
	c := qt.New(t)
	order := binary.BigEndian
	entries := []entryDef{
		{tag: 0x0100, format: 4, count: 1, value: u32b(order, 1920)},
	}
	buf := tiffHeader(order, 8)
	buf = append(buf, buildIFDBytes(order, 8, entries, 0)...)

	r := newReaderAt(buf, order)
	dirs, err := Decode(Options{R: r})
	c.Assert(err, qt.IsNil)
	v, ok := dirs[0].Get(0x0100)
	c.Assert(ok, qt.IsTrue)
	c.Assert(v, qt.Equals, uint32(1920))
}

func TestWalkThumbnailFollowerIFD(t *testing.T) {
	c := qt.New(t)
	order := binary.LittleEndian

	// IFD0 at 8 with no entries, follower (thumbnail IFD) placed right
	// after it.
	ifd0 := buildIFDBytes(order, 8, nil, 0)
	thumbOffset := 8 + len(ifd0)
	thumb := buildIFDBytes(order, thumbOffset, []entryDef{
		{tag: 0x0100, format: 4, count: 1, value: u32b(order, 160)},
	}, 0)
	// patch ifd0's next-IFD pointer (last 4 bytes) to point at thumb.
	order.PutUint32(ifd0[len(ifd0)-4:], uint32(thumbOffset))

	buf := tiffHeader(order, 8)
	buf = append(buf, ifd0...)
	buf = append(buf, thumb...)

	r := newReaderAt(buf, order)
	dirs, err := Decode(Options{R: r})
	c.Assert(err, qt.IsNil)
	c.Assert(dirs, qt.HasLen, 2)
	c.Assert(dirs[0].Kind(), qt.Equals, KindIFD0)
	c.Assert(dirs[1].Kind(), qt.Equals, KindThumbnail)
	v, ok := dirs[1].Get(0x0100)
	c.Assert(ok, qt.IsTrue)
	c.Assert(v, qt.Equals, uint32(160))
}

// TestWalkFormatThirteenDecodesAsFourByteValue proves format code 13
// (§4.4's 32-bit-per-component undefined-custom some makernote pointer
// tags use) goes through TryCustomProcessFormat rather than being
// misjudged by the standard format table, and decodes cleanly.
func TestWalkFormatThirteenDecodesAsFourByteValue(t *testing.T) {
	c := qt.New(t)
	order := binary.LittleEndian
	entries := []entryDef{
		{tag: 0x1111, format: 13, count: 1, value: u32b(order, 0x1000)},
	}
	buf := tiffHeader(order, 8)
	buf = append(buf, buildIFDBytes(order, 8, entries, 0)...)

	r := newReaderAt(buf, order)
	dirs, err := Decode(Options{R: r})
	c.Assert(err, qt.IsNil)
	c.Assert(dirs[0].Errors(), qt.HasLen, 0)
	v, ok := dirs[0].Get(uint16(0x1111))
	c.Assert(ok, qt.IsTrue)
	c.Assert(v, qt.Equals, uint32(0x1000))
}

// TestWalkFormatZeroEntryReadInline proves a format-0 entry is read
// inline per §4.2 step 5 (byte count 0 <= 4) rather than having its
// four inline bytes mistaken for an offset pointer into unrelated file
// data, and that an unconsumed format-0 tag surfaces as exactly one
// recorded directory error without disturbing its sibling entries.
func TestWalkFormatZeroEntryReadInline(t *testing.T) {
	c := qt.New(t)
	order := binary.LittleEndian
	entries := []entryDef{
		{tag: 0x2222, format: 0, count: 1, value: u32b(order, 0xdeadbeef)},
		{tag: 0x0100, format: 4, count: 1, value: u32b(order, 42)},
	}
	buf := tiffHeader(order, 8)
	buf = append(buf, buildIFDBytes(order, 8, entries, 0)...)

	r := newReaderAt(buf, order)
	dirs, err := Decode(Options{R: r})
	c.Assert(err, qt.IsNil)
	c.Assert(dirs, qt.HasLen, 1)

	errs := dirs[0].Errors()
	c.Assert(errs, qt.HasLen, 1)
	c.Assert(IsFormatError(errs[0], ErrTiffUnknownFormat), qt.IsTrue)

	v, ok := dirs[0].Get(uint16(0x0100))
	c.Assert(ok, qt.IsTrue)
	c.Assert(v, qt.Equals, uint32(42))
}

func TestWalkDetectsCycle(t *testing.T) {
	c := qt.New(t)
	order := binary.LittleEndian

	// IFD0 at offset 8 whose next-IFD pointer points back at itself.
	ifd0 := buildIFDBytes(order, 8, nil, 0)
	order.PutUint32(ifd0[len(ifd0)-4:], 8)

	buf := tiffHeader(order, 8)
	buf = append(buf, ifd0...)

	r := newReaderAt(buf, order)
	dirs, err := Decode(Options{R: r})
	c.Assert(err, qt.IsNil)
	// The cycle attempt records a second directory carrying the
	// tiff-cycle error rather than looping forever.
	c.Assert(dirs, qt.HasLen, 2)
	c.Assert(dirs[1].Errors(), qt.HasLen, 1)
	c.Assert(IsFormatError(dirs[1].Errors()[0], ErrTiffCycle), qt.IsTrue)
}

func TestShouldVisitSkipsDirectory(t *testing.T) {
	c := qt.New(t)
	order := binary.LittleEndian
	entries := []entryDef{
		{tag: tagGpsInfoOffset, format: 4, count: 1, value: u32b(order, 0)},
	}
	buf := tiffHeader(order, 8)
	buf = append(buf, buildIFDBytes(order, 8, entries, 0)...)

	r := newReaderAt(buf, order)
	dirs, err := Decode(Options{
		R: r,
		ShouldVisit: func(kind DirectoryKind) bool {
			return kind != KindGPS
		},
	})
	c.Assert(err, qt.IsNil)
	c.Assert(dirs, qt.HasLen, 1)
	c.Assert(dirs[0].Kind(), qt.Equals, KindIFD0)
}

func TestWalkRejectsUnknownMarker(t *testing.T) {
	c := qt.New(t)
	order := binary.LittleEndian
	buf := tiffHeader(order, 8)
	order.PutUint16(buf[2:4], 0x1234)

	r := newReaderAt(buf, order)
	_, err := Decode(Options{R: r})
	c.Assert(err, qt.IsNotNil)
	c.Assert(IsFormatError(err, ErrTiffBadMarker), qt.IsTrue)
}

// TestWalkDetectsByteOrderFromMark proves Walk derives its byte order
// from the "II"/"MM" mark at offset 0 rather than trusting whatever
// order the caller's RandomAccessReader happened to be constructed
// with: the reader here is built with the wrong order, and the mark
// in the buffer must override it for the walk to succeed.
func TestWalkDetectsByteOrderFromMark(t *testing.T) {
	c := qt.New(t)
	order := binary.BigEndian
	entries := []entryDef{
		{tag: 0x0100, format: 4, count: 1, value: u32b(order, 1920)},
	}
	buf := tiffHeader(order, 8)
	buf = append(buf, buildIFDBytes(order, 8, entries, 0)...)

	r := newReaderAt(buf, binary.LittleEndian)
	dirs, err := Decode(Options{R: r})
	c.Assert(err, qt.IsNil)
	c.Assert(dirs, qt.HasLen, 1)
	v, ok := dirs[0].Get(uint16(0x0100))
	c.Assert(ok, qt.IsTrue)
	c.Assert(v, qt.Equals, uint32(1920))
}

func TestWalkRejectsUnknownByteOrderMark(t *testing.T) {
	c := qt.New(t)
	order := binary.LittleEndian
	buf := tiffHeader(order, 8)
	copy(buf[0:2], []byte("XX"))

	r := newReaderAt(buf, order)
	_, err := Decode(Options{R: r})
	c.Assert(err, qt.IsNotNil)
	c.Assert(IsFormatError(err, ErrTiffBadByteOrder), qt.IsTrue)
}
