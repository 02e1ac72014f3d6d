package exifcore

import (
	"bytes"
	"encoding/binary"
	"testing"

	qt "github.com/frankban/quicktest"
)

// buildMakernoteLayout wires IFD0 -> ExifSubIFD -> Makernote, where the
// makernote's raw bytes are supplied verbatim by the caller (already
// shaped the way a given vendor dialect expects).
func buildMakernoteLayout(order binary.ByteOrder, makernoteData []byte) []byte {
	ifd0Size := 2 + 1*12 + 4
	exifOffset := 8 + ifd0Size

	ifd0Entries := []entryDef{
		{tag: tagExifSubIFDOffset, format: 4, count: 1, value: u32b(order, uint32(exifOffset))},
	}
	exifEntries := []entryDef{
		{tag: tagMakernote, format: 7, count: uint32(len(makernoteData)), value: makernoteData},
	}

	buf := tiffHeader(order, 8)
	buf = append(buf, buildIFDBytes(order, 8, ifd0Entries, 0)...)
	buf = append(buf, buildIFDBytes(order, exifOffset, exifEntries, 0)...)
	return buf
}

func TestOlympusMakernoteDispatch(t *testing.T) {
	c := qt.New(t)
	order := binary.LittleEndian

	// The Olympus IFD itself is walked 8 bytes into the makernote block;
	// its absolute file offset depends on where the block ends up, so
	// that offset is computed from the fixed IFD0/ExifSubIFD sizes that
	// buildMakernoteLayout lays out ahead of it.
	ifd0Size := 2 + 1*12 + 4
	exifOffset := 8 + ifd0Size
	exifSize := 2 + 1*12 + 4
	makernoteOffset := exifOffset + exifSize
	olyOffset := makernoteOffset + 8

	olyEntries := []entryDef{
		{tag: 0x0201, format: 3, count: 1, value: u16b(order, 5)},
	}
	olyBytes := buildIFDBytes(order, olyOffset, olyEntries, 0)

	makernoteData := append([]byte("OLYMP\x00\x00\x00"), olyBytes...)

	buf := buildMakernoteLayout(order, makernoteData)
	r := newReaderAt(buf, order)
	dirs, err := Decode(Options{R: r})
	c.Assert(err, qt.IsNil)

	var oly *Directory
	for _, d := range dirs {
		if d.Kind() == KindOlympus {
			oly = d
		}
	}
	c.Assert(oly, qt.IsNotNil)
	v, ok := oly.Get(0x0201)
	c.Assert(ok, qt.IsTrue)
	c.Assert(v, qt.Equals, uint16(5))
}

// TestLeicaType5DispatchDoesNotCollideWithIFD0Offset exercises a
// shiftDelta!=0 dispatch rule (LeicaType5: shiftDelta=makernoteOffset,
// walkOffset=8) in a layout where that local walkOffset equals IFD0's
// own absolute offset (8, as in minimalTIFF). Before cycle keys were
// made absolute, this collided with IFD0's already-visited offset 8
// and the makernote IFD was spuriously rejected as a cycle instead of
// being walked.
func TestLeicaType5DispatchDoesNotCollideWithIFD0Offset(t *testing.T) {
	c := qt.New(t)
	order := binary.LittleEndian

	ifd0Size := 2 + 1*12 + 4
	exifOffset := 8 + ifd0Size
	exifSize := 2 + 1*12 + 4
	makernoteOffset := exifOffset + exifSize
	leicaIFDOffset := makernoteOffset + 8

	leicaEntries := []entryDef{
		{tag: 0x0300, format: 3, count: 1, value: u16b(order, 7)},
	}
	leicaBytes := buildIFDBytes(order, leicaIFDOffset, leicaEntries, 0)

	// "LEICA\0" probe followed by the 0x01,0x00 sub-version marker
	// isLeicaType5Variant recognises, then the sub-IFD at local offset
	// 8 once the context is shifted to makernoteOffset.
	makernoteData := append([]byte("LEICA\x00\x01\x00"), leicaBytes...)

	buf := buildMakernoteLayout(order, makernoteData)
	r := newReaderAt(buf, order)
	dirs, err := Decode(Options{R: r})
	c.Assert(err, qt.IsNil)

	var leica *Directory
	for _, d := range dirs {
		if d.Kind() == KindLeicaType5 {
			leica = d
		}
	}
	c.Assert(leica, qt.IsNotNil)
	c.Assert(leica.Errors(), qt.HasLen, 0)
	v, ok := leica.Get(0x0300)
	c.Assert(ok, qt.IsTrue)
	c.Assert(v, qt.Equals, uint16(7))
}

func TestReconyxUltraFireBadHeaderRecorded(t *testing.T) {
	c := qt.New(t)
	order := binary.LittleEndian

	data := make([]byte, 91)
	copy(data, []byte("RECONYXUF"))
	// Leave the ID fields at offsets 9 and 13 zeroed so they mismatch
	// the required constants, but seed a valid date/time at offset 27
	// (big-endian, per decodeReconyxUltraFire) so reconyxDateTime
	// doesn't also fire: this test wants exactly the header-mismatch
	// error, not a second, unrelated one.
	binary.BigEndian.PutUint16(data[27:29], 2020)  // year
	binary.BigEndian.PutUint16(data[29:31], 6)     // month
	binary.BigEndian.PutUint16(data[31:33], 15)    // day
	binary.BigEndian.PutUint16(data[33:35], 12)    // hour
	binary.BigEndian.PutUint16(data[35:37], 30)    // minute
	binary.BigEndian.PutUint16(data[37:39], 0)     // second

	buf := buildMakernoteLayout(order, data)
	r := newReaderAt(buf, order)
	dirs, err := Decode(Options{R: r})
	c.Assert(err, qt.IsNil)

	var uf *Directory
	for _, d := range dirs {
		if d.Kind() == KindReconyxUltraFire {
			uf = d
		}
	}
	c.Assert(uf, qt.IsNotNil)
	c.Assert(uf.Errors(), qt.HasLen, 1)
	c.Assert(IsFormatError(uf.Errors()[0], ErrVendorBadHeader), qt.IsTrue)
}

func TestReconyxHyperFireDispatchByVersionMarker(t *testing.T) {
	c := qt.New(t)
	order := binary.LittleEndian

	data := make([]byte, 46)
	binary.BigEndian.PutUint16(data[0:2], reconyxHyperFireMakerNoteVersion)
	// firmware major/minor/revision
	binary.BigEndian.PutUint16(data[2:4], 1)
	binary.BigEndian.PutUint16(data[4:6], 8)
	binary.BigEndian.PutUint16(data[6:8], 0)
	binary.BigEndian.PutUint16(data[8:10], 0x2024)
	binary.BigEndian.PutUint16(data[10:12], 0x0101)
	binary.BigEndian.PutUint16(data[12:14], 1) // trigger mode
	binary.BigEndian.PutUint16(data[14:16], 2) // sequence
	binary.BigEndian.PutUint32(data[16:20], 7) // event number
	// valid datetime: 2024-01-01 00:00:00
	binary.BigEndian.PutUint16(data[20:22], 2024)
	binary.BigEndian.PutUint16(data[22:24], 1)
	binary.BigEndian.PutUint16(data[24:26], 1)
	binary.BigEndian.PutUint16(data[26:28], 0)
	binary.BigEndian.PutUint16(data[28:30], 0)
	binary.BigEndian.PutUint16(data[30:32], 0)
	binary.BigEndian.PutUint16(data[32:34], 3) // moon phase
	binary.BigEndian.PutUint16(data[34:36], 72)
	binary.BigEndian.PutUint16(data[36:38], 22)
	copy(data[38:46], []byte("SN1234\x00\x00"))

	buf := buildMakernoteLayout(order, data)
	r := newReaderAt(buf, order)
	dirs, err := Decode(Options{R: r})
	c.Assert(err, qt.IsNil)

	var hf *Directory
	for _, d := range dirs {
		if d.Kind() == KindReconyxHyperFire {
			hf = d
		}
	}
	c.Assert(hf, qt.IsNotNil)
	c.Assert(hf.Errors(), qt.HasLen, 0)

	v, ok := hf.Get(uint16(tagReconyxEventNumber))
	c.Assert(ok, qt.IsTrue)
	c.Assert(v, qt.Equals, uint32(7))

	dtVal, ok := hf.Get(uint16(tagReconyxDateTimeOriginal))
	c.Assert(ok, qt.IsTrue)
	dt, ok := dtVal.(DateTime)
	c.Assert(ok, qt.IsTrue)
	c.Assert(dt.Valid, qt.IsTrue)
}

func TestUnrecognisedMakernoteFallsBackToRawBytes(t *testing.T) {
	c := qt.New(t)
	order := binary.LittleEndian

	data := bytes.Repeat([]byte{0xAB}, 20)
	buf := buildMakernoteLayout(order, data)
	r := newReaderAt(buf, order)

	var warned bool
	dirs, err := Decode(Options{R: r, Warnf: func(string, ...any) { warned = true }})
	c.Assert(err, qt.IsNil)
	c.Assert(warned, qt.IsTrue)

	var exifDir *Directory
	for _, d := range dirs {
		if d.Kind() == KindExifSubIFD {
			exifDir = d
		}
	}
	c.Assert(exifDir, qt.IsNotNil)
	v, ok := exifDir.Get(tagMakernote)
	c.Assert(ok, qt.IsTrue)
	c.Assert(v, qt.DeepEquals, data)
}
