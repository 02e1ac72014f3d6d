package exifcore

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func buildIPTCDataset(record, dataset byte, value []byte) []byte {
	out := []byte{0x1c, record, dataset}
	out = append(out, byte(len(value)>>8), byte(len(value)))
	return append(out, value...)
}

func TestDefaultIPTCReaderDecodesISO8859_1(t *testing.T) {
	c := qt.New(t)
	var data []byte
	data = append(data, buildIPTCDataset(iptcCodedCharacterSetRecord, iptcCodedCharacterSetDataset, []byte{0x1b, 0x2e, 0x41})...)
	data = append(data, buildIPTCDataset(2, 120, []byte{0xE9})...) // Caption: "é" in Latin-1

	dirs, err := (DefaultIPTCReader{}).ReadIPTC(data)
	c.Assert(err, qt.IsNil)
	c.Assert(dirs, qt.HasLen, 1)

	v, ok := dirs[0].Get(uint16(2)<<8 | 120)
	c.Assert(ok, qt.IsTrue)
	c.Assert(v, qt.Equals, "é")
}

func TestDefaultIPTCReaderDefaultsToUTF8(t *testing.T) {
	c := qt.New(t)
	data := buildIPTCDataset(2, 5, []byte("object name"))

	dirs, err := (DefaultIPTCReader{}).ReadIPTC(data)
	c.Assert(err, qt.IsNil)
	v, ok := dirs[0].Get(uint16(2)<<8 | 5)
	c.Assert(ok, qt.IsTrue)
	c.Assert(v, qt.Equals, "object name")
}

func TestDefaultIPTCReaderOversizedDatasetRecordsError(t *testing.T) {
	c := qt.New(t)
	data := []byte{0x1c, 2, 5, 0x00, 0x10} // declares 16 bytes, none follow

	dirs, err := (DefaultIPTCReader{}).ReadIPTC(data)
	c.Assert(err, qt.IsNil)
	c.Assert(dirs, qt.HasLen, 1)
	c.Assert(dirs[0].Errors(), qt.HasLen, 1)
	c.Assert(IsFormatError(dirs[0].Errors()[0], ErrVendorBadSize), qt.IsTrue)
}

func TestResolveIPTCCharset(t *testing.T) {
	c := qt.New(t)
	c.Assert(resolveIPTCCharset([]byte{0x1b, 0x25, 0x47}), qt.Equals, "UTF-8")
	c.Assert(resolveIPTCCharset([]byte{0x1b, 0x2e, 0x41}), qt.Equals, "ISO-8859-1")
	c.Assert(resolveIPTCCharset([]byte{0x1b, 0x2d, 0x41}), qt.Equals, "ISO-8859-1")
	c.Assert(resolveIPTCCharset([]byte{0xAB, 0xCD}), qt.Equals, "UTF-8")
}
