package exifcore

import (
	"bytes"
	"encoding/binary"
)

var printIMSignature = []byte("PrintIM")

// decodePrintIM decodes a PrintIM block per §4.6: a "PrintIM" signature,
// a version string, and a small table of (tag, u32 value) entries whose
// count sometimes needs the opposite byte order from the one the
// surrounding IFD used to read it.
func decodePrintIM(data []byte, order binary.ByteOrder, parent *Directory) *Directory {
	dir := newDirectory(KindPrintIM, parent)
	if len(data) < 16 || !bytes.HasPrefix(data, printIMSignature) {
		dir.AddError(newFormatErrorf(ErrVendorBadHeader, "not a PrintIM block (len=%d)", len(data)))
		return dir
	}
	dir.Set(0x0000, string(bytes.TrimRight(data[8:12], "\x00")))

	entries := order.Uint16(data[14:16])
	if 16+int(entries)*6 > len(data) {
		flipped := flipByteOrder(order)
		if e2 := flipped.Uint16(data[14:16]); 16+int(e2)*6 <= len(data) {
			order = flipped
			entries = e2
		} else {
			dir.AddError(newFormatErrorf(ErrVendorBadSize, "PrintIM entry count %d exceeds block size %d in either byte order", entries, len(data)))
			return dir
		}
	}

	for i := 0; i < int(entries); i++ {
		base := 16 + i*6
		if base+6 > len(data) {
			dir.AddError(newFormatErrorf(ErrVendorBadSize, "PrintIM entry %d truncated", i))
			break
		}
		tag := order.Uint16(data[base : base+2])
		val := order.Uint32(data[base+2 : base+6])
		dir.Set(tag, val)
	}
	return dir
}

func flipByteOrder(order binary.ByteOrder) binary.ByteOrder {
	if order == binary.BigEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}
