package exifcore

import "encoding/binary"

// panasonicBlockSpec configures one of Panasonic RAW IFD0's fixed-stride
// binary tags (§4.7): whether its 16-bit items are signed, the run
// length of an unnamed group following a named item, and which item
// indices the block defines a name for. Exact item names/counts have no
// retrieved reference to ground against; the grouping algorithm itself
// (named index followed by another named index collapses to a scalar,
// otherwise consumes arrayLength items as a run) follows §4.7 literally.
type panasonicBlockSpec struct {
	signed      bool
	arrayLength int
	names       map[int]string
}

var panasonicBlockSpecs = map[uint16]panasonicBlockSpec{
	tagPanasonicWbInfo: {
		signed:      false,
		arrayLength: 3,
		names:       map[int]string{0: "WBType1", 4: "WBType2", 8: "WBType3", 12: "WBType4"},
	},
	tagPanasonicWbInfo2: {
		signed:      false,
		arrayLength: 2,
		names:       map[int]string{0: "WBRedLevel", 2: "WBBlueLevel"},
	},
	tagPanasonicDistortionInfo: {
		signed:      true,
		arrayLength: 1,
		names:       map[int]string{0: "DistortionParam02", 1: "DistortionScale", 2: "DistortionCorrection", 3: "DistortionParam09"},
	},
}

// decodePanasonicBlock implements §4.7's grouping algorithm over one of
// WbInfo/WbInfo2/DistortionInfo: a named item followed immediately by
// another named item is a lone scalar; a named item not followed by
// another named item opens a run of arrayLength consecutive items
// stored together.
func (h *ExifHandler) decodePanasonicBlock(dir *Directory, tagID uint16, raw entryValue, ctx readerContext) {
	spec, ok := panasonicBlockSpecs[tagID]
	if !ok {
		dir.AddError(newFormatErrorf(ErrVendorUnsupported, "no block layout for Panasonic tag 0x%04x", tagID))
		return
	}
	order := ctx.ByteOrder()
	data := raw.ValueBytes
	itemCount := len(data) / 2

	out := make([]any, 0, itemCount)
	for i := 0; i < itemCount; i++ {
		if _, named := spec.names[i]; !named {
			continue
		}
		if _, nextNamed := spec.names[i+1]; nextNamed {
			out = append(out, readPanasonicItem(data, order, i, spec.signed))
			continue
		}
		group := make([]any, 0, spec.arrayLength)
		for j := 0; j < spec.arrayLength && i+j < itemCount; j++ {
			group = append(group, readPanasonicItem(data, order, i+j, spec.signed))
		}
		out = append(out, group)
		i += spec.arrayLength - 1
	}
	dir.Set(tagID, out)
}

func readPanasonicItem(data []byte, order binary.ByteOrder, idx int, signed bool) any {
	off := idx * 2
	if off+2 > len(data) {
		return nil
	}
	v := order.Uint16(data[off : off+2])
	if signed {
		return int16(v)
	}
	return v
}
