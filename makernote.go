package exifcore

import (
	"encoding/binary"
	"strings"
)

// makernoteRule is the outcome of matching a makernote's probe bytes
// and the camera's Make string against §4.5's recogniser table: either
// "walk an IFD" (kind + where, with optional byte-order override and
// base shift) or "decode a fixed-layout binary blob" (binaryDecoder).
type makernoteRule struct {
	kind          DirectoryKind
	binaryDecoder func(data []byte, order binary.ByteOrder, parent *Directory) *Directory

	// shiftDelta, when non-zero, is applied to the context's base
	// offset before walkOffset is interpreted; walkOffset is then local
	// to that shifted base. When shiftDelta is zero walkOffset is an
	// absolute file offset.
	shiftDelta int64
	walkOffset int64
	byteOrder  binary.ByteOrder // nil = inherit the surrounding IFD's order
}

// processMakernote implements CustomProcessTag's rule 1: dispatch the
// makernote tag's bytes to whichever vendor dialect matches, per the
// recogniser table in §4.5. An unrecognised signature is not an error:
// handled=false lets the walker fall through to generic UNDEFINED
// decoding, storing the makernote as raw bytes.
func (h *ExifHandler) processMakernote(dir *Directory, raw entryValue, ctx readerContext) (bool, error) {
	data := raw.ValueBytes
	makernoteOffset := raw.ResolvedOffset(ctx.ByteOrder())
	probe := probeString(data, 12)
	cameraMake := h.makeString()

	rule, ok := dispatchMakernote(probe, cameraMake, data, makernoteOffset, ctx.r)
	if !ok {
		h.opts.Warnf("exifcore: unrecognised makernote (make=%q, probe=%q)", cameraMake, probe)
		return false, nil
	}

	if !h.opts.ShouldVisit(rule.kind) {
		return true, nil
	}

	if rule.binaryDecoder != nil {
		order := ctx.ByteOrder()
		if rule.byteOrder != nil {
			order = rule.byteOrder
		}
		h.attach(rule.binaryDecoder(data, order, dir))
		return true, nil
	}

	subCtx := ctx
	if rule.byteOrder != nil {
		subCtx = subCtx.WithByteOrder(rule.byteOrder)
	}
	if rule.shiftDelta != 0 {
		subCtx = subCtx.WithBaseOffset(rule.shiftDelta)
	}
	return true, WalkSubIFD(subCtx, rule.walkOffset, rule.kind, dir, h)
}

// makeString returns IFD0's (or the Panasonic RAW IFD0's) Make tag, or
// "" if IFD0 hasn't been walked yet or carries no Make.
func (h *ExifHandler) makeString() string {
	root := h.ifd0()
	if root == nil {
		return ""
	}
	v, ok := root.Get(tagMake)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// probeString renders up to n bytes of data as a string for prefix
// matching, without requiring valid UTF-8.
func probeString(data []byte, n int) string {
	if len(data) < n {
		n = len(data)
	}
	return string(data[:n])
}

// dispatchMakernote walks the recogniser table of §4.5 in order,
// returning the first match. It is written as a sequence of plain
// if-statements rather than a declarative table because the
// per-vendor offset/byte-order/base-shift computations are too
// heterogeneous (Fujifilm reads its own offset out of the makernote;
// NikonType2 has two unrelated match conditions; Ricoh's three makes
// share a prefix but diverge on probe) to fit one generic schema
// without more indirection than it saves.
func dispatchMakernote(probe, cameraMake string, data []byte, makernoteOffset int64, r RandomAccessReader) (makernoteRule, bool) {
	has := func(prefix string) bool { return strings.HasPrefix(probe, prefix) }
	makeHas := func(prefix string) bool { return strings.HasPrefix(cameraMake, prefix) }

	switch {
	case has("OLYMP\x00") || has("EPSON") || has("AGFA"):
		return makernoteRule{kind: KindOlympus, walkOffset: makernoteOffset + 8}, true

	case has("OLYMPUS\x00II"):
		return makernoteRule{kind: KindOlympus, shiftDelta: makernoteOffset, walkOffset: 12}, true

	case makeHas("MINOLTA"):
		return makernoteRule{kind: KindOlympus, walkOffset: makernoteOffset}, true

	case makeHas("NIKON") && has("Nikon") && len(data) > 6 && data[6] == 1:
		return makernoteRule{kind: KindNikonType1, walkOffset: makernoteOffset + 8}, true

	case makeHas("NIKON") && has("Nikon") && len(data) > 6 && data[6] == 2:
		return makernoteRule{kind: KindNikonType2, shiftDelta: makernoteOffset + 10, walkOffset: 8}, true

	case makeHas("NIKON"):
		return makernoteRule{kind: KindNikonType2, walkOffset: makernoteOffset}, true

	case has("SONY CAM") || has("SONY DSC"):
		return makernoteRule{kind: KindSonyType1, walkOffset: makernoteOffset + 12}, true

	case makeHas("SONY") && !(len(data) >= 2 && data[0] == 0x01 && data[1] == 0x00):
		return makernoteRule{kind: KindSonyType1, walkOffset: makernoteOffset}, true

	case has("SEMC MS\x00\x00\x00\x00\x00"):
		return makernoteRule{kind: KindSonyType6, walkOffset: makernoteOffset + 20, byteOrder: binary.BigEndian}, true

	case has("SIGMA\x00\x00\x00") || has("FOVEON\x00\x00"):
		return makernoteRule{kind: KindSigma, walkOffset: makernoteOffset + 10}, true

	case has("KDK"):
		var order binary.ByteOrder = binary.LittleEndian
		if has("KDK INFO") {
			order = binary.BigEndian
		}
		return makernoteRule{kind: KindKodak, binaryDecoder: decodeKodak, byteOrder: order}, true

	case cameraMake == "CANON":
		return makernoteRule{kind: KindCanon, walkOffset: makernoteOffset}, true

	case makeHas("CASIO") && has("QVC\x00\x00\x00"):
		return makernoteRule{kind: KindCasioType2, walkOffset: makernoteOffset + 6}, true

	case makeHas("CASIO"):
		return makernoteRule{kind: KindCasioType1, walkOffset: makernoteOffset}, true

	case has("FUJIFILM") || cameraMake == "FUJIFILM":
		localOffset := int64(0)
		if v, err := ReadI32At(r.WithByteOrder(binary.LittleEndian), makernoteOffset+8); err == nil {
			localOffset = int64(v)
		}
		return makernoteRule{kind: KindFujifilm, shiftDelta: makernoteOffset, walkOffset: localOffset, byteOrder: binary.LittleEndian}, true

	case has("KYOCERA"):
		return makernoteRule{kind: KindKyocera, walkOffset: makernoteOffset + 22}, true

	case has("LEICA\x00") && len(data) >= 8 && isLeicaType5Variant(data[6], data[7]):
		return makernoteRule{kind: KindLeicaType5, shiftDelta: makernoteOffset, walkOffset: 8}, true

	case cameraMake == "Leica Camera AG":
		return makernoteRule{kind: KindLeica, walkOffset: makernoteOffset + 8, byteOrder: binary.LittleEndian}, true

	case cameraMake == "LEICA":
		return makernoteRule{kind: KindPanasonic, walkOffset: makernoteOffset + 8, byteOrder: binary.LittleEndian}, true

	case has("Panasonic\x00\x00\x00"):
		return makernoteRule{kind: KindPanasonic, walkOffset: makernoteOffset + 12}, true

	case has("AOC\x00"):
		return makernoteRule{kind: KindCasioType2, shiftDelta: makernoteOffset, walkOffset: 6}, true

	case makeHas("PENTAX") || makeHas("ASAHI"):
		return makernoteRule{kind: KindPentax, shiftDelta: makernoteOffset, walkOffset: 0}, true

	case has("SANYO\x00\x01\x00"):
		return makernoteRule{kind: KindSanyo, shiftDelta: makernoteOffset, walkOffset: 8}, true

	case makeHas("RICOH") && (has("Rv") || has("Rev")):
		// Textual format Ricoh never documented an IFD layout for;
		// leave the tag as raw undefined bytes.
		return makernoteRule{}, false

	case makeHas("RICOH") && has("RICOH"):
		return makernoteRule{kind: KindRicoh, shiftDelta: makernoteOffset, walkOffset: 8, byteOrder: binary.BigEndian}, true

	case makeHas("RICOH") && has("PENTAX \x00II"):
		return makernoteRule{kind: KindPentaxType2, shiftDelta: makernoteOffset, walkOffset: 10, byteOrder: binary.LittleEndian}, true

	case has("Apple iOS\x00"):
		return makernoteRule{kind: KindApple, shiftDelta: makernoteOffset, walkOffset: 14, byteOrder: binary.BigEndian}, true

	case readsAsReconyxHyperFireVersion(r, makernoteOffset):
		return makernoteRule{kind: KindReconyxHyperFire, binaryDecoder: decodeReconyxHyperFire, byteOrder: binary.BigEndian}, true

	case has("RECONYXUF"):
		return makernoteRule{kind: KindReconyxUltraFire, binaryDecoder: decodeReconyxUltraFire, byteOrder: binary.BigEndian}, true

	case has("RECONYXH2"):
		return makernoteRule{kind: KindReconyxHyperFire2, binaryDecoder: decodeReconyxHyperFire2, byteOrder: binary.BigEndian}, true

	case cameraMake == "SAMSUNG":
		return makernoteRule{kind: KindSamsung, walkOffset: makernoteOffset}, true

	case cameraMake == "DJI":
		return makernoteRule{kind: KindDJI, walkOffset: makernoteOffset}, true

	case cameraMake == "FLIR Systems":
		return makernoteRule{kind: KindFLIR, walkOffset: makernoteOffset}, true

	default:
		return makernoteRule{}, false
	}
}

// isLeicaType5Variant reports whether the two bytes following "LEICA\0"
// match one of the five sub-version markers §4.5 lists for the
// type-5 (IFD-at-offset-8, base-shifted) dialect.
func isLeicaType5Variant(b6, b7 byte) bool {
	if b6 == 0x01 && b7 == 0x00 {
		return true
	}
	for _, lead := range []byte{0x04, 0x05, 0x06, 0x07} {
		if b6 == lead && b7 == 0x00 {
			return true
		}
	}
	return false
}

// readsAsReconyxHyperFireVersion reads the 16-bit big-endian value at
// makernoteOffset (HyperFire makernotes carry no ASCII probe string,
// only this version marker) and reports whether it matches the known
// constant.
func readsAsReconyxHyperFireVersion(r RandomAccessReader, makernoteOffset int64) bool {
	v, err := ReadU16At(r.WithByteOrder(binary.BigEndian), makernoteOffset)
	return err == nil && v == reconyxHyperFireMakerNoteVersion
}
