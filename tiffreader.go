package exifcore

import (
	"encoding/binary"
	"fmt"
	"math"
)

// formatSize returns the size in bytes of one component of the given
// standard TIFF format code, or 0 if the code is not recognised. Format
// codes 0 and 13 are deliberately absent here even though §4.4 assigns
// them byte counts (0 and 4 respectively): those are handler-specific
// custom-format rules, not standard TIFF, and walkEntry asks
// TiffHandler.TryCustomProcessFormat for them before ever consulting
// this table.
func formatSize(format uint16) uint64 {
	switch format {
	case 1, 2, 6, 7: // BYTE, ASCII, SBYTE, UNDEFINED
		return 1
	case 3, 8: // SHORT, SSHORT
		return 2
	case 4, 9, 11: // LONG, SLONG, FLOAT
		return 4
	case 5, 10: // RATIONAL, SRATIONAL
		return 8
	case 12: // DOUBLE
		return 8
	case 16, 17, 18: // LONG8, SLONG8, IFD8 (BigTIFF)
		return 8
	default:
		return 0
	}
}

// Walk reads a TIFF-structured byte-order mark and marker at offset 0
// of r, then walks IFD0 and everything it transitively references,
// driving h at each decision point. It always returns whatever
// directories were produced, even when it also returns an error: a
// truncated follower IFD, for instance, still yields every directory
// walked before the truncation was hit.
func Walk(r RandomAccessReader, h TiffHandler) ([]*Directory, error) {
	mark, err := ReadBytesAt(r, 0, 2)
	if err != nil {
		return nil, newFormatError(ErrIOTruncated, err)
	}
	var order binary.ByteOrder
	switch string(mark) {
	case "II":
		order = binary.LittleEndian
	case "MM":
		order = binary.BigEndian
	default:
		return nil, newFormatErrorf(ErrTiffBadByteOrder, "unrecognised byte-order mark %q", mark)
	}
	r = r.WithByteOrder(order)

	marker, err := ReadU16At(r, 2)
	if err != nil {
		return nil, newFormatError(ErrIOTruncated, err)
	}
	rootKind, isBigTIFF, err := h.ProcessTiffMarker(marker)
	if err != nil {
		return nil, err
	}
	firstOffsetPos := int64(4)
	var firstIFDOffset int64
	if isBigTIFF {
		// BigTIFF header carries an 8-byte offset-size field and a
		// reserved field between the marker and the first IFD offset.
		firstOffsetPos = 8
		v, err := ReadU64At(r, firstOffsetPos)
		if err != nil {
			return nil, newFormatError(ErrIOTruncated, err)
		}
		firstIFDOffset = int64(v)
	} else {
		v, err := ReadU32At(r, firstOffsetPos)
		if err != nil {
			return nil, newFormatError(ErrIOTruncated, err)
		}
		firstIFDOffset = int64(v)
	}

	ctx := newReaderContext(r)
	w := &walker{h: h, isBigTIFF: isBigTIFF}
	err = w.walkIFD(ctx, firstIFDOffset, rootKind, nil)
	dirs := collectDirectories(h)
	if isControlError(err) {
		return dirs, nil
	}
	return dirs, err
}

// collectDirectories extracts the produced directory list from h if it
// embeds a directoryTracker (every concrete handler shipped here does);
// handlers that don't are assumed to track their own output and yield
// none here.
func collectDirectories(h TiffHandler) []*Directory {
	type dirLister interface{ Directories() []*Directory }
	if dl, ok := h.(dirLister); ok {
		return dl.Directories()
	}
	return nil
}

type walker struct {
	h         TiffHandler
	isBigTIFF bool
}

// WalkSubIFD walks a single classic-TIFF-style IFD at offset as a
// self-contained nested structure, used by makernote dispatch (which
// recurses into vendor IFDs the generic TryEnterSubIFD contract doesn't
// see because they arrive already-dereferenced from a CustomProcessTag
// callback, not from the walker's own entry loop). BigTIFF makernotes
// do not exist in the wild, so this always uses 32-bit offsets.
func WalkSubIFD(ctx readerContext, offset int64, kind DirectoryKind, parent *Directory, h TiffHandler) error {
	w := &walker{h: h, isBigTIFF: false}
	return w.walkIFD(ctx, offset, kind, parent)
}

// entrySize returns the on-wire size of one IFD entry: tag(2) +
// format(2) + count(4 or 8) + value/offset(4 or 8).
func (w *walker) entrySize() int64 {
	if w.isBigTIFF {
		return 20
	}
	return 12
}

func (w *walker) countFieldSize() int {
	if w.isBigTIFF {
		return 8
	}
	return 4
}

func (w *walker) offsetFieldSize() int {
	if w.isBigTIFF {
		return 8
	}
	return 4
}

// directoryPopper is implemented by every directoryTracker-embedding
// handler; the walker pops the stack through this optional interface so
// that Directory.Get-style "current directory" lookups inside a
// handler never see a directory whose IFD has already finished.
type directoryPopper interface{ popDirectory() }

func (w *walker) pop() {
	if p, ok := w.h.(directoryPopper); ok {
		p.popDirectory()
	}
}

// walkIFD walks a single IFD at offset, plus everything it recursively
// references (sub-IFDs the handler asks to enter, and its follower
// IFD), pushing every directory it produces through ctx's handler.
func (w *walker) walkIFD(ctx readerContext, offset int64, kind DirectoryKind, parent *Directory) error {
	if !w.h.ShouldVisit(kind) {
		return nil
	}
	if !ctx.Enter(offset) {
		dir := newDirectory(kind, parent)
		w.h.PushDirectory(dir)
		defer w.pop()
		return w.recordOrAbort(dir, newFormatErrorf(ErrTiffCycle, "IFD at offset %d already visited", offset))
	}

	dir := newDirectory(kind, parent)
	w.h.PushDirectory(dir)
	defer w.pop()

	count, err := ReadU16At(ctx.r, offset)
	if err != nil {
		return w.recordOrAbort(dir, newFormatError(ErrIOTruncated, err))
	}

	entriesStart := offset + 2
	for i := uint16(0); i < count; i++ {
		entryOff := entriesStart + int64(i)*w.entrySize()
		if err := w.walkEntry(ctx, dir, entryOff); err != nil {
			if isControlError(err) {
				return err
			}
			if err := w.recordOrAbort(dir, err); err != nil {
				return err
			}
		}
	}

	if err := w.h.EndingIFD(dir, ctx); err != nil {
		if isControlError(err) {
			return err
		}
		if err := w.recordOrAbort(dir, err); err != nil {
			return err
		}
	}

	followerOff := entriesStart + int64(count)*w.entrySize()
	var next int64
	if w.isBigTIFF {
		v, err := ReadU64At(ctx.r, followerOff)
		if err != nil {
			return nil // no follower field readable; not an error, just the end
		}
		next = int64(v)
	} else {
		v, err := ReadU32At(ctx.r, followerOff)
		if err != nil {
			return nil
		}
		next = int64(v)
	}

	if next != 0 {
		if followerKind, ok := w.h.HasFollowerIFD(dir, next); ok {
			return w.walkIFD(ctx, next, followerKind, nil)
		}
	}
	return nil
}

// recordOrAbort routes a walker-detected error through the handler:
// the handler may absorb it (returning nil, recorded on dir) or
// escalate it (returning non-nil, aborting the walk).
func (w *walker) recordOrAbort(dir *Directory, err error) error {
	if cerr := w.h.HandleError(dir, err); cerr != nil {
		return cerr
	}
	dir.AddError(err)
	return nil
}

// walkEntry decodes one IFD entry at entryOff, giving the handler the
// chance to redirect it into a sub-IFD, fully own its processing, or
// own only its format decoding, before falling back to generic
// format-table decoding.
func (w *walker) walkEntry(ctx readerContext, dir *Directory, entryOff int64) error {
	tagID, err := ReadU16At(ctx.r, entryOff)
	if err != nil {
		return newFormatError(ErrIOTruncated, err)
	}
	format, err := ReadU16At(ctx.r, entryOff+2)
	if err != nil {
		return newFormatError(ErrIOTruncated, err)
	}

	var count uint64
	countOff := entryOff + 4
	if w.isBigTIFF {
		v, err := ReadU64At(ctx.r, countOff)
		if err != nil {
			return newFormatError(ErrIOTruncated, err)
		}
		count = v
	} else {
		v, err := ReadU32At(ctx.r, countOff)
		if err != nil {
			return newFormatError(ErrIOTruncated, err)
		}
		count = uint64(v)
	}

	valueOff := countOff + int64(w.countFieldSize())
	inlineCapacity := uint64(w.offsetFieldSize())

	// §4.2 step 4: the handler gets first refusal on the byte count,
	// per §4.4's custom format rule (format 13 is 4 bytes/component;
	// format 0 is byte count 0, entry preserved for later custom
	// handling). Only once it declines does the standard format table
	// apply, and an unrecognised standard format is a directory error
	// recorded right here rather than deferred to generic decoding.
	totalSize, customSized, err := w.h.TryCustomProcessFormat(tagID, format, count)
	if err != nil {
		return err
	}
	if !customSized {
		compSize := formatSize(format)
		if compSize == 0 {
			return newFormatErrorf(ErrTiffUnknownFormat, "format code %d", format)
		}
		totalSize = compSize * count
	}

	raw := entryValue{Format: format, Count: count}
	if totalSize <= inlineCapacity {
		// §4.2 step 5: byte count <= 4 (or 8 for BigTIFF) is inline.
		b, err := ReadBytesAt(ctx.r, valueOff, int(inlineCapacity))
		if err != nil {
			return newFormatError(ErrIOTruncated, err)
		}
		raw.IsInline = true
		if totalSize > 0 {
			b = b[:totalSize]
		}
		raw.ValueBytes = b
	} else {
		off, err := readOffsetField(ctx.r, valueOff, w.offsetFieldSize())
		if err != nil {
			return newFormatError(ErrIOTruncated, err)
		}
		raw.Offset = off
		b, err := ReadBytesAt(ctx.r, off, int(totalSize))
		if err != nil {
			return newFormatError(ErrIOTruncated, err)
		}
		raw.ValueBytes = b
	}

	if subKind, subCtx, ok := w.h.TryEnterSubIFD(dir, tagID, raw, ctx); ok {
		return w.walkIFD(subCtx, raw.ResolvedOffset(ctx.ByteOrder()), subKind, dir)
	}

	if handled, err := w.h.CustomProcessTag(dir, tagID, raw, ctx); err != nil {
		return err
	} else if handled {
		return nil
	}

	value, err := decodeGenericValue(ctx, raw)
	if err != nil {
		return err
	}
	dir.Set(tagID, value)
	return nil
}

func readOffsetField(r RandomAccessReader, off int64, size int) (int64, error) {
	if size == 8 {
		v, err := ReadU64At(r, off)
		return int64(v), err
	}
	v, err := ReadU32At(r, off)
	return int64(v), err
}

// decodeGenericValue interprets raw per the standard TIFF format table.
// A single component decodes to its native Go type; multiple components
// decode to []any, except ASCII/UNDEFINED which stay as string/[]byte.
func decodeGenericValue(ctx readerContext, raw entryValue) (any, error) {
	order := ctx.ByteOrder()
	switch raw.Format {
	case 2: // ASCII
		return trimTrailingNull(raw.ValueBytes), nil
	case 7: // UNDEFINED
		return raw.ValueBytes, nil
	case 0:
		return nil, newFormatErrorf(ErrTiffUnknownFormat, "format code 0")
	}

	n := int(raw.Count)
	if n == 1 {
		return decodeOneComponent(raw.Format, raw.ValueBytes, order)
	}

	compSize := componentSize(raw.Format)
	out := make([]any, 0, n)
	for i := 0; i < n; i++ {
		start := uint64(i) * compSize
		end := start + compSize
		if end > uint64(len(raw.ValueBytes)) {
			return nil, newFormatErrorf(ErrIOTruncated, "component %d out of bounds", i)
		}
		v, err := decodeOneComponent(raw.Format, raw.ValueBytes[start:end], order)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// componentSize is formatSize widened with format 13's custom 4-byte
// per-component size (§4.4): the walker's byte-count decision for
// format 13 comes from ExifHandler.TryCustomProcessFormat, not this
// table, but splitting an already-fetched multi-component value still
// needs to know each component is 4 bytes wide.
func componentSize(format uint16) uint64 {
	if format == 13 {
		return 4
	}
	return formatSize(format)
}

func decodeOneComponent(format uint16, b []byte, order binary.ByteOrder) (any, error) {
	switch format {
	case 1: // BYTE
		return b[0], nil
	case 6: // SBYTE
		return int8(b[0]), nil
	case 3: // SHORT
		return order.Uint16(b), nil
	case 8: // SSHORT
		return int16(order.Uint16(b)), nil
	case 4, 13: // LONG, IFD
		return order.Uint32(b), nil
	case 9: // SLONG
		return int32(order.Uint32(b)), nil
	case 5: // RATIONAL
		return NewRational(order.Uint32(b[0:4]), order.Uint32(b[4:8])), nil
	case 10: // SRATIONAL
		return NewRational(int32(order.Uint32(b[0:4])), int32(order.Uint32(b[4:8]))), nil
	case 11: // FLOAT
		return math.Float32frombits(order.Uint32(b)), nil
	case 12: // DOUBLE
		return math.Float64frombits(order.Uint64(b)), nil
	case 16, 18: // LONG8, IFD8
		return order.Uint64(b), nil
	case 17: // SLONG8
		return int64(order.Uint64(b)), nil
	default:
		return nil, newFormatErrorf(ErrTiffUnknownFormat, "format code %d", format)
	}
}

func trimTrailingNull(b []byte) string {
	for n := len(b); n > 0 && b[n-1] == 0; n-- {
		b = b[:n-1]
	}
	return string(b)
}

// entryValueString renders an entryValue for diagnostic messages.
func entryValueString(tagID uint16, raw entryValue) string {
	return fmt.Sprintf("tag=0x%04x format=%d count=%d inline=%v", tagID, raw.Format, raw.Count, raw.IsInline)
}
