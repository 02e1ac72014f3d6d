package exifcore

import "encoding/binary"

// TiffHandler is the set of callbacks the TIFF walker (tiffreader.go)
// invokes as it discovers structure. A handler drives all
// format-specific behaviour -- which markers are acceptable, which
// tags point at sub-IFDs, which tags need custom decoding -- while the
// walker itself only knows the generic IFD/entry mechanics.
//
// Implementations are not required to be safe for concurrent use.
type TiffHandler interface {
	// ProcessTiffMarker validates the two-byte marker following the
	// byte-order mark (e.g. 0x002A for classic TIFF) and reports the
	// DirectoryKind of the root IFD and whether the marker calls for
	// BigTIFF offset widths, or an error if the marker is unrecognised.
	ProcessTiffMarker(marker uint16) (rootKind DirectoryKind, isBigTIFF bool, err error)

	// TryEnterSubIFD reports whether tagID's value should be followed
	// as an offset into a nested IFD (e.g. ExifIFD, GPSIFD, InteropIFD)
	// rather than stored as a plain value, and if so which
	// DirectoryKind and readerContext to walk it with.
	TryEnterSubIFD(dir *Directory, tagID uint16, raw entryValue, ctx readerContext) (kind DirectoryKind, subCtx readerContext, ok bool)

	// HasFollowerIFD reports whether nextOffset (read from the four (or
	// eight, for BigTIFF) bytes following an IFD's entries) should be
	// followed as another top-level IFD (thumbnail, additional page),
	// and if so which DirectoryKind to give it (EXIF Thumbnail after
	// IFD0, EXIF Image for later pages).
	HasFollowerIFD(dir *Directory, nextOffset int64) (kind DirectoryKind, ok bool)

	// CustomProcessTag gives the handler first refusal on tagID before
	// generic format-driven decoding runs. handled=true means the
	// handler fully processed (or deliberately skipped) the tag and the
	// walker should not decode it generically.
	CustomProcessTag(dir *Directory, tagID uint16, raw entryValue, ctx readerContext) (handled bool, err error)

	// TryCustomProcessFormat gives the handler a chance to declare the
	// total byte count for an entry's format code itself, before the
	// walker ever decides whether the value is inline or an offset
	// pointer (§4.2 step 4) and before it consults the standard format
	// table. handled=false lets the walker fall back to the standard
	// table, treating a format the table doesn't recognise as a
	// directory error. tagID, format and count are the entry's raw
	// header fields, read straight off the wire -- no value bytes have
	// been fetched yet at this point.
	TryCustomProcessFormat(tagID uint16, format uint16, count uint64) (byteCount uint64, handled bool, err error)

	// EndingIFD is invoked after all of an IFD's entries have been
	// processed, before the walker moves to the follower-IFD offset.
	// This is where a handler triggers dependent decoding that needs
	// the full directory populated first (e.g. GeoTIFF key unpacking).
	EndingIFD(dir *Directory, ctx readerContext) error

	// PushDirectory is invoked when the walker begins a new IFD (top
	// level or nested), giving the handler a chance to track a
	// directory stack or the accumulated directory list.
	PushDirectory(dir *Directory)

	// ShouldVisit is consulted by the walker before it reads a single
	// byte of kind's IFD -- the root IFD, a sub-IFD reached via
	// TryEnterSubIFD, a follower IFD, or a makernote IFD dispatched
	// through WalkSubIFD. Returning false skips that directory and
	// everything nested under it entirely: no directory is produced and
	// no error is recorded.
	ShouldVisit(kind DirectoryKind) bool

	// HandleError is invoked for an error the walker itself detects
	// (truncated read, bad offset, cycle) that dir did not itself
	// record. Returning a non-nil error aborts the walk; returning nil
	// tells the walker to record it on dir and continue with dir's
	// siblings.
	HandleError(dir *Directory, err error) error
}

// entryValue is the raw, not-yet-interpreted content of a directory
// entry as the walker read it off the wire: the four (or eight, for
// BigTIFF) value/offset bytes, the declared format code, and the
// declared component count. Handlers use this to decide how to
// interpret a tag before the walker's generic format decoding runs.
type entryValue struct {
	Format     uint16
	Count      uint64
	ValueBytes []byte
	IsInline   bool
	Offset     int64
}

// ResolvedOffset returns the numeric value a pointer-style tag carries,
// regardless of whether it was stored inline (a LONG or SHORT component
// that fits in the entry's value field) or out-of-line (the walker
// already dereferenced the 4/8-byte offset field for us). Most IFD and
// makernote pointer tags are a single LONG, which is exactly 4 bytes and
// therefore always "inline" by the byte-count-<=4 rule -- the inline
// bytes ARE the target offset, not a pointer to one.
func (e entryValue) ResolvedOffset(order binary.ByteOrder) int64 {
	if !e.IsInline {
		return e.Offset
	}
	switch len(e.ValueBytes) {
	case 8:
		return int64(order.Uint64(e.ValueBytes))
	case 4:
		return int64(order.Uint32(e.ValueBytes))
	case 2:
		return int64(order.Uint16(e.ValueBytes))
	case 1:
		return int64(e.ValueBytes[0])
	default:
		return 0
	}
}
