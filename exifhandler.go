package exifcore

import "bytes"

// ExifHandler is the concrete TiffHandler that drives EXIF/TIFF
// extraction: marker dispatch, sub-IFD promotion, embedded-format
// dispatch, GeoTIFF unpacking and makernote recognition. It embeds
// directoryTracker for the shared directory-stack/output-list
// bookkeeping every handler needs.
type ExifHandler struct {
	directoryTracker

	opts     Options
	tagCount int
}

// newExifHandler builds the handler Decode drives the walk with. opts
// is assumed to already have its defaults applied.
func newExifHandler(opts Options) *ExifHandler {
	return &ExifHandler{opts: opts}
}

// ProcessTiffMarker implements TiffHandler per the marker table: 0x002A
// is classic TIFF, 0x002B is BigTIFF, the two Olympus ORF markers are
// classic-TIFF-shaped, and 0x0055 roots a Panasonic RAW file instead of
// an ordinary EXIF IFD0.
func (h *ExifHandler) ProcessTiffMarker(marker uint16) (DirectoryKind, bool, error) {
	switch marker {
	case 0x002A:
		return KindIFD0, false, nil
	case 0x002B:
		return KindIFD0, true, nil
	case 0x4F52, 0x5352:
		return KindIFD0, false, nil
	case 0x0055:
		return KindPanasonicRawIFD0, false, nil
	default:
		return KindUnknownDirectory, false, newFormatErrorf(ErrTiffBadMarker, "unrecognised TIFF marker 0x%04x", marker)
	}
}

// TryEnterSubIFD implements the sub-IFD promotion rules of §4.4: most of
// these are plain IFD-pointer tags the walker can recurse into on its
// own; the walk of the target IFD happens through the normal
// walker.walkIFD path, so there is no separate push/pop bookkeeping
// here beyond choosing the right DirectoryKind.
func (h *ExifHandler) TryEnterSubIFD(dir *Directory, tagID uint16, raw entryValue, ctx readerContext) (DirectoryKind, readerContext, bool) {
	if tagID == tagSubIFDOffset {
		return KindExifSubIFD, ctx, true
	}
	switch dir.Kind() {
	case KindIFD0, KindPanasonicRawIFD0:
		switch tagID {
		case tagExifSubIFDOffset:
			return KindExifSubIFD, ctx, true
		case tagGpsInfoOffset:
			return KindGPS, ctx, true
		}
	case KindExifSubIFD:
		if tagID == tagInteropOffset {
			return KindInterop, ctx, true
		}
	case KindOlympus:
		if kind, ok := olympusSubIFDKinds[tagID]; ok {
			return kind, ctx, true
		}
	}
	return KindUnknownDirectory, ctx, false
}

// HasFollowerIFD implements the follower-IFD rule: IFD0 (or a Panasonic
// RAW IFD0) is followed by the thumbnail IFD, and the thumbnail and any
// subsequent page are followed by further EXIF Image directories
// (multi-page TIFF). Nested directories reached through a pointer tag
// (SubIFD, GPS, Interop, any makernote IFD) never have a meaningful
// follower of their own, even though their raw bytes carry a next-IFD
// field structurally -- walking it would risk treating unrelated
// trailing bytes as a bogus IFD.
func (h *ExifHandler) HasFollowerIFD(dir *Directory, nextOffset int64) (DirectoryKind, bool) {
	switch dir.Kind() {
	case KindIFD0, KindPanasonicRawIFD0:
		return KindThumbnail, true
	case KindThumbnail, KindImage:
		return KindImage, true
	default:
		return KindUnknownDirectory, false
	}
}

// CustomProcessTag implements the ordered custom-tag rules of §4.4.
func (h *ExifHandler) CustomProcessTag(dir *Directory, tagID uint16, raw entryValue, ctx readerContext) (bool, error) {
	h.tagCount++
	if h.tagCount > h.opts.LimitNumTags {
		panic(newFormatErrorf(ErrVendorBadSize, "exceeded tag limit of %d", h.opts.LimitNumTags))
	}
	if int64(len(raw.ValueBytes)) > h.opts.LimitTagSize {
		dir.AddError(newFormatErrorf(ErrVendorBadSize, "tag 0x%04x (%d bytes) exceeds size limit %d", tagID, len(raw.ValueBytes), h.opts.LimitTagSize))
		return true, nil
	}

	switch {
	case dir.Kind() == KindExifSubIFD && tagID == tagMakernote:
		return h.processMakernote(dir, raw, ctx)

	case dir.Kind() == KindIFD0 && tagID == tagIptcNaa:
		if len(raw.ValueBytes) > 0 && raw.ValueBytes[0] == 0x1C && h.opts.IPTCReader != nil {
			attachExternal(h, dir, "iptc", func() ([]*Directory, error) {
				return h.opts.IPTCReader.ReadIPTC(raw.ValueBytes)
			})
			return true, nil
		}

	case tagID == tagInterColorProfile:
		if h.opts.ICCReader != nil {
			attachExternal(h, dir, "icc", func() ([]*Directory, error) {
				return h.opts.ICCReader.ReadICC(raw.ValueBytes)
			})
			return true, nil
		}

	case dir.Kind() == KindIFD0 && tagID == tagPhotoshopSettings:
		if h.opts.PhotoshopReader != nil {
			attachExternal(h, dir, "photoshop", func() ([]*Directory, error) {
				return h.opts.PhotoshopReader.ReadPhotoshop(raw.ValueBytes)
			})
			return true, nil
		}

	case (dir.Kind() == KindIFD0 || dir.Kind() == KindExifSubIFD) && tagID == tagApplicationNotes:
		if h.opts.XMPReader != nil {
			xmpBytes := raw.ValueBytes
			if i := bytes.IndexByte(xmpBytes, 0); i >= 0 {
				xmpBytes = xmpBytes[:i]
			}
			attachExternal(h, dir, "xmp", func() ([]*Directory, error) {
				return h.opts.XMPReader.ReadXMP(xmpBytes)
			})
			return true, nil
		}

	case tagID == tagPrintImageMatchingInfo || (tagID == tagPrintIMVendorTag && printIMVendorDirs[dir.Kind()]):
		h.attach(decodePrintIM(raw.ValueBytes, ctx.ByteOrder(), dir))
		return true, nil

	case dir.Kind() == KindPanasonicRawIFD0 && (tagID == tagPanasonicWbInfo || tagID == tagPanasonicWbInfo2 || tagID == tagPanasonicDistortionInfo):
		h.decodePanasonicBlock(dir, tagID, raw, ctx)
		return true, nil

	case dir.Kind() == KindPanasonicRawIFD0 && tagID == tagPanasonicJpgFromRaw:
		if h.opts.JPEGReader != nil {
			attachExternal(h, dir, "jpeg", func() ([]*Directory, error) {
				return h.opts.JPEGReader.ReadJPEG(raw.ValueBytes)
			})
			return true, nil
		}
	}

	return false, nil
}

// TryCustomProcessFormat implements §4.4's custom format rule: format
// code 13 is a 32-bit-per-component undefined-custom some makernote
// pointer tags use, so it gets 4 bytes/component exactly like LONG;
// format code 0 gets byte count 0 so the entry is read inline (per
// §4.2 step 5) and preserved for CustomProcessTag rather than being
// flagged as an unrecognised standard format. Every other format code
// is left to the standard table in tiffreader.go's formatSize.
func (h *ExifHandler) TryCustomProcessFormat(tagID uint16, format uint16, count uint64) (uint64, bool, error) {
	switch format {
	case 13:
		return 4 * count, true, nil
	case 0:
		return 0, true, nil
	default:
		return 0, false, nil
	}
}

// EndingIFD triggers GeoTIFF unpacking once IFD0 has been fully read.
func (h *ExifHandler) EndingIFD(dir *Directory, ctx readerContext) error {
	if dir.Kind() != KindIFD0 {
		return nil
	}
	v, ok := dir.Get(tagGeoTiffGeoKeys)
	if !ok {
		return nil
	}
	keys, ok := asUint16Slice(v)
	if !ok {
		dir.AddError(newFormatErrorf(ErrVendorUnsupported, "GeoKeyDirectory tag has unexpected shape %T", v))
		return nil
	}
	gtd, err := unpackGeoTIFF(dir, keys)
	if err != nil {
		dir.AddError(err)
		return nil
	}
	h.attach(gtd)
	return nil
}

// ShouldVisit implements TiffHandler by deferring to the caller's
// Options.ShouldVisit filter (defaulted to "visit everything" by
// Options.setDefaults).
func (h *ExifHandler) ShouldVisit(kind DirectoryKind) bool {
	return h.opts.ShouldVisit(kind)
}

// HandleError lets every walker-detected error be recorded on the
// directory that raised it rather than aborting the walk; §7's
// "the top-level walk always returns a directory list" contract relies
// on this returning nil for everything short of a hard structural
// failure, which this core never raises from here.
func (h *ExifHandler) HandleError(dir *Directory, err error) error {
	return nil
}
