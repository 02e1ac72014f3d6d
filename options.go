package exifcore

import (
	"fmt"
)

// Options configures Decode, mirroring the teacher's Options-for-Decode
// pattern (imagemeta.Options/imagemeta.Decode): one struct with defaults
// applied inside Decode rather than a chain of functional options.
type Options struct {
	// R is the positioned random-access reader Decode reads the TIFF
	// header from. Required.
	R RandomAccessReader

	// Warnf receives non-fatal diagnostics (e.g. an unrecognised
	// makernote signature falling back to raw bytes). Defaults to a
	// no-op.
	Warnf func(format string, args ...any)

	// LimitNumTags caps the total number of tags Decode will process
	// across every directory before aborting the walk early (the
	// directories produced so far are still returned). Guards against
	// pathological or hostile files with enormous entry counts.
	// Defaults to 5000.
	LimitNumTags int

	// LimitTagSize caps the byte size of any single tag's value.
	// Oversized values are recorded as an ErrVendorBadSize error on the
	// owning directory and are not stored. The walker has already read
	// the value's bytes by the time the limit is checked. Defaults to
	// 10_000_000 (10MB), generous enough for an embedded thumbnail.
	LimitTagSize int64

	// ShouldVisit, if set, is consulted before entering any
	// sub-directory (including the root IFD); returning false skips
	// that directory and everything nested under it. Defaults to
	// visiting everything.
	ShouldVisit func(kind DirectoryKind) bool

	// IPTCReader, ICCReader, PhotoshopReader, XMPReader and JPEGReader
	// are the external-format collaborators spec.md places out of
	// scope for the core. A nil reader means that embedded format is
	// skipped (its bytes are still stored as raw UNDEFINED tag data).
	IPTCReader      IPTCReader
	ICCReader       ICCReader
	PhotoshopReader PhotoshopReader
	XMPReader       XMPReader
	JPEGReader      JPEGReader
}

const (
	defaultLimitNumTags  = 5000
	defaultLimitTagSize  = 10_000_000
)

func (o *Options) setDefaults() {
	if o.Warnf == nil {
		o.Warnf = func(string, ...any) {}
	}
	if o.LimitNumTags == 0 {
		o.LimitNumTags = defaultLimitNumTags
	}
	if o.LimitTagSize == 0 {
		o.LimitTagSize = defaultLimitTagSize
	}
	if o.ShouldVisit == nil {
		o.ShouldVisit = func(DirectoryKind) bool { return true }
	}
}

// Decode reads the EXIF/TIFF tag tree starting at opts.R and returns the
// flat, parent-linked directory list. It always returns whatever
// directories were produced even when it also returns an error, per
// spec.md §7's "the top-level walk always returns a directory list"
// contract; a deferred recover turns any internal panic (LimitNumTags
// overflow, an unexpected nil dereference in a vendor decoder) into a
// returned error instead of crashing the caller, mirroring
// imagemeta.Decode's own deferred recover.
func Decode(opts Options) (dirs []*Directory, err error) {
	if opts.R == nil {
		return nil, fmt.Errorf("exifcore: no reader provided")
	}
	opts.setDefaults()

	h := newExifHandler(opts)

	defer func() {
		if r := recover(); r != nil {
			dirs = h.Directories()
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("exifcore: panic during decode: %v", r)
		}
	}()

	dirs, err = Walk(opts.R, h)
	return dirs, err
}
