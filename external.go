package exifcore

// The interfaces in this file are the narrow "external collaborator"
// contracts spec.md §1 and §6 place out of scope for the core: IPTC,
// ICC, Photoshop IRB, XMP and JPEG container parsing are invoked
// through these. The package ships only one implementation of them,
// the minimal DefaultIPTCReader in iptcdefault.go. A nil reader of any of these
// kinds is a valid Options value -- the corresponding embedded bytes
// are simply left as raw UNDEFINED tag data instead of being expanded
// into directories.

// IPTCReader decodes an embedded IPTC-NAA record (the bytes following
// TagIptcNaa, once the 0x1C marker byte has been confirmed) into one or
// more directories.
type IPTCReader interface {
	ReadIPTC(data []byte) ([]*Directory, error)
}

// ICCReader decodes an embedded ICC colour profile (the bytes of
// TagInterColorProfile) into one or more directories.
type ICCReader interface {
	ReadICC(data []byte) ([]*Directory, error)
}

// PhotoshopReader decodes an embedded Photoshop Image Resource Block
// (the bytes of TagPhotoshopSettings) into one or more directories.
type PhotoshopReader interface {
	ReadPhotoshop(data []byte) ([]*Directory, error)
}

// XMPReader decodes an embedded XMP packet (the null-terminated bytes of
// TagApplicationNotes) into one or more directories.
type XMPReader interface {
	ReadXMP(data []byte) ([]*Directory, error)
}

// JPEGReader decodes a complete embedded JPEG image (e.g. Panasonic
// RAW's JpgFromRaw tag) and returns the EXIF/IPTC/XMP directories found
// inside it, recursing through the container layer this core does not
// implement.
type JPEGReader interface {
	ReadJPEG(data []byte) ([]*Directory, error)
}

// attachExternal runs call (an external reader's decode method, already
// bound to its input bytes), re-parenting every returned directory to
// parent and appending them to the handler's directory list in
// discovery-order, the same way a pushed native directory would be. A
// failure is recorded on parent rather than aborting the walk, per
// §7's "errors-are-data" policy.
func attachExternal(h *ExifHandler, parent *Directory, kind string, call func() ([]*Directory, error)) {
	dirs, err := call()
	if err != nil {
		parent.AddError(newFormatErrorf(ErrVendorUnsupported, "%s: %v", kind, err))
		return
	}
	for _, d := range dirs {
		d.parent = parent
		h.all = append(h.all, d)
	}
}
