package exifcore

import "fmt"

// DirectoryKind identifies the flavour of a Directory: which IFD it
// came from, or which vendor makernote dialect decoded it.
type DirectoryKind int

const (
	KindUnknownDirectory DirectoryKind = iota

	// Standard EXIF/TIFF directories.
	KindIFD0
	KindExifSubIFD
	KindInterop
	KindGPS
	KindThumbnail
	KindImage
	KindGeoTIFF
	KindPrintIM
	KindPanasonicRawIFD0
	KindIPTC

	// Vendor makernote directories.
	KindOlympus
	KindOlympusEquipment
	KindOlympusCameraSettings
	KindOlympusRawDevelopment
	KindOlympusRawDevelopment2
	KindOlympusImageProcessing
	KindOlympusFocusInfo
	KindOlympusRawInfo
	KindOlympusMainInfo
	KindNikonType1
	KindNikonType2
	KindCanon
	KindSonyType1
	KindSonyType6
	KindSigma
	KindCasioType1
	KindCasioType2
	KindFujifilm
	KindKyocera
	KindLeica
	KindLeicaType5
	KindPanasonic
	KindPentax
	KindPentaxType2
	KindSanyo
	KindRicoh
	KindSamsung
	KindDJI
	KindFLIR
	KindApple
	KindKodak
	KindReconyxHyperFire
	KindReconyxHyperFire2
	KindReconyxUltraFire
)

var directoryKindNames = map[DirectoryKind]string{
	KindUnknownDirectory:       "UnknownDirectory",
	KindIFD0:                   "IFD0",
	KindExifSubIFD:             "ExifSubIFD",
	KindInterop:                "Interop",
	KindGPS:                    "GPS",
	KindThumbnail:              "Thumbnail",
	KindImage:                  "Image",
	KindGeoTIFF:                "GeoTIFF",
	KindPrintIM:                "PrintIM",
	KindPanasonicRawIFD0:       "PanasonicRawIFD0",
	KindIPTC:                   "IPTC",
	KindOlympus:                "Olympus",
	KindOlympusEquipment:       "OlympusEquipment",
	KindOlympusCameraSettings:  "OlympusCameraSettings",
	KindOlympusRawDevelopment:  "OlympusRawDevelopment",
	KindOlympusRawDevelopment2: "OlympusRawDevelopment2",
	KindOlympusImageProcessing: "OlympusImageProcessing",
	KindOlympusFocusInfo:       "OlympusFocusInfo",
	KindOlympusRawInfo:         "OlympusRawInfo",
	KindOlympusMainInfo:        "OlympusMainInfo",
	KindNikonType1:             "NikonType1",
	KindNikonType2:             "NikonType2",
	KindCanon:                  "Canon",
	KindSonyType1:              "SonyType1",
	KindSonyType6:              "SonyType6",
	KindSigma:                  "Sigma",
	KindCasioType1:             "CasioType1",
	KindCasioType2:             "CasioType2",
	KindFujifilm:               "Fujifilm",
	KindKyocera:                "Kyocera",
	KindLeica:                  "Leica",
	KindLeicaType5:             "LeicaType5",
	KindPanasonic:              "Panasonic",
	KindPentax:                 "Pentax",
	KindPentaxType2:            "PentaxType2",
	KindSanyo:                  "Sanyo",
	KindRicoh:                  "Ricoh",
	KindSamsung:                "Samsung",
	KindDJI:                    "DJI",
	KindFLIR:                   "FLIR",
	KindApple:                  "Apple",
	KindKodak:                  "Kodak",
	KindReconyxHyperFire:       "ReconyxHyperFire",
	KindReconyxHyperFire2:      "ReconyxHyperFire2",
	KindReconyxUltraFire:       "ReconyxUltraFire",
}

// String renders the kind's name, or "DirectoryKind(N)" for an
// out-of-range value.
func (k DirectoryKind) String() string {
	if name, ok := directoryKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("DirectoryKind(%d)", int(k))
}

// Entry is a single tag in a Directory, in insertion order.
type Entry struct {
	TagID uint16
	Name  string
	Value any
}

// Directory is a keyed collection of tag values discovered during a
// single IFD (or vendor binary block) walk, plus an error list and an
// optional weak link to the directory that caused it to be pushed.
type Directory struct {
	kind    DirectoryKind
	parent  *Directory
	order   []uint16
	values  map[uint16]any
	errs    []error
	tagName func(uint16) string
}

// newDirectory creates an empty Directory of the given kind with parent
// as its (possibly nil) weak parent reference.
func newDirectory(kind DirectoryKind, parent *Directory) *Directory {
	return &Directory{
		kind:    kind,
		parent:  parent,
		values:  make(map[uint16]any),
		tagName: tagNameFunc(kind),
	}
}

// Kind returns the directory's flavour.
func (d *Directory) Kind() DirectoryKind { return d.kind }

// Parent returns the directory's parent and whether it has one. The
// reference is a lookup-only weak link: Directory never owns its parent.
func (d *Directory) Parent() (*Directory, bool) {
	return d.parent, d.parent != nil
}

// Set stores v under tagID, replacing any previous value and leaving
// its position in Entries() at the end if it's new, or in its original
// position if it already existed (matching ordered-map replace-in-place
// semantics for the common single-pass decode).
func (d *Directory) Set(tagID uint16, v any) {
	if _, exists := d.values[tagID]; !exists {
		d.order = append(d.order, tagID)
	}
	d.values[tagID] = v
}

// Get returns the value stored under tagID, if any.
func (d *Directory) Get(tagID uint16) (any, bool) {
	v, ok := d.values[tagID]
	return v, ok
}

// Delete removes tagID from the directory, if present.
func (d *Directory) Delete(tagID uint16) {
	if _, ok := d.values[tagID]; !ok {
		return
	}
	delete(d.values, tagID)
	for i, id := range d.order {
		if id == tagID {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Entries returns the directory's tags in insertion order.
func (d *Directory) Entries() []Entry {
	out := make([]Entry, len(d.order))
	for i, id := range d.order {
		out[i] = Entry{TagID: id, Name: d.TagName(id), Value: d.values[id]}
	}
	return out
}

// Len returns the number of tags currently stored.
func (d *Directory) Len() int { return len(d.order) }

// TagName returns the human-readable name for tagID within this
// directory's tag space, or a synthetic "UnknownTag_0xXXXX" name.
func (d *Directory) TagName(tagID uint16) string {
	if d.tagName != nil {
		if name := d.tagName(tagID); name != "" {
			return name
		}
	}
	return fmt.Sprintf("UnknownTag_0x%04x", tagID)
}

// AddError appends an error to the directory's error list. Errors are
// never discarded and never thrown past the enclosing IFD boundary.
func (d *Directory) AddError(err error) {
	if err == nil {
		return
	}
	d.errs = append(d.errs, err)
}

// Errors returns the directory's recorded errors, in detection order.
func (d *Directory) Errors() []error {
	return d.errs
}

func (d *Directory) String() string {
	return fmt.Sprintf("%s{entries=%d, errors=%d}", d.kind, len(d.order), len(d.errs))
}
