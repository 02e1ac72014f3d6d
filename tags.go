package exifcore

// Tag IDs the EXIF handler and makernote dispatcher need to recognise by
// name rather than by looking them up in a tag-name table, grounded on
// the same constant style as the teacher's fieldsexif.go.
const (
	tagMake  = 0x010f
	tagModel = 0x0110

	tagSubIFDOffset     = 0x014a
	tagApplicationNotes = 0x02bc

	tagExifSubIFDOffset        = 0x8769
	tagGpsInfoOffset           = 0x8825
	tagIptcNaa                 = 0x83bb
	tagPhotoshopSettings       = 0x8649
	tagInterColorProfile       = 0x8773
	tagGeoTiffGeoKeys          = 0x87af
	tagGeoTiffDoubleParams     = 0x87b0
	tagGeoTiffASCIIParams      = 0x87b1
	tagPrintImageMatchingInfo  = 0xc4a5

	tagMakernote  = 0x927c
	tagInteropOffset = 0xa005

	tagPrintIMVendorTag = 0x0e00

	tagPanasonicWbInfo        = 0x002d
	tagPanasonicWbInfo2       = 0x0d0d
	tagPanasonicDistortionInfo = 0x0e00
	tagPanasonicJpgFromRaw    = 0x2000

	tagOlympusEquipment           = 0x2010
	tagOlympusCameraSettings      = 0x2020
	tagOlympusRawDevelopment      = 0x2030
	tagOlympusRawDevelopment2     = 0x2031
	tagOlympusImageProcessing     = 0x2040
	tagOlympusFocusInfo           = 0x2050
	tagOlympusRawInfo             = 0x3000
	tagOlympusMainInfo            = 0x4000
)

// olympusSubIFDKinds maps an Olympus makernote sub-tag to the
// DirectoryKind its nested IFD should be pushed as.
var olympusSubIFDKinds = map[uint16]DirectoryKind{
	tagOlympusEquipment:       KindOlympusEquipment,
	tagOlympusCameraSettings:  KindOlympusCameraSettings,
	tagOlympusRawDevelopment:  KindOlympusRawDevelopment,
	tagOlympusRawDevelopment2: KindOlympusRawDevelopment2,
	tagOlympusImageProcessing: KindOlympusImageProcessing,
	tagOlympusFocusInfo:       KindOlympusFocusInfo,
	tagOlympusRawInfo:         KindOlympusRawInfo,
	tagOlympusMainInfo:        KindOlympusMainInfo,
}

// printIMVendorDirs is the whitelist of makernote directory kinds that
// also carry an inline PrintIM block at vendor tag 0x0E00 (distinct from
// the PanasonicRawIFD0's use of the same tag ID for DistortionInfo).
var printIMVendorDirs = map[DirectoryKind]bool{
	KindCanon:      true,
	KindOlympus:    true,
	KindCasioType1: true,
	KindCasioType2: true,
	KindKodak:      true,
	KindPanasonic:  true,
}

// Reconyx tag IDs, shared by all three Reconyx binary dialects
// (reconyxTagNames in tagnames.go covers the overlapping subset).
const (
	tagReconyxMakerNoteVersion = 0x0000
	tagReconyxFirmwareVersion  = 0x0001
	tagReconyxFirmwareDate     = 0x0002
	tagReconyxTriggerMode      = 0x0003
	tagReconyxSequence         = 0x0004
	tagReconyxEventNumber      = 0x0005
	tagReconyxDateTimeOriginal = 0x0006
	tagReconyxMoonPhase        = 0x000a
	tagReconyxAmbientTempF     = 0x000b
	tagReconyxAmbientTempC     = 0x000c
	tagReconyxSerialNumber     = 0x000d
	tagReconyxMakernoteID      = 0x0010
	tagReconyxMakernotePublicID = 0x0011
	tagReconyxUserLabel        = 0x0012

	// reconyxHyperFireMakerNoteVersion is the 16-bit value at the very
	// start of a HyperFire makernote that identifies the dialect when no
	// ASCII probe string is present.
	reconyxHyperFireMakerNoteVersion = 61257

	// reconyxUltraFireMakernoteID and reconyxUltraFirePublicID are the
	// two validated header constants in the UltraFire fixed layout.
	reconyxUltraFireMakernoteID = 0x00010100
	reconyxUltraFirePublicID    = 0x00000001
)
