package exifcore

// tagNameFunc returns the tag-name lookup function for a given
// DirectoryKind, or nil if the kind has no known table (its tags render
// as "UnknownTag_0xXXXX" instead). Tables are plain maps rather than a
// generated stringer because tag spaces are sparse and per-directory,
// not a contiguous enum, matching the style of the teacher's own
// tag-name maps (fieldsexif.go).
func tagNameFunc(kind DirectoryKind) func(uint16) string {
	switch kind {
	case KindIFD0, KindThumbnail, KindImage:
		return lookupIn(ifd0TagNames)
	case KindExifSubIFD:
		return lookupIn(exifTagNames)
	case KindGPS:
		return lookupIn(gpsTagNames)
	case KindInterop:
		return lookupIn(interopTagNames)
	case KindOlympus:
		return lookupIn(olympusTagNames)
	case KindOlympusEquipment:
		return lookupIn(olympusEquipmentTagNames)
	case KindOlympusCameraSettings:
		return lookupIn(olympusCameraSettingsTagNames)
	case KindNikonType1, KindNikonType2:
		return lookupIn(nikonTagNames)
	case KindCanon:
		return lookupIn(canonTagNames)
	case KindSonyType1, KindSonyType6:
		return lookupIn(sonyTagNames)
	case KindFujifilm:
		return lookupIn(fujifilmTagNames)
	case KindPanasonic, KindPanasonicRawIFD0:
		return lookupIn(panasonicTagNames)
	case KindReconyxHyperFire, KindReconyxHyperFire2, KindReconyxUltraFire:
		return lookupIn(reconyxTagNames)
	case KindSigma:
		return lookupIn(sigmaTagNames)
	case KindCasioType1, KindCasioType2:
		return lookupIn(casioTagNames)
	case KindKyocera:
		return lookupIn(kyoceraTagNames)
	case KindLeica, KindLeicaType5:
		return lookupIn(leicaTagNames)
	case KindPentax, KindPentaxType2:
		return lookupIn(pentaxTagNames)
	case KindSanyo:
		return lookupIn(sanyoTagNames)
	case KindRicoh:
		return lookupIn(ricohTagNames)
	case KindSamsung:
		return lookupIn(samsungTagNames)
	case KindDJI:
		return lookupIn(djiTagNames)
	case KindFLIR:
		return lookupIn(flirTagNames)
	case KindApple:
		return lookupIn(appleTagNames)
	case KindKodak:
		return lookupIn(kodakTagNames)
	case KindPrintIM:
		return lookupIn(printIMTagNames)
	case KindGeoTIFF:
		return lookupIn(geoTIFFTagNames)
	default:
		return nil
	}
}

func lookupIn(m map[uint16]string) func(uint16) string {
	return func(id uint16) string { return m[id] }
}

// ifd0TagNames covers the baseline TIFF/IFD0 tags shared by IFD0, the
// thumbnail IFD, and RAW image IFDs.
var ifd0TagNames = map[uint16]string{
	0x00fe: "NewSubfileType",
	0x014a: "SubIFDs",
	0x02bc: "ApplicationNotes",
	0x0100: "ImageWidth",
	0x0101: "ImageLength",
	0x0102: "BitsPerSample",
	0x0103: "Compression",
	0x0106: "PhotometricInterpretation",
	0x010e: "ImageDescription",
	0x010f: "Make",
	0x0110: "Model",
	0x0111: "StripOffsets",
	0x0112: "Orientation",
	0x0115: "SamplesPerPixel",
	0x0116: "RowsPerStrip",
	0x0117: "StripByteCounts",
	0x011a: "XResolution",
	0x011b: "YResolution",
	0x011c: "PlanarConfiguration",
	0x0128: "ResolutionUnit",
	0x0131: "Software",
	0x0132: "DateTime",
	0x013b: "Artist",
	0x013e: "WhitePoint",
	0x013f: "PrimaryChromaticities",
	0x0201: "JPEGInterchangeFormat",
	0x0202: "JPEGInterchangeFormatLength",
	0x0211: "YCbCrCoefficients",
	0x0212: "YCbCrSubSampling",
	0x0213: "YCbCrPositioning",
	0x0214: "ReferenceBlackWhite",
	0x8298: "Copyright",
	0x83bb: "IPTCNAA",
	0x8649: "PhotoshopSettings",
	0x8773: "InterColorProfile",
	0x8769: "ExifIFD",
	0x8825: "GPSIFD",
	0x830e: "PixelScale",
	0x8482: "ModelTiePoint",
	0x85d8: "ModelTransformation",
	0x87af: "GeoKeyDirectory",
	0x87b0: "GeoDoubleParams",
	0x87b1: "GeoASCIIParams",
	0xc4a5: "PrintIM",
}

var exifTagNames = map[uint16]string{
	0x829a: "ExposureTime",
	0x829d: "FNumber",
	0x8822: "ExposureProgram",
	0x8824: "SpectralSensitivity",
	0x8827: "ISOSpeedRatings",
	0x8830: "SensitivityType",
	0x9000: "ExifVersion",
	0x9003: "DateTimeOriginal",
	0x9004: "DateTimeDigitized",
	0x9101: "ComponentsConfiguration",
	0x9102: "CompressedBitsPerPixel",
	0x9201: "ShutterSpeedValue",
	0x9202: "ApertureValue",
	0x9203: "BrightnessValue",
	0x9204: "ExposureBiasValue",
	0x9205: "MaxApertureValue",
	0x9206: "SubjectDistance",
	0x9207: "MeteringMode",
	0x9208: "LightSource",
	0x9209: "Flash",
	0x920a: "FocalLength",
	0x927c: "MakerNote",
	0x9286: "UserComment",
	0xa000: "FlashpixVersion",
	0xa001: "ColorSpace",
	0xa002: "PixelXDimension",
	0xa003: "PixelYDimension",
	0xa005: "InteropIFD",
	0xa20e: "FocalPlaneXResolution",
	0xa20f: "FocalPlaneYResolution",
	0xa210: "FocalPlaneResolutionUnit",
	0xa215: "ExposureIndex",
	0xa217: "SensingMethod",
	0xa300: "FileSource",
	0xa301: "SceneType",
	0xa401: "CustomRendered",
	0xa402: "ExposureMode",
	0xa403: "WhiteBalance",
	0xa404: "DigitalZoomRatio",
	0xa405: "FocalLengthIn35mmFilm",
	0xa406: "SceneCaptureType",
	0xa407: "GainControl",
	0xa408: "Contrast",
	0xa409: "Saturation",
	0xa40a: "Sharpness",
	0xa432: "LensSpecification",
	0xa433: "LensMake",
	0xa434: "LensModel",
}

var gpsTagNames = map[uint16]string{
	0x0000: "GPSVersionID",
	0x0001: "GPSLatitudeRef",
	0x0002: "GPSLatitude",
	0x0003: "GPSLongitudeRef",
	0x0004: "GPSLongitude",
	0x0005: "GPSAltitudeRef",
	0x0006: "GPSAltitude",
	0x0007: "GPSTimeStamp",
	0x0008: "GPSSatellites",
	0x000b: "GPSDOP",
	0x000d: "GPSSpeed",
	0x0010: "GPSImgDirectionRef",
	0x0011: "GPSImgDirection",
	0x0012: "GPSMapDatum",
	0x001d: "GPSDateStamp",
}

var interopTagNames = map[uint16]string{
	0x0001: "InteroperabilityIndex",
	0x0002: "InteroperabilityVersion",
}

var olympusTagNames = map[uint16]string{
	0x0000: "MakerNoteVersion",
	0x0100: "ThumbnailImage",
	0x0200: "SpecialMode",
	0x0201: "Quality",
	0x0202: "Macro",
	0x0203: "BWMode",
	0x0204: "DigitalZoom",
	0x0207: "FirmwareVersion",
	0x0209: "PictureInfo",
	0x0f00: "DataDump",
	0x2010: "Equipment",
	0x2020: "CameraSettings",
	0x2030: "RawDevelopment",
	0x2031: "RawDevelopment2",
	0x2040: "ImageProcessing",
	0x2050: "FocusInfo",
	0x3000: "RawInfo",
	0x4000: "MainInfo",
}

var olympusEquipmentTagNames = map[uint16]string{
	0x0100: "CameraType2",
	0x0101: "SerialNumber",
	0x0201: "LensType",
	0x0202: "LensSerialNumber",
}

var olympusCameraSettingsTagNames = map[uint16]string{
	0x0100: "PreviewImageValid",
	0x0101: "PreviewImageStart",
	0x0102: "PreviewImageLength",
	0x0200: "ExposureMode",
	0x0201: "AELock",
	0x0202: "MeteringMode",
}

var nikonTagNames = map[uint16]string{
	0x0001: "MakerNoteVersion",
	0x0002: "ISO",
	0x0004: "Quality",
	0x0005: "WhiteBalance",
	0x0007: "FocusMode",
	0x000b: "WhiteBalanceFineTune",
	0x0011: "PreviewIFD",
	0x001b: "SubjectDistance",
	0x0083: "LensType",
	0x0084: "Lens",
	0x008a: "AutoBracketRelease",
	0x0093: "NEFCompression",
	0x00a7: "ShutterCount",
}

var canonTagNames = map[uint16]string{
	0x0001: "CameraSettings",
	0x0004: "ShotInfo",
	0x0006: "ImageType",
	0x0007: "FirmwareVersion",
	0x0009: "OwnerName",
	0x000c: "SerialNumber",
	0x0095: "LensModel",
	0x00a9: "WhiteBalanceTable",
}

var sonyTagNames = map[uint16]string{
	0x0102: "Quality",
	0x0104: "FlashExposureComp",
	0x0105: "Teleconverter",
	0xb000: "FileFormat",
	0xb001: "SonyModelID",
	0xb020: "ColorReproduction",
	0xb021: "ColorTemperature",
}

var fujifilmTagNames = map[uint16]string{
	0x0000: "Version",
	0x1000: "Quality",
	0x1001: "Sharpness",
	0x1002: "WhiteBalance",
	0x1003: "Color",
	0x1004: "Tone",
	0x1010: "FlashMode",
	0x1400: "DynamicRange",
}

var panasonicTagNames = map[uint16]string{
	0x0001: "ImageQuality",
	0x0002: "FirmwareVersion",
	0x0003: "WhiteBalance",
	0x0007: "FocusMode",
	0x001a: "ImageStabilization",
	0x002d: "WbInfo",
	0x0d0d: "WbInfo2",
	0x0e00: "DistortionInfo",
	0x2000: "JpgFromRaw",
}

var reconyxTagNames = map[uint16]string{
	0x0000: "MakerNoteVersion",
	0x0001: "FirmwareVersion",
	0x0002: "FirmwareDate",
	0x0003: "TriggerMode",
	0x0004: "Sequence",
	0x0005: "EventNumber",
	0x0006: "DateTimeOriginal",
	0x000a: "MoonPhase",
	0x000b: "AmbientTemperatureFahrenheit",
	0x000c: "AmbientTemperature",
	0x000d: "SerialNumber",
	0x0010: "MakernoteID",
	0x0011: "MakernotePublicID",
	0x0012: "UserLabel",
}

var geoTIFFTagNames = map[uint16]string{
	1024: "GTModelTypeGeoKey",
	1025: "GTRasterTypeGeoKey",
	1026: "GTCitationGeoKey",
	2048: "GeographicTypeGeoKey",
	2049: "GeogCitationGeoKey",
	3072: "ProjectedCSTypeGeoKey",
	3073: "PCSCitationGeoKey",
}

var sigmaTagNames = map[uint16]string{
	0x0002: "SerialNumber",
	0x0003: "DriveMode",
	0x0004: "ResolutionMode",
	0x0005: "AutofocusMode",
	0x0006: "FocusSetting",
	0x0007: "SigmaModelID",
	0x0008: "LensRange",
	0x000c: "SensorID",
}

var casioTagNames = map[uint16]string{
	0x0001: "RecordingMode",
	0x0002: "Quality",
	0x0003: "FocusMode",
	0x0004: "FlashMode",
	0x0005: "FlashIntensity",
	0x0006: "ObjectDistance",
	0x0007: "WhiteBalance",
	0x000b: "Sharpness",
	0x000c: "Contrast",
	0x000d: "Saturation",
}

var kyoceraTagNames = map[uint16]string{
	0x0001: "ThumbnailDimensions",
	0x0002: "ThumbnailSize",
	0x0003: "ThumbnailOffset",
	0x0e00: "PrintIM",
}

var leicaTagNames = map[uint16]string{
	0x0300: "Quality",
	0x0301: "UserProfile",
	0x0305: "SerialNumber",
	0x0310: "LensModel",
}

var pentaxTagNames = map[uint16]string{
	0x0000: "PentaxVersion",
	0x0001: "PentaxModelType",
	0x0002: "PreviewImageSize",
	0x0003: "PreviewImageLength",
	0x0004: "PreviewImageStart",
	0x0005: "PentaxModelID",
	0x0008: "Quality",
	0x000d: "FocusMode",
}

var sanyoTagNames = map[uint16]string{
	0x0200: "SpecialMode",
	0x0201: "Quality",
	0x0202: "Macro",
	0x0204: "DigitalZoom",
	0x0213: "SequentialShot",
}

var ricohTagNames = map[uint16]string{
	0x0001: "MakerNoteDataType",
	0x0002: "Version",
	0x0E00: "PrintIM",
	0x1001: "CameraInfoIFD",
}

var samsungTagNames = map[uint16]string{
	0x0001: "MakerNoteVersion",
	0x0002: "DeviceType",
	0x0021: "LocalLocationName",
}

var djiTagNames = map[uint16]string{
	0x0001: "Make",
	0x0003: "SpeedX",
	0x0004: "SpeedY",
	0x0005: "SpeedZ",
	0x0006: "Pitch",
	0x0007: "Yaw",
	0x0008: "Roll",
}

var flirTagNames = map[uint16]string{
	0x0001: "FLIRVersion",
	0x0002: "CreatorSoftware",
	0x000e: "ObjectParameters",
}

var appleTagNames = map[uint16]string{
	0x0001: "MakerNoteVersion",
	0x0003: "RunTime",
	0x0008: "AccelerationVector",
	0x000e: "ImageUniqueID",
	0x0011: "LivePhotoVideoIndex",
}

var kodakTagNames = map[uint16]string{
	0x0000: "KodakModel",
	0x0009: "Quality",
	0x000c: "Sharpness",
	0x001a: "CaptureNumber",
}

var printIMTagNames = map[uint16]string{
	0x0000: "PrintImVersion",
}
