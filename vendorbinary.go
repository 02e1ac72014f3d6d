package exifcore

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"time"
)

// decodeKodak reads Kodak's fixed-layout makernote (§4.8): a sequence
// of fixed-offset reads starting 8 bytes into the block, matching the
// "KDK" dispatch rule's offset.
func decodeKodak(data []byte, order binary.ByteOrder, parent *Directory) *Directory {
	dir := newDirectory(KindKodak, parent)
	const (
		start     = 8
		modelLen  = 8
		qualityOff = start + modelLen
		sharpOff  = qualityOff + 1
		captureOff = sharpOff + 1
	)
	if len(data) < captureOff+4 {
		dir.AddError(newFormatErrorf(ErrVendorBadSize, "Kodak makernote too short (%d bytes)", len(data)))
		return dir
	}
	dir.Set(uint16(0x0000), trimTrailingNull(data[start:start+modelLen]))
	dir.Set(uint16(0x0009), data[qualityOff])
	dir.Set(uint16(0x000c), data[sharpOff])
	dir.Set(uint16(0x001a), order.Uint32(data[captureOff:captureOff+4]))
	return dir
}

// reconyxFirmwareVersion reads a three-component firmware version
// (major, minor, revision, each a 16-bit field at verOff) plus a fourth
// "build" component assembled from two hex-printed fields per §4.8: the
// decimal digits of each field's hex representation are concatenated
// and the result parsed as a decimal integer (a common way embedded
// firmware encodes a YYYYMMDD-shaped build stamp in two 16-bit words).
func reconyxFirmwareVersion(data []byte, order binary.ByteOrder, verOff, yearOff, dateOff int) (Version, error) {
	if dateOff+2 > len(data) {
		return Version{}, newFormatErrorf(ErrIOTruncated, "Reconyx firmware version block truncated")
	}
	major := order.Uint16(data[verOff : verOff+2])
	minor := order.Uint16(data[verOff+2 : verOff+4])
	revision := order.Uint16(data[verOff+4 : verOff+6])
	year := order.Uint16(data[yearOff : yearOff+2])
	date := order.Uint16(data[dateOff : dateOff+2])

	build, err := strconv.Atoi(fmt.Sprintf("%04x%04x", year, date))
	if err != nil {
		return Version{Components: []int{int(major), int(minor), int(revision)}}, err
	}
	return Version{Components: []int{int(major), int(minor), int(revision), build}}, nil
}

// reconyxDateTime reads six consecutive 16-bit fields (year, month,
// day, hour, minute, second) at off and validates them per §4.8: an
// out-of-range component is reported as a vendor-bad-datetime error and
// the date is omitted rather than stored with a bogus time.Time.
func reconyxDateTime(data []byte, order binary.ByteOrder, off int) (DateTime, error) {
	if off+12 > len(data) {
		return DateTime{}, newFormatErrorf(ErrIOTruncated, "Reconyx date/time block truncated")
	}
	year := int(order.Uint16(data[off : off+2]))
	month := int(order.Uint16(data[off+2 : off+4]))
	day := int(order.Uint16(data[off+4 : off+6]))
	hour := int(order.Uint16(data[off+6 : off+8]))
	minute := int(order.Uint16(data[off+8 : off+10]))
	sec := int(order.Uint16(data[off+10 : off+12]))

	raw := fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", year, month, day, hour, minute, sec)
	if sec >= 60 || minute >= 60 || hour >= 24 || month < 1 || month > 12 || day < 1 || day > 31 || year < 1900 || year > 2200 {
		return DateTime{Raw: raw, Valid: false}, newFormatErrorf(ErrVendorBadDatetime, "Reconyx date/time out of range: %s", raw)
	}
	return DateTime{Raw: raw, Time: time.Date(year, time.Month(month), day, hour, minute, sec, 0, time.UTC), Valid: true}, nil
}

// decodeReconyxHyperFire decodes a HyperFire makernote, identified by
// its leading version marker rather than an ASCII probe.
func decodeReconyxHyperFire(data []byte, order binary.ByteOrder, parent *Directory) *Directory {
	dir := newDirectory(KindReconyxHyperFire, parent)
	const minLen = 46
	if len(data) < minLen {
		dir.AddError(newFormatErrorf(ErrVendorBadSize, "Reconyx HyperFire makernote too short (%d bytes)", len(data)))
		return dir
	}
	dir.Set(uint16(tagReconyxMakerNoteVersion), order.Uint16(data[0:2]))

	ver, err := reconyxFirmwareVersion(data, order, 2, 8, 10)
	dir.Set(uint16(tagReconyxFirmwareVersion), ver)
	if err != nil {
		dir.AddError(newFormatErrorf(ErrVendorBadDatetime, "Reconyx HyperFire firmware build: %v", err))
	}

	dir.Set(uint16(tagReconyxTriggerMode), order.Uint16(data[12:14]))
	dir.Set(uint16(tagReconyxSequence), order.Uint16(data[14:16]))
	dir.Set(uint16(tagReconyxEventNumber), order.Uint32(data[16:20]))

	if dt, derr := reconyxDateTime(data, order, 20); derr == nil {
		dir.Set(uint16(tagReconyxDateTimeOriginal), dt)
	} else {
		dir.AddError(derr)
	}

	dir.Set(uint16(tagReconyxMoonPhase), order.Uint16(data[32:34]))
	dir.Set(uint16(tagReconyxAmbientTempF), int16(order.Uint16(data[34:36])))
	dir.Set(uint16(tagReconyxAmbientTempC), int16(order.Uint16(data[36:38])))
	dir.Set(uint16(tagReconyxSerialNumber), trimTrailingNull(data[38:46]))
	return dir
}

// decodeReconyxHyperFire2 decodes a HyperFire2 makernote, identified by
// its "RECONYXH2" ASCII probe. Layout mirrors HyperFire shifted by the
// probe string, plus a trailing UTF-16 user label.
func decodeReconyxHyperFire2(data []byte, order binary.ByteOrder, parent *Directory) *Directory {
	dir := newDirectory(KindReconyxHyperFire2, parent)
	const minLen = 99
	if len(data) < minLen {
		dir.AddError(newFormatErrorf(ErrVendorBadSize, "Reconyx HyperFire2 makernote too short (%d bytes)", len(data)))
		return dir
	}
	dir.Set(uint16(tagReconyxMakerNoteVersion), order.Uint16(data[9:11]))

	ver, err := reconyxFirmwareVersion(data, order, 11, 17, 19)
	dir.Set(uint16(tagReconyxFirmwareVersion), ver)
	if err != nil {
		dir.AddError(newFormatErrorf(ErrVendorBadDatetime, "Reconyx HyperFire2 firmware build: %v", err))
	}

	dir.Set(uint16(tagReconyxTriggerMode), order.Uint16(data[21:23]))
	dir.Set(uint16(tagReconyxSequence), order.Uint16(data[23:25]))
	dir.Set(uint16(tagReconyxEventNumber), order.Uint32(data[25:29]))

	if dt, derr := reconyxDateTime(data, order, 29); derr == nil {
		dir.Set(uint16(tagReconyxDateTimeOriginal), dt)
	} else {
		dir.AddError(derr)
	}

	dir.Set(uint16(tagReconyxMoonPhase), order.Uint16(data[41:43]))
	dir.Set(uint16(tagReconyxAmbientTempF), int16(order.Uint16(data[43:45])))
	dir.Set(uint16(tagReconyxAmbientTempC), int16(order.Uint16(data[45:47])))
	dir.Set(uint16(tagReconyxSerialNumber), trimTrailingNull(data[47:55]))
	dir.Set(uint16(tagReconyxUserLabel), decodeUTF16(data[55:99], order))
	return dir
}

// decodeReconyxUltraFire decodes an UltraFire makernote, validating the
// makernote and public ID constants per §4.8. Its integers are
// big-endian on the wire regardless of the surrounding IFD's byte
// order, so order is ignored in favour of binary.BigEndian.
func decodeReconyxUltraFire(data []byte, order binary.ByteOrder, parent *Directory) *Directory {
	dir := newDirectory(KindReconyxUltraFire, parent)
	order = binary.BigEndian
	const (
		idOff     = 9
		publicOff = 13
		verOff    = 17
		yearOff   = 23
		dateOff   = 25
		dtOff     = 27
		serialOff = 39
		labelOff  = 47
		minLen    = 91
	)
	if len(data) < minLen {
		dir.AddError(newFormatErrorf(ErrVendorBadSize, "Reconyx UltraFire makernote too short (%d bytes)", len(data)))
		return dir
	}

	makernoteID := order.Uint32(data[idOff : idOff+4])
	publicID := order.Uint32(data[publicOff : publicOff+4])
	dir.Set(uint16(tagReconyxMakernoteID), makernoteID)
	dir.Set(uint16(tagReconyxMakernotePublicID), publicID)
	if makernoteID != reconyxUltraFireMakernoteID || publicID != reconyxUltraFirePublicID {
		dir.AddError(newFormatErrorf(ErrVendorBadHeader, "Reconyx UltraFire header mismatch: makernoteID=0x%08x publicID=0x%08x", makernoteID, publicID))
	}

	ver, err := reconyxFirmwareVersion(data, order, verOff, yearOff, dateOff)
	dir.Set(uint16(tagReconyxFirmwareVersion), ver)
	if err != nil {
		dir.AddError(newFormatErrorf(ErrVendorBadDatetime, "Reconyx UltraFire firmware build: %v", err))
	}

	if dt, derr := reconyxDateTime(data, order, dtOff); derr == nil {
		dir.Set(uint16(tagReconyxDateTimeOriginal), dt)
	} else {
		dir.AddError(derr)
	}

	dir.Set(uint16(tagReconyxSerialNumber), trimTrailingNull(data[serialOff:serialOff+8]))
	dir.Set(uint16(tagReconyxUserLabel), decodeUTF16(data[labelOff:labelOff+44], order))
	return dir
}
