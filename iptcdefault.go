package exifcore

import (
	"encoding/binary"

	"golang.org/x/text/encoding/charmap"
)

// DefaultIPTCReader is a minimal IPTCReader grounded on the teacher's
// metadecoder_iptc.go: it walks IPTC-NAA dataset records directly
// (spec.md places the full reader out of scope, so this covers only the
// wire-level dataset loop and the CodedCharacterSet-driven charset
// switch, not the full exiftool-derived tag name table). data is the
// bytes starting at the 0x1C marker CustomProcessTag already confirmed.
type DefaultIPTCReader struct{}

const (
	iptcCodedCharacterSetRecord  = 1
	iptcCodedCharacterSetDataset = 90
)

// ReadIPTC implements IPTCReader.
func (DefaultIPTCReader) ReadIPTC(data []byte) ([]*Directory, error) {
	dir := newDirectory(KindIPTC, nil)
	decoder := charmap.ISO8859_1.NewDecoder()
	charset := ""

	pos := 0
	for pos+5 <= len(data) {
		if data[pos] != 0x1c {
			break
		}
		record := data[pos+1]
		dataset := data[pos+2]
		size := binary.BigEndian.Uint16(data[pos+3 : pos+5])
		pos += 5
		if pos+int(size) > len(data) {
			dir.AddError(newFormatErrorf(ErrVendorBadSize, "IPTC dataset %d:%d size %d exceeds remaining %d bytes", record, dataset, size, len(data)-pos))
			break
		}
		value := data[pos : pos+int(size)]
		pos += int(size)

		if record == iptcCodedCharacterSetRecord && dataset == iptcCodedCharacterSetDataset {
			charset = resolveIPTCCharset(value)
		}

		tagID := uint16(record)<<8 | uint16(dataset)
		if charset == "ISO-8859-1" {
			decoded, err := decoder.Bytes(value)
			if err == nil {
				dir.Set(tagID, string(decoded))
				continue
			}
		}
		dir.Set(tagID, string(value))
	}

	return []*Directory{dir}, nil
}

// resolveIPTCCharset mirrors the teacher's resolveCodedCharacterSet:
// IPTC's CodedCharacterSet dataset carries an ISO 2022 escape sequence,
// not a charset name, so it must be pattern-matched rather than parsed.
func resolveIPTCCharset(b []byte) string {
	const (
		esc           = 0x1b
		percent       = 0x25
		latinCapitalG = 0x47
		dot           = 0x2e
		latinCapitalA = 0x41
		minus         = 0x2d
	)
	switch {
	case len(b) > 2 && b[0] == esc && b[1] == percent && b[2] == latinCapitalG:
		return "UTF-8"
	case len(b) > 2 && b[0] == esc && b[1] == dot && b[2] == latinCapitalA:
		return "ISO-8859-1"
	case len(b) > 4 && b[0] == esc && (b[1] == dot || b[2] == dot || b[3] == dot) && b[4] == latinCapitalA:
		return "ISO-8859-1"
	case len(b) > 2 && b[0] == esc && b[1] == minus && b[2] == latinCapitalA:
		return "ISO-8859-1"
	default:
		return "UTF-8"
	}
}
