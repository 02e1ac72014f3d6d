package exifcore

import "strings"

// unpackGeoTIFF decodes IFD0's GeoKeyDirectory (keys, already read as a
// flat []uint16 per §4.4) into a synthetic GeoTIFF directory. Each key
// entry either carries its value inline (tiffTagLocation == 0) or
// references a slice of a string/array tag already present in ifd0.
//
// The extent check is intentionally asymmetric between strings and
// arrays (<= vs strict <) per spec.md §9's note that this inconsistency
// is preserved rather than "fixed" without a real file to test against.
func unpackGeoTIFF(ifd0 *Directory, keys []uint16) (*Directory, error) {
	if len(keys) < 4 {
		return nil, newFormatErrorf(ErrVendorBadSize, "GeoKeyDirectory header truncated: %d entries", len(keys))
	}
	numberOfKeys := int(keys[3])
	gtd := newDirectory(KindGeoTIFF, ifd0)
	consumed := make(map[uint16]bool)

	for i := 0; i < numberOfKeys; i++ {
		base := 4 + i*4
		if base+4 > len(keys) {
			gtd.AddError(newFormatErrorf(ErrVendorBadSize, "GeoKeyDirectory entry %d out of bounds", i))
			break
		}
		keyID := keys[base]
		tagLoc := keys[base+1]
		valueCount := int(keys[base+2])
		valueOffset := int(keys[base+3])

		if tagLoc == 0 {
			gtd.Set(keyID, uint16(valueOffset))
			continue
		}

		consumed[tagLoc] = true
		srcVal, ok := ifd0.Get(tagLoc)
		if !ok {
			gtd.AddError(newFormatErrorf(ErrVendorBadSize, "GeoTIFF key %d references missing tag 0x%04x", keyID, tagLoc))
			continue
		}

		switch v := srcVal.(type) {
		case string:
			end := valueOffset + valueCount
			if end > len(v) {
				gtd.AddError(newFormatErrorf(ErrVendorBadSize, "GeoTIFF key %d string slice [%d:%d] exceeds tag 0x%04x length %d", keyID, valueOffset, end, tagLoc, len(v)))
				continue
			}
			gtd.Set(keyID, strings.TrimSuffix(v[valueOffset:end], "|"))
		case []any:
			end := valueOffset + valueCount
			if end >= len(v) {
				gtd.AddError(newFormatErrorf(ErrVendorBadSize, "GeoTIFF key %d array slice [%d:%d) exceeds tag 0x%04x length %d", keyID, valueOffset, end, tagLoc, len(v)))
				continue
			}
			gtd.Set(keyID, append([]any(nil), v[valueOffset:end]...))
		default:
			gtd.AddError(newFormatErrorf(ErrVendorUnsupported, "GeoTIFF key %d references tag 0x%04x of unsupported type %T", keyID, tagLoc, srcVal))
		}
	}

	for tagLoc := range consumed {
		ifd0.Delete(tagLoc)
	}
	ifd0.Delete(tagGeoTiffGeoKeys)
	return gtd, nil
}

// asUint16Slice coerces a decoded SHORT-array tag value (§4.2's generic
// decode collapses a single component to a scalar) into a []uint16.
func asUint16Slice(v any) ([]uint16, bool) {
	switch t := v.(type) {
	case []any:
		out := make([]uint16, 0, len(t))
		for _, e := range t {
			u, ok := e.(uint16)
			if !ok {
				return nil, false
			}
			out = append(out, u)
		}
		return out, true
	case uint16:
		return []uint16{t}, true
	default:
		return nil, false
	}
}
