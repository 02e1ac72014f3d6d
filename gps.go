package exifcore

const (
	tagGPSLatitudeRef  = 0x0001
	tagGPSLatitude     = 0x0002
	tagGPSLongitudeRef = 0x0003
	tagGPSLongitude    = 0x0004
)

// GPSDirectory wraps a KindGPS Directory with the convenience
// conversions spec.md explicitly keeps in scope even though
// interpreting GPS into a full geodetic model is a non-goal: turning
// the three-RATIONAL degrees/minutes/seconds encoding into a single
// decimal value.
type GPSDirectory struct {
	*Directory
}

// AsGPSDirectory wraps dir, or returns ok=false if dir is not a GPS directory.
func AsGPSDirectory(dir *Directory) (GPSDirectory, bool) {
	if dir == nil || dir.Kind() != KindGPS {
		return GPSDirectory{}, false
	}
	return GPSDirectory{dir}, true
}

// DecimalDegrees converts a GPSLatitude/GPSLongitude-shaped value (three
// RATIONAL components: degrees, minutes, seconds) plus its reference
// letter into a single signed decimal degree value. A reference of "S"
// or "W" negates the result; any other reference leaves it positive.
func DecimalDegrees(dms []any, ref string) (float64, bool) {
	if len(dms) != 3 {
		return 0, false
	}
	deg, ok1 := rationalFloat(dms[0])
	min, ok2 := rationalFloat(dms[1])
	sec, ok3 := rationalFloat(dms[2])
	if !ok1 || !ok2 || !ok3 {
		return 0, false
	}
	v := deg + min/60 + sec/3600
	if ref == "S" || ref == "W" {
		v = -v
	}
	return v, true
}

func rationalFloat(v any) (float64, bool) {
	switch r := v.(type) {
	case Rational[uint32]:
		return r.Float64(), true
	case Rational[int32]:
		return r.Float64(), true
	default:
		return 0, false
	}
}

// GetGeoLocation returns the directory's latitude and longitude as
// decimal degrees, or ok=false if either is missing or malformed.
func (g GPSDirectory) GetGeoLocation() (lat, lon float64, ok bool) {
	latRef, _ := g.Get(tagGPSLatitudeRef)
	latVal, latOK := g.Get(tagGPSLatitude)
	lonRef, _ := g.Get(tagGPSLongitudeRef)
	lonVal, lonOK := g.Get(tagGPSLongitude)
	if !latOK || !lonOK {
		return 0, 0, false
	}
	latSlice, ok1 := latVal.([]any)
	lonSlice, ok2 := lonVal.([]any)
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	lat, ok1 = DecimalDegrees(latSlice, stringOrEmpty(latRef))
	lon, ok2 = DecimalDegrees(lonSlice, stringOrEmpty(lonRef))
	return lat, lon, ok1 && ok2
}

func stringOrEmpty(v any) string {
	s, _ := v.(string)
	return s
}
