package domain

import (
	"math"
	"regexp"
	"strconv"
)

// Fix is one geographic position in decimal degrees (WGS-84). South and
// west hemispheres are negative.
type Fix struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

var (
	// coordPairRe matches a lat/lon pair in degree-minute notation, e.g.
	// "71-45.10N 070-28.20W" or "69-12N 033-45E". Minutes may omit the
	// decimal part or carry a trailing seconds group ("70-47-00N", seen
	// in NAVAREA XX traffic); pairs may be separated by a comma in area
	// listings.
	coordPairRe = regexp.MustCompile(`(\d{2,3}-\d{2}(?:\.\d+)?(?:-\d{2})?[NS])[,\s]+(\d{3}-\d{2}(?:\.\d+)?(?:-\d{2})?[EW])`)

	coordTokenRe = regexp.MustCompile(`^(\d{2,3})-(\d{2}(?:\.\d+)?)(?:-(\d{2}))?([NSEW])$`)
)

// ExtractCoordinates scans segment text for degree-minute position
// pairs and returns them in order of appearance. Malformed or
// out-of-range tokens are skipped, never reported: coordinate
// extraction cannot fail the pipeline.
func ExtractCoordinates(text string) []Fix {
	var fixes []Fix
	for _, m := range coordPairRe.FindAllStringSubmatch(text, -1) {
		lat, okLat := coordToDecimal(m[1])
		lon, okLon := coordToDecimal(m[2])
		if okLat && okLon {
			fixes = append(fixes, Fix{Lat: lat, Lon: lon})
		}
	}
	return fixes
}

// coordToDecimal converts one degree-minute token ("070-28.20W") or
// degree-minute-second token ("046-22-00E") to decimal degrees.
// Returns false for grammar or range violations (minutes or seconds
// >= 60, latitude beyond 90, longitude beyond 180).
func coordToDecimal(token string) (float64, bool) {
	m := coordTokenRe.FindStringSubmatch(token)
	if m == nil {
		return 0, false
	}
	deg, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.ParseFloat(m[2], 64)
	if minutes >= 60 {
		return 0, false
	}

	var seconds float64
	if m[3] != "" {
		seconds, _ = strconv.ParseFloat(m[3], 64)
		if seconds >= 60 {
			return 0, false
		}
	}

	dec := float64(deg) + minutes/60 + seconds/3600
	limit := 90.0
	if m[4] == "E" || m[4] == "W" {
		limit = 180.0
	}
	if dec > limit {
		return 0, false
	}
	if m[4] == "S" || m[4] == "W" {
		dec = -dec
	}
	return dec, true
}

// ClassifyGeometry labels a fix sequence: a single fix is a point, a
// run that returns to its start is a polygon, anything else in between
// is a linestring. The label describes the fix list only; tiling and
// rendering belong to the mapping front end.
func ClassifyGeometry(fixes []Fix) string {
	switch {
	case len(fixes) == 0:
		return ""
	case len(fixes) == 1:
		return "point"
	case len(fixes) >= 4 && sameFix(fixes[0], fixes[len(fixes)-1]):
		return "polygon"
	default:
		return "linestring"
	}
}

func sameFix(a, b Fix) bool {
	return math.Abs(a.Lat-b.Lat) < 1e-4 && math.Abs(a.Lon-b.Lon) < 1e-4
}
