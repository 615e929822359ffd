package domain

import (
	"context"
	"log/slog"
)

// EnrichWithGeocoding attempts to label a record's area with place
// details by reverse-geocoding its first fix. A nil geocoder, a record
// without coordinates, or a provider failure all degrade gracefully:
// the record comes back with GeoSource set accordingly and the parse
// result untouched.
func EnrichWithGeocoding(ctx context.Context, rec NavWarnRecord, geocoder Geocoder, logger *slog.Logger) NavWarnRecord {
	if geocoder == nil || len(rec.Coordinates) == 0 {
		return rec
	}

	first := rec.Coordinates[0]
	result, err := geocoder.ReverseGeocode(ctx, first.Lat, first.Lon)
	if err != nil {
		logger.Warn("reverse geocoding failed",
			"record_id", rec.ID,
			"lat", first.Lat,
			"lon", first.Lon,
			"error", err,
		)
		rec.GeoSource = "failed"
		return rec
	}
	if result.FormattedAddress == "" {
		rec.GeoSource = "original"
		return rec
	}

	rec.FormattedAddress = result.FormattedAddress
	rec.PlaceName = result.PlaceName
	rec.GeoConfidence = result.Confidence
	rec.GeoSource = "reverse"
	return rec
}
