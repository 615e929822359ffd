package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// NavWarnRecord is the structured output for one bulletin. Absent
// fields (no parseable DTG, no recognizable identifier) are nil
// pointers, not sentinel strings. Records are immutable once built;
// the geocoding enrichment returns a modified copy.
type NavWarnRecord struct {
	ID            string         `json:"id"`
	MessageID     *string        `json:"message_id,omitempty"`
	DTG           *time.Time     `json:"dtg,omitempty"`
	RawDTG        string         `json:"raw_dtg,omitempty"`
	Hazard        string         `json:"hazard"`
	Coordinates   []Fix          `json:"coordinates,omitempty"`
	Geometry      string         `json:"geometry,omitempty"`
	Cancellations []Cancellation `json:"cancellations,omitempty"`
	RawText       string         `json:"raw_text"`

	// Geocoding enrichment fields.
	PlaceName        string  `json:"place_name,omitempty"`
	FormattedAddress string  `json:"formatted_address,omitempty"`
	GeoConfidence    float64 `json:"geo_confidence,omitempty"`
	GeoSource        string  `json:"geo_source,omitempty"` // "reverse", "original", "failed"

	ProcessedAt time.Time `json:"processed_at"`
}

// Options tunes batch parsing. The zero value means defaults: the fixed
// pivot window and the embedded hazard rule list.
type Options struct {
	PivotYear int
	Rules     []HazardRule
}

// DefaultOptions returns the documented default parsing configuration.
func DefaultOptions() Options {
	return Options{PivotYear: DefaultPivotYear, Rules: DefaultHazardRules()}
}

func (o Options) withDefaults() Options {
	if o.PivotYear == 0 {
		o.PivotYear = DefaultPivotYear
	}
	if o.Rules == nil {
		o.Rules = defaultRules
	}
	return o
}

// ParseBatch decomposes a raw bulletin batch into one record per
// inferred message, in input order. Field extraction degrades
// gracefully: a malformed DTG or missing identifier leaves that field
// absent on its record, and no segment is ever dropped. Repeated calls
// are independent; ParseBatch is safe for concurrent use.
func ParseBatch(text string, opts Options) []NavWarnRecord {
	opts = opts.withDefaults()

	segments := SegmentBatch(text)
	records := make([]NavWarnRecord, 0, len(segments))
	for _, seg := range segments {
		records = append(records, buildRecord(seg, opts))
	}

	// Repeat-suffix asymmetry: with more than one message in the batch
	// the parenthesised suffix is stripped so repeated broadcasts
	// correlate to a stable base id; a single-message batch keeps the
	// suffix verbatim.
	if len(records) > 1 {
		for i := range records {
			if records[i].MessageID != nil {
				normalized := NormalizeMessageID(*records[i].MessageID)
				records[i].MessageID = &normalized
			}
		}
	}

	// IDs hash the normalized message id, so assign them last.
	for i := range records {
		records[i].ID = generateID(records[i])
	}
	return records
}

// buildRecord combines one segment with the per-field extractors. No
// additional inference happens here.
func buildRecord(seg MessageSegment, opts Options) NavWarnRecord {
	rec := NavWarnRecord{
		Hazard:        ClassifyHazard(seg.RawText, opts.Rules),
		Coordinates:   ExtractCoordinates(seg.RawText),
		Cancellations: ExtractCancellations(seg.RawText, opts.PivotYear),
		RawText:       seg.RawText,
		ProcessedAt:   clock.Now(),
	}
	rec.Geometry = ClassifyGeometry(rec.Coordinates)

	if len(seg.DTGLines) > 0 {
		// First standalone DTG wins; later ones stay on the raw text.
		rec.RawDTG = seg.DTGLines[0]
		if t, err := ParseDTG(rec.RawDTG, opts.PivotYear); err == nil {
			rec.DTG = &t
		}
	}
	if id, err := ExtractMessageID(seg.RawText); err == nil {
		rec.MessageID = &id
	}
	return rec
}

// generateID produces a deterministic ID from the record's key fields.
// Reprocessing the same bulletin yields the same ID, which keeps
// downstream upserts idempotent and replays safe.
func generateID(rec NavWarnRecord) string {
	var msgID, dtg string
	if rec.MessageID != nil {
		msgID = *rec.MessageID
	}
	if rec.DTG != nil {
		dtg = rec.DTG.UTC().Format(time.RFC3339)
	}
	input := fmt.Sprintf("%s|%s|%s|%s", msgID, dtg, rec.Hazard, rec.RawText)
	hash := sha256.Sum256([]byte(input))
	return "navwarn-" + hex.EncodeToString(hash[:8])
}
