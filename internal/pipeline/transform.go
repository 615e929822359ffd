package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/couchcryptid/navwarn-etl/internal/domain"
	"github.com/couchcryptid/navwarn-etl/internal/observability"
)

// geocodeConcurrency caps in-flight reverse geocoding lookups per batch
// so a large batch cannot saturate the Mapbox rate limit.
const geocodeConcurrency = 4

// BulletinTransformer turns one raw bulletin batch into serialized
// records: segment, extract fields, classify, optionally enrich with
// reverse geocoding. Geocoding is best-effort; a provider failure marks
// the record and never fails the transform.
type BulletinTransformer struct {
	opts     domain.Options
	geocoder domain.Geocoder
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewBulletinTransformer creates a transformer. A nil geocoder disables
// enrichment.
func NewBulletinTransformer(opts domain.Options, geocoder domain.Geocoder, logger *slog.Logger, metrics *observability.Metrics) *BulletinTransformer {
	return &BulletinTransformer{
		opts:     opts,
		geocoder: geocoder,
		logger:   logger,
		metrics:  metrics,
	}
}

// Transform implements Transformer. A batch with no recognizable
// messages yields an empty slice and no error.
func (t *BulletinTransformer) Transform(ctx context.Context, raw domain.RawEvent) ([]domain.OutputEvent, error) {
	records := domain.ParseBatch(string(raw.Value), t.opts)
	if len(records) == 0 {
		t.logger.Debug("batch yielded no messages",
			"topic", raw.Topic, "partition", raw.Partition, "offset", raw.Offset)
		return nil, nil
	}

	for _, rec := range records {
		if rec.RawDTG != "" && rec.DTG == nil {
			t.metrics.DTGParseFailures.Inc()
			t.logger.Warn("unparseable DTG, record degraded",
				"record_id", rec.ID, "raw_dtg", rec.RawDTG)
		}
		if rec.MessageID == nil {
			t.metrics.UnrecognizedIDs.Inc()
		}
	}

	if t.geocoder != nil {
		t.enrich(ctx, records)
	}

	events := make([]domain.OutputEvent, 0, len(records))
	for _, rec := range records {
		event, err := domain.SerializeRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("transform record %s: %w", rec.ID, err)
		}
		events = append(events, event)
	}
	return events, nil
}

// enrich reverse-geocodes the batch's records concurrently. Each record
// degrades independently, so the group never carries an error.
func (t *BulletinTransformer) enrich(ctx context.Context, records []domain.NavWarnRecord) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(geocodeConcurrency)
	for i := range records {
		g.Go(func() error {
			records[i] = domain.EnrichWithGeocoding(gctx, records[i], t.geocoder, t.logger)
			return nil
		})
	}
	_ = g.Wait()
}
