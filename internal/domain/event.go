package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// RawEvent represents one unprocessed message from the source topic:
// the full plain text of a scraped bulletin batch, as published by the
// upstream scraper service.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// OutputEvent is one serialized NavWarnRecord destined for the sink
// topic. A single RawEvent fans out into zero or more OutputEvents,
// one per message found in the batch.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}

// SerializeRecord marshals a record into an OutputEvent keyed by the
// deterministic record ID.
func SerializeRecord(rec NavWarnRecord) (OutputEvent, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize navwarn record: %w", err)
	}
	return OutputEvent{
		Key:   []byte(rec.ID),
		Value: data,
		Headers: map[string]string{
			"hazard":       rec.Hazard,
			"processed_at": rec.ProcessedAt.Format(time.RFC3339),
		},
	}, nil
}
