package kafka

import (
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"

	"github.com/couchcryptid/navwarn-etl/internal/domain"
)

func TestMapMessageToRawEvent(t *testing.T) {
	now := time.Now()
	msg := kafkago.Message{
		Key:       []byte("key-1"),
		Value:     []byte("HYDROARC 136/25(15).\nBAFFIN BAY.\n192359Z AUG 25\n"),
		Topic:     "navwarn-raw-bulletins",
		Partition: 2,
		Offset:    42,
		Time:      now,
		Headers: []kafkago.Header{
			{Key: "source", Value: []byte("nga-broadcast-warn")},
		},
	}

	raw := mapMessageToRawEvent(msg)

	assert.Equal(t, []byte("key-1"), raw.Key)
	assert.Equal(t, msg.Value, raw.Value)
	assert.Equal(t, "navwarn-raw-bulletins", raw.Topic)
	assert.Equal(t, 2, raw.Partition)
	assert.Equal(t, int64(42), raw.Offset)
	assert.Equal(t, now, raw.Timestamp)
	assert.Equal(t, "nga-broadcast-warn", raw.Headers["source"])
	assert.Nil(t, raw.Commit)
}

func TestMapOutputEventToMessage(t *testing.T) {
	event := domain.OutputEvent{
		Key:   []byte("navwarn-0011223344556677"),
		Value: []byte(`{"id":"navwarn-0011223344556677"}`),
		Headers: map[string]string{
			"hazard":       "derelict vessel",
			"processed_at": "2025-08-20T12:00:00Z",
		},
	}

	msg := mapOutputEventToMessage(event)

	assert.Equal(t, event.Key, msg.Key)
	assert.Equal(t, event.Value, msg.Value)
	assert.Len(t, msg.Headers, 2)
	assert.Equal(t, "hazard", msg.Headers[0].Key)
	assert.Equal(t, []byte("derelict vessel"), msg.Headers[0].Value)
	assert.Equal(t, "processed_at", msg.Headers[1].Key)
	assert.Equal(t, []byte("2025-08-20T12:00:00Z"), msg.Headers[1].Value)
}

func TestMapOutputEventToMessage_NoHeaders(t *testing.T) {
	msg := mapOutputEventToMessage(domain.OutputEvent{Key: []byte("k"), Value: []byte("v")})
	assert.Empty(t, msg.Headers)
}
