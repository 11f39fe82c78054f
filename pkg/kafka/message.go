package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Message is the unit published to Kafka. Key selects the partition, so
// events keyed by asset id keep per-asset ordering.
type Message struct {
	Key       string
	Value     []byte
	Headers   map[string]string
	Timestamp time.Time
}

// NewEventMessage builds a message carrying a JSON-encoded payload with a
// fresh event id and type header.
func NewEventMessage(eventType, key string, payload any) (Message, error) {
	value, err := json.Marshal(payload)
	if err != nil {
		return Message{}, fmt.Errorf("failed to encode event payload: %w", err)
	}

	return Message{
		Key:   key,
		Value: value,
		Headers: map[string]string{
			"event_id":   uuid.NewString(),
			"event_type": eventType,
		},
		Timestamp: time.Now().UTC(),
	}, nil
}
