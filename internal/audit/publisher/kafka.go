// Package publisher fans audit events out to Kafka for downstream compliance
// consumers. The in-process store remains the source of truth; publishing is
// best effort and retried only by Kafka's own producer machinery.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"riskdesk/internal/audit"
)

// Kafka publishes audit events to a single topic, keyed by customer id so a
// customer's trail stays ordered within a partition.
type Kafka struct {
	client *kgo.Client
	topic  string
}

// NewKafka connects a producer to the given brokers.
func NewKafka(brokers []string, topic string) (*Kafka, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka client: %w", err)
	}
	return &Kafka{client: client, topic: topic}, nil
}

// wireEvent is the published JSON shape; a separate type so the topic format
// does not pin the domain model.
type wireEvent struct {
	ID         string         `json:"id"`
	Timestamp  string         `json:"timestamp"`
	Type       string         `json:"type"`
	CustomerID string         `json:"customer_id"`
	RequestID  string         `json:"request_id,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
}

// Publish produces one event synchronously. Called from the worker goroutine,
// not from request paths.
func (k *Kafka) Publish(ctx context.Context, event audit.Event) error {
	payload, err := json.Marshal(wireEvent{
		ID:         event.ID,
		Timestamp:  event.Timestamp.Format(time.RFC3339Nano),
		Type:       string(event.Type),
		CustomerID: event.CustomerID.String(),
		RequestID:  event.RequestID,
		Details:    event.Details,
	})
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}

	record := &kgo.Record{
		Topic: k.topic,
		Key:   []byte(event.CustomerID.String()),
		Value: payload,
	}
	if err := k.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce audit event: %w", err)
	}
	return nil
}

// Close flushes and releases the producer.
func (k *Kafka) Close() {
	k.client.Close()
}
