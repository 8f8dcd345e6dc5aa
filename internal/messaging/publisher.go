// Package messaging publishes change events to the broker.
package messaging

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/folio-org/search-indexer/internal/adapter"
	"github.com/folio-org/search-indexer/internal/domain"
)

// Publisher defines the interface for publishing change events to the broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes one change event to the given subject
	PublishEvent(ctx context.Context, subject string, event *domain.ChangeEvent) error
}

type jetStreamPublisher struct {
	js   adapter.JetStream
	json adapter.JSON
}

// NewJetStreamPublisher creates a publisher over an established JetStream
// context
func NewJetStreamPublisher(js adapter.JetStream, jsonAdapter adapter.JSON) Publisher {
	return &jetStreamPublisher{js: js, json: jsonAdapter}
}

// PublishEvent publishes one change event. The message id is derived from the
// event identity so broker-side duplicate detection can absorb republishes.
func (p *jetStreamPublisher) PublishEvent(ctx context.Context, subject string, event *domain.ChangeEvent) error {
	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event.ID, err)
	}

	msgID := fmt.Sprintf("%s:%s:%s:%s", event.Tenant, event.ResourceName, event.ID, event.Type)
	if _, err := p.js.Publish(ctx, subject, data, jetstream.WithMsgID(msgID)); err != nil {
		return fmt.Errorf("failed to publish event %s to %s: %w", event.ID, subject, err)
	}

	return nil
}
