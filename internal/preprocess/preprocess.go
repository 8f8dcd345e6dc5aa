// Package preprocess expands inbound change events into the sub-events the
// indexing pipeline persists. Each resource type may register any number of
// preprocessors; the registry applies them in registration order and
// concatenates their outputs.
package preprocess

import (
	"context"

	"github.com/folio-org/search-indexer/internal/domain"
)

// Preprocessor expands one inbound change event into zero or more sub-events
//
//go:generate mockgen -source=preprocess.go -destination=../mocks/preprocess.go -package=mocks -mock_names=Preprocessor=MockPreprocessor
type Preprocessor interface {
	// Resource names the resource type the preprocessor handles
	Resource() domain.ResourceType
	// PrepareEvents expands the event into the sub-events to process downstream
	PrepareEvents(ctx context.Context, event *domain.ChangeEvent) ([]*domain.ChangeEvent, error)
}

// Registry dispatches events to the preprocessors registered for their
// resource type. The registry is built once at startup; variants are
// registered statically, never discovered at runtime.
type Registry struct {
	byResource map[domain.ResourceType][]Preprocessor
}

// NewRegistry builds a registry over the given preprocessors, preserving
// registration order per resource type
func NewRegistry(preprocessors ...Preprocessor) *Registry {
	r := &Registry{byResource: make(map[domain.ResourceType][]Preprocessor)}
	for _, p := range preprocessors {
		r.byResource[p.Resource()] = append(r.byResource[p.Resource()], p)
	}
	return r
}

// PrepareEvents applies every preprocessor registered for the event's resource
// type in registration order and concatenates their outputs. Events without a
// registered preprocessor pass through unchanged.
func (r *Registry) PrepareEvents(ctx context.Context, event *domain.ChangeEvent) ([]*domain.ChangeEvent, error) {
	preprocessors, ok := r.byResource[event.ResourceName]
	if !ok {
		return []*domain.ChangeEvent{event}, nil
	}

	var out []*domain.ChangeEvent
	for _, p := range preprocessors {
		subs, err := p.PrepareEvents(ctx, event)
		if err != nil {
			return nil, err
		}
		out = append(out, subs...)
	}

	return out, nil
}
