package preprocess

import (
	"context"

	"github.com/folio-org/search-indexer/internal/domain"
	"github.com/folio-org/search-indexer/internal/extract"
)

// instancePreprocessor re-emits the instance event unchanged for indexing and
// drives child resource extraction as a side effect. Shadow copies propagated
// from the consortium's central tenant skip extraction entirely, since the
// owning tenant's event already produced the child rows.
type instancePreprocessor struct {
	extractors    []extract.Extractor
	centralTenant string
}

// NewInstancePreprocessor creates the instance preprocessor. centralTenant is
// the consortium's central tenant id; rows extracted for it are marked shared.
func NewInstancePreprocessor(extractors []extract.Extractor, centralTenant string) Preprocessor {
	return &instancePreprocessor{extractors: extractors, centralTenant: centralTenant}
}

func (p *instancePreprocessor) Resource() domain.ResourceType {
	return domain.ResourceTypeInstance
}

// PrepareEvents returns the original event and routes it to the extractors:
// a sharing transition recomputes the shared flag of existing rows, a shadow
// copy is left alone, and everything else takes the normal extraction path.
func (p *instancePreprocessor) PrepareEvents(ctx context.Context, event *domain.ChangeEvent) ([]*domain.ChangeEvent, error) {
	switch {
	case event.SharedStatusChanged():
		for _, e := range p.extractors {
			if err := e.PersistChildrenOnSharing(ctx, event); err != nil {
				return nil, err
			}
		}
	case event.IsConsortiumShadowCopy():
		// extraction already ran for the owning tenant
	default:
		shared := event.Tenant == p.centralTenant
		events := []*domain.ChangeEvent{event}
		for _, e := range p.extractors {
			if err := e.PersistChildren(ctx, shared, events); err != nil {
				return nil, err
			}
		}
	}

	return []*domain.ChangeEvent{event}, nil
}
