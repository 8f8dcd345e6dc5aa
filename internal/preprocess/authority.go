package preprocess

import (
	"context"

	"go.uber.org/zap"

	"github.com/folio-org/search-indexer/internal/domain"
	"github.com/folio-org/search-indexer/internal/logger"
	"github.com/folio-org/search-indexer/internal/metadata"
)

// placeholderDistinctiveType names the sub-event emitted when fan-out yields
// nothing, so deletions of a previously-indexed parent are not silently lost
const placeholderDistinctiveType = "other"

// authorityPreprocessor splits one authority event into per-heading sub-events.
// Field metadata partitions the authority's fields into distinctive-type groups
// (each value becomes its own independently browsable sub-document) and common
// fields copied into every sub-document.
type authorityPreprocessor struct {
	provider metadata.Provider
}

// NewAuthorityPreprocessor creates the authority fan-out preprocessor backed
// by the given field metadata provider
func NewAuthorityPreprocessor(provider metadata.Provider) Preprocessor {
	return &authorityPreprocessor{provider: provider}
}

func (p *authorityPreprocessor) Resource() domain.ResourceType {
	return domain.ResourceTypeAuthority
}

// PrepareEvents fans the event out into per-heading sub-events. CREATE and
// REINDEX enumerate the new representation; DELETE enumerates the old one,
// producing bodyless deletion sub-events. UPDATE combines both enumerations,
// dropping from the deletion set any sub-event id that is also being created,
// so a heading that survives the update is replaced in place rather than
// deleted and recreated.
func (p *authorityPreprocessor) PrepareEvents(ctx context.Context, event *domain.ChangeEvent) ([]*domain.ChangeEvent, error) {
	groups, err := p.provider.FieldGroups(domain.ResourceTypeAuthority)
	if err != nil {
		return nil, err
	}

	var subs []*domain.ChangeEvent
	switch event.Type {
	case domain.EventTypeCreate, domain.EventTypeReindex:
		subs = p.fanOut(groups, event, event.New, event.Type)
	case domain.EventTypeDelete:
		subs = p.fanOut(groups, event, event.Old, domain.EventTypeDelete)
	case domain.EventTypeUpdate:
		created := p.fanOut(groups, event, event.New, domain.EventTypeCreate)
		deleted := p.fanOut(groups, event, event.Old, domain.EventTypeDelete)

		createdIDs := make(map[string]struct{}, len(created))
		for _, sub := range created {
			createdIDs[sub.ID] = struct{}{}
		}
		subs = created
		for _, sub := range deleted {
			if _, replaced := createdIDs[sub.ID]; replaced {
				continue
			}
			subs = append(subs, sub)
		}
	default:
		return []*domain.ChangeEvent{event}, nil
	}

	// Zero headings still yield one placeholder marker so a previously
	// indexed parent document can be retired.
	if len(subs) == 0 {
		id := domain.SubEventID(placeholderDistinctiveType, 0, event.ID)
		subs = append(subs, event.SubEvent(id, domain.EventTypeDelete, nil))
	}

	logger.DebugCtx(ctx, "Prepared authority sub-events",
		zap.String("tenant", event.Tenant),
		zap.String("authority_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.Int("sub_events", len(subs)),
	)

	return subs, nil
}

// fanOut enumerates every distinctive-type field present in the given
// representation and emits one sub-event per value. Deletion sub-events carry
// no body; their ids alone address the documents to retire.
func (p *authorityPreprocessor) fanOut(groups *metadata.FieldGroups, event *domain.ChangeEvent, body map[string]interface{}, eventType domain.EventType) []*domain.ChangeEvent {
	if body == nil {
		return nil
	}

	var subs []*domain.ChangeEvent
	for _, dt := range groups.DistinctiveTypes {
		ordinal := 0
		for _, field := range groups.ByDistinctiveType[dt] {
			for _, value := range fieldValues(body, field) {
				id := domain.SubEventID(dt, ordinal, event.ID)
				ordinal++

				var subBody map[string]interface{}
				if eventType != domain.EventTypeDelete {
					subBody = map[string]interface{}{field: value}
					for _, common := range groups.CommonFields {
						if v, ok := body[common]; ok {
							subBody[common] = v
						}
					}
				}
				subs = append(subs, event.SubEvent(id, eventType, subBody))
			}
		}
	}

	return subs
}

// fieldValues flattens one field's value into its fan-out unit: each element
// of an iterable value, or the scalar itself. Absent and null fields yield
// nothing.
func fieldValues(body map[string]interface{}, field string) []interface{} {
	raw, ok := body[field]
	if !ok || raw == nil {
		return nil
	}
	if values, ok := raw.([]interface{}); ok {
		return values
	}
	return []interface{}{raw}
}
