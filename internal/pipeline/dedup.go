// Package pipeline is the event ingestion path: it consumes change event
// batches from the broker, deduplicates and filters them, and drives
// preprocessing and staging per tenant.
package pipeline

import (
	"github.com/folio-org/search-indexer/internal/domain"
	"github.com/folio-org/search-indexer/internal/topics"
)

// Deduplicate collapses records sharing a transport key to the most recent by
// delivery timestamp. Only instance, holdings, item and bound-with records
// participate; everything else is forwarded unchanged. When timestamps tie,
// the record later in the batch wins. Relative input order is preserved in
// the output.
func Deduplicate(records []*domain.Record) []*domain.Record {
	winners := make(map[string]int)
	for i, rec := range records {
		if rec.Event == nil || !topics.Deduplicated(rec.Event.ResourceName) {
			continue
		}
		if w, ok := winners[rec.Key]; !ok || rec.Timestamp >= records[w].Timestamp {
			winners[rec.Key] = i
		}
	}

	out := make([]*domain.Record, 0, len(records))
	for i, rec := range records {
		if rec.Event != nil && topics.Deduplicated(rec.Event.ResourceName) && winners[rec.Key] != i {
			continue
		}
		out = append(out, rec)
	}

	return out
}
