// Package topics maps transport topic names to logical resource types.
package topics

import (
	"strings"

	"github.com/folio-org/search-indexer/internal/domain"
)

// Topic name suffixes as published by the upstream inventory system. Subjects
// may carry an environment/tenant prefix (e.g. "folio.diku.inventory.instance"),
// so routing matches on the trailing segments.
const (
	TopicInstance            = "inventory.instance"
	TopicHoldings            = "inventory.holdings-record"
	TopicItem                = "inventory.item"
	TopicBoundWith           = "inventory.bound-with"
	TopicAuthority           = "inventory.authority"
	TopicInstanceContributor = "search.instance-contributor"
	TopicInstanceSubject     = "search.instance-subject"
)

// routes is the static topic suffix → resource type table built once at
// package initialization
var routes = map[string]domain.ResourceType{
	TopicInstance:            domain.ResourceTypeInstance,
	TopicHoldings:            domain.ResourceTypeHoldings,
	TopicItem:                domain.ResourceTypeItem,
	TopicBoundWith:           domain.ResourceTypeBoundWith,
	TopicAuthority:           domain.ResourceTypeAuthority,
	TopicInstanceContributor: domain.ResourceTypeInstanceContributor,
	TopicInstanceSubject:     domain.ResourceTypeInstanceSubject,
}

// Resolve maps a topic name to its logical resource type. Unknown topics
// resolve to ResourceTypeUnknown so the record is routed as inert rather than
// dropped silently.
func Resolve(topic string) domain.ResourceType {
	if rt, ok := routes[topic]; ok {
		return rt
	}
	// Tenant- or environment-prefixed topic names route by suffix.
	for suffix, rt := range routes {
		if strings.HasSuffix(topic, "."+suffix) {
			return rt
		}
	}
	return domain.ResourceTypeUnknown
}

// All returns every routed topic suffix
func All() []string {
	out := make([]string, 0, len(routes))
	for t := range routes {
		out = append(out, t)
	}
	return out
}

// Deduplicated reports whether records of the given resource type participate
// in last-write-wins batch deduplication. A single logical instance mutation
// often arrives as several near-simultaneous records (instance plus nested
// holdings/items); only the latest representation per key should win.
func Deduplicated(rt domain.ResourceType) bool {
	switch rt {
	case domain.ResourceTypeInstance, domain.ResourceTypeHoldings,
		domain.ResourceTypeItem, domain.ResourceTypeBoundWith:
		return true
	}
	return false
}
