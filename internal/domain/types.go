package domain

import (
	"fmt"
	"strings"
)

// ResourceType identifies the kind of inventory resource an event refers to
type ResourceType string

const (
	ResourceTypeInstance            ResourceType = "instance"
	ResourceTypeHoldings            ResourceType = "holdings-record"
	ResourceTypeItem                ResourceType = "item"
	ResourceTypeBoundWith           ResourceType = "bound-with"
	ResourceTypeAuthority           ResourceType = "authority"
	ResourceTypeInstanceContributor ResourceType = "instance-contributor"
	ResourceTypeInstanceSubject     ResourceType = "instance-subject"
	// ResourceTypeUnknown is assigned to events from unrecognized topics.
	// They are routed as inert records, never dropped silently.
	ResourceTypeUnknown ResourceType = "unknown"
)

// EventType represents the kind of change carried by an event
type EventType string

const (
	EventTypeCreate    EventType = "CREATE"
	EventTypeUpdate    EventType = "UPDATE"
	EventTypeDelete    EventType = "DELETE"
	EventTypeDeleteAll EventType = "DELETE_ALL"
	EventTypeReindex   EventType = "REINDEX"
)

// DeleteSubType distinguishes soft deletes from hard deletes
type DeleteSubType string

const (
	DeleteSubTypeSoft DeleteSubType = "SOFT"
	DeleteSubTypeHard DeleteSubType = "HARD"
)

// ConsortiumSourcePrefix marks records that are shadow copies propagated from
// the consortium's central tenant (e.g. source "CONSORTIUM-MARC").
const ConsortiumSourcePrefix = "CONSORTIUM-"

// ChangeEvent represents a single domain change published by the upstream
// inventory system. Identity is (tenant, resourceName, id).
type ChangeEvent struct {
	ID            string                 `json:"id"`
	ResourceName  ResourceType           `json:"resourceName"`
	Tenant        string                 `json:"tenant"`
	Type          EventType              `json:"type"`
	DeleteSubType DeleteSubType          `json:"deleteSubType,omitempty"`
	New           map[string]interface{} `json:"new,omitempty"`
	Old           map[string]interface{} `json:"old,omitempty"`
}

// Valid reports whether the event carries the identity fields required for
// processing. Malformed events are filtered at the boundary, never raised.
func (e *ChangeEvent) Valid() bool {
	return e != nil && e.ID != "" && e.Tenant != "" && e.Type != ""
}

// IsDeletion reports whether the event removes the resource from the index
func (e *ChangeEvent) IsDeletion() bool {
	return e.Type == EventTypeDelete || e.Type == EventTypeDeleteAll
}

// Body returns the representation the event should be processed against:
// the old body for deletions, the new body otherwise.
func (e *ChangeEvent) Body() map[string]interface{} {
	if e.Type == EventTypeDelete {
		return e.Old
	}
	return e.New
}

// StringField extracts a string field from the given representation,
// returning "" when the field is absent or not a string.
func StringField(body map[string]interface{}, name string) string {
	if body == nil {
		return ""
	}
	v, ok := body[name].(string)
	if !ok {
		return ""
	}
	return v
}

// BoolField extracts a bool field from the given representation
func BoolField(body map[string]interface{}, name string) bool {
	if body == nil {
		return false
	}
	v, _ := body[name].(bool)
	return v
}

// SliceField extracts an array field from the given representation,
// returning nil when the field is absent or not an array.
func SliceField(body map[string]interface{}, name string) []interface{} {
	if body == nil {
		return nil
	}
	v, _ := body[name].([]interface{})
	return v
}

// IsConsortiumShadowCopy reports whether the event's new representation is a
// shadow copy propagated from the central tenant. Shadow copies must not
// repeat child extraction already performed for the owning tenant.
func (e *ChangeEvent) IsConsortiumShadowCopy() bool {
	return strings.HasPrefix(StringField(e.New, "source"), ConsortiumSourcePrefix)
}

// SharedStatusChanged reports whether an update toggled the instance's
// consortium shared flag.
func (e *ChangeEvent) SharedStatusChanged() bool {
	if e.Type != EventTypeUpdate {
		return false
	}
	return BoolField(e.New, "shared") != BoolField(e.Old, "shared")
}

// SubEventID synthesizes the id of a derived sub-event so that multiple
// sub-events split from one source event are individually addressable:
// "<distinctiveType><ordinal>_<sourceID>".
func SubEventID(distinctiveType string, ordinal int, sourceID string) string {
	return fmt.Sprintf("%s%d_%s", distinctiveType, ordinal, sourceID)
}

// SubEvent derives a new event from a source event with a synthesized id
// and the given type and body. The tenant and resource name are inherited.
func (e *ChangeEvent) SubEvent(id string, eventType EventType, body map[string]interface{}) *ChangeEvent {
	return &ChangeEvent{
		ID:           id,
		ResourceName: e.ResourceName,
		Tenant:       e.Tenant,
		Type:         eventType,
		New:          body,
	}
}

// Record pairs a transport-level key and delivery timestamp with the decoded
// change event. The timestamp drives last-write-wins deduplication within a
// batch.
type Record struct {
	Topic     string
	Key       string
	Timestamp int64 // delivery timestamp in milliseconds
	Event     *ChangeEvent
}
