// Package metadata provides resource field descriptions used to split events
// into sub-events. Descriptions are computed once via an explicit Initialize
// step before the pipeline starts consuming.
package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/folio-org/search-indexer/internal/domain"
)

// FieldDescription describes one field of a resource description.
// A non-empty DistinctiveType marks the field as one that becomes its own
// independently browsable sub-document; fields without it are common fields
// copied into every sub-document.
type FieldDescription struct {
	Name            string `json:"name"`
	DistinctiveType string `json:"distinctiveType,omitempty"`
}

// ResourceDescription is the per-resource-type field metadata loaded from the
// description file
type ResourceDescription struct {
	Resource domain.ResourceType `json:"resource"`
	Fields   []FieldDescription  `json:"fields"`
}

// FieldGroups is the precomputed partition of a resource's field names
type FieldGroups struct {
	// ByDistinctiveType maps a distinctive type to the field names carrying it,
	// in stable order
	ByDistinctiveType map[string][]string
	// DistinctiveTypes lists the map's keys in stable order
	DistinctiveTypes []string
	// CommonFields lists the fields copied into every sub-document
	CommonFields []string
}

// Provider exposes precomputed field groups per resource type
//
//go:generate mockgen -source=provider.go -destination=../mocks/metadata.go -package=mocks -mock_names=Provider=MockProvider
type Provider interface {
	// Initialize loads and partitions the descriptions; must be called once
	// before the pipeline starts consuming
	Initialize(ctx context.Context) error
	// FieldGroups returns the partition for a resource type
	FieldGroups(resource domain.ResourceType) (*FieldGroups, error)
	// Reload re-reads the description source, replacing the cached partition
	Reload(ctx context.Context) error
}

type fileProvider struct {
	path string

	mu     sync.RWMutex
	groups map[domain.ResourceType]*FieldGroups
}

// NewFileProvider creates a provider backed by a JSON description file.
// An empty path falls back to the built-in authority description.
func NewFileProvider(path string) Provider {
	return &fileProvider{path: path}
}

// Initialize loads and partitions the descriptions
func (p *fileProvider) Initialize(ctx context.Context) error {
	return p.Reload(ctx)
}

// Reload re-reads the description source, replacing the cached partition
func (p *fileProvider) Reload(_ context.Context) error {
	descriptions, err := p.load()
	if err != nil {
		return err
	}

	groups := make(map[domain.ResourceType]*FieldGroups, len(descriptions))
	for _, desc := range descriptions {
		groups[desc.Resource] = partition(desc.Fields)
	}

	p.mu.Lock()
	p.groups = groups
	p.mu.Unlock()

	return nil
}

// FieldGroups returns the partition for a resource type
func (p *fileProvider) FieldGroups(resource domain.ResourceType) (*FieldGroups, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.groups == nil {
		return nil, fmt.Errorf("metadata provider not initialized")
	}
	groups, ok := p.groups[resource]
	if !ok {
		return nil, fmt.Errorf("no resource description for %q: %w", resource, domain.ErrUnknownResourceType)
	}

	return groups, nil
}

func (p *fileProvider) load() ([]ResourceDescription, error) {
	if p.path == "" {
		return defaultDescriptions(), nil
	}

	data, err := os.ReadFile(p.path) //nolint:gosec,G304 // This should be a trusted file
	if err != nil {
		return nil, fmt.Errorf("failed to read resource description file: %w", err)
	}

	var descriptions []ResourceDescription
	if err := json.Unmarshal(data, &descriptions); err != nil {
		return nil, fmt.Errorf("failed to parse resource description JSON: %w", err)
	}

	return descriptions, nil
}

// partition splits field descriptions into distinctive-type groups and common fields
func partition(fields []FieldDescription) *FieldGroups {
	groups := &FieldGroups{ByDistinctiveType: make(map[string][]string)}

	for _, f := range fields {
		if f.DistinctiveType == "" {
			groups.CommonFields = append(groups.CommonFields, f.Name)
			continue
		}
		groups.ByDistinctiveType[f.DistinctiveType] = append(groups.ByDistinctiveType[f.DistinctiveType], f.Name)
	}

	groups.DistinctiveTypes = make([]string, 0, len(groups.ByDistinctiveType))
	for dt := range groups.ByDistinctiveType {
		groups.DistinctiveTypes = append(groups.DistinctiveTypes, dt)
	}
	sort.Strings(groups.DistinctiveTypes)
	sort.Strings(groups.CommonFields)

	return groups
}

// defaultDescriptions is the built-in authority resource description used when
// no description file is configured
func defaultDescriptions() []ResourceDescription {
	return []ResourceDescription{
		{
			Resource: domain.ResourceTypeAuthority,
			Fields: []FieldDescription{
				{Name: "personalName", DistinctiveType: "personalName"},
				{Name: "sftPersonalName", DistinctiveType: "personalName"},
				{Name: "saftPersonalName", DistinctiveType: "personalName"},
				{Name: "corporateName", DistinctiveType: "corporateName"},
				{Name: "sftCorporateName", DistinctiveType: "corporateName"},
				{Name: "saftCorporateName", DistinctiveType: "corporateName"},
				{Name: "meetingName", DistinctiveType: "meetingName"},
				{Name: "sftMeetingName", DistinctiveType: "meetingName"},
				{Name: "saftMeetingName", DistinctiveType: "meetingName"},
				{Name: "uniformTitle", DistinctiveType: "uniformTitle"},
				{Name: "sftUniformTitle", DistinctiveType: "uniformTitle"},
				{Name: "saftUniformTitle", DistinctiveType: "uniformTitle"},
				{Name: "topicalTerm", DistinctiveType: "topicalTerm"},
				{Name: "sftTopicalTerm", DistinctiveType: "topicalTerm"},
				{Name: "saftTopicalTerm", DistinctiveType: "topicalTerm"},
				{Name: "geographicName", DistinctiveType: "geographicName"},
				{Name: "sftGeographicName", DistinctiveType: "geographicName"},
				{Name: "saftGeographicName", DistinctiveType: "geographicName"},
				{Name: "genreTerm", DistinctiveType: "genreTerm"},
				{Name: "sftGenreTerm", DistinctiveType: "genreTerm"},
				{Name: "saftGenreTerm", DistinctiveType: "genreTerm"},
				{Name: "identifiers"},
				{Name: "subjectHeadings"},
				{Name: "sourceFileId"},
				{Name: "naturalId"},
				{Name: "source"},
				{Name: "metadata"},
			},
		},
	}
}
