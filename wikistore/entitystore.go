package wikistore

import (
	"context"
	"fmt"
)

// EditSummary is the edit summary every store write carries, via the
// dedicated system identity (§4.8).
const EditSummary = "ontology compiler: managed content update"

// EntityStore encapsulates the marker-delimited region format for one
// entity kind (category, property, or subobject) and the traversal used
// to enumerate managed entities of that kind. Enumeration is coarse --
// a namespace scan -- but deterministic (§4.8).
type EntityStore struct {
	pages     PageStore
	semantic  SemanticStore
	namespace string
}

// NewEntityStore constructs an [EntityStore] for namespace (e.g.
// "Property", "Category", "Subobject"), backed by pages for reads and
// writes and semantic for enumeration.
func NewEntityStore(pages PageStore, semantic SemanticStore, namespace string) *EntityStore {
	return &EntityStore{pages: pages, semantic: semantic, namespace: namespace}
}

// Title builds the title of name within this store's namespace.
func (s *EntityStore) Title(name string) (Title, error) {
	return MakeTitle(name, s.namespace)
}

// UpdateManagedRegion writes region into the schema-managed comment
// block of name's page (§6.6), preserving any human-authored content
// outside the markers. If the page does not yet exist, it is created
// containing only the marker block.
func (s *EntityStore) UpdateManagedRegion(ctx context.Context, name, region string) Result {
	title, err := s.Title(name)
	if err != nil {
		return Failed(err)
	}

	existing, ok, err := s.pages.Read(ctx, title)
	if err != nil {
		return Failed(err)
	}

	if !ok {
		existing = ""
	}

	updated := UpdateWithinMarkers(existing, region, SchemaRegionStart, SchemaRegionEnd)

	return s.pages.CreateOrUpdate(ctx, title, updated, EditSummary)
}

// WriteManagedPage overwrites name's page with fully-generated content
// (§6.6): used for dispatchers and semantic templates, which are
// entirely generated and never hand-edited.
func (s *EntityStore) WriteManagedPage(ctx context.Context, title Title, content string) Result {
	return s.pages.CreateOrUpdate(ctx, title, content, EditSummary)
}

// CreateIfAbsent writes content to title only if it does not already
// exist (§4.6: "Display stubs are created once and never overwritten.
// Existence is detected by testing for the page, not by content
// inspection.").
func (s *EntityStore) CreateIfAbsent(ctx context.Context, title Title, content string) (Result, created bool) {
	exists, err := s.pages.Exists(ctx, title)
	if err != nil {
		return Failed(err), false
	}

	if exists {
		return Succeeded(), false
	}

	return s.pages.CreateOrUpdate(ctx, title, content, EditSummary), true
}

// Enumerate lists the names of entities this store manages, by scanning
// its namespace in the semantic backend and stripping the namespace
// prefix. The result is sorted by the backend's own ordering; callers
// that need a stable order should sort it themselves.
func (s *EntityStore) Enumerate(ctx context.Context) ([]string, error) {
	titles, err := s.semantic.ListSubjectsInNamespace(ctx, s.namespace)
	if err != nil {
		return nil, fmt.Errorf("wikistore: enumerate %s: %w", s.namespace, err)
	}

	names := make([]string, len(titles))
	for i, t := range titles {
		names[i] = t.Text
	}

	return names, nil
}

// CategoryStore, PropertyStore, and SubobjectStore are [EntityStore]
// specializations fixed to their conventional namespace.
type (
	CategoryStore  struct{ *EntityStore }
	PropertyStore  struct{ *EntityStore }
	SubobjectStore struct{ *EntityStore }
)

// NewCategoryStore constructs a [CategoryStore].
func NewCategoryStore(pages PageStore, semantic SemanticStore) CategoryStore {
	return CategoryStore{NewEntityStore(pages, semantic, "Category")}
}

// NewPropertyStore constructs a [PropertyStore].
func NewPropertyStore(pages PageStore, semantic SemanticStore) PropertyStore {
	return PropertyStore{NewEntityStore(pages, semantic, "Property")}
}

// NewSubobjectStore constructs a [SubobjectStore].
func NewSubobjectStore(pages PageStore, semantic SemanticStore) SubobjectStore {
	return SubobjectStore{NewEntityStore(pages, semantic, "Subobject")}
}
