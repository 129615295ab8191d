package state

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.ontologyc.dev/compiler/wikistore"
)

// StateTitle is the conventional title of the well-known state document
// page (§6.5).
var StateTitle = wikistore.Title{Namespace: "", Text: "SemanticSchemas state"}

// Manager reads and writes the persisted [Document] through a
// [wikistore.PageStore], always as a whole-document read-modify-write
// (§4.9: "never partial-write"). The state document is the only
// writer-contended resource in the system (§5); Manager does not lock --
// last-writer-wins is acceptable because every write is derived from the
// same content-addressed hashes and converges.
type Manager struct {
	pages wikistore.PageStore
	now   func() time.Time
}

// NewManager constructs a [Manager] persisting through pages.
func NewManager(pages wikistore.PageStore) *Manager {
	return &Manager{pages: pages, now: time.Now}
}

// Load reads the current state document, returning a fresh empty
// document if the state page does not yet exist.
func (m *Manager) Load(ctx context.Context) (*Document, error) {
	content, ok, err := m.pages.Read(ctx, StateTitle)
	if err != nil {
		return nil, fmt.Errorf("state: load: %w", err)
	}

	if !ok {
		return NewDocument(), nil
	}

	var doc Document

	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return nil, fmt.Errorf("state: load: %w", err)
	}

	if doc.PageHashes == nil {
		doc.PageHashes = make(map[string]string)
	}

	if doc.TemplateHashes == nil {
		doc.TemplateHashes = make(map[string]TemplateHashes)
	}

	return &doc, nil
}

func (m *Manager) save(ctx context.Context, doc *Document) wikistore.Result {
	doc.LastUpdated = m.now().UTC().Format(time.RFC3339)

	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return wikistore.Failed(err)
	}

	return m.pages.CreateOrUpdate(ctx, StateTitle, string(encoded), wikistore.EditSummary)
}

// RecordPages merges hashes into the current document's pageHashes and
// persists the whole document (§4.9).
func (m *Manager) RecordPages(ctx context.Context, hashes map[string]string) wikistore.Result {
	current, err := m.Load(ctx)
	if err != nil {
		return wikistore.Failed(err)
	}

	next := current.clone()
	for k, v := range hashes {
		next.PageHashes[k] = v
	}

	return m.save(ctx, next)
}

// RecordTemplates merges hashes into the current document's
// templateHashes and persists the whole document (§4.9).
func (m *Manager) RecordTemplates(ctx context.Context, hashes map[string]TemplateHashes) wikistore.Result {
	current, err := m.Load(ctx)
	if err != nil {
		return wikistore.Failed(err)
	}

	next := current.clone()
	for k, v := range hashes {
		next.TemplateHashes[k] = v
	}

	return m.save(ctx, next)
}

// StaleTemplates returns the names in current whose recorded hash
// differs, or which have no recorded entry at all (§4.9).
func (doc *Document) StaleTemplates(current map[string]string) []string {
	var stale []string

	for name, hash := range current {
		entry, ok := doc.TemplateHashes[name]
		if !ok || entry.Generated != hash {
			stale = append(stale, name)
		}
	}

	return stale
}

// PageComparison is the result of [Document.ComparePages]: the titles
// whose content hash changed, are new (no recorded entry), or were
// removed (recorded but absent from current).
type PageComparison struct {
	Changed []string
	New     []string
	Removed []string
}

// ComparePages compares current (title -> content hash) against the
// document's recorded pageHashes (§4.9).
//
// Template-level hashing is what keeps this split meaningful across
// multi-category pages: a page's own hash only changes when its own
// managed region changes, never merely because a template it
// transcludes was regenerated (see [Document.StaleTemplates]).
func (doc *Document) ComparePages(current map[string]string) PageComparison {
	var result PageComparison

	for title, hash := range current {
		recorded, ok := doc.PageHashes[title]
		switch {
		case !ok:
			result.New = append(result.New, title)
		case recorded != hash:
			result.Changed = append(result.Changed, title)
		}
	}

	for title := range doc.PageHashes {
		if _, ok := current[title]; !ok {
			result.Removed = append(result.Removed, title)
		}
	}

	return result
}
