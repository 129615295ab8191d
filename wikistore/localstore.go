package wikistore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// LocalPageStore is a [PageStore] backed by a directory on disk, one file
// per title. It exists so cmd/ontologyc can run against a local checkout
// of generated wikitext without a live wiki behind it -- the host's real
// [PageStore] implementation lives outside this module (§1's "out of
// scope: the host wiki runtime"); this is the reference implementation
// the CLI drives standalone.
//
// Safe for concurrent use.
type LocalPageStore struct {
	root string
	mu   sync.Mutex
}

// NewLocalPageStore creates a [LocalPageStore] rooted at dir. dir is
// created on first write if it does not already exist.
func NewLocalPageStore(dir string) *LocalPageStore {
	return &LocalPageStore{root: dir}
}

// path maps a title to its on-disk file path, namespace-first so pages
// naturally group by namespace on disk.
func (s *LocalPageStore) path(t Title) string {
	namespace := t.Namespace
	if namespace == "" {
		namespace = "_main"
	}

	return filepath.Join(s.root, sanitizeSegment(namespace), sanitizeSegment(t.Text)+".wikitext")
}

// sanitizeSegment replaces path separators and other filesystem-hostile
// characters so a title never escapes s.root.
func sanitizeSegment(s string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", ":", "_", "..", "_")
	return replacer.Replace(s)
}

func (s *LocalPageStore) Exists(_ context.Context, t Title) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(s.path(t))
	if err == nil {
		return true, nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, fmt.Errorf("localstore: exists %q: %w", t.String(), err)
}

func (s *LocalPageStore) Read(_ context.Context, t Title) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := os.ReadFile(s.path(t)) //nolint:gosec // title-derived path is sanitized above.
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}

		return "", false, fmt.Errorf("localstore: read %q: %w", t.String(), err)
	}

	return string(content), true, nil
}

func (s *LocalPageStore) CreateOrUpdate(_ context.Context, t Title, content, _ string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	dest := s.path(t)

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return Failed(fmt.Errorf("localstore: mkdir for %q: %w", t.String(), err))
	}

	if err := os.WriteFile(dest, []byte(content), 0o644); err != nil { //nolint:gosec // generated wikitext is not secret.
		return Failed(fmt.Errorf("localstore: write %q: %w", t.String(), err))
	}

	return Succeeded()
}

func (s *LocalPageStore) Delete(_ context.Context, t Title, _ string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(t)); err != nil && !os.IsNotExist(err) {
		return Failed(fmt.Errorf("localstore: delete %q: %w", t.String(), err))
	}

	return Succeeded()
}

// Purge is a no-op: a local directory has no parser cache to invalidate.
func (s *LocalPageStore) Purge(_ context.Context, _ Title) error { return nil }

// LocalSemanticStore is an in-memory [SemanticStore] that records
// property writes synchronously, for standalone CLI runs against
// [LocalPageStore]. FlushPending is always a no-op since there is no
// queued work to drain.
type LocalSemanticStore struct {
	mu         sync.Mutex
	properties map[string]map[string][]string // namespace -> "title\x00property" -> values
	subjects   map[string]map[string]bool     // namespace -> subject text
}

// NewLocalSemanticStore creates an empty [LocalSemanticStore].
func NewLocalSemanticStore() *LocalSemanticStore {
	return &LocalSemanticStore{
		properties: make(map[string]map[string][]string),
		subjects:   make(map[string]map[string]bool),
	}
}

func (s *LocalSemanticStore) key(subject Title, property string) string {
	return subject.String() + "\x00" + property
}

// Record stores values for property on subject, marking subject as a
// member of its own namespace. Used by the CLI's install path to keep
// the local semantic store consistent with what it just wrote to
// [LocalPageStore].
func (s *LocalSemanticStore) Record(subject Title, property string, values []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subjects[subject.Namespace] == nil {
		s.subjects[subject.Namespace] = make(map[string]bool)
	}

	s.subjects[subject.Namespace][subject.Text] = true

	if s.properties[subject.Namespace] == nil {
		s.properties[subject.Namespace] = make(map[string][]string)
	}

	s.properties[subject.Namespace][s.key(subject, property)] = values
}

func (s *LocalSemanticStore) ListSubjectsInNamespace(_ context.Context, namespace string) ([]Title, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	texts := make([]string, 0, len(s.subjects[namespace]))
	for text := range s.subjects[namespace] {
		texts = append(texts, text)
	}

	sort.Strings(texts)

	titles := make([]Title, len(texts))
	for i, text := range texts {
		titles[i] = Title{Namespace: namespace, Text: text}
	}

	return titles, nil
}

func (s *LocalSemanticStore) ReadProperty(_ context.Context, subject Title, property string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.properties[subject.Namespace][s.key(subject, property)], nil
}

// FlushPending is a no-op: [LocalSemanticStore] has no asynchronous
// backend to drain.
func (s *LocalSemanticStore) FlushPending(_ context.Context) error { return nil }
