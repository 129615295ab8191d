package wikistore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.ontologyc.dev/compiler/schema"
	"go.ontologyc.dev/compiler/wikistore"
)

type fakePageStore struct {
	pages map[string]string
	fail  bool
}

func newFakePageStore() *fakePageStore {
	return &fakePageStore{pages: make(map[string]string)}
}

func (f *fakePageStore) key(t wikistore.Title) string { return t.String() }

func (f *fakePageStore) Exists(_ context.Context, t wikistore.Title) (bool, error) {
	_, ok := f.pages[f.key(t)]
	return ok, nil
}

func (f *fakePageStore) Read(_ context.Context, t wikistore.Title) (string, bool, error) {
	content, ok := f.pages[f.key(t)]
	return content, ok, nil
}

func (f *fakePageStore) CreateOrUpdate(_ context.Context, t wikistore.Title, content, _ string) wikistore.Result {
	if f.fail {
		return wikistore.Failed(errors.New("simulated write failure"))
	}

	f.pages[f.key(t)] = content

	return wikistore.Succeeded()
}

func (f *fakePageStore) Delete(_ context.Context, t wikistore.Title, _ string) wikistore.Result {
	delete(f.pages, f.key(t))
	return wikistore.Succeeded()
}

func (f *fakePageStore) Purge(_ context.Context, _ wikistore.Title) error { return nil }

type fakeSemanticStore struct{}

func (fakeSemanticStore) ListSubjectsInNamespace(_ context.Context, _ string) ([]wikistore.Title, error) {
	return nil, nil
}

func (fakeSemanticStore) ReadProperty(_ context.Context, _ wikistore.Title, _ string) ([]string, error) {
	return nil, nil
}

func (fakeSemanticStore) FlushPending(_ context.Context) error { return nil }

func TestUpdateWithinMarkers_AppendsWhenAbsent(t *testing.T) {
	t.Parallel()

	out := wikistore.UpdateWithinMarkers("Some prose.", "region", "<!--S-->", "<!--E-->")
	assert.Contains(t, out, "Some prose.")
	assert.Contains(t, out, "<!--S-->\nregion<!--E-->")
}

func TestUpdateWithinMarkers_ReplacesInPlace(t *testing.T) {
	t.Parallel()

	existing := "Before.\n<!--S-->\nold region<!--E-->\nAfter."
	out := wikistore.UpdateWithinMarkers(existing, "new region", "<!--S-->", "<!--E-->")

	assert.Equal(t, "Before.\n<!--S-->\nnew region<!--E-->\nAfter.", out)
}

func TestEntityStore_UpdateManagedRegion_PreservesOutsideContent(t *testing.T) {
	t.Parallel()

	pages := newFakePageStore()
	store := wikistore.NewEntityStore(pages, fakeSemanticStore{}, "Category")

	title, err := store.Title("Person")
	require.NoError(t, err)

	pages.pages[title.String()] = "Human intro.\n" + wikistore.SchemaRegionStart + "\nold\n" + wikistore.SchemaRegionEnd + "\n"

	result := store.UpdateManagedRegion(context.Background(), "Person", "new\n")
	require.True(t, result.OK)

	content, ok, err := pages.Read(context.Background(), title)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, content, "Human intro.")
	assert.Contains(t, content, "new\n")
	assert.NotContains(t, content, "old\n")
}

func TestEntityStore_CreateIfAbsent(t *testing.T) {
	t.Parallel()

	pages := newFakePageStore()
	store := wikistore.NewEntityStore(pages, fakeSemanticStore{}, "Template")

	title, err := store.Title("Person/display")
	require.NoError(t, err)

	result, created := store.CreateIfAbsent(context.Background(), title, "first content")
	require.True(t, result.OK)
	assert.True(t, created)

	result, created = store.CreateIfAbsent(context.Background(), title, "second content")
	require.True(t, result.OK)
	assert.False(t, created, "existence is tested by page presence, never content")

	content, _, _ := pages.Read(context.Background(), title)
	assert.Equal(t, "first content", content)
}

func TestPageCreator_WriteFailurePropagatesAsResult(t *testing.T) {
	t.Parallel()

	pages := newFakePageStore()
	pages.fail = true

	creator := wikistore.NewPageCreator(pages)

	cat, err := schema.NewCategory(schema.CategorySpec{Name: "Person", RequiredProperties: []string{"Has name"}})
	require.NoError(t, err)

	properties := map[string]schema.Property{
		"Has name": func() schema.Property {
			p, _ := schema.NewProperty(schema.PropertySpec{Name: "Has name", Datatype: schema.DatatypeText})
			return p
		}(),
	}

	result := creator.WriteSemanticTemplate(context.Background(), cat, properties)
	assert.False(t, result.OK)
	assert.NotEmpty(t, result.LastError)
}

func TestPageCreator_EnsureDisplayStub_CreatedOnce(t *testing.T) {
	t.Parallel()

	pages := newFakePageStore()
	creator := wikistore.NewPageCreator(pages)

	cat, err := schema.NewCategory(schema.CategorySpec{Name: "Person", RequiredProperties: []string{"Has name"}})
	require.NoError(t, err)

	properties := map[string]schema.Property{
		"Has name": func() schema.Property {
			p, _ := schema.NewProperty(schema.PropertySpec{Name: "Has name", Datatype: schema.DatatypeText})
			return p
		}(),
	}

	_, created := creator.EnsureDisplayStub(context.Background(), cat, properties)
	assert.True(t, created)

	_, created = creator.EnsureDisplayStub(context.Background(), cat, properties)
	assert.False(t, created)
}
