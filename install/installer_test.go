package install_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.ontologyc.dev/compiler/install"
	"go.ontologyc.dev/compiler/resolve"
	"go.ontologyc.dev/compiler/schema"
	"go.ontologyc.dev/compiler/state"
	"go.ontologyc.dev/compiler/wikistore"
)

type fakePageStore struct {
	pages      map[string]string
	failTitles map[string]bool
}

func newFakePageStore() *fakePageStore {
	return &fakePageStore{pages: make(map[string]string), failTitles: make(map[string]bool)}
}

func (f *fakePageStore) Exists(_ context.Context, t wikistore.Title) (bool, error) {
	_, ok := f.pages[t.String()]
	return ok, nil
}

func (f *fakePageStore) Read(_ context.Context, t wikistore.Title) (string, bool, error) {
	c, ok := f.pages[t.String()]
	return c, ok, nil
}

func (f *fakePageStore) CreateOrUpdate(_ context.Context, t wikistore.Title, content, _ string) wikistore.Result {
	if f.failTitles[t.String()] {
		return wikistore.Failed(errors.New("simulated write failure"))
	}

	f.pages[t.String()] = content

	return wikistore.Succeeded()
}

func (f *fakePageStore) Delete(_ context.Context, t wikistore.Title, _ string) wikistore.Result {
	delete(f.pages, t.String())
	return wikistore.Succeeded()
}

func (f *fakePageStore) Purge(_ context.Context, _ wikistore.Title) error { return nil }

type fakeSemanticStore struct {
	flushes int
}

func (fakeSemanticStore) ListSubjectsInNamespace(_ context.Context, _ string) ([]wikistore.Title, error) {
	return nil, nil
}

func (fakeSemanticStore) ReadProperty(_ context.Context, _ wikistore.Title, _ string) ([]string, error) {
	return nil, nil
}

func (f *fakeSemanticStore) FlushPending(_ context.Context) error {
	f.flushes++
	return nil
}

func mustProp(t *testing.T, spec schema.PropertySpec) schema.Property {
	t.Helper()

	p, err := schema.NewProperty(spec)
	require.NoError(t, err)

	return p
}

func mustCat(t *testing.T, spec schema.CategorySpec) schema.Category {
	t.Helper()

	c, err := schema.NewCategory(spec)
	require.NoError(t, err)

	return c
}

func testInput(t *testing.T) install.Input {
	t.Helper()

	universe := resolve.MapUniverse{
		"Person": mustCat(t, schema.CategorySpec{
			Name:               "Person",
			RequiredProperties: []string{"Has name"},
		}),
	}

	return install.Input{
		Categories: universe,
		Properties: map[string]schema.Property{
			"Has name": mustProp(t, schema.PropertySpec{Name: "Has name", Datatype: schema.DatatypeText}),
		},
		Subobjects: map[string]schema.Subobject{},
		Resolver:   resolve.New(universe),
	}
}

func TestInstall_RunsAllLayersAndFlushesBetweenEach(t *testing.T) {
	t.Parallel()

	pages := newFakePageStore()
	semantic := &fakeSemanticStore{}
	stateMgr := state.NewManager(pages)

	in := install.New(pages, semantic, stateMgr, false)

	events := make(chan install.Event, 256)

	err := in.Install(context.Background(), testInput(t), events)
	require.NoError(t, err)
	close(events)

	assert.Equal(t, 5, semantic.flushes)

	var layersDone int

	for e := range events {
		if e.Kind == install.EventLayerDone {
			layersDone++
		}
	}

	assert.Equal(t, 5, layersDone)
}

func TestInstall_SecondRunIsNoOp(t *testing.T) {
	t.Parallel()

	pages := newFakePageStore()
	semantic := &fakeSemanticStore{}
	stateMgr := state.NewManager(pages)

	in := install.New(pages, semantic, stateMgr, false)

	ctx := context.Background()
	input := testInput(t)

	require.NoError(t, in.Install(ctx, input, nil))

	pagesBefore := make(map[string]string, len(pages.pages))
	for k, v := range pages.pages {
		pagesBefore[k] = v
	}

	events := make(chan install.Event, 256)
	require.NoError(t, in.Install(ctx, input, events))
	close(events)

	for k, v := range pagesBefore {
		assert.Equal(t, v, pages.pages[k])
	}

	var written, skipped int

	for e := range events {
		switch e.Kind {
		case install.EventEntityWritten:
			written++
		case install.EventEntitySkipped:
			skipped++
		}
	}

	assert.Zero(t, written)
	assert.Positive(t, skipped)
}

func TestInstall_PropertyAnnotationsLayerPreservesTypeDeclaration(t *testing.T) {
	t.Parallel()

	pages := newFakePageStore()
	semantic := &fakeSemanticStore{}
	stateMgr := state.NewManager(pages)

	in := install.New(pages, semantic, stateMgr, false)

	require.NoError(t, in.Install(context.Background(), testInput(t), nil))

	content, ok, err := pages.Read(context.Background(), wikistore.Title{Namespace: "Property", Text: "Has name"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, content, "[[Has type::Text]]")
}

func TestInstall_WriteFailureIsReportedAsEventNotError(t *testing.T) {
	t.Parallel()

	pages := newFakePageStore()
	pages.failTitles["Category:Person"] = true

	semantic := &fakeSemanticStore{}
	stateMgr := state.NewManager(pages)

	in := install.New(pages, semantic, stateMgr, false)

	events := make(chan install.Event, 256)

	err := in.Install(context.Background(), testInput(t), events)
	require.NoError(t, err)
	close(events)

	var sawFailure bool

	for e := range events {
		if e.Kind == install.EventEntityFailed && e.Entity == "Person" {
			sawFailure = true
		}
	}

	assert.True(t, sawFailure)
}

func TestPreview_ReportsNewPagesBeforeFirstInstall(t *testing.T) {
	t.Parallel()

	pages := newFakePageStore()
	stateMgr := state.NewManager(pages)

	diff, err := install.Preview(context.Background(), stateMgr, testInput(t))
	require.NoError(t, err)

	assert.Contains(t, diff.Pages.New, "Category:Person")
	assert.Contains(t, diff.Pages.New, "Property:Has name")
	assert.NotEmpty(t, diff.Templates)
}

func TestPreview_IsEmptyAfterInstall(t *testing.T) {
	t.Parallel()

	pages := newFakePageStore()
	semantic := &fakeSemanticStore{}
	stateMgr := state.NewManager(pages)

	in := install.New(pages, semantic, stateMgr, false)
	input := testInput(t)

	require.NoError(t, in.Install(context.Background(), input, nil))

	diff, err := install.Preview(context.Background(), stateMgr, input)
	require.NoError(t, err)

	assert.Empty(t, diff.Pages.New)
	assert.Empty(t, diff.Pages.Changed)
	assert.Empty(t, diff.Pages.Removed)
	assert.Empty(t, diff.Templates)
}
