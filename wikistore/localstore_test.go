package wikistore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.ontologyc.dev/compiler/wikistore"
)

func TestLocalPageStore_WriteReadExistsDelete(t *testing.T) {
	t.Parallel()

	store := wikistore.NewLocalPageStore(filepath.Join(t.TempDir(), "pages"))
	ctx := context.Background()

	title := wikistore.Title{Namespace: "Category", Text: "Person"}

	ok, err := store.Exists(ctx, title)
	require.NoError(t, err)
	assert.False(t, ok)

	result := store.CreateOrUpdate(ctx, title, "[[Category:Person]]", "summary")
	require.True(t, result.OK)

	ok, err = store.Exists(ctx, title)
	require.NoError(t, err)
	assert.True(t, ok)

	content, ok, err := store.Read(ctx, title)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[[Category:Person]]", content)

	result = store.Delete(ctx, title, "cleanup")
	require.True(t, result.OK)

	_, ok, err = store.Read(ctx, title)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalPageStore_SanitizesTitleForFilesystem(t *testing.T) {
	t.Parallel()

	store := wikistore.NewLocalPageStore(t.TempDir())
	ctx := context.Background()

	title := wikistore.Title{Namespace: "Property", Text: "Has name"}

	result := store.CreateOrUpdate(ctx, title, "content", "summary")
	require.True(t, result.OK)

	content, ok, err := store.Read(ctx, title)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "content", content)
}

func TestLocalSemanticStore_RecordAndList(t *testing.T) {
	t.Parallel()

	store := wikistore.NewLocalSemanticStore()
	ctx := context.Background()

	subject := wikistore.Title{Namespace: "", Text: "Alice"}
	store.Record(subject, "Has name", []string{"Alice"})

	subjects, err := store.ListSubjectsInNamespace(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []wikistore.Title{subject}, subjects)

	values, err := store.ReadProperty(ctx, subject, "Has name")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice"}, values)

	require.NoError(t, store.FlushPending(ctx))
}
