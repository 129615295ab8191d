package multicat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.ontologyc.dev/compiler/multicat"
	"go.ontologyc.dev/compiler/resolve"
	"go.ontologyc.dev/compiler/schema"
)

func mustCat(t *testing.T, spec schema.CategorySpec) schema.Category {
	t.Helper()

	c, err := schema.NewCategory(spec)
	require.NoError(t, err)

	return c
}

func TestResolve_SharedPropertyPromotion(t *testing.T) {
	t.Parallel()

	universe := resolve.MapUniverse{
		"Person": mustCat(t, schema.CategorySpec{
			Name:               "Person",
			RequiredProperties: []string{"Has name"},
		}),
		"Employee": mustCat(t, schema.CategorySpec{
			Name:               "Employee",
			OptionalProperties: []string{"Has name"},
			RequiredProperties: []string{"Has id"},
		}),
	}

	r := resolve.New(universe)

	set, err := multicat.Resolve(r, []string{"Person", "Employee"})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Has name", "Has id"}, set.RequiredProperties)
	assert.Empty(t, set.OptionalProperties)
	assert.ElementsMatch(t, []string{"Person", "Employee"}, set.PropertySources["Has name"])
	assert.True(t, set.Shared("Has name"))
	assert.False(t, set.Shared("Has id"))
}

func TestResolve_SingleCategory_SourcesIsSelf(t *testing.T) {
	t.Parallel()

	universe := resolve.MapUniverse{
		"Person": mustCat(t, schema.CategorySpec{
			Name:               "Person",
			RequiredProperties: []string{"Has name"},
		}),
	}

	r := resolve.New(universe)

	set, err := multicat.Resolve(r, []string{"Person"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Person"}, set.PropertySources["Has name"])
	assert.False(t, set.Shared("Has name"))
}

func TestResolve_DisjointCategories_NoContamination(t *testing.T) {
	t.Parallel()

	universe := resolve.MapUniverse{
		"A": mustCat(t, schema.CategorySpec{Name: "A", RequiredProperties: []string{"Has a"}}),
		"B": mustCat(t, schema.CategorySpec{Name: "B", RequiredProperties: []string{"Has b"}}),
	}

	r := resolve.New(universe)

	set, err := multicat.Resolve(r, []string{"A", "B"})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Has a", "Has b"}, set.RequiredProperties)

	seen := make(map[string]bool)
	for _, p := range set.RequiredProperties {
		assert.False(t, seen[p], "no duplicates allowed")

		seen[p] = true
	}
}

func TestResolve_EmptyCategories(t *testing.T) {
	t.Parallel()

	r := resolve.New(resolve.MapUniverse{})

	_, err := multicat.Resolve(r, nil)
	require.ErrorIs(t, err, multicat.ErrNoCategories)
}

func TestResolve_UnknownCategory_NamesAllMissing(t *testing.T) {
	t.Parallel()

	universe := resolve.MapUniverse{
		"Person": mustCat(t, schema.CategorySpec{Name: "Person"}),
	}

	r := resolve.New(universe)

	_, err := multicat.Resolve(r, []string{"Person", "Ghost1", "Ghost2"})
	require.Error(t, err)

	var unknownErr *multicat.ErrUnknownCategories

	require.ErrorAs(t, err, &unknownErr)
	assert.ElementsMatch(t, []string{"Ghost1", "Ghost2"}, unknownErr.Names)
}

func TestResolve_Idempotent(t *testing.T) {
	t.Parallel()

	universe := resolve.MapUniverse{
		"A": mustCat(t, schema.CategorySpec{Name: "A", RequiredProperties: []string{"Has a"}}),
		"B": mustCat(t, schema.CategorySpec{Name: "B", OptionalProperties: []string{"Has b"}}),
	}

	r := resolve.New(universe)

	set1, err := multicat.Resolve(r, []string{"A", "B"})
	require.NoError(t, err)

	set2, err := multicat.Resolve(r, []string{"A", "B"})
	require.NoError(t, err)

	assert.Equal(t, set1, set2)
}
