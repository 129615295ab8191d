package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.ontologyc.dev/compiler/form"
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

func TestFormName_IgnoresInputOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Employee+Person", form.FormName([]string{"Employee", "Person"}))
	assert.Equal(t, "Employee+Person", form.FormName([]string{"Person", "Employee"}))
}

func TestSingleCategoryForm_MandatoryMarker(t *testing.T) {
	t.Parallel()

	cat := mustCat(t, schema.CategorySpec{
		Name:               "Person",
		RequiredProperties: []string{"Has name"},
		OptionalProperties: []string{"Has nickname"},
	})

	out := form.SingleCategoryForm(cat)

	assert.Contains(t, out, "{{{field|Has name|mandatory=true}}}")
	assert.Contains(t, out, "{{{field|Has nickname}}}")
	assert.NotContains(t, out, "Has nickname|mandatory")
	assert.Contains(t, out, "[[Category:Person]]")
}

func universe() *resolve.Resolver {
	person, _ := schema.NewCategory(schema.CategorySpec{
		Name:               "Person",
		RequiredProperties: []string{"Has name"},
		OptionalProperties: []string{"Has nickname"},
	})
	employee, _ := schema.NewCategory(schema.CategorySpec{
		Name:               "Employee",
		Parents:            []string{"Person"},
		RequiredProperties: []string{"Has id"},
		OptionalProperties: []string{"Has name"},
	})

	mu := resolve.MapUniverse{"Person": person, "Employee": employee}

	return resolve.New(mu)
}

func TestCompositeForm_SharedPropertyInFirstSectionOnly(t *testing.T) {
	t.Parallel()

	r := universe()

	personEff, err := r.Effective("Person")
	require.NoError(t, err)

	employeeEff, err := r.Effective("Employee")
	require.NoError(t, err)

	resolved, err := multicat.Resolve(r, []string{"Employee", "Person"})
	require.NoError(t, err)

	out, err := form.CompositeForm([]string{"Employee", "Person"},
		map[string]schema.Category{"Person": personEff, "Employee": employeeEff}, resolved)
	require.NoError(t, err)

	// Employee sorts before Person alphabetically, so it is the first section.
	empIdx := indexOf(t, out, "{{{for template|Employee|label=Employee}}}")
	persIdx := indexOf(t, out, "{{{for template|Person|label=Person}}}")
	require.Less(t, empIdx, persIdx)

	nameIdx := indexOf(t, out, "{{{field|Has name|mandatory=true}}}")
	require.Greater(t, nameIdx, empIdx)
	require.Less(t, nameIdx, persIdx, "shared field Has name belongs to the first section only")

	assert.NotContains(t, out[persIdx:], "Has name")
	assert.Contains(t, out, "{{{field|Has id|mandatory=true}}}")
	assert.Contains(t, out, "[[Category:Employee]]")
	assert.Contains(t, out, "[[Category:Person]]")
}

func indexOf(t *testing.T, haystack, needle string) int {
	t.Helper()

	idx := -1

	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			idx = i
			break
		}
	}

	require.GreaterOrEqual(t, idx, 0, "expected to find %q", needle)

	return idx
}
