package api_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.ontologyc.dev/compiler/api"
	"go.ontologyc.dev/compiler/schema"
)

func TestCategorySchema_PropertiesAndRequired(t *testing.T) {
	t.Parallel()

	cat := mustCat(t, schema.CategorySpec{
		Name:               "Person",
		RequiredProperties: []string{"Has name"},
		OptionalProperties: []string{"Has email"},
	})

	properties := map[string]schema.Property{
		"Has name":  mustProp(t, schema.PropertySpec{Name: "Has name", Datatype: schema.DatatypeText}),
		"Has email": mustProp(t, schema.PropertySpec{Name: "Has email", Datatype: schema.DatatypeEmail}),
	}

	out := api.CategorySchema(cat, properties, nil)

	assert.Equal(t, "http://json-schema.org/draft-07/schema#", out.Schema)
	assert.Equal(t, "object", out.Type)
	require.Contains(t, out.Properties, "Has name")
	require.Contains(t, out.Properties, "Has email")
	assert.Equal(t, "string", out.Properties["Has name"].Type)
	assert.Equal(t, "email", out.Properties["Has email"].Format)
	assert.Equal(t, []string{"Has name"}, out.Required)
}

func TestCategorySchema_MultiValuedPropertyBecomesArray(t *testing.T) {
	t.Parallel()

	cat := mustCat(t, schema.CategorySpec{
		Name:               "Person",
		OptionalProperties: []string{"Has alias"},
	})

	properties := map[string]schema.Property{
		"Has alias": mustProp(t, schema.PropertySpec{
			Name: "Has alias", Datatype: schema.DatatypeText, AllowsMultipleValues: true,
		}),
	}

	out := api.CategorySchema(cat, properties, nil)

	require.Contains(t, out.Properties, "Has alias")
	assert.Equal(t, "array", out.Properties["Has alias"].Type)
	require.NotNil(t, out.Properties["Has alias"].Items)
	assert.Equal(t, "string", out.Properties["Has alias"].Items.Type)
}

func TestCategorySchema_AllowedValuesBecomeEnum(t *testing.T) {
	t.Parallel()

	cat := mustCat(t, schema.CategorySpec{
		Name:               "Person",
		OptionalProperties: []string{"Has status"},
	})

	properties := map[string]schema.Property{
		"Has status": mustProp(t, schema.PropertySpec{
			Name: "Has status", Datatype: schema.DatatypeText, AllowedValues: []string{"Active", "Retired"},
		}),
	}

	out := api.CategorySchema(cat, properties, nil)

	require.Contains(t, out.Properties, "Has status")
	assert.Equal(t, []any{"Active", "Retired"}, out.Properties["Has status"].Enum)
}

func TestCategorySchema_SubobjectBecomesNestedObject(t *testing.T) {
	t.Parallel()

	sub, err := schema.NewSubobject(schema.SubobjectSpec{
		Name:               "Address",
		RequiredProperties: []string{"Has street"},
	})
	require.NoError(t, err)

	cat := mustCat(t, schema.CategorySpec{
		Name:               "Person",
		RequiredSubobjects: []string{"Address"},
	})

	properties := map[string]schema.Property{
		"Has street": mustProp(t, schema.PropertySpec{Name: "Has street", Datatype: schema.DatatypeText}),
	}

	out := api.CategorySchema(cat, properties, map[string]schema.Subobject{"Address": sub})

	require.Contains(t, out.Properties, "Address")
	assert.Equal(t, "object", out.Properties["Address"].Type)
	assert.Equal(t, []string{"Has street"}, out.Properties["Address"].Required)
}
