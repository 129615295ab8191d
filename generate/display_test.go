package generate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.ontologyc.dev/compiler/generate"
	"go.ontologyc.dev/compiler/schema"
)

func TestDefaultDisplayStub_PageUsesColonLink(t *testing.T) {
	t.Parallel()

	cat, err := schema.NewCategory(schema.CategorySpec{
		Name:               "Employee",
		RequiredProperties: []string{"Has manager"},
	})
	require.NoError(t, err)

	properties := map[string]schema.Property{
		"Has manager": mustProperty(t, schema.PropertySpec{Name: "Has manager", Datatype: schema.DatatypePage}),
	}

	out, err := generate.DefaultDisplayStub(cat, properties)
	require.NoError(t, err)
	assert.Contains(t, out, "[[:{{{manager|}}}]]")
}

func TestDefaultDisplayStub_ExplicitHasTemplateWins(t *testing.T) {
	t.Parallel()

	cat, err := schema.NewCategory(schema.CategorySpec{
		Name:               "Employee",
		RequiredProperties: []string{"Has manager"},
	})
	require.NoError(t, err)

	properties := map[string]schema.Property{
		"Has manager": mustProperty(t, schema.PropertySpec{
			Name: "Has manager", Datatype: schema.DatatypePage, HasTemplate: "Template:PersonLink",
		}),
	}

	out, err := generate.DefaultDisplayStub(cat, properties)
	require.NoError(t, err)
	assert.Contains(t, out, "{{Template:PersonLink|{{{manager|}}}}}")
}

func TestDefaultDisplayStub_DefaultTextFallback(t *testing.T) {
	t.Parallel()

	cat, err := schema.NewCategory(schema.CategorySpec{
		Name:               "Person",
		RequiredProperties: []string{"Has name"},
	})
	require.NoError(t, err)

	properties := map[string]schema.Property{
		"Has name": mustProperty(t, schema.PropertySpec{Name: "Has name", Datatype: schema.DatatypeText}),
	}

	out, err := generate.DefaultDisplayStub(cat, properties)
	require.NoError(t, err)
	assert.Contains(t, out, "{{{name|}}}")
}

func TestSelectInputWidget_PriorityOrder(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		spec schema.PropertySpec
		want generate.InputWidget
	}{
		"enumerated values win over datatype": {
			spec: schema.PropertySpec{Name: "Has status", Datatype: schema.DatatypeText, AllowedValues: []string{"Open", "Closed"}},
			want: generate.WidgetDropdown,
		},
		"namespace restriction selects combobox": {
			spec: schema.PropertySpec{Name: "Has manager", Datatype: schema.DatatypePage, AllowedNamespace: "Employee"},
			want: generate.WidgetCombobox,
		},
		"category restriction selects combobox": {
			spec: schema.PropertySpec{Name: "Has manager", Datatype: schema.DatatypePage, AllowedCategory: "Employee"},
			want: generate.WidgetCombobox,
		},
		"bare page type selects combobox": {
			spec: schema.PropertySpec{Name: "Has manager", Datatype: schema.DatatypePage},
			want: generate.WidgetCombobox,
		},
		"code selects textarea": {
			spec: schema.PropertySpec{Name: "Has snippet", Datatype: schema.DatatypeCode},
			want: generate.WidgetTextarea,
		},
		"date selects datepicker": {
			spec: schema.PropertySpec{Name: "Has birthday", Datatype: schema.DatatypeDate},
			want: generate.WidgetDatePicker,
		},
		"boolean selects checkbox": {
			spec: schema.PropertySpec{Name: "Has active", Datatype: schema.DatatypeBoolean},
			want: generate.WidgetCheckbox,
		},
		"default text": {
			spec: schema.PropertySpec{Name: "Has note", Datatype: schema.DatatypeText},
			want: generate.WidgetText,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p := mustProperty(t, tc.spec)
			assert.Equal(t, tc.want, generate.SelectInputWidget(p))
		})
	}
}

func TestAutocompleteSource_CategoryWinsOverNamespace(t *testing.T) {
	t.Parallel()

	p := mustProperty(t, schema.PropertySpec{
		Name: "Has manager", Datatype: schema.DatatypePage,
		AllowedNamespace: "Staff", AllowedCategory: "Employee",
	})

	source, isCategory := generate.AutocompleteSource(p)
	assert.Equal(t, "Employee", source)
	assert.True(t, isCategory)
}
