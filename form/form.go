package form

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.ontologyc.dev/compiler/multicat"
	"go.ontologyc.dev/compiler/schema"
)

// ErrNoCategories mirrors [multicat.ErrNoCategories]: a form cannot be
// constructed from zero categories.
var ErrNoCategories = errors.New("form: at least one category is required")

const formBanner = "<!-- Generated by the ontology compiler. Do not edit; changes will be overwritten. -->"

// Field is one rendered form field: a property or a subobject reference.
type Field struct {
	Name      string
	Mandatory bool
}

// Section is one template section of a form document: a label (the
// category name) and its ordered fields.
type Section struct {
	Label           string
	PropertyFields  []Field
	SubobjectFields []Field
}

// FormName computes the deterministic form name for a set of categories
// (§4.7): the categories, alphabetically sorted, joined with "+", so
// formName([A,B]) == formName([B,A]).
func FormName(categories []string) string {
	sorted := append([]string(nil), categories...)
	sort.Strings(sorted)

	return strings.Join(sorted, "+")
}

// SingleCategoryForm renders a form with exactly one template section
// for cat's effective property/subobject set.
func SingleCategoryForm(cat schema.Category) string {
	section := Section{
		Label:           cat.Name(),
		PropertyFields:  fields(cat.RequiredProperties(), cat.OptionalProperties()),
		SubobjectFields: fields(cat.RequiredSubobjects(), cat.OptionalSubobjects()),
	}

	var sb strings.Builder

	sb.WriteString(formBanner)
	sb.WriteByte('\n')
	writeSection(&sb, section)
	sb.WriteString(fmt.Sprintf("[[Category:%s]]\n", cat.Name()))

	return sb.String()
}

// CompositeForm renders a form spanning two or more categories (§4.7).
// effectives supplies each category's own effective [schema.Category];
// resolved is the result of resolving the same category set with
// [multicat.Resolve] and determines which fields are shared. Sections
// are ordered by the same alphabetical sort used for the form name: the
// first section carries every shared field plus the first category's
// own category-specific fields; later sections carry only their own
// category-specific fields, filtering out anything shared.
func CompositeForm(categories []string, effectives map[string]schema.Category, resolved *multicat.ResolvedPropertySet) (string, error) {
	if len(categories) == 0 {
		return "", ErrNoCategories
	}

	sorted := append([]string(nil), categories...)
	sort.Strings(sorted)

	allProps := append(append([]string(nil), resolved.RequiredProperties...), resolved.OptionalProperties...)
	allSubs := append(append([]string(nil), resolved.RequiredSubobjects...), resolved.OptionalSubobjects...)

	sections := make([]Section, len(sorted))

	for i, name := range sorted {
		eff, ok := effectives[name]
		if !ok {
			return "", fmt.Errorf("form: no effective category supplied for %q", name)
		}

		ownProps := nameSet(eff.RequiredProperties(), eff.OptionalProperties())
		ownSubs := nameSet(eff.RequiredSubobjects(), eff.OptionalSubobjects())

		isFirst := i == 0

		sections[i] = Section{
			Label:           name,
			PropertyFields:  selectFields(allProps, resolved.IsRequiredProperty, resolved.Shared, ownProps, isFirst),
			SubobjectFields: selectFields(allSubs, resolved.IsRequiredSubobject, resolved.Shared, ownSubs, isFirst),
		}
	}

	var sb strings.Builder

	sb.WriteString(formBanner)
	sb.WriteByte('\n')

	for _, section := range sections {
		writeSection(&sb, section)
	}

	for _, name := range sorted {
		sb.WriteString(fmt.Sprintf("[[Category:%s]]\n", name))
	}

	return sb.String(), nil
}

// selectFields picks the subset of ordered names belonging to this
// section: on the first section, everything shared plus this category's
// own; on later sections, only this category's own non-shared names
// ("filtered by !shared").
func selectFields(ordered []string, isRequired func(string) bool, shared func(string) bool, own map[string]bool, isFirst bool) []Field {
	var out []Field

	for _, name := range ordered {
		switch {
		case isFirst && shared(name):
			out = append(out, Field{Name: name, Mandatory: isRequired(name)})
		case own[name] && !shared(name):
			out = append(out, Field{Name: name, Mandatory: isRequired(name)})
		}
	}

	return out
}

func nameSet(lists ...[]string) map[string]bool {
	set := make(map[string]bool)
	for _, list := range lists {
		for _, name := range list {
			set[name] = true
		}
	}

	return set
}

func fields(required, optional []string) []Field {
	out := make([]Field, 0, len(required)+len(optional))
	for _, name := range required {
		out = append(out, Field{Name: name, Mandatory: true})
	}

	for _, name := range optional {
		out = append(out, Field{Name: name, Mandatory: false})
	}

	return out
}

func writeSection(sb *strings.Builder, section Section) {
	sb.WriteString(fmt.Sprintf("{{{for template|%s|label=%s}}}\n", section.Label, section.Label))

	for _, f := range section.PropertyFields {
		writeField(sb, f)
	}

	for _, f := range section.SubobjectFields {
		writeField(sb, f)
	}

	sb.WriteString("{{{end template}}}\n")
}

func writeField(sb *strings.Builder, f Field) {
	if f.Mandatory {
		sb.WriteString(fmt.Sprintf("{{{field|%s|mandatory=true}}}\n", f.Name))
		return
	}

	sb.WriteString(fmt.Sprintf("{{{field|%s}}}\n", f.Name))
}
