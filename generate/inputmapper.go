package generate

import "go.ontologyc.dev/compiler/schema"

// InputWidget is the closed set of form input widgets the property-input
// mapper can select (§4.7).
type InputWidget string

// The full set of supported input widgets.
const (
	WidgetDropdown   InputWidget = "dropdown"
	WidgetCombobox   InputWidget = "combobox"
	WidgetTextarea   InputWidget = "textarea"
	WidgetDatePicker InputWidget = "datepicker"
	WidgetCheckbox   InputWidget = "checkbox"
	WidgetText       InputWidget = "text"
)

// SelectInputWidget selects the input widget for a property from its
// datatype and constraints, in §4.7's priority order: enumerated
// allowedValues, then a namespace/category autocomplete source, then
// datatype-specific widgets, falling back to plain text.
func SelectInputWidget(p schema.Property) InputWidget {
	if len(p.AllowedValues()) > 0 {
		return WidgetDropdown
	}

	if p.AllowedNamespace() != "" || p.AllowedCategory() != "" {
		return WidgetCombobox
	}

	switch p.Datatype() {
	case schema.DatatypePage:
		return WidgetCombobox
	case schema.DatatypeCode:
		return WidgetTextarea
	case schema.DatatypeDate:
		return WidgetDatePicker
	case schema.DatatypeBoolean:
		return WidgetCheckbox
	default:
		return WidgetText
	}
}

// AutocompleteSource returns the combobox autocomplete source for p, if
// any: a category name takes priority over a namespace restriction when
// both are set ("Page type with range category → combobox against that
// category" in §4.7's priority list). Returns "" when the widget is not
// a combobox driven by an autocomplete source.
func AutocompleteSource(p schema.Property) (source string, isCategory bool) {
	if p.AllowedCategory() != "" {
		return p.AllowedCategory(), true
	}

	if p.AllowedNamespace() != "" {
		return p.AllowedNamespace(), false
	}

	return "", false
}
