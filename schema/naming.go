package schema

import "strings"

// NormalizeParameterName converts a property name into the template
// parameter name used by the semantic template, dispatcher, and display
// stub generators (§4.4): strip a leading "Has ", replace
// spaces with underscores, lowercase the result, and replace ":" with
// "_". This logic is centralized here -- rather than duplicated in the
// generator and the dispatcher -- so every consumer agrees on the
// mapping.
//
// Examples:
//
//	NormalizeParameterName("Has full name") == "full_name"
//	NormalizeParameterName("Has email")     == "email"
//	NormalizeParameterName("Sub:Category")  == "sub_category"
func NormalizeParameterName(propertyName string) string {
	s := strings.TrimPrefix(propertyName, "Has ")
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, ":", "_")

	return s
}

// PropertyTitle returns the conventional wiki page title for a property
// name, e.g. "Has full name" -> "Property:Has full name".
func PropertyTitle(name string) string {
	return "Property:" + name
}

// SubobjectTitle returns the conventional wiki page title for a
// subobject name, e.g. "Address" -> "Subobject:Address".
func SubobjectTitle(name string) string {
	return "Subobject:" + name
}

// CategoryTitle returns the conventional wiki page title for a category
// name, e.g. "Person" -> "Category:Person".
func CategoryTitle(name string) string {
	return "Category:" + name
}

// StripCategoryPrefix removes a leading "Category:" prefix, matched
// case-insensitively, and trims surrounding whitespace. Used by the
// resolution API (§6.4) to normalize caller-supplied category names.
func StripCategoryPrefix(name string) string {
	trimmed := strings.TrimSpace(name)

	const prefix = "category:"
	if len(trimmed) > len(prefix) && strings.EqualFold(trimmed[:len(prefix)], prefix) {
		return strings.TrimSpace(trimmed[len(prefix):])
	}

	return trimmed
}
