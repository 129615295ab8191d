package generate

import "go.ontologyc.dev/compiler/schema"

// NamingHelper centralizes the property-name to template-parameter-name
// mapping so the semantic template, dispatcher, and display stub
// generators agree on it (§4.4). It is a thin wrapper over
// [schema.NormalizeParameterName]; the indirection exists so callers
// depend on one named type rather than a bare function when threading
// the mapping through multiple generators.
type NamingHelper struct{}

// Param returns the template parameter name for a property.
func (NamingHelper) Param(propertyName string) string {
	return schema.NormalizeParameterName(propertyName)
}
