package api

import (
	"sort"

	"github.com/google/jsonschema-go/jsonschema"

	"go.ontologyc.dev/compiler/schema"
)

// datatypeJSONType maps a [schema.Datatype] to the JSON Schema primitive
// type used to describe a property's value, mirroring the same
// closed-enumeration switch the template/display/input-widget generators
// use elsewhere in this module.
func datatypeJSONType(d schema.Datatype) string {
	switch d {
	case schema.DatatypeNumber, schema.DatatypeQuantity, schema.DatatypeTemperature:
		return "number"
	case schema.DatatypeBoolean:
		return "boolean"
	default:
		return "string"
	}
}

func datatypeJSONFormat(d schema.Datatype) string {
	switch d {
	case schema.DatatypeDate:
		return "date"
	case schema.DatatypeEmail:
		return "email"
	case schema.DatatypeURL:
		return "uri"
	default:
		return ""
	}
}

// propertySchema builds the leaf *jsonschema.Schema for a single
// property, folding in its allowed-value enumeration and multiplicity.
func propertySchema(p schema.Property) *jsonschema.Schema {
	leaf := &jsonschema.Schema{
		Type:        datatypeJSONType(p.Datatype()),
		Description: p.Description(),
	}

	if format := datatypeJSONFormat(p.Datatype()); format != "" {
		leaf.Format = format
	}

	if len(p.AllowedValues()) > 0 {
		leaf.Enum = make([]any, len(p.AllowedValues()))
		for i, v := range p.AllowedValues() {
			leaf.Enum[i] = v
		}
	}

	if !p.AllowsMultipleValues() {
		return leaf
	}

	return &jsonschema.Schema{
		Type:  "array",
		Items: leaf,
	}
}

// subobjectSchema builds the object *jsonschema.Schema for a subobject,
// resolving each of its member properties against properties.
func subobjectSchema(sub schema.Subobject, properties map[string]schema.Property) *jsonschema.Schema {
	out := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema),
	}

	for _, name := range append(append([]string(nil), sub.RequiredProperties()...), sub.OptionalProperties()...) {
		if p, ok := properties[name]; ok {
			out.Properties[name] = propertySchema(p)
		}
	}

	if len(sub.RequiredProperties()) > 0 {
		out.Required = append([]string(nil), sub.RequiredProperties()...)
		sort.Strings(out.Required)
	}

	return out
}

// CategorySchema builds the JSON Schema (Draft 7) describing a single
// effective category: one object schema per category listing its
// resolved properties and subobjects, assembled field by field --
// no validation call is made against it, only construction.
func CategorySchema(cat schema.Category, properties map[string]schema.Property, subobjects map[string]schema.Subobject) *jsonschema.Schema {
	out := &jsonschema.Schema{
		Schema:      "http://json-schema.org/draft-07/schema#",
		Title:       cat.Name(),
		Description: cat.Description(),
		Type:        "object",
		Properties:  make(map[string]*jsonschema.Schema),
	}

	for _, name := range cat.RequiredProperties() {
		if p, ok := properties[name]; ok {
			out.Properties[name] = propertySchema(p)
		}
	}

	for _, name := range cat.OptionalProperties() {
		if p, ok := properties[name]; ok {
			out.Properties[name] = propertySchema(p)
		}
	}

	for _, name := range cat.RequiredSubobjects() {
		if sub, ok := subobjects[name]; ok {
			out.Properties[name] = subobjectSchema(sub, properties)
		}
	}

	for _, name := range cat.OptionalSubobjects() {
		if sub, ok := subobjects[name]; ok {
			out.Properties[name] = subobjectSchema(sub, properties)
		}
	}

	if len(cat.RequiredProperties()) > 0 || len(cat.RequiredSubobjects()) > 0 {
		out.Required = append(append([]string(nil), cat.RequiredProperties()...), cat.RequiredSubobjects()...)
		sort.Strings(out.Required)
	}

	return out
}
