package schemaio

import (
	"fmt"
	"sort"

	"go.ontologyc.dev/compiler/resolve"
	"go.ontologyc.dev/compiler/schema"
)

// LoadedSchema is the validated, constructed form of a [Document]: every
// Property, Subobject, and Category has been through its constructor and
// every cross-reference has been confirmed to resolve.
type LoadedSchema struct {
	Properties map[string]schema.Property
	Subobjects map[string]schema.Subobject
	Categories resolve.MapUniverse
}

// Load parses data (§6.3 auto-detected JSON/YAML) and validates it into a
// [LoadedSchema]. Warnings are always returned alongside a successful
// result; a non-nil error is always a [*ValidationErrors] or a parse-time
// error wrapping [ErrInvalidDocument] -- in either case no [LoadedSchema]
// is returned and no writes should be attempted (§7).
func Load(data []byte) (*LoadedSchema, []ValidationWarning, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, nil, err
	}

	return Validate(doc)
}

// Validate runs structural checks, reference integrity checks, and
// required/optional promotion over doc, constructing a [LoadedSchema].
func Validate(doc *Document) (*LoadedSchema, []ValidationWarning, error) {
	v := &validator{doc: doc}
	v.run()

	if len(v.errors) > 0 {
		return nil, v.warnings, &ValidationErrors{Errors: v.errors}
	}

	return v.result, v.warnings, nil
}

type validator struct {
	doc      *Document
	errors   []ValidationError
	warnings []ValidationWarning
	result   *LoadedSchema
}

func (v *validator) addError(code, path, format string, args ...any) {
	v.errors = append(v.errors, ValidationError{Code: code, Path: path, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) addWarning(code, path, format string, args ...any) {
	v.warnings = append(v.warnings, ValidationWarning{Code: code, Path: path, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) run() {
	if v.doc.SchemaVersion == "" {
		v.addError(ErrCodeMissingSchemaVersion, "schemaVersion", "schemaVersion is required")
	} else if v.doc.SchemaVersion != "1.0" {
		v.addWarning(WarnSchemaVersion, "schemaVersion", "unrecognized schemaVersion %q, expected \"1.0\"", v.doc.SchemaVersion)
	}

	properties := v.buildProperties()
	subobjects := v.buildSubobjects(properties)
	categories := v.buildCategories(properties, subobjects)

	if len(v.errors) > 0 {
		return
	}

	v.checkUnusedProperties(properties, subobjects, categories)

	v.result = &LoadedSchema{
		Properties: properties,
		Subobjects: subobjects,
		Categories: categories,
	}
}

func (v *validator) buildProperties() map[string]schema.Property {
	properties := make(map[string]schema.Property, len(v.doc.Properties))

	for _, name := range sortedKeys(v.doc.Properties) {
		raw := v.doc.Properties[name]
		path := "properties." + name

		prop, err := schema.NewProperty(schema.PropertySpec{
			Name:                 name,
			Datatype:             schema.Datatype(raw.Datatype),
			Label:                raw.Label,
			Description:          raw.Description,
			AllowedValues:        raw.AllowedValues,
			AllowedNamespace:     raw.AllowedNamespace,
			AllowedCategory:      raw.AllowedCategory,
			AllowsMultipleValues: raw.AllowsMultipleValues,
			HasTemplate:          raw.HasTemplate,
			SubpropertyOf:        raw.SubpropertyOf,
		})
		if err != nil {
			v.addError(ErrCodeInvalidDatatype, path, "%s", err)
			continue
		}

		properties[name] = prop
	}

	for _, name := range sortedKeys(v.doc.Properties) {
		raw := v.doc.Properties[name]
		if raw.SubpropertyOf == "" {
			continue
		}

		if _, ok := properties[raw.SubpropertyOf]; !ok {
			v.addError(ErrCodeUnknownReference, "properties."+name+".subpropertyOf",
				"references unknown property %q", raw.SubpropertyOf)
		}
	}

	return properties
}

func (v *validator) buildSubobjects(properties map[string]schema.Property) map[string]schema.Subobject {
	subobjects := make(map[string]schema.Subobject, len(v.doc.Subobjects))

	for _, name := range sortedSubKeys(v.doc.Subobjects) {
		raw := v.doc.Subobjects[name]
		path := "subobjects." + name

		for _, p := range append(append([]string(nil), raw.Properties.Required...), raw.Properties.Optional...) {
			if _, ok := properties[p]; !ok {
				v.addError(ErrCodeUnknownReference, path, "references unknown property %q", p)
			}
		}

		sub, err := schema.NewSubobject(schema.SubobjectSpec{
			Name:               name,
			RequiredProperties: raw.Properties.Required,
			OptionalProperties: raw.Properties.Optional,
		})
		if err != nil {
			v.addError(ErrCodeInvalidName, path, "%s", err)
			continue
		}

		for _, promoted := range sub.Promoted() {
			v.addWarning(WarnPromotedRequired, path, "%q promoted to required", promoted)
		}

		subobjects[name] = sub
	}

	return subobjects
}

func (v *validator) buildCategories(
	properties map[string]schema.Property,
	subobjects map[string]schema.Subobject,
) resolve.MapUniverse {
	categories := make(resolve.MapUniverse, len(v.doc.Categories))

	names := sortedCatKeys(v.doc.Categories)

	for _, name := range names {
		raw := v.doc.Categories[name]
		path := "categories." + name

		for _, parent := range raw.Parents {
			if _, ok := v.doc.Categories[parent]; !ok {
				v.addError(ErrCodeUnknownParent, path+".parents", "references unknown category %q", parent)
			}
		}

		for _, p := range append(append([]string(nil), raw.Properties.Required...), raw.Properties.Optional...) {
			if _, ok := properties[p]; !ok {
				v.addError(ErrCodeUnknownReference, path+".properties", "references unknown property %q", p)
			}
		}

		for _, s := range append(append([]string(nil), raw.Subobjects.Required...), raw.Subobjects.Optional...) {
			if _, ok := subobjects[s]; !ok {
				v.addError(ErrCodeUnknownReference, path+".subobjects", "references unknown subobject %q", s)
			}
		}

		displaySections := make([]schema.DisplaySection, len(raw.Display.Sections))
		for i, s := range raw.Display.Sections {
			displaySections[i] = schema.DisplaySection{Name: s.Name, Properties: s.Properties}
		}

		formSections := make([]schema.FormSection, len(raw.Forms.Sections))
		for i, s := range raw.Forms.Sections {
			formSections[i] = schema.FormSection{Name: s.Name, Properties: s.Properties}
		}

		cat, err := schema.NewCategory(schema.CategorySpec{
			Name:                    name,
			Parents:                 raw.Parents,
			Label:                   raw.Label,
			Description:             raw.Description,
			RequiredProperties:      raw.Properties.Required,
			OptionalProperties:      raw.Properties.Optional,
			RequiredSubobjects:      raw.Subobjects.Required,
			OptionalSubobjects:      raw.Subobjects.Optional,
			DisplaySections:         displaySections,
			DisplayHeaderProperties: raw.Display.Header,
			FormSections:            formSections,
			TargetNamespace:         raw.TargetNamespace,
		})
		if err != nil {
			v.addError(ErrCodeInvalidName, path, "%s", err)
			continue
		}

		for _, promoted := range cat.PromotedProperties() {
			v.addWarning(WarnPromotedRequired, path+".properties", "%q promoted to required", promoted)
		}

		for _, promoted := range cat.PromotedSubobjects() {
			v.addWarning(WarnPromotedRequired, path+".subobjects", "%q promoted to required", promoted)
		}

		if !cat.HasAnyProperties() {
			v.addWarning(WarnNoProperties, path, "category %q declares no properties of its own", name)
		}

		categories[name] = cat
	}

	return categories
}

// checkUnusedProperties warns about any declared property that no
// category or subobject references, directly or via subpropertyOf.
func (v *validator) checkUnusedProperties(
	properties map[string]schema.Property,
	subobjects map[string]schema.Subobject,
	categories resolve.MapUniverse,
) {
	referenced := make(map[string]bool, len(properties))

	for _, sub := range subobjects {
		for _, p := range sub.RequiredProperties() {
			referenced[p] = true
		}

		for _, p := range sub.OptionalProperties() {
			referenced[p] = true
		}
	}

	for _, cat := range categories {
		for _, p := range cat.RequiredProperties() {
			referenced[p] = true
		}

		for _, p := range cat.OptionalProperties() {
			referenced[p] = true
		}
	}

	for _, p := range properties {
		if p.SubpropertyOf() != "" {
			referenced[p.SubpropertyOf()] = true
		}
	}

	for _, name := range sortedPropertyKeys(properties) {
		if !referenced[name] {
			v.addWarning(WarnUnusedProperty, "properties."+name, "property %q is not referenced by any category or subobject", name)
		}
	}
}

func sortedKeys(m map[string]RawProperty) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

func sortedSubKeys(m map[string]RawSubobject) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

func sortedCatKeys(m map[string]RawCategory) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

func sortedPropertyKeys(m map[string]schema.Property) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
