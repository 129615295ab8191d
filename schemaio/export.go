package schemaio

import (
	"encoding/json"
	"fmt"

	"go.ontologyc.dev/compiler/schema"
)

// Export renders loaded back into the canonical [Document] file format
// and marshals it as indented JSON. Re-[Load]ing the result reconstructs
// an equivalent [LoadedSchema] (§8's round-trip invariant): Export never
// reads from a wiki, it only re-serializes what [Load] already
// constructed in memory.
func Export(loaded *LoadedSchema) ([]byte, error) {
	doc := ExportDocument(loaded)

	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("schemaio: export: %w", err)
	}

	return append(encoded, '\n'), nil
}

// ExportDocument renders loaded into the [Document] shape without
// marshaling, for callers that want to inspect or further transform it.
func ExportDocument(loaded *LoadedSchema) *Document {
	doc := &Document{
		SchemaVersion: "1.0",
		Categories:    make(map[string]RawCategory, len(loaded.Categories)),
		Properties:    make(map[string]RawProperty, len(loaded.Properties)),
		Subobjects:    make(map[string]RawSubobject, len(loaded.Subobjects)),
	}

	for name, p := range loaded.Properties {
		doc.Properties[name] = exportProperty(p)
	}

	for name, s := range loaded.Subobjects {
		doc.Subobjects[name] = exportSubobject(s)
	}

	for name, c := range loaded.Categories {
		doc.Categories[name] = exportCategory(c)
	}

	return doc
}

func exportProperty(p schema.Property) RawProperty {
	return RawProperty{
		Datatype:             string(p.Datatype()),
		Label:                p.Label(),
		Description:          p.Description(),
		AllowedValues:        p.AllowedValues(),
		AllowedNamespace:     p.AllowedNamespace(),
		AllowedCategory:      p.AllowedCategory(),
		AllowsMultipleValues: p.AllowsMultipleValues(),
		HasTemplate:          p.HasTemplate(),
		SubpropertyOf:        p.SubpropertyOf(),
	}
}

func exportSubobject(s schema.Subobject) RawSubobject {
	return RawSubobject{
		Properties: RawPropertyList{
			Required: s.RequiredProperties(),
			Optional: s.OptionalProperties(),
		},
	}
}

func exportCategory(c schema.Category) RawCategory {
	return RawCategory{
		Label:       c.Label(),
		Description: c.Description(),
		Parents:     c.Parents(),
		Properties: RawPropertyList{
			Required: c.RequiredProperties(),
			Optional: c.OptionalProperties(),
		},
		Subobjects: RawPropertyList{
			Required: c.RequiredSubobjects(),
			Optional: c.OptionalSubobjects(),
		},
		Display:         exportDisplay(c),
		Forms:           exportForms(c),
		TargetNamespace: c.TargetNamespace(),
	}
}

func exportDisplay(c schema.Category) RawDisplay {
	sections := make([]RawSection, len(c.DisplaySections()))
	for i, s := range c.DisplaySections() {
		sections[i] = RawSection{Name: s.Name, Properties: s.Properties}
	}

	return RawDisplay{Header: c.DisplayHeaderProperties(), Sections: sections}
}

func exportForms(c schema.Category) RawForms {
	sections := make([]RawSection, len(c.FormSections()))
	for i, s := range c.FormSections() {
		sections[i] = RawSection{Name: s.Name, Properties: s.Properties}
	}

	return RawForms{Sections: sections}
}
