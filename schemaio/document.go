package schemaio

// Document is the on-disk schema file format (§6.3), decoded directly
// from either JSON or YAML via struct tags recognized by both
// encoding/json and github.com/goccy/go-yaml.
type Document struct {
	SchemaVersion string                  `json:"schemaVersion" yaml:"schemaVersion"`
	Categories    map[string]RawCategory  `json:"categories"     yaml:"categories"`
	Properties    map[string]RawProperty  `json:"properties"     yaml:"properties"`
	Subobjects    map[string]RawSubobject `json:"subobjects"     yaml:"subobjects"`
}

// RawProperty is the file-format representation of a schema.Property,
// prior to construction/validation.
type RawProperty struct {
	Datatype             string   `json:"datatype"             yaml:"datatype"`
	Label                string   `json:"label,omitempty"      yaml:"label,omitempty"`
	Description          string   `json:"description,omitempty" yaml:"description,omitempty"`
	AllowedValues        []string `json:"allowedValues,omitempty" yaml:"allowedValues,omitempty"`
	AllowedNamespace     string   `json:"allowedNamespace,omitempty" yaml:"allowedNamespace,omitempty"`
	AllowedCategory      string   `json:"allowedCategory,omitempty"  yaml:"allowedCategory,omitempty"`
	AllowsMultipleValues bool     `json:"allowsMultipleValues,omitempty" yaml:"allowsMultipleValues,omitempty"`
	HasTemplate          string   `json:"hasTemplate,omitempty" yaml:"hasTemplate,omitempty"`
	SubpropertyOf        string   `json:"subpropertyOf,omitempty" yaml:"subpropertyOf,omitempty"`
}

// RawPropertyList is the {required, optional} shape shared by
// categories.properties and subobjects.properties.
type RawPropertyList struct {
	Required []string `json:"required,omitempty" yaml:"required,omitempty"`
	Optional []string `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// RawSubobject is the file-format representation of a schema.Subobject.
type RawSubobject struct {
	Properties RawPropertyList `json:"properties" yaml:"properties"`
}

// RawSection is the file-format {name, properties} shape shared by
// display.sections and forms.sections.
type RawSection struct {
	Name       string   `json:"name"       yaml:"name"`
	Properties []string `json:"properties" yaml:"properties"`
}

// RawDisplay is the file-format representation of a category's display
// configuration.
type RawDisplay struct {
	Header   []string     `json:"header,omitempty"   yaml:"header,omitempty"`
	Sections []RawSection `json:"sections,omitempty" yaml:"sections,omitempty"`
}

// RawForms is the file-format representation of a category's form
// configuration.
type RawForms struct {
	Sections []RawSection `json:"sections,omitempty" yaml:"sections,omitempty"`
}

// RawCategory is the file-format representation of a schema.Category,
// prior to construction/validation.
type RawCategory struct {
	Label           string          `json:"label,omitempty"       yaml:"label,omitempty"`
	Description     string          `json:"description,omitempty" yaml:"description,omitempty"`
	Parents         []string        `json:"parents,omitempty"     yaml:"parents,omitempty"`
	Properties      RawPropertyList `json:"properties,omitempty"  yaml:"properties,omitempty"`
	Subobjects      RawPropertyList `json:"subobjects,omitempty"  yaml:"subobjects,omitempty"`
	Display         RawDisplay      `json:"display,omitempty"     yaml:"display,omitempty"`
	Forms           RawForms        `json:"forms,omitempty"       yaml:"forms,omitempty"`
	TargetNamespace string          `json:"targetNamespace,omitempty" yaml:"targetNamespace,omitempty"`
}
