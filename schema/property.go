package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Datatype is the closed set of value types a [Property] can hold.
//
// This is modeled as a tagged variant rather than an open interface: the
// enumeration is closed and every consumer (template generator, display
// stub, input-widget mapper) must exhaustively switch over it rather
// than rely on open polymorphism.
type Datatype string

// The full set of supported property datatypes.
const (
	DatatypeText        Datatype = "Text"
	DatatypePage        Datatype = "Page"
	DatatypeDate        Datatype = "Date"
	DatatypeNumber      Datatype = "Number"
	DatatypeEmail       Datatype = "Email"
	DatatypeURL         Datatype = "URL"
	DatatypeBoolean     Datatype = "Boolean"
	DatatypeCode        Datatype = "Code"
	DatatypeQuantity    Datatype = "Quantity"
	DatatypeTemperature Datatype = "Temperature"
	DatatypePhone       Datatype = "Phone"
	DatatypeGeo         Datatype = "Geo"
)

// datatypes is the ordered, exhaustive set used for validation.
var datatypes = []Datatype{
	DatatypeText, DatatypePage, DatatypeDate, DatatypeNumber, DatatypeEmail,
	DatatypeURL, DatatypeBoolean, DatatypeCode, DatatypeQuantity,
	DatatypeTemperature, DatatypePhone, DatatypeGeo,
}

// Valid reports whether d is one of the closed enumeration values.
func (d Datatype) Valid() bool {
	for _, v := range datatypes {
		if v == d {
			return true
		}
	}

	return false
}

// Sentinel errors for [NewProperty] and [NewCategory]/[NewSubobject]
// construction failures. Wrapped with additional context via fmt.Errorf.
var (
	ErrEmptyName          = errors.New("name must not be empty")
	ErrForbiddenCharacter = errors.New("name contains a wiki-forbidden character")
	ErrInvalidDatatype    = errors.New("unknown datatype")
	ErrEmptyAllowedValues = errors.New("allowedValues must be non-empty when present")
	ErrDuplicateValue     = errors.New("allowedValues contains a duplicate")
)

// forbiddenChars are wiki markup characters that can never appear in a
// Property, Subobject, or Category name.
const forbiddenChars = "<>{}|#"

// validateName checks a name against the common invariants shared by
// Property, Subobject, and Category identities: non-empty, and free of
// wiki-forbidden characters.
func validateName(kind, name string) error {
	if name == "" {
		return fmt.Errorf("%s: %w", kind, ErrEmptyName)
	}

	if strings.ContainsAny(name, forbiddenChars) {
		return fmt.Errorf("%s %q: %w", kind, name, ErrForbiddenCharacter)
	}

	return nil
}

// Property is the identity: name, globally scoped. Immutable once
// constructed via [NewProperty].
type Property struct {
	name                 string
	datatype             Datatype
	label                string
	description          string
	allowedValues        []string
	allowedNamespace     string
	allowedCategory      string
	allowsMultipleValues bool
	hasTemplate          string
	subpropertyOf        string
}

// PropertySpec is the set of fields used to construct a [Property].
type PropertySpec struct {
	Name                 string
	Datatype             Datatype
	Label                string
	Description          string
	AllowedValues        []string
	AllowedNamespace     string
	AllowedCategory      string
	AllowsMultipleValues bool
	HasTemplate          string
	SubpropertyOf        string
}

// NewProperty validates spec and returns an immutable [Property].
//
// Invariants enforced: name is non-empty and free of `< > { } | #`; the
// datatype is one of the closed enumeration; if AllowedValues is present
// it is non-empty and its values are unique.
func NewProperty(spec PropertySpec) (Property, error) {
	if err := validateName("property", spec.Name); err != nil {
		return Property{}, err
	}

	if !spec.Datatype.Valid() {
		return Property{}, fmt.Errorf("property %q: %w: %q", spec.Name, ErrInvalidDatatype, spec.Datatype)
	}

	var allowed []string

	if spec.AllowedValues != nil {
		if len(spec.AllowedValues) == 0 {
			return Property{}, fmt.Errorf("property %q: %w", spec.Name, ErrEmptyAllowedValues)
		}

		seen := make(map[string]bool, len(spec.AllowedValues))

		for _, v := range spec.AllowedValues {
			if seen[v] {
				return Property{}, fmt.Errorf("property %q: %w: %q", spec.Name, ErrDuplicateValue, v)
			}

			seen[v] = true
		}

		allowed = append([]string(nil), spec.AllowedValues...)
	}

	return Property{
		name:                 spec.Name,
		datatype:             spec.Datatype,
		label:                spec.Label,
		description:          spec.Description,
		allowedValues:        allowed,
		allowedNamespace:     spec.AllowedNamespace,
		allowedCategory:      spec.AllowedCategory,
		allowsMultipleValues: spec.AllowsMultipleValues,
		hasTemplate:          spec.HasTemplate,
		subpropertyOf:        spec.SubpropertyOf,
	}, nil
}

// Name returns the property's identity.
func (p Property) Name() string { return p.name }

// Datatype returns the property's datatype.
func (p Property) Datatype() Datatype { return p.datatype }

// Label returns the display label, or "" if unset.
func (p Property) Label() string { return p.label }

// Description returns the description, or "" if unset.
func (p Property) Description() string { return p.description }

// AllowedValues returns the closed set of allowed values, or nil if the
// property accepts any value of its datatype. The returned slice must not
// be mutated by callers.
func (p Property) AllowedValues() []string { return p.allowedValues }

// AllowedNamespace returns the namespace restriction for Page-valued
// properties, or "" if unrestricted.
func (p Property) AllowedNamespace() string { return p.allowedNamespace }

// AllowedCategory returns the category restriction for Page-valued
// properties, or "" if unrestricted.
func (p Property) AllowedCategory() string { return p.allowedCategory }

// AllowsMultipleValues reports whether the property accepts more than one
// value per subject.
func (p Property) AllowsMultipleValues() bool { return p.allowsMultipleValues }

// HasTemplate returns the rendering template override, or "" to use the
// datatype default (see the display stub generator's selection rules).
func (p Property) HasTemplate() string { return p.hasTemplate }

// SubpropertyOf returns the parent property name, or "".
func (p Property) SubpropertyOf() string { return p.subpropertyOf }
