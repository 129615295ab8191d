package schema

// Subobject is a named group of properties. Immutable once constructed
// via [NewSubobject].
type Subobject struct {
	name                string
	requiredProperties  []string
	optionalProperties  []string
	promotedOnConstruct []string
}

// SubobjectSpec is the set of fields used to construct a [Subobject].
type SubobjectSpec struct {
	Name               string
	RequiredProperties []string
	OptionalProperties []string
}

// NewSubobject validates spec and returns an immutable [Subobject].
//
// A property name present in both RequiredProperties and
// OptionalProperties is silently promoted to required (see
// [NormalizeNames]); the promoted names are recorded and retrievable via
// [Subobject.Promoted] so the loader/validator can emit a warning.
func NewSubobject(spec SubobjectSpec) (Subobject, error) {
	if err := validateName("subobject", spec.Name); err != nil {
		return Subobject{}, err
	}

	req, opt, promoted := NormalizeNames(spec.RequiredProperties, spec.OptionalProperties)

	return Subobject{
		name:                spec.Name,
		requiredProperties:  req,
		optionalProperties:  opt,
		promotedOnConstruct: promoted,
	}, nil
}

// Name returns the subobject's identity.
func (s Subobject) Name() string { return s.name }

// RequiredProperties returns the normalized required property names.
// Callers must not mutate the returned slice.
func (s Subobject) RequiredProperties() []string { return s.requiredProperties }

// OptionalProperties returns the normalized optional property names.
// Callers must not mutate the returned slice.
func (s Subobject) OptionalProperties() []string { return s.optionalProperties }

// Promoted returns the property names that were moved from optional to
// required during construction, in first-seen order. Empty if none were.
func (s Subobject) Promoted() []string { return s.promotedOnConstruct }

// mergeSubobjectLists merges two (required, optional) pairs using the
// same rule [Category.MergeWithParent] applies to subobjects: required is
// the union, optional is the union minus required.
func mergeSubobjectLists(parentReq, parentOpt, childReq, childOpt []string) (req, opt []string) {
	req = union(parentReq, childReq)
	opt = subtract(union(parentOpt, childOpt), req)

	return req, opt
}
