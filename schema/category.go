package schema

// DisplaySection is a named, ordered group of properties shown together
// on a display stub.
type DisplaySection struct {
	Name       string
	Properties []string
}

// FormSection is a named, ordered group of properties shown together on
// a data-entry form.
type FormSection struct {
	Name       string
	Properties []string
}

// Category is the identity: name. Immutable once constructed via
// [NewCategory].
type Category struct {
	name                    string
	parents                 []string
	label                   string
	description             string
	requiredProperties      []string
	optionalProperties      []string
	requiredSubobjects      []string
	optionalSubobjects      []string
	displaySections         []DisplaySection
	displayHeaderProperties []string
	formSections            []FormSection
	targetNamespace         string
	promotedProperties      []string
	promotedSubobjects      []string
}

// CategorySpec is the set of fields used to construct a [Category].
type CategorySpec struct {
	Name                    string
	Parents                 []string
	Label                   string
	Description             string
	RequiredProperties      []string
	OptionalProperties      []string
	RequiredSubobjects      []string
	OptionalSubobjects      []string
	DisplaySections         []DisplaySection
	DisplayHeaderProperties []string
	FormSections            []FormSection
	TargetNamespace         string
}

// NewCategory validates spec and returns an immutable [Category].
//
// Property and subobject required/optional lists are normalized per
// [NormalizeNames]: a name in both lists is promoted to required.
// Promoted names are retrievable via [Category.PromotedProperties] and
// [Category.PromotedSubobjects] for the validator to warn on.
func NewCategory(spec CategorySpec) (Category, error) {
	if err := validateName("category", spec.Name); err != nil {
		return Category{}, err
	}

	reqProps, optProps, promotedProps := NormalizeNames(spec.RequiredProperties, spec.OptionalProperties)
	reqSubs, optSubs, promotedSubs := NormalizeNames(spec.RequiredSubobjects, spec.OptionalSubobjects)

	return Category{
		name:                    spec.Name,
		parents:                 append([]string(nil), spec.Parents...),
		label:                   spec.Label,
		description:             spec.Description,
		requiredProperties:      reqProps,
		optionalProperties:      optProps,
		requiredSubobjects:      reqSubs,
		optionalSubobjects:      optSubs,
		displaySections:         copySections(spec.DisplaySections),
		displayHeaderProperties: append([]string(nil), spec.DisplayHeaderProperties...),
		formSections:            copyFormSections(spec.FormSections),
		targetNamespace:         spec.TargetNamespace,
		promotedProperties:      promotedProps,
		promotedSubobjects:      promotedSubs,
	}, nil
}

func copySections(in []DisplaySection) []DisplaySection {
	if len(in) == 0 {
		return nil
	}

	out := make([]DisplaySection, len(in))
	for i, s := range in {
		out[i] = DisplaySection{Name: s.Name, Properties: append([]string(nil), s.Properties...)}
	}

	return out
}

func copyFormSections(in []FormSection) []FormSection {
	if len(in) == 0 {
		return nil
	}

	out := make([]FormSection, len(in))
	for i, s := range in {
		out[i] = FormSection{Name: s.Name, Properties: append([]string(nil), s.Properties...)}
	}

	return out
}

// Name returns the category's identity.
func (c Category) Name() string { return c.name }

// Parents returns the ordered list of direct parent category names.
// Callers must not mutate the returned slice.
func (c Category) Parents() []string { return c.parents }

// Label returns the display label, falling back to the name semantics
// are the caller's responsibility -- this returns exactly what was set.
func (c Category) Label() string { return c.label }

// Description returns the description, or "".
func (c Category) Description() string { return c.description }

// RequiredProperties returns the normalized required property names.
func (c Category) RequiredProperties() []string { return c.requiredProperties }

// OptionalProperties returns the normalized optional property names.
func (c Category) OptionalProperties() []string { return c.optionalProperties }

// RequiredSubobjects returns the normalized required subobject names.
func (c Category) RequiredSubobjects() []string { return c.requiredSubobjects }

// OptionalSubobjects returns the normalized optional subobject names.
func (c Category) OptionalSubobjects() []string { return c.optionalSubobjects }

// DisplaySections returns the ordered display sections.
func (c Category) DisplaySections() []DisplaySection { return c.displaySections }

// DisplayHeaderProperties returns the properties shown in the display
// header, in order.
func (c Category) DisplayHeaderProperties() []string { return c.displayHeaderProperties }

// FormSections returns the ordered form sections.
func (c Category) FormSections() []FormSection { return c.formSections }

// TargetNamespace returns the namespace entities of this category are
// created in, or "" if unset.
func (c Category) TargetNamespace() string { return c.targetNamespace }

// PromotedProperties returns property names promoted from optional to
// required during construction.
func (c Category) PromotedProperties() []string { return c.promotedProperties }

// PromotedSubobjects returns subobject names promoted from optional to
// required during construction.
func (c Category) PromotedSubobjects() []string { return c.promotedSubobjects }

// HasAnyProperties reports whether the category declares any property at
// all, used by the validator to warn on categories with no properties.
func (c Category) HasAnyProperties() bool {
	return len(c.requiredProperties) > 0 || len(c.optionalProperties) > 0
}

// MergeWithParent produces a new [Category] that is self merged on top of
// parent (§4.1). Pure: neither operand is mutated, and no slice in the
// result aliases a slice owned by parent.
//
//   - required = union(parent.required, self.required)
//   - optional = union(parent.optional, self.optional) − required
//   - subobjects merge by the same rule
//   - label/description/targetNamespace: self wins when non-empty,
//     otherwise inherit from parent
//   - displaySections/formSections: sections with the same name are
//     merged by appending novel properties, preserving first-seen order;
//     sections unique to either side are carried over in parent-then-self
//     order
//   - displayHeaderProperties: self wins when non-empty, otherwise parent
//   - parents is never altered by a merge; it always reflects self's own
//     declared parents
func (c Category) MergeWithParent(parent Category) Category {
	reqProps, optProps := mergeSubobjectLists(
		parent.requiredProperties, parent.optionalProperties,
		c.requiredProperties, c.optionalProperties,
	)
	reqSubs, optSubs := mergeSubobjectLists(
		parent.requiredSubobjects, parent.optionalSubobjects,
		c.requiredSubobjects, c.optionalSubobjects,
	)

	merged := Category{
		name:               c.name,
		parents:            append([]string(nil), c.parents...),
		label:              firstNonEmpty(c.label, parent.label),
		description:        firstNonEmpty(c.description, parent.description),
		requiredProperties: reqProps,
		optionalProperties: optProps,
		requiredSubobjects: reqSubs,
		optionalSubobjects: optSubs,
		displaySections:    mergeDisplaySections(parent.displaySections, c.displaySections),
		displayHeaderProperties: func() []string {
			if len(c.displayHeaderProperties) > 0 {
				return append([]string(nil), c.displayHeaderProperties...)
			}

			return append([]string(nil), parent.displayHeaderProperties...)
		}(),
		formSections:    mergeFormSections(parent.formSections, c.formSections),
		targetNamespace: firstNonEmpty(c.targetNamespace, parent.targetNamespace),
	}

	return merged
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}

	return b
}

func mergeDisplaySections(parent, child []DisplaySection) []DisplaySection {
	return mergeNamedSections(parent, child,
		func(s DisplaySection) (string, []string) { return s.Name, s.Properties },
		func(name string, props []string) DisplaySection { return DisplaySection{Name: name, Properties: props} },
	)
}

func mergeFormSections(parent, child []FormSection) []FormSection {
	return mergeNamedSections(parent, child,
		func(s FormSection) (string, []string) { return s.Name, s.Properties },
		func(name string, props []string) FormSection { return FormSection{Name: name, Properties: props} },
	)
}

// mergeNamedSections implements the shared "merge sections with the same
// name by appending novel properties, preserving first-seen order" rule
// for both DisplaySection and FormSection via small accessor closures.
func mergeNamedSections[T any](
	parent, child []T,
	get func(T) (string, []string),
	build func(string, []string) T,
) []T {
	if len(parent) == 0 && len(child) == 0 {
		return nil
	}

	type entry struct {
		name  string
		props []string
		seen  map[string]bool
	}

	var order []string

	byName := make(map[string]*entry)

	add := func(items []T) {
		for _, it := range items {
			name, props := get(it)

			e, ok := byName[name]
			if !ok {
				e = &entry{name: name, seen: make(map[string]bool, len(props))}
				byName[name] = e
				order = append(order, name)
			}

			for _, p := range props {
				if e.seen[p] {
					continue
				}

				e.seen[p] = true

				e.props = append(e.props, p)
			}
		}
	}

	add(parent)
	add(child)

	out := make([]T, 0, len(order))
	for _, name := range order {
		e := byName[name]
		out = append(out, build(e.name, e.props))
	}

	return out
}
