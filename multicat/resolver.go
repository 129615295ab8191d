package multicat

import (
	"errors"
	"fmt"
	"strings"

	"go.ontologyc.dev/compiler/resolve"
	"go.ontologyc.dev/compiler/schema"
)

// ErrNoCategories is returned when Resolve is called with an empty
// category list (§6.4: "Empty categories → argument error").
var ErrNoCategories = errors.New("at least one category is required")

// ErrUnknownCategories is returned when one or more requested categories
// do not resolve. The entire request fails -- there is no partial
// resolution (§6.4).
type ErrUnknownCategories struct {
	Names []string
}

func (e *ErrUnknownCategories) Error() string {
	return fmt.Sprintf("unknown categories: %s", strings.Join(e.Names, ", "))
}

// ResolvedPropertySet is the result of resolving a set of categories
// (§4.3). A name appears in at most one of RequiredProperties/
// OptionalProperties; PropertySources is non-empty for every listed
// property. The same invariants hold for subobjects.
type ResolvedPropertySet struct {
	CategoryNames []string

	RequiredProperties []string
	OptionalProperties []string
	PropertySources    map[string][]string

	RequiredSubobjects []string
	OptionalSubobjects []string
	SubobjectSources   map[string][]string
}

// Shared reports whether name (a property or subobject) was contributed
// by two or more input categories.
func (s *ResolvedPropertySet) Shared(name string) bool {
	if srcs, ok := s.PropertySources[name]; ok {
		return len(srcs) >= 2
	}

	if srcs, ok := s.SubobjectSources[name]; ok {
		return len(srcs) >= 2
	}

	return false
}

// IsRequiredProperty reports whether name is in the required property
// output.
func (s *ResolvedPropertySet) IsRequiredProperty(name string) bool {
	for _, p := range s.RequiredProperties {
		if p == name {
			return true
		}
	}

	return false
}

// IsRequiredSubobject reports whether name is in the required subobject
// output.
func (s *ResolvedPropertySet) IsRequiredSubobject(name string) bool {
	for _, p := range s.RequiredSubobjects {
		if p == name {
			return true
		}
	}

	return false
}

// accumulator tracks cross-category merge state for either properties or
// subobjects: first-seen order, required-wins, and source attribution.
type accumulator struct {
	order    []string
	seen     map[string]bool
	required map[string]bool
	sources  map[string][]string
}

func newAccumulator() *accumulator {
	return &accumulator{
		seen:     make(map[string]bool),
		required: make(map[string]bool),
		sources:  make(map[string][]string),
	}
}

// add records that category contributes name, with isRequired indicating
// whether it is required in that category's effective set.
func (a *accumulator) add(name, category string, isRequired bool) {
	if !a.seen[name] {
		a.seen[name] = true
		a.order = append(a.order, name)
	}

	if isRequired {
		a.required[name] = true
	}

	a.sources[name] = append(a.sources[name], category)
}

// split returns (required, optional) in first-appearance order, required
// wins over optional per-name.
func (a *accumulator) split() (required, optional []string) {
	for _, name := range a.order {
		if a.required[name] {
			required = append(required, name)
		} else {
			optional = append(optional, name)
		}
	}

	return required, optional
}

// Resolve merges the effective categories named by categories (in the
// given order) into a single [ResolvedPropertySet] (§4.3). Categories may
// be supplied with or without a "Category:" prefix trimmed by the caller;
// this function expects already-normalized bare names (see
// [schema.StripCategoryPrefix], applied by the API layer in §6.4 before
// calling Resolve).
func Resolve(r *resolve.Resolver, categories []string) (*ResolvedPropertySet, error) {
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}

	effectives := make([]schema.Category, len(categories))

	var unknown []string

	for i, name := range categories {
		eff, err := r.Effective(name)
		if err != nil {
			if errors.Is(err, resolve.ErrUnknownCategory) {
				unknown = append(unknown, name)
				continue
			}

			return nil, err
		}

		effectives[i] = eff
	}

	if len(unknown) > 0 {
		return nil, &ErrUnknownCategories{Names: unknown}
	}

	props := newAccumulator()
	subs := newAccumulator()

	for i, eff := range effectives {
		category := categories[i]

		for _, name := range eff.RequiredProperties() {
			props.add(name, category, true)
		}

		for _, name := range eff.OptionalProperties() {
			props.add(name, category, false)
		}

		for _, name := range eff.RequiredSubobjects() {
			subs.add(name, category, true)
		}

		for _, name := range eff.OptionalSubobjects() {
			subs.add(name, category, false)
		}
	}

	reqProps, optProps := props.split()
	reqSubs, optSubs := subs.split()

	return &ResolvedPropertySet{
		CategoryNames:      append([]string(nil), categories...),
		RequiredProperties: reqProps,
		OptionalProperties: optProps,
		PropertySources:    props.sources,
		RequiredSubobjects: reqSubs,
		OptionalSubobjects: optSubs,
		SubobjectSources:   subs.sources,
	}, nil
}
