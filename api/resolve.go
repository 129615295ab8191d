package api

import (
	"errors"

	"go.ontologyc.dev/compiler/multicat"
	"go.ontologyc.dev/compiler/resolve"
	"go.ontologyc.dev/compiler/schema"
)

// defensiveDatatype is substituted for a property's datatype when the
// property cannot be found in the declared store (§6.4: "defaults to
// Page when the property cannot be resolved").
const defensiveDatatype = schema.DatatypePage

// ErrUnauthorized is returned when the caller lacks the edit capability
// required by resolveMultiCategory (§6.4).
var ErrUnauthorized = errors.New("caller lacks edit capability")

// ErrEmptyCategories is returned when categories is empty after
// trimming, matching multicat's "at least one category" argument error.
var ErrEmptyCategories = multicat.ErrNoCategories

// Caller carries the authorization context for an API call. The package
// never inspects anything beyond CanEdit: richer authorization (roles,
// groups) is a host concern, not this package's.
type Caller struct {
	CanEdit bool
}

// PropertyEntry is one resolved property in a [Response].
type PropertyEntry struct {
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Datatype string   `json:"datatype"`
	Required int      `json:"required"`
	Shared   int      `json:"shared"`
	Sources  []string `json:"sources"`
}

// SubobjectEntry is one resolved subobject in a [Response].
type SubobjectEntry struct {
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Required int      `json:"required"`
	Shared   int      `json:"shared"`
	Sources  []string `json:"sources"`
}

// CategoryEntry echoes one of the requested categories in a [Response].
type CategoryEntry struct {
	Name            string  `json:"name"`
	TargetNamespace *string `json:"targetNamespace"`
}

// Response is the shape returned by [ResolveMultiCategory] (§6.4).
type Response struct {
	Properties []PropertyEntry  `json:"properties"`
	Subobjects []SubobjectEntry `json:"subobjects"`
	Categories []CategoryEntry  `json:"categories"`
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}

// ResolveMultiCategory resolves categories against r and store, shaping
// the result into the §6.4 response. Category names may carry a
// "Category:" prefix (stripped case-insensitively) and surrounding
// whitespace (trimmed) before resolution; an unknown category fails the
// entire request, and an empty categories list is an argument error.
func ResolveMultiCategory(caller Caller, r *resolve.Resolver, properties map[string]schema.Property, categories []string) (*Response, error) {
	if !caller.CanEdit {
		return nil, ErrUnauthorized
	}

	normalized := make([]string, 0, len(categories))

	for _, name := range categories {
		stripped := schema.StripCategoryPrefix(name)
		if stripped == "" {
			continue
		}

		normalized = append(normalized, stripped)
	}

	if len(normalized) == 0 {
		return nil, ErrEmptyCategories
	}

	set, err := multicat.Resolve(r, normalized)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		Properties: buildPropertyEntries(set, properties),
		Subobjects: buildSubobjectEntries(set),
		Categories: buildCategoryEntries(r, normalized),
	}

	return resp, nil
}

func buildPropertyEntries(set *multicat.ResolvedPropertySet, properties map[string]schema.Property) []PropertyEntry {
	entries := make([]PropertyEntry, 0, len(set.RequiredProperties)+len(set.OptionalProperties))

	add := func(name string, required bool) {
		datatype := string(defensiveDatatype)
		if p, ok := properties[name]; ok {
			datatype = string(p.Datatype())
		}

		entries = append(entries, PropertyEntry{
			Name:     name,
			Title:    schema.PropertyTitle(name),
			Datatype: datatype,
			Required: boolToInt(required),
			Shared:   boolToInt(set.Shared(name)),
			Sources:  set.PropertySources[name],
		})
	}

	for _, name := range set.RequiredProperties {
		add(name, true)
	}

	for _, name := range set.OptionalProperties {
		add(name, false)
	}

	return entries
}

func buildSubobjectEntries(set *multicat.ResolvedPropertySet) []SubobjectEntry {
	entries := make([]SubobjectEntry, 0, len(set.RequiredSubobjects)+len(set.OptionalSubobjects))

	add := func(name string, required bool) {
		entries = append(entries, SubobjectEntry{
			Name:     name,
			Title:    schema.SubobjectTitle(name),
			Required: boolToInt(required),
			Shared:   boolToInt(set.Shared(name)),
			Sources:  set.SubobjectSources[name],
		})
	}

	for _, name := range set.RequiredSubobjects {
		add(name, true)
	}

	for _, name := range set.OptionalSubobjects {
		add(name, false)
	}

	return entries
}

func buildCategoryEntries(r *resolve.Resolver, names []string) []CategoryEntry {
	entries := make([]CategoryEntry, 0, len(names))

	for _, name := range names {
		entry := CategoryEntry{Name: name}

		if eff, err := r.Effective(name); err == nil {
			if ns := eff.TargetNamespace(); ns != "" {
				entry.TargetNamespace = &ns
			}
		}

		entries = append(entries, entry)
	}

	return entries
}
