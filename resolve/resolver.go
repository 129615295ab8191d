package resolve

import (
	"errors"
	"fmt"
	"strings"

	"go.ontologyc.dev/compiler/schema"
)

// Sentinel errors returned by [Resolver].
var (
	// ErrUnknownCategory indicates a referenced category is not present
	// in the resolver's universe.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrCycle indicates the parent graph contains a cycle.
	ErrCycle = errors.New("cyclic category hierarchy")
)

// CycleError names the full chain that closed a cycle, e.g. A -> B -> A.
type CycleError struct {
	Chain []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%v: %s", ErrCycle, strings.Join(e.Chain, " -> "))
}

func (e *CycleError) Unwrap() error { return ErrCycle }

// Inconsistency records a C3 merge step that had no good head, and so
// fell back to the deterministic "first non-empty list's head" rule
// instead of guessing (§4.2).
type Inconsistency struct {
	Category string
}

// Universe resolves a category name to its declared (not yet merged)
// [schema.Category]. Implementations are expected to be name-keyed maps;
// the resolver never follows parent pointers stored on a Category.
type Universe interface {
	Lookup(name string) (schema.Category, bool)
}

// MapUniverse is the common in-memory [Universe] implementation: a plain
// map from category name to declared category.
type MapUniverse map[string]schema.Category

// Lookup implements [Universe].
func (m MapUniverse) Lookup(name string) (schema.Category, bool) {
	c, ok := m[name]
	return c, ok
}

// Resolver computes C3 linearizations and effective categories over a
// fixed [Universe]. Ancestors are memoized for the lifetime of the
// Resolver instance; construct a new Resolver per compilation (see the
// design notes: memoization is bounded to the resolver's lifetime, never
// global).
type Resolver struct {
	universe        Universe
	linearizations  map[string][]string
	effective       map[string]schema.Category
	inconsistencies []Inconsistency
}

// New creates a [Resolver] over universe.
func New(universe Universe) *Resolver {
	return &Resolver{
		universe:       universe,
		linearizations: make(map[string][]string),
		effective:      make(map[string]schema.Category),
	}
}

// Inconsistencies returns every inconsistency recorded by linearizations
// computed so far, in the order they were first encountered.
func (r *Resolver) Inconsistencies() []Inconsistency {
	return append([]Inconsistency(nil), r.inconsistencies...)
}

// Linearize returns L(name): the C3 linearization of name's ancestors
// including name itself, memoized by category name. Returns a
// [CycleError] if the parent graph is cyclic, or an error wrapping
// [ErrUnknownCategory] if name or any ancestor it reaches is undeclared.
func (r *Resolver) Linearize(name string) ([]string, error) {
	if cached, ok := r.linearizations[name]; ok {
		return cached, nil
	}

	visiting := make(map[string]bool)
	chain := make([]string, 0, 4)

	lin, err := r.linearize(name, visiting, chain)
	if err != nil {
		return nil, err
	}

	r.linearizations[name] = lin

	return lin, nil
}

func (r *Resolver) linearize(name string, visiting map[string]bool, chain []string) ([]string, error) {
	if cached, ok := r.linearizations[name]; ok {
		return cached, nil
	}

	if visiting[name] {
		return nil, &CycleError{Chain: append(append([]string(nil), chain...), name)}
	}

	cat, ok := r.universe.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}

	visiting[name] = true
	chain = append(chain, name)

	parents := cat.Parents()
	if len(parents) == 0 {
		delete(visiting, name)

		lin := []string{name}
		r.linearizations[name] = lin

		return lin, nil
	}

	parentLins := make([][]string, 0, len(parents)+1)

	for _, p := range parents {
		pl, err := r.linearize(p, visiting, chain)
		if err != nil {
			return nil, err
		}

		parentLins = append(parentLins, pl)
	}

	parentLins = append(parentLins, append([]string(nil), parents...))

	merged, inconsistent := c3Merge(parentLins)
	if inconsistent {
		r.inconsistencies = append(r.inconsistencies, Inconsistency{Category: name})
	}

	delete(visiting, name)

	lin := append([]string{name}, merged...)
	r.linearizations[name] = lin

	return lin, nil
}

// Effective returns the effective category for name: [schema.Category.MergeWithParent]
// applied left-to-right over reverse(L(name)) excluding name itself, so
// the closest ancestor wins over farther ancestors and name wins over
// all. Memoized by category name.
func (r *Resolver) Effective(name string) (schema.Category, error) {
	if cached, ok := r.effective[name]; ok {
		return cached, nil
	}

	lin, err := r.Linearize(name)
	if err != nil {
		return schema.Category{}, err
	}

	self, ok := r.universe.Lookup(name)
	if !ok {
		return schema.Category{}, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}

	// lin = [name, ancestor_closest, ..., ancestor_farthest].
	// Apply mergeWithParent left-to-right over reverse(lin) excluding name,
	// i.e. farthest ancestor first, closest ancestor last, self last of all.
	ancestors := lin[1:]

	result := self
	if len(ancestors) > 0 {
		// Build up starting from the farthest ancestor.
		for i := len(ancestors) - 1; i >= 0; i-- {
			ancestorName := ancestors[i]

			ancestor, ok := r.universe.Lookup(ancestorName)
			if !ok {
				return schema.Category{}, fmt.Errorf("%w: %q", ErrUnknownCategory, ancestorName)
			}

			if i == len(ancestors)-1 {
				result = ancestor
				continue
			}

			result = ancestor.MergeWithParent(result)
		}

		result = self.MergeWithParent(result)
	}

	r.effective[name] = result

	return result, nil
}
