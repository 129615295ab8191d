// Package schema defines the immutable value objects that make up an
// ontology: [Property], [Subobject], and [Category], plus the merge
// algebra that combines a category with its parent (see [Category.MergeWithParent]).
//
// # Design principles
//
// Values in this package are constructed once and never mutated. Merges
// produce new values; they never write through either operand, and a
// merged value never aliases an operand's internal slices/maps. This lets
// the inheritance resolver in the sibling resolve package memoize freely:
// an effective category computed once can be handed out to every caller
// for the lifetime of a resolver instance without defensive copying.
//
// Required/optional lists are normalized at construction time: a name that
// appears in both lists is silently promoted to required (see
// [NewCategory] and [NewSubobject]). The promoted names are recorded on
// the constructed value and reported by [Category.PromotedProperties],
// [Category.PromotedSubobjects], and [Subobject.Promoted].
package schema
