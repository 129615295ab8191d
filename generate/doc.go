// Package generate renders the wikitext artifacts that are fully
// generated and overwritten on every run: the semantic annotation
// template (§4.4), the dispatcher template (§4.5), and the display stub
// (§4.6, created once and never overwritten -- see [wikistore]).
//
// Every generator here is a pure function of a [schema.Category] (or a
// single [schema.Property]/[schema.Subobject]): same input, same bytes,
// every time, matching the "generators are pure functions of the schema"
// guarantee in §5.
package generate
