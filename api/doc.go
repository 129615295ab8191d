// Package api implements the resolution API (§6.4): the caller-facing
// surface that resolves one or more categories through a
// [resolve.Resolver]/[multicat.Resolve] pipeline and shapes the result
// into a cross-encoding-stable response (integer 0/1 flags, conventional
// wiki titles, a defensive "Page" datatype fallback), plus a JSON Schema
// export, built as a [*jsonschema.Schema], of the entity shape of one
// resolved category.
package api
