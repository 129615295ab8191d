// Package multicat implements the multi-category resolver (§4.3): given
// one or more category names, it loads each category's effective form
// from a [resolve.Resolver] and merges the results into a single
// [ResolvedPropertySet] with deduplication, required-wins promotion, and
// per-property source attribution.
package multicat
