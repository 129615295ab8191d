// Package wikistore implements the wiki-backed stores for categories,
// properties, and subobjects (§4.8), on top of the consumed page-store
// and semantic-store contracts (§6.1, §6.2).
//
// Every store writes through a dedicated system identity so edits are
// traceable in the wiki's own history; permission and rate-limit checks
// happen above the store, at the entry-points in package api and
// cmd/ontologyc, never inside it (§5).
package wikistore
