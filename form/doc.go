// Package form generates Page Forms-style form documents from resolved
// category sets (§4.7): a single-category form with one template
// section, or a composite form spanning two or more categories with
// shared-property deduplication and deterministic naming.
package form
