// Package state implements the content hasher and the persisted state
// document (§4.9, §6.5): page and template content hashes, keyed so
// that a template regeneration does not falsely invalidate every page
// that transcludes it -- only a change to the page's own managed
// region does.
package state
