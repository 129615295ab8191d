// Package compiler wires schemaio, resolve, multicat, generate, form,
// wikistore, state, install, and api into the single entry point
// cmd/ontologyc drives: load and validate a schema document, resolve one
// or more categories, render a dry-run diff against recorded state, and
// run the layered installation.
package compiler
