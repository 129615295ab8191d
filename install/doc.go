// Package install implements the layered configuration installer
// (§4.10): five ordered layers, each reaching quiescence in the semantic
// backend before the next begins, with idempotent content-hash-keyed
// writes so re-running an installation with identical inputs is a
// no-op.
package install
