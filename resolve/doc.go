// Package resolve computes inheritance for multiply-inherited categories
// using C3 linearization (§4.2), the same algorithm Python uses for its
// method resolution order.
//
// A [Resolver] is constructed once per invocation over a closed "universe"
// of categories (see the design notes in spec.md: categories are
// name-keyed records resolved through an enclosing map, never parent
// pointers, so cycles are representable and statically detected rather
// than crashing a naive DFS). Ancestors are memoized for the lifetime of
// the Resolver; construct a new one per compilation.
package resolve
