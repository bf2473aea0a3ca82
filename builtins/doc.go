// Package builtins is the static, read-only registry of everything the
// surface language knows about without a user declaration: built-in
// function signatures, operator classification, the swizzle alphabet,
// and scalar/vector/matrix type classification.
//
// Every table here is populated once by an init-time package-level var
// and never mutated afterwards, matching the concurrency model in
// spec.md §5: this package is shared, read-only state with static
// lifetime across every Transpiler instance.
package builtins
