// Package infer implements the one type-inference pass from spec.md
// §4.3: a single bottom-up walk over the IR that fills every node's
// type slot, backed by a flat symbol table seeded with uniforms and a
// couple of well-known parameter names.
package infer
