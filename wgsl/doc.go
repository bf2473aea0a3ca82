// Package wgsl implements emit.Target for WebGPU Shading Language:
// declarations use `let`, for-loop headers take the `var i: i32 = …`
// form, and a conditional expression lowers to select() rather than an
// infix ternary. Grounded on spec.md §4.4's WGSL rules; there is no
// WGSL *emitter* in the reference corpus to adapt (the teacher's wgsl
// package is a parser, the opposite direction), so this package is
// fresh construction in the shared emit.Base/Target shape the other
// three targets use (see DESIGN.md).
package wgsl
