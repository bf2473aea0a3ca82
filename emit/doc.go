// Package emit holds the shared base emitter spec.md §4.4 describes:
// indentation, block/control-flow layout, precedence-aware binary-op
// rendering, return-lifting, tuple-return lowering, and multi-assignment
// lowering, common to all four textual targets. Each target package
// (c, msl, wgsl, glsl) supplies a Target implementation that overrides
// type names, constructor spellings, and the handful of target-specific
// forms spec.md §4.4's override table lists; this is a deliberate,
// documented generalization beyond the teacher, whose four emitters
// were each self-contained (see DESIGN.md).
package emit
