// Package frontend turns the Ruby-flavored surface source (spec.md §6)
// into the IR's root Block.
//
// Parsing is two stages, mirroring the teacher's own parser/lowerer
// split (wgsl.Parser followed by wgsl.Lowerer): participle
// (github.com/alecthomas/participle/v2) turns source text into a
// generic syntax tree (the File/Block/Statement/... types in
// grammar.go) from a hand-written lexer.SimpleRule token set, and then
// Lower walks that generic tree into ir.Node values, resolving the
// dotted-trailer ambiguity (operator vs. swizzle vs. field vs. call)
// that the grammar deliberately leaves generic; prefix unary operators
// and indexing already have their own grammar productions.
package frontend
