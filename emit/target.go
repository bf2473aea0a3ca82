package emit

import "github.com/ydah/rlsl/ir"

// Target supplies everything spec.md §4.4's per-target override table
// names: type names, constructor spellings, texture-function spellings,
// and the handful of target-specific statement/expression forms. Base
// owns every other decision (indentation, control-flow layout,
// precedence, return-lifting, tuple-return and multi-assignment
// lowering) uniformly across targets.
type Target interface {
	// Header is emitted once, before anything else (GLSL's #version
	// pragma, MSL's includes; C and WGSL return "").
	Header() string

	// TypeName renders a scalar/vector/matrix/sampler type.
	TypeName(t ir.Type) string

	// ArrayTypeName renders a fixed-size array type for a GlobalDecl
	// (e.g. C's "float[3]", WGSL's "array<f32, 3>").
	ArrayTypeName(elem ir.Type, size int) string

	// Number renders a literal value; isFloat distinguishes an
	// int-lowered literal (array indices, the times-idiom's synthetic
	// 0) from a float-typed one.
	Number(value float64, isFloat bool) string

	// Bool renders a boolean literal.
	Bool(v bool) string

	// VarDecl renders a local declaration statement, without the
	// trailing semicolon (e.g. C/MSL/GLSL's "T name = value", WGSL's
	// "let name: T = value").
	VarDecl(name, typeName, value string) string

	// GlobalDeclStmt renders a module-scope declaration statement,
	// without the trailing semicolon.
	GlobalDeclStmt(name, typeName, value string, isConst, isStatic bool) string

	// ForHeader renders a for-loop header, e.g. "for (int i = 0; i < 10; i++)".
	ForHeader(index, start, end string) string

	// BinaryOp optionally overrides default infix rendering for one
	// BinaryOp node (the C target's vector arithmetic lowers to
	// function calls here); ok is false to fall through to Base's
	// default infix rendering.
	BinaryOp(b *Base, v *ir.BinaryOp) (rendered string, ok bool)

	// CallExpr renders a FuncCall (builtin or user-defined, with or
	// without a receiver), owning name rewriting (C's f-suffixed math,
	// MSL's method-call-shaped texture sampling, …).
	CallExpr(b *Base, call *ir.FuncCall, args []string) string

	// Ternary renders an if-expression (WGSL's select(), infix
	// "cond ? t : f" elsewhere).
	Ternary(cond, thenExpr, elseExpr string) string

	// ArrayLiteral renders a bare array value expression.
	ArrayLiteral(elemTypeName string, elems []string) string

	// StructDef renders a tuple-return result struct's full definition
	// (spec.md §4.4: fields named v0, v1, …), one line per slice entry.
	StructDef(name string, fields []ir.Type) []string

	// StructLiteral renders a tuple-return struct literal expression.
	StructLiteral(name string, values []string) string
}
