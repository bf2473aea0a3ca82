package wgsl

import (
	"fmt"
	"strings"

	"github.com/ydah/rlsl/emit"
	"github.com/ydah/rlsl/ir"
)

// Target renders WebGPU Shading Language (spec.md §4.4's override
// table).
type Target struct{}

func New() *Target { return &Target{} }

func (*Target) Header() string { return "" }

func (*Target) TypeName(t ir.Type) string {
	switch t.Kind {
	case ir.Float:
		return "f32"
	case ir.Int:
		return "i32"
	case ir.Bool:
		return "bool"
	case ir.Vec2:
		return "vec2<f32>"
	case ir.Vec3:
		return "vec3<f32>"
	case ir.Vec4:
		return "vec4<f32>"
	case ir.Mat2:
		return "mat2x2<f32>"
	case ir.Mat3:
		return "mat3x3<f32>"
	case ir.Mat4:
		return "mat4x4<f32>"
	case ir.Sampler2D:
		return "texture_2d<f32>"
	default:
		return "f32"
	}
}

func (t *Target) ArrayTypeName(elem ir.Type, size int) string {
	return fmt.Sprintf("array<%s, %d>", t.TypeName(elem), size)
}

func (*Target) Number(value float64, isFloat bool) string {
	return emit.FormatNumberBase(value, isFloat)
}

func (*Target) Bool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

func (t *Target) VarDecl(name, typeName, value string) string {
	return fmt.Sprintf("let %s: %s = %s", name, typeName, value)
}

func (t *Target) GlobalDeclStmt(name, typeName, value string, isConst, isStatic bool) string {
	kw := "var"
	if isConst {
		kw = "const"
	}
	return fmt.Sprintf("%s %s: %s = %s", kw, name, typeName, value)
}

func (*Target) ForHeader(index, start, end string) string {
	return fmt.Sprintf("for (var %s: i32 = %s; %s < %s; %s++)", index, start, index, end, index)
}

func (*Target) BinaryOp(_ *emit.Base, _ *ir.BinaryOp) (string, bool) {
	return "", false
}

func (t *Target) CallExpr(b *emit.Base, call *ir.FuncCall, args []string) string {
	switch call.Name {
	case "texture2D", "texture", "textureLod":
		return fmt.Sprintf("textureSample(%s)", strings.Join(args, ", "))
	case "vec2", "vec3", "vec4", "mat2", "mat3", "mat4":
		return fmt.Sprintf("%s(%s)", t.TypeName(call.Type()), strings.Join(args, ", "))
	}
	if call.Receiver != nil {
		all := append([]string{b.Expr(call.Receiver)}, args...)
		return fmt.Sprintf("%s(%s)", call.Name, strings.Join(all, ", "))
	}
	return fmt.Sprintf("%s(%s)", call.Name, strings.Join(args, ", "))
}

// Ternary lowers to WGSL's select(false_value, true_value, cond), per
// spec.md §4.4.
func (*Target) Ternary(cond, thenExpr, elseExpr string) string {
	return fmt.Sprintf("select(%s, %s, %s)", elseExpr, thenExpr, cond)
}

func (*Target) ArrayLiteral(elemTypeName string, elems []string) string {
	return fmt.Sprintf("array<%s, %d>(%s)", elemTypeName, len(elems), strings.Join(elems, ", "))
}

func (t *Target) StructDef(name string, fields []ir.Type) []string {
	lines := []string{"struct " + name + " {"}
	for i, f := range fields {
		lines = append(lines, fmt.Sprintf("    v%d: %s,", i, t.TypeName(f)))
	}
	lines = append(lines, "};")
	return lines
}

func (*Target) StructLiteral(name string, values []string) string {
	return fmt.Sprintf("%s(%s)", name, strings.Join(values, ", "))
}
