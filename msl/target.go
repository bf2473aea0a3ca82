package msl

import (
	"fmt"
	"strings"

	"github.com/ydah/rlsl/emit"
	"github.com/ydah/rlsl/ir"
)

// Target renders Metal Shading Language (spec.md §4.4's override
// table).
type Target struct{}

func New() *Target { return &Target{} }

func (*Target) Header() string {
	return "#include <metal_stdlib>\nusing namespace metal;\n\n"
}

func (*Target) TypeName(t ir.Type) string {
	switch t.Kind {
	case ir.Float:
		return "float"
	case ir.Int:
		return "int"
	case ir.Bool:
		return "bool"
	case ir.Vec2:
		return "float2"
	case ir.Vec3:
		return "float3"
	case ir.Vec4:
		return "float4"
	case ir.Mat2:
		return "float2x2"
	case ir.Mat3:
		return "float3x3"
	case ir.Mat4:
		return "float4x4"
	case ir.Sampler2D:
		return "texture2d<float>"
	default:
		return "float"
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

func (*Target) VarDecl(name, typeName, value string) string {
	return fmt.Sprintf("%s %s = %s", typeName, name, value)
}

func (*Target) GlobalDeclStmt(name, typeName, value string, isConst, isStatic bool) string {
	prefix := ""
	if isConst {
		prefix = "constant "
	}
	return fmt.Sprintf("%s%s %s = %s", prefix, typeName, name, value)
}

func (*Target) ForHeader(index, start, end string) string {
	return fmt.Sprintf("for (int %s = %s; %s < %s; %s++)", index, start, index, end, index)
}

func (*Target) BinaryOp(_ *emit.Base, _ *ir.BinaryOp) (string, bool) {
	return "", false
}

// CallExpr renders a texture sample as a method call against the
// well-known textureSampler sampler object (spec.md §9's open
// question), and a vector/matrix constructor under its Metal type name
// (float3(…)); every other builtin name passes through unchanged.
func (t *Target) CallExpr(b *emit.Base, call *ir.FuncCall, args []string) string {
	switch call.Name {
	case "texture2D", "texture", "textureLod":
		tex := args[0]
		uv := args[1]
		return fmt.Sprintf("%s.sample(textureSampler, %s)", tex, uv)
	case "vec2", "vec3", "vec4", "mat2", "mat3", "mat4":
		return fmt.Sprintf("%s(%s)", t.TypeName(call.Type()), strings.Join(args, ", "))
	}
	if call.Receiver != nil {
		all := append([]string{b.Expr(call.Receiver)}, args...)
		return fmt.Sprintf("%s(%s)", call.Name, strings.Join(all, ", "))
	}
	return fmt.Sprintf("%s(%s)", call.Name, strings.Join(args, ", "))
}

func (*Target) Ternary(cond, thenExpr, elseExpr string) string {
	return fmt.Sprintf("(%s ? %s : %s)", cond, thenExpr, elseExpr)
}

func (*Target) ArrayLiteral(elemTypeName string, elems []string) string {
	return fmt.Sprintf("{%s}", strings.Join(elems, ", "))
}

func (t *Target) StructDef(name string, fields []ir.Type) []string {
	lines := []string{"struct " + name + " {"}
	for i, f := range fields {
		lines = append(lines, fmt.Sprintf("    %s v%d;", t.TypeName(f), i))
	}
	lines = append(lines, "};")
	return lines
}

func (*Target) StructLiteral(name string, values []string) string {
	return fmt.Sprintf("%s{%s}", name, strings.Join(values, ", "))
}
