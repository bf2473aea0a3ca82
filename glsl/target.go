package glsl

import (
	"fmt"
	"strings"

	"github.com/ydah/rlsl/emit"
	"github.com/ydah/rlsl/ir"
)

// Target renders OpenGL Shading Language (spec.md §4.4's override
// table). Version is rendered as the #version header at construction.
type Target struct {
	Version string
}

// New returns a GLSL target that emits "#version <version>" as its
// header; version defaults to "330 core" when empty.
func New(version string) *Target {
	if version == "" {
		version = "330 core"
	}
	return &Target{Version: version}
}

func (t *Target) Header() string {
	return fmt.Sprintf("#version %s\n\n", t.Version)
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
		return "vec2"
	case ir.Vec3:
		return "vec3"
	case ir.Vec4:
		return "vec4"
	case ir.Mat2:
		return "mat2"
	case ir.Mat3:
		return "mat3"
	case ir.Mat4:
		return "mat4"
	case ir.Sampler2D:
		return "sampler2D"
	default:
		return "float"
	}
}

func (t *Target) ArrayTypeName(elem ir.Type, size int) string {
	return fmt.Sprintf("%s[%d]", t.TypeName(elem), size)
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
		prefix = "const "
	}
	return fmt.Sprintf("%s%s %s = %s", prefix, typeName, name, value)
}

func (*Target) ForHeader(index, start, end string) string {
	return fmt.Sprintf("for (int %s = %s; %s < %s; %s++)", index, start, index, end, index)
}

func (*Target) BinaryOp(_ *emit.Base, _ *ir.BinaryOp) (string, bool) {
	return "", false
}

func (*Target) CallExpr(b *emit.Base, call *ir.FuncCall, args []string) string {
	name := call.Name
	if name == "texture" {
		name = "texture2D"
	}
	if call.Receiver != nil {
		all := append([]string{b.Expr(call.Receiver)}, args...)
		return fmt.Sprintf("%s(%s)", name, strings.Join(all, ", "))
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
}

func (*Target) Ternary(cond, thenExpr, elseExpr string) string {
	return fmt.Sprintf("(%s ? %s : %s)", cond, thenExpr, elseExpr)
}

func (*Target) ArrayLiteral(elemTypeName string, elems []string) string {
	return fmt.Sprintf("%s[%d](%s)", elemTypeName, len(elems), strings.Join(elems, ", "))
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
	return fmt.Sprintf("%s(%s)", name, strings.Join(values, ", "))
}
