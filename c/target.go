package c

import (
	"fmt"
	"strings"

	"github.com/ydah/rlsl/emit"
	"github.com/ydah/rlsl/ir"
)

// Target renders the plain-C dialect (spec.md §4.4's override table).
type Target struct{}

// New returns a fresh C target.
func New() *Target { return &Target{} }

func (*Target) Header() string { return "" }

func (*Target) TypeName(t ir.Type) string {
	switch t.Kind {
	case ir.Float:
		return "float"
	case ir.Int:
		return "int"
	case ir.Bool:
		return "int"
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
	s := emit.FormatNumberBase(value, isFloat)
	if isFloat {
		s += "f"
	}
	return s
}

func (*Target) Bool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func (*Target) VarDecl(name, typeName, value string) string {
	return fmt.Sprintf("%s %s = %s", typeName, name, value)
}

func (*Target) GlobalDeclStmt(name, typeName, value string, isConst, isStatic bool) string {
	prefix := ""
	if isStatic {
		prefix += "static "
	}
	if isConst {
		prefix += "const "
	}
	return fmt.Sprintf("%s%s %s = %s", prefix, typeName, name, value)
}

func (*Target) ForHeader(index, start, end string) string {
	return fmt.Sprintf("for (int %s = %s; %s < %s; %s++)", index, start, index, end, index)
}

// vectorSpecialized is the set of ops whose vector form rewrites to a
// type-prefixed call rather than staying infix/generic (spec.md §4.4).
var vectorSpecialized = map[string]bool{
	"length": true, "normalize": true, "dot": true,
	"cross": true, "reflect": true, "refract": true,
}

// fSuffixed renames scalar math builtins to their libm f-suffixed
// spelling (spec.md §4.4 names sinf, cosf, sqrtf, fabsf, fminf, fmaxf,
// powf, fmodf explicitly; the rest of the table follows the same
// convention).
var fSuffixed = map[string]string{
	"sin": "sinf", "cos": "cosf", "tan": "tanf",
	"asin": "asinf", "acos": "acosf", "atan": "atanf", "atan2": "atan2f",
	"sinh": "sinhf", "cosh": "coshf", "tanh": "tanhf",
	"exp": "expf", "exp2": "exp2f", "log": "logf", "log2": "log2f",
	"pow": "powf", "sqrt": "sqrtf", "inversesqrt": "inversesqrtf",
	"abs": "fabsf", "sign": "signf", "floor": "floorf", "ceil": "ceilf",
	"fract": "fractf", "mod": "fmodf", "min": "fminf", "max": "fmaxf",
}

func (t *Target) BinaryOp(b *emit.Base, v *ir.BinaryOp) (string, bool) {
	lt := v.Left.Type()
	rt := v.Right.Type()
	vecType := lt
	if !lt.IsVector() {
		if !rt.IsVector() {
			return "", false
		}
		vecType = rt
	}
	op := ""
	switch v.Op {
	case "+":
		op = "add"
	case "-":
		op = "sub"
	case "*":
		op = "mul"
	case "/":
		op = "div"
	default:
		return "", false
	}
	return fmt.Sprintf("%s_%s(%s, %s)", t.TypeName(vecType), op, b.Expr(v.Left), b.Expr(v.Right)), true
}

func (t *Target) CallExpr(b *emit.Base, call *ir.FuncCall, args []string) string {
	all := args
	if call.Receiver != nil {
		all = append([]string{b.Expr(call.Receiver)}, args...)
	}

	name := call.Name
	switch {
	case name == "vec2" || name == "vec3" || name == "vec4" || name == "mat2" || name == "mat3" || name == "mat4":
		name += "_new"
	case name == "texture2D" || name == "texture" || name == "textureLod":
		name = "texture_sample"
	case name == "mix" && len(all) > 0 && argIsVector(call, 0):
		name = "mix_v3"
	case vectorSpecialized[name] && len(all) > 0 && argIsVector(call, 0):
		name = t.TypeName(receiverOrArgType(call, 0)) + "_" + name
	case fSuffixed[name] != "":
		name = fSuffixed[name]
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(all, ", "))
}

func argIsVector(call *ir.FuncCall, i int) bool {
	return receiverOrArgType(call, i).IsVector()
}

func receiverOrArgType(call *ir.FuncCall, i int) ir.Type {
	if call.Receiver != nil {
		return call.Receiver.Type()
	}
	if i < len(call.Args) {
		return call.Args[i].Type()
	}
	return ir.TFloat
}

func (*Target) Ternary(cond, thenExpr, elseExpr string) string {
	return fmt.Sprintf("(%s ? %s : %s)", cond, thenExpr, elseExpr)
}

func (*Target) ArrayLiteral(elemTypeName string, elems []string) string {
	return fmt.Sprintf("{%s}", strings.Join(elems, ", "))
}

func (t *Target) StructDef(name string, fields []ir.Type) []string {
	lines := []string{fmt.Sprintf("typedef struct {")}
	for i, f := range fields {
		lines = append(lines, fmt.Sprintf("    %s v%d;", t.TypeName(f), i))
	}
	lines = append(lines, fmt.Sprintf("} %s;", name))
	return lines
}

func (*Target) StructLiteral(name string, values []string) string {
	return fmt.Sprintf("(%s){%s}", name, strings.Join(values, ", "))
}
