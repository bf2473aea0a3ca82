package emit_test

import (
	"strings"
	"testing"

	"github.com/ydah/rlsl/emit"
	"github.com/ydah/rlsl/ir"
)

// stubTarget is a minimal emit.Target for exercising Base in isolation,
// independent of any real dialect's spellings.
type stubTarget struct{}

func (stubTarget) Header() string { return "" }
func (stubTarget) TypeName(t ir.Type) string {
	return t.String()
}
func (stubTarget) ArrayTypeName(elem ir.Type, size int) string {
	return elem.String() + "[]"
}
func (stubTarget) Number(value float64, isFloat bool) string {
	return emit.FormatNumberBase(value, isFloat)
}
func (stubTarget) Bool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
func (stubTarget) VarDecl(name, typeName, value string) string {
	return typeName + " " + name + " = " + value
}
func (stubTarget) GlobalDeclStmt(name, typeName, value string, isConst, isStatic bool) string {
	return typeName + " " + name + " = " + value
}
func (stubTarget) ForHeader(index, start, end string) string {
	return "for (" + index + " = " + start + "; " + index + " < " + end + ")"
}
func (stubTarget) BinaryOp(_ *emit.Base, _ *ir.BinaryOp) (string, bool) {
	return "", false
}
func (stubTarget) CallExpr(b *emit.Base, call *ir.FuncCall, args []string) string {
	return call.Name + "(" + strings.Join(args, ", ") + ")"
}
func (stubTarget) Ternary(cond, thenExpr, elseExpr string) string {
	return "(" + cond + " ? " + thenExpr + " : " + elseExpr + ")"
}
func (stubTarget) ArrayLiteral(elemTypeName string, elems []string) string {
	return "[" + strings.Join(elems, ", ") + "]"
}
func (stubTarget) StructDef(name string, fields []ir.Type) []string {
	lines := []string{name + " {"}
	for i, f := range fields {
		lines = append(lines, f.String())
		_ = i
	}
	lines = append(lines, "}")
	return lines
}
func (stubTarget) StructLiteral(name string, values []string) string {
	return name + "{" + strings.Join(values, ", ") + "}"
}

func TestBase_PrecedencePreservedAroundLowerPrecedenceChild(t *testing.T) {
	// (1 + 2) * 3 -- the additive child must be parenthesized under '*'.
	mul := &ir.BinaryOp{
		Op: "*",
		Left: &ir.BinaryOp{
			Op:   "+",
			Left: &ir.Literal{Value: 1, IsFloat: true},
			Right: &ir.Literal{Value: 2, IsFloat: true},
		},
		Right: &ir.Literal{Value: 3, IsFloat: true},
	}
	b := emit.NewBase(stubTarget{})
	got := b.Expr(mul)
	if !strings.Contains(got, "(1.0 + 2.0)") {
		t.Fatalf("expected parenthesized additive child, got %q", got)
	}
}

func TestBase_NoParensWhenChildHasEqualOrHigherPrecedence(t *testing.T) {
	// 1 * 2 + 3 -- '*' on the left of '+' needs no parens.
	add := &ir.BinaryOp{
		Op: "+",
		Left: &ir.BinaryOp{
			Op:   "*",
			Left: &ir.Literal{Value: 1, IsFloat: true},
			Right: &ir.Literal{Value: 2, IsFloat: true},
		},
		Right: &ir.Literal{Value: 3, IsFloat: true},
	}
	b := emit.NewBase(stubTarget{})
	got := b.Expr(add)
	if strings.Contains(got, "(1.0 * 2.0)") {
		t.Fatalf("did not expect parens around equal/higher precedence child, got %q", got)
	}
}

func TestBase_ElsifChainFlattensToElseIf(t *testing.T) {
	// The final plain else branch of the if/elsif/else chain.
	innermost := &ir.Block{Statements: []ir.Node{&ir.Assignment{Target: &ir.VarRef{Name: "y"}, Value: &ir.Literal{Value: 0, IsFloat: true}}}}
	middle := &ir.IfStatement{
		Cond: &ir.BoolLiteral{Value: false},
		Then: &ir.Block{Statements: []ir.Node{&ir.Assignment{Target: &ir.VarRef{Name: "y"}, Value: &ir.Literal{Value: -1, IsFloat: true}}}},
		Else: innermost,
	}
	outer := &ir.IfStatement{
		Cond: &ir.BoolLiteral{Value: true},
		Then: &ir.Block{Statements: []ir.Node{&ir.Assignment{Target: &ir.VarRef{Name: "y"}, Value: &ir.Literal{Value: 1, IsFloat: true}}}},
		Else: middle,
	}

	b := emit.NewBase(stubTarget{})
	got := b.EmitProgram(&ir.Block{Statements: []ir.Node{outer}}, false)

	if strings.Contains(got, "else {") && !strings.Contains(got, "else if") {
		t.Fatalf("expected else-if chain, got nested else:\n%s", got)
	}
	if strings.Count(got, "else if") != 1 {
		t.Fatalf("expected exactly one 'else if', got:\n%s", got)
	}
	if !strings.Contains(got, "} else {") {
		t.Fatalf("expected a final plain else, got:\n%s", got)
	}
}

func TestBase_ElsifChainViaBlockWrapper(t *testing.T) {
	innermost := &ir.IfStatement{
		Cond: &ir.BoolLiteral{Value: false},
		Then: &ir.Block{Statements: []ir.Node{&ir.Break{}}},
	}
	outer := &ir.IfStatement{
		Cond: &ir.BoolLiteral{Value: true},
		Then: &ir.Block{Statements: []ir.Node{&ir.Break{}}},
		// Else as a Block wrapping exactly one IfStatement must still
		// flatten, not nest.
		Else: &ir.Block{Statements: []ir.Node{innermost}},
	}

	b := emit.NewBase(stubTarget{})
	got := b.EmitProgram(&ir.Block{Statements: []ir.Node{outer}}, false)

	if !strings.Contains(got, "} else if") {
		t.Fatalf("expected flattened else-if from Block wrapper, got:\n%s", got)
	}
}

func TestBase_ReturnLiftingOnTailExpression(t *testing.T) {
	block := &ir.Block{Statements: []ir.Node{
		&ir.VarDecl{Name: "x", Init: &ir.Literal{Value: 1, IsFloat: true}},
		&ir.VarRef{Name: "x"},
	}}
	b := emit.NewBase(stubTarget{})
	got := b.EmitProgram(block, true)
	if !strings.Contains(got, "return x;") {
		t.Fatalf("expected tail VarRef lifted to return, got:\n%s", got)
	}
}

func TestBase_ReturnLiftingRecursesIntoTailIf(t *testing.T) {
	ifs := &ir.IfStatement{
		Cond: &ir.BoolLiteral{Value: true},
		Then: &ir.Block{Statements: []ir.Node{&ir.Literal{Value: 1, IsFloat: true}}},
		Else: &ir.Block{Statements: []ir.Node{&ir.Literal{Value: 2, IsFloat: true}}},
	}
	b := emit.NewBase(stubTarget{})
	got := b.EmitProgram(&ir.Block{Statements: []ir.Node{ifs}}, true)
	if !strings.Contains(got, "return 1.0;") || !strings.Contains(got, "return 2.0;") {
		t.Fatalf("expected both branches lifted to return, got:\n%s", got)
	}
}

func TestBase_TupleReturnSynthesizesResultStruct(t *testing.T) {
	fn := &ir.FunctionDefinition{
		Name:   "swap",
		Params: []string{"a", "b"},
		Body: &ir.Block{Statements: []ir.Node{
			&ir.ArrayLiteral{Elements: []ir.Node{&ir.VarRef{Name: "b"}, &ir.VarRef{Name: "a"}}},
		}},
		ReturnType: ir.TupleOf(ir.TFloat, ir.TFloat),
		ParamTypes: map[string]ir.Type{"a": ir.TFloat, "b": ir.TFloat},
	}

	b := emit.NewBase(stubTarget{})
	got := b.EmitProgram(&ir.Block{Statements: []ir.Node{fn}}, false)

	if !strings.Contains(got, "swap_result {") {
		t.Fatalf("expected synthesized swap_result struct, got:\n%s", got)
	}
	if !strings.Contains(got, "return swap_result{b, a};") {
		t.Fatalf("expected tail ArrayLiteral rendered as tuple struct literal return, got:\n%s", got)
	}
}

func TestBase_MultipleAssignmentFromTupleCall(t *testing.T) {
	call := &ir.FuncCall{Name: "swap"}
	call.SetType(ir.TupleOf(ir.TFloat, ir.TVec2))

	ma := &ir.MultipleAssignment{
		Targets: []ir.Node{&ir.VarRef{Name: "x"}, &ir.VarRef{Name: "y"}},
		Source:  call,
	}

	b := emit.NewBase(stubTarget{})
	got := b.EmitProgram(&ir.Block{Statements: []ir.Node{ma}}, false)

	if !strings.Contains(got, "_tmp.v0") || !strings.Contains(got, "_tmp.v1") {
		t.Fatalf("expected fields read off the temporary struct, got:\n%s", got)
	}
}

func TestBase_MultipleAssignmentFromArray(t *testing.T) {
	arr := &ir.ArrayLiteral{Elements: []ir.Node{
		&ir.Literal{Value: 1, IsFloat: true},
		&ir.Literal{Value: 2, IsFloat: true},
	}}
	arr.SetType(ir.ArrayOf(ir.TFloat))

	ma := &ir.MultipleAssignment{
		Targets: []ir.Node{&ir.VarRef{Name: "x"}, &ir.VarRef{Name: "y"}},
		Source:  arr,
	}

	b := emit.NewBase(stubTarget{})
	got := b.EmitProgram(&ir.Block{Statements: []ir.Node{ma}}, false)

	if !strings.Contains(got, "[0]") || !strings.Contains(got, "[1]") {
		t.Fatalf("expected indexed reads off the array source, got:\n%s", got)
	}
}

func TestBase_NumberFormattingFloatVsInt(t *testing.T) {
	if got := emit.FormatNumberBase(3, true); got != "3.0" {
		t.Fatalf("float 3: want 3.0, got %s", got)
	}
	if got := emit.FormatNumberBase(3, false); got != "3" {
		t.Fatalf("int 3: want 3 (no suffix), got %s", got)
	}
	if got := emit.FormatNumberBase(3.5, true); got != "3.5" {
		t.Fatalf("float 3.5: want 3.5 unchanged, got %s", got)
	}
}

func TestBase_SwizzleEmitsDotComponents(t *testing.T) {
	sw := &ir.Swizzle{Receiver: &ir.VarRef{Name: "v"}, Components: "xy"}
	b := emit.NewBase(stubTarget{})
	got := b.Expr(sw)
	if got != "v.xy" {
		t.Fatalf("want v.xy, got %s", got)
	}
}
