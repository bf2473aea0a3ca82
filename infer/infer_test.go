package infer

import (
	"testing"

	"github.com/ydah/rlsl/ir"
)

func infer(t *testing.T, block *ir.Block, uniforms map[string]ir.Type) *Infer {
	t.Helper()
	inf := New(uniforms, nil)
	inf.Run(block)
	return inf
}

func TestInfer_LiteralPromotion(t *testing.T) {
	lit := &ir.Literal{Value: 1, IsFloat: true}
	block := &ir.Block{Statements: []ir.Node{lit}}
	infer(t, block, nil)
	if !lit.Type().Equal(ir.TFloat) {
		t.Fatalf("float literal: want float, got %s", lit.Type())
	}

	intLit := &ir.Literal{Value: 3, IsFloat: false}
	block = &ir.Block{Statements: []ir.Node{intLit}}
	infer(t, block, nil)
	if !intLit.Type().Equal(ir.TInt) {
		t.Fatalf("int literal: want int, got %s", intLit.Type())
	}
}

func TestInfer_BinaryOpVectorScalar(t *testing.T) {
	call := &ir.FuncCall{Name: "vec2", Args: []ir.Node{
		&ir.Literal{Value: 1, IsFloat: true},
		&ir.Literal{Value: 2, IsFloat: true},
	}}
	decl := &ir.VarDecl{Name: "a", Init: call}
	bin := &ir.BinaryOp{Op: "+", Left: &ir.VarRef{Name: "a"}, Right: &ir.VarRef{Name: "a"}}
	decl2 := &ir.VarDecl{Name: "b", Init: bin}

	block := &ir.Block{Statements: []ir.Node{decl, decl2}}
	infer(t, block, nil)

	if !decl.Type().Equal(ir.TVec2) {
		t.Fatalf("a: want vec2, got %s", decl.Type())
	}
	if !bin.Type().Equal(ir.TVec2) {
		t.Fatalf("a + a: want vec2, got %s", bin.Type())
	}
}

func TestInfer_FieldAccessUniformLookup(t *testing.T) {
	fa := &ir.FieldAccess{Receiver: &ir.VarRef{Name: "u"}, Field: "resolution"}
	single := &ir.FieldAccess{Receiver: &ir.VarRef{Name: "v"}, Field: "x"}
	block := &ir.Block{Statements: []ir.Node{fa, single}}

	infer(t, block, map[string]ir.Type{"resolution": ir.TVec2})

	if !fa.Type().Equal(ir.TVec2) {
		t.Fatalf("u.resolution: want vec2 (uniform lookup), got %s", fa.Type())
	}
	if !single.Type().Equal(ir.TFloat) {
		t.Fatalf("v.x: want float (single-component), got %s", single.Type())
	}
}

func TestInfer_FieldAccessUnknownDefaultsFloat(t *testing.T) {
	fa := &ir.FieldAccess{Receiver: &ir.VarRef{Name: "u"}, Field: "something_else"}
	block := &ir.Block{Statements: []ir.Node{fa}}
	infer(t, block, map[string]ir.Type{"resolution": ir.TVec2})
	if !fa.Type().Equal(ir.TFloat) {
		t.Fatalf("unknown uniform field: want float default, got %s", fa.Type())
	}
}

func TestInfer_SwizzleWidth(t *testing.T) {
	sw := &ir.Swizzle{Receiver: &ir.VarRef{Name: "v"}, Components: "xyz"}
	block := &ir.Block{Statements: []ir.Node{sw}}
	infer(t, block, nil)
	if !sw.Type().Equal(ir.TVec3) {
		t.Fatalf("xyz swizzle: want vec3, got %s", sw.Type())
	}
}

func TestInfer_IfTypeIsThenBranch(t *testing.T) {
	then := &ir.Block{Statements: []ir.Node{&ir.Literal{Value: 1, IsFloat: true}}}
	ifs := &ir.IfStatement{Cond: &ir.BoolLiteral{Value: true}, Then: then}
	block := &ir.Block{Statements: []ir.Node{ifs}}
	infer(t, block, nil)
	if !ifs.Type().Equal(ir.TFloat) {
		t.Fatalf("if type: want float (then-branch tail), got %s", ifs.Type())
	}
}

func TestInfer_ArrayLiteralAndIndex(t *testing.T) {
	arr := &ir.ArrayLiteral{Elements: []ir.Node{
		&ir.Literal{Value: 1, IsFloat: true},
		&ir.Literal{Value: 2, IsFloat: true},
	}}
	decl := &ir.GlobalDecl{Name: "LUT", Init: arr, IsConst: true, IsStatic: true}
	idx := &ir.ArrayIndex{Array: &ir.VarRef{Name: "LUT"}, Index: &ir.Literal{Value: 0, IsFloat: false}}

	block := &ir.Block{Statements: []ir.Node{decl, idx}}
	infer(t, block, nil)

	if decl.ArraySize != 2 {
		t.Fatalf("array_size: want 2, got %d", decl.ArraySize)
	}
	if !decl.ElementType.Equal(ir.TFloat) {
		t.Fatalf("element_type: want float, got %s", decl.ElementType)
	}
	if !idx.Type().Equal(ir.TFloat) {
		t.Fatalf("LUT[0]: want float, got %s", idx.Type())
	}
}

func TestInfer_FunctionDefinitionReturnTypeDefaultsToTail(t *testing.T) {
	body := &ir.Block{Statements: []ir.Node{
		&ir.Return{Value: &ir.BinaryOp{
			Op:   "+",
			Left: &ir.VarRef{Name: "a"}, Right: &ir.VarRef{Name: "b"},
		}},
	}}
	fn := &ir.FunctionDefinition{Name: "add", Params: []string{"a", "b"}, Body: body}
	block := &ir.Block{Statements: []ir.Node{fn}}
	infer(t, block, nil)

	if !fn.ReturnType.Equal(ir.TFloat) {
		t.Fatalf("add's return type: want float, got %s", fn.ReturnType)
	}
	if fn.ParamTypes["a"].Kind == ir.Undefined {
		t.Fatalf("params: expected default float param types to be recorded")
	}
}

func TestInfer_MultipleAssignmentFromTuple(t *testing.T) {
	fn := &ir.FunctionDefinition{
		Name:       "swap",
		Params:     []string{"a", "b"},
		Body:       &ir.Block{},
		ReturnType: ir.TupleOf(ir.TFloat, ir.TVec2),
	}
	call := &ir.FuncCall{Name: "swap", Args: []ir.Node{&ir.Literal{Value: 1, IsFloat: true}}}

	defBlock := &ir.Block{Statements: []ir.Node{fn}}
	infer(t, defBlock, nil)

	inf := New(nil, map[string]CustomFunction{
		"swap": {Returns: []ir.Type{ir.TFloat, ir.TVec2}},
	})
	ma := &ir.MultipleAssignment{Targets: []ir.Node{&ir.VarRef{Name: "x"}, &ir.VarRef{Name: "y"}}, Source: call}
	inf.Run(&ir.Block{Statements: []ir.Node{ma}})

	if !ma.Targets[0].Type().Equal(ir.TFloat) {
		t.Fatalf("x: want float, got %s", ma.Targets[0].Type())
	}
	if !ma.Targets[1].Type().Equal(ir.TVec2) {
		t.Fatalf("y: want vec2, got %s", ma.Targets[1].Type())
	}
}

func TestInfer_Idempotent(t *testing.T) {
	bin := &ir.BinaryOp{Op: "+", Left: &ir.Literal{Value: 1, IsFloat: true}, Right: &ir.Literal{Value: 2, IsFloat: true}}
	decl := &ir.VarDecl{Name: "x", Init: bin}
	block := &ir.Block{Statements: []ir.Node{decl}}

	inf := infer(t, block, nil)
	first := decl.Type()
	inf.Run(block)
	second := decl.Type()

	if !first.Equal(second) {
		t.Fatalf("inference not idempotent: first=%s second=%s", first, second)
	}
}
