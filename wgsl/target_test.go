package wgsl_test

import (
	"testing"

	"github.com/ydah/rlsl/emit"
	"github.com/ydah/rlsl/ir"
	"github.com/ydah/rlsl/wgsl"
)

func TestTarget_VarDeclUsesLet(t *testing.T) {
	tg := wgsl.New()
	got := tg.VarDecl("color", "vec3<f32>", "vec3<f32>(1.0, 0.0, 0.0)")
	if got != "let color: vec3<f32> = vec3<f32>(1.0, 0.0, 0.0)" {
		t.Fatalf("unexpected var decl: %s", got)
	}
}

func TestTarget_ForHeaderUsesVarI32(t *testing.T) {
	tg := wgsl.New()
	got := tg.ForHeader("i", "0", "10")
	if got != "for (var i: i32 = 0; i < 10; i++)" {
		t.Fatalf("unexpected for header: %s", got)
	}
}

func TestTarget_TernaryLowersToSelect(t *testing.T) {
	b := emit.NewBase(wgsl.New())
	ifs := &ir.IfStatement{
		Cond: &ir.BoolLiteral{Value: true},
		Then: &ir.Block{Statements: []ir.Node{&ir.Literal{Value: 1, IsFloat: true}}},
		Else: &ir.Block{Statements: []ir.Node{&ir.Literal{Value: 2, IsFloat: true}}},
	}
	got := b.Expr(ifs)
	if got != "select(2.0, 1.0, true)" {
		t.Fatalf("want select(2.0, 1.0, true), got %s", got)
	}
}

func TestTarget_VectorConstructorCarriesElementType(t *testing.T) {
	b := emit.NewBase(wgsl.New())
	call := &ir.FuncCall{Name: "vec3", Args: []ir.Node{
		&ir.Literal{Value: 1, IsFloat: true},
		&ir.Literal{Value: 0, IsFloat: true},
		&ir.Literal{Value: 0, IsFloat: true},
	}}
	call.SetType(ir.TVec3)
	got := b.Expr(call)
	if got != "vec3<f32>(1.0, 0.0, 0.0)" {
		t.Fatalf("want vec3<f32>(1.0, 0.0, 0.0), got %s", got)
	}
}
