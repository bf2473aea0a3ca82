package msl_test

import (
	"testing"

	"github.com/ydah/rlsl/emit"
	"github.com/ydah/rlsl/ir"
	"github.com/ydah/rlsl/msl"
)

func TestTarget_VectorAddStaysInfix(t *testing.T) {
	b := emit.NewBase(msl.New())
	bin := &ir.BinaryOp{Op: "+", Left: &ir.VarRef{Name: "a"}, Right: &ir.VarRef{Name: "b"}}
	bin.Left.SetType(ir.TVec3)
	got := b.Expr(bin)
	if got != "a + b" {
		t.Fatalf("want infix a + b, got %s", got)
	}
}

func TestTarget_MathFunctionKeepsOverloadedName(t *testing.T) {
	b := emit.NewBase(msl.New())
	call := &ir.FuncCall{Name: "sqrt", Args: []ir.Node{&ir.Literal{Value: 4, IsFloat: true}}}
	got := b.Expr(call)
	if got != "sqrt(4.0)" {
		t.Fatalf("want sqrt(4.0), got %s", got)
	}
}

func TestTarget_TextureSampleIsMethodCallOnTexture(t *testing.T) {
	b := emit.NewBase(msl.New())
	call := &ir.FuncCall{Name: "texture2D", Args: []ir.Node{
		&ir.VarRef{Name: "tex"},
		&ir.VarRef{Name: "uv"},
	}}
	got := b.Expr(call)
	if got != "tex.sample(textureSampler, uv)" {
		t.Fatalf("want tex.sample(textureSampler, uv), got %s", got)
	}
}

func TestTarget_TypeNamesUseMetalSpellings(t *testing.T) {
	tg := msl.New()
	if tg.TypeName(ir.TVec3) != "float3" {
		t.Fatalf("want float3, got %s", tg.TypeName(ir.TVec3))
	}
	if tg.TypeName(ir.TMat3) != "float3x3" {
		t.Fatalf("want float3x3, got %s", tg.TypeName(ir.TMat3))
	}
	if tg.TypeName(ir.TSampler2D) != "texture2d<float>" {
		t.Fatalf("want texture2d<float>, got %s", tg.TypeName(ir.TSampler2D))
	}
}
