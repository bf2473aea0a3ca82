package builtins

import (
	"testing"

	"github.com/ydah/rlsl/ir"
)

func TestResolveBinaryType(t *testing.T) {
	tests := []struct {
		name        string
		op          string
		left, right ir.Type
		want        ir.Type
	}{
		{"comparison always bool", "==", ir.TVec3, ir.TVec3, ir.TBool},
		{"logical always bool", "&&", ir.TBool, ir.TBool, ir.TBool},
		{"matrix times vector", "*", ir.TMat3, ir.TVec3, ir.TVec3},
		{"vector times matrix", "*", ir.TVec3, ir.TMat3, ir.TVec3},
		{"matrix times matrix", "*", ir.TMat3, ir.TMat3, ir.TMat3},
		{"matrix times scalar", "*", ir.TMat4, ir.TFloat, ir.TMat4},
		{"scalar times matrix", "*", ir.TFloat, ir.TMat4, ir.TMat4},
		{"vector plus vector", "+", ir.TVec2, ir.TVec2, ir.TVec2},
		{"vector times scalar", "*", ir.TVec3, ir.TFloat, ir.TVec3},
		{"scalar times vector", "*", ir.TFloat, ir.TVec3, ir.TVec3},
		{"scalar arithmetic", "+", ir.TFloat, ir.TFloat, ir.TFloat},
		{"mismatched rank falls back to float", "*", ir.TVec2, ir.TVec3, ir.TFloat},
		{"int and float falls back to float", "+", ir.TInt, ir.TFloat, ir.TFloat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveBinaryType(tt.op, tt.left, tt.right)
			if !got.Equal(tt.want) {
				t.Errorf("ResolveBinaryType(%q, %v, %v) = %v, want %v", tt.op, tt.left, tt.right, got, tt.want)
			}
		})
	}
}

func TestResolveReturnType(t *testing.T) {
	args := []ir.Type{ir.TVec3, ir.TFloat, ir.TVec2}

	tests := []struct {
		name string
		rule ReturnRule
		want ir.Type
	}{
		{"same uses first arg", same(), ir.TVec3},
		{"first", first(), ir.TVec3},
		{"second", second(), ir.TFloat},
		{"third", third(), ir.TVec2},
		{"concrete ignores args", concrete(ir.TBool), ir.TBool},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveReturnType(tt.rule, args)
			if !got.Equal(tt.want) {
				t.Errorf("ResolveReturnType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFunctions_KnownNames(t *testing.T) {
	for _, name := range []string{"vec3", "sin", "length", "dot", "texture2D", "mix"} {
		if _, ok := Functions[name]; !ok {
			t.Errorf("expected builtin function table to know %q", name)
		}
	}
}

func TestIsSwizzleName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"x", true},
		{"xy", true},
		{"xyz", true},
		{"rgba", true},
		{"xyzw", true},
		{"stpq", true},
		{"xyzwv", false}, // too long
		{"resolution", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsSwizzleName(tt.name); got != tt.want {
			t.Errorf("IsSwizzleName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
