package ir

import "testing"

func TestType_String(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		want string
	}{
		{"float", TFloat, "float"},
		{"vec3", TVec3, "vec3"},
		{"mat4", TMat4, "mat4"},
		{"sampler2D", TSampler2D, "sampler2D"},
		{"array of float", ArrayOf(TFloat), "array_float"},
		{"array of vec3", ArrayOf(TVec3), "array_vec3"},
		{"tuple of float,float", TupleOf(TFloat, TFloat), "tuple_float_float"},
		{"tuple of vec3,float", TupleOf(TVec3, TFloat), "tuple_vec3_float"},
		{"undefined", Type{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("Type.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestType_Rank(t *testing.T) {
	tests := []struct {
		typ  Type
		want int
	}{
		{TFloat, 0},
		{TVec2, 2},
		{TVec3, 3},
		{TVec4, 4},
		{TMat2, 2},
		{TMat3, 3},
		{TMat4, 4},
	}

	for _, tt := range tests {
		if got := tt.typ.Rank(); got != tt.want {
			t.Errorf("Type(%s).Rank() = %d, want %d", tt.typ, got, tt.want)
		}
	}
}

func TestType_Equal(t *testing.T) {
	if !ArrayOf(TVec3).Equal(ArrayOf(TVec3)) {
		t.Error("expected array_vec3 to equal array_vec3")
	}
	if ArrayOf(TVec3).Equal(ArrayOf(TFloat)) {
		t.Error("expected array_vec3 to not equal array_float")
	}
	if !TupleOf(TFloat, TVec2).Equal(TupleOf(TFloat, TVec2)) {
		t.Error("expected tuple_float_vec2 to equal itself")
	}
	if TupleOf(TFloat, TVec2).Equal(TupleOf(TVec2, TFloat)) {
		t.Error("tuple component order should matter")
	}
}

func TestTypeSlot_ZeroValueIsUndefined(t *testing.T) {
	lit := &Literal{Value: 1}
	if !lit.Type().IsZero() {
		t.Error("expected a freshly constructed node's type to be undefined")
	}
	lit.SetType(TFloat)
	if !lit.Type().Equal(TFloat) {
		t.Errorf("Type() = %v, want %v", lit.Type(), TFloat)
	}
}
