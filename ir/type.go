package ir

import "strings"

// Kind enumerates the closed set of semantic types a shader expression
// can carry.
type Kind uint8

const (
	// Undefined marks a type slot that has not been inferred yet.
	Undefined Kind = iota
	Float
	Int
	Bool
	Vec2
	Vec3
	Vec4
	Mat2
	Mat3
	Mat4
	Sampler2D
	Array
	Tuple
)

// Type is the mutable type tag carried by every IR node. Array and
// Tuple types carry their component types directly rather than encoding
// them into the name string, but Type.String renders the textual form
// documented by the specification (array_<elem>, tuple_<t1>_<t2>_…).
type Type struct {
	Kind  Kind
	Elem  *Type  // set when Kind == Array
	Tuple []Type // set when Kind == Tuple
}

// Scalar and vector/matrix singletons. These are safe to share: Type
// values with Kind other than Array/Tuple never hold pointers or
// slices, so copying them is copying a plain value.
var (
	TFloat     = Type{Kind: Float}
	TInt       = Type{Kind: Int}
	TBool      = Type{Kind: Bool}
	TVec2      = Type{Kind: Vec2}
	TVec3      = Type{Kind: Vec3}
	TVec4      = Type{Kind: Vec4}
	TMat2      = Type{Kind: Mat2}
	TMat3      = Type{Kind: Mat3}
	TMat4      = Type{Kind: Mat4}
	TSampler2D = Type{Kind: Sampler2D}
)

// ArrayOf builds an array_<elem> type.
func ArrayOf(elem Type) Type {
	e := elem
	return Type{Kind: Array, Elem: &e}
}

// TupleOf builds a tuple_<t1>_<t2>_… type. Components are not checked;
// every documented multi-return case uses non-compound component types
// (scalars, vectors, matrices, sampler2D).
func TupleOf(elems ...Type) Type {
	cp := make([]Type, len(elems))
	copy(cp, elems)
	return Type{Kind: Tuple, Tuple: cp}
}

// IsZero reports whether the type has never been inferred.
func (t Type) IsZero() bool { return t.Kind == Undefined }

func (t Type) IsScalar() bool {
	switch t.Kind {
	case Float, Int, Bool:
		return true
	default:
		return false
	}
}

func (t Type) IsVector() bool {
	switch t.Kind {
	case Vec2, Vec3, Vec4:
		return true
	default:
		return false
	}
}

func (t Type) IsMatrix() bool {
	switch t.Kind {
	case Mat2, Mat3, Mat4:
		return true
	default:
		return false
	}
}

// Rank returns the vector/matrix component width (2, 3, or 4), or 0 for
// anything else.
func (t Type) Rank() int {
	switch t.Kind {
	case Vec2, Mat2:
		return 2
	case Vec3, Mat3:
		return 3
	case Vec4, Mat4:
		return 4
	default:
		return 0
	}
}

// VectorOfRank returns the vector type with the given component count.
func VectorOfRank(n int) Type {
	switch n {
	case 2:
		return TVec2
	case 3:
		return TVec3
	case 4:
		return TVec4
	default:
		return TFloat
	}
}

// MatrixOfRank returns the square matrix type with the given rank.
func MatrixOfRank(n int) Type {
	switch n {
	case 2:
		return TMat2
	case 3:
		return TMat3
	case 4:
		return TMat4
	default:
		return TFloat
	}
}

// Equal reports whether two types are structurally identical.
func (t Type) Equal(o Type) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case Array:
		if t.Elem == nil || o.Elem == nil {
			return t.Elem == o.Elem
		}
		return t.Elem.Equal(*o.Elem)
	case Tuple:
		if len(t.Tuple) != len(o.Tuple) {
			return false
		}
		for i := range t.Tuple {
			if !t.Tuple[i].Equal(o.Tuple[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// String renders the type using the textual naming scheme from the
// specification's data model (§3): scalar/vector/matrix names as-is,
// array_<elem> for arrays, tuple_<t1>_<t2>_… for tuples.
func (t Type) String() string {
	switch t.Kind {
	case Undefined:
		return ""
	case Float:
		return "float"
	case Int:
		return "int"
	case Bool:
		return "bool"
	case Vec2:
		return "vec2"
	case Vec3:
		return "vec3"
	case Vec4:
		return "vec4"
	case Mat2:
		return "mat2"
	case Mat3:
		return "mat3"
	case Mat4:
		return "mat4"
	case Sampler2D:
		return "sampler2D"
	case Array:
		if t.Elem == nil {
			return "array_float"
		}
		return "array_" + t.Elem.String()
	case Tuple:
		parts := make([]string, len(t.Tuple))
		for i, e := range t.Tuple {
			parts[i] = e.String()
		}
		return "tuple_" + strings.Join(parts, "_")
	default:
		return ""
	}
}

// TypeSlot is embedded by every concrete node type to provide the
// mutable "type" slot the specification requires. The frontend leaves
// it zero; the infer package is the only writer after construction.
type TypeSlot struct {
	typ Type
}

// Type returns the node's inferred type, or the zero Type if inference
// has not run (or does not apply to this node, e.g. a Break).
func (s *TypeSlot) Type() Type { return s.typ }

// SetType records the node's type; the infer package calls it on each
// pass, and a repeated pass writes the same type again.
func (s *TypeSlot) SetType(t Type) { s.typ = t }
