package builtins

import "github.com/ydah/rlsl/ir"

// RuleKind enumerates how a built-in function's return type is derived
// from its argument types.
type RuleKind uint8

const (
	// RuleSame resolves to the type of the first argument.
	RuleSame RuleKind = iota
	RuleFirst
	RuleSecond
	RuleThird
	// RuleConcrete resolves to a fixed type regardless of arguments.
	RuleConcrete
)

// ReturnRule is a built-in function's declared return-type rule: either
// "the type of argument n" (Same/First/Second/Third) or a fixed type.
type ReturnRule struct {
	Kind     RuleKind
	Concrete ir.Type
}

func same() ReturnRule            { return ReturnRule{Kind: RuleSame} }
func first() ReturnRule           { return ReturnRule{Kind: RuleFirst} }
func second() ReturnRule          { return ReturnRule{Kind: RuleSecond} }
func third() ReturnRule           { return ReturnRule{Kind: RuleThird} }
func concrete(t ir.Type) ReturnRule { return ReturnRule{Kind: RuleConcrete, Concrete: t} }

// Signature describes one built-in function's call shape.
//
// Params lists the declared parameter type classes; a zero ir.Type
// (ir.Undefined) stands for "any" — defer to the actual argument, as
// spec.md §4.1 describes. Only the variadic vector/matrix constructors
// set Params, to a single "any" class covering every argument; every
// other entry leaves Params nil and states only MinArity.
type Signature struct {
	Name     string
	Params   []ir.Type
	MinArity int
	Variadic bool
	Return   ReturnRule
}

func any1() []ir.Type { return []ir.Type{{}} }

// Functions is the builtin function table: name -> signature. It is
// built once at init and never mutated.
var Functions = map[string]Signature{
	// Vector constructors.
	"vec2": {Name: "vec2", Params: any1(), MinArity: 1, Variadic: true, Return: concrete(ir.TVec2)},
	"vec3": {Name: "vec3", Params: any1(), MinArity: 1, Variadic: true, Return: concrete(ir.TVec3)},
	"vec4": {Name: "vec4", Params: any1(), MinArity: 1, Variadic: true, Return: concrete(ir.TVec4)},

	// Matrix constructors.
	"mat2": {Name: "mat2", Params: any1(), MinArity: 1, Variadic: true, Return: concrete(ir.TMat2)},
	"mat3": {Name: "mat3", Params: any1(), MinArity: 1, Variadic: true, Return: concrete(ir.TMat3)},
	"mat4": {Name: "mat4", Params: any1(), MinArity: 1, Variadic: true, Return: concrete(ir.TMat4)},

	// Trigonometric.
	"sin":   {Name: "sin", MinArity: 1, Return: same()},
	"cos":   {Name: "cos", MinArity: 1, Return: same()},
	"tan":   {Name: "tan", MinArity: 1, Return: same()},
	"asin":  {Name: "asin", MinArity: 1, Return: same()},
	"acos":  {Name: "acos", MinArity: 1, Return: same()},
	"atan":  {Name: "atan", MinArity: 1, Return: same()},
	"atan2": {Name: "atan2", MinArity: 2, Return: same()},
	"sinh":  {Name: "sinh", MinArity: 1, Return: same()},
	"cosh":  {Name: "cosh", MinArity: 1, Return: same()},
	"tanh":  {Name: "tanh", MinArity: 1, Return: same()},

	// Exponential / logarithmic.
	"exp":         {Name: "exp", MinArity: 1, Return: same()},
	"exp2":        {Name: "exp2", MinArity: 1, Return: same()},
	"log":         {Name: "log", MinArity: 1, Return: same()},
	"log2":        {Name: "log2", MinArity: 1, Return: same()},
	"pow":         {Name: "pow", MinArity: 2, Return: same()},
	"sqrt":        {Name: "sqrt", MinArity: 1, Return: same()},
	"inversesqrt": {Name: "inversesqrt", MinArity: 1, Return: same()},

	// Common math.
	"abs":        {Name: "abs", MinArity: 1, Return: same()},
	"sign":       {Name: "sign", MinArity: 1, Return: same()},
	"floor":      {Name: "floor", MinArity: 1, Return: same()},
	"ceil":       {Name: "ceil", MinArity: 1, Return: same()},
	"fract":      {Name: "fract", MinArity: 1, Return: same()},
	"mod":        {Name: "mod", MinArity: 2, Return: same()},
	"min":        {Name: "min", MinArity: 2, Return: same()},
	"max":        {Name: "max", MinArity: 2, Return: same()},
	"clamp":      {Name: "clamp", MinArity: 3, Return: same()},
	"mix":        {Name: "mix", MinArity: 3, Return: same()},
	"step":       {Name: "step", MinArity: 2, Return: second()},
	"smoothstep": {Name: "smoothstep", MinArity: 3, Return: third()},

	// Vector ops.
	"length":    {Name: "length", MinArity: 1, Return: concrete(ir.TFloat)},
	"distance":  {Name: "distance", MinArity: 2, Return: concrete(ir.TFloat)},
	"dot":       {Name: "dot", MinArity: 2, Return: concrete(ir.TFloat)},
	"cross":     {Name: "cross", MinArity: 2, Return: same()},
	"normalize": {Name: "normalize", MinArity: 1, Return: same()},
	"reflect":   {Name: "reflect", MinArity: 2, Return: same()},
	"refract":   {Name: "refract", MinArity: 3, Return: first()},

	// Matrix ops.
	"inverse":     {Name: "inverse", MinArity: 1, Return: same()},
	"transpose":   {Name: "transpose", MinArity: 1, Return: same()},
	"determinant": {Name: "determinant", MinArity: 1, Return: concrete(ir.TFloat)},

	// Texture sampling.
	"texture2D":  {Name: "texture2D", MinArity: 2, Return: concrete(ir.TVec4)},
	"texture":    {Name: "texture", MinArity: 2, Return: concrete(ir.TVec4)},
	"textureLod": {Name: "textureLod", MinArity: 3, Return: concrete(ir.TVec4)},

	// Hash helpers (supplemental: common in shader-sketch DSLs; see
	// SPEC_FULL.md §4.1).
	"hash11": {Name: "hash11", MinArity: 1, Return: concrete(ir.TFloat)},
	"hash21": {Name: "hash21", MinArity: 1, Return: concrete(ir.TFloat)},
	"hash31": {Name: "hash31", MinArity: 1, Return: concrete(ir.TFloat)},

	// Per-component comparison helpers. The closed type set (spec.md
	// §3) has no boolean-vector type, so these collapse to a single
	// bool rather than a per-component bvecN.
	"lessThan":        {Name: "lessThan", MinArity: 2, Return: concrete(ir.TBool)},
	"lessThanEqual":    {Name: "lessThanEqual", MinArity: 2, Return: concrete(ir.TBool)},
	"greaterThan":      {Name: "greaterThan", MinArity: 2, Return: concrete(ir.TBool)},
	"greaterThanEqual": {Name: "greaterThanEqual", MinArity: 2, Return: concrete(ir.TBool)},
	"equal":            {Name: "equal", MinArity: 2, Return: concrete(ir.TBool)},
	"notEqual":         {Name: "notEqual", MinArity: 2, Return: concrete(ir.TBool)},
}

// OperatorClass partitions binary operators.
type OperatorClass uint8

const (
	Arithmetic OperatorClass = iota
	Comparison
	Logical
)

// BinaryOperators maps every recognized binary operator glyph to its
// class.
var BinaryOperators = map[string]OperatorClass{
	"+": Arithmetic,
	"-": Arithmetic,
	"*": Arithmetic,
	"/": Arithmetic,
	"%": Arithmetic,

	"==": Comparison,
	"!=": Comparison,
	"<":  Comparison,
	">":  Comparison,
	"<=": Comparison,
	">=": Comparison,

	"&&": Logical,
	"||": Logical,
}

// UnaryOperators lists the two recognized unary operator glyphs.
var UnaryOperators = map[string]bool{
	"-": true, // negate
	"!": true, // logical not
}

// IsBinaryOperator reports whether name is a known binary operator
// glyph, for the frontend's method-call disambiguation (spec.md §4.2).
func IsBinaryOperator(name string) bool {
	_, ok := BinaryOperators[name]
	return ok
}

// SwizzleAlphabet is the set of letters that may appear in a swizzle or
// single-component field access.
var SwizzleAlphabet = map[byte]bool{
	'x': true, 'y': true, 'z': true, 'w': true,
	'r': true, 'g': true, 'b': true, 'a': true,
	's': true, 't': true, 'p': true, 'q': true,
}

// IsSwizzleName reports whether name is entirely drawn from the
// swizzle alphabet and has a length of 1-4 (1 means a plain field
// access; 2-4 means a swizzle).
func IsSwizzleName(name string) bool {
	if len(name) < 1 || len(name) > 4 {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !SwizzleAlphabet[name[i]] {
			return false
		}
	}
	return true
}

// SwizzleResultType returns the vector type for a swizzle of the given
// component-string length (2-4).
func SwizzleResultType(length int) ir.Type {
	return ir.VectorOfRank(length)
}

// IsScalar, IsVector, IsMatrix, and Rank are thin re-exports of the
// ir.Type classification predicates, kept here because spec.md §4.1
// assigns "type classification" to the Builtins Registry.
func IsScalar(t ir.Type) bool { return t.IsScalar() }
func IsVector(t ir.Type) bool { return t.IsVector() }
func IsMatrix(t ir.Type) bool { return t.IsMatrix() }
func Rank(t ir.Type) int      { return t.Rank() }
