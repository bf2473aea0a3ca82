package ir

// Node is the sealed interface implemented by every IR node variant.
// Only types in this package may implement it; the unexported marker
// method makes that a compile-time guarantee, so a type switch over
// Node elsewhere in the module (infer, emit) can treat its case list as
// exhaustive.
type Node interface {
	Type() Type
	SetType(Type)

	isNode()
}

// Block is an ordered sequence of statements. It is itself a Node so
// that it can appear as a FunctionDefinition body, an IfStatement
// branch, or a loop body uniformly.
type Block struct {
	TypeSlot
	Statements []Node
}

func (*Block) isNode() {}

// Literal is a numeric literal. IsFloat is true when the literal was
// written with a fractional part, or when the frontend has promoted an
// integer literal to float (see frontend's integer-promotion rule).
// Only array-index literals and the times idiom's synthetic 0 start
// keep IsFloat false; for-loop bounds are promoted like any other.
type Literal struct {
	TypeSlot
	Value   float64
	IsFloat bool
}

func (*Literal) isNode() {}

// BoolLiteral is a boolean literal.
type BoolLiteral struct {
	TypeSlot
	Value bool
}

func (*BoolLiteral) isNode() {}

// VarRef references a previously declared name (or a block parameter).
type VarRef struct {
	TypeSlot
	Name string
}

func (*VarRef) isNode() {}

// VarDecl introduces a new local variable.
type VarDecl struct {
	TypeSlot
	Name string
	Init Node
}

func (*VarDecl) isNode() {}

// Assignment writes to an already-declared name or an indexed
// location. Target is a *VarRef or an *ArrayIndex.
type Assignment struct {
	TypeSlot
	Target Node
	Value  Node
}

func (*Assignment) isNode() {}

// MultipleAssignment destructures a tuple- or array-typed expression
// into several targets (`a, b = ...`).
type MultipleAssignment struct {
	TypeSlot
	Targets []Node
	Source  Node
}

func (*MultipleAssignment) isNode() {}

// BinaryOp applies a binary operator glyph ("+", "==", "&&", …).
type BinaryOp struct {
	TypeSlot
	Op    string
	Left  Node
	Right Node
}

func (*BinaryOp) isNode() {}

// UnaryOp applies a unary operator glyph ("-" or "!").
type UnaryOp struct {
	TypeSlot
	Op      string
	Operand Node
}

func (*UnaryOp) isNode() {}

// FuncCall is a builtin or user-defined function call, optionally with
// a receiver (a method-call-shaped call, e.g. `v.dot(w)`).
type FuncCall struct {
	TypeSlot
	Name     string
	Receiver Node
	Args     []Node
}

func (*FuncCall) isNode() {}

// FieldAccess is a non-swizzle field access: a single component
// (`v.x`) or a named member (`u.resolution`).
type FieldAccess struct {
	TypeSlot
	Receiver Node
	Field    string
}

func (*FieldAccess) isNode() {}

// Swizzle is a 2-4 letter component projection (`v.xyz`, `c.rgba`).
type Swizzle struct {
	TypeSlot
	Receiver   Node
	Components string
}

func (*Swizzle) isNode() {}

// Parenthesized wraps an expression the surface source explicitly
// parenthesized. Emitters that already add their own parentheses may
// unwrap it; it exists so the frontend never has to guess whether a
// parenthesization was load-bearing for precedence.
type Parenthesized struct {
	TypeSlot
	Inner Node
}

func (*Parenthesized) isNode() {}

// IfStatement represents if/then/else, elsif chains (Else holding
// another *IfStatement), and lowered `unless` (Cond wrapped in a
// UnaryOp "!").
type IfStatement struct {
	TypeSlot
	Cond Node
	Then *Block
	Else Node // nil, *Block, or *IfStatement
}

func (*IfStatement) isNode() {}

// ForLoop is `for <Index> in <Start>..<End> do … end`, and the lowered
// form of the `times` idiom (Start = int literal 0, End = receiver).
type ForLoop struct {
	TypeSlot
	Index string
	Start Node
	End   Node
	Body  *Block
}

func (*ForLoop) isNode() {}

// WhileLoop is `while <Cond> do … end`.
type WhileLoop struct {
	TypeSlot
	Cond Node
	Body *Block
}

func (*WhileLoop) isNode() {}

// Break is a bare `break` statement.
type Break struct {
	TypeSlot
}

func (*Break) isNode() {}

// Return is `return` (Value == nil) or `return <expr>`.
type Return struct {
	TypeSlot
	Value Node
}

func (*Return) isNode() {}

// Constant references a symbolic constant (PI, TAU).
type Constant struct {
	TypeSlot
	Name string
}

func (*Constant) isNode() {}

// ArrayLiteral is `[e0, e1, …]`.
type ArrayLiteral struct {
	TypeSlot
	Elements []Node
}

func (*ArrayLiteral) isNode() {}

// ArrayIndex is `<Array>[<Index>]`, both as an expression and (inside
// an Assignment.Target) as an indexed write target.
type ArrayIndex struct {
	TypeSlot
	Array Node
	Index Node
}

func (*ArrayIndex) isNode() {}

// GlobalDecl is a module-scope declaration: `$name = …` (IsStatic,
// !IsConst) or an uppercase write `NAME = …` (IsStatic, IsConst).
type GlobalDecl struct {
	TypeSlot
	Name        string
	Init        Node
	IsConst     bool
	IsStatic    bool
	ArraySize   int  // > 0 once known for an array-typed global
	ElementType Type // element type once known for an array-typed global
}

func (*GlobalDecl) isNode() {}

// FunctionDefinition is `def name(params) … end`. ReturnType may be a
// Tuple type (multi-value return); ParamTypes is filled in by the
// helpers pathway's user-supplied signature map, or by inference.
type FunctionDefinition struct {
	TypeSlot
	Name       string
	Params     []string
	Body       *Block
	ReturnType Type
	ParamTypes map[string]Type
}

func (*FunctionDefinition) isNode() {}
