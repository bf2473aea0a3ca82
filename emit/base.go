package emit

import (
	"fmt"
	"math"
	"strings"

	"github.com/ydah/rlsl/ir"
)

// precedence orders operators from "||" (lowest) through "*/%"
// (highest), per spec.md §4.4's precedence table.
var precedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3, "<": 3, ">": 3, "<=": 3, ">=": 3,
	"+": 4, "-": 4,
	"*": 5, "/": 5, "%": 5,
}

func precedenceOf(op string) int { return precedence[op] }

// Base is the shared emitter every target embeds. It owns indentation,
// block/control-flow layout, return-lifting, tuple-return synthesis,
// and multi-assignment lowering; Target fills in the spellings that
// vary per dialect.
type Base struct {
	target Target

	out    strings.Builder
	indent int

	emittedStructs   map[string]bool
	currentTupleName string
}

// NewBase constructs a Base bound to target.
func NewBase(target Target) *Base {
	return &Base{target: target, emittedStructs: map[string]bool{}}
}

// EmitProgram renders block as a complete program: the target's
// header, followed by the block's statements with return-lifting
// applied to the tail statement if needsReturn (spec.md §4.4/§4.5).
func (b *Base) EmitProgram(block *ir.Block, needsReturn bool) string {
	if h := b.target.Header(); h != "" {
		b.out.WriteString(h)
	}
	b.emitBlockStatements(block, needsReturn)
	return b.out.String()
}

// --- output plumbing -----------------------------------------------

func (b *Base) write(format string, args ...any) {
	if len(args) == 0 {
		b.out.WriteString(format)
		return
	}
	fmt.Fprintf(&b.out, format, args...)
}

func (b *Base) writeLine(format string, args ...any) {
	b.writeIndent()
	b.write(format, args...)
	b.out.WriteByte('\n')
}

func (b *Base) writeIndent() {
	for i := 0; i < b.indent; i++ {
		b.out.WriteString("    ")
	}
}

func (b *Base) pushIndent() { b.indent++ }
func (b *Base) popIndent() {
	if b.indent > 0 {
		b.indent--
	}
}

// --- statements ------------------------------------------------------

func (b *Base) emitBlockStatements(block *ir.Block, tail bool) {
	if block == nil {
		return
	}
	for i, s := range block.Statements {
		b.emitStatement(s, tail && i == len(block.Statements)-1)
	}
}

// emitStatement renders one statement. tail is true only for the last
// statement of a block under return-lifting (spec.md §4.4): a bare
// expression becomes `return <expr>;`, an ArrayLiteral in a
// tuple-returning function becomes the synthesized struct literal, an
// IfStatement has its own branches lifted recursively, and
// Return/FunctionDefinition/GlobalDecl/MultipleAssignment pass through
// unchanged regardless of tail.
func (b *Base) emitStatement(s ir.Node, tail bool) {
	switch v := s.(type) {
	case *ir.VarDecl:
		b.writeLine("%s;", b.target.VarDecl(v.Name, b.target.TypeName(v.Type()), b.expr(v.Init)))

	case *ir.Assignment:
		b.writeLine("%s = %s;", b.expr(v.Target), b.expr(v.Value))

	case *ir.MultipleAssignment:
		b.emitMultipleAssignment(v)

	case *ir.ForLoop:
		b.emitFor(v)

	case *ir.WhileLoop:
		b.emitWhile(v)

	case *ir.Break:
		b.writeLine("break;")

	case *ir.Return:
		if v.Value == nil {
			b.writeLine("return;")
		} else {
			b.writeLine("return %s;", b.expr(v.Value))
		}

	case *ir.GlobalDecl:
		b.emitGlobalDecl(v)

	case *ir.FunctionDefinition:
		b.emitFunctionDefinition(v)

	case *ir.IfStatement:
		b.emitIf(v, tail)

	case *ir.ArrayLiteral:
		if tail && b.currentTupleName != "" {
			b.writeLine("return %s;", b.target.StructLiteral(b.currentTupleName, b.exprList(v.Elements)))
			return
		}
		if tail {
			b.writeLine("return %s;", b.expr(v))
			return
		}
		b.writeLine("%s;", b.expr(v))

	default:
		if tail {
			b.writeLine("return %s;", b.expr(s))
			return
		}
		b.writeLine("%s;", b.expr(s))
	}
}

func (b *Base) emitIf(v *ir.IfStatement, tail bool) {
	b.writeLine("if (%s) {", b.expr(v.Cond))
	b.pushIndent()
	b.emitBlockStatements(v.Then, tail)
	b.popIndent()
	b.emitElse(v.Else, tail)
}

// emitElse flattens an elsif chain into `} else if (…) {` rather than
// nested `} else { if … }` (spec.md §4.4, §8's elsif-flattening
// property): an IfStatement.Else that is itself an IfStatement, or a
// Block wrapping exactly one, continues the chain at the same brace
// depth.
func (b *Base) emitElse(elseNode ir.Node, tail bool) {
	switch e := elseNode.(type) {
	case nil:
		b.writeLine("}")

	case *ir.IfStatement:
		b.writeLine("} else if (%s) {", b.expr(e.Cond))
		b.pushIndent()
		b.emitBlockStatements(e.Then, tail)
		b.popIndent()
		b.emitElse(e.Else, tail)

	case *ir.Block:
		if len(e.Statements) == 1 {
			if inner, ok := e.Statements[0].(*ir.IfStatement); ok {
				b.emitElse(inner, tail)
				return
			}
		}
		b.writeLine("} else {")
		b.pushIndent()
		b.emitBlockStatements(e, tail)
		b.popIndent()
		b.writeLine("}")

	default:
		b.writeLine("}")
	}
}

func (b *Base) emitFor(v *ir.ForLoop) {
	b.writeLine("%s {", b.target.ForHeader(v.Index, b.expr(v.Start), b.expr(v.End)))
	b.pushIndent()
	b.emitBlockStatements(v.Body, false)
	b.popIndent()
	b.writeLine("}")
}

func (b *Base) emitWhile(v *ir.WhileLoop) {
	b.writeLine("while (%s) {", b.expr(v.Cond))
	b.pushIndent()
	b.emitBlockStatements(v.Body, false)
	b.popIndent()
	b.writeLine("}")
}

func (b *Base) emitGlobalDecl(v *ir.GlobalDecl) {
	if al, ok := v.Init.(*ir.ArrayLiteral); ok {
		typeName := b.target.ArrayTypeName(v.ElementType, v.ArraySize)
		b.writeLine("%s;", b.target.GlobalDeclStmt(v.Name, typeName, b.arrayLiteralExpr(al), v.IsConst, v.IsStatic))
		return
	}
	value := ""
	if v.Init != nil {
		value = b.expr(v.Init)
	}
	b.writeLine("%s;", b.target.GlobalDeclStmt(v.Name, b.target.TypeName(v.Type()), value, v.IsConst, v.IsStatic))
}

// emitFunctionDefinition renders a function, synthesizing a
// "<name>_result" struct ahead of it when ReturnType is a tuple
// (spec.md §4.4's multi-return lowering).
func (b *Base) emitFunctionDefinition(v *ir.FunctionDefinition) {
	isTuple := v.ReturnType.Kind == ir.Tuple
	var returnTypeName string
	if isTuple {
		b.emitTupleResultStruct(v.Name, v.ReturnType.Tuple)
		returnTypeName = v.Name + "_result"
	} else {
		returnTypeName = b.target.TypeName(v.ReturnType)
	}

	params := make([]string, len(v.Params))
	for i, p := range v.Params {
		params[i] = b.target.TypeName(v.ParamTypes[p]) + " " + p
	}

	b.writeLine("%s %s(%s) {", returnTypeName, v.Name, strings.Join(params, ", "))
	b.pushIndent()

	prevTuple := b.currentTupleName
	if isTuple {
		b.currentTupleName = v.Name + "_result"
	} else {
		b.currentTupleName = ""
	}
	b.emitBlockStatements(v.Body, true)
	b.currentTupleName = prevTuple

	b.popIndent()
	b.writeLine("}")
	b.writeLine("")
}

func (b *Base) emitTupleResultStruct(fnName string, fields []ir.Type) {
	name := fnName + "_result"
	if b.emittedStructs[name] {
		return
	}
	b.emittedStructs[name] = true
	for _, line := range b.target.StructDef(name, fields) {
		b.writeLine("%s", line)
	}
	b.writeLine("")
}

// emitMultipleAssignment implements spec.md §4.4's multiple-assignment
// lowering: a tuple-typed source gets a temporary struct local and one
// typed local per target reading its v<i> field; an array-typed source
// gets one typed local per target reading source[i].
func (b *Base) emitMultipleAssignment(v *ir.MultipleAssignment) {
	srcType := v.Source.Type()

	switch srcType.Kind {
	case ir.Tuple:
		structName := ""
		if fc, ok := v.Source.(*ir.FuncCall); ok {
			structName = fc.Name + "_result"
		}
		b.writeLine("%s;", b.target.VarDecl("_tmp", structName, b.expr(v.Source)))
		for i, target := range v.Targets {
			tt := ir.TFloat
			if i < len(srcType.Tuple) {
				tt = srcType.Tuple[i]
			}
			b.writeLine("%s;", b.target.VarDecl(b.targetName(target), b.target.TypeName(tt), fmt.Sprintf("_tmp.v%d", i)))
		}

	case ir.Array:
		elem := ir.TFloat
		if srcType.Elem != nil {
			elem = *srcType.Elem
		}
		srcStr := b.expr(v.Source)
		for i, target := range v.Targets {
			b.writeLine("%s;", b.target.VarDecl(b.targetName(target), b.target.TypeName(elem), fmt.Sprintf("%s[%d]", srcStr, i)))
		}

	default:
		for _, target := range v.Targets {
			b.writeLine("%s;", b.target.VarDecl(b.targetName(target), b.target.TypeName(ir.TFloat), b.expr(v.Source)))
		}
	}
}

func (b *Base) targetName(n ir.Node) string {
	if ref, ok := n.(*ir.VarRef); ok {
		return ref.Name
	}
	return b.expr(n)
}

// --- expressions -------------------------------------------------------

// Expr renders n as an expression. Exported so a Target's BinaryOp and
// CallExpr overrides can recurse back into the shared expression
// renderer for their operands.
func (b *Base) Expr(n ir.Node) string { return b.expr(n) }

func (b *Base) expr(n ir.Node) string {
	switch v := n.(type) {
	case *ir.Literal:
		return b.target.Number(v.Value, v.IsFloat)
	case *ir.BoolLiteral:
		return b.target.Bool(v.Value)
	case *ir.VarRef:
		return v.Name
	case *ir.Constant:
		return b.constantLiteral(v.Name)
	case *ir.UnaryOp:
		return v.Op + b.exprChild(v.Operand, unaryPrecedence)
	case *ir.BinaryOp:
		return b.exprBinaryOp(v)
	case *ir.FuncCall:
		return b.target.CallExpr(b, v, b.exprList(v.Args))
	case *ir.FieldAccess:
		return b.expr(v.Receiver) + "." + v.Field
	case *ir.Swizzle:
		return b.expr(v.Receiver) + "." + v.Components
	case *ir.Parenthesized:
		return "(" + b.expr(v.Inner) + ")"
	case *ir.ArrayIndex:
		return b.expr(v.Array) + "[" + b.expr(v.Index) + "]"
	case *ir.ArrayLiteral:
		return b.arrayLiteralExpr(v)
	case *ir.IfStatement:
		return b.target.Ternary(b.expr(v.Cond), b.blockTailExpr(v.Then), b.blockTailExpr(elseBlock(v.Else)))
	default:
		// A statement-shaped node reached expression position: a bug in
		// the frontend or infer stage, not a recoverable emit failure.
		panic(fmt.Sprintf("emit: unknown expression node kind: %T", n))
	}
}

// unaryPrecedence is higher than every binary operator, so a unary
// operand is only parenthesized when it is itself a lower-precedence
// BinaryOp (e.g. -(a + b)).
const unaryPrecedence = 6

func (b *Base) constantLiteral(name string) string {
	switch name {
	case "PI":
		return b.target.Number(math.Pi, true)
	case "TAU":
		return b.target.Number(2*math.Pi, true)
	default:
		return name
	}
}

func (b *Base) exprBinaryOp(v *ir.BinaryOp) string {
	if rendered, ok := b.target.BinaryOp(b, v); ok {
		return rendered
	}
	prec := precedenceOf(v.Op)
	return b.exprChild(v.Left, prec) + " " + v.Op + " " + b.exprChild(v.Right, prec)
}

// exprChild renders n as a side of a binary operator at precedence
// parentPrec, parenthesizing it when n is itself a BinaryOp with
// strictly lower precedence (spec.md §8's precedence-preservation
// property).
func (b *Base) exprChild(n ir.Node, parentPrec int) string {
	if bin, ok := n.(*ir.BinaryOp); ok && precedenceOf(bin.Op) < parentPrec {
		return "(" + b.expr(n) + ")"
	}
	return b.expr(n)
}

func (b *Base) exprList(nodes []ir.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = b.expr(n)
	}
	return out
}

func (b *Base) arrayLiteralExpr(v *ir.ArrayLiteral) string {
	t := v.Type()
	elemName := "float"
	if t.Elem != nil {
		elemName = b.target.TypeName(*t.Elem)
	}
	return b.target.ArrayLiteral(elemName, b.exprList(v.Elements))
}

func (b *Base) blockTailExpr(block *ir.Block) string {
	if block == nil || len(block.Statements) == 0 {
		return ""
	}
	return b.expr(block.Statements[len(block.Statements)-1])
}

func elseBlock(n ir.Node) *ir.Block {
	switch v := n.(type) {
	case nil:
		return nil
	case *ir.Block:
		return v
	case *ir.IfStatement:
		return &ir.Block{Statements: []ir.Node{v}}
	default:
		return nil
	}
}
