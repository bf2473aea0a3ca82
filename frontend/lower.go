package frontend

import (
	"strings"
	"unicode"

	"github.com/ydah/rlsl/builtins"
	"github.com/ydah/rlsl/ir"
)

// Lowerer walks the generic syntax tree produced by the grammar into
// ir.Node values, tracking which names are known parameters (immutable
// for the lowering) and which have been locally declared (grows as
// VarDecls are produced), per spec.md §4.2's name-is-declaration-or-
// assignment disambiguation.
type Lowerer struct {
	params   map[string]bool
	declared map[string]bool
}

func newLowerer(params, uniformNames []string) *Lowerer {
	known := make(map[string]bool, len(params)+len(uniformNames))
	for _, p := range params {
		known[p] = true
	}
	for _, u := range uniformNames {
		known[u] = true
	}
	return &Lowerer{params: known, declared: map[string]bool{}}
}

// Lower parses source and lowers it into the IR's root Block. uniforms
// and params are spec.md §4.2's "known uniform names" and "pre-declared
// parameter-name list" inputs: both are folded into the set of names
// the lowering treats as already bound, so a write to one becomes an
// Assignment rather than a fresh VarDecl. A leading `|a, b, c|`
// preamble is stripped with ExtractPreamble before parsing, and its
// names are bound the same way.
func Lower(source string, uniforms map[string]ir.Type, params []string) (*ir.Block, error) {
	preamble, body := ExtractPreamble(source)
	file, err := parseSource(body)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(uniforms))
	for name := range uniforms {
		names = append(names, name)
	}

	l := newLowerer(params, names)
	for _, p := range preamble {
		l.params[p] = true
	}
	return l.lowerBlock(file.Body), nil
}

func (l *Lowerer) snapshotDeclared() map[string]bool {
	cp := make(map[string]bool, len(l.declared))
	for k := range l.declared {
		cp[k] = true
	}
	return cp
}

func (l *Lowerer) restoreDeclared(snap map[string]bool) {
	l.declared = snap
}

// withTemporaryParam marks name as known for the duration of fn,
// restoring its prior membership afterwards. Used for loop index
// variables, which are bound only within the loop body.
func (l *Lowerer) withTemporaryParam(name string, fn func()) {
	had := l.params[name]
	l.params[name] = true
	fn()
	if !had {
		delete(l.params, name)
	}
}

func isAllUpper(name string) bool {
	hasLetter := false
	for _, r := range name {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// lowerBlock lowers every statement in b in order. It does not itself
// snapshot/restore the declared set — callers entering a new scope
// (then/else/loop/function body) do that around the call.
func (l *Lowerer) lowerBlock(b *Block) *ir.Block {
	if b == nil {
		return &ir.Block{}
	}
	out := &ir.Block{Statements: make([]ir.Node, 0, len(b.Statements))}
	for _, s := range b.Statements {
		out.Statements = append(out.Statements, l.lowerStatement(s))
	}
	return out
}

func (l *Lowerer) lowerStatement(s *Statement) ir.Node {
	switch {
	case s.If != nil:
		return l.lowerIf(s.If)
	case s.Unless != nil:
		return l.lowerUnless(s.Unless)
	case s.While != nil:
		return l.lowerWhile(s.While)
	case s.For != nil:
		return l.lowerFor(s.For)
	case s.Def != nil:
		return l.lowerDef(s.Def)
	case s.Break != nil:
		return &ir.Break{}
	case s.Return != nil:
		return l.lowerReturn(s.Return)
	case s.MultiAssign != nil:
		return l.lowerMultiAssign(s.MultiAssign)
	default:
		return l.lowerExprOrAssign(s.ExprOrAssign)
	}
}

// lowerThenElse lowers a then/else pair, restoring the pre-branch
// declared set between and after them so a name declared in one branch
// never leaks into the other (spec.md §4.2's scoped declaration sets).
func (l *Lowerer) lowerThenElse(thenBlk, elseBlk *Block) (*ir.Block, *ir.Block) {
	base := l.snapshotDeclared()
	then := l.lowerBlock(thenBlk)
	l.restoreDeclared(base)

	var els *ir.Block
	if elseBlk != nil {
		els = l.lowerBlock(elseBlk)
		l.restoreDeclared(base)
	}
	return then, els
}

func (l *Lowerer) lowerIf(s *IfStmt) ir.Node {
	cond := l.lowerExpr(s.Cond)
	base := l.snapshotDeclared()
	then := l.lowerBlock(s.Then)
	l.restoreDeclared(base)
	elseNode := l.buildElsifChain(s.Elsif, s.Else, base)
	return &ir.IfStatement{Cond: cond, Then: then, Else: elseNode}
}

// buildElsifChain lowers a trailing elsif/else chain into nested
// IfStatements, each Else holding the next: an elsif chain is
// represented as an IfStatement whose else-branch is another
// IfStatement (spec.md §3).
func (l *Lowerer) buildElsifChain(elsifs []*ElsifClause, finalElse *Block, base map[string]bool) ir.Node {
	var acc ir.Node
	if finalElse != nil {
		l.restoreDeclared(base)
		acc = l.lowerBlock(finalElse)
		l.restoreDeclared(base)
	}
	for i := len(elsifs) - 1; i >= 0; i-- {
		e := elsifs[i]
		l.restoreDeclared(base)
		cond := l.lowerExpr(e.Cond)
		then := l.lowerBlock(e.Then)
		l.restoreDeclared(base)
		acc = &ir.IfStatement{Cond: cond, Then: then, Else: acc}
	}
	return acc
}

// lowerUnless lowers `unless cond ... end` to an IfStatement guarded by
// a logical-not of the condition, per spec.md §4.2.
func (l *Lowerer) lowerUnless(s *UnlessStmt) ir.Node {
	cond := &ir.UnaryOp{Op: "!", Operand: l.lowerExpr(s.Cond)}
	then, els := l.lowerThenElse(s.Then, s.Else)
	var elseNode ir.Node
	if els != nil {
		elseNode = els
	}
	return &ir.IfStatement{Cond: cond, Then: then, Else: elseNode}
}

func (l *Lowerer) lowerWhile(s *WhileStmt) ir.Node {
	cond := l.lowerExpr(s.Cond)
	base := l.snapshotDeclared()
	body := l.lowerBlock(s.Body)
	l.restoreDeclared(base)
	return &ir.WhileLoop{Cond: cond, Body: body}
}

// lowerFor lowers `for i in a..b do ... end`. The bounds are lowered
// through the ordinary (promoting) expression path rather than the
// index-preserving one: spec.md §9 documents this as an accepted quirk
// (loop bounds render as floats even though the index itself is typed
// int inside the body by inference) rather than something to special-
// case further.
func (l *Lowerer) lowerFor(s *ForStmt) ir.Node {
	start := l.lowerExpr(s.Start)
	end := l.lowerExpr(s.End)

	base := l.snapshotDeclared()
	var body *ir.Block
	l.withTemporaryParam(s.Index, func() {
		body = l.lowerBlock(s.Body)
	})
	l.restoreDeclared(base)

	return &ir.ForLoop{Index: s.Index, Start: start, End: end, Body: body}
}

func (l *Lowerer) lowerDef(s *DefStmt) ir.Node {
	outerParams, outerDeclared := l.params, l.declared
	l.params = toSet(s.Params)
	l.declared = map[string]bool{}

	body := l.lowerBlock(s.Body)

	l.params, l.declared = outerParams, outerDeclared

	return &ir.FunctionDefinition{
		Name:       s.Name,
		Params:     s.Params,
		Body:       body,
		ParamTypes: map[string]ir.Type{},
	}
}

func (l *Lowerer) lowerReturn(s *ReturnStmt) ir.Node {
	if s.Value == nil {
		return &ir.Return{}
	}
	return &ir.Return{Value: l.lowerExpr(s.Value)}
}

func (l *Lowerer) lowerMultiAssign(s *MultiAssignStmt) ir.Node {
	targets := make([]ir.Node, len(s.Targets))
	for i, name := range s.Targets {
		targets[i] = &ir.VarRef{Name: name}
		if !l.params[name] && !l.declared[name] {
			l.declared[name] = true
		}
	}
	return &ir.MultipleAssignment{Targets: targets, Source: l.lowerExpr(s.Value)}
}

// targetName extracts the plain name from an AssignTarget, reporting
// whether it came from a `$global` sigil.
func targetName(t *AssignTarget) (name string, isGlobal bool) {
	if t.Global != nil {
		return strings.TrimPrefix(*t.Global, "$"), true
	}
	return *t.Name, false
}

func (l *Lowerer) lowerExprOrAssign(s *ExprOrAssignStmt) ir.Node {
	if s.Target == nil {
		return l.lowerExpr(s.Value)
	}

	value := l.lowerExpr(s.Value)
	name, isGlobal := targetName(s.Target)

	if s.Target.Index != nil {
		idx := l.lowerExprCtx(s.Target.Index, true)
		return &ir.Assignment{
			Target: &ir.ArrayIndex{Array: &ir.VarRef{Name: name}, Index: idx},
			Value:  value,
		}
	}

	switch {
	case isGlobal:
		// A write to a `$name` global, spec.md §4.2: always a
		// GlobalDecl, is_static, not const.
		return &ir.GlobalDecl{Name: name, Init: value, IsStatic: true}
	case isAllUpper(name):
		// A write to an uppercase name, spec.md §4.2: always a
		// GlobalDecl, is_const and is_static.
		return &ir.GlobalDecl{Name: name, Init: value, IsConst: true, IsStatic: true}
	case l.params[name] || l.declared[name]:
		return &ir.Assignment{Target: &ir.VarRef{Name: name}, Value: value}
	default:
		l.declared[name] = true
		return &ir.VarDecl{Name: name, Init: value}
	}
}

// lowerTimesIdiom lowers `recv.times do |i| ... end` to a ForLoop from
// 0 to recv, per spec.md §4.2.
func (l *Lowerer) lowerTimesIdiom(receiver ir.Node, blk *DoBlock) ir.Node {
	index := "i"
	if len(blk.Params) > 0 {
		index = blk.Params[0]
	}

	base := l.snapshotDeclared()
	var body *ir.Block
	l.withTemporaryParam(index, func() {
		body = l.lowerBlock(blk.Body)
	})
	l.restoreDeclared(base)

	return &ir.ForLoop{
		Index: index,
		Start: &ir.Literal{Value: 0, IsFloat: false},
		End:   receiver,
		Body:  body,
	}
}

// --- expression lowering -----------------------------------------------
//
// Each level mirrors the grammar's precedence-climbing shape (Left plus
// a flat slice of (op, right) pairs) and folds it into a left-leaning
// BinaryOp chain. keepInt suppresses the integer-to-float literal
// promotion for the few contexts where the distinction survives
// (array indices; spec.md §4.2).

func (l *Lowerer) lowerExpr(e *Expression) ir.Node { return l.lowerExprCtx(e, false) }

func (l *Lowerer) lowerExprCtx(e *Expression, keepInt bool) ir.Node {
	return l.lowerOr(e.Or, keepInt)
}

func (l *Lowerer) lowerOr(o *LogicalOr, keepInt bool) ir.Node {
	node := l.lowerAnd(o.Left, keepInt)
	for _, r := range o.Rest {
		node = &ir.BinaryOp{Op: r.Op, Left: node, Right: l.lowerAnd(r.Right, keepInt)}
	}
	return node
}

func (l *Lowerer) lowerAnd(a *LogicalAnd, keepInt bool) ir.Node {
	node := l.lowerComparison(a.Left, keepInt)
	for _, r := range a.Rest {
		node = &ir.BinaryOp{Op: r.Op, Left: node, Right: l.lowerComparison(r.Right, keepInt)}
	}
	return node
}

func (l *Lowerer) lowerComparison(c *Comparison, keepInt bool) ir.Node {
	node := l.lowerAdditive(c.Left, keepInt)
	for _, r := range c.Rest {
		node = &ir.BinaryOp{Op: r.Op, Left: node, Right: l.lowerAdditive(r.Right, keepInt)}
	}
	return node
}

func (l *Lowerer) lowerAdditive(a *Additive, keepInt bool) ir.Node {
	node := l.lowerMultiplicative(a.Left, keepInt)
	for _, r := range a.Rest {
		node = &ir.BinaryOp{Op: r.Op, Left: node, Right: l.lowerMultiplicative(r.Right, keepInt)}
	}
	return node
}

func (l *Lowerer) lowerMultiplicative(m *Multiplicative, keepInt bool) ir.Node {
	node := l.lowerUnary(m.Left, keepInt)
	for _, r := range m.Rest {
		node = &ir.BinaryOp{Op: r.Op, Left: node, Right: l.lowerUnary(r.Right, keepInt)}
	}
	return node
}

func (l *Lowerer) lowerUnary(u *Unary, keepInt bool) ir.Node {
	if u.Op != nil {
		return &ir.UnaryOp{Op: *u.Op, Operand: l.lowerUnary(u.Operand, keepInt)}
	}
	return l.lowerPostfix(u.Atom, keepInt)
}

func (l *Lowerer) lowerPostfix(p *Postfix, keepInt bool) ir.Node {
	node := l.lowerAtom(p.Atom, keepInt)
	for _, tr := range p.Trailers {
		switch {
		case tr.Dot != nil:
			node = l.lowerDotTrailer(node, tr.Dot)
		case tr.Index != nil:
			node = &ir.ArrayIndex{Array: node, Index: l.lowerExprCtx(tr.Index, true)}
		}
	}
	return node
}

// lowerDotTrailer performs the method-call disambiguation from
// spec.md §4.2: the grammar already separates indexing ([]) and
// prefix unary (-/!) into their own productions, so what remains
// ambiguous here is exactly binary-operator-as-call, swizzle, field
// access, and a generic call — resolved in that order.
func (l *Lowerer) lowerDotTrailer(receiver ir.Node, d *DotTrailer) ir.Node {
	name := d.Name

	if name == "times" && d.Block != nil {
		return l.lowerTimesIdiom(receiver, d.Block)
	}

	if d.Args != nil && len(d.Args.Args) == 1 && builtins.IsBinaryOperator(name) {
		return &ir.BinaryOp{Op: name, Left: receiver, Right: l.lowerExpr(d.Args.Args[0])}
	}

	if d.Args == nil {
		if len(name) >= 2 && len(name) <= 4 && builtins.IsSwizzleName(name) {
			return &ir.Swizzle{Receiver: receiver, Components: name}
		}
		return &ir.FieldAccess{Receiver: receiver, Field: name}
	}

	return &ir.FuncCall{Name: name, Receiver: receiver, Args: l.lowerArgs(d.Args)}
}

func (l *Lowerer) lowerArgs(a *ArgList) []ir.Node {
	if a == nil {
		return nil
	}
	args := make([]ir.Node, len(a.Args))
	for i, e := range a.Args {
		args[i] = l.lowerExpr(e)
	}
	return args
}

func (l *Lowerer) lowerArrayLit(a *ArrayLit, keepInt bool) ir.Node {
	elems := make([]ir.Node, len(a.Elements))
	for i, e := range a.Elements {
		elems[i] = l.lowerExprCtx(e, keepInt)
	}
	return &ir.ArrayLiteral{Elements: elems}
}

func (l *Lowerer) lowerAtom(a *Atom, keepInt bool) ir.Node {
	switch {
	case a.Float != nil:
		return &ir.Literal{Value: *a.Float, IsFloat: true}
	case a.Int != nil:
		return &ir.Literal{Value: float64(*a.Int), IsFloat: !keepInt}
	case a.Bool != nil:
		return &ir.BoolLiteral{Value: *a.Bool == "true"}
	case a.Const != nil:
		return &ir.Constant{Name: *a.Const}
	case a.Global != nil:
		return &ir.VarRef{Name: strings.TrimPrefix(*a.Global, "$")}
	case a.Array != nil:
		return l.lowerArrayLit(a.Array, keepInt)
	case a.Paren != nil:
		return &ir.Parenthesized{Inner: l.lowerExprCtx(a.Paren, keepInt)}
	case a.Name != nil:
		name := *a.Name
		if a.Call != nil {
			return &ir.FuncCall{Name: name, Args: l.lowerArgs(a.Call)}
		}
		if name == "PI" || name == "TAU" {
			return &ir.Constant{Name: name}
		}
		return &ir.VarRef{Name: name}
	default:
		return &ir.Literal{Value: 0, IsFloat: true}
	}
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
