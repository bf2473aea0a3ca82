package infer

import (
	"github.com/ydah/rlsl/builtins"
	"github.com/ydah/rlsl/ir"
)

// infer dispatches on the concrete IR node type — the systems-language
// analogue of the teacher's name-based visitor dispatch (spec.md §9):
// a tagged-variant type switch rather than a `visit_<tag>` string
// lookup, with every case spec.md §4.3's rule table names.
func (inf *Infer) infer(n ir.Node) {
	if n == nil {
		return
	}

	switch v := n.(type) {
	case *ir.Block:
		for _, s := range v.Statements {
			inf.infer(s)
		}

	case *ir.Literal:
		if v.IsFloat {
			v.SetType(ir.TFloat)
		} else {
			v.SetType(ir.TInt)
		}

	case *ir.BoolLiteral:
		v.SetType(ir.TBool)

	case *ir.VarRef:
		v.SetType(inf.lookup(v.Name))

	case *ir.VarDecl:
		inf.infer(v.Init)
		t := v.Init.Type()
		v.SetType(t)
		inf.symtab[v.Name] = t

	case *ir.Assignment:
		inf.infer(v.Value)
		inf.infer(v.Target)
		v.SetType(v.Value.Type())
		if ref, ok := v.Target.(*ir.VarRef); ok {
			inf.symtab[ref.Name] = v.Value.Type()
		}

	case *ir.MultipleAssignment:
		inf.inferMultipleAssignment(v)

	case *ir.BinaryOp:
		inf.infer(v.Left)
		inf.infer(v.Right)
		v.SetType(builtins.ResolveBinaryType(v.Op, v.Left.Type(), v.Right.Type()))

	case *ir.UnaryOp:
		inf.infer(v.Operand)
		if v.Op == "!" {
			v.SetType(ir.TBool)
		} else {
			v.SetType(v.Operand.Type())
		}

	case *ir.FuncCall:
		inf.inferFuncCall(v)

	case *ir.FieldAccess:
		inf.infer(v.Receiver)
		v.SetType(inf.inferFieldAccess(v))

	case *ir.Swizzle:
		inf.infer(v.Receiver)
		v.SetType(builtins.SwizzleResultType(len(v.Components)))

	case *ir.Parenthesized:
		inf.infer(v.Inner)
		v.SetType(v.Inner.Type())

	case *ir.IfStatement:
		inf.infer(v.Cond)
		inf.infer(v.Then)
		inf.infer(v.Else)
		v.SetType(blockResultType(v.Then))

	case *ir.ForLoop:
		inf.infer(v.Start)
		inf.infer(v.End)
		prior, had := inf.symtab[v.Index]
		inf.symtab[v.Index] = ir.TInt
		inf.infer(v.Body)
		if had {
			inf.symtab[v.Index] = prior
		} else {
			delete(inf.symtab, v.Index)
		}

	case *ir.WhileLoop:
		inf.infer(v.Cond)
		inf.infer(v.Body)

	case *ir.Break:
		// No type.

	case *ir.Return:
		if v.Value != nil {
			inf.infer(v.Value)
			v.SetType(v.Value.Type())
		}

	case *ir.Constant:
		v.SetType(ir.TFloat)

	case *ir.ArrayLiteral:
		inf.inferArrayLiteral(v)

	case *ir.ArrayIndex:
		inf.inferArrayIndex(v)

	case *ir.GlobalDecl:
		inf.inferGlobalDecl(v)

	case *ir.FunctionDefinition:
		inf.inferFunctionDefinition(v)
	}
}

// blockResultType is the type an If/Ternary yields: the type of its
// then-branch's tail statement (spec.md §4.3).
func blockResultType(b *ir.Block) ir.Type {
	if b == nil || len(b.Statements) == 0 {
		return ir.TFloat
	}
	return b.Statements[len(b.Statements)-1].Type()
}

func (inf *Infer) inferFuncCall(v *ir.FuncCall) {
	if v.Receiver != nil {
		inf.infer(v.Receiver)
	}

	argTypes := make([]ir.Type, len(v.Args))
	for i, a := range v.Args {
		inf.infer(a)
		argTypes[i] = a.Type()
	}

	if sig, ok := builtins.Functions[v.Name]; ok {
		v.SetType(builtins.ResolveReturnType(sig.Return, argTypes))
		return
	}
	if cf, ok := inf.customFuncs[v.Name]; ok {
		v.SetType(cf.resultType())
		return
	}
	if v.Receiver != nil {
		v.SetType(v.Receiver.Type())
		return
	}
	v.SetType(ir.TFloat)
}

// inferFieldAccess implements spec.md §4.3's FieldAccess rule: a
// single-component field is always float; anything else is looked up
// in the uniform table, defaulting to float (§9 documents this lookup
// as loose for nested structs beyond the single `u` object, which this
// module does not attempt to model further).
func (inf *Infer) inferFieldAccess(v *ir.FieldAccess) ir.Type {
	if len(v.Field) == 1 {
		return ir.TFloat
	}
	if t, ok := inf.uniforms[v.Field]; ok {
		return t
	}
	return ir.TFloat
}

func (inf *Infer) inferArrayLiteral(v *ir.ArrayLiteral) {
	for _, e := range v.Elements {
		inf.infer(e)
	}
	elem := ir.TFloat
	if len(v.Elements) > 0 {
		elem = v.Elements[0].Type()
	}
	v.SetType(ir.ArrayOf(elem))
}

func (inf *Infer) inferArrayIndex(v *ir.ArrayIndex) {
	inf.infer(v.Array)
	inf.infer(v.Index)

	if arrType := v.Array.Type(); arrType.Kind == ir.Array {
		if arrType.Elem != nil {
			v.SetType(*arrType.Elem)
			return
		}
	}
	if ref, ok := v.Array.(*ir.VarRef); ok {
		if elem, ok := inf.arrayElem[ref.Name]; ok {
			v.SetType(elem)
			return
		}
	}
	v.SetType(ir.TFloat)
}

func (inf *Infer) inferGlobalDecl(v *ir.GlobalDecl) {
	if v.Init == nil {
		v.SetType(ir.TFloat)
		return
	}
	inf.infer(v.Init)

	if al, ok := v.Init.(*ir.ArrayLiteral); ok {
		arrType := al.Type()
		if v.ArraySize == 0 {
			v.ArraySize = len(al.Elements)
		}
		if v.ElementType.IsZero() {
			if arrType.Elem != nil {
				v.ElementType = *arrType.Elem
			} else {
				v.ElementType = ir.TFloat
			}
		}
		v.SetType(arrType)
		inf.arrayElem[v.Name] = v.ElementType
		inf.symtab[v.Name] = arrType
		return
	}

	t := v.Init.Type()
	v.SetType(t)
	inf.symtab[v.Name] = t
}

func (inf *Infer) inferFunctionDefinition(v *ir.FunctionDefinition) {
	outer := inf.symtab
	local := make(map[string]ir.Type, len(outer)+len(v.Params))
	for k, t := range outer {
		local[k] = t
	}
	for _, p := range v.Params {
		if t, ok := v.ParamTypes[p]; ok {
			local[p] = t
			continue
		}
		local[p] = ir.TFloat
		if v.ParamTypes == nil {
			v.ParamTypes = map[string]ir.Type{}
		}
		v.ParamTypes[p] = ir.TFloat
	}

	inf.symtab = local
	inf.infer(v.Body)
	inf.symtab = outer

	if v.ReturnType.IsZero() {
		v.ReturnType = blockResultType(v.Body)
	}
	v.SetType(v.ReturnType)
}

func (inf *Infer) inferMultipleAssignment(v *ir.MultipleAssignment) {
	inf.infer(v.Source)
	srcType := v.Source.Type()

	switch srcType.Kind {
	case ir.Tuple:
		for i, target := range v.Targets {
			tt := ir.TFloat
			if i < len(srcType.Tuple) {
				tt = srcType.Tuple[i]
			}
			inf.assignTargetType(target, tt)
		}
	case ir.Array:
		elem := ir.TFloat
		if srcType.Elem != nil {
			elem = *srcType.Elem
		}
		for _, target := range v.Targets {
			inf.assignTargetType(target, elem)
		}
	default:
		for _, target := range v.Targets {
			inf.assignTargetType(target, ir.TFloat)
		}
	}

	v.SetType(srcType)
}

func (inf *Infer) assignTargetType(target ir.Node, t ir.Type) {
	target.SetType(t)
	if ref, ok := target.(*ir.VarRef); ok {
		inf.symtab[ref.Name] = t
	}
}
