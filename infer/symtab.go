package infer

import "github.com/ydah/rlsl/ir"

// CustomFunction is one entry of the façade's custom_functions config
// (spec.md §6): a user-defined helper's declared return type(s) and,
// optionally, its parameter types. Returns holds more than one element
// for a function that returns a tuple.
type CustomFunction struct {
	Returns []ir.Type
	Params  []ir.Type
}

func (cf CustomFunction) resultType() ir.Type {
	switch len(cf.Returns) {
	case 0:
		return ir.TFloat
	case 1:
		return cf.Returns[0]
	default:
		return ir.TupleOf(cf.Returns...)
	}
}

// Infer runs the type-inference pass. It holds a flat symbol table
// (variable name -> type) distinct from the uniform table (uniform
// member name -> type) that FieldAccess falls back to, plus a small
// table remembering named globals' array element types across
// ArrayIndex lookups.
type Infer struct {
	symtab      map[string]ir.Type
	uniforms    map[string]ir.Type
	customFuncs map[string]CustomFunction
	arrayElem   map[string]ir.Type
}

// New seeds the symbol table with uniforms and the two well-known
// vector parameter names frag_coord and resolution (spec.md §4.3).
func New(uniforms map[string]ir.Type, customFuncs map[string]CustomFunction) *Infer {
	symtab := make(map[string]ir.Type, len(uniforms)+2)
	for name, t := range uniforms {
		symtab[name] = t
	}
	symtab["frag_coord"] = ir.TVec2
	symtab["resolution"] = ir.TVec2

	return &Infer{
		symtab:      symtab,
		uniforms:    uniforms,
		customFuncs: customFuncs,
		arrayElem:   map[string]ir.Type{},
	}
}

// Run infers types over block in place. It is idempotent: running it
// twice on the same tree yields the same type tags (spec.md §8).
func (inf *Infer) Run(block *ir.Block) {
	inf.infer(block)
}

func (inf *Infer) lookup(name string) ir.Type {
	if t, ok := inf.symtab[name]; ok {
		return t
	}
	return ir.TFloat
}
