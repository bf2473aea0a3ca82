// Package rlsl lowers an embedded, Ruby-flavored shader DSL into one
// typed IR and emits it as C, Metal Shading Language, WebGPU Shading
// Language, or OpenGL Shading Language.
//
// The pipeline is three stages, composed by Transpiler:
//
//	source, err := rlsl.New(rlsl.Options{
//	    Uniforms: map[string]ir.Type{"resolution": ir.TVec2},
//	    Target:   "glsl",
//	})
//	if err := source.Parse(shaderSource); err != nil {
//	    log.Fatal(err)
//	}
//	out, err := source.Emit()
package rlsl

import (
	"github.com/pkg/errors"

	"github.com/ydah/rlsl/c"
	"github.com/ydah/rlsl/emit"
	"github.com/ydah/rlsl/frontend"
	"github.com/ydah/rlsl/glsl"
	"github.com/ydah/rlsl/infer"
	"github.com/ydah/rlsl/ir"
	"github.com/ydah/rlsl/msl"
	"github.com/ydah/rlsl/wgsl"
)

// ParseError wraps a surface-syntax failure (spec.md §7.1).
type ParseError struct{ cause error }

func (e *ParseError) Error() string { return "rlsl: parse error: " + e.cause.Error() }
func (e *ParseError) Unwrap() error { return e.cause }

// InternalError signals a bug in the IR or caller: Emit called before
// Parse, or an emitter walked into an IR node kind it does not know
// (spec.md §7.2).
type InternalError struct{ cause error }

func (e *InternalError) Error() string { return "rlsl: internal error: " + e.cause.Error() }
func (e *InternalError) Unwrap() error { return e.cause }

// ConfigurationError signals an invalid Options value: a target
// selector outside {c, msl, wgsl, glsl} (spec.md §7.3).
type ConfigurationError struct{ cause error }

func (e *ConfigurationError) Error() string { return "rlsl: configuration error: " + e.cause.Error() }
func (e *ConfigurationError) Unwrap() error { return e.cause }

// FunctionSignature is one entry of TranspileHelpers' function_signatures
// map (spec.md §4.5): the declared return type and, optionally, each
// parameter's type, applied directly to a matching top-level
// FunctionDefinition before inference runs.
type FunctionSignature struct {
	ReturnType ir.Type
	ParamTypes map[string]ir.Type
}

// Options configures one Transpiler instance (spec.md §6's
// configuration table).
type Options struct {
	// Uniforms seeds the inference symbol table and determines
	// FieldAccess return types on the uniforms object.
	Uniforms map[string]ir.Type
	// CustomFunctions augments the builtins registry with user-defined
	// helper signatures.
	CustomFunctions map[string]infer.CustomFunction
	// Target selects the emitter: one of "c", "msl", "wgsl", "glsl".
	Target string
	// NeedsReturn controls whether Emit lifts the program's tail
	// statement to a return.
	NeedsReturn bool
	// GLSLVersion is rendered as "#version <GLSLVersion>"; only
	// consulted when Target == "glsl". Defaults to "330 core".
	GLSLVersion string
}

// Transpiler composes the Frontend, Type Inference, and Emitters
// stages over one Options value. It is not safe for concurrent use by
// multiple goroutines against the same instance, and holds no state
// that outlives a single Parse/Emit cycle (spec.md §5).
type Transpiler struct {
	opts Options
	ir   *ir.Block
}

// New returns a Transpiler configured with opts. Options are not
// validated until Emit, matching spec.md §7's "target selector is not
// one of the four dialects" failing at emit time rather than
// construction.
func New(opts Options) *Transpiler {
	return &Transpiler{opts: opts}
}

// Parse runs the Frontend then Type Inference over source, seeding the
// inference symbol table with opts.Uniforms (frag_coord/resolution are
// seeded to vec2 regardless, per spec.md §4.5).
func (t *Transpiler) Parse(source string) error {
	block, err := frontend.Lower(source, t.opts.Uniforms, nil)
	if err != nil {
		return &ParseError{cause: err}
	}

	inf := infer.New(t.opts.Uniforms, t.opts.CustomFunctions)
	inf.Run(block)

	t.ir = block
	return nil
}

// Emit renders the parsed IR in the configured target dialect. It
// fails with InternalError if no IR has been parsed, and with
// ConfigurationError if opts.Target is not one of the four known
// dialects (spec.md §4.5, §7).
func (t *Transpiler) Emit() (string, error) {
	if t.ir == nil {
		return "", &InternalError{cause: errors.New("emit called before parse")}
	}

	target, err := t.resolveTarget()
	if err != nil {
		return "", err
	}

	return emit.NewBase(target).EmitProgram(t.ir, t.opts.NeedsReturn), nil
}

// TranspileHelpers parses source, applies functionSignatures to each
// matching top-level FunctionDefinition (setting its ReturnType and
// ParamTypes directly, skipping names with no definition), infers, and
// emits with NeedsReturn forced false (spec.md §4.5's helpers entry
// point — used when the caller already knows a function's signature
// and wants inference to respect it rather than derive it from the
// body).
func (t *Transpiler) TranspileHelpers(source string, functionSignatures map[string]FunctionSignature) (string, error) {
	block, err := frontend.Lower(source, t.opts.Uniforms, nil)
	if err != nil {
		return "", &ParseError{cause: err}
	}

	for _, stmt := range block.Statements {
		fn, ok := stmt.(*ir.FunctionDefinition)
		if !ok {
			continue
		}
		sig, ok := functionSignatures[fn.Name]
		if !ok {
			continue
		}
		fn.ReturnType = sig.ReturnType
		if sig.ParamTypes != nil {
			fn.ParamTypes = sig.ParamTypes
		}
	}

	inf := infer.New(t.opts.Uniforms, t.opts.CustomFunctions)
	inf.Run(block)
	t.ir = block

	target, err := t.resolveTarget()
	if err != nil {
		return "", err
	}
	return emit.NewBase(target).EmitProgram(block, false), nil
}

func (t *Transpiler) resolveTarget() (emit.Target, error) {
	switch t.opts.Target {
	case "c":
		return c.New(), nil
	case "msl":
		return msl.New(), nil
	case "wgsl":
		return wgsl.New(), nil
	case "glsl":
		return glsl.New(t.opts.GLSLVersion), nil
	default:
		return nil, &ConfigurationError{cause: errors.Errorf("unknown target %q", t.opts.Target)}
	}
}
