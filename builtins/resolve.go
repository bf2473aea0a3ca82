package builtins

import "github.com/ydah/rlsl/ir"

// ResolveBinaryType implements the one binary-op result-resolution
// algorithm from spec.md §4.1: comparison/logical operators always
// yield bool; arithmetic operators apply the matrix/vector/scalar
// cascade, in order, falling back to float.
func ResolveBinaryType(op string, left, right ir.Type) ir.Type {
	switch BinaryOperators[op] {
	case Comparison, Logical:
		return ir.TBool
	}

	switch {
	case left.IsMatrix() && right.IsVector() && left.Rank() == right.Rank():
		// 1. matrix × vector -> vector of matching rank
		return right
	case left.IsVector() && right.IsMatrix() && left.Rank() == right.Rank():
		// 2. vector × matrix -> vector of matching rank
		return left
	case left.IsMatrix() && right.IsMatrix() && left.Rank() == right.Rank():
		// 3. matrix × matrix (same rank) -> matrix of that rank
		return left
	case left.IsMatrix() && right.IsScalar():
		// 4. matrix × scalar -> matrix
		return left
	case left.IsScalar() && right.IsMatrix():
		// 4. scalar × matrix -> matrix
		return right
	case left.IsVector() && right.IsVector() && left.Rank() == right.Rank():
		// 5. vector × vector (same rank) -> vector
		return left
	case left.IsVector() && right.IsScalar():
		// 6. vector × scalar -> vector
		return left
	case left.IsScalar() && right.IsVector():
		// 6. scalar × vector -> vector
		return right
	default:
		// 7. otherwise -> float
		return ir.TFloat
	}
}

// ResolveReturnType applies a built-in's declared ReturnRule to the
// inferred types of its call-site arguments.
func ResolveReturnType(rule ReturnRule, argTypes []ir.Type) ir.Type {
	switch rule.Kind {
	case RuleSame, RuleFirst:
		return argAt(argTypes, 0)
	case RuleSecond:
		return argAt(argTypes, 1)
	case RuleThird:
		return argAt(argTypes, 2)
	case RuleConcrete:
		return rule.Concrete
	default:
		return ir.TFloat
	}
}

func argAt(argTypes []ir.Type, i int) ir.Type {
	if i < 0 || i >= len(argTypes) {
		return ir.TFloat
	}
	return argTypes[i]
}
