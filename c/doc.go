// Package c implements emit.Target for plain C: scalar arithmetic stays
// infix, but vector arithmetic lowers to function calls
// (vec3_add(a, b), …), math functions take their f-suffixed libm names,
// and numeric literals destined for a float-typed slot carry a trailing
// "f" on top of the shared ".0" rule emit.FormatNumberBase applies.
package c
