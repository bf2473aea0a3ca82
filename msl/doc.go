// Package msl implements emit.Target for Metal Shading Language: math
// builtins keep their overloaded names, vector arithmetic stays infix,
// and a texture sample becomes a method call on the sampled texture
// object against a well-known sampler named textureSampler (spec.md
// §9's open question on this name is resolved in DESIGN.md).
package msl
