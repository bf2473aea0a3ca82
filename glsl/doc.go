// Package glsl implements emit.Target for OpenGL Shading Language:
// builtin names pass through unchanged (except texture, which becomes
// texture2D), everything stays infix, and the
// output is prefixed with a #version pragma chosen at construction.
package glsl
