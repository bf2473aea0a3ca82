// Command rlslc is the rlsl shader transpiler CLI.
//
// Usage:
//
//	rlslc [options] <input>
//
// Examples:
//
//	rlslc -target glsl shader.rb            # Transpile to GLSL on stdout
//	rlslc -target c -o shader.c shader.rb   # Transpile to C, write to file
//	rlslc -target wgsl -return shader.rb    # Lift the tail statement to return
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/ydah/rlsl"
	"github.com/ydah/rlsl/ir"
)

var (
	output      = flag.String("o", "", "output file (default: stdout)")
	target      = flag.String("target", "glsl", "output dialect: c, msl, wgsl, glsl")
	needsReturn = flag.Bool("return", false, "lift the tail statement to a return")
	glslVersion = flag.String("glsl-version", "", "GLSL #version string (glsl target only)")
	versionFlag = flag.Bool("version", false, "print version")
)

func version() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "dev"
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *versionFlag {
		fmt.Printf("rlslc version %s\n", version())
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		usage()
		os.Exit(1)
	}

	inputPath := args[0]
	source, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	transpiler := rlsl.New(rlsl.Options{
		Uniforms:    map[string]ir.Type{"resolution": ir.TVec2},
		Target:      *target,
		NeedsReturn: *needsReturn,
		GLSLVersion: *glslVersion,
	})

	if err := transpiler.Parse(string(source)); err != nil {
		fmt.Fprintf(os.Stderr, "Parse error: %v\n", err)
		os.Exit(1)
	}

	out, err := transpiler.Emit()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Emit error: %v\n", err)
		os.Exit(1)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(out), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Successfully transpiled %s to %s (%d bytes)\n", inputPath, *output, len(out))
		return
	}

	fmt.Print(out)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: rlslc [options] <input>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  rlslc -target glsl shader.rb              Transpile to GLSL on stdout\n")
	fmt.Fprintf(os.Stderr, "  rlslc -target c -o shader.c shader.rb     Transpile to C, write to file\n")
}
