package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// main.go - entry point: CLI parsing, version/docs short-circuits, and
// compilation orchestration (SPEC_FULL.md §4.7/§4.8).

func main() {
	os.Exit(run())
}

func run() (code int) {
	// An "internal: ..." panic is an invariant violation (an unhandled
	// node kind reaching the code generator, never a user-triggered
	// condition) — recovered here at the top of main and reported as
	// an ordinary diagnostic instead of a raw Go stack trace (spec.md
	// §7, grounded in the teacher's own top-level recover pattern).
	defer func() {
		if r := recover(); r != nil {
			msg, ok := r.(string)
			if !ok || !strings.HasPrefix(msg, "internal:") {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "error:0: %s\n", msg)
			code = 1
		}
	}()

	opts, args, err := ParseFlags()
	if err != nil {
		return 2
	}

	setupLogging(opts.Verbose)

	if opts.ShowVersion {
		fmt.Printf("cc32 version %s\n", CompilerVersion)
		return 0
	}

	if opts.ShowDocs {
		PrintDocs(opts.DocsSection)
		return 0
	}

	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "error: no input file specified")
		printUsage(os.Stderr)
		return 1
	}

	compiler := NewCompiler(opts)
	ok, err := compiler.CompileFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "cc32: %v\n", err)
		return 1
	}
	if !ok {
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cc32 [flags] <file>")
	fmt.Fprintln(w, "Run 'cc32 -h' for help")
}
