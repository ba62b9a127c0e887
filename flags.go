package main

import (
	"flag"
	"fmt"
	"os"
)

// flags.go - command-line flag parsing (SPEC_FULL.md §4.7), grounded
// in the teacher's flags.go CompilerOptions/ParseFlags shape, narrowed
// to this compiler's flag set.

// CompilerOptions holds the parsed command-line configuration.
type CompilerOptions struct {
	OutPath     string
	Verbose     bool
	TokenDump   bool
	ASTDump     bool
	Run         bool
	ShowStats   bool
	ShowVersion bool
	ShowDocs    bool
	DocsSection string
}

// ParseFlags parses os.Args[1:] and returns the options plus remaining
// positional arguments (the single source file).
func ParseFlags() (*CompilerOptions, []string, error) {
	opts := &CompilerOptions{}

	fs := flag.NewFlagSet("cc32", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	fs.StringVar(&opts.OutPath, "o", "", "write assembly to `file` (default: standard output); with -run, the linked binary's path (default: a.out)")
	fs.BoolVar(&opts.Verbose, "v", false, "enable verbose (debug-level) logging")
	fs.BoolVar(&opts.TokenDump, "tokens", false, "print the token stream and exit")
	fs.BoolVar(&opts.ASTDump, "ast", false, "print the number of parsed top-level declarations and exit")
	fs.BoolVar(&opts.Run, "run", false, "assemble, link (via gcc -m32) and run the result")
	fs.BoolVar(&opts.ShowStats, "stat", false, "print compilation statistics to stderr")
	fs.BoolVar(&opts.ShowVersion, "version", false, "print the compiler version and exit")
	fs.BoolVar(&opts.ShowDocs, "docs", false, "print built-in reference documentation and exit")
	fs.StringVar(&opts.DocsSection, "docs-section", "", "restrict -docs to one `section`")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: cc32 [flags] <file>")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, nil, err
	}

	return opts, fs.Args(), nil
}
