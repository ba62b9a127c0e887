package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// compiler.go - the driver pipeline (SPEC_FULL.md §4.8), grounded in
// the teacher's compiler.go Compiler/CompileFile shape: read source →
// Tokenize → Parse → Resolve → (abort if diagnostics fired) →
// Generate → write/print assembly → optionally assemble+link via
// `gcc -m32` → optionally run the result.
type Compiler struct {
	Options *CompilerOptions
	Stats   *CompilationStats
}

func NewCompiler(opts *CompilerOptions) *Compiler {
	return &Compiler{Options: opts}
}

// CompileFile runs one source file through the full pipeline. A
// non-nil error here is always a *driver* failure (file I/O, gcc
// invocation); a diagnostic-carrying compile failure is reported
// directly to stderr and signalled by a false result with a nil
// error, per spec.md §7 ("the CLI never falls through to emit
// assembly on any error").
func (c *Compiler) CompileFile(inputPath string) (bool, error) {
	c.Stats = NewCompilationStats(inputPath)
	logDebug("compiling %s (output=%q run=%v)", inputPath, c.Options.OutPath, c.Options.Run)

	contents, err := os.ReadFile(inputPath)
	if err != nil {
		return false, fmt.Errorf("failed to read source file: %w", err)
	}
	c.Stats.SourceBytes = len(contents)
	c.Stats.SourceLines = strings.Count(string(contents), "\n") + 1

	diags := NewDiagnosticManager()

	tokStart := time.Now()
	tokens := Tokenize(string(contents), diags)
	c.Stats.RecordTokenize(time.Since(tokStart), len(tokens))

	if c.Options.TokenDump {
		for i, t := range tokens {
			fmt.Printf("[%d] line %d %s %q\n", i, t.Line, TokenTypeName(t.Type), TokenValue(t))
		}
		return true, nil
	}

	if diags.HasErrors() {
		diags.Print()
		return false, nil
	}

	parseStart := time.Now()
	parser := NewParser(tokens, diags)
	prog, ok := parser.Parse()
	c.Stats.RecordParse(time.Since(parseStart))
	if !ok {
		diags.Print()
		return false, nil
	}

	if c.Options.ASTDump {
		fmt.Printf("%d top-level declaration(s)\n", len(prog.TopDecls))
		return true, nil
	}

	resolveStart := time.Now()
	resolver := NewResolver(diags)
	resolver.Resolve(prog)
	c.Stats.RecordResolve(time.Since(resolveStart))

	if diags.HasErrors() {
		diags.Print()
		return false, nil
	}

	codegenStart := time.Now()
	asm := Generate(prog, resolver.GlobalOrder)
	c.Stats.RecordCodegen(time.Since(codegenStart), strings.Count(asm, "\n"), len(asm))

	if !c.Options.Run && c.Options.OutPath == "" {
		fmt.Print(asm)
		c.printStats()
		return true, nil
	}

	if c.Options.OutPath != "" && !c.Options.Run {
		if err := os.WriteFile(c.Options.OutPath, []byte(asm), 0644); err != nil {
			return false, fmt.Errorf("failed to write assembly file: %w", err)
		}
		logDebug("assembly written to %s", c.Options.OutPath)
		c.printStats()
		return true, nil
	}

	binPath := c.Options.OutPath
	if binPath == "" {
		binPath = "a.out"
	}
	if err := c.buildBinary(asm, binPath); err != nil {
		return false, err
	}

	if c.Options.Run {
		c.printStats()
		return true, c.runBinary(binPath)
	}

	c.printStats()
	return true, nil
}

func (c *Compiler) printStats() {
	c.Stats.Finalize()
	if c.Options.ShowStats {
		c.Stats.Print()
	}
}

// buildBinary assembles and links the generated assembly into a
// native i386 binary via `gcc -m32`, matching SPEC_FULL.md §4.8.
func (c *Compiler) buildBinary(asm, outPath string) error {
	tmpAsm := filepath.Join(os.TempDir(), "cc32_tmp.s")
	if err := os.WriteFile(tmpAsm, []byte(asm), 0644); err != nil {
		return fmt.Errorf("failed to write temporary assembly: %w", err)
	}
	defer os.Remove(tmpAsm)

	assembleStart := time.Now()
	cmd := exec.Command("gcc", "-m32", "-no-pie", "-o", outPath, tmpAsm)
	logDebug("assembling: %s", strings.Join(cmd.Args, " "))

	out, err := cmd.CombinedOutput()
	c.Stats.RecordAssemble(time.Since(assembleStart))
	if err != nil {
		if len(out) > 0 {
			logError("gcc -m32 failed:\n%s", string(out))
			return fmt.Errorf("assembly failed:\n%s", string(out))
		}
		logError("gcc -m32 failed: %v", err)
		return fmt.Errorf("assembly failed: %w", err)
	}

	if info, statErr := os.Stat(outPath); statErr == nil {
		c.Stats.RecordLink(0, outPath, int(info.Size()))
	} else {
		c.Stats.RecordLink(0, outPath, 0)
	}
	logInfo("binary written to %s", outPath)
	return nil
}

// runBinary executes the compiled binary with inherited stdio. A
// non-zero exit from the program under test is not a driver error.
func (c *Compiler) runBinary(outPath string) error {
	logDebug("executing %s", outPath)
	path := outPath
	if !strings.Contains(path, "/") {
		path = "./" + path
	}
	cmd := exec.Command(path)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			logWarn("program exited with code %d", exitErr.ExitCode())
			return nil
		}
		return fmt.Errorf("failed to execute binary: %w", err)
	}
	return nil
}
