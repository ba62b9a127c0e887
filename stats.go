package main

import (
	"fmt"
	"os"
	"time"
)

// stats.go - per-phase compilation statistics (SPEC_FULL.md §4.8),
// grounded in the teacher's stats.go CompilationStats shape, narrowed
// to this pipeline's four phases (tokenize/parse/resolve/codegen) plus
// the optional assemble/link phases.
type CompilationStats struct {
	StartTime time.Time

	TokenizeTime time.Duration
	ParseTime    time.Duration
	ResolveTime  time.Duration
	CodegenTime  time.Duration
	AssembleTime time.Duration
	LinkTime     time.Duration
	TotalTime    time.Duration

	SourceFile  string
	SourceLines int
	SourceBytes int

	TokenCount int

	AssemblyLines int
	AssemblyBytes int

	OutputFile  string
	OutputBytes int
}

func NewCompilationStats(sourceFile string) *CompilationStats {
	return &CompilationStats{StartTime: time.Now(), SourceFile: sourceFile}
}

func (cs *CompilationStats) RecordTokenize(d time.Duration, tokenCount int) {
	cs.TokenizeTime = d
	cs.TokenCount = tokenCount
}

func (cs *CompilationStats) RecordParse(d time.Duration) { cs.ParseTime = d }

func (cs *CompilationStats) RecordResolve(d time.Duration) { cs.ResolveTime = d }

func (cs *CompilationStats) RecordCodegen(d time.Duration, asmLines, asmBytes int) {
	cs.CodegenTime = d
	cs.AssemblyLines = asmLines
	cs.AssemblyBytes = asmBytes
}

func (cs *CompilationStats) RecordAssemble(d time.Duration) { cs.AssembleTime = d }

func (cs *CompilationStats) RecordLink(d time.Duration, outputFile string, outputBytes int) {
	cs.LinkTime = d
	cs.OutputFile = outputFile
	cs.OutputBytes = outputBytes
}

func (cs *CompilationStats) Finalize() { cs.TotalTime = time.Since(cs.StartTime) }

// Print writes a formatted statistics report to os.Stderr (the driver
// calls it only when -stat is given).
func (cs *CompilationStats) Print() {
	fmt.Fprintln(os.Stderr, "=== Compilation Statistics ===")
	fmt.Fprintf(os.Stderr, "Source: %s (%s, %d lines)\n",
		cs.SourceFile, formatBytes(cs.SourceBytes), cs.SourceLines)

	fmt.Fprintln(os.Stderr, "\nPhases:")
	fmt.Fprintf(os.Stderr, "  Tokenize: %s (%d tokens)\n", cs.TokenizeTime, cs.TokenCount)
	fmt.Fprintf(os.Stderr, "  Parse:    %s\n", cs.ParseTime)
	fmt.Fprintf(os.Stderr, "  Resolve:  %s\n", cs.ResolveTime)
	fmt.Fprintf(os.Stderr, "  Codegen:  %s (%d lines, %s)\n",
		cs.CodegenTime, cs.AssemblyLines, formatBytes(cs.AssemblyBytes))
	if cs.AssembleTime > 0 {
		fmt.Fprintf(os.Stderr, "  Assemble: %s\n", cs.AssembleTime)
	}
	if cs.LinkTime > 0 {
		fmt.Fprintf(os.Stderr, "  Link:     %s\n", cs.LinkTime)
	}

	if cs.OutputFile != "" {
		fmt.Fprintf(os.Stderr, "\nOutput: %s (%s)\n", cs.OutputFile, formatBytes(cs.OutputBytes))
	}

	fmt.Fprintf(os.Stderr, "\nTotal: %s\n", cs.TotalTime)
}

// formatBytes converts a byte count to a human-readable string.
func formatBytes(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
