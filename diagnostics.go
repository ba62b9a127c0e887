package main

import (
	"fmt"
	"os"
)

// diagnostics.go - the compiler's single diagnostic channel.
//
// Grounded on the teacher's DiagnosticManager (diagnostics.go), with
// its column/category/color/source-context richness stripped down to
// the exact wire format spec.md §6/§7 demands: "error:<line>: <message>"
// to stderr, exit code non-zero iff any error fired.

// Severity distinguishes errors (which block codegen and force a
// non-zero exit) from warnings (which do neither).
type Severity int

const (
	SevError Severity = iota
	SevWarning
)

// Diagnostic is a single reported condition.
type Diagnostic struct {
	Severity Severity
	Line     int
	Message  string
}

// DiagnosticManager accumulates diagnostics across an entire
// compilation (lexing, parsing, resolution) so they can be reported
// together, matching spec.md §7's "collected" semantic-error policy.
type DiagnosticManager struct {
	Diagnostics []Diagnostic
}

func NewDiagnosticManager() *DiagnosticManager {
	return &DiagnosticManager{}
}

// Errorf records an error-severity diagnostic.
func (dm *DiagnosticManager) Errorf(line int, format string, args ...interface{}) {
	dm.Diagnostics = append(dm.Diagnostics, Diagnostic{
		Severity: SevError,
		Line:     line,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Warnf records a warning-severity diagnostic. No pass of this
// compiler calls it; HasWarnings and Print handle the severity.
func (dm *DiagnosticManager) Warnf(line int, format string, args ...interface{}) {
	dm.Diagnostics = append(dm.Diagnostics, Diagnostic{
		Severity: SevWarning,
		Line:     line,
		Message:  fmt.Sprintf(format, args...),
	})
}

// HasErrors reports whether any error-severity diagnostic fired.
// Per spec.md §7 this gates whether the code generator runs at all.
func (dm *DiagnosticManager) HasErrors() bool {
	for _, d := range dm.Diagnostics {
		if d.Severity == SevError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any warning-severity diagnostic fired.
func (dm *DiagnosticManager) HasWarnings() bool {
	for _, d := range dm.Diagnostics {
		if d.Severity == SevWarning {
			return true
		}
	}
	return false
}

// Print writes every diagnostic to stderr in spec.md §6's exact wire
// format: "error:<line>: <message>" (or "warning:<line>: <message>").
func (dm *DiagnosticManager) Print() {
	for _, d := range dm.Diagnostics {
		label := "error"
		if d.Severity == SevWarning {
			label = "warning"
		}
		fmt.Fprintf(os.Stderr, "%s:%d: %s\n", label, d.Line, d.Message)
	}
}
