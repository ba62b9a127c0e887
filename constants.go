package main

// constants.go - repository-wide constants describing this compiler's
// 32-bit target and CLI. Only CompilerVersion is referenced by code;
// codegen.go and types.go spell the other values out as literals.

const (
	// CompilerVersion is printed by -version.
	CompilerVersion = "1.0.0"

	// PointerSize is the size in bytes of a pointer, and of every
	// register-width value this compiler pushes/pops (spec.md §3).
	PointerSize = 4

	// DefaultStringCapacity is an initial capacity sized for a typical
	// single-file compilation. NewCodeGenerator does not apply it; the
	// strings.Builder accumulators start empty.
	DefaultStringCapacity = 4096
)

// Assembly section directives (spec.md §6).
const (
	RodataSectionDirective = ".section .rodata"
	TextSectionDirective   = ".text"
	GlobalDirective        = ".globl"
)

// Label prefixes minted by the code generator's monotonic counter
// (spec.md §4.4).
const (
	BranchLabelPrefix   = ".J"
	WhileStartPrefix    = ".S"
	WhileEndPrefix      = ".E"
	RodataConstPrefix   = ".L"
)

// Builtin storage type sizes in bytes (spec.md §3).
const (
	CharSize  = 1
	IntSize   = 4
	FloatSize = 4
)
