package main

import "fmt"

// functions.go - call-expression codegen (spec.md §4.4), grounded in
// original_source/compiler.py's CallExp.compile. Function-definition
// prologue/epilogue live in codegen.go alongside Generate, since they
// are the entry point's own bookkeeping rather than a distinct
// concern.

// generateCall pushes arguments right-to-left, calls the callee, and
// restores the stack on return. The cleanup amount differs for a
// declared Function (its ArgSpace, the sum of declared parameter
// sizes) versus a NativeFunction like printf/scanf (no declared
// signature to sum — every argument is pushed register-width, so
// cleanup is 4 bytes per argument, matching the original's
// PrintfStmt/ScanfStmt stack_size computation).
func (cg *CodeGenerator) generateCall(n *CallExpr) {
	for i := len(n.Args) - 1; i >= 0; i-- {
		cg.generateExpr(n.Args[i])
		cg.emit("pushl %%eax")
	}

	cg.emit("call %s", n.ResolvedAs.Name)

	var cleanup int
	switch n.ResolvedAs.Kind {
	case SymFunction:
		cleanup = n.ResolvedAs.ArgSpace
	case SymNativeFunction:
		cleanup = 4 * len(n.Args)
	default:
		panic(fmt.Sprintf("internal: codegen: call target is not callable: %s", n.ResolvedAs.Name))
	}
	if cleanup != 0 {
		cg.emit("addl $%d, %%esp", cleanup)
	}
}
