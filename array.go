package main

// array.go - local/static variable declaration codegen, including the
// recursive array-initialiser element stores (spec.md §4.4), grounded
// in original_source/compiler.py's VarStmt.compile / compile_array.

// generateVarDecl emits, per declarator with an initialiser, the
// store(s) needed to set its initial value. A declarator with no
// initialiser emits nothing: its storage already exists (a stack slot
// within the frame, or a `.comm`-reserved global for a `static`).
func (cg *CodeGenerator) generateVarDecl(n *VarDeclStmt) {
	for _, d := range n.Declarators {
		sym := d.ResolvedAs
		switch {
		case d.ArrayInit != nil:
			cg.generateArrayInit(sym, d.ArrayInit, sym.Type.Inner, 0)
		case d.Init != nil:
			cg.generateExpr(d.Init)
			cg.emit("movl %%eax, %s", sym.Reg(0))
		}
	}
}

// generateArrayInit walks a (possibly nested) brace-enclosed
// initialiser list, storing each leaf expression at its linear byte
// offset within the array (original_source/compiler.py's
// compile_array: step = inner.sizeof(); recurse per element at
// idx + off*step).
func (cg *CodeGenerator) generateArrayInit(sym *Symbol, lit *ArrayLiteral, elemType *Type, baseIdx int) {
	step := elemType.Sizeof()
	for i, el := range lit.Elements {
		idx := baseIdx + i*step
		if nested, ok := el.(*ArrayLiteral); ok {
			cg.generateArrayInit(sym, nested, elemType.Inner, idx)
			continue
		}
		cg.generateExpr(el)
		cg.emit("movl %%eax, %s", sym.Reg(-idx))
	}
}
