package main

// control_flow.go - if/while/break/continue codegen (spec.md §4.4),
// grounded in original_source/compiler.py's IfStmt/WhileStmt.compile.
//
// Label scheme: `.J` for if-statement branch targets, `.S`/`.E` for a
// while loop's top-of-loop and past-the-loop labels. break/continue
// resolve to the innermost enclosing loop's `.E`/`.S` label via
// CodeGenerator's breakStack/continueStack, pushed on loop entry and
// popped on exit so nested loops target the correct frame.

// generateIf implements:
//
//	cond.compile; cmpl $0, %eax
//	no else:  end := .J;            je end;  then; label(end)
//	w/ else:  els,end := .J, .J;    je els;  then; jmp end; label(els); else_; label(end)
func (cg *CodeGenerator) generateIf(n *IfStmt) {
	cg.generateExpr(n.Cond)
	cg.emit("cmpl $0, %%eax")

	if n.Else == nil {
		end := cg.newJLabel()
		cg.emit("je %s", end)
		cg.generateStmt(n.Then)
		cg.label(end)
		return
	}

	els := cg.newJLabel()
	end := cg.newJLabel()
	cg.emit("je %s", els)
	cg.generateStmt(n.Then)
	cg.emit("jmp %s", end)
	cg.label(els)
	cg.generateStmt(n.Else)
	cg.label(end)
}

// generateWhile implements:
//
//	start := .S; final := .E
//	label(start); cond.compile; cmpl $0, %eax; je final
//	body; jmp start; label(final)
func (cg *CodeGenerator) generateWhile(n *WhileStmt) {
	start := cg.newSLabel()
	final := cg.newELabel()

	cg.breakStack = append(cg.breakStack, final)
	cg.continueStack = append(cg.continueStack, start)
	defer func() {
		cg.breakStack = cg.breakStack[:len(cg.breakStack)-1]
		cg.continueStack = cg.continueStack[:len(cg.continueStack)-1]
	}()

	cg.label(start)
	cg.generateExpr(n.Cond)
	cg.emit("cmpl $0, %%eax")
	cg.emit("je %s", final)
	cg.generateStmt(n.Body)
	cg.emit("jmp %s", start)
	cg.label(final)
}
