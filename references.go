package main

import "fmt"

// references.go - variable load, address-of, dereference and
// assignment codegen (spec.md §4.4), grounded in
// original_source/compiler.py's VarExp/UnaryExp('&'/'*')/AssignExp
// compile methods.
//
// The grammar produces exactly two l-value shapes: a plain
// *Identifier, or a *UnaryExpr{Op: TokenStar} (array indexing is
// already lowered to `*(a + i)` at parse time). Both assignment
// targets and `&`'s operand are always one of these two shapes.

// generateLoad evaluates a variable reference: `leal` for an
// array-typed variable (decays to its address, never copies the
// array), `movl` otherwise.
func (cg *CodeGenerator) generateLoad(n *Identifier) {
	sym := n.ResolvedAs
	if sym.Type.Kind == KindArray {
		cg.emit("leal %s, %%eax", sym.Reg(0))
		return
	}
	cg.emit("movl %s, %%eax", sym.Reg(0))
}

// generateAddressOf implements `&e`. A plain variable takes its
// address directly; `&*inner` folds away the cancelling pair and
// simply evaluates `inner` (original_source/compiler.py: "if
// UnaryExp('*') -> self.exp.exp.compile(cmp)").
func (cg *CodeGenerator) generateAddressOf(n *UnaryExpr) {
	switch operand := n.Expr.(type) {
	case *Identifier:
		cg.emit("leal %s, %%eax", operand.ResolvedAs.Reg(0))
	case *UnaryExpr:
		if operand.Op != TokenStar {
			panic("internal: codegen: '&' operand is an l-value-producing UnaryExpr that is not '*'")
		}
		cg.generateExpr(operand.Expr)
	default:
		panic(fmt.Sprintf("internal: codegen: '&' applied to non-l-value node %T", n.Expr))
	}
}

// generateDeref implements `*e`. `*&inner` folds away the cancelling
// pair; otherwise the operand is evaluated and the result is
// dereferenced once.
func (cg *CodeGenerator) generateDeref(n *UnaryExpr) {
	if inner, ok := n.Expr.(*UnaryExpr); ok && inner.Op == TokenAmpersand {
		cg.generateExpr(inner.Expr)
		return
	}
	cg.generateExpr(n.Expr)
	cg.emit("movl (%%eax), %%eax")
}

// generateAssign implements `lhs = rhs`. A plain-variable target
// stores directly; a `*e` target evaluates the pointer expression
// after saving the right-hand value, then stores through it.
func (cg *CodeGenerator) generateAssign(n *AssignExpr) {
	switch lhs := n.Lhs.(type) {
	case *Identifier:
		cg.generateExpr(n.Rhs)
		cg.emit("movl %%eax, %s", lhs.ResolvedAs.Reg(0))
	case *UnaryExpr:
		if lhs.Op != TokenStar {
			panic("internal: codegen: assignment target is a non-'*' UnaryExpr")
		}
		cg.generateExpr(n.Rhs)
		cg.emit("pushl %%eax")
		cg.generateExpr(lhs.Expr)
		cg.emit("movl %%eax, %%ebx")
		cg.emit("popl %%eax")
		cg.emit("movl %%eax, (%%ebx)")
	default:
		panic(fmt.Sprintf("internal: codegen: assignment target is not an l-value node %T", n.Lhs))
	}
}
