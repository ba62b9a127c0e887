package main

import "fmt"

// arithmetic.go - binary arithmetic/bitwise/comparison/short-circuit
// codegen and the numeric unary operators (spec.md §4.4), grounded in
// original_source/compiler.py's BinaryExp.compile / UnaryExp.compile.

// arithInstr maps a binary operator to its mapped instruction, for the
// common push/pop left-right-then-op pattern.
var arithInstr = map[TokenType]string{
	TokenPlus:      "addl",
	TokenMinus:     "subl",
	TokenStar:      "imull",
	TokenAmpersand: "andl",
	TokenPipe:      "orl",
	TokenCaret:     "xorl",
}

// jumpInverse maps a comparison operator to the jump that should be
// taken on the operator being FALSE (spec.md §4.4's "inverse-jump-to-
// false-label" pattern).
var jumpInverse = map[TokenType]string{
	TokenLess:       "jge",
	TokenGreater:    "jle",
	TokenGreaterEq:  "jl",
	TokenLessEq:     "jg",
	TokenEqual:      "jne",
	TokenNotEqual:   "je",
}

// generateBinary dispatches &&/|| (short-circuit), comparisons
// (inverse-jump), shift, division/modulo, and the plain push/pop/op
// family.
func (cg *CodeGenerator) generateBinary(n *BinaryExpr) {
	switch n.Op {
	case TokenAnd:
		cg.generateShortCircuit(n, true)
		return
	case TokenOr:
		cg.generateShortCircuit(n, false)
		return
	}

	if _, ok := jumpInverse[n.Op]; ok {
		cg.generateComparison(n)
		return
	}

	switch n.Op {
	case TokenSlash:
		cg.evalLeftRight(n)
		cg.emit("cdq")
		cg.emit("idivl %%ebx")
		return
	case TokenPercent:
		cg.evalLeftRight(n)
		cg.emit("cdq")
		cg.emit("idivl %%ebx")
		cg.emit("movl %%edx, %%eax")
		return
	case TokenLShift, TokenRShift:
		cg.evalLeftRight(n)
		cg.emit("movl %%ebx, %%ecx")
		if n.Op == TokenLShift {
			cg.emit("sall %%cl, %%eax")
		} else {
			cg.emit("sarl %%cl, %%eax")
		}
		return
	}

	instr, ok := arithInstr[n.Op]
	if !ok {
		panic(fmt.Sprintf("internal: codegen: unhandled binary operator %s", TokenTypeName(n.Op)))
	}
	cg.evalLeftRight(n)
	cg.emit("%s %%ebx, %%eax", instr)
}

// evalLeftRight evaluates Left, pushes it, evaluates Right, then
// arranges left in %eax and right in %ebx for the caller's op
// instruction (spec.md §4.4).
func (cg *CodeGenerator) evalLeftRight(n *BinaryExpr) {
	cg.generateExpr(n.Left)
	cg.emit("pushl %%eax")
	cg.generateExpr(n.Right)
	cg.emit("movl %%eax, %%ebx")
	cg.emit("popl %%eax")
}

// generateComparison evaluates both sides, compares, and jumps to a
// "no" label on the inverse condition; falls through to "yes" (1),
// joining at a shared "fin" label.
func (cg *CodeGenerator) generateComparison(n *BinaryExpr) {
	cg.evalLeftRight(n)
	cg.emit("cmpl %%ebx, %%eax")
	no := cg.newJLabel()
	fin := cg.newJLabel()
	cg.emit("%s %s", jumpInverse[n.Op], no)
	cg.emit("movl $1, %%eax")
	cg.emit("jmp %s", fin)
	cg.label(no)
	cg.emit("movl $0, %%eax")
	cg.label(fin)
}

// generateShortCircuit implements && (isAnd=true) and || (isAnd=
// false): evaluate Left; compare with zero; skip Right on the operand
// that already decides the result (zero for &&, non-zero for ||);
// otherwise evaluate Right; fall through to one shared join label
// (original_source/compiler.py's BinaryExp.compile — a single label,
// not a pair).
func (cg *CodeGenerator) generateShortCircuit(n *BinaryExpr, isAnd bool) {
	cg.generateExpr(n.Left)
	join := cg.newJLabel()
	cg.emit("cmpl $0, %%eax")
	if isAnd {
		cg.emit("je %s", join)
	} else {
		cg.emit("jne %s", join)
	}
	cg.generateExpr(n.Right)
	cg.label(join)
}

// generateUnary dispatches &, *, -, ~, ! (address-of and dereference
// live in references.go, since they are about addressing rather than
// arithmetic).
func (cg *CodeGenerator) generateUnary(n *UnaryExpr) {
	switch n.Op {
	case TokenAmpersand:
		cg.generateAddressOf(n)
	case TokenStar:
		cg.generateDeref(n)
	case TokenMinus:
		cg.generateExpr(n.Expr)
		cg.emit("negl %%eax")
	case TokenTilde:
		cg.generateExpr(n.Expr)
		cg.emit("xorl $0xFFFFFFFF, %%eax")
	case TokenExclaim:
		cg.generateNot(n)
	default:
		panic(fmt.Sprintf("internal: codegen: unhandled unary operator %s", TokenTypeName(n.Op)))
	}
}

// generateNot normalises to exactly 0 or 1, per spec.md §4.4 ("compare
// with zero and produce 0 or 1"). original_source/compiler.py's
// UnaryExp.compile undershoots this: it guarantees 0 on a false
// operand but otherwise leaves the operand's original nonzero value in
// place rather than normalising to 1 — see DESIGN.md.
func (cg *CodeGenerator) generateNot(n *UnaryExpr) {
	cg.generateExpr(n.Expr)
	cg.emit("cmpl $0, %%eax")
	no := cg.newJLabel()
	fin := cg.newJLabel()
	cg.emit("jne %s", no)
	cg.emit("movl $1, %%eax")
	cg.emit("jmp %s", fin)
	cg.label(no)
	cg.emit("movl $0, %%eax")
	cg.label(fin)
}
