package main

import "fmt"

// memory.go - sizeof codegen (spec.md §4.4). Casts are transparent at
// codegen time (spec.md §4.3: "no compatibility matrix") and are
// dispatched directly in codegen.go's generateExpr without a helper
// here. malloc/calloc/realloc/free need no dedicated codegen: they are
// ordinary Function symbols the call-codegen path in functions.go
// already knows how to call.

// generateSizeof emits the operand's byte size as a constant; no
// operand code is ever run (sizeof is always a compile-time constant).
func (cg *CodeGenerator) generateSizeof(n *SizeofExpr) {
	var t *Type
	if n.Type != nil {
		t = n.Type
	} else {
		t = exprType(n.Expr)
	}
	cg.emit("movl $%d, %%eax", t.Sizeof())
}

// exprType recovers the type the resolver already attached to a
// resolved expression node, without re-running resolution.
func exprType(n Node) *Type {
	switch e := n.(type) {
	case *IntLiteral:
		return TypeInt
	case *StringLiteral:
		return NewPointer(TypeChar)
	case *Identifier:
		return e.ResolvedAs.Type
	case *UnaryExpr:
		return e.ResolvedType
	case *BinaryExpr:
		return e.ResolvedType
	case *CallExpr:
		return e.ResultType
	case *AssignExpr:
		return e.ResolvedType
	case *SizeofExpr:
		return TypeInt
	case *CastExpr:
		return e.Type
	default:
		panic(fmt.Sprintf("internal: codegen: cannot recover the type of %T", n))
	}
}
