package main

// ast.go - the complete AST node family (spec.md §3), the sole owner
// of every node type declaration in this compiler. Every node carries
// a source Line. Nodes are built once by the parser, mutated only by
// the resolver (ResolvedAs links, pointer-arithmetic rewrites,
// MaxStackSize annotation), and read only by the code generator.
//
// Dispatch is a closed Go interface plus type switches in resolver.go
// and codegen.go (spec.md §9's "enum approach"), not an open per-node
// method table.

// Node is implemented by every AST node.
type Node interface {
	node()
	Pos() int
}

// BaseNode carries the source line every node needs.
type BaseNode struct {
	Line int
}

func (b BaseNode) node()    {}
func (b BaseNode) Pos() int { return b.Line }

// ---- Expressions ----------------------------------------------------

// IntLiteral is an integer literal (decimal/hex/binary, spec.md §4.1).
type IntLiteral struct {
	BaseNode
	Value int
}

// StringLiteral carries the raw, still-quoted source lexeme verbatim
// (spec.md §6: ".string directives include the surrounding quotes
// from the source verbatim").
type StringLiteral struct {
	BaseNode
	Raw string
}

// Identifier is a variable reference. ResolvedAs is filled in by the
// resolver.
type Identifier struct {
	BaseNode
	Name       string
	ResolvedAs *Symbol
}

// UnaryExpr covers !, -, ~, &, *.
type UnaryExpr struct {
	BaseNode
	Op   TokenType
	Expr Node

	ResolvedType *Type
}

// BinaryExpr covers the full binary operator set (spec.md §4.2/§4.3).
// After resolution, a pointer-arithmetic +/- has Right (or Left)
// rewritten in place to multiply the integer operand by sizeof(inner)
// — the code generator therefore only ever sees plain additions.
type BinaryExpr struct {
	BaseNode
	Op    TokenType
	Left  Node
	Right Node

	ResolvedType *Type
}

// CallExpr is a function call; array-index `a[i]` is lowered to
// `*(a + i)` at parse time and never reaches CallExpr.
type CallExpr struct {
	BaseNode
	Callee     string
	Args       []Node
	ResolvedAs *Symbol // the Function or NativeFunction symbol
	ResultType *Type   // filled in by resolution (NativeFunction hooks compute it themselves)
}

// AssignExpr is `lhs = rhs` (compound forms already lowered at parse
// time to `lhs = lhs op rhs`, producing a BinaryExpr Rhs).
type AssignExpr struct {
	BaseNode
	Lhs Node
	Rhs Node

	ResolvedType *Type
}

// SizeofExpr is `sizeof(type)` or `sizeof(expr)`; exactly one of Type
// or Expr is set.
type SizeofExpr struct {
	BaseNode
	Type *Type
	Expr Node
}

// CastExpr is `(type) expr`; the cast is trivially permitted (spec.md
// §4.3: "no compatibility matrix").
type CastExpr struct {
	BaseNode
	Type *Type
	Expr Node
}

// ---- Declarators -----------------------------------------------------

// Declarator is one `*…ident[dims]…(=init)?` entry in a declaration.
type Declarator struct {
	Line        int
	Name        string
	NumPtr      int    // number of leading '*' in the declarator
	ArrayDims   []int  // outermost dimension first, per spec.md §4.2
	Init        Node   // expression initialiser, or nil
	ArrayInit   *ArrayLiteral // brace-enclosed initialiser, or nil
	ResolvedAs  *Symbol
}

// ArrayLiteral is a brace-enclosed, possibly nested initialiser list:
// `{ a, b, {c, d}, ... }`.
type ArrayLiteral struct {
	BaseNode
	Elements []Node // each is either an expression Node or *ArrayLiteral
}

func (a *ArrayLiteral) node()    {}
func (a *ArrayLiteral) Pos() int { return a.Line }

// ---- Statements -------------------------------------------------------

// ExprStmt is an expression evaluated for its side effects.
type ExprStmt struct {
	BaseNode
	Expr Node
}

// VarDeclStmt is a local/static variable declaration statement.
type VarDeclStmt struct {
	BaseNode
	IsStatic    bool
	BaseType    *Type
	Declarators []*Declarator
}

// ReturnStmt is `return expr?;`.
type ReturnStmt struct {
	BaseNode
	Expr Node // nil for a bare `return;`
}

// BlockStmt is a `{ ... }` statement sequence; opens/closes its own
// resolver scope.
type BlockStmt struct {
	BaseNode
	Stmts []Node
}

// IfStmt is `if (cond) then (else else_)?`.
type IfStmt struct {
	BaseNode
	Cond Node
	Then Node
	Else Node // nil if no else-clause
}

// WhileStmt is `while (cond) body`. `for` is lowered to this at parse
// time (spec.md §4.2), wrapped in an outer BlockStmt carrying init.
type WhileStmt struct {
	BaseNode
	Cond Node
	Body Node
}

// BreakStmt / ContinueStmt require an enclosing loop (checked by the
// resolver via nested_loops).
type BreakStmt struct{ BaseNode }
type ContinueStmt struct{ BaseNode }

// ---- Top level ----------------------------------------------------------

// FuncHead is the shared head of a declaration and a definition.
type FuncHead struct {
	Line       int
	Name       string
	RetNumPtr  int // pointer-stars applied to the declared return type
	RetBase    *Type
	ParamNames []string
	ParamTypes []*Type
}

// FuncDeclTop is a function prototype (`type name(params);`).
type FuncDeclTop struct {
	BaseNode
	Head *FuncHead
}

// FuncDefTop is a function definition (`type name(params) { body }`).
// MaxStackSize is computed by the resolver.
type FuncDefTop struct {
	BaseNode
	Head         *FuncHead
	Body         []Node
	MaxStackSize int
	ParamSymbols []*Symbol
}

// VarTop is a global variable declaration.
type VarTop struct {
	BaseNode
	BaseType    *Type
	Declarators []*Declarator
}

// Program is the root node: an ordered list of top-level declarations.
type Program struct {
	BaseNode
	TopDecls []Node
}
