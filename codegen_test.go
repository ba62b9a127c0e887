package main

import (
	"strings"
	"testing"
)

// compileOK runs the full lex/parse/resolve/generate pipeline and
// fails the test on any diagnostic, returning the generated assembly.
func compileOK(t *testing.T, src string) string {
	t.Helper()
	diags := NewDiagnosticManager()
	toks := Tokenize(src, diags)
	if diags.HasErrors() {
		t.Fatalf("lex errors: %v", diags.Diagnostics)
	}
	prog, ok := NewParser(toks, diags).Parse()
	if !ok || diags.HasErrors() {
		t.Fatalf("parse errors: %v", diags.Diagnostics)
	}
	r := NewResolver(diags)
	r.Resolve(prog)
	if diags.HasErrors() {
		t.Fatalf("resolve errors: %v", diags.Diagnostics)
	}
	return Generate(prog, r.GlobalOrder)
}

func requireContains(t *testing.T, asm, want string) {
	t.Helper()
	if !strings.Contains(asm, want) {
		t.Errorf("assembly does not contain %q\n--- full output ---\n%s", want, asm)
	}
}

func TestGenerateFunctionPrologueEpilogue(t *testing.T) {
	asm := compileOK(t, "int main() { return 0; }")
	requireContains(t, asm, ".globl main\n")
	requireContains(t, asm, ".type main, @function\n")
	requireContains(t, asm, "\tpushl %ebp\n")
	requireContains(t, asm, "\tmovl %esp, %ebp\n")
	requireContains(t, asm, "\tmovl %ebp, %esp\n")
	requireContains(t, asm, "\tpopl %ebp\n")
	requireContains(t, asm, "\tret\n")
}

func TestGenerateStackFrameAllocation(t *testing.T) {
	asm := compileOK(t, "int main() { int a; int b; a = 1; b = 2; return a + b; }")
	requireContains(t, asm, "\tsubl $8, %esp\n")
}

func TestGenerateGlobalCommDirective(t *testing.T) {
	asm := compileOK(t, "int counter;\nint main() { counter = 1; return counter; }")
	requireContains(t, asm, ".comm counter, 4, 4\n")
}

func TestGenerateCharArrayAlignsToOne(t *testing.T) {
	asm := compileOK(t, "char buf[8];\nint main() { return 0; }")
	requireContains(t, asm, ".comm buf, 8, 1\n")
}

// Scenario: comparison codegen uses the inverse jump for the false branch.
func TestGenerateComparisonUsesInverseJump(t *testing.T) {
	asm := compileOK(t, "int main() { int a; int b; a = 1; b = 2; return a < b; }")
	requireContains(t, asm, "\tcmpl %ebx, %eax\n")
	requireContains(t, asm, "\tjge ")
}

// Scenario: short-circuit && shares one join label and skips the right
// operand's evaluation via a conditional jump, never via folding.
func TestGenerateShortCircuitAndSharesJoinLabel(t *testing.T) {
	asm := compileOK(t, `
int f() { return 1; }
int main() { return 0 && f(); }
`)
	requireContains(t, asm, "\tje ")
	requireContains(t, asm, "\tcall f\n")
}

func TestGenerateShortCircuitOr(t *testing.T) {
	asm := compileOK(t, `
int f() { return 1; }
int main() { return 1 || f(); }
`)
	requireContains(t, asm, "\tjne ")
	requireContains(t, asm, "\tcall f\n")
}

// Scenario: unary '!' fully normalises to 0 or 1.
func TestGenerateUnaryNotNormalisesToZeroOrOne(t *testing.T) {
	asm := compileOK(t, "int main() { int a; a = 5; return !a; }")
	requireContains(t, asm, "\tmovl $1, %eax\n")
	requireContains(t, asm, "\tmovl $0, %eax\n")
}

// Scenario: bitwise NOT emits the literal xorl $0xFFFFFFFF instruction.
func TestGenerateBitwiseNotEmitsXorNotNotl(t *testing.T) {
	asm := compileOK(t, "int main() { int a; a = 1; return ~a; }")
	requireContains(t, asm, "\txorl $0xFFFFFFFF, %eax\n")
	if strings.Contains(asm, "\tnotl") {
		t.Errorf("assembly uses 'notl', want the literal 'xorl $0xFFFFFFFF, %%eax' form:\n%s", asm)
	}
}

// Scenario: caller-side stack cleanup after a user function call sums
// declared parameter sizes.
func TestGenerateCallCleanupUsesArgSpace(t *testing.T) {
	asm := compileOK(t, `
int add(int a, int b) { return a + b; }
int main() { return add(1, 2); }
`)
	requireContains(t, asm, "\tcall add\n")
	requireContains(t, asm, "\taddl $8, %esp\n")
}

// Scenario: printf's caller-side cleanup is 4 bytes per pushed argument
// (it has no declared parameter list to sum).
func TestGenerateNativeCallCleanupIsFourPerArg(t *testing.T) {
	asm := compileOK(t, `int main() { printf("%i\n", 42); return 0; }`)
	requireContains(t, asm, "\tcall printf\n")
	requireContains(t, asm, "\taddl $8, %esp\n")
}

// Scenario: pointer arithmetic scales the integer operand by sizeof(*p)
// and the scaling shows up as an ordinary multiply by the literal 4 in
// the generated code.
func TestGeneratePointerArithmeticScalesByElementSize(t *testing.T) {
	asm := compileOK(t, "int main() { int a[4]; int* p; p = &a[0]; p = p + 1; return 0; }")
	requireContains(t, asm, "\tmovl $4, %eax\n\tmovl %eax, %ebx\n\tpopl %eax\n\timull %ebx, %eax\n")
}

// Scenario: a static local is promoted to a .comm global and the store
// inside the function body re-executes the plain assignment, not any
// special "first call" guard.
func TestGenerateStaticLocalPromotedToComm(t *testing.T) {
	asm := compileOK(t, `
int counter() {
    static int c;
    c = c + 1;
    return c;
}
int main() { return counter(); }
`)
	requireContains(t, asm, ".comm c.counter.0, 4, 4\n")
	requireContains(t, asm, "\tmovl %eax, c.counter.0\n")
}

// Scenario: & / * cancellation folds away the matching pair instead of
// emitting a leal immediately followed by a dereference.
func TestGenerateAddressOfDerefCancels(t *testing.T) {
	asm := compileOK(t, "int main() { int a; a = 1; return *&a; }")
	if strings.Contains(asm, "leal") {
		t.Errorf("'*&a' should fold away, leaving no 'leal':\n%s", asm)
	}
}

// Scenario: if/else codegen uses one shared end label when there is an
// else branch, with the 'then' arm jumping past it.
func TestGenerateIfElse(t *testing.T) {
	asm := compileOK(t, "int main() { int a; a = 1; if (a) { a = 2; } else { a = 3; } return a; }")
	requireContains(t, asm, "\tje .J")
	requireContains(t, asm, "\tjmp .J")
}

// Scenario: while loop with break/continue jumps to the pushed labels.
func TestGenerateWhileBreakContinue(t *testing.T) {
	asm := compileOK(t, `
int main() {
    int i;
    i = 0;
    while (i < 10) {
        if (i == 5) { break; }
        i = i + 1;
        continue;
    }
    return i;
}
`)
	requireContains(t, asm, ".S")
	requireContains(t, asm, ".E")
	requireContains(t, asm, "\tjmp .S")
	requireContains(t, asm, "\tjmp .E")
}

// Scenario: array-literal initialisation stores each element
// individually in ascending address order.
func TestGenerateArrayLiteralInitStoresEachElement(t *testing.T) {
	asm := compileOK(t, "int main() { int a[3] = {1, 2, 3}; return a[0]; }")
	requireContains(t, asm, "\tmovl $1, %eax\n")
	requireContains(t, asm, "\tmovl $2, %eax\n")
	requireContains(t, asm, "\tmovl $3, %eax\n")
}

// Scenario: sizeof is always a compile-time constant; no operand
// evaluation code is emitted for its argument.
func TestGenerateSizeofIsConstantFolded(t *testing.T) {
	asm := compileOK(t, "int main() { return sizeof(int); }")
	requireContains(t, asm, "\tmovl $4, %eax\n")
}

func TestGenerateSizeofOfPointerExpression(t *testing.T) {
	asm := compileOK(t, "int main() { int* p; return sizeof(p); }")
	requireContains(t, asm, "\tmovl $4, %eax\n")
}

// Scenario: a global variable's initializer is type-checked but never
// emits store code; only the .comm zero-reservation exists for it.
func TestGenerateGlobalInitializerEmitsNoStore(t *testing.T) {
	asm := compileOK(t, "int counter = 5;\nint main() { return counter; }")
	requireContains(t, asm, ".comm counter, 4, 4\n")
	if strings.Contains(asm, "movl $5,") {
		t.Errorf("global initializer should never emit a store:\n%s", asm)
	}
}

// Scenario: shift operators move the count into %cl and use the
// register-count shift instruction form.
func TestGenerateShiftOperators(t *testing.T) {
	asm := compileOK(t, "int main() { int a; int b; a = 1; b = 2; return a << b; }")
	requireContains(t, asm, "\tmovl %ebx, %ecx\n")
	requireContains(t, asm, "\tsall %cl, %eax\n")
}

func TestGenerateRightShift(t *testing.T) {
	asm := compileOK(t, "int main() { int a; int b; a = 8; b = 1; return a >> b; }")
	requireContains(t, asm, "\tsarl %cl, %eax\n")
}

// Scenario: modulo uses idivl and takes the remainder from %edx.
func TestGenerateModuloUsesIdivlAndEdx(t *testing.T) {
	asm := compileOK(t, "int main() { int a; int b; a = 7; b = 2; return a % b; }")
	requireContains(t, asm, "\tcdq\n")
	requireContains(t, asm, "\tidivl %ebx\n")
	requireContains(t, asm, "\tmovl %edx, %eax\n")
}
