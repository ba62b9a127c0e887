package main

import (
	"fmt"
	"strings"
)

// docs.go - built-in reference documentation for the -docs flag
// (SPEC_FULL.md §4.7), grounded in the teacher's docs.go section/
// switch shape; the text itself describes this compiler's language,
// not the teacher's.

const (
	DocSectionOverview = "overview"
	DocSectionSyntax   = "syntax"
	DocSectionTypes    = "types"
	DocSectionStdlib   = "stdlib"
	DocSectionExamples = "examples"
)

var AvailableSections = []string{
	DocSectionOverview,
	DocSectionSyntax,
	DocSectionTypes,
	DocSectionStdlib,
	DocSectionExamples,
}

// PrintDocs prints one section, or everything when section is empty.
func PrintDocs(section string) {
	if section == "" {
		printFullDocs()
		return
	}

	section = strings.ToLower(strings.TrimSpace(section))
	switch section {
	case DocSectionOverview:
		printOverview()
	case DocSectionSyntax:
		printSyntax()
	case DocSectionTypes:
		printTypes()
	case DocSectionStdlib:
		printStdlib()
	case DocSectionExamples:
		printExamples()
	default:
		fmt.Printf("Unknown documentation section: %s\n\n", section)
		fmt.Println("Available sections:")
		for _, s := range AvailableSections {
			fmt.Printf("  - %s\n", s)
		}
	}
}

func printFullDocs() {
	printOverview()
	printSyntax()
	printTypes()
	printStdlib()
	printExamples()
}

func printOverview() {
	fmt.Println("=== cc32 ===")
	fmt.Println("A single-pass compiler from a restricted C-family subset to")
	fmt.Println("32-bit x86 assembly (AT&T syntax, System V i386 cdecl).")
	fmt.Println("Pipeline: lex -> parse -> resolve -> generate assembly.")
	fmt.Println()
}

func printSyntax() {
	fmt.Println("=== Syntax ===")
	fmt.Println("Top level: function declarations/definitions, global variables.")
	fmt.Println("  int add(int a, int b);")
	fmt.Println("  int add(int a, int b) { return a + b; }")
	fmt.Println("  int counter;")
	fmt.Println()
	fmt.Println("Statements: expr;  decl;  return expr?;  { ... }")
	fmt.Println("  if (e) s (else s)?      while (e) s")
	fmt.Println("  for (init; cond; step) s   break;   continue;")
	fmt.Println()
	fmt.Println("Precedence (weak to strong): = -> || -> && -> | -> ^ -> & ->")
	fmt.Println("  == != -> < > <= >= -> << >> -> + - -> * / % -> unary -> postfix")
	fmt.Println()
}

func printTypes() {
	fmt.Println("=== Types ===")
	fmt.Println("  void   (size 1, not a legal storage type)")
	fmt.Println("  char   (size 1)")
	fmt.Println("  int    (size 4)")
	fmt.Println("  float  (size 4, recognised but never reaches arithmetic codegen)")
	fmt.Println("  T*     (pointer, size 4)")
	fmt.Println("  T[N]   (array, size N * sizeof(T); decays to T* for arithmetic)")
	fmt.Println()
}

func printStdlib() {
	fmt.Println("=== Externs ===")
	fmt.Println("The following symbols are recognised and validated at the call")
	fmt.Println("site, but are resolved at link time, not compiled by cc32:")
	fmt.Println("  void* malloc(int size)")
	fmt.Println("  void* calloc(int count, int size)")
	fmt.Println("  void* realloc(void* p, int size)")
	fmt.Println("  void  free(void* p)")
	fmt.Println("  int   printf(char* fmt, ...)   -- each %i consumes one int arg")
	fmt.Println("  int   scanf(char* fmt, ...)    -- each %i consumes one int* arg")
	fmt.Println()
}

func printExamples() {
	fmt.Println("=== Examples ===")
	fmt.Println(`int fib(int n) {
    if (n <= 1) return n;
    return fib(n - 1) + fib(n - 2);
}

int main() {
    int i;
    i = 0;
    while (i < 10) {
        printf("%i\n", fib(i));
        i = i + 1;
    }
    return 0;
}`)
	fmt.Println()
}
