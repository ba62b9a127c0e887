package main

// stdlib.go - the externally linked runtime surface this compiler
// recognises (spec.md §1/§6): malloc/calloc/realloc/free as typed
// Function symbols callable through the ordinary call-codegen path,
// and printf/scanf as NativeFunction hooks that validate the call
// site's format-string argument count and types (spec.md §4.3).
//
// Narrowed from the teacher's stdlib.go, which implemented a multi-
// module standard library (io/mem/math/str/net/http/file/time) with
// inline per-call socket/syscall code generation. None of that
// surface is named by this spec; only these six externs are. The
// shape survives — a small typed registry consulted by the resolver
// at globals-table-seeding time — but the content is this spec's six
// symbols, not the teacher's hundred-plus.

// stdlibSymbols returns the globals table's initial contents.
func stdlibSymbols() map[string]*Symbol {
	voidPtr := NewPointer(TypeVoid)
	return map[string]*Symbol{
		"malloc":  NewFunctionSymbol(NewFunction([]*Type{TypeInt}, voidPtr), "malloc", true),
		"calloc":  NewFunctionSymbol(NewFunction([]*Type{TypeInt, TypeInt}, voidPtr), "calloc", true),
		"realloc": NewFunctionSymbol(NewFunction([]*Type{voidPtr, TypeInt}, voidPtr), "realloc", true),
		"free":    NewFunctionSymbol(NewFunction([]*Type{voidPtr}, TypeVoid), "free", true),
		"printf":  NewNativeFunction("printf", printfHook),
		"scanf":   NewNativeFunction("scanf", scanfHook),
	}
}

// printfHook requires a string-literal format argument, counts its
// "%i" specifiers, and requires exactly that many further arguments,
// each of type 'int' (spec.md §4.3).
func printfHook(r *Resolver, call *CallExpr) *Type {
	if len(call.Args) == 0 {
		r.fail(call.Line, "'printf' requires a format string argument")
	}
	fmtArg, ok := call.Args[0].(*StringLiteral)
	if !ok {
		r.fail(call.Line, "'printf' format argument must be a string literal")
	}
	n := countFormatSpecifiers(fmtArg.Raw)
	if len(call.Args)-1 != n {
		r.fail(call.Line, "'printf' format string expects %d argument(s), got %d", n, len(call.Args)-1)
	}
	for _, a := range call.Args[1:] {
		res := r.resolveExpr(a)
		if !res.Type.Equal(TypeInt) {
			r.fail(a.Pos(), "'printf' argument must be 'int', got '%s'", res.Type)
		}
	}
	return TypeInt
}

// scanfHook mirrors printfHook, except each variadic argument must be
// 'int*' since scanf writes through the pointer.
func scanfHook(r *Resolver, call *CallExpr) *Type {
	if len(call.Args) == 0 {
		r.fail(call.Line, "'scanf' requires a format string argument")
	}
	fmtArg, ok := call.Args[0].(*StringLiteral)
	if !ok {
		r.fail(call.Line, "'scanf' format argument must be a string literal")
	}
	n := countFormatSpecifiers(fmtArg.Raw)
	if len(call.Args)-1 != n {
		r.fail(call.Line, "'scanf' format string expects %d argument(s), got %d", n, len(call.Args)-1)
	}
	intPtr := NewPointer(TypeInt)
	for _, a := range call.Args[1:] {
		res := r.resolveExpr(a)
		if !res.Type.Equal(intPtr) {
			r.fail(a.Pos(), "'scanf' argument must be 'int*', got '%s'", res.Type)
		}
	}
	return TypeInt
}

// countFormatSpecifiers counts "%i" occurrences in a raw (still
// quoted) string literal, treating "%%" as an escaped literal percent.
func countFormatSpecifiers(raw string) int {
	count := 0
	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '%' {
			continue
		}
		if i+1 < len(runes) && runes[i+1] == '%' {
			i++
			continue
		}
		if i+1 < len(runes) && runes[i+1] == 'i' {
			count++
			i++
		}
	}
	return count
}
