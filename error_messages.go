package main

import (
	"fmt"
	"strings"
)

// error_messages.go - message formatting helpers shared by the parser
// and resolver, narrowed from the teacher's error-code/suggestion
// machinery to this language's keyword set and the three error kinds
// spec.md §7 names (parse, resolve, compiler-internal).

// FormatExpectedToken renders "expected X, got Y ['ident']".
func FormatExpectedToken(expected, got TokenType, gotValue string) string {
	msg := fmt.Sprintf("expected %s, got %s", TokenTypeName(expected), TokenTypeName(got))
	if gotValue != "" && got == TokenIdentifier {
		msg += fmt.Sprintf(" '%s'", gotValue)
	}
	return msg
}

// FormatUnexpectedToken renders "unexpected Y ['ident']".
func FormatUnexpectedToken(got TokenType, gotValue string) string {
	msg := fmt.Sprintf("unexpected %s", TokenTypeName(got))
	if gotValue != "" && got == TokenIdentifier {
		msg += fmt.Sprintf(" '%s'", gotValue)
	}
	return msg
}

// keywordList is consulted by SuggestForTypo; it names every reserved
// word plus the externs the resolver seeds (spec.md §4.3).
var keywordList = []string{
	"int", "void", "return", "if", "else", "while", "for",
	"static", "break", "continue", "sizeof", "char", "float",
	"printf", "scanf", "malloc", "calloc", "realloc", "free",
}

// SuggestForTypo finds the closest reserved word to an unresolved
// identifier, for a "did you mean" hint attached to undeclared-name
// diagnostics.
func SuggestForTypo(name string) string {
	lower := strings.ToLower(name)
	best := ""
	bestDist := 3 // only suggest within edit-distance 2
	for _, kw := range keywordList {
		d := levenshteinDistance(lower, kw)
		if d < bestDist {
			bestDist = d
			best = kw
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf(" (did you mean '%s'?)", best)
}

// levenshteinDistance computes the classic edit distance between two
// strings, used only to rank typo suggestions.
func levenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			cur[j] = m
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}
