// Package textcase provides the Unicode composition and case folding used
// before any English text is tokenized.
//
// Lowercasing follows the English (root) Unicode case mapping, so dotted and
// dotless I variants fold the way a reader of English text expects.
//
// All functions are safe for concurrent use.
package textcase

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToLower returns s lowercased with English case mapping.
// A cases.Caser carries state, so a new one is built per call.
func ToLower(s string) string {
	if s == "" {
		return s
	}
	return cases.Lower(language.English).String(s)
}

// IsApostrophe reports whether r is one of the apostrophe variants seen in
// English contractions.
func IsApostrophe(r rune) bool {
	switch r {
	case '\'', '’', 'ʼ':
		return true
	default:
		return false
	}
}
