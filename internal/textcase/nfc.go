package textcase

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// foldApostrophe maps every apostrophe variant to ASCII so that contraction
// rules written against "'" also match "’".
func foldApostrophe(r rune) rune {
	if IsApostrophe(r) {
		return '\''
	}
	return r
}

func isTypographicApostrophe(r rune) bool {
	return r != '\'' && IsApostrophe(r)
}

// ComposeNFC returns s in Unicode NFC form with apostrophe variants folded
// to ASCII. Strings already in NFC with no typographic apostrophes are
// returned unchanged.
func ComposeNFC(s string) string {
	if !norm.NFC.IsNormalString(s) {
		s = norm.NFC.String(s)
	}
	if strings.ContainsFunc(s, isTypographicApostrophe) {
		s = strings.Map(foldApostrophe, s)
	}
	return s
}

// Fold is ComposeNFC followed by ToLower.
func Fold(s string) string {
	return ToLower(ComposeNFC(s))
}
