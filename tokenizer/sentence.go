package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

// lookbehind is the number of runes preceding a whitespace candidate that
// the abbreviation checks inspect.
const lookbehind = 4

// sentenceTokens splits s at every whitespace rune that qualifies as a
// sentence break. The breaking whitespace rune belongs to neither side.
func sentenceTokens(s string) []Token {
	tokens := make([]Token, 0, len(s)/40+1)
	sentStart := 0

	// prev[0] is the rune immediately before the current position.
	var prev [lookbehind]rune

	for i, r := range s {
		if unicode.IsSpace(r) && isBreak(prev) {
			tokens = appendSentence(tokens, s, sentStart, i)
			sentStart = i + utf8.RuneLen(r)
		}

		copy(prev[1:], prev[:lookbehind-1])
		prev[0] = r
	}

	return appendSentence(tokens, s, sentStart, len(s))
}

func appendSentence(tokens []Token, s string, start, end int) []Token {
	if start >= end {
		return tokens
	}
	return append(tokens, Token{
		Text:  s[start:end],
		Start: start,
		End:   end,
		Type:  Sentence,
	})
}

// isBreak reports whether a whitespace rune preceded by prev ends a sentence.
// Entries of prev before the start of the text are zero and never match.
func isBreak(prev [lookbehind]rune) bool {
	if prev[0] != '.' && prev[0] != '?' {
		return false
	}

	// Dotted abbreviation: \w\.\w. directly before the whitespace ("e.g.", "U.S.").
	if isWordRune(prev[3]) && prev[2] == '.' && isWordRune(prev[1]) {
		return false
	}

	// Title abbreviation: [A-Z][a-z]\. directly before the whitespace ("Mr.", "Dr.").
	if prev[0] == '.' && isASCIILower(prev[1]) && isASCIIUpper(prev[2]) {
		return false
	}

	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }
