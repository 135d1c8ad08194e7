package tokenizer

import "regexp"

// wordPattern matches a word character followed by at least three word
// characters or apostrophes. Shorter words are noise and never match.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_][\p{L}\p{N}_']{3,}`)

// MinWordRunes is the shortest word the word pattern accepts.
const MinWordRunes = 4

// WordTokens returns every word-pattern match in s with byte offsets.
func WordTokens(s string) []Token {
	if s == "" {
		return nil
	}
	locs := wordPattern.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return nil
	}
	tokens := make([]Token, len(locs))
	for i, loc := range locs {
		tokens[i] = Token{Text: s[loc[0]:loc[1]], Start: loc[0], End: loc[1], Type: Word}
	}
	return tokens
}

// Words returns the texts of WordTokens(s).
func Words(s string) []string {
	if s == "" {
		return nil
	}
	return wordPattern.FindAllString(s, -1)
}
