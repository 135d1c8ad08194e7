// Package data embeds the static linguistic resources.
package data

import _ "embed"

// StopwordsEN is the English stopword list, one word per line.
//
//go:embed stopwords_en.txt
var StopwordsEN []byte
