package textcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeNFC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"ascii unchanged", "plain text", "plain text"},
		{"decomposed e acute", "cafe\u0301", "caf\u00e9"},
		{"already composed", "caf\u00e9", "caf\u00e9"},
		{"curly apostrophe folded", "i’m", "i'm"},
		{"modifier apostrophe folded", "donʼt", "don't"},
		{"mixed apostrophes folded", "it’s theyʼre we'll", "it's they're we'll"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ComposeNFC(tt.input))
		})
	}
}

func TestFold(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "i'm happy", Fold("I’M Happy"))
	assert.Equal(t, "", Fold(""))
}

func TestToLower(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"HELLO", "hello"},
		{"Mixed Case", "mixed case"},
		{"ÉTÉ", "été"},
		{"already lower", "already lower"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToLower(tt.input), "ToLower(%q)", tt.input)
	}
}

func TestIsApostrophe(t *testing.T) {
	t.Parallel()

	for _, r := range []rune{'\'', '’', 'ʼ'} {
		assert.True(t, IsApostrophe(r), "IsApostrophe(%q)", r)
	}
	for _, r := range []rune{'"', '`', 'a'} {
		assert.False(t, IsApostrophe(r), "IsApostrophe(%q)", r)
	}
}
