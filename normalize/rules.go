package normalize

import (
	"time"

	"github.com/dlclark/regexp2"
)

// ruleTimeout bounds a single rule application.
const ruleTimeout = time.Second

// rule is an ordered textual rewrite. Patterns use .NET syntax so that
// lookarounds are available.
type rule struct {
	re   *regexp2.Regexp
	repl string
}

func mustRule(pattern, repl string) rule {
	re := regexp2.MustCompile(pattern, regexp2.None)
	re.MatchTimeout = ruleTimeout
	return rule{re: re, repl: repl}
}

// rewrites is applied in order to lowercased text. Order matters: the
// contraction rules must run before punctuation stripping removes the
// apostrophes, and the newline rule must run before the generic whitespace
// rule.
var rewrites = []rule{
	mustRule(`i'm`, "i am"),
	mustRule(`he's`, "he is"),
	mustRule(`she's`, "she is"),
	mustRule(`that's`, "that is"),
	mustRule(`what's`, "what is"),
	mustRule(`where's`, "where is"),
	mustRule(`'ll`, " will"),
	mustRule(`'ve`, " have"),
	mustRule(`'re`, " are"),
	mustRule(`won't`, " will not"),
	mustRule(`can't`, "cannot"),
	mustRule(`don't`, " do not"),
	mustRule(`\n+`, ". "),
	mustRule(`(?<=[0-9]),(?=[0-9])`, ""),
	mustRule(`\$`, " dollar"),
	mustRule(`%`, "percent"),
	mustRule(`&`, "and"),
	mustRule(`[\t\r\v\f]`, " "),
}

// hashtags removes "#" and the word characters that follow it.
var hashtags = mustRule(`#\w*`, "")

// apply runs r over s. A rule that times out leaves s unchanged.
func (r rule) apply(s string) string {
	out, err := r.re.Replace(s, r.repl, -1, -1)
	if err != nil {
		return s
	}
	return out
}
