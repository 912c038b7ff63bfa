// Package chat implements the résumé query responder: query normalization,
// intent classification, per-intent answer formatting, and the fallback chain
// that guarantees every question gets an answer.
package chat

import (
	"regexp"
	"strings"
)

// fillerPhrases are stripped from queries before scoring. Longer phrases come
// first so "please share" is removed before "please" would split it.
var fillerPhrases = []string{
	"i would like to know",
	"from where did you",
	"where have you",
	"where did you",
	"i want to know",
	"please share",
	"let me know",
	"could you",
	"would you",
	"can you",
	"tell me",
	"in your",
	"please",
	"kindly",
	"share",
	"about",
	"pls",
	"plz",
}

// synonymRules map colloquialisms to the canonical tokens the intent keyword
// buckets are written against. Multi-word entries come before their
// single-word parts so "tech stack" does not decompose into "tech skills".
var synonymRules = []struct {
	phrase    string
	canonical string
}{
	{"tech stack", "skills"},
	{"schooling", "education"},
	{"school", "education"},
	{"uni", "university"},
	{"college", "university"},
	{"stack", "skills"},
	{"frameworks", "skills"},
	{"tools", "skills"},
	{"finals", "achievements"},
	{"awards", "achievements"},
	{"prizes", "achievements"},
	{"hackathons", "achievements"},
}

type phraseRule struct {
	re   *regexp.Regexp
	with string
}

var normalizeRules = buildNormalizeRules()

func buildNormalizeRules() []phraseRule {
	rules := make([]phraseRule, 0, len(fillerPhrases)+len(synonymRules))
	for _, f := range fillerPhrases {
		rules = append(rules, phraseRule{wholePhrase(f), " "})
	}
	for _, s := range synonymRules {
		rules = append(rules, phraseRule{wholePhrase(s.phrase), " " + s.canonical + " "})
	}
	return rules
}

func wholePhrase(phrase string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(phrase) + `\b`)
}

var (
	nonAlnumRe   = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes a raw user question for intent scoring: lowercase,
// filler phrases removed, synonyms expanded, punctuation flattened. Pure
// function; no I/O.
func Normalize(raw string) string {
	t := strings.ToLower(raw)

	for _, r := range normalizeRules {
		t = r.re.ReplaceAllString(t, r.with)
	}

	t = nonAlnumRe.ReplaceAllString(t, " ")
	t = whitespaceRe.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}
