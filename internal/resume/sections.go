package resume

import (
	"regexp"
	"strings"
)

// sectionHeaders is the fixed vocabulary of raw-text section headers. A
// section's content is everything between its header line and the next
// recognized header line (or end of text).
var sectionHeaders = []string{
	"Professional Summary",
	"Education",
	"Projects",
	"Technical Skills",
	"Leadership / Extracurricular",
	"Leadership",
	"Extracurricular",
}

// ExtractSection returns the body of the named section of the raw résumé
// text, or "" when the header is not present. Header matching is
// case-insensitive and requires the header to be alone on its line.
func ExtractSection(text, header string) string {
	if text == "" {
		return ""
	}

	lines := splitLines(text)
	start := -1
	for i, l := range lines {
		if strings.EqualFold(strings.TrimSpace(l), header) {
			start = i
			break
		}
	}
	if start == -1 {
		return ""
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if isSectionHeader(strings.TrimSpace(lines[i])) {
			end = i
			break
		}
	}

	return strings.TrimSpace(strings.Join(lines[start+1:end], "\n"))
}

func isSectionHeader(line string) bool {
	for _, h := range sectionHeaders {
		if strings.EqualFold(line, h) {
			return true
		}
	}
	return false
}

func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// SplitSentences splits text on sentence-ending punctuation followed by
// whitespace, flattening newlines first.
func SplitSentences(text string) []string {
	flat := strings.TrimSpace(regexp.MustCompile(`\n+`).ReplaceAllString(text, " "))
	if flat == "" {
		return nil
	}

	var sentences []string
	start := 0
	runes := []rune(flat)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '.' && runes[i] != '!' && runes[i] != '?' {
			continue
		}
		// Sentence boundary only when punctuation is followed by whitespace.
		if i+1 < len(runes) && runes[i+1] != ' ' && runes[i+1] != '\t' {
			continue
		}
		if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
			sentences = append(sentences, s)
		}
		start = i + 1
	}
	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// FirstSentences returns the first max sentences of text joined by spaces.
func FirstSentences(text string, max int) string {
	sentences := SplitSentences(text)
	if len(sentences) > max {
		sentences = sentences[:max]
	}
	return strings.Join(sentences, " ")
}

// BulletLines renders up to limit non-empty lines of text as "• " bullets,
// stripping any existing bullet or dash markers.
func BulletLines(text string, limit int) string {
	var bullets []string
	for _, l := range splitLines(text) {
		l = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(l), "-•"))
		if l == "" {
			continue
		}
		bullets = append(bullets, "• "+l)
		if len(bullets) == limit {
			break
		}
	}
	return strings.Join(bullets, "\n")
}

var (
	bracketHeaderRe = regexp.MustCompile(`(?m)^\s*\[[^\]\n]+\]\s*$`)
	templateKeyRe   = regexp.MustCompile(`(?mi)^\s*(name|title|location|email|phone|website|linkedin|github)\s*:.*$`)
	oddSpaceRe      = regexp.MustCompile("[- ]")
	trailingWSRe    = regexp.MustCompile(`[ \t]+\n`)
)

// SanitizeContext prepares raw résumé text for use as generative-model
// context: template header lines, template keys, and odd copied characters
// are stripped so the model never echoes them back.
func SanitizeContext(text string) string {
	text = bracketHeaderRe.ReplaceAllString(text, "")
	text = templateKeyRe.ReplaceAllString(text, "")
	text = oddSpaceRe.ReplaceAllString(text, " ")
	text = trailingWSRe.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
