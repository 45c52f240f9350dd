package llm

import (
	"regexp"
	"strings"
)

// Models asked for "raw JSON only" still wrap replies in markdown fences or
// emit near-JSON with trailing commas. Normalization handles those before the
// first parse; Repair applies the heavier fixes for the single retry.

var (
	reTrailingComma  = regexp.MustCompile(`,\s*([}\]])`)
	reBraceBrace     = regexp.MustCompile(`}\s*{`)
	reBracketBrace   = regexp.MustCompile(`]\s*{`)
	reNumberNewKey   = regexp.MustCompile(`(\d)\s*\n\s*"`)
	reLiteralNewKey  = regexp.MustCompile(`(true|false|null)\s*\n\s*"`)
)

// Normalize strips markdown fencing and trailing separators so that a
// well-behaved reply parses on the first attempt.
func Normalize(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		if _, rest, ok := strings.Cut(text, "\n"); ok {
			text = rest
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}
	return reTrailingComma.ReplaceAllString(text, "$1")
}

// Repair applies the bounded set of textual fixes for the one retry: slice to
// the outermost object and patch missing commas between adjacent values. It
// never invents content.
func Repair(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		text = text[start : end+1]
	}
	text = reBraceBrace.ReplaceAllString(text, "},{")
	text = reBracketBrace.ReplaceAllString(text, "],{")
	text = reNumberNewKey.ReplaceAllString(text, "$1,\n\"")
	text = reLiteralNewKey.ReplaceAllString(text, "$1,\n\"")
	return text
}
