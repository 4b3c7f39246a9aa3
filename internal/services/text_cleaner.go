package services

import (
	"regexp"
	"strings"
)

// Patterns applied in order by CleanResponseText. The fence pattern runs
// first so the later character-level passes never see fenced content.
var (
	fencedBlockPattern = regexp.MustCompile("```[\\s\\S]*?```")
	emphasisPattern    = regexp.MustCompile("[*_`]")
	htmlTagPattern     = regexp.MustCompile(`<[^>]+>`)
	blankRunPattern    = regexp.MustCompile(`\n\s*\n`)
)

// CleanResponseText strips model-produced formatting noise: fenced code
// blocks, stray emphasis markers, HTML-like tags, and runs of blank lines.
// It is idempotent and never fails; an empty input yields an empty string.
func CleanResponseText(text string) string {
	text = fencedBlockPattern.ReplaceAllString(text, "")
	text = emphasisPattern.ReplaceAllString(text, "")
	text = htmlTagPattern.ReplaceAllString(text, "")
	text = blankRunPattern.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
