package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanResponseTextRemovesFencedBlocks(t *testing.T) {
	input := "Day 1: Arrival\n```python\nprint('hello')\n```\nDay 2: Beach"
	cleaned := CleanResponseText(input)

	assert.NotContains(t, cleaned, "```")
	assert.NotContains(t, cleaned, "print('hello')")
	assert.Contains(t, cleaned, "Day 1: Arrival")
	assert.Contains(t, cleaned, "Day 2: Beach")
}

func TestCleanResponseTextRemovesEmphasisMarkers(t *testing.T) {
	cleaned := CleanResponseText("*Day 1*: _Arrival_ at `hotel`")
	assert.Equal(t, "Day 1: Arrival at hotel", cleaned)
}

func TestCleanResponseTextRemovesHTMLTags(t *testing.T) {
	cleaned := CleanResponseText("<b>Day 1</b>: Arrival <br/>")
	assert.Equal(t, "Day 1: Arrival", cleaned)
}

func TestCleanResponseTextCollapsesBlankLines(t *testing.T) {
	cleaned := CleanResponseText("Day 1\n\n\nDay 2\n   \nDay 3")
	assert.Equal(t, "Day 1\nDay 2\nDay 3", cleaned)
}

func TestCleanResponseTextIdempotent(t *testing.T) {
	inputs := []string{
		"Day 1: Arrival\n```\ncode\n```\n\n*Day 2*: <i>Beach</i>\n\n\nDay 3",
		"plain text, already clean",
		"Transport | Flight | 5000\nFood | Meals | 2000",
	}
	for _, input := range inputs {
		once := CleanResponseText(input)
		assert.Equal(t, once, CleanResponseText(once))
	}
}

func TestCleanResponseTextEmptyInput(t *testing.T) {
	assert.Equal(t, "", CleanResponseText(""))
	assert.Equal(t, "", CleanResponseText("   \n\n  "))
}
