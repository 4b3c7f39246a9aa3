package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFontForLanguage(t *testing.T) {
	assert.Equal(t, "NotoSans", FontForLanguage("English"))
	assert.Equal(t, "NotoSansDevanagari", FontForLanguage("Hindi"))
	assert.Equal(t, "NotoSansDevanagari", FontForLanguage("Marathi"))
	assert.Equal(t, DefaultFont, FontForLanguage("French"))
	assert.Equal(t, DefaultFont, FontForLanguage(""))
}

func TestSupportedLanguagesAllMapped(t *testing.T) {
	assert.Len(t, SupportedLanguages, 9)
	for _, language := range SupportedLanguages {
		assert.True(t, IsSupportedLanguage(language))
		assert.NotEmpty(t, FontForLanguage(language))
	}
	assert.False(t, IsSupportedLanguage("Klingon"))
}
