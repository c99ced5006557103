package analyzer

import (
	"strings"
	"testing"

	"mizan-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestConfidenceEmptyDocument(t *testing.T) {
	assert.Equal(t, 0, Confidence(&models.ExtractedDocument{}))
}

func TestConfidenceLengthTiers(t *testing.T) {
	short := &models.ExtractedDocument{ExtractedText: strings.Repeat("x", 101)}
	assert.Equal(t, 20, Confidence(short))

	medium := &models.ExtractedDocument{ExtractedText: strings.Repeat("x", 501)}
	assert.Equal(t, 30, Confidence(medium))

	long := &models.ExtractedDocument{ExtractedText: strings.Repeat("x", 1001)}
	assert.Equal(t, 40, Confidence(long))
}

func TestConfidenceCountsArabicWords(t *testing.T) {
	// Eleven Arabic words in a text under 100 runes: the word bonus applies
	// without any length bonus.
	doc := &models.ExtractedDocument{
		ExtractedText: strings.TrimSpace(strings.Repeat("كلمة ", 11)),
	}
	assert.Equal(t, 20, Confidence(doc))
}

func TestConfidenceEntityBonuses(t *testing.T) {
	doc := &models.ExtractedDocument{
		Dates:    []string{"1/1/2020"},
		Parties:  models.Parties{Plaintiff: "أحمد"},
		KeyTerms: []string{"ملكية"},
	}
	assert.Equal(t, 40, Confidence(doc))
}

func TestConfidenceClampsAtHundred(t *testing.T) {
	doc := &models.ExtractedDocument{
		ExtractedText: strings.TrimSpace(strings.Repeat("كلمة ", 250)),
		Dates:         []string{"1/1/2020"},
		Parties:       models.Parties{Plaintiff: "أحمد", Defendant: "سالم"},
		KeyTerms:      []string{"ملكية"},
	}
	assert.Equal(t, 100, Confidence(doc))
}
