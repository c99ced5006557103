package analyzer

import (
	"testing"

	"mizan-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeDocumentsTakesFirstNonEmptyParties(t *testing.T) {
	docs := []models.ExtractedDocument{
		{ExtractedText: "أ", Parties: models.Parties{Defendant: "سالم محمد باشا"}},
		{ExtractedText: "ب", Parties: models.Parties{Plaintiff: "أحمد علي الحميري", Defendant: "شخص آخر"}},
	}

	merged := MergeDocuments(docs, "")
	require.NotNil(t, merged)

	assert.Equal(t, "أحمد علي الحميري", merged.Parties.Plaintiff)
	assert.Equal(t, "سالم محمد باشا", merged.Parties.Defendant)
}

func TestMergeDocumentsUnionsListsInFirstSeenOrder(t *testing.T) {
	docs := []models.ExtractedDocument{
		{Dates: []string{"1/1/2020", "2/2/2020"}, KeyTerms: []string{"ملكية"}},
		{Dates: []string{"2/2/2020", "3/3/2020"}, KeyTerms: []string{"إخلاء", "ملكية"}},
	}

	merged := MergeDocuments(docs, "")

	assert.Equal(t, []string{"1/1/2020", "2/2/2020", "3/3/2020"}, merged.Dates)
	assert.Equal(t, []string{"ملكية", "إخلاء"}, merged.KeyTerms)
}

func TestMergeDocumentsAveragesConfidence(t *testing.T) {
	docs := []models.ExtractedDocument{
		{Confidence: 60},
		{Confidence: 40},
	}

	merged := MergeDocuments(docs, "")
	assert.Equal(t, 50, merged.Confidence)
}

func TestMergeDocumentsJoinsTextsWithDescription(t *testing.T) {
	docs := []models.ExtractedDocument{
		{ExtractedText: "النص الأول"},
		{ExtractedText: "النص الثاني"},
	}

	merged := MergeDocuments(docs, "وصف القضية")

	assert.Equal(t, "النص الأول\n\nالنص الثاني\n\nوصف القضية", merged.ExtractedText)
	assert.Equal(t, DocTypeCollection, merged.DocumentType)
}

func TestMergeDocumentsWithNoDocuments(t *testing.T) {
	merged := MergeDocuments(nil, "وصف فقط")

	assert.Equal(t, "\n\nوصف فقط", merged.ExtractedText)
	assert.Equal(t, 0, merged.Confidence)
	assert.Empty(t, merged.Dates)
	assert.Empty(t, merged.Parties.Plaintiff)
}
