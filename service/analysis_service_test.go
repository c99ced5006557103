package service

import (
	"context"
	"strings"
	"testing"

	"mizan-backend/models"
	"mizan-backend/reader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const claimFixture = `دعوى مدنية
المدعي: أحمد علي الحميري
المدعى عليه: سالم محمد باشا
بتاريخ 12/05/2021 استولى المدعى عليه على الأرض في صنعاء
مبلغ: 50,000 ريال
موضوع الدعوى: ملكية أرض وطلب إخلاء
`

// panickingExtractor delegates to the real extractor but panics on a marker
// MIME type, standing in for an unexpected extraction failure.
type panickingExtractor struct {
	real TextExtractor
}

func (e *panickingExtractor) Extract(data []byte, mimeType string) string {
	if mimeType == "application/x-boom" {
		panic("extraction blew up")
	}
	return e.real.Extract(data, mimeType)
}

func TestAnalyzeCaseFullPipeline(t *testing.T) {
	s := NewAnalysisService()

	result, err := s.AnalyzeCase(context.Background(), AnalyzeCaseRequest{
		Files: []FileInput{
			{Name: "claim.txt", MimeType: "text/plain", Data: []byte(claimFixture)},
		},
		Description: "نزاع ملكية أرض",
		CaseType:    models.CaseTypeCivilProperty,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, result.Analysis)
	assert.Nil(t, result.Stored)

	analysis := result.Analysis
	assert.True(t, strings.HasPrefix(analysis.CaseID, "YL-"))
	require.Len(t, analysis.DocumentAnalysis, 1)
	assert.Equal(t, "صحيفة دعوى", analysis.DocumentAnalysis[0].DocumentType)

	assert.Equal(t, "أحمد علي الحميري", analysis.ExtractedParties.Plaintiff)
	assert.Equal(t, "سالم محمد باشا", analysis.ExtractedParties.Defendant)
	assert.Contains(t, analysis.ExtractedDates, "12/05/2021")
	assert.Contains(t, analysis.ExtractedAmounts, "50,000 ريال")
	assert.Contains(t, analysis.ExtractedLocations, "صنعاء")

	assert.Equal(t, "نزاع ملكية عقارية", analysis.DisputeType)
	assert.NotEmpty(t, analysis.CaseSummary)
	assert.NotEmpty(t, analysis.Claims)
	assert.NotEmpty(t, analysis.Defenses)
	assert.NotEmpty(t, analysis.RecommendedActions)
	assert.NotEmpty(t, analysis.ConstitutionalBasis)
	assert.LessOrEqual(t, len(analysis.ConstitutionalBasis), 5)
	assert.LessOrEqual(t, len(analysis.ApplicableLaws), 5)
	assert.LessOrEqual(t, len(analysis.Precedents), 3)

	assert.Equal(t, []string{"صحيفة دعوى"}, analysis.KeyDocuments)
	assert.GreaterOrEqual(t, analysis.ConfidenceScore, 60)
	assert.LessOrEqual(t, analysis.ConfidenceScore, 100)
	assert.Contains(t, analysis.AnalysisNotes, "تم تحليل 1 مستند")
}

func TestAnalyzeCaseRejectsEmptyInput(t *testing.T) {
	s := NewAnalysisService()

	_, err := s.AnalyzeCase(context.Background(), AnalyzeCaseRequest{
		Description: "   ",
	})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestAnalyzeCaseDescriptionOnly(t *testing.T) {
	s := NewAnalysisService()

	result, err := s.AnalyzeCase(context.Background(), AnalyzeCaseRequest{
		Description: "نزاع حول عقد إيجار",
		CaseType:    models.CaseTypeCivilContract,
	})
	require.NoError(t, err)

	assert.Empty(t, result.Analysis.DocumentAnalysis)
	assert.Contains(t, result.Analysis.AnalysisNotes, "تم تحليل 0 مستند")
	assert.NotEmpty(t, result.Analysis.ConstitutionalBasis)
}

func TestAnalyzeCaseDropsPanickingFile(t *testing.T) {
	s := NewAnalysisService(AnalysisWithExtractor(&panickingExtractor{real: reader.NewExtractor()}))

	result, err := s.AnalyzeCase(context.Background(), AnalyzeCaseRequest{
		Files: []FileInput{
			{Name: "bad.bin", MimeType: "application/x-boom", Data: []byte{0x00}},
			{Name: "claim.txt", MimeType: "text/plain", Data: []byte(claimFixture)},
		},
		CaseType: models.CaseTypeCivilProperty,
	})
	require.NoError(t, err)

	require.Len(t, result.Analysis.DocumentAnalysis, 1)
	assert.Equal(t, "أحمد علي الحميري", result.Analysis.ExtractedParties.Plaintiff)
	assert.Contains(t, result.Analysis.AnalysisNotes, "تم تحليل 1 مستند")
}

func TestAnalyzeCaseImagePlaceholderScoresLow(t *testing.T) {
	// An image goes through the OCR stub, so its document carries only the
	// placeholder sentinel and almost no extractable signal.
	s := NewAnalysisService()

	result, err := s.AnalyzeCase(context.Background(), AnalyzeCaseRequest{
		Files: []FileInput{
			{Name: "scan.png", MimeType: "image/png", Data: []byte{0x89, 0x50}},
		},
		CaseType: models.CaseTypeCivilProperty,
	})
	require.NoError(t, err)

	require.Len(t, result.Analysis.DocumentAnalysis, 1)
	doc := result.Analysis.DocumentAnalysis[0]
	assert.Equal(t, reader.SentinelOCRRequired, doc.ExtractedText)
	assert.LessOrEqual(t, doc.Confidence, 20)
	assert.Empty(t, doc.Parties.Plaintiff)
}

func TestAnalyzeCaseGeneratesUniqueCaseIDs(t *testing.T) {
	s := NewAnalysisService()
	req := AnalyzeCaseRequest{Description: "نزاع بسيط"}

	first, err := s.AnalyzeCase(context.Background(), req)
	require.NoError(t, err)
	second, err := s.AnalyzeCase(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.Analysis.CaseID, second.Analysis.CaseID)
}
