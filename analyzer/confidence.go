package analyzer

import (
	"regexp"
	"unicode/utf8"

	"mizan-backend/models"
)

var arabicWordPattern = regexp.MustCompile(`[\x{0600}-\x{06FF}]+`)

// Confidence scores how much usable signal an extraction produced, on a
// 0-100 scale. The score is additive over presence and length heuristics
// and is a pure function of the document's own fields.
func Confidence(doc *models.ExtractedDocument) int {
	confidence := 0

	length := utf8.RuneCountInString(doc.ExtractedText)
	if length > 100 {
		confidence += 20
	}
	if length > 500 {
		confidence += 10
	}
	if length > 1000 {
		confidence += 10
	}

	if len(arabicWordPattern.FindAllString(doc.ExtractedText, -1)) > 10 {
		confidence += 20
	}

	if len(doc.Dates) > 0 {
		confidence += 15
	}
	if doc.Parties.Plaintiff != "" || doc.Parties.Defendant != "" {
		confidence += 15
	}
	if len(doc.KeyTerms) > 0 {
		confidence += 10
	}

	if confidence > 100 {
		confidence = 100
	}
	if confidence < 0 {
		confidence = 0
	}
	return confidence
}
