package legaldb

import (
	"strings"

	"mizan-backend/models"
)

// CaseTypeSuggestion is a heuristic classification of a case description.
type CaseTypeSuggestion struct {
	Type          models.CaseType `json:"type"`
	Confidence    float64         `json:"confidence"`
	SuggestedLaws []string        `json:"suggested_laws"`
}

var caseTypeHints = []struct {
	keyword  string
	caseType models.CaseType
	laws     []string
}{
	{"ملكية", models.CaseTypeCivilProperty, []string{"القانون المدني", "قانون التسجيل العقاري"}},
	{"عقد", models.CaseTypeCivilContract, []string{"القانون المدني", "القانون التجاري"}},
	{"إخلاء", models.CaseTypeCivilProperty, []string{"القانون المدني", "قانون المرافعات"}},
	{"جريمة", models.CaseTypeCriminalFelony, []string{"قانون العقوبات", "قانون الإجراءات الجزائية"}},
	{"زواج", models.CaseTypePersonalMarriage, []string{"قانون الأحوال الشخصية"}},
	{"ميراث", models.CaseTypePersonalInheritance, []string{"قانون الأحوال الشخصية"}},
	{"تجاري", models.CaseTypeCommercial, []string{"القانون التجاري", "قانون الشركات"}},
}

// SuggestCaseType classifies a free-text case description by keyword
// presence, in hint order. Descriptions matching nothing get a low-confidence
// general fallback.
func SuggestCaseType(description string) CaseTypeSuggestion {
	for _, hint := range caseTypeHints {
		if strings.Contains(description, hint.keyword) {
			return CaseTypeSuggestion{
				Type:          hint.caseType,
				Confidence:    0.8,
				SuggestedLaws: hint.laws,
			}
		}
	}
	return CaseTypeSuggestion{
		Type:          "general",
		Confidence:    0.3,
		SuggestedLaws: []string{"القانون المدني", "قانون المرافعات"},
	}
}
