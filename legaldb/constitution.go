// Package legaldb holds the static Yemeni legal reference tables:
// constitution articles, codified law articles and judicial precedents.
// The tables are read-only for the lifetime of the process and every query
// is a pure function over them.
package legaldb

import (
	"strings"

	"mizan-backend/models"
)

var constitutionArticles = []models.ConstitutionArticle{
	{
		Number:        1,
		Title:         "طبيعة الدولة",
		Text:          "الجمهورية اليمنية دولة عربية إسلامية مستقلة ذات سيادة، وحدتها لا تتجزأ، ولا يجوز التنازل عن أي جزء منها، والشعب اليمني جزء من الأمة العربية والإسلامية.",
		Chapter:       "الأحكام العامة",
		RelevantCases: []string{"قضايا السيادة", "النزاعات الحدودية"},
	},
	{
		Number:        2,
		Title:         "الدين والشريعة",
		Text:          "الإسلام دين الدولة، والشريعة الإسلامية مصدر جميع التشريعات.",
		Chapter:       "الأحكام العامة",
		RelevantCases: []string{"الأحوال الشخصية", "المعاملات المالية", "الجرائم الحدية"},
	},
	{
		Number:        15,
		Title:         "حق التقاضي",
		Text:          "التقاضي حق مصون ومكفول للناس كافة، ولكل مواطن حق الالتجاء إلى قاضيه الطبيعي، والدفاع عن حقوقه وحرياته بكافة الوسائل المشروعة، والقانون يحدد إجراءات التقاضي ويكفل سرعة الفصل في القضايا.",
		Chapter:       "الحقوق والحريات العامة",
		RelevantCases: []string{"جميع القضايا المدنية والجنائية", "حق الدفاع", "سرعة التقاضي"},
	},
	{
		Number:        25,
		Title:         "المساواة أمام القانون",
		Text:          "المواطنون متساوون أمام القانون، وهم متساوون في الحقوق والواجبات العامة، ولا تمييز بينهم في ذلك بسبب الجنس أو اللون أو الأصل أو اللغة أو المهنة أو المركز الاجتماعي أو العقيدة الدينية.",
		Chapter:       "الحقوق والحريات العامة",
		RelevantCases: []string{"التمييز", "المساواة", "حقوق الإنسان"},
	},
	{
		Number:        31,
		Title:         "حرمة المسكن",
		Text:          "للمساكن حرمة، فلا يجوز دخولها أو تفتيشها إلا في الأحوال المبينة في القانون وبالكيفية المنصوص عليها فيه.",
		Chapter:       "الحقوق والحريات العامة",
		RelevantCases: []string{"انتهاك حرمة المسكن", "التفتيش غير القانوني", "الحماية الجنائية"},
	},
	{
		Number:        47,
		Title:         "الملكية الخاصة",
		Text:          "الملكية الخاصة مصونة، ولا يجوز المساس بها إلا للمصلحة العامة ومقابل تعويض عادل وفقاً للقانون، ولا يجوز نزع الملكية إلا بحكم قضائي.",
		Chapter:       "الحقوق الاقتصادية والاجتماعية",
		RelevantCases: []string{"نزاعات الملكية", "نزع الملكية للمنفعة العامة", "التعويضات"},
	},
	{
		Number:        48,
		Title:         "حق الإرث",
		Text:          "الإرث حق تكفله الشريعة الإسلامية والقانون.",
		Chapter:       "الحقوق الاقتصادية والاجتماعية",
		RelevantCases: []string{"قضايا الميراث", "النزاعات العائلية", "تقسيم التركات"},
	},
	{
		Number:        149,
		Title:         "استقلال القضاء",
		Text:          "السلطة القضائية مستقلة، وتتولاها المحاكم على اختلاف أنواعها ودرجاتها، وتصدر أحكامها وفقاً للقانون، ولا يجوز لأية سلطة التدخل في القضايا أو في شؤون العدالة.",
		Chapter:       "السلطة القضائية",
		RelevantCases: []string{"استقلال القضاء", "التدخل في القضايا", "ضمانات المحاكمة"},
	},
}

// caseTypeArticles maps a case type to its curated constitution articles.
// Case types without an entry fall back to fallbackArticles.
var caseTypeArticles = map[models.CaseType][]int{
	models.CaseTypeCivilProperty:       {47, 15, 25},
	models.CaseTypeCivilContract:       {47, 15, 2},
	models.CaseTypePersonalMarriage:    {2, 48, 15},
	models.CaseTypePersonalInheritance: {2, 48, 15},
	models.CaseTypeCriminalFelony:      {15, 25, 31, 149},
	models.CaseTypeCriminalMisdemeanor: {15, 25, 31, 149},
	models.CaseTypeAdministrative:      {15, 25, 149},
	models.CaseTypeCommercial:          {47, 15, 2},
}

var fallbackArticles = []int{15, 25}

// ArticlesForCaseType returns the curated constitution articles for a case
// type, or the fixed fallback pair for unknown types.
func ArticlesForCaseType(caseType models.CaseType) []models.ConstitutionArticle {
	numbers, ok := caseTypeArticles[caseType]
	if !ok {
		numbers = fallbackArticles
	}

	var articles []models.ConstitutionArticle
	for _, article := range constitutionArticles {
		for _, n := range numbers {
			if article.Number == n {
				articles = append(articles, article)
				break
			}
		}
	}
	return articles
}

// SearchConstitution returns every article where some whitespace-separated
// query token occurs in the title, text or relevant-case tags,
// case-insensitively.
func SearchConstitution(query string) []models.ConstitutionArticle {
	terms := strings.Fields(strings.ToLower(query))

	var matches []models.ConstitutionArticle
	for _, article := range constitutionArticles {
		haystack := strings.ToLower(article.Title + " " + article.Text + " " + strings.Join(article.RelevantCases, " "))
		for _, term := range terms {
			if strings.Contains(haystack, term) || tagContains(article.RelevantCases, term) {
				matches = append(matches, article)
				break
			}
		}
	}
	return matches
}

func tagContains(tags []string, term string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// ConstitutionalBasis combines the case-type articles with keyword search
// results, deduplicated by article number with the case-type articles first,
// capped at five.
func ConstitutionalBasis(caseType models.CaseType, query string) []models.ConstitutionArticle {
	combined := append(ArticlesForCaseType(caseType), SearchConstitution(query)...)

	seen := make(map[int]bool)
	var unique []models.ConstitutionArticle
	for _, article := range combined {
		if seen[article.Number] {
			continue
		}
		seen[article.Number] = true
		unique = append(unique, article)
		if len(unique) == 5 {
			break
		}
	}
	return unique
}
