package legaldb

import (
	"testing"

	"mizan-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func articleNumbers(articles []models.ConstitutionArticle) []int {
	numbers := make([]int, 0, len(articles))
	for _, a := range articles {
		numbers = append(numbers, a.Number)
	}
	return numbers
}

func TestArticlesForCaseType(t *testing.T) {
	marriage := ArticlesForCaseType(models.CaseTypePersonalMarriage)
	assert.ElementsMatch(t, []int{2, 15, 48}, articleNumbers(marriage))

	felony := ArticlesForCaseType(models.CaseTypeCriminalFelony)
	assert.ElementsMatch(t, []int{15, 25, 31, 149}, articleNumbers(felony))
}

func TestArticlesForUnknownCaseTypeFallsBack(t *testing.T) {
	articles := ArticlesForCaseType(models.CaseType("unknown"))
	assert.ElementsMatch(t, []int{15, 25}, articleNumbers(articles))
}

func TestSearchConstitutionByTokens(t *testing.T) {
	matches := SearchConstitution("الميراث")
	numbers := articleNumbers(matches)
	assert.Contains(t, numbers, 48)
}

func TestSearchConstitutionEmptyQuery(t *testing.T) {
	assert.Empty(t, SearchConstitution("   "))
}

func TestConstitutionalBasisDeduplicatesAndCaps(t *testing.T) {
	// Case-type articles for civil property already include 15 and 47; a
	// query hitting both must not duplicate them, and the total stays at
	// five even when the search matches broadly.
	basis := ConstitutionalBasis(models.CaseTypeCivilProperty, "الملكية التقاضي القضايا")

	numbers := articleNumbers(basis)
	seen := map[int]bool{}
	for _, n := range numbers {
		assert.False(t, seen[n], "article %d appears twice", n)
		seen[n] = true
	}
	assert.LessOrEqual(t, len(basis), 5)
	assert.Contains(t, numbers, 47)
	assert.Contains(t, numbers, 15)
}

func TestSearchLawsKeywordMatch(t *testing.T) {
	matches := SearchLaws("ملكية", MatchKeywordsOnly)

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}
	assert.Contains(t, ids, "const_47")
	assert.NotContains(t, ids, "civil_147")
}

func TestSearchLawsTextMatchOnlyInOrTextMode(t *testing.T) {
	// The phrase occurs in the body of constitution article 1 but in no
	// keyword tag.
	query := "لا يجوز التنازل"

	assert.Empty(t, SearchLaws(query, MatchKeywordsOnly))

	matches := SearchLaws(query, MatchKeywordsOrText)
	require.Len(t, matches, 1)
	assert.Equal(t, "const_1", matches[0].ID)
}

func TestSearchPrecedentsByKeyword(t *testing.T) {
	matches := SearchPrecedents("إخلاء", MatchKeywordsOnly)

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}
	assert.ElementsMatch(t, []string{"prec_89_2021", "prec_234_2020"}, ids)
}

func TestSearchIsReferentiallyTransparent(t *testing.T) {
	first := SearchLaws("عقد", MatchKeywordsOrText)
	second := SearchLaws("عقد", MatchKeywordsOrText)
	assert.Equal(t, first, second)
}

func TestSuggestCaseType(t *testing.T) {
	property := SuggestCaseType("نزاع حول ملكية أرض في صنعاء")
	assert.Equal(t, models.CaseTypeCivilProperty, property.Type)
	assert.InDelta(t, 0.8, property.Confidence, 1e-9)
	assert.NotEmpty(t, property.SuggestedLaws)

	marriage := SuggestCaseType("قضية زواج")
	assert.Equal(t, models.CaseTypePersonalMarriage, marriage.Type)
}

func TestSuggestCaseTypeFallback(t *testing.T) {
	suggestion := SuggestCaseType("نص لا يطابق شيئاً")
	assert.Equal(t, models.CaseType("general"), suggestion.Type)
	assert.InDelta(t, 0.3, suggestion.Confidence, 1e-9)
	assert.Equal(t, []string{"القانون المدني", "قانون المرافعات"}, suggestion.SuggestedLaws)
}

func TestSuggestCaseTypeHintOrder(t *testing.T) {
	// A description containing both property and contract keywords resolves
	// to property because that hint comes first.
	suggestion := SuggestCaseType("ملكية بموجب عقد بيع")
	assert.Equal(t, models.CaseTypeCivilProperty, suggestion.Type)
}
