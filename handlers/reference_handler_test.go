package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"mizan-backend/legaldb"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReferenceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewReferenceHandler(legaldb.MatchKeywordsOrText)

	r := gin.New()
	r.GET("/api/references/constitution", h.SearchConstitution)
	r.GET("/api/references/laws", h.SearchLaws)
	r.GET("/api/references/precedents", h.SearchPrecedents)
	r.GET("/api/references/case-types/:type/articles", h.CaseTypeArticles)
	r.GET("/api/references/case-type", h.SuggestCaseType)
	return r
}

type refResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doGet(t *testing.T, r *gin.Engine, path string, query url.Values) (int, refResponse) {
	t.Helper()

	target := path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body refResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestSearchConstitutionByCaseType(t *testing.T) {
	r := newReferenceRouter()

	code, body := doGet(t, r, "/api/references/constitution", url.Values{
		"case_type": {"personal-marriage"},
	})
	require.Equal(t, http.StatusOK, code)
	assert.True(t, body.Success)

	var articles []struct {
		Number int `json:"number"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &articles))

	numbers := make([]int, 0, len(articles))
	for _, a := range articles {
		numbers = append(numbers, a.Number)
	}
	assert.ElementsMatch(t, []int{2, 15, 48}, numbers)
}

func TestSearchLawsRequiresQuery(t *testing.T) {
	r := newReferenceRouter()

	code, body := doGet(t, r, "/api/references/laws", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "MISSING_QUERY", body.Error.Code)
}

func TestSearchLawsByKeyword(t *testing.T) {
	r := newReferenceRouter()

	code, body := doGet(t, r, "/api/references/laws", url.Values{"q": {"ملكية"}})
	require.Equal(t, http.StatusOK, code)

	var articles []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &articles))

	ids := make([]string, 0, len(articles))
	for _, a := range articles {
		ids = append(ids, a.ID)
	}
	assert.Contains(t, ids, "const_47")
}

func TestSearchPrecedents(t *testing.T) {
	r := newReferenceRouter()

	code, body := doGet(t, r, "/api/references/precedents", url.Values{"q": {"إخلاء"}})
	require.Equal(t, http.StatusOK, code)

	var precedents []struct {
		CaseNumber string `json:"case_number"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &precedents))
	assert.Len(t, precedents, 2)
}

func TestCaseTypeArticlesEndpoint(t *testing.T) {
	r := newReferenceRouter()

	code, body := doGet(t, r, "/api/references/case-types/criminal-felony/articles", nil)
	require.Equal(t, http.StatusOK, code)

	var articles []struct {
		Number int `json:"number"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &articles))

	numbers := make([]int, 0, len(articles))
	for _, a := range articles {
		numbers = append(numbers, a.Number)
	}
	assert.ElementsMatch(t, []int{15, 25, 31, 149}, numbers)
}

func TestSuggestCaseTypeEndpoint(t *testing.T) {
	r := newReferenceRouter()

	code, body := doGet(t, r, "/api/references/case-type", url.Values{"q": {"نزاع ملكية أرض"}})
	require.Equal(t, http.StatusOK, code)

	var suggestion struct {
		Type       string  `json:"type"`
		Confidence float64 `json:"confidence"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &suggestion))
	assert.Equal(t, "civil-property", suggestion.Type)
	assert.InDelta(t, 0.8, suggestion.Confidence, 1e-9)
}
