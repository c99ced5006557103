package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mizan-backend/models"
	"mizan-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalysisRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAnalysisHandler(service.NewAnalysisService(), nil, nil, nil, 0, nil)

	r := gin.New()
	r.POST("/api/analyses", h.CreateAnalysis)
	r.GET("/api/analyses", h.ListAnalyses)
	r.GET("/api/analyses/:id", h.GetAnalysis)
	return r
}

type analysisForm struct {
	fields map[string]string
	files  map[string]string
}

func postAnalysis(t *testing.T, r *gin.Engine, form analysisForm) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, value := range form.fields {
		require.NoError(t, mw.WriteField(name, value))
	}
	for filename, content := range form.files {
		part, err := mw.CreateFormFile("files", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/analyses", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAnalysisFromDescription(t *testing.T) {
	r := newAnalysisRouter()

	w := postAnalysis(t, r, analysisForm{
		fields: map[string]string{
			"description": "نزاع حول ملكية أرض في صنعاء",
			"case_type":   string(models.CaseTypeCivilProperty),
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Analysis models.AnalysisResult `json:"analysis"`
			Record   *models.CaseAnalysis  `json:"record"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.True(t, strings.HasPrefix(body.Data.Analysis.CaseID, "YL-"))
	assert.Equal(t, "نزاع ملكية عقارية", body.Data.Analysis.DisputeType)
	assert.NotEmpty(t, body.Data.Analysis.ConstitutionalBasis)
	assert.Nil(t, body.Data.Record)
}

func TestCreateAnalysisWithFile(t *testing.T) {
	r := newAnalysisRouter()

	w := postAnalysis(t, r, analysisForm{
		fields: map[string]string{"case_type": string(models.CaseTypeCivilProperty)},
		files: map[string]string{
			"claim.txt": "المدعي: أحمد علي الحميري\nموضوع الدعوى: ملكية أرض\n",
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Data struct {
			Analysis models.AnalysisResult `json:"analysis"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	require.Len(t, body.Data.Analysis.DocumentAnalysis, 1)
	assert.Equal(t, "أحمد علي الحميري", body.Data.Analysis.ExtractedParties.Plaintiff)
}

func TestCreateAnalysisRejectsEmptyInput(t *testing.T) {
	r := newAnalysisRouter()

	w := postAnalysis(t, r, analysisForm{
		fields: map[string]string{"description": "  "},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "EMPTY_INPUT", body.Error.Code)
}

func TestCreateAnalysisRejectsBadUserID(t *testing.T) {
	r := newAnalysisRouter()

	w := postAnalysis(t, r, analysisForm{
		fields: map[string]string{
			"description": "نزاع",
			"user_id":     "not-a-uuid",
		},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_USER_ID", body.Error.Code)
}

func TestAnalysisEndpointsWithoutPersistence(t *testing.T) {
	r := newAnalysisRouter()

	for _, target := range []string{"/api/analyses", "/api/analyses/some-id"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotImplemented, w.Code, target)
	}
}
