package handlers

import (
	"net/http"

	"mizan-backend/legaldb"
	"mizan-backend/models"

	"github.com/gin-gonic/gin"
)

// ReferenceHandler serves the static legal reference tables
type ReferenceHandler struct {
	matchMode legaldb.MatchMode
}

// NewReferenceHandler creates a new reference handler
func NewReferenceHandler(matchMode legaldb.MatchMode) *ReferenceHandler {
	return &ReferenceHandler{matchMode: matchMode}
}

// SearchConstitution handles GET /api/references/constitution. With a
// case_type parameter it returns the mapped articles merged with any text
// matches; with only q it searches the full table.
func (h *ReferenceHandler) SearchConstitution(c *gin.Context) {
	query := c.Query("q")
	caseType := c.Query("case_type")

	var articles []models.ConstitutionArticle
	if caseType != "" {
		articles = legaldb.ConstitutionalBasis(models.CaseType(caseType), query)
	} else {
		articles = legaldb.SearchConstitution(query)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    articles,
	})
}

// SearchLaws handles GET /api/references/laws?q=...
func (h *ReferenceHandler) SearchLaws(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_QUERY",
				"message": "q query parameter is required",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    legaldb.SearchLaws(query, h.matchMode),
	})
}

// SearchPrecedents handles GET /api/references/precedents?q=...
func (h *ReferenceHandler) SearchPrecedents(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_QUERY",
				"message": "q query parameter is required",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    legaldb.SearchPrecedents(query, h.matchMode),
	})
}

// CaseTypeArticles handles GET /api/references/case-types/:type/articles,
// returning the curated constitution articles for a case type.
func (h *ReferenceHandler) CaseTypeArticles(c *gin.Context) {
	caseType := models.CaseType(c.Param("type"))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    legaldb.ArticlesForCaseType(caseType),
	})
}

// SuggestCaseType handles GET /api/references/case-type?q=...
func (h *ReferenceHandler) SuggestCaseType(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_QUERY",
				"message": "q query parameter is required",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    legaldb.SuggestCaseType(query),
	})
}
