package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"mizan-backend/models"
	"mizan-backend/repository"
	"mizan-backend/service"
	"mizan-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AnalysisHandler handles HTTP requests for case analyses
type AnalysisHandler struct {
	analysisService *service.AnalysisService
	analysisRepo    *repository.AnalysisRepository
	fileRepo        *repository.FileRepository
	storage         storage.Storage
	maxFileSize     int64
	logger          *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler. Repository and storage
// may be nil, in which case analyses are computed but not persisted.
func NewAnalysisHandler(
	analysisService *service.AnalysisService,
	analysisRepo *repository.AnalysisRepository,
	fileRepo *repository.FileRepository,
	store storage.Storage,
	maxFileSize int64,
	logger *zap.Logger,
) *AnalysisHandler {
	if maxFileSize <= 0 {
		maxFileSize = 10 * 1024 * 1024
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisHandler{
		analysisService: analysisService,
		analysisRepo:    analysisRepo,
		fileRepo:        fileRepo,
		storage:         store,
		maxFileSize:     maxFileSize,
		logger:          logger,
	}
}

// CreateAnalysis handles POST /api/analyses. The request is multipart form
// data: zero or more "files" parts plus "description", "case_type" and an
// optional "user_id" field. A request with no files and a blank description
// is rejected.
func (h *AnalysisHandler) CreateAnalysis(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "multipart form data is required",
			},
		})
		return
	}

	description := c.PostForm("description")
	caseType := models.CaseType(c.PostForm("case_type"))

	var userID *uuid.UUID
	if userIDStr := c.PostForm("user_id"); userIDStr != "" {
		uid, err := uuid.Parse(userIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_USER_ID",
					"message": "Invalid user_id format",
				},
			})
			return
		}
		userID = &uid
	}

	var files []service.FileInput
	for _, fileHeader := range form.File["files"] {
		if fileHeader.Size > h.maxFileSize {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FILE_TOO_LARGE",
					"message": fmt.Sprintf("File %q exceeds maximum of %d bytes", fileHeader.Filename, h.maxFileSize),
				},
			})
			return
		}

		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FILE_OPEN_ERROR",
					"message": err.Error(),
				},
			})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FILE_READ_ERROR",
					"message": err.Error(),
				},
			})
			return
		}

		files = append(files, service.FileInput{
			Name:     fileHeader.Filename,
			MimeType: inferMimeType(fileHeader.Header.Get("Content-Type"), fileHeader.Filename),
			Data:     data,
		})
	}

	result, err := h.analysisService.AnalyzeCase(c.Request.Context(), service.AnalyzeCaseRequest{
		UserID:      userID,
		Files:       files,
		Description: description,
		CaseType:    caseType,
	})
	if err != nil {
		if err == service.ErrEmptyInput {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "EMPTY_INPUT",
					"message": "At least one file or a case description is required",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ANALYSIS_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	// Keep the original uploads when the run was persisted. Storage failures
	// only lose the raw files, never the analysis.
	if result.Stored != nil {
		h.archiveUploads(c, result.Stored, userID, files)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"analysis": result.Analysis,
			"record":   result.Stored,
		},
	})
}

func (h *AnalysisHandler) archiveUploads(c *gin.Context, stored *models.CaseAnalysis, userID *uuid.UUID, files []service.FileInput) {
	if h.storage == nil || h.fileRepo == nil {
		return
	}
	for _, file := range files {
		fileID := uuid.New()
		storagePath, err := h.storage.Upload(c.Request.Context(), fileID, file.Name, bytes.NewReader(file.Data))
		if err != nil {
			h.logger.Warn("failed to archive upload",
				zap.String("filename", file.Name), zap.Error(err))
			continue
		}
		record := &models.File{
			ID:          fileID,
			UserID:      userID,
			AnalysisID:  &stored.ID,
			Filename:    file.Name,
			MimeType:    file.MimeType,
			Size:        int64(len(file.Data)),
			StoragePath: storagePath,
		}
		if err := h.fileRepo.Create(c.Request.Context(), record); err != nil {
			h.storage.Delete(c.Request.Context(), storagePath)
			h.logger.Warn("failed to record archived upload",
				zap.String("filename", file.Name), zap.Error(err))
		}
	}
}

// GetAnalysis handles GET /api/analyses/:id. The id may be the row UUID or
// the public case identifier.
func (h *AnalysisHandler) GetAnalysis(c *gin.Context) {
	analysis, ok := h.lookupAnalysis(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    analysis,
	})
}

// ListAnalyses handles GET /api/analyses with optional user_id, limit and
// offset query parameters.
func (h *AnalysisHandler) ListAnalyses(c *gin.Context) {
	if h.analysisRepo == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PERSISTENCE_DISABLED",
				"message": "Analysis persistence is not configured",
			},
		})
		return
	}

	var userID *uuid.UUID
	if userIDStr := c.Query("user_id"); userIDStr != "" {
		uid, err := uuid.Parse(userIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_USER_ID",
					"message": "Invalid user_id format",
				},
			})
			return
		}
		userID = &uid
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	analyses, err := h.analysisRepo.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "RETRIEVAL_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    analyses,
	})
}

// DeleteAnalysis handles DELETE /api/analyses/:id.
func (h *AnalysisHandler) DeleteAnalysis(c *gin.Context) {
	analysis, ok := h.lookupAnalysis(c)
	if !ok {
		return
	}

	if err := h.analysisRepo.Delete(c.Request.Context(), analysis.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DELETE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"id": analysis.ID},
	})
}

// ExportAnalysis handles GET /api/analyses/:id/export. It serves the stored
// result as a downloadable JSON document named after the case identifier.
func (h *AnalysisHandler) ExportAnalysis(c *gin.Context) {
	analysis, ok := h.lookupAnalysis(c)
	if !ok {
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.json\"", analysis.CaseID))
	c.JSON(http.StatusOK, analysis.Result)
}

// lookupAnalysis resolves the :id path parameter to a stored analysis,
// writing the error response itself on failure.
func (h *AnalysisHandler) lookupAnalysis(c *gin.Context) (*models.CaseAnalysis, bool) {
	if h.analysisRepo == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PERSISTENCE_DISABLED",
				"message": "Analysis persistence is not configured",
			},
		})
		return nil, false
	}

	idStr := c.Param("id")

	var analysis *models.CaseAnalysis
	var err error
	if id, parseErr := uuid.Parse(idStr); parseErr == nil {
		analysis, err = h.analysisRepo.GetByID(c.Request.Context(), id)
	} else {
		analysis, err = h.analysisRepo.GetByCaseID(c.Request.Context(), idStr)
	}
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Analysis not found",
			},
		})
		return nil, false
	}

	return analysis, true
}
