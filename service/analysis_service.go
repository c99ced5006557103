package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mizan-backend/analyzer"
	"mizan-backend/legaldb"
	"mizan-backend/models"
	"mizan-backend/reader"
	"mizan-backend/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrEmptyInput is returned when a request carries neither files nor a case
// description.
var ErrEmptyInput = errors.New("no files or case description provided")

// TextExtractor turns file bytes into raw text. Problems surface as
// sentinel text, never as errors.
type TextExtractor interface {
	Extract(data []byte, mimeType string) string
}

// FileInput is one uploaded file to analyze.
type FileInput struct {
	Name     string
	MimeType string
	Data     []byte
}

// AnalysisService runs the case analysis pipeline: text extraction and
// entity recognition per file, merging, reference lookup, narrative
// assembly and scoring.
type AnalysisService struct {
	extractor    TextExtractor
	narrative    NarrativeGenerator
	analysisRepo *repository.AnalysisRepository
	matchMode    legaldb.MatchMode
	logger       *zap.Logger
}

// AnalysisServiceOption is a functional option for AnalysisService
type AnalysisServiceOption func(*AnalysisService)

// AnalysisWithExtractor sets the text extraction backend
func AnalysisWithExtractor(e TextExtractor) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.extractor = e
	}
}

// AnalysisWithNarrativeGenerator sets the narrative generator
func AnalysisWithNarrativeGenerator(n NarrativeGenerator) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.narrative = n
	}
}

// AnalysisWithRepository enables persistence of analysis runs
func AnalysisWithRepository(repo *repository.AnalysisRepository) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.analysisRepo = repo
	}
}

// AnalysisWithMatchMode sets how law and precedent queries are matched
func AnalysisWithMatchMode(mode legaldb.MatchMode) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.matchMode = mode
	}
}

// AnalysisWithLogger sets the logger
func AnalysisWithLogger(logger *zap.Logger) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.logger = logger
	}
}

// NewAnalysisService creates an analysis service with the default extractor
// and the deterministic template narrative.
func NewAnalysisService(opts ...AnalysisServiceOption) *AnalysisService {
	s := &AnalysisService{
		extractor: reader.NewExtractor(),
		narrative: NewTemplateNarrative(),
		matchMode: legaldb.MatchKeywordsOrText,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AnalyzeCaseRequest represents a request to analyze a case
type AnalyzeCaseRequest struct {
	UserID      *uuid.UUID
	Files       []FileInput
	Description string
	CaseType    models.CaseType
}

// AnalyzeCaseResult represents the result of analyzing a case
type AnalyzeCaseResult struct {
	Analysis *models.AnalysisResult
	Stored   *models.CaseAnalysis
}

// AnalyzeCase runs the full pipeline. A failure while extracting or
// analyzing one file drops that file from the batch; failures in the merge,
// lookup or narrative stages abort the whole run with no partial result.
// Documents are staged in upload order before merging so the
// first-non-empty party rule stays order-stable.
func (s *AnalysisService) AnalyzeCase(ctx context.Context, req AnalyzeCaseRequest) (*AnalyzeCaseResult, error) {
	if len(req.Files) == 0 && strings.TrimSpace(req.Description) == "" {
		return nil, ErrEmptyInput
	}

	docs := make([]models.ExtractedDocument, 0, len(req.Files))
	for _, file := range req.Files {
		doc, err := s.analyzeFile(file)
		if err != nil {
			s.logger.Warn("document analysis failed, skipping file",
				zap.String("filename", file.Name), zap.Error(err))
			continue
		}
		docs = append(docs, *doc)
	}

	merged := analyzer.MergeDocuments(docs, req.Description)

	query := strings.Join(merged.KeyTerms, " ") + " " + merged.ExtractedText
	constitutional := legaldb.ConstitutionalBasis(req.CaseType, query)
	laws := legaldb.SearchLaws(query, s.matchMode)
	if len(laws) > 5 {
		laws = laws[:5]
	}
	precedents := legaldb.SearchPrecedents(query, s.matchMode)
	if len(precedents) > 3 {
		precedents = precedents[:3]
	}

	narrative, err := s.narrative.Generate(ctx, NarrativeInput{
		Merged:       merged,
		Description:  req.Description,
		CaseType:     req.CaseType,
		Constitution: constitutional,
		Laws:         laws,
		Precedents:   precedents,
	})
	if err != nil {
		return nil, fmt.Errorf("narrative assembly failed: %w", err)
	}

	keyDocuments := make([]string, 0, len(docs))
	for _, doc := range docs {
		keyDocuments = append(keyDocuments, doc.DocumentType)
	}

	result := &models.AnalysisResult{
		CaseID:              newCaseID(),
		DocumentAnalysis:    docs,
		CaseSummary:         narrative.CaseSummary,
		ExtractedParties:    merged.Parties,
		DisputeType:         narrative.DisputeType,
		ExtractedDates:      merged.Dates,
		ExtractedAmounts:    merged.Amounts,
		ExtractedLocations:  merged.Locations,
		Claims:              narrative.Claims,
		Defenses:            narrative.Defenses,
		KeyDocuments:        keyDocuments,
		ConstitutionalBasis: constitutional,
		ApplicableLaws:      laws,
		Precedents:          precedents,
		LegalAnalysis:       narrative.LegalAnalysis,
		RecommendedActions:  narrative.RecommendedActions,
		ConfidenceScore:     overallConfidence(merged),
		AnalysisNotes:       analysisNotes(merged, docs),
	}

	stored := s.persist(ctx, req, result)

	return &AnalyzeCaseResult{Analysis: result, Stored: stored}, nil
}

// analyzeFile isolates one file's extraction so that an unexpected panic
// drops that file instead of the batch.
func (s *AnalysisService) analyzeFile(file FileInput) (doc *models.ExtractedDocument, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("extraction panic: %v", r)
		}
	}()

	text := s.extractor.Extract(file.Data, file.MimeType)
	return analyzer.Analyze(text), nil
}

// persist stores the run when a repository is configured. Persistence is
// best-effort decoration: a storage failure is logged and the computed
// result is still returned to the caller.
func (s *AnalysisService) persist(ctx context.Context, req AnalyzeCaseRequest, result *models.AnalysisResult) *models.CaseAnalysis {
	if s.analysisRepo == nil {
		return nil
	}

	record := &models.CaseAnalysis{
		UserID:      req.UserID,
		CaseID:      result.CaseID,
		CaseType:    req.CaseType,
		Description: req.Description,
		Result:      *result,
		Confidence:  result.ConfidenceScore,
	}
	if err := s.analysisRepo.Create(ctx, record); err != nil {
		s.logger.Warn("failed to persist analysis", zap.String("case_id", result.CaseID), zap.Error(err))
		return nil
	}
	return record
}

func overallConfidence(merged *models.ExtractedDocument) int {
	score := merged.Confidence
	if merged.Parties.Plaintiff != "" && merged.Parties.Defendant != "" {
		score += 10
	}
	if len(merged.Dates) > 0 {
		score += 5
	}
	if len(merged.Amounts) > 0 {
		score += 5
	}
	if len(merged.LegalReferences) > 0 {
		score += 5
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

func analysisNotes(merged *models.ExtractedDocument, docs []models.ExtractedDocument) []string {
	notes := []string{
		fmt.Sprintf("تم تحليل %d مستند", len(docs)),
		fmt.Sprintf("تم العثور على %d مصطلح قانوني", len(merged.KeyTerms)),
		fmt.Sprintf("تم استخراج %d تاريخ", len(merged.Dates)),
		fmt.Sprintf("تم تحديد %d موقع", len(merged.Locations)),
	}
	if len(merged.LegalReferences) > 0 {
		notes = append(notes, fmt.Sprintf("تم العثور على %d مرجع قانوني", len(merged.LegalReferences)))
	}
	return notes
}

// newCaseID builds a case identifier from the current time plus a random
// suffix, so rapid successive calls cannot collide.
func newCaseID() string {
	return fmt.Sprintf("YL-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
