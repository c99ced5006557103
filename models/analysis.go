package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CaseType classifies a case for constitutional-article lookup.
type CaseType string

const (
	CaseTypeCivilProperty       CaseType = "civil-property"
	CaseTypeCivilContract       CaseType = "civil-contract"
	CaseTypeCivilCompensation   CaseType = "civil-compensation"
	CaseTypeCriminalFelony      CaseType = "criminal-felony"
	CaseTypeCriminalMisdemeanor CaseType = "criminal-misdemeanor"
	CaseTypeCommercial          CaseType = "commercial-dispute"
	CaseTypePersonalMarriage    CaseType = "personal-marriage"
	CaseTypePersonalInheritance CaseType = "personal-inheritance"
	CaseTypeAdministrative      CaseType = "administrative"
	CaseTypeLabor               CaseType = "labor"
)

// AnalysisResult is the full output of one case analysis run. It is built
// once per invocation and never mutated after return; the tree is acyclic
// and serializes directly to JSON for export.
type AnalysisResult struct {
	CaseID             string                `json:"case_id"`
	DocumentAnalysis   []ExtractedDocument   `json:"document_analysis"`
	CaseSummary        string                `json:"case_summary"`
	ExtractedParties   Parties               `json:"extracted_parties"`
	DisputeType        string                `json:"dispute_type"`
	ExtractedDates     []string              `json:"extracted_dates"`
	ExtractedAmounts   []string              `json:"extracted_amounts"`
	ExtractedLocations []string              `json:"extracted_locations"`
	Claims             []string              `json:"claims"`
	Defenses           []string              `json:"defenses"`
	KeyDocuments       []string              `json:"key_documents"`
	ConstitutionalBasis []ConstitutionArticle `json:"constitutional_basis"`
	ApplicableLaws     []LegalArticle        `json:"applicable_laws"`
	Precedents         []LegalPrecedent      `json:"precedents"`
	LegalAnalysis      string                `json:"legal_analysis"`
	RecommendedActions []string              `json:"recommended_actions"`
	ConfidenceScore    int                   `json:"confidence_score"`
	AnalysisNotes      []string              `json:"analysis_notes"`
}

// Value implements driver.Valuer for JSONB
func (r AnalysisResult) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// Scan implements sql.Scanner for JSONB
func (r *AnalysisResult) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	if len(bytes) == 0 {
		return nil
	}

	return json.Unmarshal(bytes, r)
}

// CaseAnalysis is a persisted analysis run.
type CaseAnalysis struct {
	ID          uuid.UUID      `json:"id"`
	UserID      *uuid.UUID     `json:"user_id,omitempty"`
	CaseID      string         `json:"case_id"`
	CaseType    CaseType       `json:"case_type"`
	Description string         `json:"description"`
	Result      AnalysisResult `json:"result"`
	Confidence  int            `json:"confidence"`
	CreatedAt   time.Time      `json:"created_at"`
}
