package repository

import (
	"context"

	"mizan-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AnalysisRepository handles database operations for case analyses
type AnalysisRepository struct {
	db *pgxpool.Pool
}

// NewAnalysisRepository creates a new analysis repository
func NewAnalysisRepository(db *pgxpool.Pool) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// Create persists a new analysis run
func (r *AnalysisRepository) Create(ctx context.Context, analysis *models.CaseAnalysis) error {
	query := `
		INSERT INTO case_analyses (
			user_id, case_id, case_type, description, result, confidence
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRow(
		ctx, query,
		analysis.UserID,
		analysis.CaseID,
		analysis.CaseType,
		analysis.Description,
		analysis.Result,
		analysis.Confidence,
	).Scan(&analysis.ID, &analysis.CreatedAt)

	return err
}

// GetByID retrieves an analysis by its row ID
func (r *AnalysisRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CaseAnalysis, error) {
	analysis := &models.CaseAnalysis{}
	query := `
		SELECT id, user_id, case_id, case_type, description, result, confidence, created_at
		FROM case_analyses
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&analysis.ID,
		&analysis.UserID,
		&analysis.CaseID,
		&analysis.CaseType,
		&analysis.Description,
		&analysis.Result,
		&analysis.Confidence,
		&analysis.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return analysis, nil
}

// GetByCaseID retrieves an analysis by its public case identifier
func (r *AnalysisRepository) GetByCaseID(ctx context.Context, caseID string) (*models.CaseAnalysis, error) {
	analysis := &models.CaseAnalysis{}
	query := `
		SELECT id, user_id, case_id, case_type, description, result, confidence, created_at
		FROM case_analyses
		WHERE case_id = $1`

	err := r.db.QueryRow(ctx, query, caseID).Scan(
		&analysis.ID,
		&analysis.UserID,
		&analysis.CaseID,
		&analysis.CaseType,
		&analysis.Description,
		&analysis.Result,
		&analysis.Confidence,
		&analysis.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return analysis, nil
}

// List retrieves analyses, optionally filtered by user
func (r *AnalysisRepository) List(ctx context.Context, userID *uuid.UUID, limit, offset int) ([]*models.CaseAnalysis, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, user_id, case_id, case_type, description, result, confidence, created_at
		FROM case_analyses
		WHERE ($1::uuid IS NULL OR user_id = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []*models.CaseAnalysis
	for rows.Next() {
		analysis := &models.CaseAnalysis{}
		err := rows.Scan(
			&analysis.ID,
			&analysis.UserID,
			&analysis.CaseID,
			&analysis.CaseType,
			&analysis.Description,
			&analysis.Result,
			&analysis.Confidence,
			&analysis.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, analysis)
	}

	return analyses, rows.Err()
}

// Delete removes an analysis record
func (r *AnalysisRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM case_analyses WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
