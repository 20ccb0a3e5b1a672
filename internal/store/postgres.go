package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// PostgresStore persists resumes and analyses in PostgreSQL. Structured
// content is stored as JSONB alongside the identifying columns.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to the database and ensures the schema exists.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS resumes (
			id          UUID PRIMARY KEY,
			filename    TEXT NOT NULL,
			doc_type    TEXT NOT NULL,
			uploaded_at TIMESTAMPTZ NOT NULL,
			content     JSONB
		);
		CREATE TABLE IF NOT EXISTS analyses (
			id            UUID PRIMARY KEY,
			resume_id     UUID NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
			analysis_date TIMESTAMPTZ NOT NULL,
			record        JSONB NOT NULL
		);
		CREATE INDEX IF NOT EXISTS analyses_resume_id_idx ON analyses(resume_id);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// SaveResume inserts or replaces a resume record.
func (s *PostgresStore) SaveResume(ctx context.Context, resume *types.Resume) error {
	content, err := json.Marshal(resume.Content)
	if err != nil {
		return fmt.Errorf("failed to marshal resume content: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO resumes (id, filename, doc_type, uploaded_at, content)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET filename = $2, doc_type = $3, uploaded_at = $4, content = $5`,
		resume.ID, resume.Filename, resume.DocType, resume.UploadedAt, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}
	return nil
}

// GetResume retrieves a resume by ID.
func (s *PostgresStore) GetResume(ctx context.Context, id uuid.UUID) (*types.Resume, error) {
	resume := &types.Resume{}
	var content []byte

	err := s.pool.QueryRow(ctx,
		`SELECT id, filename, doc_type, uploaded_at, content FROM resumes WHERE id = $1`,
		id,
	).Scan(&resume.ID, &resume.Filename, &resume.DocType, &resume.UploadedAt, &content)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &ErrResumeNotFound{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	if len(content) > 0 {
		if err := json.Unmarshal(content, &resume.Content); err != nil {
			return nil, fmt.Errorf("failed to unmarshal resume content: %w", err)
		}
	}
	return resume, nil
}

// DeleteResume removes a resume; its analyses cascade.
func (s *PostgresStore) DeleteResume(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &ErrResumeNotFound{ID: id}
	}
	return nil
}

// SaveAnalysis inserts an analysis record.
func (s *PostgresStore) SaveAnalysis(ctx context.Context, analysis *types.Analysis) error {
	record, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO analyses (id, resume_id, analysis_date, record) VALUES ($1, $2, $3, $4)`,
		analysis.ID, analysis.ResumeID, analysis.AnalysisDate, record,
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// GetAnalysis retrieves an analysis by ID.
func (s *PostgresStore) GetAnalysis(ctx context.Context, id uuid.UUID) (*types.Analysis, error) {
	var record []byte
	err := s.pool.QueryRow(ctx, `SELECT record FROM analyses WHERE id = $1`, id).Scan(&record)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &ErrAnalysisNotFound{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	analysis := &types.Analysis{}
	if err := json.Unmarshal(record, analysis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}
	return analysis, nil
}

// ListAnalyses returns all analyses for a resume, newest first.
func (s *PostgresStore) ListAnalyses(ctx context.Context, resumeID uuid.UUID) ([]*types.Analysis, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT record FROM analyses WHERE resume_id = $1 ORDER BY analysis_date DESC`,
		resumeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []*types.Analysis
	for rows.Next() {
		var record []byte
		if err := rows.Scan(&record); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analysis := &types.Analysis{}
		if err := json.Unmarshal(record, analysis); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
		}
		analyses = append(analyses, analysis)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating analyses: %w", err)
	}
	return analyses, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}
