// Package store provides persistence for resume uploads and analysis
// records. The reference deployment uses the transient in-memory store;
// a PostgreSQL-backed store is available behind the same interface.
package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Store persists resumes and their analyses. Analyses are immutable derived
// records: re-analysis creates a new record rather than mutating an old one.
type Store interface {
	SaveResume(ctx context.Context, resume *types.Resume) error
	GetResume(ctx context.Context, id uuid.UUID) (*types.Resume, error)
	DeleteResume(ctx context.Context, id uuid.UUID) error

	SaveAnalysis(ctx context.Context, analysis *types.Analysis) error
	GetAnalysis(ctx context.Context, id uuid.UUID) (*types.Analysis, error)
	ListAnalyses(ctx context.Context, resumeID uuid.UUID) ([]*types.Analysis, error)

	Close() error
}

// ErrResumeNotFound indicates the resume does not exist.
type ErrResumeNotFound struct {
	ID uuid.UUID
}

func (e *ErrResumeNotFound) Error() string {
	return fmt.Sprintf("resume not found: %s", e.ID)
}

// ErrAnalysisNotFound indicates the analysis does not exist.
type ErrAnalysisNotFound struct {
	ID uuid.UUID
}

func (e *ErrAnalysisNotFound) Error() string {
	return fmt.Sprintf("analysis not found: %s", e.ID)
}
