package store

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// DefaultRetention is how long uploaded resumes are kept before the sweep
// removes them, matching the upstream file retention policy.
const DefaultRetention = 24 * time.Hour

// MemoryStore is the transient in-memory store. Uploads do not survive a
// restart; that is the documented behavior of the reference deployment.
type MemoryStore struct {
	mu       sync.RWMutex
	resumes  map[uuid.UUID]*types.Resume
	analyses map[uuid.UUID]*types.Analysis
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		resumes:  make(map[uuid.UUID]*types.Resume),
		analyses: make(map[uuid.UUID]*types.Analysis),
	}
}

// SaveResume stores a resume record.
func (s *MemoryStore) SaveResume(_ context.Context, resume *types.Resume) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resumes[resume.ID] = resume
	return nil
}

// GetResume retrieves a resume by ID.
func (s *MemoryStore) GetResume(_ context.Context, id uuid.UUID) (*types.Resume, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	resume, ok := s.resumes[id]
	if !ok {
		return nil, &ErrResumeNotFound{ID: id}
	}
	return resume, nil
}

// DeleteResume removes a resume and its analyses.
func (s *MemoryStore) DeleteResume(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.resumes[id]; !ok {
		return &ErrResumeNotFound{ID: id}
	}
	delete(s.resumes, id)
	for analysisID, analysis := range s.analyses {
		if analysis.ResumeID == id {
			delete(s.analyses, analysisID)
		}
	}
	return nil
}

// SaveAnalysis stores an analysis record.
func (s *MemoryStore) SaveAnalysis(_ context.Context, analysis *types.Analysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses[analysis.ID] = analysis
	return nil
}

// GetAnalysis retrieves an analysis by ID.
func (s *MemoryStore) GetAnalysis(_ context.Context, id uuid.UUID) (*types.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	analysis, ok := s.analyses[id]
	if !ok {
		return nil, &ErrAnalysisNotFound{ID: id}
	}
	return analysis, nil
}

// ListAnalyses returns all analyses for a resume, in no particular order.
func (s *MemoryStore) ListAnalyses(_ context.Context, resumeID uuid.UUID) ([]*types.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var analyses []*types.Analysis
	for _, analysis := range s.analyses {
		if analysis.ResumeID == resumeID {
			analyses = append(analyses, analysis)
		}
	}
	return analyses, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}

// PurgeExpired removes resumes uploaded before now-maxAge, along with their
// analyses, and returns how many resumes were removed.
func (s *MemoryStore) PurgeExpired(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, resume := range s.resumes {
		if resume.UploadedAt.Before(cutoff) {
			delete(s.resumes, id)
			removed++
			for analysisID, analysis := range s.analyses {
				if analysis.ResumeID == id {
					delete(s.analyses, analysisID)
				}
			}
		}
	}
	return removed
}

// StartRetentionSweep purges expired uploads on the given interval until the
// context is canceled.
func (s *MemoryStore) StartRetentionSweep(ctx context.Context, interval, maxAge time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := s.PurgeExpired(maxAge); removed > 0 {
					log.Printf("store.RetentionSweep: purged %d expired resumes", removed)
				}
			}
		}
	}()
}
