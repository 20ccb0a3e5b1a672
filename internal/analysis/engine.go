// Package analysis combines the grammar, ATS, and content collaborators into
// scored analysis records.
package analysis

import (
	"context"
	"log"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/ats"
	"github.com/jonathan/resume-analyzer/internal/grammar"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Engine runs analysis passes. Grammar and Suggester may be nil when those
// collaborators are not configured; their concerns then score from empty
// results.
type Engine struct {
	Grammar   grammar.Checker
	ATS       *ats.Analyzer
	Suggester llm.Suggester
}

// Run fans the collaborators out concurrently, then combines their results
// into a scored analysis record. A collaborator failure is logged and
// degrades to an empty result for that concern; the other scores still
// compute from the parsed content.
func (e *Engine) Run(ctx context.Context, resume *types.Resume, jobDescription string) *types.Analysis {
	content := resume.Content

	issues := []types.GrammarIssue{}
	atsSuggestions := []types.ATSSuggestion{}
	contentSuggestions := []types.ContentSuggestion{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if e.Grammar == nil {
			return nil
		}
		result, err := e.Grammar.Check(gctx, content.RawText)
		if err != nil {
			log.Printf("analysis.Run: grammar check failed: %v", err)
			return nil
		}
		issues = result
		return nil
	})
	g.Go(func() error {
		result, err := e.ATS.Analyze(gctx, content, jobDescription)
		if err != nil {
			log.Printf("analysis.Run: ATS analysis failed: %v", err)
			return nil
		}
		atsSuggestions = result
		return nil
	})
	g.Go(func() error {
		if e.Suggester == nil {
			return nil
		}
		result, err := e.Suggester.Suggest(gctx, content)
		if err != nil {
			log.Printf("analysis.Run: content suggestions failed: %v", err)
			return nil
		}
		contentSuggestions = result
		return nil
	})
	// Failures degrade inside each goroutine, so Wait never reports one.
	_ = g.Wait()

	if issues == nil {
		issues = []types.GrammarIssue{}
	}
	if atsSuggestions == nil {
		atsSuggestions = []types.ATSSuggestion{}
	}
	if contentSuggestions == nil {
		contentSuggestions = []types.ContentSuggestion{}
	}

	grammarScore := scoring.GrammarScore(utf8.RuneCountInString(content.RawText), issues)
	contentScore := scoring.ContentScore(content)
	atsScore := scoring.ATSScore(content, atsSuggestions)
	overall := scoring.OverallScore(grammarScore, atsScore, contentScore)

	return &types.Analysis{
		ID:           uuid.New(),
		ResumeID:     resume.ID,
		AnalysisDate: time.Now().UTC(),
		Scores: types.ScoreReport{
			Grammar: grammarScore,
			Content: contentScore,
			ATS:     atsScore,
			Overall: overall,
		},
		Rating:             scoring.Rating(overall),
		GrammarIssues:      issues,
		ATSSuggestions:     atsSuggestions,
		ContentSuggestions: contentSuggestions,
	}
}

// Close releases the collaborators.
func (e *Engine) Close() error {
	if e.Grammar != nil {
		if err := e.Grammar.Close(); err != nil {
			log.Printf("analysis.Close: error closing grammar checker: %v", err)
		}
	}
	if e.Suggester != nil {
		if err := e.Suggester.Close(); err != nil {
			log.Printf("analysis.Close: error closing suggester: %v", err)
		}
	}
	return nil
}
