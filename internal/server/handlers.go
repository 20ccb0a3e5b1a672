package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// GrammarCheckRequest is the request body for /analyze/grammar.
type GrammarCheckRequest struct {
	Text string `json:"text"`
}

// GrammarCheckResponse is the response for /analyze/grammar.
type GrammarCheckResponse struct {
	GrammarScore float64              `json:"grammar_score"`
	Issues       []types.GrammarIssue `json:"issues"`
}

// ATSCheckResponse is the response for /analyze/ats.
type ATSCheckResponse struct {
	ATSScore    float64               `json:"ats_score"`
	Suggestions []types.ATSSuggestion `json:"suggestions"`
}

// handleUploadResume registers extracted resume text and parses it into
// structured content.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	var req types.UploadResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	content, err := parsing.Parse(req.Text, req.DocType)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resume := &types.Resume{
		ID:         uuid.New(),
		Filename:   req.Filename,
		DocType:    req.DocType,
		UploadedAt: time.Now().UTC(),
		Content:    content,
	}
	if err := s.store.SaveResume(r.Context(), resume); err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to save resume: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, resume)
}

// handleGetResume returns a stored resume with its parsed content.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume id")
		return
	}

	resume, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}

// handleDeleteResume removes a resume and its analyses.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume id")
		return
	}

	if err := s.store.DeleteResume(r.Context(), id); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleListAnalyses returns all analyses recorded for a resume.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume id")
		return
	}

	analyses, err := s.store.ListAnalyses(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, analyses)
}

// handleGetAnalysis returns a single analysis record.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis id")
		return
	}

	analysis, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleAnalyze runs a full analysis pass over a stored resume and records
// the result.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	resumeID, err := uuid.Parse(req.ResumeID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume_id")
		return
	}

	resume, err := s.store.GetResume(r.Context(), resumeID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	analysis := s.engine.Run(r.Context(), resume, s.resolveJobDescription(r.Context(), &req))
	if err := s.store.SaveAnalysis(r.Context(), analysis); err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to save analysis: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, analysis)
}

// handleGrammarCheck runs the grammar collaborator over raw text without
// storing anything.
func (s *Server) handleGrammarCheck(w http.ResponseWriter, r *http.Request) {
	var req GrammarCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Text == "" {
		s.errorResponse(w, http.StatusBadRequest, "text is required")
		return
	}
	if s.engine.Grammar == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Grammar checking is not configured")
		return
	}

	text := parsing.SanitizeText(req.Text)
	issues, err := s.engine.Grammar.Check(r.Context(), text)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Grammar check failed: "+err.Error())
		return
	}
	if issues == nil {
		issues = []types.GrammarIssue{}
	}

	s.jsonResponse(w, http.StatusOK, GrammarCheckResponse{
		GrammarScore: scoring.GrammarScore(utf8.RuneCountInString(text), issues),
		Issues:       issues,
	})
}

// handleATSCheck runs the ATS collaborator over a stored resume without
// recording a full analysis.
func (s *Server) handleATSCheck(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	resumeID, err := uuid.Parse(req.ResumeID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume_id")
		return
	}

	resume, err := s.store.GetResume(r.Context(), resumeID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	suggestions, err := s.engine.ATS.Analyze(r.Context(), resume.Content, s.resolveJobDescription(r.Context(), &req))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "ATS analysis failed: "+err.Error())
		return
	}
	if suggestions == nil {
		suggestions = []types.ATSSuggestion{}
	}

	s.jsonResponse(w, http.StatusOK, ATSCheckResponse{
		ATSScore:    scoring.ATSScore(resume.Content, suggestions),
		Suggestions: suggestions,
	})
}

// resolveJobDescription returns the job description for an analysis request,
// fetching from the job URL when no inline text is given. Fetch failures
// degrade to an empty description rather than failing the analysis.
func (s *Server) resolveJobDescription(ctx context.Context, req *types.AnalyzeRequest) string {
	if req.JobDescription != "" {
		return req.JobDescription
	}
	if req.JobURL == "" {
		return ""
	}

	text, err := fetch.JobDescription(ctx, req.JobURL, s.fetchOpts)
	if err != nil {
		log.Printf("server.resolveJobDescription: fetch failed for %s: %v", req.JobURL, err)
		return ""
	}
	return text
}
