package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// GrammarIssue is a single issue reported by the grammar collaborator.
// Suggestions carries at most the top three replacements.
type GrammarIssue struct {
	Text        string   `json:"text"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
	Category    string   `json:"category,omitempty"`
	Line        int      `json:"line,omitempty"`
	Offset      int      `json:"offset,omitempty"`
}

// Importance levels for ATS suggestions.
const (
	ImportanceHigh   = "high"
	ImportanceMedium = "medium"
	ImportanceLow    = "low"
)

// ATSSuggestion is a single suggestion reported by the ATS collaborator.
type ATSSuggestion struct {
	Category       string `json:"category"`
	Message        string `json:"message"`
	Importance     string `json:"importance"`
	CurrentValue   string `json:"current_value,omitempty"`
	SuggestedValue string `json:"suggested_value,omitempty"`
}

// ContentSuggestion is an AI-generated improvement for a resume section.
type ContentSuggestion struct {
	Section       string `json:"section"`
	OriginalText  string `json:"original_text"`
	SuggestedText string `json:"suggested_text"`
	Explanation   string `json:"explanation"`
	Impact        string `json:"impact"`
}

// ScoreReport holds the four bounded scores for one analysis pass. Overall is
// always the weighted combination of the other three, never set independently.
type ScoreReport struct {
	Grammar float64 `json:"grammar_score"`
	Content float64 `json:"content_score"`
	ATS     float64 `json:"ats_score"`
	Overall float64 `json:"overall_score"`
}

// Analysis is a full analysis record for a resume. It is derived data: the
// same resume content and collaborator inputs always recompute the same report.
type Analysis struct {
	ID                 uuid.UUID           `json:"id"`
	ResumeID           uuid.UUID           `json:"resume_id"`
	AnalysisDate       time.Time           `json:"analysis_date"`
	Scores             ScoreReport         `json:"scores"`
	Rating             string              `json:"rating"`
	GrammarIssues      []GrammarIssue      `json:"grammar_issues"`
	ATSSuggestions     []ATSSuggestion     `json:"ats_suggestions"`
	ContentSuggestions []ContentSuggestion `json:"content_suggestions"`
}

// UploadResumeRequest is the request body for registering extracted resume text.
type UploadResumeRequest struct {
	Filename string `json:"filename" validate:"required,min=1"`
	DocType  string `json:"doc_type" validate:"required,oneof=pdf docx txt"`
	Text     string `json:"text" validate:"required,min=1"`
}

// AnalyzeRequest is the request body for a full analysis run.
type AnalyzeRequest struct {
	ResumeID       string `json:"resume_id" validate:"required,uuid4"`
	JobDescription string `json:"job_description,omitempty"`
	JobURL         string `json:"job_url,omitempty" validate:"omitempty,url"`
}

// Validate validates the UploadResumeRequest using the validator.
func (r *UploadResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
