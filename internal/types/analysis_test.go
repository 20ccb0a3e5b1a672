package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUploadResumeRequestValidate(t *testing.T) {
	valid := &UploadResumeRequest{Filename: "resume.pdf", DocType: "pdf", Text: "some text"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		req  UploadResumeRequest
	}{
		{"missing filename", UploadResumeRequest{DocType: "pdf", Text: "x"}},
		{"missing text", UploadResumeRequest{Filename: "r.pdf", DocType: "pdf"}},
		{"unsupported doc type", UploadResumeRequest{Filename: "r.rtf", DocType: "rtf", Text: "x"}},
		{"missing doc type", UploadResumeRequest{Filename: "r.pdf", Text: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.req.Validate())
		})
	}
}

func TestAnalyzeRequestValidate(t *testing.T) {
	id := uuid.New().String()

	assert.NoError(t, (&AnalyzeRequest{ResumeID: id}).Validate())
	assert.NoError(t, (&AnalyzeRequest{ResumeID: id, JobDescription: "Go role"}).Validate())
	assert.NoError(t, (&AnalyzeRequest{ResumeID: id, JobURL: "https://example.com/jobs/1"}).Validate())

	assert.Error(t, (&AnalyzeRequest{}).Validate())
	assert.Error(t, (&AnalyzeRequest{ResumeID: "not-a-uuid"}).Validate())
	assert.Error(t, (&AnalyzeRequest{ResumeID: id, JobURL: "not a url"}).Validate())
}
