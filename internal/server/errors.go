package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/store"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var resumeNotFound *store.ErrResumeNotFound
	var analysisNotFound *store.ErrAnalysisNotFound
	var unsupportedType *parsing.UnsupportedTypeError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &resumeNotFound), errors.As(err, &analysisNotFound):
		return http.StatusNotFound
	case errors.As(err, &unsupportedType), errors.As(err, &validationErrs):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
