// Package grammar provides the grammar-checking collaborator interface and a
// LanguageTool-backed implementation. The engine treats grammar checking as
// an opaque service: an unavailable checker yields an empty issue list at the
// orchestration boundary, which the scorer handles as "no signal".
package grammar

import (
	"context"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Checker checks text for grammar issues. Implementations are constructed
// and disposed explicitly by the caller; there is no ambient global instance.
type Checker interface {
	// Check returns the issues found in text, capped by the implementation.
	Check(ctx context.Context, text string) ([]types.GrammarIssue, error)
	// Close releases any resources held by the checker.
	Close() error
}
