// Package parsing implements the document structuring engine: it turns raw
// resume text, extracted upstream from PDF or DOCX files, into a structured
// ResumeContent model.
//
// The engine is heuristic. Section boundaries are detected by matching known
// header aliases under a per-attempt wall-clock budget, and each entity
// extractor degrades independently: a failure in one leaves its field absent
// without affecting the others. Parsing never fails outright for readable
// input; an unreadable document yields a placeholder model.
//
// Known limitation: the experience extractor captures the whole experience
// section as a single entry and does not split individual jobs, and the
// skills extractor produces at most one skill group.
package parsing

import (
	"log"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// UnreadableDocumentText is the placeholder raw text for documents that
// yielded no usable text at all. This is documented behavior for unreadable
// documents, not an error channel.
const UnreadableDocumentText = "Unable to extract text from document"

// DegradedParseKey marks a partial parsing failure in the section map.
const DegradedParseKey = "error"

// Supported document categories for Parse.
const (
	DocTypePDF  = "pdf"
	DocTypeDOCX = "docx"
	DocTypeText = "txt"
)

// Parse is the top-level entry point. Text extraction happens upstream, so
// all recognized document categories share the same text pipeline; an
// unrecognized category is the single fatal, caller-visible error.
func Parse(rawText, docType string) (*types.ResumeContent, error) {
	switch docType {
	case DocTypePDF, DocTypeDOCX, DocTypeText:
		return ParseText(rawText), nil
	default:
		return nil, &UnsupportedTypeError{DocType: docType}
	}
}

// ParseText builds a structured resume model from raw extracted text. It
// always returns a document: extractor failures are recovered at each
// extractor's boundary, and a failure of the overall assembly is recorded as
// a degraded-parse marker in the section map rather than propagated.
func ParseText(rawText string) *types.ResumeContent {
	if strings.TrimSpace(rawText) == "" {
		log.Printf("parsing.ParseText: no usable text extracted")
		return emptyContent(UnreadableDocumentText)
	}

	sanitized := SanitizeText(rawText)
	if strings.TrimSpace(sanitized) == "" {
		log.Printf("parsing.ParseText: text empty after sanitization")
		return emptyContent(UnreadableDocumentText)
	}

	content := emptyContent(sanitized)

	ok := true
	ok = runExtractor("contact", func() { content.ContactInfo = ExtractContactInfo(sanitized) }) && ok
	ok = runExtractor("summary", func() { content.Summary = ExtractSummary(sanitized) }) && ok
	ok = runExtractor("experience", func() { content.Experience = ExtractExperience(sanitized) }) && ok
	ok = runExtractor("education", func() { content.Education = ExtractEducation(sanitized) }) && ok
	ok = runExtractor("skills", func() { content.Skills = ExtractSkills(sanitized) }) && ok
	ok = runExtractor("sections", func() { content.Sections = IdentifySections(sanitized) }) && ok

	if !ok {
		if content.Sections == nil {
			content.Sections = make(map[string]types.SectionInfo)
		}
		content.Sections[DegradedParseKey] = types.SectionInfo{Header: "partial parsing failure"}
	}

	log.Printf("parsing.ParseText: parsed document: %d experience entries, %d education entries, %d skill groups",
		len(content.Experience), len(content.Education), len(content.Skills))
	return content
}

// runExtractor runs one extractor, converting a panic into "this field is
// absent". The failure is logged for diagnostics only; it never reaches the
// caller.
func runExtractor(name string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("parsing.ParseText: %s extractor failed: %v", name, r)
			ok = false
		}
	}()
	fn()
	return true
}

// emptyContent returns a ResumeContent with empty collections and the given
// raw text.
func emptyContent(rawText string) *types.ResumeContent {
	return &types.ResumeContent{
		Experience: []types.Experience{},
		Education:  []types.Education{},
		Skills:     []types.SkillGroup{},
		RawText:    rawText,
		Sections:   make(map[string]types.SectionInfo),
	}
}
