// Package ats analyzes a parsed resume for applicant-tracking-system
// compatibility and produces typed suggestions. Like the other analysis
// collaborators it is consumed through an opaque contract: an empty
// suggestion list is a valid result, not an error state.
package ats

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Suggestion categories.
const (
	CategorySections   = "sections"
	CategoryContact    = "contact"
	CategoryKeywords   = "keywords"
	CategoryFormatting = "formatting"
)

// maxKeywordSuggestions caps how many missing job keywords are surfaced.
const maxKeywordSuggestions = 5

// minKeywordLength filters out short, low-signal tokens.
const minKeywordLength = 3

// requiredSections are the sections an ATS expects to find.
var requiredSections = []string{"experience", "education", "skills"}

// wordPattern tokenizes free text into candidate keywords.
var wordPattern = regexp.MustCompile(`[A-Za-z][A-Za-z0-9+#.\-]*`)

// stopwords are common words excluded from keyword matching.
var stopwords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "our": true, "will": true, "have": true, "that": true,
	"this": true, "from": true, "work": true, "your": true, "who": true,
	"can": true, "all": true, "not": true, "but": true, "about": true,
	"their": true, "they": true, "more": true, "its": true, "into": true,
	"has": true, "was": true, "were": true, "been": true, "being": true,
	"across": true, "within": true, "using": true, "able": true,
	"experience": true, "years": true, "team": true, "role": true,
	"requirements": true, "responsibilities": true, "candidate": true,
}

// Analyzer produces ATS suggestions from a parsed resume and an optional job
// description.
type Analyzer struct{}

// NewAnalyzer creates an ATS analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze inspects the resume structure and, when a job description is
// provided, compares its keywords against the resume text. The context is
// accepted for contract symmetry with the remote collaborators; the
// heuristic analysis itself is synchronous and local.
func (a *Analyzer) Analyze(_ context.Context, content *types.ResumeContent, jobDescription string) ([]types.ATSSuggestion, error) {
	suggestions := []types.ATSSuggestion{}

	suggestions = append(suggestions, a.sectionSuggestions(content)...)
	suggestions = append(suggestions, a.contactSuggestions(content)...)

	if strings.TrimSpace(jobDescription) != "" {
		suggestions = append(suggestions, a.keywordSuggestions(content, jobDescription)...)
	}

	log.Printf("ats.Analyze: produced %d suggestions", len(suggestions))
	return suggestions, nil
}

// sectionSuggestions flags required sections missing from the presence map
// and a missing or thin summary.
func (a *Analyzer) sectionSuggestions(content *types.ResumeContent) []types.ATSSuggestion {
	var suggestions []types.ATSSuggestion

	for _, section := range requiredSections {
		if info, ok := content.Sections[section]; ok && info.Found {
			continue
		}
		suggestions = append(suggestions, types.ATSSuggestion{
			Category:   CategorySections,
			Message:    fmt.Sprintf("No %s section was detected; ATS parsers rely on a clearly labeled %s header.", section, section),
			Importance: types.ImportanceHigh,
		})
	}

	if content.Summary == "" {
		suggestions = append(suggestions, types.ATSSuggestion{
			Category:   CategorySections,
			Message:    "No professional summary was detected; a short summary improves keyword coverage.",
			Importance: types.ImportanceMedium,
		})
	}

	return suggestions
}

// contactSuggestions flags missing contact fields that ATS platforms key on.
func (a *Analyzer) contactSuggestions(content *types.ResumeContent) []types.ATSSuggestion {
	var suggestions []types.ATSSuggestion

	contact := content.ContactInfo
	if contact == nil || contact.Email == "" {
		suggestions = append(suggestions, types.ATSSuggestion{
			Category:   CategoryContact,
			Message:    "No email address was detected near the top of the resume.",
			Importance: types.ImportanceHigh,
		})
	}
	if contact == nil || contact.Phone == "" {
		suggestions = append(suggestions, types.ATSSuggestion{
			Category:   CategoryContact,
			Message:    "No phone number was detected near the top of the resume.",
			Importance: types.ImportanceMedium,
		})
	}
	if contact != nil && contact.LinkedIn == "" {
		suggestions = append(suggestions, types.ATSSuggestion{
			Category:   CategoryContact,
			Message:    "Consider adding a LinkedIn profile URL.",
			Importance: types.ImportanceLow,
		})
	}

	return suggestions
}

// keywordSuggestions surfaces the most frequent job-description keywords that
// never appear in the resume text.
func (a *Analyzer) keywordSuggestions(content *types.ResumeContent, jobDescription string) []types.ATSSuggestion {
	resumeWords := tokenize(content.RawText)
	resumeSet := make(map[string]bool, len(resumeWords))
	for _, word := range resumeWords {
		resumeSet[word] = true
	}

	counts := make(map[string]int)
	var order []string
	for _, word := range tokenize(jobDescription) {
		if resumeSet[word] {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	// Most frequent first; ties keep first-seen order.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	var suggestions []types.ATSSuggestion
	for _, word := range order {
		if counts[word] < 2 {
			// A keyword mentioned once is weak signal.
			continue
		}
		importance := types.ImportanceLow
		if counts[word] >= 4 {
			importance = types.ImportanceMedium
		}
		suggestions = append(suggestions, types.ATSSuggestion{
			Category:       CategoryKeywords,
			Message:        fmt.Sprintf("The job description emphasizes %q but the resume never mentions it.", word),
			Importance:     importance,
			SuggestedValue: word,
		})
		if len(suggestions) == maxKeywordSuggestions {
			break
		}
	}
	return suggestions
}

// tokenize lowercases text and extracts candidate keywords, dropping
// stopwords and short tokens.
func tokenize(text string) []string {
	var words []string
	for _, word := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if len(word) < minKeywordLength || stopwords[word] {
			continue
		}
		words = append(words, word)
	}
	return words
}
