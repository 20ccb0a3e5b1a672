package parsing

import (
	"regexp"
	"time"
)

// Text extraction limits.
const (
	// MaxRawTextLength caps sanitized text to prevent memory exhaustion.
	MaxRawTextLength = 500000
	// MaxContactSearchLength limits contact extraction to the top of the
	// document, where contact info is front-loaded.
	MaxContactSearchLength = 10000
)

// Summary constraints.
const (
	MinSummaryLength = 50
	MaxSummaryLength = 1000
)

// Experience constraints.
const (
	MaxExperienceDescriptionLength = 500
	MaxExperienceEntries           = 20
)

// Education constraints.
const (
	MaxEducationInstitutionLength = 200
	MaxEducationEntries           = 10
)

// Skills constraints.
const (
	MaxSkillsCount = 20
	MinSkillLength = 2
)

// MatchBudget is the wall-clock budget for a single pattern-match attempt.
// Untrusted free text plus pattern matching is a denial-of-service vector,
// so every attempt is time-boxed independently.
const MatchBudget = 2 * time.Second

// Forward search windows used when looking for the header that ends a
// section. Small windows keep amortized matching cost low; a section with no
// following header inside its window runs to the end of the document.
const (
	summaryEndWindow    = 2000
	experienceEndWindow = 5000
	educationEndWindow  = 3000
	skillsWindow        = 1000
)

// SectionKind identifies one of the recognized logical resume sections.
type SectionKind string

// Recognized section kinds.
const (
	SectionSummary    SectionKind = "summary"
	SectionExperience SectionKind = "experience"
	SectionEducation  SectionKind = "education"
	SectionSkills     SectionKind = "skills"
)

// sectionKinds lists all recognized kinds in scan order.
var sectionKinds = []SectionKind{SectionSummary, SectionExperience, SectionEducation, SectionSkills}

// sectionHeaderAliases maps each section kind to its accepted header spellings.
var sectionHeaderAliases = map[SectionKind][]string{
	SectionExperience: {
		"experience",
		"work experience",
		"employment",
		"work history",
		"professional experience",
		"employment history",
	},
	SectionEducation: {
		"education",
		"academic background",
		"academic history",
		"educational background",
	},
	SectionSkills: {
		"skills",
		"technical skills",
		"core competencies",
		"competencies",
		"technical competencies",
	},
	SectionSummary: {
		"summary",
		"professional summary",
		"profile",
		"objective",
		"about me",
		"career objective",
	},
}

// headerPattern bundles the compiled patterns for a single header alias.
type headerPattern struct {
	alias string
	// start matches the alias as a section header at a line start, followed
	// by an optional colon or dash and a line break.
	start *regexp.Regexp
	// next matches the alias as a following header, anchored to a preceding
	// newline; used when searching for the end of an earlier section.
	next *regexp.Regexp
	// mark matches the alias as a header without requiring a trailing line
	// break; used for the section-presence map.
	mark *regexp.Regexp
}

// sectionPatterns holds the precompiled header patterns per section kind.
var sectionPatterns = map[SectionKind][]headerPattern{}

func init() {
	for kind, aliases := range sectionHeaderAliases {
		patterns := make([]headerPattern, 0, len(aliases))
		for _, alias := range aliases {
			quoted := regexp.QuoteMeta(alias)
			patterns = append(patterns, headerPattern{
				alias: alias,
				start: regexp.MustCompile(`(?i)(?:^|\n)(` + quoted + `)[ \t]*[:\-]?[ \t]*\n`),
				next:  regexp.MustCompile(`(?i)\n(` + quoted + `)[ \t]*[:\-]?[ \t]*\n`),
				mark:  regexp.MustCompile(`(?i)(?:^|\n)(` + quoted + `)[ \t]*[:\-]?`),
			})
		}
		sectionPatterns[kind] = patterns
	}
}

// Contact extraction patterns.
var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[\w\-]+`)
)

// degreePatterns pick out individual education entries inside the education
// section: degree abbreviations first, then institution tokens.
var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(Bachelor|Master|PhD|Ph\.D\.|B\.S\.|M\.S\.|B\.A\.|M\.A\.|MBA|BS|MS|BA|MA)[^\n]{0,100}`),
	regexp.MustCompile(`(?i)(University|College|Institute|School)[^\n]{0,100}`),
}

// skillDelimiterPattern splits a skills block on common list delimiters.
var skillDelimiterPattern = regexp.MustCompile(`[,;•·\n]+`)
