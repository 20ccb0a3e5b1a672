package parsing

import (
	"log"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// ExtractEducation locates the education section and splits it into entries
// using degree and institution patterns. When the section is non-empty but no
// pattern matches, a single generic entry carries the whole block. Entry
// count and institution length are capped.
func ExtractEducation(text string) []types.Education {
	education := []types.Education{}

	start, ok := locateSection(text, SectionEducation)
	if !ok {
		return education
	}

	end := sectionEnd(text, start.contentPos, educationEndWindow,
		[]SectionKind{SectionSkills})

	block := strings.TrimSpace(text[start.contentPos:end])
	if block == "" {
		return education
	}

	for _, pattern := range degreePatterns {
		matches, outcome := SearchAll(pattern, block, MatchBudget)
		if outcome == OutcomeBudgetExceeded {
			// A budget violation is an ordinary miss for this pattern.
			log.Printf("parsing: match budget exceeded (education pattern), treating as no match")
			continue
		}
		for _, match := range matches {
			institution := truncate(strings.TrimSpace(match), MaxEducationInstitutionLength)
			education = append(education, types.Education{
				Institution:  institution,
				Achievements: []string{},
			})
			if len(education) >= MaxEducationEntries {
				return education
			}
		}
	}

	if len(education) == 0 {
		education = append(education, types.Education{
			Institution:  truncate(block, MaxEducationInstitutionLength),
			Achievements: []string{},
		})
	}
	return education
}
