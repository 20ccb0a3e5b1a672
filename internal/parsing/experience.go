package parsing

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Placeholder fields for the single-block experience entry. The extractor
// captures the whole experience section as one entry rather than splitting
// individual jobs; see the package documentation for this limitation.
const (
	experiencePlaceholderCompany  = "Multiple positions listed"
	experiencePlaceholderPosition = "See description"
)

// ExtractExperience locates the experience section and captures it as a
// single entry whose description holds the whole block, truncated to
// MaxExperienceDescriptionLength. The entry count cap is enforced even
// though only one entry is currently ever produced.
func ExtractExperience(text string) []types.Experience {
	// Initialized so the no-section path still yields an empty list, never nil.
	experiences := []types.Experience{}

	start, ok := locateSection(text, SectionExperience)
	if !ok {
		return experiences
	}

	end := sectionEnd(text, start.contentPos, experienceEndWindow,
		[]SectionKind{SectionEducation, SectionSkills})

	block := strings.TrimSpace(text[start.contentPos:end])
	if block == "" {
		return experiences
	}

	experiences = append(experiences, types.Experience{
		Company:     experiencePlaceholderCompany,
		Position:    experiencePlaceholderPosition,
		Description: truncate(block, MaxExperienceDescriptionLength),
		Bullets:     []string{},
	})

	if len(experiences) > MaxExperienceEntries {
		experiences = experiences[:MaxExperienceEntries]
	}
	return experiences
}
