package parsing

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// skillsCategoryLabel is the fixed category for the extracted skill group.
// The extractor produces at most one group; the data model supports more.
const skillsCategoryLabel = "Technical Skills"

// ExtractSkills locates the skills section and splits the text immediately
// following the header on common list delimiters. Tokens below the minimum
// length are discarded and the list is capped at MaxSkillsCount. The result
// is wrapped in a single skill group; item order is preserved.
func ExtractSkills(text string) []types.SkillGroup {
	groups := []types.SkillGroup{}

	start, ok := locateSection(text, SectionSkills)
	if !ok {
		return groups
	}

	block := strings.TrimSpace(truncate(text[start.contentPos:], skillsWindow))
	if block == "" {
		return groups
	}

	var skills []string
	for _, token := range skillDelimiterPattern.Split(block, -1) {
		token = strings.TrimSpace(token)
		if token == "" || utf8.RuneCountInString(token) < MinSkillLength {
			continue
		}
		skills = append(skills, token)
		if len(skills) == MaxSkillsCount {
			break
		}
	}

	if len(skills) == 0 {
		return groups
	}
	groups = append(groups, types.SkillGroup{
		Category: skillsCategoryLabel,
		Skills:   skills,
	})
	return groups
}
