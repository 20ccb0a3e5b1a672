package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func issues(n int) []types.GrammarIssue {
	out := make([]types.GrammarIssue, n)
	for i := range out {
		out[i] = types.GrammarIssue{Text: "teh", Message: "Possible spelling mistake"}
	}
	return out
}

func fullContent() *types.ResumeContent {
	skills := make([]string, 15)
	for i := range skills {
		skills[i] = "Skill" + strings.Repeat("x", i+1)
	}
	return &types.ResumeContent{
		ContactInfo: &types.ContactInfo{
			Name:     "Jane Smith",
			Email:    "jane@example.com",
			Phone:    "5551234567",
			LinkedIn: "https://linkedin.com/in/jane",
		},
		Summary: strings.Repeat("ab", 110),
		Experience: []types.Experience{
			{Company: "A", Position: "Engineer"},
			{Company: "B", Position: "Engineer"},
			{Company: "C", Position: "Engineer"},
		},
		Education: []types.Education{{Institution: "State University"}},
		Skills:    []types.SkillGroup{{Category: "Technical Skills", Skills: skills}},
		Sections: map[string]types.SectionInfo{
			"summary":    {Found: true},
			"experience": {Found: true},
			"education":  {Found: true},
			"skills":     {Found: true},
		},
	}
}

func TestGrammarScore(t *testing.T) {
	tests := []struct {
		name       string
		textLength int
		numIssues  int
		want       float64
	}{
		{"clean text", 1000, 0, 100.0},
		{"one issue", 1000, 1, 98.0},
		{"ten issues", 1000, 10, 80.0},
		{"floor reached", 1000, 30, 40.0},
		{"floor holds below", 1000, 500, 40.0},
		{"empty text scores zero", 0, 0, 0.0},
		{"empty text with issues", 0, 5, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GrammarScore(tt.textLength, issues(tt.numIssues)))
		})
	}
}

func TestContentScore_CompleteResume(t *testing.T) {
	score := ContentScore(fullContent())

	// All five sub-scores maxed.
	assert.Equal(t, 100.0, score)
}

func TestContentScore_EmptyResume(t *testing.T) {
	content := &types.ResumeContent{
		Experience: []types.Experience{},
		Education:  []types.Education{},
		Skills:     []types.SkillGroup{},
		Sections:   map[string]types.SectionInfo{},
	}

	assert.Equal(t, 0.0, ContentScore(content))
}

func TestContentScore_PartialCredit(t *testing.T) {
	content := fullContent()
	content.Experience = content.Experience[:1] // 1 of 3 ideal entries
	content.Skills = []types.SkillGroup{{Category: "Technical Skills", Skills: []string{"Go", "SQL", "AWS"}}}

	score := ContentScore(content)

	// 20 contact + 15 summary + 10 experience + 20 education + 3 skills.
	assert.Equal(t, 68.0, score)
}

func TestContentScore_ShortSummaryNoCredit(t *testing.T) {
	content := fullContent()
	content.Summary = "too short"

	assert.Equal(t, 85.0, ContentScore(content))
}

func TestATSScore_ImportancePenalties(t *testing.T) {
	content := fullContent()
	suggestions := []types.ATSSuggestion{
		{Importance: types.ImportanceHigh},
		{Importance: types.ImportanceMedium},
		{Importance: types.ImportanceLow},
	}

	assert.Equal(t, 83.0, ATSScore(content, suggestions))
}

func TestATSScore_MissingSections(t *testing.T) {
	content := &types.ResumeContent{Sections: map[string]types.SectionInfo{}}

	// All three required sections missing, no suggestions.
	assert.Equal(t, 55.0, ATSScore(content, nil))
}

func TestATSScore_ClampedAtZero(t *testing.T) {
	content := &types.ResumeContent{Sections: map[string]types.SectionInfo{}}
	suggestions := make([]types.ATSSuggestion, 10)
	for i := range suggestions {
		suggestions[i] = types.ATSSuggestion{Importance: types.ImportanceHigh}
	}

	assert.Equal(t, 0.0, ATSScore(content, suggestions))
}

func TestATSScore_PerfectResume(t *testing.T) {
	assert.Equal(t, 100.0, ATSScore(fullContent(), nil))
}

func TestOverallScore(t *testing.T) {
	assert.Equal(t, 100.0, OverallScore(100.0, 100.0, 100.0))
	assert.Equal(t, 0.0, OverallScore(0.0, 0.0, 0.0))
	// 90*0.30 + 80*0.35 + 70*0.35 = 79.5
	assert.Equal(t, 79.5, OverallScore(90.0, 80.0, 70.0))
}

func TestOverallScore_RoundsToOneDecimal(t *testing.T) {
	score := OverallScore(98.0, 83.3, 67.7)
	assert.Equal(t, score, round1(score))
}

func TestRating(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{95.0, "Excellent"},
		{90.0, "Excellent"},
		{89.9, "Very Good"},
		{80.0, "Very Good"},
		{75.0, "Good"},
		{65.0, "Fair"},
		{55.0, "Needs Improvement"},
		{49.9, "Poor"},
		{0.0, "Poor"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Rating(tt.score), "score %.1f", tt.score)
	}
}
