// Package scoring computes the composite quality scores for a parsed resume.
// All score functions are pure and total: they never fail for well-typed
// input, and collaborator unavailability simply means an empty issue or
// suggestion list.
package scoring

import (
	"log"
	"math"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Weights for the overall score. These must sum to 1.0; that is a
// programming-time invariant, not a runtime check.
const (
	GrammarWeight = 0.30
	ATSWeight     = 0.35
	ContentWeight = 0.35
)

// Grammar scoring parameters.
const (
	GrammarPenaltyPerIssue = 2.0
	MinGrammarScore        = 40.0
)

// Content scoring parameters.
const (
	MinSummaryLength       = 50
	IdealSummaryLength     = 200
	IdealExperienceEntries = 3
	IdealSkills            = 15
)

// Content sub-score point allocations.
const (
	contactPointsPerField = 5.0
	maxSummaryPoints      = 15.0
	maxExperiencePoints   = 30.0
	educationPoints       = 20.0
	maxSkillsPoints       = 15.0
)

// ATS penalty parameters.
const (
	highPenalty           = 10.0
	mediumPenalty         = 5.0
	lowPenalty            = 2.0
	missingSectionPenalty = 15.0
)

// requiredSections are the sections whose absence from the presence map is
// penalized by the ATS score.
var requiredSections = []string{"experience", "education", "skills"}

// GrammarScore computes the grammar score from the checked text length and
// the issues the grammar collaborator reported. Each issue costs a fixed
// penalty down to a floor. Empty input scores zero unconditionally: an empty
// document is not "perfect".
func GrammarScore(textLength int, issues []types.GrammarIssue) float64 {
	if textLength == 0 {
		return 0.0
	}

	score := 100.0 - float64(len(issues))*GrammarPenaltyPerIssue
	score = math.Max(score, MinGrammarScore)

	log.Printf("scoring.GrammarScore: %.1f (%d issues, %d chars)", score, len(issues), textLength)
	return round1(score)
}

// ContentScore measures resume completeness: five independently capped
// sub-scores for contact info, summary, experience, education and skills,
// summed and capped at 100.
func ContentScore(content *types.ResumeContent) float64 {
	contactPoints := 0.0
	if content.ContactInfo != nil {
		if content.ContactInfo.Name != "" {
			contactPoints += contactPointsPerField
		}
		if content.ContactInfo.Email != "" {
			contactPoints += contactPointsPerField
		}
		if content.ContactInfo.Phone != "" {
			contactPoints += contactPointsPerField
		}
		if content.ContactInfo.LinkedIn != "" {
			contactPoints += contactPointsPerField
		}
	}

	summaryPoints := 0.0
	if summaryLen := len(content.Summary); summaryLen >= MinSummaryLength {
		if summaryLen >= IdealSummaryLength {
			summaryPoints = maxSummaryPoints
		} else {
			summaryPoints = maxSummaryPoints * float64(summaryLen) / IdealSummaryLength
		}
	}

	experiencePoints := 0.0
	if numExperience := len(content.Experience); numExperience >= 1 {
		if numExperience >= IdealExperienceEntries {
			experiencePoints = maxExperiencePoints
		} else {
			experiencePoints = maxExperiencePoints * float64(numExperience) / IdealExperienceEntries
		}
	}

	eduPoints := 0.0
	if len(content.Education) >= 1 {
		eduPoints = educationPoints
	}

	skillsPoints := 0.0
	if totalSkills := content.TotalSkills(); totalSkills >= 1 {
		if totalSkills >= IdealSkills {
			skillsPoints = maxSkillsPoints
		} else {
			skillsPoints = maxSkillsPoints * float64(totalSkills) / IdealSkills
		}
	}

	score := contactPoints + summaryPoints + experiencePoints + eduPoints + skillsPoints
	score = math.Min(score, 100.0)

	log.Printf("scoring.ContentScore: %.1f (contact=%.1f summary=%.1f experience=%.1f education=%.1f skills=%.1f)",
		score, contactPoints, summaryPoints, experiencePoints, eduPoints, skillsPoints)
	return round1(score)
}

// ATSScore measures applicant-tracking-system compatibility: suggestion
// penalties weighted by importance, plus a flat penalty per required section
// missing from the section-presence map, clamped to [0,100].
func ATSScore(content *types.ResumeContent, suggestions []types.ATSSuggestion) float64 {
	score := 100.0

	for _, suggestion := range suggestions {
		switch suggestion.Importance {
		case types.ImportanceHigh:
			score -= highPenalty
		case types.ImportanceMedium:
			score -= mediumPenalty
		case types.ImportanceLow:
			score -= lowPenalty
		}
	}

	missing := 0
	for _, section := range requiredSections {
		if _, ok := content.Sections[section]; !ok {
			missing++
		}
	}
	score -= float64(missing) * missingSectionPenalty

	score = math.Max(0.0, math.Min(100.0, score))

	log.Printf("scoring.ATSScore: %.1f (%d suggestions, %d missing sections)", score, len(suggestions), missing)
	return round1(score)
}

// OverallScore combines the three component scores by their fixed weights.
func OverallScore(grammarScore, atsScore, contentScore float64) float64 {
	overall := grammarScore*GrammarWeight + atsScore*ATSWeight + contentScore*ContentWeight
	return round1(overall)
}

// Rating maps a score to its qualitative label.
func Rating(score float64) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 80:
		return "Very Good"
	case score >= 70:
		return "Good"
	case score >= 60:
		return "Fair"
	case score >= 50:
		return "Needs Improvement"
	default:
		return "Poor"
	}
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
