package parsing

import (
	"log"
	"regexp"
	"time"
)

// Outcome is the result classification of a single bounded match attempt.
type Outcome int

// Match attempt outcomes.
const (
	// OutcomeMatched means the pattern matched within budget.
	OutcomeMatched Outcome = iota
	// OutcomeNoMatch means the pattern completed without matching.
	OutcomeNoMatch
	// OutcomeBudgetExceeded means the attempt was abandoned after its
	// wall-clock budget elapsed. Callers must collapse this to a miss.
	OutcomeBudgetExceeded
)

// MatchResult holds the outcome of a bounded match attempt. Start and End are
// byte offsets into the searched text; Groups holds captured submatches.
// Offsets and groups are only meaningful when Outcome is OutcomeMatched.
type MatchResult struct {
	Outcome Outcome
	Start   int
	End     int
	Groups  []string
}

// Found reports whether the attempt produced a match.
func (r MatchResult) Found() bool {
	return r.Outcome == OutcomeMatched
}

// Search runs a single pattern-match attempt against text with an enforced
// wall-clock budget. A non-positive budget is an immediate budget violation.
//
// Go's regexp engine runs in linear time, so an attempt cannot hang on
// backtracking; the budget guards against pathologically large inputs and
// keeps the contract uniform for every matcher the extractors use.
func Search(re *regexp.Regexp, text string, budget time.Duration) MatchResult {
	if budget <= 0 {
		return MatchResult{Outcome: OutcomeBudgetExceeded}
	}

	done := make(chan []int, 1)
	go func() {
		done <- re.FindStringSubmatchIndex(text)
	}()

	timer := time.NewTimer(budget)
	defer timer.Stop()

	select {
	case loc := <-done:
		if loc == nil {
			return MatchResult{Outcome: OutcomeNoMatch}
		}
		result := MatchResult{Outcome: OutcomeMatched, Start: loc[0], End: loc[1]}
		for i := 2; i+1 < len(loc); i += 2 {
			if loc[i] < 0 {
				result.Groups = append(result.Groups, "")
			} else {
				result.Groups = append(result.Groups, text[loc[i]:loc[i+1]])
			}
		}
		return result
	case <-timer.C:
		return MatchResult{Outcome: OutcomeBudgetExceeded}
	}
}

// SearchAll finds all matches of re in text under a single shared budget and
// returns the matched strings. The outcome distinguishes an empty result from
// an abandoned attempt.
func SearchAll(re *regexp.Regexp, text string, budget time.Duration) ([]string, Outcome) {
	if budget <= 0 {
		return nil, OutcomeBudgetExceeded
	}

	done := make(chan []string, 1)
	go func() {
		done <- re.FindAllString(text, -1)
	}()

	timer := time.NewTimer(budget)
	defer timer.Stop()

	select {
	case matches := <-done:
		if len(matches) == 0 {
			return nil, OutcomeNoMatch
		}
		return matches, OutcomeMatched
	case <-timer.C:
		return nil, OutcomeBudgetExceeded
	}
}

// collapseBudget converts a budget violation into an ordinary miss. Every
// caller routes match results through this collapse so that an abandoned
// attempt is indistinguishable from "no match" downstream; the violation is
// logged for diagnostics only.
func collapseBudget(result MatchResult, context string) MatchResult {
	if result.Outcome == OutcomeBudgetExceeded {
		log.Printf("parsing: match budget exceeded (%s), treating as no match", context)
		return MatchResult{Outcome: OutcomeNoMatch}
	}
	return result
}
