package parsing

import (
	"github.com/jonathan/resume-analyzer/internal/types"
)

// sectionStart is the located start of a recognized section.
type sectionStart struct {
	// headerPos is the byte offset of the matched header line.
	headerPos int
	// contentPos is the byte offset just past the header line.
	contentPos int
	// header is the alias that matched.
	header string
}

// locateSection finds the start of a section by trying each of the kind's
// header aliases in order until one matches. Aliases are matched
// case-insensitively at a line start, optionally followed by a colon or dash.
// A budget violation on one alias does not stop the scan.
func locateSection(text string, kind SectionKind) (sectionStart, bool) {
	for _, pattern := range sectionPatterns[kind] {
		result := collapseBudget(Search(pattern.start, text, MatchBudget), "section start: "+pattern.alias)
		if !result.Found() {
			continue
		}
		start := sectionStart{
			headerPos:  result.Start,
			contentPos: result.End,
			header:     pattern.alias,
		}
		// The start pattern may consume the newline before the header line.
		if start.headerPos < len(text) && text[start.headerPos] == '\n' {
			start.headerPos++
		}
		return start, true
	}
	return sectionStart{}, false
}

// sectionEnd determines where a section ends: the nearest following header
// belonging to any of the given other section kinds, searched inside a
// bounded forward window. If no such header appears in the window, the
// section runs to the end of the document. This is a deliberate
// approximation that keeps worst-case matching cost bounded.
func sectionEnd(text string, contentPos, window int, otherKinds []SectionKind) int {
	end := len(text)

	limit := contentPos + window
	if limit > len(text) {
		limit = len(text)
	}
	slice := text[contentPos:limit]

	for _, kind := range otherKinds {
		for _, pattern := range sectionPatterns[kind] {
			result := collapseBudget(Search(pattern.next, slice, MatchBudget), "section end: "+pattern.alias)
			if !result.Found() {
				continue
			}
			if candidate := contentPos + result.Start; candidate < end {
				end = candidate
			}
		}
	}
	return end
}

// IdentifySections scans the text for every recognized section kind and
// records whether it was found, where, and under which header alias. The
// resulting map is the parse-quality signal consumed by the ATS scorer.
// Sections are located independently; overlapping regions are tolerated.
func IdentifySections(text string) map[string]types.SectionInfo {
	sections := make(map[string]types.SectionInfo)

	for _, kind := range sectionKinds {
		for _, pattern := range sectionPatterns[kind] {
			result := collapseBudget(Search(pattern.mark, text, MatchBudget), "identify: "+pattern.alias)
			if !result.Found() {
				continue
			}
			header := pattern.alias
			if len(result.Groups) > 0 && result.Groups[0] != "" {
				header = result.Groups[0]
			}
			sections[string(kind)] = types.SectionInfo{
				Found:    true,
				Position: result.Start,
				Header:   header,
			}
			break
		}
	}
	return sections
}
