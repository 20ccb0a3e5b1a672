package parsing

// ExtractSummary locates the professional summary section and returns its
// text with internal whitespace collapsed. The section ends at the nearest
// following header of any recognized kind inside a bounded window. Returns
// the empty string when no summary section was found or the candidate text
// falls below the minimum length floor.
func ExtractSummary(text string) string {
	start, ok := locateSection(text, SectionSummary)
	if !ok {
		return ""
	}

	end := sectionEnd(text, start.contentPos, summaryEndWindow, sectionKinds)

	summary := collapseWhitespace(text[start.contentPos:end])
	if len(summary) < MinSummaryLength {
		return ""
	}
	return truncate(summary, MaxSummaryLength)
}
