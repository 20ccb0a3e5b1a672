package parsing

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// emailValidator performs structural email validation; deliverability is
// deliberately not checked.
var emailValidator = validator.New()

// ExtractContactInfo pulls contact details out of the top of the document.
// Only the first MaxContactSearchLength bytes are searched, on the premise
// that contact info is front-loaded. Returns nil when no usable field was
// found, so a ContactInfo is never all-empty.
func ExtractContactInfo(text string) *types.ContactInfo {
	searchText := text
	if len(searchText) > MaxContactSearchLength {
		searchText = truncate(searchText, MaxContactSearchLength)
	}

	contact := &types.ContactInfo{}

	if result := collapseBudget(Search(emailPattern, searchText, MatchBudget), "contact email"); result.Found() {
		email := searchText[result.Start:result.End]
		// Invalid emails are discarded, not surfaced.
		if err := emailValidator.Var(email, "required,email"); err == nil {
			contact.Email = email
		}
	}

	if result := collapseBudget(Search(phonePattern, searchText, MatchBudget), "contact phone"); result.Found() {
		contact.Phone = normalizePhone(searchText[result.Start:result.End])
	}

	if result := collapseBudget(Search(linkedinPattern, searchText, MatchBudget), "contact linkedin"); result.Found() {
		link := searchText[result.Start:result.End]
		if !strings.HasPrefix(link, "http") {
			link = "https://" + link
		}
		contact.LinkedIn = link
	}

	contact.Name = extractName(searchText)

	if contact.Email == "" && contact.Phone == "" && contact.Name == "" {
		return nil
	}
	return contact
}

// extractName applies the name heuristic: the first of the initial five
// non-empty lines that is short, not all-uppercase, and free of '@' and
// digits.
func extractName(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
		if len(lines) == 5 {
			break
		}
	}

	for _, line := range lines {
		if len(line) < 50 && !isAllUpper(line) && !strings.ContainsRune(line, '@') && !containsDigit(line) {
			return line
		}
	}
	return ""
}

// normalizePhone strips a phone number down to digits and a leading plus.
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isAllUpper reports whether s contains at least one letter and every letter
// is uppercase; section headers often look like this.
func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
