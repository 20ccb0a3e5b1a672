package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractContactInfo(t *testing.T) {
	contact := ExtractContactInfo("John Doe\nEmail: john.doe@example.com\nPhone: 555-123-4567")

	require.NotNil(t, contact)
	assert.Equal(t, "John Doe", contact.Name)
	assert.Equal(t, "john.doe@example.com", contact.Email)
	assert.Equal(t, "5551234567", contact.Phone)
}

func TestExtractContactInfo_LinkedIn(t *testing.T) {
	contact := ExtractContactInfo("Jane Smith\nlinkedin.com/in/jane-smith")

	require.NotNil(t, contact)
	assert.Equal(t, "https://linkedin.com/in/jane-smith", contact.LinkedIn)
}

func TestExtractContactInfo_InternationalPhone(t *testing.T) {
	contact := ExtractContactInfo("Jane Smith\n+1 (555) 123-4567")

	require.NotNil(t, contact)
	assert.Equal(t, "+15551234567", contact.Phone)
}

func TestExtractContactInfo_NothingFound(t *testing.T) {
	assert.Nil(t, ExtractContactInfo(""))
	assert.Nil(t, ExtractContactInfo("1234567\nMAILBOX 42\nuser@host"))
}

func TestExtractContactInfo_SearchWindowBounded(t *testing.T) {
	// An email past the contact search window is not picked up.
	text := strings.Repeat("filler line\n", MaxContactSearchLength/12+10) + "late@example.com"

	contact := ExtractContactInfo(text)

	if contact != nil {
		assert.Empty(t, contact.Email)
	}
}

func TestExtractName_SkipsHeadersAndAddresses(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain name", "Jane Smith\njane@example.com", "Jane Smith"},
		{"skips all-caps header", "CURRICULUM VITAE\nJane Smith", "Jane Smith"},
		{"skips email line", "jane@example.com\nJane Smith", "Jane Smith"},
		{"skips line with digits", "555-123-4567\nJane Smith", "Jane Smith"},
		{"no candidate", "JANE SMITH\n12 Main St Apt 4", ""},
		{"only first five lines scanned", "ONE\nTWO\nTHREE\nFOUR\nFIVE\nJane Smith", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractName(tt.text))
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "5551234567", normalizePhone("(555) 123-4567"))
	assert.Equal(t, "+445551234567", normalizePhone("+44 555.123.4567"))
}
