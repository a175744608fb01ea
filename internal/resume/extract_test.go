package resume

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainText(t *testing.T) {
	text, err := ExtractText([]byte("  Jane Doe\n\tSoftware   Intern  "))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSoftware Intern", text)
}

func TestExtractText_Empty(t *testing.T) {
	text, err := ExtractText(nil)
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestExtractText_MalformedPDF(t *testing.T) {
	_, err := ExtractText([]byte("%PDF-1.7 not actually a pdf"))
	assert.Error(t, err)
}

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"collapses spaces", "a   b", "a b"},
		{"keeps newlines", "a\nb", "a\nb"},
		{"tabs become spaces", "a\tb", "a b"},
		{"strips control chars", "a\x00b", "ab"},
		{"trims ends", "  ab  ", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clean(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	short := "short resume"
	assert.Equal(t, short, Truncate(short))

	long := strings.Repeat("x", maxPromptChars+500)
	truncated := Truncate(long)
	assert.Len(t, truncated, maxPromptChars)
}
