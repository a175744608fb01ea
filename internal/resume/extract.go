// Package resume extracts plain text from uploaded resumes so it can be
// embedded in the analysis prompt. PDF resumes are parsed; anything else is
// treated as plain text.
package resume

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// maxPromptChars caps resume text embedded in the prompt. Longer resumes
// are truncated rather than rejected.
const maxPromptChars = 12000

// ExtractText returns cleaned, truncated resume text from an uploaded file.
// The format is sniffed from the content, not the filename.
func ExtractText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	var text string
	if bytes.HasPrefix(data, []byte("%PDF-")) {
		extracted, err := extractPDFText(data)
		if err != nil {
			return "", err
		}
		text = extracted
	} else {
		text = string(data)
	}

	return Truncate(Clean(text)), nil
}

// extractPDFText pulls plain text from every page of a PDF document.
func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages; a partial resume still beats none.
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// Clean collapses runs of whitespace and drops non-printable characters.
func Clean(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	lastSpace := false
	for _, r := range text {
		switch {
		case r == '\n':
			sb.WriteRune('\n')
			// Absorb indentation following a line break.
			lastSpace = true
		case unicode.IsSpace(r):
			if !lastSpace {
				sb.WriteRune(' ')
			}
			lastSpace = true
		case unicode.IsPrint(r):
			sb.WriteRune(r)
			lastSpace = false
		}
	}
	return strings.TrimSpace(sb.String())
}

// Truncate trims text to the prompt budget on a rune boundary.
func Truncate(text string) string {
	if len(text) <= maxPromptChars {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxPromptChars {
		return text
	}
	return string(runes[:maxPromptChars])
}
