// Package export produces the downloadable artifacts of an analysis: the
// full pretty-printed JSON report and one PDF per career path.
package export

import (
	"strings"
	"time"
)

// maxFilenameLen bounds sanitized career-path filenames.
const maxFilenameLen = 100

// jsonReportPrefix is the fixed prefix for JSON report filenames.
const jsonReportPrefix = "career-analysis-"

// SanitizePathName converts a career-path name into a safe filename stem.
// Every character that is not alphanumeric or a hyphen becomes a hyphen,
// runs of hyphens collapse, and the result is trimmed and capped at 100
// characters. An empty result falls back to "career-path".
func SanitizePathName(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			sb.WriteRune(r)
		default:
			sb.WriteRune('-')
		}
	}

	s := sb.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	s = strings.Trim(s, "-")

	if len(s) > maxFilenameLen {
		s = strings.Trim(s[:maxFilenameLen], "-")
	}
	if s == "" {
		return "career-path"
	}
	return s
}

// JSONReportFilename returns the download filename for the full report.
func JSONReportFilename(now time.Time) string {
	return jsonReportPrefix + now.UTC().Format("20060102-150405") + ".json"
}
