package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/career-advisor/internal/schemas"
	"github.com/jonathan/career-advisor/internal/types"
)

// MarshalReport renders the full analysis result as pretty-printed JSON.
func MarshalReport(result *types.AnalysisResult) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis result: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteJSONReport writes the pretty-printed report into dir and returns the
// file path. The document is checked against the analysis-result schema
// before anything touches disk, and the file is staged in a temp file and
// renamed into place, so a failed export never leaves a report behind.
func WriteJSONReport(result *types.AnalysisResult, dir string) (string, error) {
	data, err := MarshalReport(result)
	if err != nil {
		return "", err
	}

	if err := schemas.ValidateAnalysisResult(data); err != nil {
		return "", fmt.Errorf("report failed schema validation: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	target := filepath.Join(dir, JSONReportFilename(time.Now()))
	if err := writeAtomic(target, data); err != nil {
		return "", err
	}
	return target, nil
}

// writeAtomic writes data to path via a temp file in the same directory.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".export-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close export: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to finalize export: %w", err)
	}
	return nil
}
