// Package sink persists pipeline results. Every file name is derived from
// the checked date, a repeat run for the same date overwrites the previous file.
package sink

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ecourts-scraper/internal/cases"
)

// CaseStatusFilename is the JSON sink file name for a date.
func CaseStatusFilename(date cases.CanonicalDate) string {
	return fmt.Sprintf("case_status_%s.json", cases.CompactDate(date))
}

// CauseListFilename is the raw document sink file name for a date.
func CauseListFilename(date cases.CanonicalDate) string {
	return fmt.Sprintf("cause_list_%s.pdf", cases.CompactDate(date))
}

func writeFile(path string, contents []byte) error {
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return &cases.PersistenceError{Path: path, Err: err}
	}
	err = os.WriteFile(path, contents, 0o644)
	if err != nil {
		return &cases.PersistenceError{Path: path, Err: err}
	}
	return nil
}

// WriteCaseResult serializes a result into `dir` and returns the file path.
func WriteCaseResult(dir string, result cases.CaseResult) (string, error) {
	path := filepath.Join(dir, CaseStatusFilename(result.CheckedOn))

	if result.Listings == nil {
		result.Listings = []cases.HearingListing{}
	}

	buff := &bytes.Buffer{}
	encoder := json.NewEncoder(buff)
	encoder.SetIndent("", "    ")
	encoder.SetEscapeHTML(false)
	err := encoder.Encode(result)
	if err != nil {
		return "", &cases.PersistenceError{Path: path, Err: err}
	}

	err = writeFile(path, buff.Bytes())
	if err != nil {
		return "", err
	}
	return path, nil
}

// ReadCaseResult reads back a file written by WriteCaseResult.
func ReadCaseResult(path string) (cases.CaseResult, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return cases.CaseResult{}, err
	}
	var result cases.CaseResult
	err = json.Unmarshal(contents, &result)
	if err != nil {
		return cases.CaseResult{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return result, nil
}

// WriteCauseList writes the downloaded document as is.
func WriteCauseList(dir string, date cases.CanonicalDate, body []byte) (string, error) {
	path := filepath.Join(dir, CauseListFilename(date))
	err := writeFile(path, body)
	if err != nil {
		return "", err
	}
	return path, nil
}
