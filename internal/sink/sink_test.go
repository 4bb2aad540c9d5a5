package sink

import (
	"os"
	"path/filepath"
	"testing"

	"ecourts-scraper/internal/cases"

	"github.com/stretchr/testify/require"
)

func TestCaseResultRoundTrip(t *testing.T) {
	dir := t.TempDir()
	result := cases.NewCaseResult("17-05-2024", []cases.HearingListing{
		{HearingDate: "17-05-2024", CourtName: "Principal Junior Civil Judge <Court>", SerialNumber: "12"},
		{HearingDate: "21-06-2024", CourtName: "Court 2", SerialNumber: "3"},
	})

	path, err := WriteCaseResult(dir, result)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "case_status_17052024.json"), path)

	read, err := ReadCaseResult(path)
	require.NoError(t, err)
	require.Equal(t, result, read)
}

func TestCaseResultFormat(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteCaseResult(dir, cases.CaseResult{CheckedOn: "05-06-2025"})
	require.NoError(t, err)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "{\n    \"checked_on\": \"05-06-2025\",\n    \"listings\": []\n}\n", string(contents))
}

func TestCaseResultOverwrites(t *testing.T) {
	dir := t.TempDir()
	first := cases.NewCaseResult("17-05-2024", []cases.HearingListing{
		{HearingDate: "17-05-2024", CourtName: "Court 1", SerialNumber: "1"},
	})
	second := cases.NewCaseResult("17-05-2024", nil)

	_, err := WriteCaseResult(dir, first)
	require.NoError(t, err)
	path, err := WriteCaseResult(dir, second)
	require.NoError(t, err)

	read, err := ReadCaseResult(path)
	require.NoError(t, err)
	require.Empty(t, read.Listings)
}

func TestWriteFailureIsPersistenceError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	err := os.WriteFile(blocker, []byte("file, not a directory"), 0o600)
	require.NoError(t, err)

	_, err = WriteCaseResult(blocker, cases.CaseResult{CheckedOn: "17-05-2024"})
	require.ErrorIs(t, err, cases.ErrPersistenceFailed)

	_, err = WriteCauseList(blocker, "17-05-2024", []byte("%PDF"))
	require.ErrorIs(t, err, cases.ErrPersistenceFailed)

	var persistenceErr *cases.PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
	require.Equal(t, filepath.Join(blocker, "cause_list_17052024.pdf"), persistenceErr.Path)
}

func TestWriteCauseListPassthrough(t *testing.T) {
	dir := t.TempDir()
	body := []byte{0x25, 0x50, 0x44, 0x46, 0x00, 0xff, 0x0a}

	path, err := WriteCauseList(dir, "18-05-2024", body)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "cause_list_18052024.pdf"), path)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, body, written)
}
