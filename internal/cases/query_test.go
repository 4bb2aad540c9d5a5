package cases

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestBuildCNR(t *testing.T) {
	query, err := NewCNRQuery(" AP010012342024 ")
	require.NoError(t, err)

	spec, err := Build(query, "17-05-2024")
	require.NoError(t, err)

	expected := RequestSpec{
		Kind:   KindCNRStatus,
		Method: http.MethodPost,
		Target: "/?p=cnr_status",
		Form:   map[string]string{"cnr": "AP010012342024"},
	}
	if diff := cmp.Diff(expected, spec); diff != "" {
		t.Fatalf("unexpected spec (-want +got):\n%s", diff)
	}
}

func TestBuildDetails(t *testing.T) {
	query, err := NewDetailsQuery("OS", "123", "2023")
	require.NoError(t, err)

	spec, err := Build(query, "17-05-2024")
	require.NoError(t, err)

	expected := RequestSpec{
		Kind:   KindCaseStatus,
		Method: http.MethodPost,
		Target: "/?p=case_status",
		Form: map[string]string{
			"case_type":   "OS",
			"case_number": "123",
			"case_year":   "2023",
		},
	}
	if diff := cmp.Diff(expected, spec); diff != "" {
		t.Fatalf("unexpected spec (-want +got):\n%s", diff)
	}
}

func TestBuildIgnoresDate(t *testing.T) {
	query, err := NewCNRQuery("AP010012342024")
	require.NoError(t, err)

	a, err := Build(query, "17-05-2024")
	require.NoError(t, err)
	b, err := Build(query, "garbage")
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestInvalidQueries(t *testing.T) {
	cases := []struct {
		name                         string
		cnr, caseType, number, year string
	}{
		{name: "nothing"},
		{name: "whitespace only", cnr: "  "},
		{name: "missing type", number: "123", year: "2023"},
		{name: "missing number", caseType: "OS", year: "2023"},
		{name: "missing year", caseType: "OS", number: "123"},
		{name: "both", cnr: "AP010012342024", caseType: "OS", number: "123", year: "2023"},
		{name: "cnr and partial details", cnr: "AP010012342024", year: "2023"},
	}

	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseCaseQuery(test.cnr, test.caseType, test.number, test.year)
			require.True(t, errors.Is(err, ErrInvalidQuery), "got %v", err)
		})
	}

	_, err := NewDetailsQuery("OS", "", "2023")
	require.ErrorIs(t, err, ErrInvalidQuery)

	_, err = Build(CaseQuery{}, "17-05-2024")
	require.ErrorIs(t, err, ErrInvalidQuery)
}

func TestParseCaseQuery(t *testing.T) {
	query, err := ParseCaseQuery(" AP010012342024 ", "", "", "")
	require.NoError(t, err)
	require.Equal(t, CaseQuery{kind: queryCNR, cnr: "AP010012342024"}, query)
	require.Equal(t, "cnr AP010012342024", query.String())

	query, err = ParseCaseQuery("", "OS", "123", "2023")
	require.NoError(t, err)
	require.Equal(t, CaseQuery{kind: queryDetails, caseType: "OS", caseNumber: "123", caseYear: "2023"}, query)
	require.Equal(t, "case OS/123/2023", query.String())
}

func TestBuildCauseList(t *testing.T) {
	spec := BuildCauseList("17-05-2024")
	require.Equal(t, KindCauseList, spec.Kind)
	require.Equal(t, http.MethodGet, spec.Method)
	require.Equal(t, "/?date=17-05-2024&p=causelist", spec.Target)
	require.Nil(t, spec.Form)
}
