package cases

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestExtractListingsDropsShortRows(t *testing.T) {
	page := `<html><body>
		<table>
			<tr><th>#</th><th>Hearing Date</th><th>Court</th><th>Serial</th></tr>
			<tr><td>1</td><td> 17-05-2024 </td><td>Principal District Court</td><td>12</td><td>extra</td></tr>
			<tr><td>2</td><td>18-05-2024</td></tr>
		</table>
	</body></html>`

	listings, err := ExtractListings(context.Background(), []byte(page))
	require.NoError(t, err)
	require.Equal(t, []HearingListing{
		{HearingDate: "17-05-2024", CourtName: "Principal District Court", SerialNumber: "12"},
	}, listings)
}

func TestExtractListingsKeepsSourceOrder(t *testing.T) {
	page := `<table>
		<thead><tr><td>#</td><td>Date</td><td>Court</td><td>Sr</td></tr></thead>
		<tbody>
			<tr><td>1</td><td>20-05-2024</td><td>Court C</td><td>3</td></tr>
			<tr><td>2</td><td>10-05-2024</td><td>Court A</td><td>1</td></tr>
			<tr><td>only</td><td>three</td><td>cells</td></tr>
			<tr></tr>
			<tr><td>3</td><td>15-05-2024</td><td>Court B</td><td>2</td></tr>
		</tbody>
	</table>
	<table><tr><td>x</td><td>01-01-2000</td><td>second table</td><td>9</td></tr></table>`

	listings, err := ExtractListings(context.Background(), []byte(page))
	require.NoError(t, err)

	expected := []HearingListing{
		{HearingDate: "20-05-2024", CourtName: "Court C", SerialNumber: "3"},
		{HearingDate: "10-05-2024", CourtName: "Court A", SerialNumber: "1"},
		{HearingDate: "15-05-2024", CourtName: "Court B", SerialNumber: "2"},
	}
	if diff := cmp.Diff(expected, listings); diff != "" {
		t.Fatalf("unexpected listings (-want +got):\n%s", diff)
	}
}

func TestExtractListingsIgnoresNestedTables(t *testing.T) {
	page := `<table>
		<tr><td>header</td></tr>
		<tr><td>1</td><td>17-05-2024</td><td>Court<table><tr><td>a</td><td>b</td><td>c</td><td>d</td></tr></table></td><td>4</td></tr>
	</table>`

	listings, err := ExtractListings(context.Background(), []byte(page))
	require.NoError(t, err)
	require.Len(t, listings, 1)
	require.Equal(t, "17-05-2024", listings[0].HearingDate)
	require.Equal(t, "4", listings[0].SerialNumber)
}

func TestExtractListingsKeepsInnerWhitespace(t *testing.T) {
	page := "<table><tr><th>header</th></tr>" +
		"<tr><td>1</td><td>\n 17-05-2024\u00a0</td><td>  Court  No.\n 1  </td><td> 7 </td></tr></table>"

	listings, err := ExtractListings(context.Background(), []byte(page))
	require.NoError(t, err)
	require.Equal(t, []HearingListing{
		{HearingDate: "17-05-2024", CourtName: "Court  No.\n 1", SerialNumber: "7"},
	}, listings)
}

func TestExtractListingsHeaderOnly(t *testing.T) {
	listings, err := ExtractListings(context.Background(), []byte(`<table><tr><th>only header</th></tr></table>`))
	require.NoError(t, err)
	require.Empty(t, listings)
}

func TestExtractListingsNoTable(t *testing.T) {
	for _, page := range []string{
		"",
		"<html><body><p>Invalid captcha</p></body></html>",
		"not even html",
	} {
		listings, err := ExtractListings(context.Background(), []byte(page))
		require.ErrorIs(t, err, ErrNoTableFound)
		require.Empty(t, listings)
	}
}

func FuzzExtractListings(f *testing.F) {
	f.Add([]byte(`<table><tr><th>h</th></tr><tr><td>1</td><td>17-05-2024</td><td>C</td><td>2</td></tr></table>`))
	f.Add([]byte(`<table><tr><td><table><tr><td>x</td></tr></table></td></tr></table>`))
	f.Add([]byte(`<p>no table</p>`))

	f.Fuzz(func(t *testing.T, page []byte) {
		first, err := ExtractListings(context.Background(), page)
		if err != nil && !errors.Is(err, ErrNoTableFound) {
			t.Fatalf("unexpected error: %v", err)
		}
		second, _ := ExtractListings(context.Background(), page)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("extraction is not deterministic: %s", diff)
		}
	})
}
