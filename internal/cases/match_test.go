package cases

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	listings := []HearingListing{
		{HearingDate: "05-06-2025", CourtName: "Court 1", SerialNumber: "4"},
		{HearingDate: "06-06-2025", CourtName: "Court 2", SerialNumber: "7"},
	}

	found := Matches(listings, "05-06-2025")
	require.Equal(t, []HearingListing{listings[0]}, found)
	require.Len(t, listings, 2)
}

func TestMatchReportsEveryCourtroom(t *testing.T) {
	listings := []HearingListing{
		{HearingDate: "05-06-2025", CourtName: "Court 1", SerialNumber: "4"},
		{HearingDate: "04-06-2025", CourtName: "Court 9", SerialNumber: "1"},
		{HearingDate: "05-06-2025", CourtName: "Court 3", SerialNumber: "11"},
	}

	outcomes := Match(listings, "05-06-2025")
	require.Equal(t, []MatchOutcome{
		{Listing: listings[0], Found: true},
		{Listing: listings[1], Found: false},
		{Listing: listings[2], Found: true},
	}, outcomes)
	require.True(t, AnyFound(outcomes))
	require.Len(t, Matches(listings, "05-06-2025"), 2)
}

func TestMatchNotListed(t *testing.T) {
	listings := []HearingListing{
		{HearingDate: "05-06-2025", CourtName: "Court 1", SerialNumber: "4"},
	}

	outcomes := Match(listings, "5-6-2025")
	require.False(t, AnyFound(outcomes))
	require.Len(t, outcomes, 1)
	require.Empty(t, Matches(listings, "5-6-2025"))
	require.Empty(t, Match(nil, "05-06-2025"))
}
