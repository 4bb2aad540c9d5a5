package cases

// MatchOutcome is the verdict of a single listing against the checked date.
type MatchOutcome struct {
	Listing HearingListing
	Found   bool
}

// Match annotates every listing, in order, with whether it is scheduled on
// `checkedOn`. Dates are compared as plain strings.
func Match(listings []HearingListing, checkedOn CanonicalDate) []MatchOutcome {
	outcomes := make([]MatchOutcome, len(listings))
	for i, listing := range listings {
		outcomes[i] = MatchOutcome{
			Listing: listing,
			Found:   listing.HearingDate == string(checkedOn),
		}
	}
	return outcomes
}

// Matches returns the subsequence of listings scheduled on `checkedOn`.
func Matches(listings []HearingListing, checkedOn CanonicalDate) []HearingListing {
	var found []HearingListing
	for _, outcome := range Match(listings, checkedOn) {
		if outcome.Found {
			found = append(found, outcome.Listing)
		}
	}
	return found
}

func AnyFound(outcomes []MatchOutcome) bool {
	for _, outcome := range outcomes {
		if outcome.Found {
			return true
		}
	}
	return false
}
