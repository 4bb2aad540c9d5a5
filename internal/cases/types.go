// Package cases holds the case-listing pipeline of the eCourts portal: date
// resolution, request shaping, table extraction and date matching. Nothing in
// here performs I/O.
package cases

// HearingListing is one row of hearing information of a case.
type HearingListing struct {
	HearingDate  string `json:"hearing_date"`
	CourtName    string `json:"court_name"`
	SerialNumber string `json:"serial_no"`
}

// CaseResult is everything a single case-status lookup produced.
type CaseResult struct {
	CheckedOn CanonicalDate    `json:"checked_on"`
	Listings  []HearingListing `json:"listings"`
}

// NewCaseResult never leaves Listings nil so an empty result still
// serializes as `[]`.
func NewCaseResult(checkedOn CanonicalDate, listings []HearingListing) CaseResult {
	copied := make([]HearingListing, len(listings))
	copy(copied, listings)
	return CaseResult{
		CheckedOn: checkedOn,
		Listings:  copied,
	}
}
