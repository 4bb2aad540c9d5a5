package cases

import (
	"strings"

	"ecourts-scraper/internal/components/chrono"
)

// CanonicalDate is a date in the portal's DD-MM-YYYY format.
type CanonicalDate string

// CanonicalLayout is the time layout of CanonicalDate.
const CanonicalLayout = "02-01-2006"

type selectorKind int

const (
	selectToday selectorKind = iota
	selectTomorrow
	selectExplicit
)

// DateSelector picks the day a lookup is made for.
type DateSelector struct {
	kind     selectorKind
	explicit string
}

var (
	Today    = DateSelector{kind: selectToday}
	Tomorrow = DateSelector{kind: selectTomorrow}
)

// Explicit selects a literal date string, it is never validated: a malformed
// date simply matches no listing.
func Explicit(date string) DateSelector {
	return DateSelector{kind: selectExplicit, explicit: date}
}

// ParseDateSelector maps "today" and "tomorrow" to their selectors and any
// other string to an explicit date.
func ParseDateSelector(option string) DateSelector {
	switch option {
	case "today":
		return Today
	case "tomorrow":
		return Tomorrow
	default:
		return Explicit(option)
	}
}

func (s DateSelector) String() string {
	switch s.kind {
	case selectToday:
		return "today"
	case selectTomorrow:
		return "tomorrow"
	default:
		return s.explicit
	}
}

// Resolve turns a selector into the date used for both the query and the
// matching of its results.
func Resolve(clock chrono.API, selector DateSelector) CanonicalDate {
	switch selector.kind {
	case selectToday:
		return CanonicalDate(clock.Now().Format(CanonicalLayout))
	case selectTomorrow:
		return CanonicalDate(clock.Now().AddDate(0, 0, 1).Format(CanonicalLayout))
	default:
		return CanonicalDate(selector.explicit)
	}
}

var dateSeparators = strings.NewReplacer("-", "", "/", "", ".", "", " ", "")

// CompactDate strips separators from a date for use in file names,
// 17-05-2024 becomes 17052024.
func CompactDate(date CanonicalDate) string {
	return dateSeparators.Replace(string(date))
}
