package cases

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

type queryKind int

const (
	queryNone queryKind = iota
	queryCNR
	queryDetails
)

// CaseQuery identifies a case either by its CNR or by its (type, number, year)
// triple. The zero value is not a valid query.
type CaseQuery struct {
	kind       queryKind
	cnr        string
	caseType   string
	caseNumber string
	caseYear   string
}

// NewCNRQuery builds a ByCNR query.
func NewCNRQuery(cnr string) (CaseQuery, error) {
	cnr = strings.TrimSpace(cnr)
	if cnr == "" {
		return CaseQuery{}, fmt.Errorf("%w: empty CNR", ErrInvalidQuery)
	}
	return CaseQuery{kind: queryCNR, cnr: cnr}, nil
}

// NewDetailsQuery builds a ByDetails query, every field is required.
func NewDetailsQuery(caseType, caseNumber, caseYear string) (CaseQuery, error) {
	q := CaseQuery{
		kind:       queryDetails,
		caseType:   strings.TrimSpace(caseType),
		caseNumber: strings.TrimSpace(caseNumber),
		caseYear:   strings.TrimSpace(caseYear),
	}
	var missing []string
	if q.caseType == "" {
		missing = append(missing, "type")
	}
	if q.caseNumber == "" {
		missing = append(missing, "number")
	}
	if q.caseYear == "" {
		missing = append(missing, "year")
	}
	if len(missing) > 0 {
		return CaseQuery{}, fmt.Errorf("%w: missing case %s", ErrInvalidQuery, strings.Join(missing, ", "))
	}
	return q, nil
}

// ParseCaseQuery picks the query variant from raw user input. Supplying a CNR
// together with any detail field, or nothing at all, is rejected.
func ParseCaseQuery(cnr, caseType, caseNumber, caseYear string) (CaseQuery, error) {
	hasCNR := strings.TrimSpace(cnr) != ""
	hasDetails := strings.TrimSpace(caseType) != "" ||
		strings.TrimSpace(caseNumber) != "" ||
		strings.TrimSpace(caseYear) != ""

	switch {
	case hasCNR && hasDetails:
		return CaseQuery{}, fmt.Errorf("%w: CNR and case details are mutually exclusive", ErrInvalidQuery)
	case hasCNR:
		return NewCNRQuery(cnr)
	case hasDetails:
		return NewDetailsQuery(caseType, caseNumber, caseYear)
	default:
		return CaseQuery{}, ErrInvalidQuery
	}
}

func (q CaseQuery) String() string {
	switch q.kind {
	case queryCNR:
		return fmt.Sprintf("cnr %s", q.cnr)
	case queryDetails:
		return fmt.Sprintf("case %s/%s/%s", q.caseType, q.caseNumber, q.caseYear)
	default:
		return "invalid query"
	}
}

// RequestKind names the portal page a request is made against.
type RequestKind string

const (
	KindCNRStatus  RequestKind = "cnr_status"
	KindCaseStatus RequestKind = "case_status"
	KindCauseList  RequestKind = "causelist"
)

// RequestSpec is a transport independent description of a portal request.
// Target is relative to the portal base URL.
type RequestSpec struct {
	Kind   RequestKind
	Method string
	Target string
	// Form is sent as an urlencoded body for POST requests.
	Form map[string]string
}

func target(values url.Values) string {
	return "/?" + values.Encode()
}

// Build shapes the request for a case-status lookup. `resolvedDate` is only
// carried forward for matching, the portal does not filter by date.
func Build(query CaseQuery, resolvedDate CanonicalDate) (RequestSpec, error) {
	switch query.kind {
	case queryCNR:
		return RequestSpec{
			Kind:   KindCNRStatus,
			Method: http.MethodPost,
			Target: target(url.Values{"p": {string(KindCNRStatus)}}),
			Form: map[string]string{
				"cnr": query.cnr,
			},
		}, nil
	case queryDetails:
		return RequestSpec{
			Kind:   KindCaseStatus,
			Method: http.MethodPost,
			Target: target(url.Values{"p": {string(KindCaseStatus)}}),
			Form: map[string]string{
				"case_type":   query.caseType,
				"case_number": query.caseNumber,
				"case_year":   query.caseYear,
			},
		}, nil
	default:
		return RequestSpec{}, ErrInvalidQuery
	}
}

// BuildCauseList shapes the cause-list document download for a date.
func BuildCauseList(resolvedDate CanonicalDate) RequestSpec {
	return RequestSpec{
		Kind:   KindCauseList,
		Method: http.MethodGet,
		Target: target(url.Values{
			"p":    {string(KindCauseList)},
			"date": {string(resolvedDate)},
		}),
	}
}
