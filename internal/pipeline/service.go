package pipeline

import (
	"context"
	"time"

	"ecourts-scraper/internal/cases"
	"ecourts-scraper/internal/components/assert"
	"ecourts-scraper/internal/components/chrono"
	"ecourts-scraper/internal/components/telemetry"
	"ecourts-scraper/internal/sink"
)

const (
	report_service_case_status = "service.case-status"
	report_service_cause_list  = "service.cause-list"
	report_listings_extracted  = "listings.extracted"
	report_listings_matched    = "listings.matched"
)

const (
	DefaultStatusTimeout   = time.Second * 15
	DefaultDownloadTimeout = time.Second * 20
)

// Portal is the transport the pipeline talks to.
//
// note: fault injection point
type Portal interface {
	Do(ctx context.Context, spec cases.RequestSpec, timeout time.Duration) ([]byte, error)
}

type Options struct {
	// OutputDir is where result files are written, empty means the cwd.
	OutputDir       string
	StatusTimeout   time.Duration
	DownloadTimeout time.Duration
}

// Service runs one lookup or download per call and holds no state between calls.
type Service struct {
	portal Portal
	clock  chrono.API
	tel    telemetry.API
	opts   Options
}

func NewService(portal Portal, clock chrono.API, tel telemetry.API, opts Options) Service {
	assert.NotNil(portal)
	assert.NotNil(clock)
	assert.NotNil(tel)

	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	if opts.StatusTimeout <= 0 {
		opts.StatusTimeout = DefaultStatusTimeout
	}
	if opts.DownloadTimeout <= 0 {
		opts.DownloadTimeout = DefaultDownloadTimeout
	}

	return Service{
		portal: portal,
		clock:  clock,
		tel:    telemetry.NewScopedAPI("pipeline", tel),
		opts:   opts,
	}
}

// ResolveDate is the date a call made now with `selector` would check.
func (s Service) ResolveDate(selector cases.DateSelector) cases.CanonicalDate {
	return cases.Resolve(s.clock, selector)
}

// CaseReport is the outcome of a case-status lookup.
type CaseReport struct {
	Result cases.CaseResult
	// Matches are the listings scheduled on Result.CheckedOn, in source order.
	Matches []cases.HearingListing
	Found   bool
	// Path is the JSON file the result was written to.
	Path string
}

type invocation struct {
	tel   telemetry.API
	id    string
	stage Stage
}

func (i *invocation) advance(stage Stage, params ...any) {
	i.stage = stage
	i.tel.ReportDebug(i.id, append([]any{stage.String()}, params...)...)
}

func (i *invocation) fail(err error) error {
	i.tel.ReportWarning(i.id, i.stage.String(), err)
	return &StageError{Stage: i.stage, Err: err}
}

// CheckCaseStatus looks a case up, matches its listings against the selected
// day and persists the full result. ErrNoTableFound is returned as is (wrapped
// in a StageError) so callers can treat it as "no information".
func (s Service) CheckCaseStatus(ctx context.Context, query cases.CaseQuery, selector cases.DateSelector) (CaseReport, error) {
	inv := &invocation{tel: s.tel, id: report_service_case_status}

	checkedOn := cases.Resolve(s.clock, selector)
	inv.advance(StageDateResolved, checkedOn)

	spec, err := cases.Build(query, checkedOn)
	if err != nil {
		return CaseReport{}, inv.fail(err)
	}
	inv.advance(StageRequestBuilt, spec.Kind, query.String())

	inv.advance(StageRequested)
	body, err := s.portal.Do(ctx, spec, s.opts.StatusTimeout)
	if err != nil {
		inv.advance(StageTransportFailed)
		return CaseReport{}, inv.fail(err)
	}
	inv.advance(StageResponseOk, len(body))

	listings, err := cases.ExtractListings(ctx, body)
	if err != nil {
		return CaseReport{}, inv.fail(err)
	}
	inv.advance(StageExtracted, len(listings))
	s.tel.ReportCount(report_listings_extracted, int64(len(listings)))

	result := cases.NewCaseResult(checkedOn, listings)
	outcomes := cases.Match(result.Listings, checkedOn)
	matches := cases.Matches(result.Listings, checkedOn)
	inv.advance(StageMatched, len(matches))
	s.tel.ReportCount(report_listings_matched, int64(len(matches)))

	path, err := sink.WriteCaseResult(s.opts.OutputDir, result)
	if err != nil {
		s.tel.ReportBroken(report_service_case_status, err)
		return CaseReport{}, inv.fail(err)
	}
	inv.advance(StagePersisted, path)

	return CaseReport{
		Result:  result,
		Matches: matches,
		Found:   cases.AnyFound(outcomes),
		Path:    path,
	}, nil
}

// DownloadCauseList fetches the cause-list document of the selected day and
// writes it unmodified, returning the file path.
func (s Service) DownloadCauseList(ctx context.Context, selector cases.DateSelector) (string, error) {
	inv := &invocation{tel: s.tel, id: report_service_cause_list}

	date := cases.Resolve(s.clock, selector)
	inv.advance(StageDateResolved, date)

	spec := cases.BuildCauseList(date)
	inv.advance(StageRequestBuilt, spec.Kind)

	inv.advance(StageRequested)
	body, err := s.portal.Do(ctx, spec, s.opts.DownloadTimeout)
	if err != nil {
		inv.advance(StageTransportFailed)
		return "", inv.fail(err)
	}
	inv.advance(StageResponseOk, len(body))

	path, err := sink.WriteCauseList(s.opts.OutputDir, date, body)
	if err != nil {
		s.tel.ReportBroken(report_service_cause_list, err)
		return "", inv.fail(err)
	}
	inv.advance(StagePersisted, path)

	return path, nil
}
