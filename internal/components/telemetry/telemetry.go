// Package telemetry is how components of the scraper and the selector service
// log, count and report failures, they depend on API instead of slog or otel.
package telemetry

import (
	"fmt"
)

// API receives everything worth knowing about a lookup: requests that failed,
// pages that looked wrong, stage transitions and listing counts.
//
// note: fault injection point
type API interface {
	// ReportBroken reports a failure that stopped a lookup, download or
	// request from completing.
	//
	// `id` names the component and the operation, not the cause: a portal
	// request that timed out is `client.do`, the timeout itself is a param.
	// ids are lowercase, "<component>.<operation>" with dashes inside words, and
	// are declared as `report_*` constants next to the code that reports them.
	ReportBroken(id string, params ...any)

	// ReportWarning reports something that did not stop the operation but
	// points at the portal or the input, like a non-2xx status.
	ReportWarning(id string, params ...any)

	// ReportDebug traces progress, for example every pipeline stage. It is
	// logged at debug level, which -v turns on.
	ReportDebug(msg string, params ...any)

	// ReportCount records how many of something one operation produced, like
	// the listings extracted from a status page.
	ReportCount(id string, count int64)
}

// ScopedAPI prefixes every id with the name of the package reporting it, so
// "client.do" from the portal client shows up as "ecourts_scraper: client.do".
type ScopedAPI struct {
	namespace string
	inner     API
}

func NewScopedAPI(namespace string, inner API) ScopedAPI {
	return ScopedAPI{namespace: namespace, inner: inner}
}

func (s ScopedAPI) scoped(id string) string {
	return fmt.Sprintf("%s: %s", s.namespace, id)
}

func (s ScopedAPI) ReportBroken(id string, params ...any) {
	s.inner.ReportBroken(s.scoped(id), params...)
}

func (s ScopedAPI) ReportWarning(id string, params ...any) {
	s.inner.ReportWarning(s.scoped(id), params...)
}

func (s ScopedAPI) ReportDebug(msg string, params ...any) {
	s.inner.ReportDebug(s.scoped(msg), params...)
}

func (s ScopedAPI) ReportCount(id string, count int64) {
	s.inner.ReportCount(s.scoped(id), count)
}
