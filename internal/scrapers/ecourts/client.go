// client.go contains the transport for the eCourts portal, it knows nothing
// about the pages it fetches besides how to request them.

package ecourts

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"time"

	"ecourts-scraper/internal/cases"
	"ecourts-scraper/internal/components/assert"
	"ecourts-scraper/internal/components/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	report_client_new = "client.new"
	report_client_do  = "client.do"
)

const (
	DefaultBaseUrl   = "https://services.ecourts.gov.in/ecourtindia_v6"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
)

type ClientOptions struct {
	BaseUrl   string
	UserAgent string
	// RequestsPerSecond paces outgoing requests, 0 disables pacing.
	RequestsPerSecond float64
	// CloudflareBypass wraps the transport to mimic a browser TLS handshake.
	CloudflareBypass bool
	// DumpDir receives every raw exchange when set.
	DumpDir string
}

// Client performs single-attempt requests against the portal.
type Client struct {
	http *resty.Client
	tel  telemetry.API
}

func NewClient(opts ClientOptions, tel telemetry.API) (Client, error) {
	assert.NotNil(tel)
	tel = telemetry.NewScopedAPI("ecourts_scraper", tel)

	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}

	parsedBaseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		tel.ReportBroken(report_client_new, fmt.Errorf("parse base url: %w", err), opts.BaseUrl)
		return Client{}, err
	}

	httpClient := resty.New()
	httpClient.SetBaseURL(opts.BaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return Client{}, err
	}
	httpClient.SetCookieJar(jar)
	if opts.CloudflareBypass {
		httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(httpClient.GetClient().Transport)
	}

	httpClient.SetHeader("user-agent", opts.UserAgent)
	httpClient.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(parsedBaseUrl.Hostname()))
	httpClient.SetRetryCount(0)

	if opts.RequestsPerSecond > 0 {
		rateLimiter := rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
		httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return rateLimiter.Wait(req.Context())
		})
	}

	var dump telemetry.DumpOutput
	if opts.DumpDir != "" {
		fsDump, err := telemetry.NewFilesystemDump(opts.DumpDir)
		if err != nil {
			tel.ReportBroken(report_client_new, err, opts.DumpDir)
			return Client{}, err
		}
		dump = fsDump
	}
	telemetry.InstrumentResty(httpClient, tel, dump)

	return Client{
		http: httpClient,
		tel:  tel,
	}, nil
}

// Do performs `spec` once and returns the response body. Any network error,
// timeout or non-2xx status is returned as a *cases.TransportError.
func (c Client) Do(ctx context.Context, spec cases.RequestSpec, timeout time.Duration) ([]byte, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	c.tel.ReportDebug(report_client_do, spec.Kind, spec.Method, spec.Target)

	req := c.http.R().SetContext(ctx)
	if len(spec.Form) > 0 {
		req.SetFormData(spec.Form)
	}

	res, err := req.Execute(spec.Method, spec.Target)
	if err != nil {
		c.tel.ReportBroken(
			report_client_do,
			fmt.Errorf("fetch: %w", err),
			spec.Kind,
		)
		return nil, &cases.TransportError{
			Method: spec.Method,
			Target: spec.Target,
			Err:    err,
		}
	}
	if !res.IsSuccess() {
		c.tel.ReportWarning(
			report_client_do,
			fmt.Errorf("unexpected status: %s", res.Status()),
			spec.Kind,
		)
		return nil, &cases.TransportError{
			Method:     spec.Method,
			Target:     spec.Target,
			StatusCode: res.StatusCode(),
		}
	}

	return res.Body(), nil
}
