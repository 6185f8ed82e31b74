package upstream

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/consultacr/app-fiscal/internal/logging"
	"github.com/consultacr/app-fiscal/internal/models"
	"github.com/consultacr/app-fiscal/internal/observability"
	"github.com/consultacr/app-fiscal/internal/utils"
	"github.com/consultacr/app-fiscal/internal/utils/httpclient"
	"go.uber.org/zap"
)

// Fetcher performs upstream requests with caching disabled and classifies
// every failure into the error taxonomy in internal/models. The proxied
// Hacienda endpoints sometimes answer HTML or plain-text errors with a 200
// status, so the body is read fully and inspected before any parse.
type Fetcher struct {
	pool   *httpclient.Pool
	logger *logging.SafeLogger
}

// NewFetcher creates a fetcher backed by a pooled HTTP client with the
// given per-request timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		pool:   httpclient.NewPool(10, timeout),
		logger: logging.NewSafeLogger("upstream"),
	}
}

// FetchJSON performs a strict JSON fetch: the response must be 2xx, must
// declare a JSON content type, and the body must parse. The raw parsed
// body is returned for the normalizers to interpret.
func (f *Fetcher) FetchJSON(ctx context.Context, endpoint, url string) (json.RawMessage, error) {
	return f.fetch(ctx, endpoint, url, true)
}

// FetchJSONLax skips the content-type gate for endpoints whose declared
// type is unreliable but whose bodies still must parse as JSON.
func (f *Fetcher) FetchJSONLax(ctx context.Context, endpoint, url string) (json.RawMessage, error) {
	return f.fetch(ctx, endpoint, url, false)
}

func (f *Fetcher) fetch(ctx context.Context, endpoint, url string, strictContentType bool) (json.RawMessage, error) {
	start := time.Now()
	ctx, _, finish := utils.TraceUpstreamCall(ctx, endpoint)

	body, contentType, status, err := f.do(ctx, url)
	if err != nil {
		f.observe(endpoint, "network_error", start)
		finish(err)
		return nil, &models.NetworkError{Err: err}
	}

	if status < 200 || status >= 300 {
		httpErr := &models.HTTPError{Status: status}
		f.logger.Warn("upstream returned error status",
			zap.String("endpoint", endpoint),
			zap.Int("status", status),
		)
		f.observe(endpoint, "http_error", start)
		finish(httpErr)
		return nil, httpErr
	}

	if strictContentType && !isJSONContentType(contentType) {
		ctErr := &models.ContentTypeError{
			ContentType: contentType,
			Preview:     models.BodyPreview(string(body)),
		}
		f.logger.Warn("upstream returned non-JSON content type",
			zap.String("endpoint", endpoint),
			zap.String("content_type", contentType),
			zap.String("preview", ctErr.Preview),
		)
		f.observe(endpoint, "content_type_error", start)
		finish(ctErr)
		return nil, ctErr
	}

	if !json.Valid(body) {
		parseErr := &models.ParseError{Preview: models.BodyPreview(string(body))}
		f.logger.Warn("upstream returned malformed JSON",
			zap.String("endpoint", endpoint),
			zap.String("preview", parseErr.Preview),
		)
		f.observe(endpoint, "parse_error", start)
		finish(parseErr)
		return nil, parseErr
	}

	f.observe(endpoint, "success", start)
	finish(nil)
	return json.RawMessage(body), nil
}

// Probe issues a lightweight status-only request and reports its round-trip
// time. Any non-2xx status or transport failure is an error.
func (f *Fetcher) Probe(ctx context.Context, endpoint, url string) (time.Duration, error) {
	start := time.Now()
	_, _, status, err := f.do(ctx, url)
	latency := time.Since(start)
	if err != nil {
		f.observe(endpoint, "network_error", start)
		return 0, &models.NetworkError{Err: err}
	}
	if status < 200 || status >= 300 {
		f.observe(endpoint, "http_error", start)
		return 0, &models.HTTPError{Status: status}
	}
	f.observe(endpoint, "success", start)
	return latency, nil
}

// do runs the request and reads the body fully, so that it can be inspected
// before any parsing decision.
func (f *Fetcher) do(ctx context.Context, url string) (body []byte, contentType string, status int, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", 0, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	client := f.pool.Get()
	defer f.pool.Put(client)

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", 0, err
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", 0, err
	}

	return body, resp.Header.Get("Content-Type"), resp.StatusCode, nil
}

func (f *Fetcher) observe(endpoint, outcome string, start time.Time) {
	observability.UpstreamRequestDuration.
		WithLabelValues(endpoint, outcome).
		Observe(time.Since(start).Seconds())
}

func isJSONContentType(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "application/json") || strings.Contains(ct, "+json")
}
