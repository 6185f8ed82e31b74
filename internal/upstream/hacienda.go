package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

// HaciendaClient talks to the tax authority's public API: taxpayer registry
// (AE), CABYS code search, and the reference exchange rate.
type HaciendaClient struct {
	baseURL string
	fetcher *Fetcher
}

// NewHaciendaClient creates a client rooted at baseURL.
func NewHaciendaClient(baseURL string, fetcher *Fetcher) *HaciendaClient {
	return &HaciendaClient{baseURL: baseURL, fetcher: fetcher}
}

// LookupAE fetches the registry record for one identification number.
// The identification must already be canonicalized to digits.
func (c *HaciendaClient) LookupAE(ctx context.Context, identification string) (json.RawMessage, error) {
	u := fmt.Sprintf("%s/fe/ae?identificacion=%s", c.baseURL, url.QueryEscape(identification))
	return c.fetcher.FetchJSON(ctx, "hacienda_ae", u)
}

// SearchCabys fetches the top-ranked CABYS matches for a query. The
// upstream has no cursor API; top is the only paging control and is capped
// by the caller.
func (c *HaciendaClient) SearchCabys(ctx context.Context, query string, top int) (json.RawMessage, error) {
	u := fmt.Sprintf("%s/fe/cabys?q=%s&top=%d", c.baseURL, url.QueryEscape(query), top)
	return c.fetcher.FetchJSON(ctx, "hacienda_cabys", u)
}

// ExchangeRate fetches the day's reference rate. The endpoint's declared
// content type is unreliable, so only status and parseability are enforced.
func (c *HaciendaClient) ExchangeRate(ctx context.Context) (json.RawMessage, error) {
	u := c.baseURL + "/indicadores/tc"
	return c.fetcher.FetchJSONLax(ctx, "hacienda_tc", u)
}

// Probe measures round-trip latency of the AE endpoint using a known-stable
// identification, without interpreting the body.
func (c *HaciendaClient) Probe(ctx context.Context, identification string) (time.Duration, error) {
	u := fmt.Sprintf("%s/fe/ae?identificacion=%s", c.baseURL, url.QueryEscape(identification))
	return c.fetcher.Probe(ctx, "hacienda_probe", u)
}
