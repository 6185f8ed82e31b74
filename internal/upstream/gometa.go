package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// GometaClient talks to the third-party civil-registry cédula lookup.
type GometaClient struct {
	baseURL string
	fetcher *Fetcher
}

// NewGometaClient creates a client rooted at baseURL.
func NewGometaClient(baseURL string, fetcher *Fetcher) *GometaClient {
	return &GometaClient{baseURL: baseURL, fetcher: fetcher}
}

// LookupCedula fetches registry matches for a cédula or name query. The
// response shape varies by query type; normalization happens downstream.
func (c *GometaClient) LookupCedula(ctx context.Context, query string) (json.RawMessage, error) {
	u := fmt.Sprintf("%s/cedulas/%s", c.baseURL, url.PathEscape(query))
	return c.fetcher.FetchJSON(ctx, "gometa_cedulas", u)
}
