package models

import "time"

// ExchangeRate is the colón/dólar reference rate published by the tax
// authority. Display-only; refreshed independently of user lookups.
type ExchangeRate struct {
	Buy  float64 `json:"compra"`
	Sell float64 `json:"venta"`
	Date string  `json:"fecha,omitempty"`
}

// APIHealth is the last observed state of the upstream status probe.
// A failed probe records ok=false with no latency.
type APIHealth struct {
	OK        bool      `json:"ok"`
	LatencyMS int64     `json:"latency_ms,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}
