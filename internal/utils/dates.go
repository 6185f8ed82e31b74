package utils

import "time"

// dateLayouts are the formats the upstreams have been observed to emit.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// FormatLocalDate renders a date-like value as dd/mm/yyyy. Unparseable
// input is returned verbatim so that upstream-malformed dates degrade to
// raw text instead of breaking display.
func FormatLocalDate(value string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return value
}
