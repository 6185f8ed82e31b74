package pager

import (
	"context"
	"strings"

	"github.com/consultacr/app-fiscal/internal/models"
)

const (
	// MaxWindow bounds how many results one query may ever request,
	// keeping the worst-case upstream payload small.
	MaxWindow = 50

	minPageSize     = 5
	maxPageSize     = 50
	defaultPageSize = 10
)

// FetchFunc fetches the top-ranked matches for a query. The upstream has no
// cursor or offset API: a window can only grow from the start, so top is the
// only paging control.
type FetchFunc func(ctx context.Context, query string, top int) ([]models.CabysEntry, error)

// Pager pages through CABYS search results by growing the requested window
// as the user moves forward and reusing the already-fetched prefix for
// everything behind the current page.
//
// Exhaustion ("the upstream has no more matches") and coverage ("we have
// not fetched enough yet") are tracked separately: a fetch that returns
// fewer entries than requested marks the query exhausted, while a short
// cache is simply refetched with a bigger window.
type Pager struct {
	fetch FetchFunc

	query         string
	entries       []models.CabysEntry
	pageSize      int
	pageIndex     int
	lastRequested int
	exhausted     bool
}

// New creates a pager that fetches windows through fetch.
func New(fetch FetchFunc) *Pager {
	return &Pager{fetch: fetch, pageSize: defaultPageSize}
}

// SetPageSize sets rows-per-page, clamped to [5,50]. Non-positive input
// falls back to the default of 10.
func (p *Pager) SetPageSize(size int) {
	switch {
	case size <= 0:
		p.pageSize = defaultPageSize
	case size < minPageSize:
		p.pageSize = minPageSize
	case size > maxPageSize:
		p.pageSize = maxPageSize
	default:
		p.pageSize = size
	}
}

// PageSize returns the effective rows-per-page.
func (p *Pager) PageSize() int { return p.pageSize }

// Query returns the active query string.
func (p *Pager) Query() string { return p.query }

// Search fetches the window needed to show the current page of query.
// A blank query is a no-op. With resetPage the pager returns to the first
// page before sizing the window. On failure the cache is cleared and the
// error surfaced; the rest of the pager state is left unchanged.
func (p *Pager) Search(ctx context.Context, query string, resetPage bool) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	if resetPage {
		p.pageIndex = 0
	}
	p.query = query

	needed := p.windowFor(p.pageIndex)
	return p.fetchWindow(ctx, needed)
}

// NextPage grows the window to cover the following page, refetching only
// when the cache does not already hold it, then advances the page index.
func (p *Pager) NextPage(ctx context.Context) error {
	needed := p.windowFor(p.pageIndex + 1)
	if len(p.entries) < needed && !p.exhausted {
		if err := p.fetchWindow(ctx, needed); err != nil {
			return err
		}
	} else {
		// Cache already covers the page, or the upstream ran out at a
		// smaller window; either way no new call is warranted.
		p.lastRequested = needed
	}
	p.pageIndex++
	return nil
}

// PrevPage steps back one page, floored at the first. The cache always
// holds every lower page, so no fetch is ever issued.
func (p *Pager) PrevPage() {
	if p.pageIndex > 0 {
		p.pageIndex--
	}
}

// HasPrev reports whether a previous page exists.
func (p *Pager) HasPrev() bool { return p.pageIndex > 0 }

// HasNext reports whether the console may offer a next page: either the
// cache holds rows beyond the current page, or the last window came back
// full and the hard cap is still ahead, meaning the upstream may have more.
func (p *Pager) HasNext() bool {
	end := (p.pageIndex + 1) * p.pageSize
	if end < len(p.entries) {
		return true
	}
	return !p.exhausted && p.lastRequested > 0 &&
		len(p.entries) == p.lastRequested && p.lastRequested < MaxWindow
}

// Page returns the visible slice of the cache plus availability flags.
func (p *Pager) Page() models.CabysPage {
	start := p.pageIndex * p.pageSize
	end := start + p.pageSize
	if start > len(p.entries) {
		start = len(p.entries)
	}
	if end > len(p.entries) {
		end = len(p.entries)
	}

	return models.CabysPage{
		Entries:   p.entries[start:end],
		PageIndex: p.pageIndex,
		PageSize:  p.pageSize,
		HasPrev:   p.HasPrev(),
		HasNext:   p.HasNext(),
		Total:     len(p.entries),
	}
}

// ResultSet exposes the full fetched window for export.
func (p *Pager) ResultSet() models.CabysResultSet {
	return models.CabysResultSet{
		Entries:             p.entries,
		RequestedWindowSize: p.lastRequested,
		CurrentPageIndex:    p.pageIndex,
	}
}

func (p *Pager) windowFor(pageIndex int) int {
	needed := p.pageSize * (pageIndex + 1)
	if needed > MaxWindow {
		needed = MaxWindow
	}
	return needed
}

func (p *Pager) fetchWindow(ctx context.Context, needed int) error {
	entries, err := p.fetch(ctx, p.query, needed)
	if err != nil {
		p.entries = nil
		p.exhausted = false
		return err
	}

	p.entries = entries
	p.lastRequested = needed
	p.exhausted = len(entries) < needed
	return nil
}
