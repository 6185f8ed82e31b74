package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/consultacr/app-fiscal/internal/logging"
	"github.com/consultacr/app-fiscal/internal/models"
	"github.com/consultacr/app-fiscal/internal/normalize"
	"github.com/consultacr/app-fiscal/internal/observability"
	"github.com/consultacr/app-fiscal/internal/pager"
	"go.uber.org/zap"
)

// CabysSearchClient is the slice of the Hacienda client the CABYS service
// needs.
type CabysSearchClient interface {
	SearchCabys(ctx context.Context, query string, top int) (json.RawMessage, error)
}

// cabysSession is one console tab's pager state. The per-session mutex
// serializes overlapping requests for the same session, so at most one
// fetch per domain is in flight and the last completed request's result is
// the one that sticks.
type cabysSession struct {
	mu        sync.Mutex
	pager     *pager.Pager
	lastError string
	lastUsed  time.Time
}

// CabysService owns the per-session incremental pagers for CABYS search.
// Sessions are in-memory and expire after an idle TTL; nothing about them
// persists.
type CabysService struct {
	client     CabysSearchClient
	sessionTTL time.Duration
	logger     *logging.SafeLogger

	mu       sync.Mutex
	sessions map[string]*cabysSession

	stop chan struct{}
	done chan struct{}
}

// NewCabysService creates the CABYS query controller and starts the idle
// session sweeper.
func NewCabysService(client CabysSearchClient, sessionTTL time.Duration) *CabysService {
	if sessionTTL <= 0 {
		sessionTTL = 30 * time.Minute
	}
	s := &CabysService{
		client:     client,
		sessionTTL: sessionTTL,
		logger:     logging.NewSafeLogger("cabys_service"),
		sessions:   make(map[string]*cabysSession),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
	go s.sweepLoop()
	return s
}

// Close stops the session sweeper.
func (s *CabysService) Close() {
	close(s.stop)
	<-s.done
}

// Search runs a fresh query for a session. pageSize <= 0 keeps the
// session's current setting.
func (s *CabysService) Search(ctx context.Context, sessionID, query string, pageSize int, resetPage bool) (models.CabysPage, error) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if pageSize > 0 {
		sess.pager.SetPageSize(pageSize)
	}

	observability.PagerFetches.WithLabelValues("search").Inc()
	if err := sess.pager.Search(ctx, query, resetPage); err != nil {
		sess.lastError = fmt.Sprintf("búsqueda CABYS fallida: %v", err)
		return sess.pager.Page(), err
	}

	sess.lastError = ""
	return sess.pager.Page(), nil
}

// NextPage advances a session one page forward, growing the window when
// the cache does not cover it.
func (s *CabysService) NextPage(ctx context.Context, sessionID string) (models.CabysPage, error) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	observability.PagerFetches.WithLabelValues("next").Inc()
	if err := sess.pager.NextPage(ctx); err != nil {
		sess.lastError = fmt.Sprintf("búsqueda CABYS fallida: %v", err)
		return sess.pager.Page(), err
	}

	sess.lastError = ""
	return sess.pager.Page(), nil
}

// PrevPage steps a session one page back. Never touches the network.
func (s *CabysService) PrevPage(sessionID string) models.CabysPage {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.pager.PrevPage()
	return sess.pager.Page()
}

// Page returns a session's current page without side effects.
func (s *CabysService) Page(sessionID string) (models.CabysPage, string) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return sess.pager.Page(), sess.lastError
}

// ExportRows returns the full fetched window as row/column data.
func (s *CabysService) ExportRows(sessionID string) ([]string, [][]string) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	rs := sess.pager.ResultSet()
	return models.CabysExportColumns, rs.ExportRows()
}

// session returns the session for id, creating it on first use.
func (s *CabysService) session(id string) *cabysSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = &cabysSession{pager: pager.New(s.fetchWindow)}
		s.sessions[id] = sess
		s.logger.Debug("cabys session created", zap.String("session", id))
	}
	sess.lastUsed = time.Now()
	return sess
}

// fetchWindow adapts the upstream search into the pager's fetch function.
func (s *CabysService) fetchWindow(ctx context.Context, query string, top int) ([]models.CabysEntry, error) {
	raw, err := s.client.SearchCabys(ctx, query, top)
	if err != nil {
		return nil, err
	}

	entries, err := normalize.Cabys(raw)
	if err != nil {
		return nil, &models.ParseError{
			Preview: models.BodyPreview(string(raw)),
			Err:     err,
		}
	}
	return entries, nil
}

func (s *CabysService) sweepLoop() {
	defer close(s.done)

	ticker := time.NewTicker(s.sessionTTL / 2)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep drops sessions idle past the TTL.
func (s *CabysService) sweep() {
	cutoff := time.Now().Add(-s.sessionTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		if sess.lastUsed.Before(cutoff) {
			delete(s.sessions, id)
			s.logger.Debug("cabys session expired", zap.String("session", id))
		}
	}
}
