package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/consultacr/app-fiscal/internal/logging"
	"github.com/consultacr/app-fiscal/internal/models"
	"github.com/consultacr/app-fiscal/internal/normalize"
	"github.com/consultacr/app-fiscal/internal/utils"
	"go.uber.org/zap"
)

// CedulaLookupClient is the slice of the civil-registry client the cédula
// service needs.
type CedulaLookupClient interface {
	LookupCedula(ctx context.Context, query string) (json.RawMessage, error)
}

// CedulaService handles civil-registry lookups by cédula or name.
type CedulaService struct {
	client CedulaLookupClient
	logger *logging.SafeLogger

	mu        sync.RWMutex
	last      *models.IdentityResult
	lastError string
}

// NewCedulaService creates the cédula query controller.
func NewCedulaService(client CedulaLookupClient) *CedulaService {
	return &CedulaService{
		client: client,
		logger: logging.NewSafeLogger("cedula_service"),
	}
}

// Lookup resolves registry matches for a cédula or a name. A query that
// looks like an identification number is canonicalized to digits first;
// anything else is passed through as a name search.
func (s *CedulaService) Lookup(ctx context.Context, query string) (*models.IdentityResult, error) {
	ctx, span := utils.TraceBusinessLogic(ctx, "cedula_lookup")
	defer span.End()

	query = strings.TrimSpace(query)
	if query == "" {
		err := &models.ValidationError{Field: "query", Message: "la consulta no puede estar vacía"}
		s.fail(err)
		return nil, err
	}
	if utils.ValidateIdentification(query) {
		query = utils.ExtractDigits(query)
	}

	raw, err := s.client.LookupCedula(ctx, query)
	if err != nil {
		s.logger.Warn("cedula lookup failed", zap.Error(err))
		s.fail(err)
		return nil, err
	}

	result := normalize.Identity(raw)
	s.store(&result)

	s.logger.Info("cedula lookup completed", zap.Int("matches", len(result.Items)))
	return &result, nil
}

// Current returns the domain's stored result and error message.
func (s *CedulaService) Current() (*models.IdentityResult, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.lastError
}

func (s *CedulaService) store(result *models.IdentityResult) {
	s.mu.Lock()
	s.last = result
	s.lastError = ""
	s.mu.Unlock()
}

func (s *CedulaService) fail(err error) {
	s.mu.Lock()
	s.last = nil
	s.lastError = fmt.Sprintf("consulta de cédula fallida: %v", err)
	s.mu.Unlock()
}
