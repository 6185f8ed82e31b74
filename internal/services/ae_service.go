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
	"github.com/consultacr/app-fiscal/internal/utils"
	"go.uber.org/zap"
)

// AELookupClient is the slice of the Hacienda client the AE service needs.
type AELookupClient interface {
	LookupAE(ctx context.Context, identification string) (json.RawMessage, error)
}

// AEService handles taxpayer registry (AE) lookups: validate the
// identification, fetch, normalize, and keep the domain's last outcome.
// Failures clear the stored result and record a human-readable message;
// no other domain is affected.
type AEService struct {
	client   AELookupClient
	cache    *ResponseCache
	cacheTTL time.Duration
	logger   *logging.SafeLogger

	mu        sync.RWMutex
	last      *models.TaxpayerRecord
	lastError string
}

// NewAEService creates the AE query controller.
func NewAEService(client AELookupClient, cache *ResponseCache, cacheTTL time.Duration) *AEService {
	return &AEService{
		client:   client,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logging.NewSafeLogger("ae_service"),
	}
}

// Lookup resolves the registry record for a raw user-typed identification.
func (s *AEService) Lookup(ctx context.Context, rawID string) (*models.TaxpayerRecord, error) {
	ctx, span := utils.TraceBusinessLogic(ctx, "ae_lookup")
	defer span.End()

	if !utils.ValidateIdentification(rawID) {
		err := &models.ValidationError{
			Field:   "identificacion",
			Message: "debe tener 9, 10 u 11 dígitos",
		}
		s.fail(err)
		return nil, err
	}
	identification := utils.ExtractDigits(rawID)

	cacheKey := "ae:" + identification
	var cached models.TaxpayerRecord
	if s.cache.GetJSON(ctx, cacheKey, &cached) {
		s.store(&cached)
		return &cached, nil
	}

	raw, err := s.client.LookupAE(ctx, identification)
	if err != nil {
		s.logger.Warn("AE lookup failed",
			zap.String("identificacion", observability.MaskIdentification(identification)),
			zap.Error(err),
		)
		s.fail(err)
		return nil, err
	}

	record, err := normalize.Taxpayer(raw, identification)
	if err != nil {
		parseErr := &models.ParseError{
			Preview: models.BodyPreview(string(raw)),
			Err:     err,
		}
		s.fail(parseErr)
		return nil, parseErr
	}

	s.cache.SetJSON(ctx, cacheKey, record, s.cacheTTL)
	s.store(&record)

	s.logger.Info("AE lookup completed",
		zap.String("identificacion", observability.MaskIdentification(record.Identification)),
		zap.Int("actividades", len(record.Activities)),
	)

	return &record, nil
}

// Current returns the domain's stored result and error message.
func (s *AEService) Current() (*models.TaxpayerRecord, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.lastError
}

func (s *AEService) store(record *models.TaxpayerRecord) {
	s.mu.Lock()
	s.last = record
	s.lastError = ""
	s.mu.Unlock()
}

func (s *AEService) fail(err error) {
	s.mu.Lock()
	s.last = nil
	s.lastError = fmt.Sprintf("consulta AE fallida: %v", err)
	s.mu.Unlock()
}
