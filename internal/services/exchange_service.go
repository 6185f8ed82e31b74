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
	"github.com/consultacr/app-fiscal/internal/utils"
	"go.uber.org/zap"
)

const exchangeCacheKey = "exchange:tc"

// ExchangeRateClient is the slice of the Hacienda client the exchange
// service needs.
type ExchangeRateClient interface {
	ExchangeRate(ctx context.Context) (json.RawMessage, error)
}

// ExchangeService refreshes the display-only colón/dólar reference rate.
type ExchangeService struct {
	client   ExchangeRateClient
	cache    *ResponseCache
	cacheTTL time.Duration
	logger   *logging.SafeLogger

	mu        sync.RWMutex
	last      *models.ExchangeRate
	lastError string
}

// NewExchangeService creates the exchange-rate query controller.
func NewExchangeService(client ExchangeRateClient, cache *ResponseCache, cacheTTL time.Duration) *ExchangeService {
	return &ExchangeService{
		client:   client,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logging.NewSafeLogger("exchange_service"),
	}
}

// Get returns the current reference rate, served from the short-TTL cache
// when fresh.
func (s *ExchangeService) Get(ctx context.Context) (*models.ExchangeRate, error) {
	ctx, span := utils.TraceBusinessLogic(ctx, "exchange_rate")
	defer span.End()

	var cached models.ExchangeRate
	if s.cache.GetJSON(ctx, exchangeCacheKey, &cached) {
		s.store(&cached)
		return &cached, nil
	}

	raw, err := s.client.ExchangeRate(ctx)
	if err != nil {
		s.logger.Warn("exchange rate fetch failed", zap.Error(err))
		s.fail(err)
		return nil, err
	}

	rate, err := normalize.Exchange(raw)
	if err != nil {
		parseErr := &models.ParseError{
			Preview: models.BodyPreview(string(raw)),
			Err:     err,
		}
		s.fail(parseErr)
		return nil, parseErr
	}

	s.cache.SetJSON(ctx, exchangeCacheKey, rate, s.cacheTTL)
	s.store(&rate)

	s.logger.Debug("exchange rate refreshed",
		zap.Float64("compra", rate.Buy),
		zap.Float64("venta", rate.Sell),
	)

	return &rate, nil
}

// Current returns the domain's stored result and error message.
func (s *ExchangeService) Current() (*models.ExchangeRate, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.lastError
}

func (s *ExchangeService) store(rate *models.ExchangeRate) {
	s.mu.Lock()
	s.last = rate
	s.lastError = ""
	s.mu.Unlock()
}

func (s *ExchangeService) fail(err error) {
	s.mu.Lock()
	s.last = nil
	s.lastError = fmt.Sprintf("tipo de cambio no disponible: %v", err)
	s.mu.Unlock()
}
