package handlers

import (
	"net/http"

	"github.com/consultacr/app-fiscal/internal/logging"
	"github.com/consultacr/app-fiscal/internal/services"
	"github.com/gin-gonic/gin"
)

// ExchangeHandlers handles exchange rate requests
type ExchangeHandlers struct {
	service *services.ExchangeService
	logger  *logging.SafeLogger
}

// NewExchangeHandlers creates a new exchange handlers instance
func NewExchangeHandlers(service *services.ExchangeService) *ExchangeHandlers {
	return &ExchangeHandlers{
		service: service,
		logger:  logging.NewSafeLogger("exchange_handlers"),
	}
}

// Get godoc
// @Summary Tipo de cambio del día
// @Description Obtiene compra, venta y fecha del tipo de cambio publicado por Hacienda
// @Tags exchange
// @Produce json
// @Success 200 {object} models.ExchangeRate "Tipo de cambio"
// @Failure 502 {object} ErrorResponse "Error del API de Hacienda"
// @Failure 504 {object} ErrorResponse "Hacienda no responde"
// @Router /exchange-rate [get]
func (h *ExchangeHandlers) Get(c *gin.Context) {
	rate, err := h.service.Get(c.Request.Context())
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, rate)
}
