package handlers

import (
	"net/http"

	"github.com/consultacr/app-fiscal/internal/poller"
	"github.com/gin-gonic/gin"
)

// StatusHandlers exposes the upstream health poller state
type StatusHandlers struct {
	poller *poller.Poller
}

// NewStatusHandlers creates a new status handlers instance
func NewStatusHandlers(p *poller.Poller) *StatusHandlers {
	return &StatusHandlers{poller: p}
}

// Last godoc
// @Summary Estado del API de Hacienda
// @Description Devuelve el resultado del último sondeo periódico
// @Tags status
// @Produce json
// @Success 200 {object} models.APIHealth "Último estado conocido"
// @Router /upstream/status [get]
func (h *StatusHandlers) Last(c *gin.Context) {
	c.JSON(http.StatusOK, h.poller.Last())
}

// Check godoc
// @Summary Sondear el API de Hacienda ahora
// @Description Fuerza un sondeo inmediato y devuelve el resultado
// @Tags status
// @Produce json
// @Success 200 {object} models.APIHealth "Estado recién medido"
// @Router /upstream/status/check [post]
func (h *StatusHandlers) Check(c *gin.Context) {
	c.JSON(http.StatusOK, h.poller.CheckNow(c.Request.Context()))
}
