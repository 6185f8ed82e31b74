package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck godoc
// @Summary Verificación de salud del servicio
// @Description Indica si el servicio está operativo
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "Servicio operativo"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "app-fiscal",
	})
}
