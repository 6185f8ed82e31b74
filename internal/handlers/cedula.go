package handlers

import (
	"net/http"

	"github.com/consultacr/app-fiscal/internal/logging"
	"github.com/consultacr/app-fiscal/internal/models"
	"github.com/consultacr/app-fiscal/internal/services"
	"github.com/gin-gonic/gin"
)

// CedulaHandlers handles civil-registry lookup HTTP requests
type CedulaHandlers struct {
	service *services.CedulaService
	logger  *logging.SafeLogger
}

// NewCedulaHandlers creates a new cédula handlers instance
func NewCedulaHandlers(service *services.CedulaService) *CedulaHandlers {
	return &CedulaHandlers{
		service: service,
		logger:  logging.NewSafeLogger("cedula_handlers"),
	}
}

// Lookup godoc
// @Summary Consultar cédula
// @Description Busca en el registro civil por número de cédula o por nombre
// @Tags cedula
// @Produce json
// @Param query path string true "Cédula o nombre"
// @Success 200 {object} models.IdentityResult "Coincidencias normalizadas"
// @Failure 400 {object} ErrorResponse "Consulta vacía"
// @Failure 502 {object} ErrorResponse "Error del servicio de cédulas"
// @Router /cedula/{query} [get]
func (h *CedulaHandlers) Lookup(c *gin.Context) {
	result, err := h.service.Lookup(c.Request.Context(), c.Param("query"))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Rows godoc
// @Summary Exportar coincidencias de cédula
// @Description Devuelve las coincidencias como filas con orden de columnas fijo
// @Tags cedula
// @Produce json
// @Param query path string true "Cédula o nombre"
// @Success 200 {object} handlers.RowsResponse "Filas de exportación"
// @Failure 400 {object} ErrorResponse "Consulta vacía"
// @Failure 502 {object} ErrorResponse "Error del servicio de cédulas"
// @Router /cedula/{query}/rows [get]
func (h *CedulaHandlers) Rows(c *gin.Context) {
	result, err := h.service.Lookup(c.Request.Context(), c.Param("query"))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, RowsResponse{
		Columns: models.IdentityExportColumns,
		Rows:    result.ExportRows(),
	})
}
