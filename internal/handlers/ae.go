package handlers

import (
	"net/http"

	"github.com/consultacr/app-fiscal/internal/logging"
	"github.com/consultacr/app-fiscal/internal/models"
	"github.com/consultacr/app-fiscal/internal/services"
	"github.com/gin-gonic/gin"
)

// AEHandlers handles taxpayer registry (AE) HTTP requests
type AEHandlers struct {
	service *services.AEService
	logger  *logging.SafeLogger
}

// NewAEHandlers creates a new AE handlers instance
func NewAEHandlers(service *services.AEService) *AEHandlers {
	return &AEHandlers{
		service: service,
		logger:  logging.NewSafeLogger("ae_handlers"),
	}
}

// Lookup godoc
// @Summary Consultar situación tributaria
// @Description Recupera el registro de Actividad Económica de un contribuyente por su identificación
// @Tags ae
// @Produce json
// @Param id path string true "Identificación (9, 10 u 11 dígitos)"
// @Success 200 {object} models.TaxpayerRecord "Registro del contribuyente"
// @Failure 400 {object} ErrorResponse "Identificación inválida"
// @Failure 502 {object} ErrorResponse "Error del API de Hacienda"
// @Router /ae/{id} [get]
func (h *AEHandlers) Lookup(c *gin.Context) {
	record, err := h.service.Lookup(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

// ActivityRows godoc
// @Summary Exportar actividades económicas
// @Description Devuelve las actividades del contribuyente como filas con orden de columnas fijo
// @Tags ae
// @Produce json
// @Param id path string true "Identificación (9, 10 u 11 dígitos)"
// @Success 200 {object} handlers.RowsResponse "Filas de exportación"
// @Failure 400 {object} ErrorResponse "Identificación inválida"
// @Failure 502 {object} ErrorResponse "Error del API de Hacienda"
// @Router /ae/{id}/rows [get]
func (h *AEHandlers) ActivityRows(c *gin.Context) {
	record, err := h.service.Lookup(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, RowsResponse{
		Columns: models.ActivityExportColumns,
		Rows:    record.ExportRows(),
	})
}

// RowsResponse is tabular row/column data for the export collaborators.
type RowsResponse struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}
