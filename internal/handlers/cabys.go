package handlers

import (
	"net/http"

	"github.com/consultacr/app-fiscal/internal/logging"
	"github.com/consultacr/app-fiscal/internal/models"
	"github.com/consultacr/app-fiscal/internal/services"
	"github.com/gin-gonic/gin"
)

// CabysHandlers handles CABYS search HTTP requests. Every request carries a
// session id so the incremental pager can keep per-tab state.
type CabysHandlers struct {
	service *services.CabysService
	logger  *logging.SafeLogger
}

// NewCabysHandlers creates a new CABYS handlers instance
func NewCabysHandlers(service *services.CabysService) *CabysHandlers {
	return &CabysHandlers{
		service: service,
		logger:  logging.NewSafeLogger("cabys_handlers"),
	}
}

// SearchRequest is the body for POST /cabys/search.
type SearchRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Query     string `json:"query"`
	PageSize  int    `json:"page_size"`
	ResetPage bool   `json:"reset_page"`
}

// PageRequest is the body for the paging endpoints.
type PageRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// Search godoc
// @Summary Buscar códigos CABYS
// @Description Ejecuta una búsqueda CABYS y devuelve la primera ventana paginada
// @Tags cabys
// @Accept json
// @Produce json
// @Param request body handlers.SearchRequest true "Parámetros de búsqueda"
// @Success 200 {object} models.CabysPage "Página visible"
// @Failure 400 {object} ErrorResponse "Solicitud inválida"
// @Failure 502 {object} ErrorResponse "Error del API de Hacienda"
// @Router /cabys/search [post]
func (h *CabysHandlers) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	page, err := h.service.Search(c.Request.Context(), req.SessionID, req.Query, req.PageSize, req.ResetPage)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

// NextPage godoc
// @Summary Avanzar página CABYS
// @Description Avanza la sesión una página, ampliando la ventana si hace falta
// @Tags cabys
// @Accept json
// @Produce json
// @Param request body handlers.PageRequest true "Sesión"
// @Success 200 {object} models.CabysPage "Página visible"
// @Failure 400 {object} ErrorResponse "Solicitud inválida"
// @Failure 502 {object} ErrorResponse "Error del API de Hacienda"
// @Router /cabys/next [post]
func (h *CabysHandlers) NextPage(c *gin.Context) {
	var req PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	page, err := h.service.NextPage(c.Request.Context(), req.SessionID)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

// PrevPage godoc
// @Summary Retroceder página CABYS
// @Description Retrocede la sesión una página sin tocar la red
// @Tags cabys
// @Accept json
// @Produce json
// @Param request body handlers.PageRequest true "Sesión"
// @Success 200 {object} models.CabysPage "Página visible"
// @Failure 400 {object} ErrorResponse "Solicitud inválida"
// @Router /cabys/prev [post]
func (h *CabysHandlers) PrevPage(c *gin.Context) {
	var req PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.service.PrevPage(req.SessionID))
}

// Page godoc
// @Summary Página CABYS actual
// @Description Devuelve la página visible y el último error de la sesión, sin efectos
// @Tags cabys
// @Produce json
// @Param session_id query string true "Sesión"
// @Success 200 {object} handlers.PageStateResponse "Estado de la sesión"
// @Failure 400 {object} ErrorResponse "Solicitud inválida"
// @Router /cabys/page [get]
func (h *CabysHandlers) Page(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "session_id is required"})
		return
	}

	page, lastError := h.service.Page(sessionID)
	c.JSON(http.StatusOK, PageStateResponse{Page: page, LastError: lastError})
}

// Rows godoc
// @Summary Exportar resultados CABYS
// @Description Devuelve toda la ventana descargada como filas con orden de columnas fijo
// @Tags cabys
// @Produce json
// @Param session_id query string true "Sesión"
// @Success 200 {object} handlers.RowsResponse "Filas de exportación"
// @Failure 400 {object} ErrorResponse "Solicitud inválida"
// @Router /cabys/rows [get]
func (h *CabysHandlers) Rows(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "session_id is required"})
		return
	}

	columns, rows := h.service.ExportRows(sessionID)
	c.JSON(http.StatusOK, RowsResponse{Columns: columns, Rows: rows})
}

// PageStateResponse is the side-effect-free view of a CABYS session.
type PageStateResponse struct {
	Page      models.CabysPage `json:"page"`
	LastError string           `json:"last_error,omitempty"`
}
