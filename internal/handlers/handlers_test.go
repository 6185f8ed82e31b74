package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/consultacr/app-fiscal/internal/models"
	"github.com/consultacr/app-fiscal/internal/poller"
	"github.com/consultacr/app-fiscal/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeHacienda struct {
	ae       json.RawMessage
	aeErr    error
	cabys    json.RawMessage
	cabysErr error
	rate     json.RawMessage
	rateErr  error
}

func (f *fakeHacienda) LookupAE(ctx context.Context, identification string) (json.RawMessage, error) {
	return f.ae, f.aeErr
}

func (f *fakeHacienda) SearchCabys(ctx context.Context, query string, top int) (json.RawMessage, error) {
	return f.cabys, f.cabysErr
}

func (f *fakeHacienda) ExchangeRate(ctx context.Context) (json.RawMessage, error) {
	return f.rate, f.rateErr
}

type fakeGometa struct {
	payload json.RawMessage
	err     error
}

func (f *fakeGometa) LookupCedula(ctx context.Context, query string) (json.RawMessage, error) {
	return f.payload, f.err
}

const aePayload = `{
	"nombre": "COMERCIAL LA CEIBA S.A.",
	"identificacion": "3101123456",
	"regimen": {"codigo": 1, "descripcion": "Régimen Tradicional"},
	"situacion": {"estado": "Inscrito", "moroso": "NO", "omiso": "NO", "administracionTributaria": "San José"},
	"actividades": [
		{"codigo": "471101", "descripcion": "Venta al por menor", "tipo": "P", "estado": "A"}
	]
}`

func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAELookupReturnsRecord(t *testing.T) {
	service := services.NewAEService(&fakeHacienda{ae: json.RawMessage(aePayload)}, services.NewResponseCache(nil), time.Minute)
	h := NewAEHandlers(service)

	router := gin.New()
	router.GET("/ae/:id", h.Lookup)

	w := performJSON(router, http.MethodGet, "/ae/3101123456", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var record models.TaxpayerRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, "3101123456", record.Identification)
	assert.Equal(t, "COMERCIAL LA CEIBA S.A.", record.Name)
	require.Len(t, record.Activities, 1)
	assert.Equal(t, models.ActivityPrincipal, record.Activities[0].Kind)
}

func TestAELookupRejectsBadIdentification(t *testing.T) {
	upstream := &fakeHacienda{ae: json.RawMessage(aePayload)}
	service := services.NewAEService(upstream, services.NewResponseCache(nil), time.Minute)
	h := NewAEHandlers(service)

	router := gin.New()
	router.GET("/ae/:id", h.Lookup)

	w := performJSON(router, http.MethodGet, "/ae/12345", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "dígitos")
}

func TestAELookupMapsUpstreamErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"http error", &models.HTTPError{Status: 500}, http.StatusBadGateway},
		{"network error", &models.NetworkError{Err: errors.New("dial timeout")}, http.StatusGatewayTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := services.NewAEService(&fakeHacienda{aeErr: tt.err}, services.NewResponseCache(nil), time.Minute)
			h := NewAEHandlers(service)

			router := gin.New()
			router.GET("/ae/:id", h.Lookup)

			w := performJSON(router, http.MethodGet, "/ae/3101123456", nil)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestAEActivityRowsExport(t *testing.T) {
	service := services.NewAEService(&fakeHacienda{ae: json.RawMessage(aePayload)}, services.NewResponseCache(nil), time.Minute)
	h := NewAEHandlers(service)

	router := gin.New()
	router.GET("/ae/:id/rows", h.ActivityRows)

	w := performJSON(router, http.MethodGet, "/ae/3101123456/rows", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp RowsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.ActivityExportColumns, resp.Columns)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "471101", resp.Rows[0][0])
}

func TestCedulaLookupReturnsItems(t *testing.T) {
	payload := json.RawMessage(`{"results": [{"cedula": "1-0234-0567", "fullname": "MARIA PEREZ"}]}`)
	service := services.NewCedulaService(&fakeGometa{payload: payload})
	h := NewCedulaHandlers(service)

	router := gin.New()
	router.GET("/cedula/:query", h.Lookup)

	w := performJSON(router, http.MethodGet, "/cedula/102340567", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result models.IdentityResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result.Items, 1)
	assert.Equal(t, "MARIA PEREZ", result.Items[0].Nombre)
}

func TestCedulaLookupRejectsBlankQuery(t *testing.T) {
	service := services.NewCedulaService(&fakeGometa{payload: json.RawMessage(`[]`)})
	h := NewCedulaHandlers(service)

	router := gin.New()
	router.GET("/cedula/:query", h.Lookup)

	w := performJSON(router, http.MethodGet, "/cedula/%20%20", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func cabysPayload(n int) json.RawMessage {
	entries := make([]map[string]interface{}, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, map[string]interface{}{
			"codigo":      "0101" + string(rune('0'+i%10)),
			"descripcion": "Producto",
			"impuesto":    13,
		})
	}
	encoded, _ := json.Marshal(map[string]interface{}{"cabys": entries})
	return encoded
}

func newCabysRouter(t *testing.T, upstream services.CabysSearchClient) *gin.Engine {
	t.Helper()

	service := services.NewCabysService(upstream, time.Minute)
	t.Cleanup(service.Close)

	h := NewCabysHandlers(service)
	router := gin.New()
	router.POST("/cabys/search", h.Search)
	router.POST("/cabys/next", h.NextPage)
	router.POST("/cabys/prev", h.PrevPage)
	router.GET("/cabys/page", h.Page)
	router.GET("/cabys/rows", h.Rows)
	return router
}

func TestCabysSearchAndPaging(t *testing.T) {
	router := newCabysRouter(t, &fakeHacienda{cabys: cabysPayload(20)})

	w := performJSON(router, http.MethodPost, "/cabys/search", SearchRequest{SessionID: "tab-1", Query: "arroz"})
	require.Equal(t, http.StatusOK, w.Code)

	var page models.CabysPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 0, page.PageIndex)
	assert.Len(t, page.Entries, 10)
	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrev)

	w = performJSON(router, http.MethodPost, "/cabys/next", PageRequest{SessionID: "tab-1"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 1, page.PageIndex)
	assert.True(t, page.HasPrev)

	w = performJSON(router, http.MethodPost, "/cabys/prev", PageRequest{SessionID: "tab-1"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 0, page.PageIndex)
}

func TestCabysSearchRequiresSessionID(t *testing.T) {
	router := newCabysRouter(t, &fakeHacienda{cabys: cabysPayload(3)})

	w := performJSON(router, http.MethodPost, "/cabys/search", map[string]string{"query": "arroz"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCabysPageReportsLastError(t *testing.T) {
	router := newCabysRouter(t, &fakeHacienda{cabysErr: &models.HTTPError{Status: 503}})

	w := performJSON(router, http.MethodPost, "/cabys/search", SearchRequest{SessionID: "tab-1", Query: "arroz"})
	assert.Equal(t, http.StatusBadGateway, w.Code)

	w = performJSON(router, http.MethodGet, "/cabys/page?session_id=tab-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var state PageStateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Empty(t, state.Page.Entries)
	assert.Contains(t, state.LastError, "CABYS")
}

func TestCabysRowsExport(t *testing.T) {
	router := newCabysRouter(t, &fakeHacienda{cabys: cabysPayload(4)})

	w := performJSON(router, http.MethodPost, "/cabys/search", SearchRequest{SessionID: "tab-1", Query: "arroz"})
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(router, http.MethodGet, "/cabys/rows?session_id=tab-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp RowsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.CabysExportColumns, resp.Columns)
	assert.Len(t, resp.Rows, 4)
}

func TestExchangeRateEndpoint(t *testing.T) {
	upstream := &fakeHacienda{rate: json.RawMessage(`{"compra": 512.34, "venta": 519.01, "fecha": "2024-03-05T00:00:00"}`)}
	service := services.NewExchangeService(upstream, services.NewResponseCache(nil), time.Minute)
	h := NewExchangeHandlers(service)

	router := gin.New()
	router.GET("/exchange-rate", h.Get)

	w := performJSON(router, http.MethodGet, "/exchange-rate", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rate models.ExchangeRate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rate))
	assert.InDelta(t, 512.34, rate.Buy, 0.001)
	assert.Equal(t, "05/03/2024", rate.Date)
}

func TestStatusEndpoints(t *testing.T) {
	p := poller.New(func(ctx context.Context) (time.Duration, error) {
		return 42 * time.Millisecond, nil
	}, time.Hour)

	h := NewStatusHandlers(p)
	router := gin.New()
	router.GET("/upstream/status", h.Last)
	router.POST("/upstream/status/check", h.Check)

	w := performJSON(router, http.MethodPost, "/upstream/status/check", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var health models.APIHealth
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.True(t, health.OK)
	assert.Equal(t, int64(42), health.LatencyMS)

	w = performJSON(router, http.MethodGet, "/upstream/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.True(t, health.OK)
}

func TestHealthCheck(t *testing.T) {
	router := gin.New()
	router.GET("/health", HealthCheck)

	w := performJSON(router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "app-fiscal")
}
