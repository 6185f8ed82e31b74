package normalize

import (
	"encoding/json"
	"testing"

	"github.com/consultacr/app-fiscal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aeSample = `{
	"nombre": "COMERCIALIZADORA DEL ESTE S.A.",
	"identificacion": "3101123456",
	"regimen": {"codigo": 1, "descripcion": "Régimen General"},
	"situacion": {
		"estado": "Inscrito",
		"moroso": "NO",
		"omiso": "NO",
		"administracionTributaria": "San José Este"
	},
	"actividades": [
		{"codigo": "471101", "descripcion": "Venta al por menor", "tipo": "P", "estado": "A"},
		{"codigo": "461001", "descripcion": "Venta al por mayor", "tipo": "S", "estado": "I"}
	]
}`

func TestTaxpayer(t *testing.T) {
	record, err := Taxpayer(json.RawMessage(aeSample), "3-101-123456")
	require.NoError(t, err)

	assert.Equal(t, "3101123456", record.Identification)
	assert.Equal(t, "COMERCIALIZADORA DEL ESTE S.A.", record.Name)
	assert.Equal(t, "Régimen General", record.Regime)
	assert.Equal(t, "Inscrito", record.Status.Estado)
	assert.Equal(t, "NO", record.Status.Moroso)
	assert.Equal(t, "San José Este", record.Status.AdministracionTributaria)

	require.Len(t, record.Activities, 2)
	assert.Equal(t, models.ActivityPrincipal, record.Activities[0].Kind)
	assert.Equal(t, models.ActivityActive, record.Activities[0].State)
	assert.Equal(t, models.ActivitySecondary, record.Activities[1].Kind)
	assert.Equal(t, models.ActivityInactive, record.Activities[1].State)
}

func TestTaxpayerIdentificationFallsBackToQuery(t *testing.T) {
	raw := json.RawMessage(`{"nombre":"SIN IDENTIFICACION"}`)

	record, err := Taxpayer(raw, "1-0987-0654")
	require.NoError(t, err)
	assert.Equal(t, "109870654", record.Identification)
}

func TestTaxpayerBodyIdentificationWins(t *testing.T) {
	raw := json.RawMessage(`{"identificacion":"3101123456"}`)

	record, err := Taxpayer(raw, "999999999")
	require.NoError(t, err)
	assert.Equal(t, "3101123456", record.Identification)
}

func TestTaxpayerMalformedPayload(t *testing.T) {
	_, err := Taxpayer(json.RawMessage(`[]`), "109870654")
	assert.Error(t, err)
}

func TestTaxpayerExportRows(t *testing.T) {
	record, err := Taxpayer(json.RawMessage(aeSample), "")
	require.NoError(t, err)

	rows := record.ExportRows()
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"471101", "Venta al por menor", "Principal", "Activa"}, rows[0])
	assert.Equal(t, []string{"461001", "Venta al por mayor", "Secundaria", "Inactiva"}, rows[1])
}
