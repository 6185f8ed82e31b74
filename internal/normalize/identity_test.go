package normalize

import (
	"encoding/json"
	"testing"

	"github.com/consultacr/app-fiscal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityResultsWrapper(t *testing.T) {
	raw := json.RawMessage(`{"results":[{"cedula":"1-2","fullname":"A"}]}`)

	result := Identity(raw)

	require.Len(t, result.Items, 1)
	item := result.Items[0]
	assert.Equal(t, "1-2", item.ID)
	assert.Equal(t, "1-2", item.Cedula)
	assert.Equal(t, "A", item.Nombre)
	assert.Equal(t, "", item.Tipo)
}

func TestIdentityWrapperWithVariantFieldNames(t *testing.T) {
	raw := json.RawMessage(`{"results":[
		{"cedula_numero":"109870654","nombre":"MARIA PEREZ","tipo":"FISICA"},
		{"id":7,"name":"ACME SA","type":"JURIDICA"}
	]}`)

	result := Identity(raw)

	require.Len(t, result.Items, 2)
	assert.Equal(t, "109870654", result.Items[0].ID)
	assert.Equal(t, "109870654", result.Items[0].Cedula)
	assert.Equal(t, "MARIA PEREZ", result.Items[0].Nombre)
	assert.Equal(t, "FISICA", result.Items[0].Tipo)

	assert.Equal(t, "7", result.Items[1].ID)
	assert.Equal(t, "", result.Items[1].Cedula)
	assert.Equal(t, "ACME SA", result.Items[1].Nombre)
	assert.Equal(t, "JURIDICA", result.Items[1].Tipo)
}

func TestIdentityBareArray(t *testing.T) {
	raw := json.RawMessage(`[{"cedula":"3101123456","nombre":"EMPRESA X"},{"nombre":"SIN CEDULA"}]`)

	result := Identity(raw)

	require.Len(t, result.Items, 2)
	assert.Equal(t, "3101123456", result.Items[0].ID)
	assert.Equal(t, "EMPRESA X", result.Items[0].Nombre)
	// No identifier anywhere: the positional index keeps it addressable.
	assert.Equal(t, "1", result.Items[1].ID)
}

func TestIdentityEmptyArray(t *testing.T) {
	result := Identity(json.RawMessage(`[]`))
	assert.Empty(t, result.Items)
	assert.NotNil(t, result.Items)
}

func TestIdentitySingleObject(t *testing.T) {
	raw := json.RawMessage(`{"cedula":"109870654","nombre":"MARIA PEREZ","tipo":"FISICA"}`)

	result := Identity(raw)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "109870654", result.Items[0].Cedula)
	assert.Equal(t, "MARIA PEREZ", result.Items[0].Nombre)
}

func TestIdentityEmptyObjectFiltered(t *testing.T) {
	// An empty object must not surface as a phantom single result.
	result := Identity(json.RawMessage(`{}`))
	assert.Empty(t, result.Items)
}

func TestIdentityObjectWithOnlyMetadataFiltered(t *testing.T) {
	result := Identity(json.RawMessage(`{"status":"ok","count":0}`))
	assert.Empty(t, result.Items)
}

func TestIdentityKeepsRawAndExtra(t *testing.T) {
	raw := json.RawMessage(`{"results":[{"cedula":"1-2","fullname":"A","telefono":"2222-0000"}]}`)

	result := Identity(raw)

	assert.Equal(t, raw, result.Raw)
	require.Len(t, result.Items, 1)

	var extra map[string]interface{}
	require.NoError(t, json.Unmarshal(result.Items[0].Extra, &extra))
	assert.Equal(t, "2222-0000", extra["telefono"])
}

func TestIdentityMalformedPayload(t *testing.T) {
	result := Identity(json.RawMessage(`"just a string"`))
	assert.Empty(t, result.Items)
}

func TestIdentityExportRows(t *testing.T) {
	result := models.IdentityResult{Items: []models.IdentityRecord{
		{Cedula: "1-2", Nombre: "A", Tipo: "FISICA"},
	}}
	assert.Equal(t, [][]string{{"1-2", "A", "FISICA"}}, result.ExportRows())
	assert.Equal(t, []string{"Cédula", "Nombre", "Tipo"}, models.IdentityExportColumns)
}
