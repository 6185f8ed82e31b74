package normalize

import (
	"encoding/json"

	"github.com/consultacr/app-fiscal/internal/models"
)

type cabysPayload struct {
	Cabys []struct {
		Codigo      string      `json:"codigo"`
		Descripcion string      `json:"descripcion"`
		Impuesto    json.Number `json:"impuesto"`
	} `json:"cabys"`
}

// Cabys decodes the CABYS search response into display entries. The
// impuesto field arrives as number or numeric string depending on the
// upstream version.
func Cabys(raw json.RawMessage) ([]models.CabysEntry, error) {
	var payload cabysPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}

	entries := make([]models.CabysEntry, 0, len(payload.Cabys))
	for _, item := range payload.Cabys {
		rate, _ := item.Impuesto.Float64()
		entries = append(entries, models.CabysEntry{
			Code:        item.Codigo,
			Description: item.Descripcion,
			TaxRate:     rate,
		})
	}

	return entries, nil
}
