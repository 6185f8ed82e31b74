package normalize

import (
	"encoding/json"
	"strings"

	"github.com/consultacr/app-fiscal/internal/models"
	"github.com/consultacr/app-fiscal/internal/utils"
)

// aePayload mirrors the AE registry response closely enough to decode it;
// everything loosely typed goes through interface mapping afterwards.
type aePayload struct {
	Nombre         string `json:"nombre"`
	Identificacion string `json:"identificacion"`
	Regimen        struct {
		Codigo      json.Number `json:"codigo"`
		Descripcion string      `json:"descripcion"`
	} `json:"regimen"`
	Situacion struct {
		Estado                   string `json:"estado"`
		Moroso                   string `json:"moroso"`
		Omiso                    string `json:"omiso"`
		AdministracionTributaria string `json:"administracionTributaria"`
	} `json:"situacion"`
	Actividades []struct {
		Codigo      string `json:"codigo"`
		Descripcion string `json:"descripcion"`
		Tipo        string `json:"tipo"`
		Estado      string `json:"estado"`
	} `json:"actividades"`
}

// Taxpayer maps a raw AE registry payload into a TaxpayerRecord. The
// canonical identification is taken from the body; the caller's input only
// fills in when the body omits it.
func Taxpayer(raw json.RawMessage, queriedID string) (models.TaxpayerRecord, error) {
	var payload aePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return models.TaxpayerRecord{}, err
	}

	identification := utils.ExtractDigits(payload.Identificacion)
	if identification == "" {
		identification = utils.ExtractDigits(queriedID)
	}

	record := models.TaxpayerRecord{
		Identification: identification,
		Name:           strings.TrimSpace(payload.Nombre),
		Regime:         payload.Regimen.Descripcion,
		Status: models.TaxpayerStatus{
			Estado:                   payload.Situacion.Estado,
			Moroso:                   payload.Situacion.Moroso,
			Omiso:                    payload.Situacion.Omiso,
			AdministracionTributaria: payload.Situacion.AdministracionTributaria,
		},
		Activities: make([]models.ActivityRecord, 0, len(payload.Actividades)),
	}

	for _, a := range payload.Actividades {
		record.Activities = append(record.Activities, models.ActivityRecord{
			Code:        a.Codigo,
			Description: a.Descripcion,
			Kind:        activityKind(a.Tipo),
			State:       activityState(a.Estado),
		})
	}

	return record, nil
}

// The registry encodes activity kind as P/S and state as A/I.
func activityKind(tipo string) models.ActivityKind {
	if strings.EqualFold(strings.TrimSpace(tipo), "P") {
		return models.ActivityPrincipal
	}
	return models.ActivitySecondary
}

func activityState(estado string) models.ActivityState {
	if strings.EqualFold(strings.TrimSpace(estado), "A") {
		return models.ActivityActive
	}
	return models.ActivityInactive
}
