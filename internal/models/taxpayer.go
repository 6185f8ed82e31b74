package models

import "strconv"

// ActivityKind distinguishes a taxpayer's principal economic activity from
// the secondary ones.
type ActivityKind string

const (
	ActivityPrincipal ActivityKind = "Principal"
	ActivitySecondary ActivityKind = "Secundaria"
)

// ActivityState is the registry state of one economic activity.
type ActivityState string

const (
	ActivityActive   ActivityState = "Activa"
	ActivityInactive ActivityState = "Inactiva"
)

// ActivityRecord is one economic activity registered for a taxpayer.
type ActivityRecord struct {
	Code        string        `json:"codigo"`
	Description string        `json:"descripcion"`
	Kind        ActivityKind  `json:"tipo"`
	State       ActivityState `json:"estado"`
}

// TaxpayerStatus is the situación sub-record of an AE response.
type TaxpayerStatus struct {
	Estado                  string `json:"estado"`
	Moroso                  string `json:"moroso"`
	Omiso                   string `json:"omiso"`
	AdministracionTributaria string `json:"administracion_tributaria"`
}

// TaxpayerRecord is the normalized AE registry record for one taxpayer.
// Identification always comes from the response body; the raw user input is
// only used as a fallback when the body omits it.
type TaxpayerRecord struct {
	Identification string           `json:"identificacion"`
	Name           string           `json:"nombre"`
	Regime         string           `json:"regimen"`
	Status         TaxpayerStatus   `json:"situacion"`
	Activities     []ActivityRecord `json:"actividades"`
}

// ActivityExportColumns is the fixed column order for AE activity rows.
var ActivityExportColumns = []string{"Código", "Descripción", "Tipo", "Estado"}

// ExportRows renders the activity list as opaque row/column data.
func (r *TaxpayerRecord) ExportRows() [][]string {
	rows := make([][]string, 0, len(r.Activities))
	for _, a := range r.Activities {
		rows = append(rows, []string{a.Code, a.Description, string(a.Kind), string(a.State)})
	}
	return rows
}

// formatRate renders a tax rate without trailing zero noise.
func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
