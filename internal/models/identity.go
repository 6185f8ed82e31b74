package models

import "encoding/json"

// IdentityRecord is one normalized civil-registry match. The upstream
// schemas vary per query type, so every attribute is resolved through
// field-alias tables; Extra keeps the original element untouched.
type IdentityRecord struct {
	ID     string          `json:"id"`
	Cedula string          `json:"cedula"`
	Nombre string          `json:"nombre"`
	Tipo   string          `json:"tipo"`
	Extra  json.RawMessage `json:"extra,omitempty"`
}

// IdentityResult carries the normalized matches together with the raw
// payload they came from.
type IdentityResult struct {
	Items []IdentityRecord `json:"items"`
	Raw   json.RawMessage  `json:"raw,omitempty"`
}

// IdentityExportColumns is the fixed column order for cédula lookup rows.
var IdentityExportColumns = []string{"Cédula", "Nombre", "Tipo"}

// ExportRows renders the match list as opaque row/column data.
func (r *IdentityResult) ExportRows() [][]string {
	rows := make([][]string, 0, len(r.Items))
	for _, it := range r.Items {
		rows = append(rows, []string{it.Cedula, it.Nombre, it.Tipo})
	}
	return rows
}
