package models

// CabysEntry is one good/service classification code with its tax rate.
type CabysEntry struct {
	Code        string  `json:"codigo"`
	Description string  `json:"descripcion"`
	TaxRate     float64 `json:"impuesto"`
}

// CabysResultSet is the fetched window for one CABYS query plus the paging
// position inside it. Entries hold the full window returned so far (a
// prefix-growing cache); the visible page is a contiguous slice of it.
type CabysResultSet struct {
	Entries             []CabysEntry `json:"entries"`
	RequestedWindowSize int          `json:"requested_window_size"`
	CurrentPageIndex    int          `json:"current_page_index"`
}

// CabysPage is the view of a result set handed to the presentation layer.
type CabysPage struct {
	Entries   []CabysEntry `json:"entries"`
	PageIndex int          `json:"page_index"`
	PageSize  int          `json:"page_size"`
	HasPrev   bool         `json:"has_prev"`
	HasNext   bool         `json:"has_next"`
	Total     int          `json:"total_fetched"`
}

// CabysExportColumns is the fixed column order for CABYS export rows.
var CabysExportColumns = []string{"Código", "Descripción", "Impuesto"}

// ExportRows renders the full fetched window as opaque row/column data for
// the file-export and clipboard collaborators.
func (rs *CabysResultSet) ExportRows() [][]string {
	rows := make([][]string, 0, len(rs.Entries))
	for _, e := range rs.Entries {
		rows = append(rows, []string{e.Code, e.Description, formatRate(e.TaxRate)})
	}
	return rows
}
