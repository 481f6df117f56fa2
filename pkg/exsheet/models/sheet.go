package models

// StyleFn applies visual attributes to the cell it is given. A nil StyleFn
// means only the default style applies.
type StyleFn func(cell *Cell)

// TitleRowSpec describes the optional merged title row of a sheet.
type TitleRowSpec struct {
	// Title is the title text.
	Title string
	// MergeRange is the merged cell range (default "A1:E1").
	MergeRange string
	// Style overrides the default title style.
	Style StyleFn
}

// SheetSpec describes one sheet of the workbook.
type SheetSpec struct {
	// SheetName is the sheet name, unique within a workbook (compared
	// case-insensitively).
	SheetName string
	// Data holds the data rows in order.
	Data []RowValue
	// TitleRow adds a merged title row when non-nil.
	TitleRow *TitleRowSpec
	// Headers adds a header row and fixes the key order of object rows.
	Headers []string
	// Widths, when non-nil, replaces automatic sizing; widths are
	// index-aligned to columns and applied unclamped. An empty non-nil
	// slice writes no widths at all.
	Widths []float64
	// HeaderStyle overrides the default header style.
	HeaderStyle StyleFn
	// DataStyle overrides the default data style.
	DataStyle StyleFn
}

// HasData reports whether the sheet has at least one data row.
func (s SheetSpec) HasData() bool {
	return len(s.Data) > 0
}

// SheetData represents a sheet read back from a workbook.
type SheetData struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Rows contains non-empty rows with their cell values.
	Rows []CellRow `json:"rows,omitempty"`
	// UsedRange is the range covering every non-empty cell.
	UsedRange string `json:"used_range,omitempty"`
	// Widths maps column letter to column width.
	Widths map[string]float64 `json:"widths,omitempty"`
	// MergedRanges lists merged ranges in A1:B2 notation.
	MergedRanges []string `json:"merged_ranges,omitempty"`
}
