package models

// WorkbookData represents a workbook read back from an xlsx file.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists the sheets in workbook order.
	Sheets []SheetData `json:"sheets"`
}
