package reader

import (
	"bytes"
	"path/filepath"
	"strconv"

	"github.com/ukaji3/exsheet-go/pkg/exsheet/models"
	"github.com/xuri/excelize/v2"
)

// ReadFile opens an xlsx file and reads every sheet.
func ReadFile(path string) (*models.WorkbookData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readWorkbook(f, filepath.Base(path))
}

// ReadBytes reads every sheet of an xlsx document held in memory.
func ReadBytes(data []byte, bookName string) (*models.WorkbookData, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readWorkbook(f, bookName)
}

func readWorkbook(f *excelize.File, bookName string) (*models.WorkbookData, error) {
	wb := &models.WorkbookData{BookName: bookName}
	for _, sheetName := range f.GetSheetList() {
		sheet, err := ReadSheet(f, sheetName)
		if err != nil {
			return nil, err
		}
		wb.Sheets = append(wb.Sheets, *sheet)
	}
	return wb, nil
}

// ReadSheet reads the rows, column widths and merged ranges of a sheet.
func ReadSheet(f *excelize.File, sheetName string) (*models.SheetData, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	sheet := &models.SheetData{
		Name:      sheetName,
		Rows:      cellRows(rows),
		UsedRange: UsedRange(rows),
	}

	cols, err := f.GetCols(sheetName)
	if err != nil {
		return nil, err
	}
	for i := range cols {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		w, err := f.GetColWidth(sheetName, name)
		if err != nil {
			return nil, err
		}
		if sheet.Widths == nil {
			sheet.Widths = make(map[string]float64)
		}
		sheet.Widths[name] = w
	}

	merged, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}
	for _, mc := range merged {
		sheet.MergedRanges = append(sheet.MergedRanges, mc.GetStartAxis()+":"+mc.GetEndAxis())
	}
	return sheet, nil
}

// cellRows keeps the non-empty rows of rows, keyed by 1-based column index.
func cellRows(rows [][]string) []models.CellRow {
	var result []models.CellRow
	for rowIdx, row := range rows {
		cellMap := make(map[string]interface{})
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellMap[strconv.Itoa(colIdx+1)] = parseValue(cellValue)
		}

		if len(cellMap) > 0 {
			result = append(result, models.CellRow{R: rowIdx + 1, C: cellMap})
		}
	}
	return result
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
