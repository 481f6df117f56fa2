// Package assemble lays out sheet descriptions on an excelize file: title
// row, header row, data rows and finally column widths.
package assemble

import (
	"strings"
	"time"

	"github.com/ukaji3/exsheet-go/pkg/exsheet/models"
	"github.com/ukaji3/exsheet-go/pkg/exsheet/reader"
	"github.com/ukaji3/exsheet-go/pkg/exsheet/rows"
	"github.com/ukaji3/exsheet-go/pkg/exsheet/style"
	"github.com/ukaji3/exsheet-go/pkg/exsheet/width"
	"github.com/xuri/excelize/v2"
)

// DefaultMergeRange is the title merge range used when none is given.
const DefaultMergeRange = "A1:E1"

// dateTimeNumFmt is the builtin "m/d/yy h:mm" number format.
const dateTimeNumFmt = 22

// Config holds the column sizing parameters.
type Config struct {
	MinWidth  float64
	MaxWidth  float64
	Estimator width.Estimator
}

// DefaultConfig returns the default sizing parameters.
func DefaultConfig() Config {
	return Config{
		MinWidth:  width.MinWidth,
		MaxWidth:  width.MaxWidth,
		Estimator: width.Estimator{Ratio: width.LengthCorrectionRatio},
	}
}

// Assembler writes sheets into one excelize file. It is not safe for
// concurrent use; each build owns its own Assembler.
type Assembler struct {
	file   *excelize.File
	cfg    Config
	styles *style.Registry
	// names holds the lower-cased names of sheets already assembled.
	names  map[string]bool
}

// New returns an Assembler writing into f.
func New(f *excelize.File, cfg Config) *Assembler {
	return &Assembler{
		file:   f,
		cfg:    cfg,
		styles: style.NewRegistry(f),
		names:  make(map[string]bool),
	}
}

// sheetState is the per-sheet cursor and width table.
type sheetState struct {
	spec     models.SheetSpec
	row      int
	widths   *width.Table
	explicit bool
}

// Assemble adds spec as a new sheet. Rows are written in the order title,
// header, data; column widths are committed last. A name already used by an
// earlier Assemble call is rejected with ErrDuplicateSheet; sheets the file
// held before (such as the placeholder of a new file) may be claimed.
func (a *Assembler) Assemble(spec models.SheetSpec) error {
	key := strings.ToLower(spec.SheetName)
	if a.names[key] {
		return newError(spec.SheetName, "sheet", ErrDuplicateSheet)
	}
	if _, err := a.file.NewSheet(spec.SheetName); err != nil {
		return newError(spec.SheetName, "sheet", err)
	}
	a.names[key] = true

	s := &sheetState{
		spec:     spec,
		widths:   width.NewTable(a.cfg.MinWidth, a.cfg.MaxWidth),
		explicit: spec.Widths != nil,
	}

	if spec.TitleRow != nil {
		if err := a.writeTitle(s); err != nil {
			return newError(spec.SheetName, "title", err)
		}
	}

	if len(spec.Headers) > 0 {
		if err := a.writeRow(s, stringsToCells(spec.Headers), style.RoleHeader, spec.HeaderStyle); err != nil {
			return newError(spec.SheetName, "header", err)
		}
	}

	for _, item := range spec.Data {
		cells := rows.Normalize(item, spec.Headers)
		if err := a.writeRow(s, cells, style.RoleData, spec.DataStyle); err != nil {
			return newError(spec.SheetName, "data", err)
		}
	}

	if err := a.commitWidths(s); err != nil {
		return newError(spec.SheetName, "widths", err)
	}
	return nil
}

func (a *Assembler) writeTitle(s *sheetState) error {
	title := s.spec.TitleRow
	s.row++

	mergeRange := title.MergeRange
	if mergeRange == "" {
		mergeRange = DefaultMergeRange
	}
	rng, err := reader.ParseRange(mergeRange)
	if err != nil {
		return err
	}

	cell := a.newCell(s, 1, title.Title)
	style.Apply(cell, style.RoleTitle, title.Style)
	if err := a.writeCell(cell); err != nil {
		return err
	}

	if err := a.file.MergeCell(s.spec.SheetName, rng.TopLeft(), rng.BottomRight()); err != nil {
		return err
	}
	id, err := a.styles.ID(cell.Style)
	if err != nil {
		return err
	}
	return a.file.SetCellStyle(s.spec.SheetName, rng.TopLeft(), rng.BottomRight(), id)
}

// writeRow appends one row, styling each cell and feeding its text width to
// the sheet's width table unless explicit widths are set.
func (a *Assembler) writeRow(s *sheetState, values []interface{}, role style.Role, override models.StyleFn) error {
	s.row++
	for i, value := range values {
		col := i + 1
		cell := a.newCell(s, col, value)
		style.Apply(cell, role, override)
		if err := a.writeCell(cell); err != nil {
			return err
		}
		if !s.explicit {
			s.widths.Update(col, a.cfg.Estimator.Estimate(rows.Text(cell.Value)))
		}
	}
	return nil
}

func (a *Assembler) newCell(s *sheetState, col int, value interface{}) *models.Cell {
	axis, _ := excelize.CoordinatesToCellName(col, s.row)
	return &models.Cell{
		Sheet: s.spec.SheetName,
		Axis:  axis,
		Col:   col,
		Row:   s.row,
		Value: value,
	}
}

func (a *Assembler) writeCell(cell *models.Cell) error {
	if _, ok := cell.Value.(time.Time); ok && cell.Style != nil &&
		cell.Style.NumFmt == 0 && cell.Style.CustomNumFmt == nil {
		cell.Style.NumFmt = dateTimeNumFmt
	}

	if err := a.file.SetCellValue(cell.Sheet, cell.Axis, cell.Value); err != nil {
		return err
	}
	id, err := a.styles.ID(cell.Style)
	if err != nil {
		return err
	}
	return a.file.SetCellStyle(cell.Sheet, cell.Axis, cell.Axis, id)
}

// commitWidths writes the explicit widths verbatim, or the aggregated ones.
func (a *Assembler) commitWidths(s *sheetState) error {
	if s.explicit {
		for i, w := range s.spec.Widths {
			if err := a.setColWidth(s.spec.SheetName, i+1, w); err != nil {
				return err
			}
		}
		return nil
	}

	for _, col := range s.widths.Columns() {
		w, _ := s.widths.Width(col)
		if err := a.setColWidth(s.spec.SheetName, col, w); err != nil {
			return err
		}
	}
	return nil
}

func (a *Assembler) setColWidth(sheet string, col int, w float64) error {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return err
	}
	return a.file.SetColWidth(sheet, name, name, w)
}

func stringsToCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
