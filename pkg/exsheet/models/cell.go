// Package models defines the sheet descriptions accepted by exsheet and the
// structures it reports back.
package models

import "github.com/xuri/excelize/v2"

// Cell is the mutable handle passed to style functions. Value and Style are
// written to the sheet after the default style and any override have run.
type Cell struct {
	// Sheet is the owning sheet name.
	Sheet string
	// Axis is the cell reference (e.g. "B3").
	Axis string
	// Col is the column index (1-based).
	Col int
	// Row is the row index (1-based).
	Row int
	// Value is the cell value.
	Value interface{}
	// Style holds the visual attributes; never nil once handed to a StyleFn.
	Style *excelize.Style
}

// Font returns the cell font, allocating it when unset.
func (c *Cell) Font() *excelize.Font {
	c.ensureStyle()
	if c.Style.Font == nil {
		c.Style.Font = &excelize.Font{}
	}
	return c.Style.Font
}

// Alignment returns the cell alignment, allocating it when unset.
func (c *Cell) Alignment() *excelize.Alignment {
	c.ensureStyle()
	if c.Style.Alignment == nil {
		c.Style.Alignment = &excelize.Alignment{}
	}
	return c.Style.Alignment
}

// SetFill sets a solid pattern fill with the given RGB hex color.
func (c *Cell) SetFill(color string) {
	c.ensureStyle()
	c.Style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

// SetBorder sets the same border style on all four sides.
// Style follows excelize numbering (1 = thin, 2 = medium, 5 = thick).
func (c *Cell) SetBorder(style int, color string) {
	c.ensureStyle()
	c.Style.Border = []excelize.Border{
		{Type: "top", Style: style, Color: color},
		{Type: "bottom", Style: style, Color: color},
		{Type: "right", Style: style, Color: color},
		{Type: "left", Style: style, Color: color},
	}
}

func (c *Cell) ensureStyle() {
	if c.Style == nil {
		c.Style = &excelize.Style{}
	}
}

// CellRow represents a single row of cells read back from a sheet.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column index (string) to cell value.
	C map[string]interface{} `json:"c"`
}
