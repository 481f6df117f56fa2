// Package style applies the default cell styles and caller overrides.
package style

import (
	"github.com/ukaji3/exsheet-go/pkg/exsheet/models"
	"github.com/xuri/excelize/v2"
)

// Role identifies what a cell is used for within a sheet.
type Role string

const (
	// RoleTitle is the merged title cell.
	RoleTitle Role = "title"
	// RoleHeader is a column header cell.
	RoleHeader Role = "header"
	// RoleData is a data cell.
	RoleData Role = "data"
)

// Default style literals.
const (
	TitleFontSize   = 15
	DataFontSize    = 10
	HeaderFillColor = "E0E0E0"
	BorderThin      = 1
	BorderColor     = "000000"
)

// Apply writes the default style for role into cell, then runs override on
// the same cell. Attributes set by override replace the defaults.
func Apply(cell *models.Cell, role Role, override models.StyleFn) {
	cell.Style = Default(role)
	if override != nil {
		override(cell)
	}
}

// Default returns a fresh copy of the default style for role. Unknown roles
// get an empty style.
func Default(role Role) *excelize.Style {
	switch role {
	case RoleTitle:
		return &excelize.Style{
			Font: &excelize.Font{Size: TitleFontSize, Bold: true},
		}
	case RoleHeader:
		return &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{HeaderFillColor}},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		}
	case RoleData:
		return &excelize.Style{
			Font:      &excelize.Font{Size: DataFontSize},
			Alignment: &excelize.Alignment{Horizontal: "center"},
			Border: []excelize.Border{
				{Type: "top", Style: BorderThin, Color: BorderColor},
				{Type: "bottom", Style: BorderThin, Color: BorderColor},
				{Type: "right", Style: BorderThin, Color: BorderColor},
				{Type: "left", Style: BorderThin, Color: BorderColor},
			},
		}
	default:
		return &excelize.Style{}
	}
}

// Registry turns cell styles into excelize style IDs for one file.
type Registry struct {
	file *excelize.File
}

// NewRegistry returns a registry bound to f.
func NewRegistry(f *excelize.File) *Registry {
	return &Registry{file: f}
}

// ID returns the style ID for s, registering it with the file. excelize
// reuses the ID of an identical style already present.
func (r *Registry) ID(s *excelize.Style) (int, error) {
	if s == nil {
		return 0, nil
	}
	return r.file.NewStyle(s)
}
