// Package reader reads assembled workbooks back and parses cell ranges.
package reader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrInvalidRange indicates a malformed A1:B2 style range.
var ErrInvalidRange = errors.New("invalid cell range")

// Range represents cell coordinate bounds.
type Range struct {
	// C1 is the start column (1-based).
	C1 int
	// R1 is the start row (1-based).
	R1 int
	// C2 is the end column (1-based, inclusive).
	C2 int
	// R2 is the end row (1-based, inclusive).
	R2 int
}

// TopLeft returns the top-left cell reference.
func (r Range) TopLeft() string {
	cell, _ := excelize.CoordinatesToCellName(r.C1, r.R1)
	return cell
}

// BottomRight returns the bottom-right cell reference.
func (r Range) BottomRight() string {
	cell, _ := excelize.CoordinatesToCellName(r.C2, r.R2)
	return cell
}

// String returns the range in A1:B2 notation.
func (r Range) String() string {
	return r.TopLeft() + ":" + r.BottomRight()
}

// ParseRange parses a range such as "A1:E1" or "$A$1:$E$1". The result is
// normalized so that C1 <= C2 and R1 <= R2. A single cell reference yields a
// one-cell range.
func ParseRange(s string) (Range, error) {
	// Remove $ signs
	s = strings.ReplaceAll(strings.TrimSpace(s), "$", "")
	if idx := strings.LastIndex(s, "!"); idx >= 0 {
		s = s[idx+1:]
	}

	parts := strings.Split(s, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, s, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, s, err)
	}

	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	return Range{C1: startCol, R1: startRow, C2: endCol, R2: endRow}, nil
}
