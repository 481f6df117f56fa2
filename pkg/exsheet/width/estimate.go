// Package width estimates display widths of cell text and aggregates them
// into per-column widths.
package width

import "github.com/mattn/go-runewidth"

const (
	// MinWidth is the smallest automatic column width.
	MinWidth = 10
	// MaxWidth is the largest automatic column width.
	MaxWidth = 50
	// LengthCorrectionRatio scales glyph units to spreadsheet width units,
	// compensating for proportional fonts.
	LengthCorrectionRatio = 1.5
)

// glyphs classifies runes independently of the process locale: East Asian
// ambiguous characters count as narrow.
var glyphs = &runewidth.Condition{EastAsianWidth: false}

// Estimator converts text into a column width.
type Estimator struct {
	// Ratio multiplies the glyph unit sum. Zero means LengthCorrectionRatio.
	Ratio float64
}

// Estimate returns the width of text using the default ratio.
func Estimate(text string) float64 {
	return Estimator{}.Estimate(text)
}

// Estimate returns the width of text: wide glyphs count 2 units, every other
// rune 1 unit, and the sum is multiplied by the ratio.
func (e Estimator) Estimate(text string) float64 {
	ratio := e.Ratio
	if ratio <= 0 {
		ratio = LengthCorrectionRatio
	}
	return float64(GlyphUnits(text)) * ratio
}

// GlyphUnits returns the unscaled unit sum of text.
func GlyphUnits(text string) int {
	units := 0
	for _, r := range text {
		units += runeUnits(r)
	}
	return units
}

func runeUnits(r rune) int {
	if glyphs.RuneWidth(r) == 2 {
		return 2
	}
	return 1
}
