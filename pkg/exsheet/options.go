// Package exsheet builds xlsx workbooks from in-memory sheet descriptions.
package exsheet

import (
	log "github.com/sirupsen/logrus"
	"github.com/ukaji3/exsheet-go/pkg/exsheet/assemble"
	"github.com/ukaji3/exsheet-go/pkg/exsheet/models"
	"github.com/ukaji3/exsheet-go/pkg/exsheet/width"
	"github.com/xuri/excelize/v2"
)

// DefaultNoDataLabel is returned when there is nothing to export.
const DefaultNoDataLabel = "데이터가 존재하지 않습니다."

// DefaultFileName is the file name used when Options.FileName is empty.
const DefaultFileName = "export"

// CustomBuilder replaces the built-in sheet assembly. It receives every
// sheet description and must return the complete document.
type CustomBuilder func(sheets []models.SheetSpec) (*excelize.File, error)

// Options configures a build.
type Options struct {
	// FileName is the file name without extension.
	FileName string
	// NoDataLabel is reported when there is no data. Empty means DefaultNoDataLabel.
	NoDataLabel string
	// CustomBuilder, when set, bypasses the built-in assembly.
	CustomBuilder CustomBuilder
	// Emitter receives the encoded document. If nil, the bytes are only
	// returned in the Result.
	Emitter Emitter
	// MinWidth is the lower bound of automatic column widths (default 10).
	MinWidth float64
	// MaxWidth is the upper bound of automatic column widths (default 50).
	MaxWidth float64
	// LengthCorrectionRatio scales glyph units into widths (default 1.5).
	LengthCorrectionRatio float64
	// Logger receives build diagnostics. If nil, the logrus standard logger is used.
	Logger log.FieldLogger
}

// DefaultOptions returns default build options.
func DefaultOptions() Options {
	return Options{
		FileName:              DefaultFileName,
		NoDataLabel:           DefaultNoDataLabel,
		MinWidth:              width.MinWidth,
		MaxWidth:              width.MaxWidth,
		LengthCorrectionRatio: width.LengthCorrectionRatio,
	}
}

// Label returns the no-data label.
func (o Options) Label() string {
	if o.NoDataLabel != "" {
		return o.NoDataLabel
	}
	return DefaultNoDataLabel
}

// Name returns the file name including the .xlsx extension.
func (o Options) Name() string {
	name := o.FileName
	if name == "" {
		name = DefaultFileName
	}
	return FileNameWithExt(name)
}

// AssembleConfig returns the column sizing parameters. Zero values fall back
// to the defaults.
func (o Options) AssembleConfig() assemble.Config {
	cfg := assemble.DefaultConfig()
	if o.MinWidth > 0 {
		cfg.MinWidth = o.MinWidth
	}
	if o.MaxWidth > 0 {
		cfg.MaxWidth = o.MaxWidth
	}
	if o.LengthCorrectionRatio > 0 {
		cfg.Estimator.Ratio = o.LengthCorrectionRatio
	}
	return cfg
}

func (o Options) logger() log.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.StandardLogger()
}
