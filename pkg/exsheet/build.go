package exsheet

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/ukaji3/exsheet-go/pkg/exsheet/assemble"
	"github.com/ukaji3/exsheet-go/pkg/exsheet/models"
	"github.com/xuri/excelize/v2"
)

// Result describes the outcome of a build.
type Result struct {
	// NoData is set when there was nothing to export; no document was built.
	NoData bool
	// Label is the no-data label when NoData is set.
	Label string
	// FileName is the emitted file name including the extension.
	FileName string
	// Data is the encoded xlsx document (nil when NoData or encoding failed).
	Data []byte
	// Emitted reports whether the Emitter accepted the document.
	Emitted bool
	// EmitErr holds the logged emission failure, if any.
	EmitErr error
}

// Err returns ErrEmptyInput for a no-data result and the emission failure
// otherwise. Build itself never returns either of them.
func (r *Result) Err() error {
	if r.NoData {
		return ErrEmptyInput
	}
	return r.EmitErr
}

// IsEmpty reports whether there is nothing to export: no sheets, or no
// sheet with data.
func IsEmpty(sheets []models.SheetSpec) bool {
	for _, s := range sheets {
		if s.HasData() {
			return false
		}
	}
	return true
}

// Build turns sheets into an xlsx document and hands it to opts.Emitter.
//
// Empty input yields a no-data Result without building anything. Assembly
// and custom builder failures are returned as errors. Encoding and emission
// failures are logged and reported through Result.EmitErr only.
func Build(ctx context.Context, sheets []models.SheetSpec, opts Options) (*Result, error) {
	logger := opts.logger()

	if IsEmpty(sheets) {
		logger.WithField("sheets", len(sheets)).Debug("no data to export")
		return &Result{NoData: true, Label: opts.Label()}, nil
	}

	var (
		f   *excelize.File
		err error
	)
	if opts.CustomBuilder != nil {
		f, err = opts.CustomBuilder(sheets)
		if err != nil {
			return nil, fmt.Errorf("custom builder failed: %w", err)
		}
		if f == nil {
			return nil, ErrNilDocument
		}
	} else {
		f, err = Assemble(sheets, opts.AssembleConfig())
		if err != nil {
			return nil, err
		}
	}
	defer f.Close()

	res := &Result{FileName: opts.Name()}
	emit(ctx, f, res, opts.Emitter, logger)
	return res, nil
}

// Assemble lays out every sheet in order on a new document. The placeholder
// sheet of a new file is removed unless one of the sheets uses its name.
func Assemble(sheets []models.SheetSpec, cfg assemble.Config) (*excelize.File, error) {
	f := excelize.NewFile()
	placeholder := f.GetSheetName(0)

	a := assemble.New(f, cfg)
	keepPlaceholder := false
	for _, spec := range sheets {
		if err := a.Assemble(spec); err != nil {
			f.Close()
			return nil, err
		}
		if strings.EqualFold(spec.SheetName, placeholder) {
			keepPlaceholder = true
		}
	}

	if len(sheets) == 0 {
		return f, nil
	}
	if !keepPlaceholder {
		if err := f.DeleteSheet(placeholder); err != nil {
			f.Close()
			return nil, err
		}
	}
	if idx, err := f.GetSheetIndex(sheets[0].SheetName); err == nil && idx >= 0 {
		f.SetActiveSheet(idx)
	}
	return f, nil
}

// emit encodes f and delivers it. Failures are logged, never returned.
func emit(ctx context.Context, f *excelize.File, res *Result, emitter Emitter, logger log.FieldLogger) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		res.EmitErr = NewEmissionError(res.FileName, "encode", err)
		logger.WithError(res.EmitErr).Error("failed to encode workbook")
		return
	}
	res.Data = buf.Bytes()

	if emitter == nil {
		return
	}
	if err := emitter.Emit(ctx, res.FileName, res.Data); err != nil {
		res.EmitErr = NewEmissionError(res.FileName, "emit", err)
		logger.WithError(res.EmitErr).Error("failed to emit workbook")
		return
	}
	res.Emitted = true
	logger.WithFields(log.Fields{
		"file":  res.FileName,
		"bytes": len(res.Data),
	}).Debug("workbook emitted")
}
