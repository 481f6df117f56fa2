package exsheet

import (
	"errors"
	"fmt"

	"github.com/ukaji3/exsheet-go/pkg/exsheet/assemble"
	"github.com/ukaji3/exsheet-go/pkg/exsheet/models"
	"github.com/ukaji3/exsheet-go/pkg/exsheet/reader"
)

// ErrEmptyInput indicates there were no sheets, or no sheet had data.
var ErrEmptyInput = errors.New("no data to export")

// ErrEmissionFailure indicates the encoded document could not be delivered.
var ErrEmissionFailure = errors.New("emission failed")

// ErrNilDocument indicates a custom builder returned no document.
var ErrNilDocument = errors.New("custom builder returned no document")

// ErrInvalidSpec indicates a sheet description that cannot be decoded.
var ErrInvalidSpec = models.ErrInvalidSpec

// ErrInvalidRange indicates a malformed merge range.
var ErrInvalidRange = reader.ErrInvalidRange

// ErrDuplicateSheet indicates a sheet name used twice in one workbook.
var ErrDuplicateSheet = assemble.ErrDuplicateSheet

// AssembleError represents an error while assembling a sheet.
type AssembleError = assemble.Error

// EmissionError represents a failure to encode or deliver the document.
type EmissionError struct {
	FileName string
	Stage    string // "encode", "emit"
	Err      error
}

func (e *EmissionError) Error() string {
	return fmt.Sprintf("%v: %s %q: %v", ErrEmissionFailure, e.Stage, e.FileName, e.Err)
}

func (e *EmissionError) Unwrap() []error {
	return []error{ErrEmissionFailure, e.Err}
}

// NewEmissionError creates a new EmissionError.
func NewEmissionError(fileName, stage string, err error) *EmissionError {
	return &EmissionError{
		FileName: fileName,
		Stage:    stage,
		Err:      err,
	}
}
