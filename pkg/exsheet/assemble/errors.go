package assemble

import (
	"errors"
	"fmt"
)

// ErrDuplicateSheet indicates a sheet name that was already assembled.
// Names compare case-insensitively, as in excelize.
var ErrDuplicateSheet = errors.New("duplicate sheet name")

// Error represents a failure while assembling one sheet.
type Error struct {
	SheetName string
	Component string // "sheet", "title", "header", "data", "widths"
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("assembly error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(sheetName, component string, err error) *Error {
	return &Error{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
