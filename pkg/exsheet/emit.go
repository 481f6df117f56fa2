package exsheet

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// ContentType is the MIME type of an xlsx document.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Extension is appended to every emitted file name.
const Extension = ".xlsx"

// FileNameWithExt returns name with the .xlsx extension appended.
func FileNameWithExt(name string) string {
	return name + Extension
}

// Emitter delivers an encoded document.
type Emitter interface {
	Emit(ctx context.Context, fileName string, data []byte) error
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(ctx context.Context, fileName string, data []byte) error

// Emit calls fn.
func (fn EmitterFunc) Emit(ctx context.Context, fileName string, data []byte) error {
	return fn(ctx, fileName, data)
}

// FileEmitter writes documents into a directory.
type FileEmitter struct {
	Dir string
}

// Emit writes data to Dir/fileName. The file is written under a temporary
// name and renamed so readers never see a partial document.
func (e FileEmitter) Emit(ctx context.Context, fileName string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := e.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".exsheet-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(dir, filepath.Base(fileName)))
}

// WriterEmitter streams documents to W.
type WriterEmitter struct {
	W io.Writer
}

// Emit writes data to W.
func (e WriterEmitter) Emit(ctx context.Context, _ string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := e.W.Write(data)
	return err
}
