package server

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
	"github.com/ukaji3/exsheet-go/pkg/exsheet"
	"github.com/ukaji3/exsheet-go/pkg/exsheet/models"
)

type handler struct {
	base exsheet.Options
}

type noDataResponse struct {
	NoData  bool   `json:"noData"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// download builds the posted sheets and streams the document as an
// attachment. Query parameters fileName and noDataLabel override the
// server defaults.
func (h *handler) download(w http.ResponseWriter, r *http.Request) {
	logger := log.WithField("request_id", middleware.GetReqID(r.Context()))

	sheets, err := models.LoadSheets(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		logger.WithError(err).Warn("rejecting sheet description")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	opts := h.base
	opts.Logger = logger
	if name := r.URL.Query().Get("fileName"); name != "" {
		opts.FileName = name
	}
	if label := r.URL.Query().Get("noDataLabel"); label != "" {
		opts.NoDataLabel = label
	}
	emitter := &ResponseEmitter{W: w}
	opts.Emitter = emitter

	res, err := exsheet.Build(r.Context(), sheets, opts)
	if err != nil {
		status := http.StatusInternalServerError
		var aerr *exsheet.AssembleError
		if errors.As(err, &aerr) {
			status = http.StatusUnprocessableEntity
		}
		logger.WithError(err).Error("build failed")
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	if res.NoData {
		writeJSON(w, http.StatusOK, noDataResponse{NoData: true, Message: res.Label})
		return
	}
	// Once the attachment headers are out the failure can only be logged.
	if !res.Emitted && res.EmitErr != nil && !emitter.wroteHeader {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to deliver workbook"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ResponseEmitter writes the document as an HTTP attachment.
type ResponseEmitter struct {
	W http.ResponseWriter

	wroteHeader bool
}

// Emit sets the download headers and writes data.
func (e *ResponseEmitter) Emit(ctx context.Context, fileName string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	header := e.W.Header()
	header.Set("Content-Type", exsheet.ContentType)
	header.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
	header.Set("Content-Length", strconv.Itoa(len(data)))
	e.W.WriteHeader(http.StatusOK)
	e.wroteHeader = true
	_, err := e.W.Write(data)
	return err
}
