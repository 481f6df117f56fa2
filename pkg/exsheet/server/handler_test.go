package server

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/exsheet-go/pkg/exsheet"
	"github.com/ukaji3/exsheet-go/pkg/exsheet/reader"
)

func init() {
	log.SetOutput(io.Discard)
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(GetRouter(exsheet.DefaultOptions()))
	t.Cleanup(srv.Close)
	return srv
}

func TestDownload(t *testing.T) {
	srv := newServer(t)
	body := `[{"sheetName":"S1","headers":["age","name"],"data":[{"age":24,"name":"J"}]}]`

	resp, err := http.Post(srv.URL+"/download?fileName=people", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, exsheet.ContentType, resp.Header.Get("Content-Type"))

	_, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition"))
	require.NoError(t, err)
	assert.Equal(t, "people.xlsx", params["filename"])

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	wb, err := reader.ReadBytes(data, "people.xlsx")
	require.NoError(t, err)
	require.Len(t, wb.Sheets, 1)
	assert.Equal(t, "S1", wb.Sheets[0].Name)
	require.Len(t, wb.Sheets[0].Rows, 2)
	assert.Equal(t, "J", wb.Sheets[0].Rows[1].C["2"])
}

func TestDownloadNoData(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Post(srv.URL+"/download?noDataLabel=empty", "application/json", strings.NewReader(`[]`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got noDataResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, noDataResponse{NoData: true, Message: "empty"}, got)
}

func TestDownloadBadRequest(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Post(srv.URL+"/download", "application/json", strings.NewReader(`"nope"`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDownloadAssemblyError(t *testing.T) {
	srv := newServer(t)
	body := `[{"sheetName":"S1","titleRow":{"title":"T","mergeCell":"oops"},"data":[1]}]`

	resp, err := http.Post(srv.URL+"/download", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestDownloadCanceledRequest(t *testing.T) {
	body := `[{"sheetName":"S1","data":[{"a":1}]}]`
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/download", strings.NewReader(body)).WithContext(ctx)
	rec := httptest.NewRecorder()

	h := &handler{base: exsheet.DefaultOptions()}
	h.download(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	var got map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.NotEmpty(t, got["error"])
}

func TestResponseEmitterHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &ResponseEmitter{W: rec}

	require.NoError(t, e.Emit(context.Background(), "out.xlsx", []byte("PK")))
	assert.True(t, e.wroteHeader)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("Content-Length"))
	assert.Equal(t, "PK", rec.Body.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e = &ResponseEmitter{W: httptest.NewRecorder()}
	assert.ErrorIs(t, e.Emit(ctx, "out.xlsx", []byte("PK")), context.Canceled)
	assert.False(t, e.wroteHeader)
}

func TestHealth(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
