package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AbdulSamiEjaz/image-upload-server/internal/config"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(h http.Handler, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, vv := range header {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestInit_UnknownRoutesReturn404(t *testing.T) {
	h, _ := newUploadTestHandler(t, nil)
	router := h.Init()

	for _, target := range []string{"/", "/uploads", "/upload/extra", "/api/upload"} {
		rr := serve(router, http.MethodPost, target, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code, target)
	}
}

func TestInit_WrongMethodReturns404NotMethodNotAllowed(t *testing.T) {
	h, _ := newUploadTestHandler(t, nil)
	router := h.Init()

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rr := serve(router, method, "/upload", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code, method)
	}

	rr := serve(router, http.MethodPost, "/metrics", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_TraceIDHeader(t *testing.T) {
	h, _ := newUploadTestHandler(t, nil)
	router := h.Init()

	rr := serve(router, http.MethodGet, "/nowhere", nil)
	_, err := uuid.Parse(rr.Header().Get(traceIDHeader))
	assert.NoError(t, err, "generated trace id must be a uuid")

	rr = serve(router, http.MethodPost, "/upload", http.Header{traceIDHeader: {"trace-123"}})
	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))
}

func TestInit_MetricsEndpoint(t *testing.T) {
	h, _ := newUploadTestHandler(t, nil)
	router := h.Init()

	require.Equal(t, http.StatusOK, doUpload(t, router, imagePart("cat.png")).Code)
	require.Equal(t, http.StatusUnsupportedMediaType, doUpload(t, router, formPart{field: "file", filename: "a.txt", contentType: "text/plain", content: "x"}).Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.uploadsTotal.WithLabelValues(outcomeStored)))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.uploadsTotal.WithLabelValues("not_an_image")))

	rr := serve(router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `image_upload_uploads_total{outcome="stored"} 1`))
	assert.True(t, strings.Contains(string(body), "image_upload_stored_file_size_bytes_count 1"))
}

func TestInit_MetricsDisabled(t *testing.T) {
	h, _ := newUploadTestHandler(t, func(c *config.StructuredConfig) { c.Metrics.Disabled = true })

	rr := serve(h.Init(), http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestNewHandler_IndependentMetrics(t *testing.T) {
	h1, _ := newUploadTestHandler(t, nil)
	h2, _ := newUploadTestHandler(t, nil)

	h1.metrics.observeRejected("no_file")

	assert.NotSame(t, h1.metrics.registry, h2.metrics.registry)
	assert.Equal(t, 0.0, testutil.ToFloat64(h2.metrics.uploadsTotal.WithLabelValues("no_file")))
}
