package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/service"
)

func newTraceIDTestHandler(t *testing.T) *Handler {
	t.Helper()
	return NewHandler(&service.Services{}, "test", false, logger.Nop())
}

func TestWithTraceID_GeneratesID(t *testing.T) {
	h := newTraceIDTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)

	got := rec.Header().Get(traceIDHeader)
	require.NotEmpty(t, got)

	// generated trace ids are UUIDs
	_, err := uuid.Parse(got)
	assert.NoError(t, err)
}

func TestWithTraceID_PropagatesIncomingID(t *testing.T) {
	h := newTraceIDTestHandler(t)

	const incoming = "trace-id-from-upstream"

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(traceIDHeader, incoming)
	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)

	assert.Equal(t, incoming, rec.Header().Get(traceIDHeader))
}
