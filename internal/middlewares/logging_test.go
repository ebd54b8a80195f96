package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core).Sugar()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("created"))
	})

	handler := LoggingMiddleware(log)(next)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "created", rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	// One request entry and one response entry.
	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "request", entries[0].Message)
	assert.Equal(t, "response", entries[1].Message)

	reqFields := entries[0].ContextMap()
	assert.Equal(t, http.MethodPost, reqFields["method"])
	assert.Equal(t, "/api/v1/tasks", reqFields["uri"])

	respFields := entries[1].ContextMap()
	assert.Equal(t, int64(http.StatusCreated), respFields["status"])
	assert.Equal(t, reqFields["request_id"], respFields["request_id"])
}

func TestLoggingMiddleware_DefaultStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core).Sugar()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	handler := LoggingMiddleware(log)(next)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, int64(http.StatusOK), entries[1].ContextMap()["status"])
}
