package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railyard/booking/internal/middleware"
)

// drainBody reads the whole body, surfacing a read error as a 500 so
// tests can observe MaxBytesReader kicking in.
var drainBody = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	if _, err := io.Copy(io.Discard, r.Body); err != nil {
		http.Error(w, "body read failed", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
})

func TestMaxBodySize_UnderLimitPasses(t *testing.T) {
	h := middleware.NewMaxBodySizeHandler(64)(drainBody)

	req := httptest.NewRequest(http.MethodPost, "/trains", strings.NewReader("small"))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMaxBodySize_DeclaredOversizeRejectedUpFront(t *testing.T) {
	h := middleware.NewMaxBodySizeHandler(8)(drainBody)

	req := httptest.NewRequest(http.MethodPost, "/trains", strings.NewReader(strings.Repeat("x", 64)))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestMaxBodySize_UndeclaredOversizeFailsOnRead(t *testing.T) {
	h := middleware.NewMaxBodySizeHandler(8)(drainBody)

	// No Content-Length: the middleware cannot reject up front, but the
	// capped reader makes the downstream read fail.
	req := httptest.NewRequest(http.MethodPost, "/trains", io.NopCloser(strings.NewReader(strings.Repeat("x", 64))))
	req.ContentLength = -1
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
