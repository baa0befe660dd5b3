package trace

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMiddlewareSetsRequestID(t *testing.T) {
	m := NewMiddleware(func(r *http.Request) string { return "1.2.3.4" })

	var seenID string
	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = GetRequestID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/transactions", nil))

	if seenID == "" {
		t.Error("request ID missing from handler context")
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if got := m.TotalRequests(); got != 1 {
		t.Errorf("TotalRequests() = %d, want 1", got)
	}
}

func TestGetRequestIDMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetRequestID(req.Context()); got != "" {
		t.Errorf("GetRequestID() = %q, want empty", got)
	}
}
