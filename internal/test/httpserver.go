package test

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// NewHttpServerWithHandlers creates a new httptest.Server with the provided handlers. Each
// request is served by the next handler in order, and the test fails if the number of
// requests differs from the number of handlers.
func NewHttpServerWithHandlers(t *testing.T, handlers []http.HandlerFunc) *httptest.Server {
	idx := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(handlers) < idx+1 {
			t.Errorf("unexpected request, add missing handler func: %s %s", r.Method, r.URL)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		handlers[idx](w, r)
		idx += 1
	}))
	t.Cleanup(func() {
		srv.Close()
		if diff := len(handlers) - idx; diff != 0 {
			t.Errorf("too many configured handlers, remove %d handler(s)", diff)
		}
	})
	return srv
}
