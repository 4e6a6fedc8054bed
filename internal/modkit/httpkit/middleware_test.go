package httpkit_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"storyweaver/internal/modkit/httpkit"
	phttp "storyweaver/internal/platform/net/http"
	"storyweaver/internal/platform/net/middleware"
)

func mountWithCORS(origins []string) http.Handler {
	m := chi.NewRouter()
	r := phttp.AdaptChi(m)
	httpkit.MountAPI(r, httpkit.CommonStack(middleware.CORSOptions{AllowedOrigins: origins}), func(api httpkit.Router) {
		httpkit.Get(api, "/ping", func(_ *http.Request) (any, error) {
			return map[string]string{"ok": "1"}, nil
		})
	})
	return m
}

func TestCommonStackThreadsAllowedOrigins(t *testing.T) {
	t.Parallel()

	h := mountWithCORS([]string{"http://allowed.test"})

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Origin", "http://allowed.test")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://allowed.test" {
		t.Fatalf("allowed origin header = %q", got)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req2.Header.Set("Origin", "http://other.test")
	rec2 := httptest.NewRecorder()
	h.ServeHTTP(rec2, req2)
	if got := rec2.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("denied origin should get no header, got %q", got)
	}
}

func TestCommonStackDefaultsToAnyOrigin(t *testing.T) {
	t.Parallel()

	h := mountWithCORS([]string{"*"})

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Origin", "http://anything.test")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("wildcard header = %q", got)
	}
}
