package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/unrolled/secure"

	"github.com/ghuser/wardrobe/pkg/httpx"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// TestSecurityHeaders verifies unrolled/secure sets the expected headers.
func TestSecurityHeaders(t *testing.T) {
	sm := secure.New(secure.Options{
		STSSeconds:            63072000,
		STSIncludeSubdomains:  true,
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'",
		IsDevelopment:         false,
	})
	h := sm.Handler(http.HandlerFunc(okHandler))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	checks := map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"X-Frame-Options":         "DENY",
		"Referrer-Policy":         "strict-origin-when-cross-origin",
		"Content-Security-Policy": "default-src 'self'",
	}
	for header, expected := range checks {
		if got := rr.Header().Get(header); got != expected {
			t.Errorf("%s: got %q, want %q", header, got, expected)
		}
	}
	// HSTS is only set over HTTPS; verify the header exists on TLS requests;
	// on plain HTTP unrolled/secure intentionally omits it.
}

// TestRequestBodyLimit_WithinLimit verifies requests under the cap pass through.
func TestRequestBodyLimit_WithinLimit(t *testing.T) {
	const limit = 100

	var gotBody []byte
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, limit+1)
		n, _ := r.Body.Read(buf)
		gotBody = buf[:n]
		w.WriteHeader(http.StatusOK)
	})

	h := httpx.RequestBodyLimit(limit)(inner)
	body := strings.NewReader(strings.Repeat("a", 50))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", body))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if len(gotBody) != 50 {
		t.Fatalf("expected 50 bytes read, got %d", len(gotBody))
	}
}

// TestRequestBodyLimit_ExceedsLimit verifies that reading beyond the cap returns an error.
func TestRequestBodyLimit_ExceedsLimit(t *testing.T) {
	const limit int64 = 10

	var readErr error
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, limit+5)
		_, readErr = r.Body.Read(buf)
		if readErr != nil {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	h := httpx.RequestBodyLimit(limit)(inner)
	body := strings.NewReader(strings.Repeat("x", int(limit)+1))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", body))

	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rr.Code)
	}
}

// TestCORSMiddleware_AllowsPatchPreflight verifies the wardrobe update verb passes preflight.
func TestCORSMiddleware_AllowsPatchPreflight(t *testing.T) {
	h := httpx.CORSMiddleware("https://wardrobe.example.com")(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodOptions, "/api/wardrobe/items/abc", http.NoBody)
	req.Header.Set("Origin", "https://wardrobe.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://wardrobe.example.com" {
		t.Fatalf("Access-Control-Allow-Origin: got %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, http.MethodPatch) {
		t.Fatalf("Access-Control-Allow-Methods: got %q, want PATCH", got)
	}
}

// TestCORSMiddleware_RejectsUnknownOrigin verifies origins outside the list get no CORS headers.
func TestCORSMiddleware_RejectsUnknownOrigin(t *testing.T) {
	h := httpx.CORSMiddleware("https://wardrobe.example.com, http://localhost:5173")(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodGet, "/api/weather", http.NoBody)
	req.Header.Set("Origin", "https://evil.example.com")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no Access-Control-Allow-Origin, got %q", got)
	}
}

// TestNewRouter_AppliesSecurityHeaders verifies the full stack sets the CSP.
func TestNewRouter_AppliesSecurityHeaders(t *testing.T) {
	pass := func(next http.Handler) http.Handler { return next }
	r := httpx.NewRouter(httpx.ServerConfig{ServiceName: "wardrobe", CORSAllowedOrigins: "*"}, pass, pass, pass, pass)
	r.Get("/ping", okHandler)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Security-Policy"); !strings.Contains(got, "cdn.weatherapi.com") {
		t.Errorf("Content-Security-Policy: got %q", got)
	}
	if got := rr.Header().Get("Permissions-Policy"); !strings.Contains(got, "geolocation=(self)") {
		t.Errorf("Permissions-Policy must allow same-origin geolocation, got %q", got)
	}
}

func TestNewRouter_RateLimitPerMinute(t *testing.T) {
	pass := func(next http.Handler) http.Handler { return next }
	r := httpx.NewRouter(httpx.ServerConfig{ServiceName: "wardrobe", CORSAllowedOrigins: "*", RateLimitPerMinute: 1}, pass, pass, pass, pass)
	r.Get("/ping", okHandler)

	codes := make([]int, 0, 2)
	for range 2 {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))
		codes = append(codes, rr.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("expected [200 429], got %v", codes)
	}
}
