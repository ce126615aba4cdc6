package httpx

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"
)

const (
	// cspPolicy allows the weatherapi.com condition icons referenced by weather payloads.
	cspPolicy = "default-src 'self'; img-src 'self' https://cdn.weatherapi.com"
	// The PWA reads the device position for coordinate lookups.
	permissionsPolicy = "geolocation=(self), microphone=(), camera=(), usb=(), magnetometer=(), gyroscope=()"

	defaultRateLimit = 100     // requests per minute per IP
	maxBodyBytes     = 1 << 20 // wardrobe items are small JSON objects
	handlerTimeout   = 30 * time.Second
)

// ServerConfig holds the options for NewRouter.
type ServerConfig struct {
	ServiceName   string
	IsDevelopment bool
	// CORSAllowedOrigins is a comma-separated list of allowed origins.
	// Pass "*" (dev only) to allow all origins.
	CORSAllowedOrigins string
	// RateLimitPerMinute caps requests per client IP. Zero means 100.
	RateLimitPerMinute int
}

// NewRouter builds the middleware stack shared by every route. The caller
// supplies the logging, recovery, sentry and otel middlewares.
//
// Order, outermost first: recovery, sentry (re-panics), RequestID, otel span,
// request log, RealIP, per-IP rate limit, CORS, 1 MB body cap, 30 s timeout,
// security headers.
func NewRouter(
	cfg ServerConfig,
	loggerMiddleware func(http.Handler) http.Handler,
	recoveryMiddleware func(http.Handler) http.Handler,
	sentryMiddleware func(http.Handler) http.Handler,
	otelMiddleware func(http.Handler) http.Handler,
) *chi.Mux {
	sec := secure.New(secure.Options{
		STSSeconds:            63072000,
		STSIncludeSubdomains:  true,
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: cspPolicy,
		PermissionsPolicy:     permissionsPolicy,
		IsDevelopment:         cfg.IsDevelopment,
	})

	limit := cfg.RateLimitPerMinute
	if limit <= 0 {
		limit = defaultRateLimit
	}

	r := chi.NewRouter()
	r.Use(
		recoveryMiddleware,
		sentryMiddleware,
		middleware.RequestID,
		otelMiddleware,
		loggerMiddleware,
		middleware.RealIP,
		httprate.LimitByIP(limit, time.Minute),
		CORSMiddleware(cfg.CORSAllowedOrigins),
		RequestBodyLimit(maxBodyBytes),
		middleware.Timeout(handlerTimeout),
		sec.Handler,
	)
	return r
}

// CORSMiddleware lets the PWA origins in allowedOrigins (comma-separated, or
// "*") call the API. PATCH is needed for item edits.
func CORSMiddleware(allowedOrigins string) func(http.Handler) http.Handler {
	origins := parseOrigins(allowedOrigins)
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link", "X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}

func parseOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p := strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// RequestBodyLimit caps request bodies at maxBytes. Reading past it fails with
// *http.MaxBytesError, which validator.ValidateRequest answers with 413.
func RequestBodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// NewServer bounds header, read, write and idle time. WriteTimeout leaves room
// for the weather lookup behind /api/recommendations/weather.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:           addr,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}
}
