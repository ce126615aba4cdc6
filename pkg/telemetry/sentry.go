package telemetry

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/ghuser/wardrobe/pkg/config"
)

const redacted = "[redacted]"

// Query parameters that locate the user. Never sent to Sentry.
var locationParams = []string{"lat", "lon", "city", "q"}

// SetupSentry initializes the Sentry SDK. No-ops if DSN is empty.
func SetupSentry(cfg *config.Config) error {
	if cfg.SentryDSN == "" {
		return nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          cfg.ServiceName + "@" + cfg.ServiceVersion,
		TracesSampleRate: productionSampleRatio,
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			return scrubLocation(event)
		},
	}); err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	return nil
}

// scrubLocation redacts location query parameters from the captured request.
func scrubLocation(event *sentry.Event) *sentry.Event {
	if event == nil || event.Request == nil || event.Request.QueryString == "" {
		return event
	}
	values, err := url.ParseQuery(event.Request.QueryString)
	if err != nil {
		event.Request.QueryString = redacted
		return event
	}
	for _, p := range locationParams {
		if values.Has(p) {
			values.Set(p, redacted)
		}
	}
	event.Request.QueryString = values.Encode()
	return event
}

// SentryFlush flushes buffered events before process exit.
func SentryFlush() {
	sentry.Flush(2 * time.Second)
}

// SentryMiddleware returns a net/http middleware that captures panics and errors.
// Repanic: true so the outer Recovery middleware still handles the 500 response.
func SentryMiddleware() func(http.Handler) http.Handler {
	h := sentryhttp.New(sentryhttp.Options{Repanic: true})
	return h.Handle
}
