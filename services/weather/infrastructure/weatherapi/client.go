// Package weatherapi implements the weather Provider against weatherapi.com.
package weatherapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/ghuser/wardrobe/pkg/config"
	"github.com/ghuser/wardrobe/pkg/logger"
	weatherdomain "github.com/ghuser/wardrobe/services/weather/domain"
	"github.com/ghuser/wardrobe/services/weather/domain/models"
)

const (
	maxSuggestions     = 10
	minSuggestQueryLen = 2
	maxBodyBytes       = 1 << 20

	// weatherapi.com error code for "No matching location found."
	codeNoMatchingLocation = 1006
)

// Options configures a Client.
type Options struct {
	BaseURL string
	APIKey  string
	Lang    string
	Timeout time.Duration
}

// Client calls the weatherapi.com current.json and search.json endpoints.
// It never retries.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	lang    string
	log     logger.Logger
}

// NewClient returns a Client with an OTel-instrumented transport.
func NewClient(opts Options, log logger.Logger) *Client {
	return &Client{
		http: &http.Client{
			Timeout:   opts.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		apiKey:  opts.APIKey,
		lang:    opts.Lang,
		log:     log,
	}
}

// NewClientFromConfig builds a Client from the WEATHER_* settings.
func NewClientFromConfig(cfg *config.Config, log logger.Logger) *Client {
	return NewClient(Options{
		BaseURL: cfg.WeatherBaseURL,
		APIKey:  cfg.WeatherAPIKey,
		Lang:    cfg.WeatherLang,
		Timeout: cfg.WeatherTimeout,
	}, log)
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Current fetches present conditions for q.
func (c *Client) Current(ctx context.Context, q models.Query) (*models.WeatherData, error) {
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", weatherdomain.ErrInvalidQuery, err)
	}

	params := url.Values{"q": {q.Param()}}
	if c.lang != "" {
		params.Set("lang", c.lang)
	}

	var data models.WeatherData
	if err := c.get(ctx, "current.json", params, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Suggest returns a lazy sequence of location labels. The request is made on
// first iteration; queries shorter than two characters make none.
func (c *Client) Suggest(ctx context.Context, query string) iter.Seq[string] {
	return func(yield func(string) bool) {
		query := strings.TrimSpace(query)
		if utf8.RuneCountInString(query) < minSuggestQueryLen {
			return
		}

		var hits []models.Suggestion
		if err := c.get(ctx, "search.json", url.Values{"q": {query}}, &hits); err != nil {
			c.log.WarnContext(ctx, "weather: location search failed", "query", query, "error", err)
			return
		}

		for i, h := range hits {
			if i == maxSuggestions || !yield(h.Label()) {
				return
			}
		}
	}
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	params.Set("key", c.apiKey)
	u := c.baseURL + "/" + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("%w: build request: %w", weatherdomain.ErrWeatherUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// The request URL carries the API key; report only the endpoint.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return fmt.Errorf("%w: %s: %w", weatherdomain.ErrWeatherUnavailable, endpoint, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: %s: read body: %w", weatherdomain.ErrWeatherUnavailable, endpoint, err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Code == codeNoMatchingLocation {
			return fmt.Errorf("%w: %s", weatherdomain.ErrLocationNotFound, apiErr.Error.Message)
		}
		return fmt.Errorf("%w: %s: status %d: %s", weatherdomain.ErrWeatherUnavailable, endpoint, resp.StatusCode, apiErr.Error.Message)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %s: decode: %w", weatherdomain.ErrWeatherUnavailable, endpoint, err)
	}
	return nil
}
