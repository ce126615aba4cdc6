package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	wardrobedomain "github.com/ghuser/wardrobe/services/wardrobe/domain"
	weatherdomain "github.com/ghuser/wardrobe/services/weather/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrItemNotFound", wardrobedomain.ErrItemNotFound, http.StatusNotFound},
		{"ErrInvalidClothingItem", wardrobedomain.ErrInvalidClothingItem, http.StatusUnprocessableEntity},
		{"ErrLocationNotFound", weatherdomain.ErrLocationNotFound, http.StatusNotFound},
		{"ErrInvalidQuery", weatherdomain.ErrInvalidQuery, http.StatusUnprocessableEntity},
		{"ErrWeatherUnavailable", weatherdomain.ErrWeatherUnavailable, http.StatusBadGateway},
		{"wrapped ErrItemNotFound", fmt.Errorf("update item: %w", wardrobedomain.ErrItemNotFound), http.StatusNotFound},
		{"wrapped ErrInvalidClothingItem", fmt.Errorf("%w: unknown season", wardrobedomain.ErrInvalidClothingItem), http.StatusUnprocessableEntity},
		{"double wrapped weather error", fmt.Errorf("recommend: %w", fmt.Errorf("current.json: %w", weatherdomain.ErrWeatherUnavailable)), http.StatusBadGateway},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("redis down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, wardrobedomain.ErrItemNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body["error"] != wardrobedomain.ErrItemNotFound.Error() {
		t.Fatalf("unexpected error message %q", body["error"])
	}
}

func TestWriteSafeError_HidesInternalDetailInProduction(t *testing.T) {
	err := errors.New("dial tcp 10.0.0.5:6379: connection refused")

	w := httptest.NewRecorder()
	WriteSafeError(w, err, true)
	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("expected generic message, got %q", body["error"])
	}

	w = httptest.NewRecorder()
	WriteSafeError(w, wardrobedomain.ErrInvalidClothingItem, true)
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] != wardrobedomain.ErrInvalidClothingItem.Error() {
		t.Fatalf("4xx messages must be kept, got %q", body["error"])
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, wardrobedomain.ErrItemNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}
