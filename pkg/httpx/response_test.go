package httpx_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ghuser/wardrobe/pkg/httpx"
)

func TestJSON_setsHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("unexpected Content-Type: %q", ct)
	}
	if xct := w.Header().Get("X-Content-Type-Options"); xct != "nosniff" {
		t.Errorf("expected nosniff, got %q", xct)
	}
}

func TestJSON_encodesBody(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSON(w, http.StatusCreated, map[string]string{"id": "abc"})

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["id"] != "abc" {
		t.Errorf("unexpected body: %v", body)
	}
	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSONError(w, http.StatusBadRequest, "something went wrong")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["error"] != "something went wrong" {
		t.Errorf("unexpected error message: %q", body["error"])
	}
}

func TestJSONList_NilIsEmptyArray(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSONList[string](w, http.StatusOK, nil)

	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Fatalf("expected [], got %q", got)
	}
}

func TestJSONList_Items(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSONList(w, http.StatusOK, []string{"Paris, Ile-de-France, France"})

	var body []string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(body) != 1 {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestNoContent(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.NoContent(w)

	if w.Code != http.StatusNoContent || w.Body.Len() != 0 {
		t.Fatalf("expected empty 204, got %d %q", w.Code, w.Body.String())
	}
}

func TestSafeError(t *testing.T) {
	err := errors.New("dial tcp 10.0.0.5:6379: connection refused")
	tests := []struct {
		status       int
		isProduction bool
		want         string
	}{
		{http.StatusInternalServerError, true, "Internal Server Error"},
		{http.StatusBadGateway, true, "Bad Gateway"},
		{http.StatusInternalServerError, false, err.Error()},
		{http.StatusNotFound, true, err.Error()},
	}
	for _, tt := range tests {
		if got := httpx.SafeError(err, tt.status, tt.isProduction); got != tt.want {
			t.Errorf("SafeError(%d, %v) = %q, want %q", tt.status, tt.isProduction, got, tt.want)
		}
	}
}
