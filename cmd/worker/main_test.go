package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/wardrobe/pkg/logger"
	wardrobeEvents "github.com/ghuser/wardrobe/services/wardrobe/domain/events"
)

type fakeSubscriber struct {
	topics []string
	err    error
}

func (f *fakeSubscriber) Subscribe(_ context.Context, topic string, _ func(context.Context, *message.Message) error) (<-chan error, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.topics = append(f.topics, topic)
	ch := make(chan error)
	close(ch)
	return ch, nil
}

func nopHandler(context.Context, *message.Message) error { return nil }

func TestRegisterSubscribers_AllTopics(t *testing.T) {
	sub := &fakeSubscriber{}
	if err := registerSubscribers(context.Background(), sub, nopHandler, logger.Discard()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(sub.topics, wardrobeEvents.Topics) {
		t.Fatalf("subscribed to %v, want %v", sub.topics, wardrobeEvents.Topics)
	}
}

func TestRegisterSubscribers_PropagatesError(t *testing.T) {
	want := errors.New("subscribe failed")
	err := registerSubscribers(context.Background(), &fakeSubscriber{err: want}, nopHandler, logger.Discard())
	if !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}

func TestHandleWardrobeChanged(t *testing.T) {
	payload, _ := json.Marshal(wardrobeEvents.WardrobeChangedEvent{
		Kind:   wardrobeEvents.KindAdded,
		ItemID: "item-1",
		Name:   "Pull",
		Type:   "top",
		Season: "winter",
	})

	tests := []struct {
		name    string
		payload []byte
		wantMsg string
	}{
		{"valid event", payload, `"msg":"wardrobe changed"`},
		{"not json", []byte("{"), `"msg":"dropping malformed wardrobe event"`},
		{"missing item id", []byte(`{"kind":"added"}`), `"msg":"dropping malformed wardrobe event"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := handleWardrobeChanged(logger.NewWithWriter(&buf, "debug"), nil)

			if err := h(context.Background(), message.NewMessage("m1", tt.payload)); err != nil {
				t.Fatalf("handler must not fail, got %v", err)
			}
			if !strings.Contains(buf.String(), tt.wantMsg) {
				t.Fatalf("expected log %s, got %s", tt.wantMsg, buf.String())
			}
		})
	}
}

func TestMetricsServer_ServesMetrics(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("wardrobe_changes_total 3\n"))
	})
	srv := newMetricsServer(":0", metrics)

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/metrics", http.StatusOK},
		{"/health", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))
			if rr.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rr.Code)
			}
		})
	}

	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	if !strings.Contains(rr.Body.String(), "wardrobe_changes_total") {
		t.Fatalf("unexpected metrics body %q", rr.Body.String())
	}
}
