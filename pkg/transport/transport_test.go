package transport

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestNewHTTPClient_Timeout(t *testing.T) {
	if got := NewHTTPClient(0).Timeout; got != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", got, DefaultTimeout)
	}
	if got := NewHTTPClient(5 * time.Second).Timeout; got != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", got)
	}
}

func TestLoggingTransport_TagsAndLogs(t *testing.T) {
	var gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	var logs strings.Builder
	log := zerolog.New(&logs).Level(zerolog.DebugLevel)
	client := &http.Client{Transport: &LoggingTransport{Log: log}}

	resp, err := client.Get(server.URL)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	resp.Body.Close()

	if gotRequestID == "" {
		t.Error("request was not tagged with a request id")
	}
	if !strings.Contains(logs.String(), gotRequestID) {
		t.Error("log line does not carry the request id")
	}
	if !strings.Contains(logs.String(), "request completed") {
		t.Errorf("unexpected log output: %s", logs.String())
	}
}

func TestLoggingTransport_DoesNotMutateOriginal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatal(err)
	}

	lt := &LoggingTransport{Log: zerolog.Nop()}
	resp, err := lt.RoundTrip(req)
	if err != nil {
		t.Fatalf("RoundTrip() error: %v", err)
	}
	resp.Body.Close()

	if req.Header.Get("X-Request-Id") != "" {
		t.Error("original request was mutated")
	}
}
