package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ozretail/checkout-gateway/internal/config"
	"github.com/ozretail/checkout-gateway/internal/logger"
)

func initTestLogger(t *testing.T) {
	t.Helper()
	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
}

func TestClient_GetCheckout_Success(t *testing.T) {
	initTestLogger(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != checkoutPath {
			t.Errorf("Expected path %q, got: %q", checkoutPath, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Order": {"Subtotal": 10}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	response, err := client.GetCheckout(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if response.HTTPStatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got: %d", response.HTTPStatusCode)
	}
	if string(response.Result) != `{"Order": {"Subtotal": 10}}` {
		t.Errorf("Expected body passed through, got: %s", response.Result)
	}
}

func TestClient_GetCheckout_UpstreamFailurePassedThrough(t *testing.T) {
	initTestLogger(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"Fault": "order locked"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	response, err := client.GetCheckout(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if response.HTTPStatusCode != http.StatusConflict {
		t.Errorf("Expected status 409, got: %d", response.HTTPStatusCode)
	}
	if string(response.Result) != `{"Fault": "order locked"}` {
		t.Errorf("Expected fault body passed through, got: %s", response.Result)
	}
}

func TestClient_GetCheckout_ServerErrorAfterRetries(t *testing.T) {
	initTestLogger(t)

	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"Fault": "boom"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := client.GetCheckout(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if response.HTTPStatusCode != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got: %d", response.HTTPStatusCode)
	}
	// первая попытка плюс повторы
	if attempts != int(retryMaxAttemps)+1 {
		t.Errorf("Expected %d attempts, got: %d", retryMaxAttemps+1, attempts)
	}
}

func TestClient_GetCheckout_RateLimited(t *testing.T) {
	initTestLogger(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "1")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := client.GetCheckout(ctx)
	var rateLimitErr *RateLimitError
	if !errors.As(err, &rateLimitErr) {
		t.Fatalf("Expected rate limit error, got: '%v'", err)
	}
	if rateLimitErr.RetryAfter != time.Second {
		t.Errorf("Expected retry after 1s, got: %v", rateLimitErr.RetryAfter)
	}
}

func TestParseRetryAfter(t *testing.T) {
	testCases := []struct {
		Name     string
		Header   string
		Expected time.Duration
	}{
		{Name: "Seconds #1", Header: "30", Expected: 30 * time.Second},
		{Name: "Missing header #2", Header: "", Expected: time.Minute},
		{Name: "Garbage #3", Header: "soon", Expected: time.Minute},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			headers := http.Header{}
			if tc.Header != "" {
				headers.Set("Retry-After", tc.Header)
			}
			if got := ParseRetryAfter(headers); got != tc.Expected {
				t.Errorf("Expected %v, got: %v", tc.Expected, got)
			}
		})
	}
}
