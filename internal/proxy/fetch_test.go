package proxy

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"years_before_2023":0,"co2_ppmv":300,"ch4_ppb":700,"temp_anomaly":-0.2},
			{"years_before_2023":100,"co2_ppmv":280,"ch4_ppb":650,"temp_anomaly":-0.5}]`)
	}))
	defer srv.Close()

	recs, err := NewFetcher(discard, 0).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(recs) != 2 || recs[1].CO2 != 280 {
		t.Fatalf("recs = %+v", recs)
	}
}

func TestFetchStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewFetcher(discard, 0).Fetch(context.Background(), srv.URL)
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("err = %v, want ErrUnexpectedStatus", err)
	}
}

func TestFetchNotArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"error":"nope"}`)
	}))
	defer srv.Close()

	_, err := NewFetcher(discard, 0).Fetch(context.Background(), srv.URL)
	if !errors.Is(err, ErrNotArray) {
		t.Fatalf("err = %v, want ErrNotArray", err)
	}
}

func TestFetchTimeout(t *testing.T) {
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-done:
		}
	}))
	defer srv.Close()
	defer close(done)

	_, err := NewFetcher(discard, 20*time.Millisecond).Fetch(context.Background(), srv.URL)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
}

type clientFunc func(*http.Request) (*http.Response, error)

func (f clientFunc) Do(r *http.Request) (*http.Response, error) { return f(r) }

func TestFetchTransportError(t *testing.T) {
	boom := errors.New("boom")
	f := NewFetcherWithClient(discard, clientFunc(func(*http.Request) (*http.Response, error) { return nil, boom }))
	if _, err := f.Fetch(context.Background(), "http://example.invalid"); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}
