package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"unfurl/internal/auth"
	"unfurl/internal/domain"
)

type extractorStub struct {
	result *domain.Result
}

func (e *extractorStub) Extract(ctx context.Context, pageURL *url.URL) (*domain.Result, error) {
	return e.result, nil
}

type limiterStub struct{}

func (l *limiterStub) Allow(ctx context.Context, bucket string) (bool, error) {
	return true, nil
}

type usageStub struct{}

func (u *usageStub) Record(ctx context.Context, pageURL string, missing bool) error {
	return nil
}

func (u *usageStub) Totals(ctx context.Context) (*domain.UsageTotals, error) {
	return &domain.UsageTotals{}, nil
}

func testHandler(result *domain.Result) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(logger, &extractorStub{result: result}, &limiterStub{}, &usageStub{}, auth.NewVerifier(""))
	return router.SetupRoutes()
}

// The method rejection must survive the full middleware chain: no wrapper
// may answer a non-GET verb before the handler names it in the 405 body.
func TestRouterMetatagsMethodNotAllowed(t *testing.T) {
	handler := testHandler(&domain.Result{})

	for _, method := range []string{"OPTIONS", "POST", "PUT", "DELETE", "HEAD"} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/api/v1/metatags?url=https://example.com", nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusMethodNotAllowed {
				t.Errorf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
			}
			want := fmt.Sprintf("Method %s Not Allowed", method)
			if body := strings.TrimRight(rr.Body.String(), "\n"); body != want {
				t.Errorf("body = %q, want %q", body, want)
			}
			if origin := rr.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
				t.Errorf("Access-Control-Allow-Origin = %q, want *", origin)
			}
		})
	}
}

func TestRouterMetatagsGet(t *testing.T) {
	title := "A Page"
	handler := testHandler(&domain.Result{Title: &title})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/metatags?url=https://example.com", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var body map[string]*string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["title"] == nil || *body["title"] != "A Page" {
		t.Errorf("title = %v, want A Page", body["title"])
	}
}
