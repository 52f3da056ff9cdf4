package poller

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/deuexpo/keepa/internal/api"
	"github.com/deuexpo/keepa/internal/metrics"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func productsBody(tokensLeft int, asins ...string) string {
	records := make([]string, len(asins))
	for i, asin := range asins {
		records[i] = fmt.Sprintf(`{"asin":%q,"title":"Product %s"}`, asin, asin)
	}
	return fmt.Sprintf(`{"timestamp":1700000000000,"tokensLeft":%d,"refillIn":1000,"refillRate":5,"products":[%s]}`,
		tokensLeft, strings.Join(records, ","))
}

func testAPIClient(baseURL string) *api.Client {
	return api.NewClient("test-key", api.DomainCom,
		api.WithBaseURL(baseURL),
		api.WithLogger(quietLogger()),
		api.WithRetries(1, time.Millisecond),
	)
}

func TestPoller_Poll(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if got := r.URL.Query().Get("history"); got != "1" {
			t.Errorf("history param = %q, want %q", got, "1")
		}
		if got := r.URL.Query().Get("asin"); got != "B00AAA1111,B00BBB2222" {
			t.Errorf("asin param = %q, want both ASINs", got)
		}
		fmt.Fprint(w, productsBody(280, "B00AAA1111", "B00BBB2222"))
	}))
	defer server.Close()

	var handledCount atomic.Int32
	handler := ProductHandlerFunc(func(p api.Product) error {
		handledCount.Add(1)
		return nil
	})

	cfg := Config{
		Interval: time.Hour, // Long interval, we'll trigger manually.
		ASINs:    []string{"B00AAA1111", "B00BBB2222"},
	}

	p := New(cfg, testAPIClient(server.URL), handler, quietLogger(), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p.ctx = ctx

	p.poll()

	if got := requests.Load(); got != 1 {
		t.Errorf("requests = %d, want 1 batched call per cycle", got)
	}
	if got := handledCount.Load(); got != 2 {
		t.Errorf("handledCount = %d, want 2", got)
	}
}

func TestPoller_StartStop(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, productsBody(280, "B00AAA1111"))
	}))
	defer server.Close()

	var called atomic.Bool
	handler := ProductHandlerFunc(func(p api.Product) error {
		called.Store(true)
		return nil
	})

	cfg := Config{
		Interval: 100 * time.Millisecond,
		ASINs:    []string{"B00AAA1111"},
	}

	p := New(cfg, testAPIClient(server.URL), handler, quietLogger(), nil)

	ctx := context.Background()
	if err := p.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// Wait for at least one poll.
	time.Sleep(150 * time.Millisecond)

	stopCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	if err := p.Stop(stopCtx); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	if !called.Load() {
		t.Error("handler was never called")
	}
}

func TestPoller_HandlerErrorDoesNotStopCycle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, productsBody(280, "B00AAA1111", "B00BBB2222", "B00CCC3333"))
	}))
	defer server.Close()

	var seen atomic.Int32
	handler := ProductHandlerFunc(func(p api.Product) error {
		seen.Add(1)
		if p.ASIN == "B00AAA1111" {
			return fmt.Errorf("disk full")
		}
		return nil
	})

	cfg := Config{
		Interval: time.Hour,
		ASINs:    []string{"B00AAA1111", "B00BBB2222", "B00CCC3333"},
	}

	p := New(cfg, testAPIClient(server.URL), handler, quietLogger(), nil)
	p.ctx = context.Background()

	p.poll()

	if got := seen.Load(); got != 3 {
		t.Errorf("handler saw %d products, want all 3 despite one failure", got)
	}
}

func TestPoller_Metrics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, productsBody(137, "B00AAA1111", "B00BBB2222"))
	}))
	defer server.Close()

	set := metrics.NewSet()
	handler := ProductHandlerFunc(func(p api.Product) error { return nil })

	cfg := Config{
		Interval: time.Hour,
		ASINs:    []string{"B00AAA1111", "B00BBB2222"},
	}

	p := New(cfg, testAPIClient(server.URL), handler, quietLogger(), set)
	p.ctx = context.Background()

	p.poll()

	text := scrapeMetrics(t, set)
	for _, want := range []string{
		"keepa_tracker_polls_total 1",
		"keepa_tracker_products_fetched_total 2",
		"keepa_tracker_tokens_left 137",
		"keepa_tracker_poll_errors_total 0",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestPoller_FetchErrorCountsAsPollError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"tokensLeft":10,"refillIn":1000}`)
	}))
	defer server.Close()

	set := metrics.NewSet()
	var called atomic.Bool
	handler := ProductHandlerFunc(func(p api.Product) error {
		called.Store(true)
		return nil
	})

	cfg := Config{
		Interval: time.Hour,
		ASINs:    []string{"B00AAA1111"},
	}

	p := New(cfg, testAPIClient(server.URL), handler, quietLogger(), set)
	p.ctx = context.Background()

	p.poll()

	if called.Load() {
		t.Error("handler called on a failed cycle")
	}
	text := scrapeMetrics(t, set)
	if !strings.Contains(text, "keepa_tracker_poll_errors_total 1") {
		t.Error("metrics output missing poll error count")
	}
	if !strings.Contains(text, "keepa_tracker_polls_total 0") {
		t.Error("failed cycle must not count as a completed poll")
	}
}

func scrapeMetrics(t *testing.T, set *metrics.Set) string {
	t.Helper()

	srv := httptest.NewServer(set.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatalf("scrape metrics: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read metrics body: %v", err)
	}
	return string(body)
}
