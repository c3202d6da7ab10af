package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestParseMode(t *testing.T) {
	cases := []struct {
		raw     string
		want    loadMode
		wantErr bool
	}{
		{"create", modeCreate, false},
		{" create-complete ", modeCreateComplete, false},
		{"create-delete", modeCreateDelete, false},
		{"pay", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		got, err := parseMode(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseMode(%q): expected error", tc.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseMode(%q): unexpected error %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseMode(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestDispatchJobs_CountMode(t *testing.T) {
	jobs := make(chan int, 16)
	cfg := config{total: 5}

	dispatchJobs(jobs, cfg)

	var count int
	for range jobs {
		count++
	}
	if count != 5 {
		t.Fatalf("expected 5 jobs, got %d", count)
	}
}

func TestDispatchJobs_DurationMode(t *testing.T) {
	jobs := make(chan int, 1024)
	cfg := config{duration: 30 * time.Millisecond}

	done := make(chan struct{})
	go func() {
		dispatchJobs(jobs, cfg)
		close(done)
	}()

	var count int
	for range jobs {
		count++
	}
	<-done

	if count == 0 {
		t.Fatal("expected at least one job in duration mode")
	}
}

func TestCollectorAndReport(t *testing.T) {
	col := newCollector()
	started := time.Now()

	col.record("scenario", 10*time.Millisecond, http.StatusOK)
	col.record("scenario", 20*time.Millisecond, http.StatusConflict)
	col.record("CreateOrder", 5*time.Millisecond, http.StatusCreated)
	col.record("CreateOrder", 7*time.Millisecond, http.StatusConflict)

	result := col.buildReport(started, time.Second)

	if result.TotalScenarios != 2 || result.SuccessScenarios != 1 || result.FailedScenarios != 1 {
		t.Fatalf("unexpected scenario counters: %+v", result)
	}
	if result.ErrorRate != 0.5 {
		t.Fatalf("expected error rate 0.5, got %f", result.ErrorRate)
	}
	if result.RPS != 2 {
		t.Fatalf("expected rps 2, got %f", result.RPS)
	}

	create, ok := result.Methods["CreateOrder"]
	if !ok {
		t.Fatal("expected CreateOrder method report")
	}
	if create.Calls != 2 || create.Success != 1 || create.Failed != 1 {
		t.Fatalf("unexpected CreateOrder counters: %+v", create)
	}
	if create.Codes["201"] != 1 || create.Codes["409"] != 1 {
		t.Fatalf("unexpected CreateOrder codes: %+v", create.Codes)
	}
}

func TestPercentileAndSummary(t *testing.T) {
	if got := percentile(nil, 95); got != 0 {
		t.Errorf("percentile(nil) = %f, want 0", got)
	}
	if got := percentile([]float64{42}, 99); got != 42 {
		t.Errorf("percentile(single) = %f, want 42", got)
	}

	sorted := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if got := percentile(sorted, 50); got != 5.5 {
		t.Errorf("p50 = %f, want 5.5", got)
	}

	summary := buildLatencySummary([]float64{3, 1, 2})
	if summary.Min != 1 || summary.Max != 3 || summary.Avg != 2 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	if got := buildLatencySummary(nil); got != (latencySummary{}) {
		t.Fatalf("expected zero summary for empty input, got %+v", got)
	}
}

func TestRatio(t *testing.T) {
	if got := ratio(1, 4); got != 0.25 {
		t.Errorf("ratio(1,4) = %f, want 0.25", got)
	}
	if got := ratio(1, 0); got != 0 {
		t.Errorf("ratio(1,0) = %f, want 0", got)
	}
}

func TestWriteJSONReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")

	result := report{TotalScenarios: 3, SuccessScenarios: 3}
	if err := writeJSONReport(path, result); err != nil {
		t.Fatalf("write report: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}

	var decoded report
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if decoded.TotalScenarios != 3 {
		t.Fatalf("unexpected decoded report: %+v", decoded)
	}

	if err := writeJSONReport(".", result); err == nil {
		t.Fatal("expected error for directory path")
	}
}

func TestRunScenario_AgainstStubServer(t *testing.T) {
	var deletes int64

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/orders", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":"order-1"}`)
	})
	mux.HandleFunc("PUT /api/v1/orders/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"order-1","state":"COMPLETED"}`)
	})
	mux.HandleFunc("DELETE /api/v1/orders/{id}", func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt64(&deletes, 1)
		w.WriteHeader(http.StatusNoContent)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := &apiClient{
		http:       server.Client(),
		baseURL:    server.URL,
		customerID: "customer-1",
		productID:  "product-1",
	}

	col := newCollector()
	cfg := config{mode: modeCreateComplete, price: 100}
	if err := runScenario(client, cfg, col); err != nil {
		t.Fatalf("create-complete scenario: %v", err)
	}

	cfg.mode = modeCreateDelete
	if err := runScenario(client, cfg, col); err != nil {
		t.Fatalf("create-delete scenario: %v", err)
	}
	if atomic.LoadInt64(&deletes) != 1 {
		t.Fatalf("expected one delete call, got %d", deletes)
	}

	result := col.buildReport(time.Now(), time.Second)
	if result.TotalScenarios != 2 || result.FailedScenarios != 0 {
		t.Fatalf("unexpected scenario report: %+v", result)
	}
	if result.Methods["CreateOrder"].Calls != 2 {
		t.Fatalf("expected 2 CreateOrder calls, got %+v", result.Methods["CreateOrder"])
	}
	if result.Methods["UpdateOrder"].Calls != 1 || result.Methods["DeleteOrder"].Calls != 1 {
		t.Fatalf("unexpected method calls: %+v", result.Methods)
	}
}

func TestRunScenario_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	client := &apiClient{
		http:       server.Client(),
		baseURL:    server.URL,
		customerID: "customer-1",
		productID:  "product-1",
	}

	col := newCollector()
	if err := runScenario(client, config{mode: modeCreate, price: 100}, col); err == nil {
		t.Fatal("expected scenario error")
	}

	result := col.buildReport(time.Now(), time.Second)
	if result.FailedScenarios != 1 {
		t.Fatalf("expected one failed scenario, got %+v", result)
	}
}
