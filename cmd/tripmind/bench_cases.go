// README: Benchmark cases; itinerary generation, helper endpoints, usage log and throughput.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"sync"
	"sync/atomic"
	"time"
)

const (
	statusPass = "PASS"
	statusFail = "FAIL"
	statusSkip = "SKIP"
)

type Result struct {
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

var benchTrip = map[string]any{
	"destination": "Paris",
	"startDate":   "2024-06-01",
	"endDate":     "2024-06-03",
	"travelers":   2,
	"budget":      "luxury",
	"interests":   []string{"Culture", "Food"},
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	return []TestCase{
		{
			Name: "Env: Postgres connect",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: statusSkip, Note: "dsn not set"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.db.Ping(ctx); err != nil {
					return Result{Status: statusFail, Note: err.Error()}
				}
				return Result{Status: statusPass}
			},
		},
		{
			Name: "Migration: apply (optional)",
			Run: func(ctx context.Context, r *Runner) Result {
				if !r.cfg.ApplyMigration {
					return Result{Status: statusSkip, Note: "apply-migration=false"}
				}
				if r.db == nil {
					return Result{Status: statusFail, Note: "db not configured"}
				}
				sql, err := os.ReadFile(r.cfg.MigrationPath)
				if err != nil {
					return Result{Status: statusFail, Note: err.Error()}
				}
				for _, s := range splitSQL(string(sql)) {
					if _, err := r.db.Exec(ctx, s); err != nil {
						return Result{Status: statusFail, Note: err.Error()}
					}
				}
				return Result{Status: statusPass}
			},
		},
		{
			Name: "Migration: tables exist",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: statusSkip, Note: "dsn not set"}
				}
				tables, err := extractTables(r.cfg.MigrationPath)
				if err != nil {
					return Result{Status: statusFail, Note: err.Error()}
				}
				for _, t := range tables {
					var exists bool
					err := r.db.QueryRow(ctx,
						"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name=$1)",
						t,
					).Scan(&exists)
					if err != nil {
						return Result{Status: statusFail, Note: err.Error()}
					}
					if !exists {
						return Result{Status: statusFail, Note: "missing table: " + t}
					}
				}
				return Result{Status: statusPass}
			},
		},

		httpCase("API: health", http.MethodGet, base+"/api/health", nil, http.StatusOK),
		httpCase("API: liveness", http.MethodGet, base+"/health", nil, http.StatusOK),

		{
			Name: "Itinerary: generate (valid)",
			Run: func(ctx context.Context, r *Runner) Result {
				start := time.Now()
				resp, body, err := r.do(ctx, http.MethodPost, base+"/api/generate-itinerary", benchTrip)
				latency := time.Since(start)
				if err != nil {
					return Result{Status: statusFail, Note: err.Error()}
				}
				if resp.StatusCode != http.StatusOK {
					return Result{Status: statusFail, Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
				}
				var out struct {
					Days []json.RawMessage `json:"days"`
				}
				if err := json.Unmarshal(body, &out); err != nil {
					return Result{Status: statusFail, Latency: latency, Note: err.Error()}
				}
				if len(out.Days) != 3 {
					return Result{Status: statusFail, Latency: latency, Note: fmt.Sprintf("days=%d want 3", len(out.Days))}
				}
				return Result{Status: statusPass, Latency: latency, Note: "source=" + resp.Header.Get("X-Itinerary-Source")}
			},
		},
		httpCase("Itinerary: missing destination -> 400", http.MethodPost, base+"/api/generate-itinerary", map[string]any{
			"startDate": "2024-06-01",
			"endDate":   "2024-06-03",
			"travelers": 1,
		}, http.StatusBadRequest),
		httpCase("Itinerary: end before start -> 400", http.MethodPost, base+"/api/generate-itinerary", map[string]any{
			"destination": "Paris",
			"startDate":   "2024-06-03",
			"endDate":     "2024-06-01",
			"travelers":   1,
		}, http.StatusBadRequest),

		httpCase("Helpers: validate flight", http.MethodPost, base+"/api/validate-flight", map[string]any{"flightNumber": "AF1234"}, http.StatusOK),
		httpCase("Helpers: save trip", http.MethodPost, base+"/api/save-trip", map[string]any{"userId": "u1", "tripData": benchTrip}, http.StatusOK),
		httpCase("Helpers: preferences", http.MethodGet, base+"/api/user/preferences?userId=u1", nil, http.StatusOK),
		httpCase("Usage: summary", http.MethodGet, base+"/api/ai/usage", nil, http.StatusOK),

		{
			Name: "Perf: generate itinerary throughput",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, base+"/api/generate-itinerary", benchTrip)
			},
		},
	}
}

func (r *Runner) do(ctx context.Context, method, url string, body any) (*http.Response, []byte, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, nil, err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return nil, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := r.httpc.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	return resp, b, err
}

func httpCase(name, method, url string, body any, okStatuses ...int) TestCase {
	return TestCase{
		Name: name,
		Run: func(ctx context.Context, r *Runner) Result {
			start := time.Now()
			resp, _, err := r.do(ctx, method, url, body)
			latency := time.Since(start)
			if err != nil {
				return Result{Status: statusFail, Note: err.Error()}
			}
			note := fmt.Sprintf("status=%d", resp.StatusCode)
			if contains(okStatuses, resp.StatusCode) {
				return Result{Status: statusPass, Latency: latency, Note: note}
			}
			return Result{Status: statusFail, Latency: latency, Note: note}
		},
	}
}

func perfLoad(ctx context.Context, r *Runner, url string, payload any) Result {
	end := time.Now().Add(r.cfg.Duration)
	var count, errCount atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) && ctx.Err() == nil {
				resp, _, err := r.do(ctx, http.MethodPost, url, payload)
				if err != nil || resp.StatusCode != http.StatusOK {
					errCount.Add(1)
					continue
				}
				count.Add(1)
			}
		}()
	}
	wg.Wait()

	if count.Load() == 0 {
		return Result{Status: statusFail, Note: "no requests completed"}
	}
	rps := float64(count.Load()) / r.cfg.Duration.Seconds()
	return Result{Status: statusPass, Note: fmt.Sprintf("rps=%.1f errors=%d", rps, errCount.Load())}
}

func contains(list []int, v int) bool {
	for _, i := range list {
		if i == v {
			return true
		}
	}
	return false
}

func extractTables(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	re := regexp.MustCompile(`(?i)create\s+table\s+if\s+not\s+exists\s+([a-zA-Z0-9_]+)`)
	matches := re.FindAllStringSubmatch(string(b), -1)
	tables := make([]string, 0, len(matches))
	for _, m := range matches {
		tables = append(tables, m[1])
	}
	return tables, nil
}

func splitSQL(sql string) []string {
	var stmts []string
	var cur bytes.Buffer
	for _, line := range bytes.Split([]byte(sql), []byte("\n")) {
		l := bytes.TrimSpace(line)
		if len(l) == 0 || bytes.HasPrefix(l, []byte("--")) {
			continue
		}
		cur.Write(line)
		cur.WriteByte('\n')
	}
	for _, p := range bytes.Split(cur.Bytes(), []byte(";")) {
		if s := string(bytes.TrimSpace(p)); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
