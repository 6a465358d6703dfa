// README: Benchmark runner; executes HTTP/DB checks against a running tripmind-api and prints results.
package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

type benchConfig struct {
	BaseURL        string
	DSN            string
	MigrationPath  string
	ApplyMigration bool
	Strict         bool
	Timeout        time.Duration
	Concurrency    int
	Duration       time.Duration
}

var benchCfg benchConfig

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run smoke and throughput checks against a running API",
	RunE: func(cmd *cobra.Command, args []string) error {
		benchCfg.BaseURL = strings.TrimRight(benchCfg.BaseURL, "/")

		ctx, cancel := context.WithTimeout(context.Background(), benchCfg.Timeout)
		defer cancel()

		runner := newRunner(benchCfg, cmd)
		results := runner.RunAll(ctx)

		s := summarize(results)
		fmt.Fprintln(cmd.OutOrStdout(), "\n== Summary ==")
		fmt.Fprintf(cmd.OutOrStdout(), "PASS=%d FAIL=%d SKIP=%d\n", s.pass, s.fail, s.skip)
		if s.fail > 0 || (benchCfg.Strict && s.skip > 0) {
			return fmt.Errorf("bench: %d failed, %d skipped", s.fail, s.skip)
		}
		return nil
	},
}

func init() {
	f := benchCmd.Flags()
	f.StringVar(&benchCfg.BaseURL, "base-url", "http://localhost:8080", "API base URL")
	f.StringVar(&benchCfg.DSN, "dsn", "", "Postgres DSN of the usage log (optional)")
	f.StringVar(&benchCfg.MigrationPath, "migration", "migrations/0001_itinerary_usage.sql", "migration SQL path")
	f.BoolVar(&benchCfg.ApplyMigration, "apply-migration", false, "apply migration SQL before the checks")
	f.BoolVar(&benchCfg.Strict, "strict", false, "treat skipped checks as failures")
	f.DurationVar(&benchCfg.Timeout, "timeout", 2*time.Minute, "total timeout")
	f.IntVar(&benchCfg.Concurrency, "concurrency", 20, "concurrency for throughput checks")
	f.DurationVar(&benchCfg.Duration, "duration", 10*time.Second, "duration of each throughput check")
}

type benchSummary struct {
	pass, fail, skip int
}

func summarize(results []Result) benchSummary {
	var s benchSummary
	for _, r := range results {
		switch r.Status {
		case statusPass:
			s.pass++
		case statusFail:
			s.fail++
		case statusSkip:
			s.skip++
		}
	}
	return s
}

type Runner struct {
	cfg   benchConfig
	httpc *http.Client
	db    *pgxpool.Pool
	out   *cobra.Command
}

func newRunner(cfg benchConfig, cmd *cobra.Command) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 90 * time.Second},
		out:   cmd,
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.DSN != "" {
		if db, err := pgxpool.New(ctx, r.cfg.DSN); err == nil {
			r.db = db
			defer db.Close()
		}
	}

	tests := r.cases()
	results := make([]Result, 0, len(tests))
	w := r.out.OutOrStdout()
	for _, tc := range tests {
		res := tc.Run(ctx, r)
		results = append(results, res)
		fmt.Fprintf(w, "%-5s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Fprintf(w, " (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Fprintf(w, " - %s", res.Note)
		}
		fmt.Fprintln(w)
	}
	return results
}
