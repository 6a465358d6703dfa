package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tripmind/internal/ai"
	"tripmind/internal/config"
	"tripmind/internal/infra"
	"tripmind/internal/modules/itinerary"
)

type planOptions struct {
	destination string
	start       string
	end         string
	travelers   int
	budget      string
	interests   []string
	mock        bool
}

var planOpts planOptions

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate an itinerary and print it as JSON",
	Example: `  tripmind plan --destination Paris --start 2024-06-01 --end 2024-06-03 \
    --travelers 2 --budget luxury --interest Culture --interest Food`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(cmd, planOpts)
	},
}

func init() {
	f := planCmd.Flags()
	f.StringVarP(&planOpts.destination, "destination", "d", "", "destination city or region")
	f.StringVar(&planOpts.start, "start", "", "start date (YYYY-MM-DD)")
	f.StringVar(&planOpts.end, "end", "", "end date (YYYY-MM-DD)")
	f.IntVarP(&planOpts.travelers, "travelers", "t", 1, "number of travelers")
	f.StringVarP(&planOpts.budget, "budget", "b", "moderate", "budget tag (budget, moderate, luxury)")
	f.StringSliceVarP(&planOpts.interests, "interest", "i", nil, "interest tag, repeatable (Culture, Food, Adventure, Nightlife)")
	f.BoolVar(&planOpts.mock, "mock", false, "skip the model and use the rule-based generator")
	_ = planCmd.MarkFlagRequired("destination")
	_ = planCmd.MarkFlagRequired("start")
	_ = planCmd.MarkFlagRequired("end")
}

func (o planOptions) request() (itinerary.Request, error) {
	start, err := itinerary.ParseDate(o.start)
	if err != nil {
		return itinerary.Request{}, err
	}
	end, err := itinerary.ParseDate(o.end)
	if err != nil {
		return itinerary.Request{}, err
	}
	req := itinerary.Request{
		Destination: o.destination,
		StartDate:   start,
		EndDate:     end,
		Travelers:   o.travelers,
		Budget:      o.budget,
		Interests:   o.interests,
	}
	return req, req.Validate()
}

func runPlan(cmd *cobra.Command, o planOptions) error {
	req, err := o.request()
	if err != nil {
		return err
	}

	var opts []config.Option
	if o.mock {
		opts = append(opts, config.WithItineraryMode(config.ModeMock))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}
	logger, err := infra.NewLogger(cfg.Log.Level, "console")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.HTTP.GenerateTimeout)
	defer cancel()

	var primary itinerary.Source
	if cfg.Itinerary.Mode == config.ModeAI {
		completer, closeAI, err := ai.NewFromConfig(ctx, cfg.AI)
		if err != nil {
			return err
		}
		defer func() { _ = closeAI() }()
		primary = itinerary.NewAISource(completer, cfg.AI.ModelName())
	}

	svc := itinerary.NewService(itinerary.ServiceDeps{
		Primary: primary,
		Model:   cfg.AI.ModelName(),
		Logger:  logger,
	})
	out := svc.Plan(ctx, req)

	fmt.Fprintf(cmd.ErrOrStderr(), "source: %s\n", out.Source)
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out.Itinerary)
}
