package main

import (
	"fmt"
	"strings"

	"spacex-launch-dashboard/internal/adapters/launchsource"
	"spacex-launch-dashboard/internal/config"
	"spacex-launch-dashboard/internal/domain"
	"spacex-launch-dashboard/internal/services"

	"github.com/spf13/cobra"
)

var inspectFlags struct {
	source string
	step   float64
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Load a launch records source and print its sites, bounds and slider ticks",
	RunE:  runInspect,
}

func init() {
	f := inspectCmd.Flags()
	f.StringVar(&inspectFlags.source, "source", config.Get("DATA_SOURCE", "data/spacex_launch_dash.csv"), "file path, sqlite://path or postgres:// URL")
	f.Float64Var(&inspectFlags.step, "step", services.DefaultSliderStep, "payload slider step in kg")
}

func runInspect(cmd *cobra.Command, _ []string) error {
	source, closeSource, err := launchsource.Open(inspectFlags.source)
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	defer closeSource()

	store, err := services.LoadStore(cmd.Context(), source, services.StoreOptions{SliderStep: inspectFlags.step})
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}

	engine := services.NewQueryEngine(store.Records())
	perSite, err := engine.OutcomeDistribution(domain.SiteAll)
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}

	out := cmd.OutOrStdout()
	b := store.Bounds()
	sum := store.Summary()
	fmt.Fprintf(out, "Source:   %s\n", store.Source())
	fmt.Fprintf(out, "Records:  %d (%d successful, %.1f%%)\n", sum.Launches, sum.Successes, sum.SuccessRatePct)
	fmt.Fprintf(out, "Payload:  %g .. %g kg (mean %.0f kg)\n", b.Low, b.High, sum.MeanPayloadKg)
	fmt.Fprintf(out, "Sites:\n")
	for _, s := range store.Sites() {
		fmt.Fprintf(out, "  %-14s %d launches\n", s, perSite[s])
	}

	ticks := make([]string, 0, len(store.Slider().Ticks))
	for _, t := range store.Slider().Ticks {
		ticks = append(ticks, fmt.Sprintf("%.0f", t))
	}
	fmt.Fprintf(out, "Ticks:    %s\n", strings.Join(ticks, " "))
	return nil
}
