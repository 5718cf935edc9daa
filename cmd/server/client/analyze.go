package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/Pallarran/Ultimate-D-D-Tools/internal/handlers/api/v1alpha1"
)

var (
	analyzeScenarioID string
	sweepProfileID    string
	sweepFrom         int
	sweepTo           int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [build-id]",
	Short: "Analyse a stored build",
	Long: `Analyse a stored build against a scenario. Examples:

  analyze build_123
  analyze build_123 --scenario scenario_boss`,
	Args: cobra.ExactArgs(1),
	RunE: analyzeBuild,
}

var tradeoffCmd = &cobra.Command{
	Use:   "tradeoff [build-id]",
	Short: "Sweep the -5/+10 trade-off across AC",
	Long: `Compare normal attacks against Sharpshooter or Great Weapon Master. Examples:

  tradeoff build_123
  tradeoff build_123 --profile longbow --from 12 --to 20`,
	Args: cobra.ExactArgs(1),
	RunE: sweepTradeoff,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeScenarioID, "scenario", "", "Scenario ID (default scenario when empty)")

	tradeoffCmd.Flags().StringVar(&analyzeScenarioID, "scenario", "", "Scenario ID (default scenario when empty)")
	tradeoffCmd.Flags().StringVar(&sweepProfileID, "profile", "", "Attack profile ID (first profile when empty)")
	tradeoffCmd.Flags().IntVar(&sweepFrom, "from", 0, "Lowest AC to sweep")
	tradeoffCmd.Flags().IntVar(&sweepTo, "to", 0, "Highest AC to sweep")
}

func analyzeBuild(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCombatLabClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.AnalyzeBuild(ctx, &v1alpha1.AnalyzeBuildRequest{
		Selection: v1alpha1.Selection{BuildID: args[0], ScenarioID: analyzeScenarioID},
	})
	if err != nil {
		return fmt.Errorf("failed to analyze build: %w", err)
	}

	if jsonOutput {
		return PrintJSON(os.Stdout, resp)
	}
	PrintReport(os.Stdout, resp.Report)
	return nil
}

func sweepTradeoff(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCombatLabClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SweepTradeoff(ctx, &v1alpha1.SweepTradeoffRequest{
		Selection: v1alpha1.Selection{BuildID: args[0], ScenarioID: analyzeScenarioID},
		ProfileID: sweepProfileID,
		FromAC:    sweepFrom,
		ToAC:      sweepTo,
	})
	if err != nil {
		return fmt.Errorf("failed to sweep trade-off: %w", err)
	}

	if jsonOutput {
		return PrintJSON(os.Stdout, resp)
	}
	PrintSweep(os.Stdout, resp.Report)
	return nil
}
