package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/pillars"
	v1alpha1 "github.com/Pallarran/Ultimate-D-D-Tools/internal/handlers/api/v1alpha1"
)

var pillarWeights pillars.Weights

var pillarsCmd = &cobra.Command{
	Use:   "pillars [build-id]",
	Short: "Score a build on the non-combat pillars",
	Long: `Score a stored build on social, exploration, control, mobility and
survivability. Weights default to equal. Examples:

  pillars build_1
  pillars build_1 --social 2 --survivability 1`,
	Args: cobra.ExactArgs(1),
	RunE: scorePillars,
}

func init() {
	AddWeightFlags(pillarsCmd, &pillarWeights)
}

// AddWeightFlags registers one weight flag per pillar on cmd
func AddWeightFlags(cmd *cobra.Command, w *pillars.Weights) {
	cmd.Flags().Float64Var(&w.Social, "social", 0, "Weight of the social pillar")
	cmd.Flags().Float64Var(&w.Exploration, "exploration", 0, "Weight of the exploration pillar")
	cmd.Flags().Float64Var(&w.Control, "control", 0, "Weight of the control pillar")
	cmd.Flags().Float64Var(&w.Mobility, "mobility", 0, "Weight of the mobility pillar")
	cmd.Flags().Float64Var(&w.Survivability, "survivability", 0, "Weight of the survivability pillar")
}

func scorePillars(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCombatLabClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ScorePillars(ctx, &v1alpha1.ScorePillarsRequest{
		BuildID: args[0],
		Weights: pillarWeights,
	})
	if err != nil {
		return fmt.Errorf("failed to score pillars: %w", err)
	}

	if jsonOutput {
		return PrintJSON(os.Stdout, resp)
	}
	PrintPillars(os.Stdout, resp.Report)
	return nil
}
