package client

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/Pallarran/Ultimate-D-D-Tools/internal/handlers/api/v1alpha1"
)

var hitRequest v1alpha1.HitChanceRequest

var hitChanceCmd = &cobra.Command{
	Use:   "hit-chance [attack-bonus] [ac]",
	Short: "Show hit and crit odds for one attack",
	Long: `Show hit and crit odds for one attack roll. Examples:

  hit-chance 7 16
  hit-chance 7 16 --mode advantage --crit 19
  hit-chance 5 15 --modifier 1d4`,
	Args: cobra.ExactArgs(2),
	RunE: hitChance,
}

func init() {
	hitChanceCmd.Flags().StringVar(&hitRequest.Mode, "mode", "normal", "Roll mode (normal, advantage, disadvantage)")
	hitChanceCmd.Flags().IntVar(&hitRequest.CritThreshold, "crit", 20, "Lowest natural roll that crits")
	hitChanceCmd.Flags().StringVar(&hitRequest.ModifierDie, "modifier", "", "Die added to the roll, e.g. 1d4 for Bless")
	hitChanceCmd.Flags().StringVar(&hitRequest.ModifierKind, "modifier-kind", "bonus", "Whether the modifier die is a bonus or a penalty")
	hitChanceCmd.Flags().BoolVar(&hitRequest.BestOfThree, "best-of-three", false, "Roll three dice under advantage (Elven Accuracy)")
}

func hitChance(_ *cobra.Command, args []string) error {
	req := hitRequest

	var err error
	if req.AttackBonus, err = strconv.ParseFloat(args[0], 64); err != nil {
		return fmt.Errorf("invalid attack bonus %q: %w", args[0], err)
	}
	if req.Defense, err = strconv.Atoi(args[1]); err != nil {
		return fmt.Errorf("invalid AC %q: %w", args[1], err)
	}

	client, cleanup, err := createCombatLabClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.HitChance(ctx, &req)
	if err != nil {
		return fmt.Errorf("failed to compute hit chance: %w", err)
	}

	if jsonOutput {
		return PrintJSON(os.Stdout, resp)
	}
	fmt.Printf("%+.0f vs AC %d (%s): hit %s, crit %s\n",
		req.AttackBonus, req.Defense, resp.Mode, percent(resp.HitChance), percent(resp.CritChance))
	return nil
}
