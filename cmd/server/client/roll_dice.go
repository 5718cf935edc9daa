package client

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/Pallarran/Ultimate-D-D-Tools/internal/handlers/api/v1alpha1"
	dicesession "github.com/Pallarran/Ultimate-D-D-Tools/internal/repositories/dice_session"
)

var (
	ownerType   string
	rollContext string
	rollCrit    bool
	rollGWF     bool
	rollTTL     time.Duration
)

var rollDiceCmd = &cobra.Command{
	Use:   "roll-dice [notation] [owner-id]",
	Short: "Roll damage dice into a session",
	Long: `Roll a damage expression and keep it in the owner's roll session. Examples:

  roll-dice 2d6+3 build_123
  roll-dice 1d8+4 build_123 --crit
  roll-dice 2d6+5 build_123 --gwf --context greatsword`,
	Args: cobra.ExactArgs(2),
	RunE: rollDice,
}

var getRollSessionCmd = &cobra.Command{
	Use:   "get-roll-session [owner-id]",
	Short: "Show the rolls in a session",
	Args:  cobra.ExactArgs(1),
	RunE:  getRollSession,
}

var clearRollSessionCmd = &cobra.Command{
	Use:   "clear-roll-session [owner-id]",
	Short: "Discard a roll session",
	Args:  cobra.ExactArgs(1),
	RunE:  clearRollSession,
}

func init() {
	for _, cmd := range []*cobra.Command{rollDiceCmd, getRollSessionCmd, clearRollSessionCmd} {
		cmd.Flags().StringVar(&ownerType, "owner-type", "build", "Type of the session owner")
		cmd.Flags().StringVar(&rollContext, "context", "", "Session context (damage when empty)")
	}
	rollDiceCmd.Flags().BoolVar(&rollCrit, "crit", false, "Double the dice for a critical hit")
	rollDiceCmd.Flags().BoolVar(&rollGWF, "gwf", false, "Reroll 1s and 2s once (Great Weapon Fighting)")
	rollDiceCmd.Flags().DurationVar(&rollTTL, "ttl", 0, "Session lifetime (server default when zero)")
}

func rollDice(_ *cobra.Command, args []string) error {
	client, cleanup, err := createDiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	fmt.Printf("Rolling %s for %s %s...\n", args[0], ownerType, args[1])

	resp, err := client.RollDamage(ctx, &v1alpha1.RollDamageRequest{
		OwnerType:      ownerType,
		OwnerID:        args[1],
		Context:        rollContext,
		Notation:       args[0],
		RerollLowFaces: rollGWF,
		Critical:       rollCrit,
		TTLSeconds:     int64(rollTTL / time.Second),
	})
	if err != nil {
		return fmt.Errorf("failed to roll dice: %w", err)
	}

	if jsonOutput {
		return PrintJSON(os.Stdout, resp)
	}

	fmt.Printf("\n🎲 Dice Roll Results:\n")
	fmt.Printf("===================\n")
	printRoll(*resp.Roll)

	fmt.Printf("\nSession expires at: %s\n", time.Unix(resp.ExpiresAt, 0).Format("2006-01-02 15:04:05"))
	fmt.Printf("Total rolls in session: %d\n", len(resp.Rolls))

	return nil
}

func getRollSession(_ *cobra.Command, args []string) error {
	client, cleanup, err := createDiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetRollSession(ctx, &v1alpha1.GetRollSessionRequest{
		OwnerType: ownerType,
		OwnerID:   args[0],
		Context:   rollContext,
	})
	if err != nil {
		return fmt.Errorf("failed to get roll session: %w", err)
	}

	if jsonOutput {
		return PrintJSON(os.Stdout, resp)
	}

	fmt.Printf("\n📜 Roll Session:\n")
	fmt.Printf("================\n")
	fmt.Printf("Created: %s\n", time.Unix(resp.CreatedAt, 0).Format("2006-01-02 15:04:05"))
	fmt.Printf("Expires: %s\n", time.Unix(resp.ExpiresAt, 0).Format("2006-01-02 15:04:05"))
	fmt.Printf("Total Rolls: %d\n", len(resp.Rolls))

	for i, roll := range resp.Rolls {
		fmt.Printf("\nRoll %d:\n", i+1)
		printRoll(roll)
	}

	return nil
}

func clearRollSession(_ *cobra.Command, args []string) error {
	client, cleanup, err := createDiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ClearRollSession(ctx, &v1alpha1.ClearRollSessionRequest{
		OwnerType: ownerType,
		OwnerID:   args[0],
		Context:   rollContext,
	})
	if err != nil {
		return fmt.Errorf("failed to clear roll session: %w", err)
	}

	fmt.Printf("%s (%d rolls)\n", resp.Message, resp.RollsCleared)
	return nil
}

func printRoll(roll dicesession.DiceRoll) {
	fmt.Printf("  Roll ID: %s\n", roll.RollID)
	fmt.Printf("  Notation: %s\n", roll.Notation)
	fmt.Printf("  Individual Dice: %v\n", roll.Dice)
	if len(roll.Rerolled) > 0 {
		fmt.Printf("  Rerolled: %v\n", roll.Rerolled)
	}
	fmt.Printf("  Total: %d\n", roll.Total)
	if roll.Critical {
		fmt.Printf("  Critical hit\n")
	}
	if roll.Description != "" {
		fmt.Printf("  Description: %s\n", roll.Description)
	}
}
