package client

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/analysis"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/combat"
)

// PrintJSON writes v as indented JSON
func PrintJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}

func rounds(r float64) string {
	return fmt.Sprintf("%.2f", r)
}

// PrintReport writes a build analysis for a terminal
func PrintReport(w io.Writer, r *analysis.Report) {
	fmt.Fprintf(w, "\n⚔️  Analysis vs AC %d (%s)\n", r.Defense, r.Mode)
	fmt.Fprintf(w, "==========================\n")

	for _, a := range r.Attacks {
		fmt.Fprintf(w, "\n%s (%+.0f to hit)\n", a.Name, a.AttackBonus)
		fmt.Fprintf(w, "  Damage: %s, crit %s (crits on %d+)\n", a.HitDamage, a.CritDamage, a.CritThreshold)
		fmt.Fprintf(w, "  Hit: %s  Crit: %s\n", percent(a.HitChance), percent(a.CritRate))
		fmt.Fprintf(w, "  Expected damage: %.2f\n", a.ExpectedDamage)
		if a.Tradeoff != nil {
			state := "declined"
			if a.Tradeoff.Applied {
				state = "applied"
			}
			fmt.Fprintf(w, "  %s (%s): %s, gain %+.2f\n", a.Tradeoff.Feat, a.Tradeoff.Policy, state, a.Tradeoff.Result.Gain())
		}
	}

	for _, rider := range r.Riders {
		fmt.Fprintf(w, "\nRider %s (%s): %.2f per round\n", rider.Name, rider.Dice, rider.ExpectedDamage)
	}

	fmt.Fprintf(w, "\nDPR: %.2f (riders %.2f)\n", r.CombinedDPR, r.RiderDPR)
	fmt.Fprintf(w, "Average crit rate: %s\n", percent(r.AverageCritRate))
	PrintTimeToKill(w, r.TimeToKill, r.TimeToKillTable)

	for _, f := range r.Findings {
		fmt.Fprintf(w, "[%s] %s: %s\n", f.Severity, f.Field, f.Message)
	}
	for _, warning := range r.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
}

// PrintTimeToKill writes an estimate and its HP pool table
func PrintTimeToKill(w io.Writer, estimate combat.TimeToKill, table []combat.TimeToKill) {
	if estimate.NoOffense {
		fmt.Fprintf(w, "\nTime to kill %.0f HP: no damage output\n", estimate.HP)
	} else {
		fmt.Fprintf(w, "\nTime to kill %.0f HP: %s rounds (%s to %s)\n",
			estimate.HP, rounds(estimate.ExpectedRounds), rounds(estimate.BoundA), rounds(estimate.BoundB))
	}

	if len(table) == 0 {
		return
	}
	fmt.Fprintf(w, "\n  %6s  %8s  %8s  %8s\n", "HP", "Rounds", "1 round", "3 rounds")
	for _, row := range table {
		fmt.Fprintf(w, "  %6.0f  %8s  %8s  %8s\n",
			row.HP, rounds(row.ExpectedRounds), percent(row.KillChanceOneRound), percent(row.KillChanceThreeRounds))
	}
	fmt.Fprintln(w)
}

// PrintSweep writes a trade-off sweep for a terminal
func PrintSweep(w io.Writer, r *analysis.SweepReport) {
	feat := r.Feat
	if feat == "" {
		feat = "-5/+10"
	}
	fmt.Fprintf(w, "\n🎯 %s trade-off for %s (%+.0f to hit, %s)\n", feat, r.Name, r.AttackBonus, r.HitDamage)
	fmt.Fprintf(w, "==========================\n")

	fmt.Fprintf(w, "\n  %3s  %8s  %8s  %8s\n", "AC", "Normal", "Power", "Gain")
	for _, p := range r.Points {
		fmt.Fprintf(w, "  %3d  %8.2f  %8.2f  %+8.2f\n",
			p.Defense, p.Result.Baseline.ExpectedDamage, p.Result.Modified.ExpectedDamage, p.Result.Gain())
	}

	fmt.Fprintln(w)
	for _, win := range r.Windows {
		fmt.Fprintf(w, "AC %d-%d: %s\n", win.From, win.To, win.Chosen)
	}
}

// PrintPillars writes pillar scores as 0-100 bars
func PrintPillars(w io.Writer, r *analysis.PillarReport) {
	fmt.Fprintf(w, "\n🧭 Pillar scores\n")
	fmt.Fprintf(w, "================\n")

	rows := []struct {
		name   string
		score  float64
		weight float64
	}{
		{"Social", r.Scores.Social, r.Weights.Social},
		{"Exploration", r.Scores.Exploration, r.Weights.Exploration},
		{"Control", r.Scores.Control, r.Weights.Control},
		{"Mobility", r.Scores.Mobility, r.Weights.Mobility},
		{"Survivability", r.Scores.Survivability, r.Weights.Survivability},
	}
	for _, row := range rows {
		bar := strings.Repeat("#", int(row.score/10))
		fmt.Fprintf(w, "%-14s %5.1f %-10s x%g\n", row.name, row.score, bar, row.weight)
	}
	fmt.Fprintf(w, "\nWeighted: %.1f\n", r.Weighted)
}
