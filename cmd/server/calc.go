package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Pallarran/Ultimate-D-D-Tools/cmd/server/client"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/analysis"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/pillars"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/orchestrators/combatlab"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/repositories/builds"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/repositories/scenarios"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/rules"
)

var (
	calcBuildFile    string
	calcScenarioFile string
	calcProfileID    string
	calcFrom         int
	calcTo           int
	calcPools        []float64
	calcJSON         bool
	calcHit          combatlab.HitChanceInput
	calcWeights      pillars.Weights
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run combat math offline against YAML files",
	Long: `Calc commands run the analysis locally without a server. Builds and
scenarios are read from YAML files.`,
}

var calcAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyse a build file against a scenario file",
	Long: `Analyse a build file against a scenario file. Examples:

  calc analyze --build champion.yaml
  calc analyze --build champion.yaml --scenario boss.yaml --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return calcAnalyze(cmd.Context(), cmd.OutOrStdout())
	},
}

var calcTradeoffCmd = &cobra.Command{
	Use:   "tradeoff",
	Short: "Sweep the -5/+10 trade-off for a build file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return calcTradeoff(cmd.Context(), cmd.OutOrStdout())
	},
}

var calcTTKCmd = &cobra.Command{
	Use:   "ttk [dpr] [hp]",
	Short: "Estimate rounds to kill a target",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return calcTimeToKill(cmd.Context(), cmd.OutOrStdout(), args)
	},
}

var calcHitCmd = &cobra.Command{
	Use:   "hit [attack-bonus] [ac]",
	Short: "Show hit and crit odds for one attack",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return calcHitChance(cmd.Context(), cmd.OutOrStdout(), args)
	},
}

var calcPillarsCmd = &cobra.Command{
	Use:   "pillars",
	Short: "Score a build file on the non-combat pillars",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return calcPillars(cmd.Context(), cmd.OutOrStdout())
	},
}

func init() {
	calcCmd.PersistentFlags().BoolVar(&calcJSON, "json", false, "Print results as JSON")

	for _, cmd := range []*cobra.Command{calcAnalyzeCmd, calcTradeoffCmd} {
		cmd.Flags().StringVar(&calcBuildFile, "build", "", "Build YAML file")
		cmd.Flags().StringVar(&calcScenarioFile, "scenario", "", "Scenario YAML file (default scenario when empty)")
		_ = cmd.MarkFlagRequired("build")
	}
	calcPillarsCmd.Flags().StringVar(&calcBuildFile, "build", "", "Build YAML file")
	_ = calcPillarsCmd.MarkFlagRequired("build")
	client.AddWeightFlags(calcPillarsCmd, &calcWeights)
	calcTradeoffCmd.Flags().StringVar(&calcProfileID, "profile", "", "Attack profile ID (first profile when empty)")
	calcTradeoffCmd.Flags().IntVar(&calcFrom, "from", 0, "Lowest AC to sweep")
	calcTradeoffCmd.Flags().IntVar(&calcTo, "to", 0, "Highest AC to sweep")

	calcTTKCmd.Flags().Float64SliceVar(&calcPools, "pools", nil, "HP pools for the table")

	calcHitCmd.Flags().StringVar(&calcHit.Mode, "mode", "normal", "Roll mode (normal, advantage, disadvantage)")
	calcHitCmd.Flags().IntVar(&calcHit.CritThreshold, "crit", 20, "Lowest natural roll that crits")
	calcHitCmd.Flags().StringVar(&calcHit.ModifierDie, "modifier", "", "Die added to the roll, e.g. 1d4 for Bless")
	calcHitCmd.Flags().StringVar(&calcHit.ModifierKind, "modifier-kind", "bonus", "Whether the modifier die is a bonus or a penalty")
	calcHitCmd.Flags().BoolVar(&calcHit.BestOfThree, "best-of-three", false, "Roll three dice under advantage (Elven Accuracy)")

	calcCmd.AddCommand(calcAnalyzeCmd)
	calcCmd.AddCommand(calcTradeoffCmd)
	calcCmd.AddCommand(calcTTKCmd)
	calcCmd.AddCommand(calcHitCmd)
	calcCmd.AddCommand(calcPillarsCmd)
}

// lab is an offline combat lab backed by in-memory repositories
type lab struct {
	service   combatlab.Service
	builds    *builds.InMemoryRepository
	scenarios *scenarios.InMemoryRepository
}

func newLab() (*lab, error) {
	registry, err := rules.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to create formula registry: %w", err)
	}
	analyzer, err := analysis.New(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to create analyzer: %w", err)
	}

	l := &lab{
		builds:    builds.NewInMemory(nil),
		scenarios: scenarios.NewInMemory(nil),
	}
	l.service, err = combatlab.NewOrchestrator(&combatlab.Config{
		BuildRepo:    l.builds,
		ScenarioRepo: l.scenarios,
		Analyzer:     analyzer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create combat lab: %w", err)
	}
	return l, nil
}

// load stores the build and scenario files and returns the selection
// naming them
func (l *lab) load(ctx context.Context, buildFile, scenarioFile string) (combatlab.Selection, error) {
	var sel combatlab.Selection

	build := &entities.Build{}
	if err := decodeYAMLFile(buildFile, build); err != nil {
		return sel, err
	}
	if build.ID == "" {
		build.ID = "build"
	}
	if _, err := l.builds.Create(ctx, builds.CreateInput{Build: build}); err != nil {
		return sel, err
	}
	sel.BuildID = build.ID

	if scenarioFile == "" {
		return sel, nil
	}

	scenario := &entities.Scenario{}
	if err := decodeYAMLFile(scenarioFile, scenario); err != nil {
		return sel, err
	}
	if scenario.ID == "" {
		scenario.ID = "scenario"
	}
	if _, err := l.scenarios.Save(ctx, scenarios.SaveInput{Scenario: scenario}); err != nil {
		return sel, err
	}
	sel.ScenarioID = scenario.ID

	return sel, nil
}

// decodeYAMLFile decodes path into v, rejecting unknown fields
func decodeYAMLFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

func calcAnalyze(ctx context.Context, w io.Writer) error {
	l, err := newLab()
	if err != nil {
		return err
	}
	sel, err := l.load(ctx, calcBuildFile, calcScenarioFile)
	if err != nil {
		return err
	}

	out, err := l.service.AnalyzeBuild(ctx, &combatlab.AnalyzeBuildInput{Selection: sel})
	if err != nil {
		return err
	}

	if calcJSON {
		return client.PrintJSON(w, out.Report)
	}
	client.PrintReport(w, out.Report)
	return nil
}

func calcTradeoff(ctx context.Context, w io.Writer) error {
	l, err := newLab()
	if err != nil {
		return err
	}
	sel, err := l.load(ctx, calcBuildFile, calcScenarioFile)
	if err != nil {
		return err
	}

	out, err := l.service.SweepTradeoff(ctx, &combatlab.SweepTradeoffInput{
		Selection: sel,
		ProfileID: calcProfileID,
		FromAC:    calcFrom,
		ToAC:      calcTo,
	})
	if err != nil {
		return err
	}

	if calcJSON {
		return client.PrintJSON(w, out.Report)
	}
	client.PrintSweep(w, out.Report)
	return nil
}

func calcTimeToKill(ctx context.Context, w io.Writer, args []string) error {
	dpr, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid DPR %q: %w", args[0], err)
	}
	hp, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid HP %q: %w", args[1], err)
	}

	l, err := newLab()
	if err != nil {
		return err
	}
	out, err := l.service.EstimateTimeToKill(ctx, &combatlab.EstimateTimeToKillInput{DPR: dpr, HP: hp, Pools: calcPools})
	if err != nil {
		return err
	}

	if calcJSON {
		return client.PrintJSON(w, out)
	}
	client.PrintTimeToKill(w, out.Estimate, out.Table)
	return nil
}

func calcHitChance(ctx context.Context, w io.Writer, args []string) error {
	in := calcHit

	var err error
	if in.AttackBonus, err = strconv.ParseFloat(args[0], 64); err != nil {
		return fmt.Errorf("invalid attack bonus %q: %w", args[0], err)
	}
	if in.Defense, err = strconv.Atoi(args[1]); err != nil {
		return fmt.Errorf("invalid AC %q: %w", args[1], err)
	}

	l, err := newLab()
	if err != nil {
		return err
	}
	out, err := l.service.HitChance(ctx, &in)
	if err != nil {
		return err
	}

	if calcJSON {
		return client.PrintJSON(w, out)
	}
	_, err = fmt.Fprintf(w, "%+.0f vs AC %d (%s): hit %.1f%%, crit %.1f%%\n",
		in.AttackBonus, in.Defense, out.Mode, out.HitChance*100, out.CritChance*100)
	return err
}

func calcPillars(ctx context.Context, w io.Writer) error {
	l, err := newLab()
	if err != nil {
		return err
	}
	sel, err := l.load(ctx, calcBuildFile, "")
	if err != nil {
		return err
	}

	out, err := l.service.ScorePillars(ctx, &combatlab.ScorePillarsInput{BuildID: sel.BuildID, Weights: calcWeights})
	if err != nil {
		return err
	}

	if calcJSON {
		return client.PrintJSON(w, out.Report)
	}
	client.PrintPillars(w, out.Report)
	return nil
}
