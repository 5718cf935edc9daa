package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/notation"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/pkg/config"
	redisclient "github.com/Pallarran/Ultimate-D-D-Tools/internal/redis"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/rules"
)

const (
	buildKeyPattern = "build:*"
	buildIndexKey   = "build:index"
)

var (
	auditRedisURL string
	auditDelete   bool
)

var auditCmd = &cobra.Command{
	Use:   "audit-formulas",
	Short: "Check stored builds for unreadable data and broken formulas",
	Long: `Scan every stored build, check that it decodes and that its attack bonus and
damage formulas evaluate. With --delete, builds that no longer decode are removed.`,
	Args: cobra.NoArgs,
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().StringVar(&auditRedisURL, "redis-url", "", "Redis URL (DDTOOLS_REDIS_ADDR when empty)")
	auditCmd.Flags().BoolVar(&auditDelete, "delete", false, "Delete builds that cannot be decoded")
}

// formulaProblem is one formula that failed to evaluate
type formulaProblem struct {
	Key       string
	ProfileID string
	Field     string
	Formula   string
	Problem   string
}

type auditResult struct {
	Checked    int
	Unreadable []string
	Problems   []formulaProblem
}

func runAudit(cmd *cobra.Command, _ []string) error {
	client, err := auditClient()
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	registry, err := rules.NewRegistry()
	if err != nil {
		return fmt.Errorf("failed to create formula registry: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Scanning stored builds...")

	result, err := auditBuilds(ctx, client, registry)
	if err != nil {
		return err
	}
	printAudit(out, result)

	if auditDelete && len(result.Unreadable) > 0 {
		deleted, err := deleteBuildKeys(ctx, client, result.Unreadable)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nDeleted %d unreadable builds\n", deleted)
	}

	if len(result.Problems) > 0 || (len(result.Unreadable) > 0 && !auditDelete) {
		return fmt.Errorf("found %d unreadable builds and %d broken formulas", len(result.Unreadable), len(result.Problems))
	}
	return nil
}

func auditClient() (redisclient.Client, error) {
	if auditRedisURL != "" {
		opt, err := redis.ParseURL(auditRedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redis URL: %w", err)
		}
		return redis.NewClient(opt), nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		DB:       cfg.RedisDB,
		Password: cfg.RedisPassword,
		UseTLS:   cfg.RedisTLS,
	})
}

// auditBuilds scans every build key and checks each profile's formulas
func auditBuilds(ctx context.Context, client redisclient.Client, registry *rules.Registry) (*auditResult, error) {
	result := &auditResult{}

	iter := client.Scan(ctx, 0, buildKeyPattern, 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if key == buildIndexKey {
			continue
		}

		data, err := client.Get(ctx, key).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", key, err)
		}
		result.Checked++

		var build entities.Build
		if err := json.Unmarshal([]byte(data), &build); err != nil {
			result.Unreadable = append(result.Unreadable, key)
			continue
		}

		result.Problems = append(result.Problems, checkFormulas(key, &build, registry)...)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan builds: %w", err)
	}

	slices.Sort(result.Unreadable)
	slices.SortStableFunc(result.Problems, func(a, b formulaProblem) int {
		return strings.Compare(a.Key, b.Key)
	})

	return result, nil
}

func checkFormulas(key string, build *entities.Build, registry *rules.Registry) []formulaProblem {
	vars := rules.VariablesFor(build)

	var problems []formulaProblem
	report := func(p entities.AttackProfile, field, formula, problem string) {
		problems = append(problems, formulaProblem{
			Key:       key,
			ProfileID: p.ID,
			Field:     field,
			Formula:   formula,
			Problem:   problem,
		})
	}
	damage := func(p entities.AttackProfile, field, formula string) {
		resolved, err := registry.ResolveDamage(formula, vars)
		if err != nil {
			report(p, field, formula, err.Error())
			return
		}
		if notation.Parse(resolved).Kind == notation.KindInvalid {
			report(p, field, formula, fmt.Sprintf("%q is not dice notation", resolved))
		}
	}

	for _, p := range build.Profiles {
		if p.AttackBonusFormula != "" {
			if _, err := registry.Eval(p.AttackBonusFormula, vars); err != nil {
				report(p, "attack_bonus_formula", p.AttackBonusFormula, err.Error())
			}
		}

		damage(p, "damage_hit", p.DamageHit)
		if p.DamageCrit != "" {
			damage(p, "damage_crit", p.DamageCrit)
		}

		for _, rider := range p.Riders {
			if notation.Parse(rider.Dice).Kind == notation.KindInvalid {
				report(p, "riders", rider.Dice, fmt.Sprintf("rider %s is not dice notation", rider.Name))
			}
		}
	}
	return problems
}

// deleteBuildKeys removes build records and their index entries
func deleteBuildKeys(ctx context.Context, client redisclient.Client, keys []string) (int, error) {
	deleted := 0
	for _, key := range keys {
		pipe := client.TxPipeline()
		del := pipe.Del(ctx, key)
		pipe.SRem(ctx, buildIndexKey, strings.TrimPrefix(key, "build:"))
		if _, err := pipe.Exec(ctx); err != nil {
			return deleted, fmt.Errorf("failed to delete %s: %w", key, err)
		}
		deleted += int(del.Val())
	}
	return deleted, nil
}

func printAudit(w io.Writer, result *auditResult) {
	for _, key := range result.Unreadable {
		fmt.Fprintf(w, "✗ Unreadable build data in %s\n", key)
	}
	for _, p := range result.Problems {
		fmt.Fprintf(w, "✗ %s profile %s %s %q: %s\n", p.Key, p.ProfileID, p.Field, p.Formula, p.Problem)
	}

	fmt.Fprintf(w, "\nChecked %d builds, found %d unreadable and %d broken formulas\n",
		result.Checked, len(result.Unreadable), len(result.Problems))
	if len(result.Unreadable) == 0 && len(result.Problems) == 0 {
		fmt.Fprintln(w, "No problems found!")
	}
}
