package scenarios

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/errors"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/pkg/clock"
	redisclient "github.com/Pallarran/Ultimate-D-D-Tools/internal/redis"
)

const (
	scenarioKeyPrefix = "scenario:"
	indexKey          = "scenario:index"

	// Error messages
	errScenarioNil     = "scenario cannot be nil"
	errScenarioIDEmpty = "scenario ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis scenario repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed scenario repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Scenario == nil {
		return nil, errors.InvalidArgument(errScenarioNil)
	}
	if input.Scenario.ID == "" {
		return nil, errors.InvalidArgument(errScenarioIDEmpty)
	}

	scenario := *input.Scenario
	now := r.clock.Now().Unix()

	created := true
	existing, err := r.Get(ctx, GetInput{ID: scenario.ID})
	switch {
	case err == nil:
		created = false
		scenario.CreatedAt = existing.Scenario.CreatedAt
	case !errors.IsNotFound(err):
		return nil, err
	default:
		scenario.CreatedAt = now
	}
	scenario.UpdatedAt = now

	data, err := json.Marshal(&scenario)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal scenario")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, scenarioKeyPrefix+scenario.ID, data, 0)
	pipe.SAdd(ctx, indexKey, scenario.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save scenario")
	}

	return &SaveOutput{Scenario: &scenario, Created: created}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errScenarioIDEmpty)
	}

	result, err := r.client.Get(ctx, scenarioKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("scenario with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get scenario")
	}

	var scenario entities.Scenario
	if err := json.Unmarshal([]byte(result), &scenario); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal scenario")
	}

	return &GetOutput{Scenario: &scenario}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errScenarioIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, scenarioKeyPrefix+input.ID)
	pipe.SRem(ctx, indexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete scenario")
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("scenario with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get scenarios from index")
	}

	scenarios := make([]*entities.Scenario, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "scenario not found, cleaning up index", "scenario_id", id)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get scenario %s", id)
		}
		scenarios = append(scenarios, out.Scenario)
	}

	slices.SortFunc(scenarios, func(a, b *entities.Scenario) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return &ListOutput{Scenarios: scenarios}, nil
}
