package builds

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
	buildKeyPrefix = "build:"
	indexKey       = "build:index"

	// Error messages
	errBuildNil     = "build cannot be nil"
	errBuildIDEmpty = "build ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis build repository
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

// NewRedis creates a new Redis-backed build repository
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

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Build == nil {
		return nil, errors.InvalidArgument(errBuildNil)
	}
	if input.Build.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	key := buildKeyPrefix + input.Build.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("build with ID %s already exists", input.Build.ID)
	}

	build := input.Build.Clone()
	now := r.clock.Now().Unix()
	if build.CreatedAt == 0 {
		build.CreatedAt = now
	}
	build.UpdatedAt = now

	data, err := json.Marshal(build)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal build")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, indexKey, build.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create build")
	}

	return &CreateOutput{Build: build}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	result, err := r.client.Get(ctx, buildKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("build with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get build")
	}

	var build entities.Build
	if err := json.Unmarshal([]byte(result), &build); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal build")
	}

	return &GetOutput{Build: &build}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Build == nil {
		return nil, errors.InvalidArgument(errBuildNil)
	}
	if input.Build.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput{ID: input.Build.ID})
	if err != nil {
		return nil, err
	}

	build := input.Build.Clone()
	build.CreatedAt = existing.Build.CreatedAt
	build.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(build)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal build")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, buildKeyPrefix+build.ID, data, 0)
	pipe.SAdd(ctx, indexKey, build.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update build")
	}

	return &UpdateOutput{Build: build}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, buildKeyPrefix+input.ID)
	pipe.SRem(ctx, indexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete build")
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("build with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get builds from index")
	}

	builds := make([]*entities.Build, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "build not found, cleaning up index", "build_id", id)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get build %s", id)
		}
		if input.Tag != "" && !hasTag(out.Build, input.Tag) {
			continue
		}
		builds = append(builds, out.Build)
	}

	slices.SortFunc(builds, func(a, b *entities.Build) int {
		if a.UpdatedAt != b.UpdatedAt {
			if a.UpdatedAt > b.UpdatedAt {
				return -1
			}
			return 1
		}
		return strings.Compare(a.ID, b.ID)
	})

	return &ListOutput{Builds: builds}, nil
}

func hasTag(b *entities.Build, tag string) bool {
	return slices.ContainsFunc(b.Tags, func(t string) bool {
		return strings.EqualFold(t, tag)
	})
}
