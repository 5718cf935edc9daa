package dicesession

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/errors"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/pkg/clock"
	redisclient "github.com/Pallarran/Ultimate-D-D-Tools/internal/redis"
)

const (
	// Key pattern: dice_session:{owner_type}:{owner_id}:{context}
	sessionKeyPrefix = "dice_session:"
	defaultTTL       = 15 * time.Minute

	// Error messages
	errSessionNil     = "session cannot be nil"
	errOwnerEmpty     = "owner type and ID cannot be empty"
	errContextEmpty   = "context cannot be empty"
	errSessionExpired = "session has already expired"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	// DefaultTTL applies when CreateInput.TTL is zero; 15 minutes if unset
	DefaultTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.DefaultTTL < 0 {
		return errors.InvalidArgument("default TTL cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client     redisclient.Client
	clock      clock.Clock
	defaultTTL time.Duration
}

// NewRedisRepository creates a new Redis repository for dice sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.DefaultTTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client:     cfg.Client,
		clock:      cfg.Clock,
		defaultTTL: ttl,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func validateKey(k Key) error {
	if k.OwnerType == "" || k.OwnerID == "" {
		return errors.InvalidArgument(errOwnerEmpty)
	}
	if k.Context == "" {
		return errors.InvalidArgument(errContextEmpty)
	}
	return nil
}

// Create stores a new dice session with the specified TTL
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateKey(input.Key); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl <= 0 {
		ttl = r.defaultTTL
	}

	session := &DiceSession{
		OwnerType: input.Key.OwnerType,
		OwnerID:   input.Key.OwnerID,
		Context:   input.Key.Context,
		Rolls:     input.Rolls,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	err = r.client.Set(ctx, buildKey(input.Key), sessionJSON, ttl).Err()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store session in Redis")
	}

	return &CreateOutput{Session: session}, nil
}

// Get retrieves a dice session
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.Key); err != nil {
		return nil, err
	}

	key := buildKey(input.Key)

	sessionJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("dice session not found")
		}
		return nil, errors.Wrapf(err, "failed to get session from Redis")
	}

	var session DiceSession
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}

	// Redis TTLs and the clock can disagree
	if r.clock.Now().After(session.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("dice session has expired")
	}

	return &GetOutput{Session: &session}, nil
}

// Delete removes a dice session
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.Key); err != nil {
		return nil, err
	}

	var deleted int
	if out, err := r.Get(ctx, GetInput(input)); err == nil && out.Session != nil {
		deleted = len(out.Session.Rolls)
	}

	if err := r.client.Del(ctx, buildKey(input.Key)).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete session from Redis")
	}

	return &DeleteOutput{RollsDeleted: deleted}, nil
}

// Update replaces an existing dice session
func (r *redisRepository) Update(ctx context.Context, session *DiceSession) error {
	if session == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	key := Key{OwnerType: session.OwnerType, OwnerID: session.OwnerID, Context: session.Context}
	if err := validateKey(key); err != nil {
		return err
	}

	now := r.clock.Now()
	if !now.Before(session.ExpiresAt) {
		return errors.InvalidArgument(errSessionExpired)
	}

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal session")
	}

	err = r.client.Set(ctx, buildKey(key), sessionJSON, session.ExpiresAt.Sub(now)).Err()
	if err != nil {
		return errors.Wrapf(err, "failed to update session in Redis")
	}

	return nil
}

func buildKey(k Key) string {
	return fmt.Sprintf("%s%s:%s:%s", sessionKeyPrefix, k.OwnerType, k.OwnerID, k.Context)
}
