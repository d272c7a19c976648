package preferences

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/dmtoolbox/inserts-api/internal/entities/dnd5e"
	"github.com/dmtoolbox/inserts-api/internal/errors"
	redisclient "github.com/dmtoolbox/inserts-api/internal/redis"
)

const preferencesKey = "preferences"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig configures the Redis preferences repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate checks the config.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed preferences repository.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Get(ctx context.Context, _ GetInput) (*GetOutput, error) {
	result, err := r.client.Get(ctx, preferencesKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetOutput{Preferences: dnd5e.DefaultPreferences()}, nil
		}
		return nil, errors.Wrapf(err, "failed to get preferences")
	}

	var prefs dnd5e.UserPreferences
	if err := json.Unmarshal([]byte(result), &prefs); err != nil {
		// A corrupt blob falls back to defaults instead of failing reads.
		slog.WarnContext(ctx, "stored preferences unreadable, using defaults",
			"error", err.Error())
		return &GetOutput{Preferences: dnd5e.DefaultPreferences()}, nil
	}

	prefs.Normalize()
	return &GetOutput{Preferences: &prefs}, nil
}

func (r *redisRepository) Set(ctx context.Context, input SetInput) (*SetOutput, error) {
	if input.Preferences == nil {
		return nil, errors.InvalidArgument("preferences cannot be nil")
	}

	data, err := json.Marshal(input.Preferences)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal preferences")
	}

	if err := r.client.Set(ctx, preferencesKey, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to set preferences")
	}

	return &SetOutput{}, nil
}
