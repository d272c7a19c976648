package inserts

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/dmtoolbox/inserts-api/internal/entities/dnd5e"
	"github.com/dmtoolbox/inserts-api/internal/errors"
	redisclient "github.com/dmtoolbox/inserts-api/internal/redis"
)

const (
	cardKeyPrefix = "insert:"
	orderKey      = "insert:order"

	errCardNil     = "card cannot be nil"
	errCardIDEmpty = "card ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig configures the Redis card repository.
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

// NewRedis creates a Redis-backed card repository. Cards live under
// per-id keys with a list tracking insertion order.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Card == nil {
		return nil, errors.InvalidArgument(errCardNil)
	}
	if input.Card.ID == "" {
		return nil, errors.InvalidArgument(errCardIDEmpty)
	}

	key := cardKeyPrefix + input.Card.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("card with ID %s already exists", input.Card.ID)
	}

	data, err := json.Marshal(input.Card)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal card")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // cards have no TTL
	pipe.RPush(ctx, orderKey, input.Card.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create card")
	}

	return &CreateOutput{Card: input.Card}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCardIDEmpty)
	}

	result, err := r.client.Get(ctx, cardKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("card with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get card")
	}

	var card dnd5e.InsertInputs
	if err := json.Unmarshal([]byte(result), &card); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal card")
	}

	return &GetOutput{Card: &card}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Card == nil {
		return nil, errors.InvalidArgument(errCardNil)
	}
	if input.Card.ID == "" {
		return nil, errors.InvalidArgument(errCardIDEmpty)
	}

	key := cardKeyPrefix + input.Card.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("card with ID %s not found", input.Card.ID)
	}

	data, err := json.Marshal(input.Card)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal card")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update card")
	}

	return &UpdateOutput{Card: input.Card}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCardIDEmpty)
	}

	// Confirm the card exists so missing ids report NotFound.
	if _, err := r.Get(ctx, GetInput(input)); err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, cardKeyPrefix+input.ID)
	pipe.LRem(ctx, orderKey, 0, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete card")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.LRange(ctx, orderKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read card order")
	}

	cards := make([]*dnd5e.InsertInputs, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// Order entries can outlive their cards; drop stale ids.
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "card missing for ordered id, cleaning up",
					"card_id", id)
				r.client.LRem(ctx, orderKey, 0, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get card %s", id)
		}
		cards = append(cards, out.Card)
	}

	return &ListOutput{Cards: cards}, nil
}

func (r *redisRepository) Clear(ctx context.Context, _ ClearInput) (*ClearOutput, error) {
	ids, err := r.client.LRange(ctx, orderKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read card order")
	}

	pipe := r.client.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, cardKeyPrefix+id)
	}
	pipe.Del(ctx, orderKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to clear cards")
	}

	return &ClearOutput{Removed: len(ids)}, nil
}
