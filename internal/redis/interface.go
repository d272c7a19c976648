package redis

import (
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -destination=mocks/redis.go -package=redismocks -source=interface.go

// Client wraps redis.UniversalClient so repositories depend on an interface
// we can mock instead of the concrete go-redis client.
type Client interface {
	redis.UniversalClient
}

// Pipeliner wraps redis.Pipeliner for batched writes.
type Pipeliner interface {
	redis.Pipeliner
}
