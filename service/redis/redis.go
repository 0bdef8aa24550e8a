package redis

import (
	"errors"
	"time"

	"github.com/x-xyz/marketclient/base/ctx"
)

const (
	// Forever is used to set a key without expiry
	Forever = time.Duration(-1)
)

var (
	ErrNotFound = errors.New("redis: key not found")
	ErrNoPool   = errors.New("redis: pool is not configured")
)

// Service is the subset of redis commands the caches rely on
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, keys ...string) (int, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	// TTL returns the remaining time to live in seconds
	TTL(context ctx.Ctx, key string) (int, error)
	Ping(context ctx.Ctx) error
}
