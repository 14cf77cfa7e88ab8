// Package loginlog keeps a capped per-user history of successful logins in
// Redis. Each entry is an RFC 3339 timestamp pushed to the head of a list,
// trimmed so only the most recent entries survive.
package loginlog

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"vps-rental/internal/pkg/errs"
)

const (
	keyPrefix  = "user_login:"
	maxEntries = 100
)

// listClient is the subset of redis.Cmdable the recorder uses.
type listClient interface {
	LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	LTrim(ctx context.Context, key string, start, stop int64) *redis.StatusCmd
}

type RedisRecorder struct {
	client listClient
}

func NewRedisRecorder(client *redis.Client) *RedisRecorder {
	return &RedisRecorder{client: client}
}

func (r *RedisRecorder) Record(ctx context.Context, username string, at time.Time) error {
	key := keyPrefix + username

	if err := r.client.LPush(ctx, key, at.Format(time.RFC3339)).Err(); err != nil {
		return errs.Wrap(err, "failed to push login event")
	}
	if err := r.client.LTrim(ctx, key, 0, maxEntries-1).Err(); err != nil {
		return errs.Wrap(err, "failed to trim login log")
	}
	return nil
}
