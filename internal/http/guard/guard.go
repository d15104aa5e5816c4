package guard

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "loginfail:"

// Guard tracks failed login attempts per client in redis and blocks further
// attempts once the strike count reaches the limit. Strikes share a single
// expiry window, so a lockout lapses on its own.
type Guard struct {
	rdb         *redis.Client
	maxFailures int
	window      time.Duration
}

func New(rdb *redis.Client, maxFailures int, window time.Duration) *Guard {
	return &Guard{rdb: rdb, maxFailures: maxFailures, window: window}
}

func (g *Guard) Blocked(ctx context.Context, client string) bool {
	count, err := g.rdb.Get(ctx, keyPrefix+client).Int()
	if err != nil {
		// Missing key or redis trouble both mean "not blocked"; the guard
		// must never lock out logins when redis is unavailable.
		return false
	}
	return count >= g.maxFailures
}

func (g *Guard) Failure(ctx context.Context, client string) {
	key := keyPrefix + client
	count, err := g.rdb.Incr(ctx, key).Result()
	if err != nil {
		slog.Warn("login guard: failed to record strike", "error", err)
		return
	}
	if count == 1 {
		g.rdb.Expire(ctx, key, g.window)
	}
}

func (g *Guard) Reset(ctx context.Context, client string) {
	g.rdb.Del(ctx, keyPrefix+client)
}
