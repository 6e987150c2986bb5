package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/workout-service/internal/config"
	apperrors "github.com/spec-kit/workout-service/pkg/util"
)

// Limiter bounds authentication attempts per client address using a Redis
// fixed-window counter.
type Limiter struct {
	client *redis.Client
	logger *zap.Logger
	limit  int
	window time.Duration
}

// NewLimiter constructs a limiter from config.
func NewLimiter(client *redis.Client, cfg config.RateLimitConfig, logger *zap.Logger) *Limiter {
	return &Limiter{
		client: client,
		logger: logger,
		limit:  cfg.AuthLimit,
		window: cfg.AuthWindow(),
	}
}

// checkScript atomically increments the window counter and reports whether the
// caller is still within the limit.
var checkScript = redis.NewScript(`
	local key = KEYS[1]
	local limit = tonumber(ARGV[1])
	local window = tonumber(ARGV[2])

	local current = redis.call('INCR', key)
	if current == 1 then
		redis.call('EXPIRE', key, window)
	end
	if current > limit then
		return 0
	end
	return 1
`)

// Allow reports whether another attempt is permitted for the key.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("ratelimit:%s:auth", key)
	result, err := checkScript.Run(ctx, l.client, []string{redisKey}, l.limit, int(l.window.Seconds())).Int()
	if err != nil {
		return false, err
	}
	return result == 1, nil
}

// Handle is a Fiber middleware gating auth endpoints by client IP. Redis
// outages fail open so login availability does not depend on the limiter.
func (l *Limiter) Handle(c *fiber.Ctx) error {
	if l == nil || l.client == nil || l.limit <= 0 {
		return c.Next()
	}

	allowed, err := l.Allow(c.Context(), c.IP())
	if err != nil {
		l.logger.Warn("rate limit check failed", zap.Error(err))
		return c.Next()
	}
	if !allowed {
		return apperrors.NewRateLimited("too many attempts, try again later")
	}
	return c.Next()
}
