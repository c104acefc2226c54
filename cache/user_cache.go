package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"speaky-backend/config/common"
	"speaky-backend/entity"
)

// UserCache keeps phone-keyed profiles hot for the login path. The cache is
// optional: a nil *UserCache disables it and every method degrades to a miss.
type UserCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewUserCache(cfg *common.Config, log *logrus.Logger) *UserCache {
	host := cfg.GetRedisHost()
	if host == "" {
		log.Info("REDIS_HOST not set, profile cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: host,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.WithError(err).Warn("redis unreachable, profile cache disabled")
		return nil
	}

	log.Info("profile cache connected to ", host)
	return &UserCache{client: client, ttl: 10 * time.Minute}
}

func key(phone string) string {
	return "speaky:user:" + phone
}

func (c *UserCache) GetByPhone(ctx context.Context, phone string) (entity.User, bool) {
	var user entity.User
	if c == nil {
		return user, false
	}
	raw, err := c.client.Get(ctx, key(phone)).Bytes()
	if err != nil {
		return user, false
	}
	if err := json.Unmarshal(raw, &user); err != nil {
		return user, false
	}
	return user, true
}

func (c *UserCache) SetByPhone(ctx context.Context, user entity.User) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return
	}
	c.client.Set(ctx, key(user.Phone), raw, c.ttl)
}

// Invalidate drops the cached profile after any profile write.
func (c *UserCache) Invalidate(ctx context.Context, phone string) {
	if c == nil {
		return
	}
	c.client.Del(ctx, key(phone))
}
