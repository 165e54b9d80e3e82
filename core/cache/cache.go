package cache

import (
	"context"
	"time"

	"makerskills-api/core/config"
	"makerskills-api/core/constants"
	"makerskills-api/core/logger"

	"github.com/redis/go-redis/v9"
)

// Cache backs the auth subsystem: failed-login throttling and the token
// blacklist. Everything else in the API reads straight from Postgres.
type Cache interface {
	IncrementLoginAttempt(ctx context.Context, key string) error
	GetLoginAttempts(ctx context.Context, key string) (int, error)
	Del(ctx context.Context, key string) error
	AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)
	Client() *redis.Client
}

type redisCache struct {
	client *redis.Client
}

func InitCache(cfg config.RedisConfig) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	logger.Info("Redis initialized successfully", "addr", cfg.Addr)
	return &redisCache{client: client}, nil
}

func (c *redisCache) IncrementLoginAttempt(ctx context.Context, key string) error {
	redisKey := constants.RedisKeyLoginAttempt + key
	count, err := c.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return err
	}
	if count == 1 {
		return c.client.Expire(ctx, redisKey, constants.LoginAttemptWindow).Err()
	}
	return nil
}

func (c *redisCache) GetLoginAttempts(ctx context.Context, key string) (int, error) {
	count, err := c.client.Get(ctx, constants.RedisKeyLoginAttempt+key).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (c *redisCache) Del(ctx context.Context, key string) error {
	return c.client.Del(ctx, constants.RedisKeyLoginAttempt+key).Err()
}

func (c *redisCache) AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.client.Set(ctx, constants.RedisKeyTokenBlacklist+token, "1", ttl).Err()
}

func (c *redisCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	_, err := c.client.Get(ctx, constants.RedisKeyTokenBlacklist+token).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c *redisCache) Client() *redis.Client {
	return c.client
}
