package cache

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"filmstrip/internal/logging"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisTTL expires preview entries that nothing has refreshed.
// Media identities change when files change, so stale entries only waste
// space; a day is plenty.
const DefaultRedisTTL = 24 * time.Hour

const redisKeyPrefix = "preview:"

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Addr     string        // server address (host:port)
	Password string        // optional
	DB       int           // database number
	TTL      time.Duration // entry lifetime, DefaultRedisTTL when zero
}

// Redis stores rasters as PNG bytes under a key prefix with a TTL.
// Redis SET replaces values atomically, satisfying the Cache contract.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to Redis and verifies the connection with a ping.
func NewRedis(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultRedisTTL
	}

	logging.Info("connected to redis preview cache at %s (db %d, ttl %v)", cfg.Addr, cfg.DB, ttl)
	return &Redis{client: client, ttl: ttl}, nil
}

// Fetch reads the PNG bytes stored under id.
func (c *Redis) Fetch(ctx context.Context, id string) (image.Image, bool) {
	data, err := c.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		logging.Warn("redis cache fetch %s: %v", id, err)
		return nil, false
	}

	img, err := decodePNG(data)
	if err != nil {
		logging.Warn("redis cache entry %s is not a valid png: %v", id, err)
		return nil, false
	}
	return img, true
}

// Store writes the raster under id with the configured TTL.
func (c *Redis) Store(ctx context.Context, id string, img image.Image) {
	data, err := encodePNG(img)
	if err != nil {
		logging.Warn("redis cache encode %s: %v", id, err)
		return
	}

	if err := c.client.Set(ctx, redisKeyPrefix+id, data, c.ttl).Err(); err != nil {
		logging.Warn("redis cache store %s: %v", id, err)
	}
}

// Ping checks whether Redis is reachable.
func (c *Redis) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the connection pool.
func (c *Redis) Close() error {
	return c.client.Close()
}
