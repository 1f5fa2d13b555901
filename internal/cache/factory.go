package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"filmstrip/internal/logging"
)

// Config selects and parameterizes a cache backend.
type Config struct {
	Backend       string        // memory | disk | sqlite | redis | badger | off
	Dir           string        // disk: file directory; badger: database directory
	DBPath        string        // sqlite: database file
	RedisAddr     string        // redis: host:port
	RedisPassword string        // redis: optional auth
	RedisDB       int           // redis: database number
	TTL           time.Duration // redis: entry lifetime
	MaxEntries    int           // memory: raster bound
}

// Open builds the configured Cache. A nil Cache with a nil error means
// caching is off; call sites skip a nil cache. The returned release
// function closes backend resources and is always safe to call.
func Open(ctx context.Context, cfg Config) (Cache, func(), error) {
	noop := func() {}

	switch strings.ToLower(cfg.Backend) {
	case "", "off", "none":
		logging.Info("preview cache disabled")
		return nil, noop, nil

	case "memory":
		return NewMemory(cfg.MaxEntries), noop, nil

	case "disk":
		d, err := NewDisk(cfg.Dir)
		if err != nil {
			return nil, noop, err
		}
		return d, noop, nil

	case "sqlite":
		s, err := NewSQLite(ctx, cfg.DBPath)
		if err != nil {
			return nil, noop, err
		}
		return s, closer("sqlite", s.Close), nil

	case "redis":
		r, err := NewRedis(ctx, RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.TTL,
		})
		if err != nil {
			return nil, noop, err
		}
		return r, closer("redis", r.Close), nil

	case "badger":
		b, err := NewBadger(cfg.Dir)
		if err != nil {
			return nil, noop, err
		}
		return b, closer("badger", b.Close), nil
	}

	return nil, noop, fmt.Errorf("unknown cache backend %q", cfg.Backend)
}

func closer(name string, close func() error) func() {
	return func() {
		if err := close(); err != nil {
			logging.Warn("close %s preview cache: %v", name, err)
		}
	}
}
