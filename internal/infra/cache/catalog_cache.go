package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	domain "github.com/harramos25/GlamBook/internal/domain/catalog"
	"github.com/harramos25/GlamBook/internal/logger"
	"github.com/harramos25/GlamBook/internal/models"
)

const (
	keyServices = "glambook:catalog:services"
	keyStylists = "glambook:catalog:stylists"
)

// CatalogCache is a read-through cache in front of a catalog repository.
// A nil client, or any Redis failure, falls through to the repository.
type CatalogCache struct {
	next   domain.Repository
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(next domain.Repository, client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{next: next, client: client, ttl: ttl}
}

var _ domain.Repository = (*CatalogCache)(nil)

func (c *CatalogCache) ListServices(ctx context.Context) ([]models.Service, error) {
	return readThrough(ctx, c, keyServices, c.next.ListServices)
}

func (c *CatalogCache) ListStylists(ctx context.Context) ([]models.Stylist, error) {
	return readThrough(ctx, c, keyStylists, c.next.ListStylists)
}

func (c *CatalogCache) CreateService(ctx context.Context, s *models.Service) error {
	if err := c.next.CreateService(ctx, s); err != nil {
		return err
	}
	c.Invalidate(ctx, keyServices)
	return nil
}

func (c *CatalogCache) CreateStylist(ctx context.Context, user *models.User, s *models.Stylist) error {
	if err := c.next.CreateStylist(ctx, user, s); err != nil {
		return err
	}
	c.Invalidate(ctx, keyStylists)
	return nil
}

// Invalidate drops the given keys, or both catalog keys when none are given.
func (c *CatalogCache) Invalidate(ctx context.Context, keys ...string) {
	if c.client == nil {
		return
	}
	if len(keys) == 0 {
		keys = []string{keyServices, keyStylists}
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Strs("keys", keys).Msg("catalog cache invalidate failed")
	}
}

func readThrough[T any](
	ctx context.Context,
	c *CatalogCache,
	key string,
	load func(context.Context) ([]T, error),
) ([]T, error) {

	if c.client == nil {
		return load(ctx)
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var out []T
		if jerr := json.Unmarshal(raw, &out); jerr == nil {
			return out, nil
		}
	case err != redis.Nil:
		logger.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("catalog cache read failed")
	}

	out, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if b, jerr := json.Marshal(out); jerr == nil {
		if serr := c.client.Set(ctx, key, b, c.ttl).Err(); serr != nil {
			logger.FromContext(ctx).Warn().Err(serr).Str("key", key).Msg("catalog cache write failed")
		}
	}
	return out, nil
}

// NewRedisClient pings addr and returns nil when Redis is unreachable.
func NewRedisClient(addr, password string, db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", addr).Msg("redis unavailable, catalog cache disabled")
		_ = client.Close()
		return nil
	}
	return client
}
