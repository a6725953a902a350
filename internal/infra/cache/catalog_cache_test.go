package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harramos25/GlamBook/internal/models"
)

type fakeCatalog struct {
	services []models.Service
	stylists []models.Stylist
	calls    int
	err      error
}

func (f *fakeCatalog) ListServices(context.Context) ([]models.Service, error) {
	f.calls++
	return f.services, f.err
}

func (f *fakeCatalog) ListStylists(context.Context) ([]models.Stylist, error) {
	f.calls++
	return f.stylists, f.err
}

func (f *fakeCatalog) CreateService(_ context.Context, s *models.Service) error {
	f.services = append(f.services, *s)
	return f.err
}

func (f *fakeCatalog) CreateStylist(_ context.Context, _ *models.User, s *models.Stylist) error {
	f.stylists = append(f.stylists, *s)
	return f.err
}

func unreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestCatalogCache_NilClientPassesThrough(t *testing.T) {
	repo := &fakeCatalog{services: []models.Service{{ID: "h1", Name: "Silk Press & Style"}}}
	c := NewCatalogCache(repo, nil, time.Minute)

	got, err := c.ListServices(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, _ = c.ListServices(context.Background())
	assert.Equal(t, 2, repo.calls)
}

func TestCatalogCache_RedisDownFallsBack(t *testing.T) {
	repo := &fakeCatalog{stylists: []models.Stylist{{ID: "st1", Name: "Elena R."}}}
	client := unreachableClient()
	t.Cleanup(func() { _ = client.Close() })

	c := NewCatalogCache(repo, client, time.Minute)

	got, err := c.ListStylists(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Elena R.", got[0].Name)

	// a failed invalidate must not fail the write
	require.NoError(t, c.CreateService(context.Background(), &models.Service{ID: "x"}))
}

func TestCatalogCache_RepositoryErrorPropagates(t *testing.T) {
	repo := &fakeCatalog{err: errors.New("db down")}
	c := NewCatalogCache(repo, nil, time.Minute)

	_, err := c.ListServices(context.Background())
	assert.EqualError(t, err, "db down")
}

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestCatalogCache_HitSkipsRepository(t *testing.T) {
	_, client := newMiniRedis(t)
	repo := &fakeCatalog{services: []models.Service{{ID: "h1", Name: "Silk Press & Style", Price: 85}}}
	c := NewCatalogCache(repo, client, time.Minute)
	ctx := context.Background()

	first, err := c.ListServices(ctx)
	require.NoError(t, err)

	repo.services = nil
	second, err := c.ListServices(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, first, second)
	assert.Equal(t, 85.0, second[0].Price)
}

func TestCatalogCache_WritesInvalidate(t *testing.T) {
	mr, client := newMiniRedis(t)
	repo := &fakeCatalog{
		services: []models.Service{{ID: "h1"}},
		stylists: []models.Stylist{{ID: "st1"}},
	}
	c := NewCatalogCache(repo, client, time.Minute)
	ctx := context.Background()

	_, err := c.ListServices(ctx)
	require.NoError(t, err)
	_, err = c.ListStylists(ctx)
	require.NoError(t, err)
	require.True(t, mr.Exists(keyServices))
	require.True(t, mr.Exists(keyStylists))

	require.NoError(t, c.CreateService(ctx, &models.Service{ID: "n9"}))
	assert.False(t, mr.Exists(keyServices))
	assert.True(t, mr.Exists(keyStylists))

	services, err := c.ListServices(ctx)
	require.NoError(t, err)
	assert.Len(t, services, 2)

	require.NoError(t, c.CreateStylist(ctx, &models.User{}, &models.Stylist{ID: "st9"}))
	assert.False(t, mr.Exists(keyStylists))

	stylists, err := c.ListStylists(ctx)
	require.NoError(t, err)
	assert.Len(t, stylists, 2)
}

func TestCatalogCache_FailedWriteKeepsCache(t *testing.T) {
	mr, client := newMiniRedis(t)
	repo := &fakeCatalog{services: []models.Service{{ID: "h1"}}}
	c := NewCatalogCache(repo, client, time.Minute)
	ctx := context.Background()

	_, err := c.ListServices(ctx)
	require.NoError(t, err)

	repo.err = errors.New("db down")
	assert.Error(t, c.CreateService(ctx, &models.Service{ID: "n9"}))
	assert.True(t, mr.Exists(keyServices))
}

func TestCatalogCache_ExpiresAfterTTL(t *testing.T) {
	mr, client := newMiniRedis(t)
	repo := &fakeCatalog{services: []models.Service{{ID: "h1"}}}
	c := NewCatalogCache(repo, client, time.Minute)
	ctx := context.Background()

	_, err := c.ListServices(ctx)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = c.ListServices(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestCatalogCache_CorruptEntryReloads(t *testing.T) {
	mr, client := newMiniRedis(t)
	require.NoError(t, mr.Set(keyStylists, "not json"))

	repo := &fakeCatalog{stylists: []models.Stylist{{ID: "st1", Name: "Elena R."}}}
	c := NewCatalogCache(repo, client, time.Minute)

	got, err := c.ListStylists(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, repo.calls)

	raw, err := mr.Get(keyStylists)
	require.NoError(t, err)
	assert.Contains(t, raw, "Elena R.")
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client := NewRedisClient(mr.Addr(), "", 0)
	require.NotNil(t, client)
	_ = client.Close()

	assert.Nil(t, NewRedisClient("127.0.0.1:1", "", 0))
}
