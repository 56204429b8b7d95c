package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/edupanel/edu-admin-api/pkg/errors"
)

type memoryCacheRepo struct {
	entries map[string]interface{}
	deleted []string
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{entries: make(map[string]interface{})}
}

func (m *memoryCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	value, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	if p, ok := dest.(*string); ok {
		*p = value.(string)
	}
	return nil
}

func (m *memoryCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.entries[key] = value
	return nil
}

func (m *memoryCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	m.deleted = append(m.deleted, pattern)
	delete(m.entries, pattern)
	return nil
}

func TestCacheServiceDisabled(t *testing.T) {
	repo := newMemoryCacheRepo()
	svc := NewCacheService(repo, nil, time.Minute, nil, false)

	assert.False(t, svc.Enabled())

	var out string
	hit, err := svc.Get(context.Background(), "key", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, svc.Set(context.Background(), "key", "value", 0))
	assert.Empty(t, repo.entries)
}

func TestCacheServiceNilReceiver(t *testing.T) {
	var svc *CacheService

	var out string
	hit, err := svc.Get(context.Background(), "key", &out)
	require.NoError(t, err)
	assert.False(t, hit)
	require.NoError(t, svc.Set(context.Background(), "key", "value", 0))
	require.NoError(t, svc.Invalidate(context.Background(), "key"))
}

func TestCacheServiceRoundTrip(t *testing.T) {
	repo := newMemoryCacheRepo()
	svc := NewCacheService(repo, nil, time.Minute, nil, true)

	var out string
	hit, err := svc.Get(context.Background(), "key", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, svc.Set(context.Background(), "key", "value", 0))

	hit, err = svc.Get(context.Background(), "key", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "value", out)

	require.NoError(t, svc.Invalidate(context.Background(), "key"))
	assert.Equal(t, []string{"key"}, repo.deleted)

	hit, err = svc.Get(context.Background(), "key", &out)
	require.NoError(t, err)
	assert.False(t, hit)
}
