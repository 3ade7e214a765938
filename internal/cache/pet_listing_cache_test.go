package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/pet-adoption/internal/domain"
)

func newTestCache(t *testing.T) (*RedisPetCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisPetCache(client, 30*time.Second), srv
}

func TestRedisPetCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t)

	gen, err := c.Generation(ctx, "")
	require.NoError(t, err)
	assert.Zero(t, gen)

	_, hit, err := c.Get(ctx, "", gen)
	require.NoError(t, err)
	assert.False(t, hit)

	age := "2"
	pets := []domain.Pet{{ID: "p1", Name: "Rex", Age: &age, ResponsibleID: "r1", PicturesURL: []string{"a.png"}}}
	require.NoError(t, c.Set(ctx, "", gen, pets))
	require.NoError(t, c.Set(ctx, "r1", gen, pets))

	got, hit, err := c.Get(ctx, "", gen)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, pets, got)

	srv.FastForward(31 * time.Second)
	_, hit, err = c.Get(ctx, "", gen)
	require.NoError(t, err)
	assert.False(t, hit, "entry should expire")
}

func TestRedisPetCache_EmptyListIsAHit(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	require.NoError(t, c.Set(ctx, "r1", 0, nil))
	got, hit, err := c.Get(ctx, "r1", 0)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Empty(t, got)
}

func TestRedisPetCache_InvalidateBumpsGenerations(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t)

	require.NoError(t, c.Set(ctx, "", 0, []domain.Pet{{ID: "p1"}}))
	require.NoError(t, c.Set(ctx, "r1", 0, []domain.Pet{{ID: "p1"}}))
	require.NoError(t, c.Set(ctx, "r2", 0, []domain.Pet{{ID: "p2"}}))

	require.NoError(t, c.Invalidate(ctx, "r1"))

	for _, id := range []string{"", "r1"} {
		gen, err := c.Generation(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), gen, "generation for %q", id)
	}
	gen, err := c.Generation(ctx, "r2")
	require.NoError(t, err)
	assert.Zero(t, gen)

	_, hit, err := c.Get(ctx, "r1", 1)
	require.NoError(t, err)
	assert.False(t, hit)
	_, hit, err = c.Get(ctx, "r2", 0)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "1", mustGet(t, srv, GenerationKey("")))
}

func TestRedisPetCache_FillUnderOldGenerationIsNeverRead(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	gen, err := c.Generation(ctx, "")
	require.NoError(t, err)

	// a write lands between the reader's database query and its fill
	require.NoError(t, c.Invalidate(ctx, "r1"))
	require.NoError(t, c.Set(ctx, "", gen, []domain.Pet{}))

	current, err := c.Generation(ctx, "")
	require.NoError(t, err)
	_, hit, err := c.Get(ctx, "", current)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisPetCache_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t)

	require.NoError(t, srv.Set(ListingKey("", 0), "{not json"))
	_, hit, err := c.Get(ctx, "", 0)
	assert.Error(t, err)
	assert.False(t, hit)
}

func TestNopPetCache(t *testing.T) {
	var c PetListingCache = NopPetCache{}
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "", 0, []domain.Pet{{ID: "p1"}}))
	gen, err := c.Generation(ctx, "")
	assert.NoError(t, err)
	_, hit, err := c.Get(ctx, "", gen)
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, c.Invalidate(ctx, "r1"))
}

func mustGet(t *testing.T, srv *miniredis.Miniredis, key string) string {
	t.Helper()
	v, err := srv.Get(key)
	require.NoError(t, err)
	return v
}
