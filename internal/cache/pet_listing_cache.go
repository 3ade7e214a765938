package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/pet-adoption/internal/domain"
)

const (
	listPrefix = "pets:list:"
	genPrefix  = "pets:gen:"
)

// PetListingCache stores public pet listings keyed by owner filter.
//
// Entries are versioned: readers take the current generation before querying
// the database and store their result under it. Invalidate bumps the
// generation, so a fill computed from data read before a write can never be
// served after it.
type PetListingCache interface {
	Generation(ctx context.Context, responsibleID string) (int64, error)
	Get(ctx context.Context, responsibleID string, gen int64) ([]domain.Pet, bool, error)
	Set(ctx context.Context, responsibleID string, gen int64, pets []domain.Pet) error
	Invalidate(ctx context.Context, responsibleID string) error
}

func scope(responsibleID string) string {
	if responsibleID == "" {
		return "all"
	}
	return "responsible:" + responsibleID
}

// ListingKey returns the cache key for a listing at a generation; an empty
// responsibleID means all pets.
func ListingKey(responsibleID string, gen int64) string {
	return listPrefix + scope(responsibleID) + ":" + strconv.FormatInt(gen, 10)
}

// GenerationKey returns the counter key bumped on invalidation.
func GenerationKey(responsibleID string) string {
	return genPrefix + scope(responsibleID)
}

// RedisPetCache is a read-through listing cache backed by Redis.
type RedisPetCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPetCache builds the cache.
func NewRedisPetCache(client *redis.Client, ttl time.Duration) *RedisPetCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RedisPetCache{client: client, ttl: ttl}
}

// Generation returns the current version of a listing. A missing counter is generation 0.
func (c *RedisPetCache) Generation(ctx context.Context, responsibleID string) (int64, error) {
	gen, err := c.client.Get(ctx, GenerationKey(responsibleID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *RedisPetCache) Get(ctx context.Context, responsibleID string, gen int64) ([]domain.Pet, bool, error) {
	data, err := c.client.Get(ctx, ListingKey(responsibleID, gen)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var pets []domain.Pet
	if err := json.Unmarshal(data, &pets); err != nil {
		return nil, false, err
	}
	return pets, true, nil
}

func (c *RedisPetCache) Set(ctx context.Context, responsibleID string, gen int64, pets []domain.Pet) error {
	if pets == nil {
		pets = []domain.Pet{}
	}
	data, err := json.Marshal(pets)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, ListingKey(responsibleID, gen), data, c.ttl).Err()
}

// Invalidate moves the global listing and the owner's listing to a new
// generation. Superseded entries are left to expire.
func (c *RedisPetCache) Invalidate(ctx context.Context, responsibleID string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, GenerationKey(""))
		if responsibleID != "" {
			pipe.Incr(ctx, GenerationKey(responsibleID))
		}
		return nil
	})
	return err
}

// NopPetCache never hits; used when Redis is not configured.
type NopPetCache struct{}

func (NopPetCache) Generation(context.Context, string) (int64, error) { return 0, nil }
func (NopPetCache) Get(context.Context, string, int64) ([]domain.Pet, bool, error) {
	return nil, false, nil
}
func (NopPetCache) Set(context.Context, string, int64, []domain.Pet) error { return nil }
func (NopPetCache) Invalidate(context.Context, string) error              { return nil }
