package service

import (
	"context"
	"encoding/json"
	"time"

	"clinic-booking-api/internal/delivery/dto"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// AvailabilityKeyPrefix namespaces cached availability responses in Redis.
const AvailabilityKeyPrefix = "availability:"

// AvailabilityCache is a read-through cache for availability queries.
// Redis failures are never surfaced to the caller: a failed Get is a miss
// and a failed Set/Invalidate is logged and ignored, so the database stays
// the source of truth.
type AvailabilityCache struct {
	client *redis.Client
	log    *logrus.Logger
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, log *logrus.Logger, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func availabilityKey(department, date string) string {
	return AvailabilityKeyPrefix + department + ":" + date
}

// Get returns the cached availability for (department, date), or nil on miss.
func (c *AvailabilityCache) Get(ctx context.Context, department, date string) *dto.AvailabilityResponse {
	raw, err := c.client.Get(ctx, availabilityKey(department, date)).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Availability cache read failed: %+v", err)
		}
		return nil
	}

	var response dto.AvailabilityResponse
	if err := json.Unmarshal([]byte(raw), &response); err != nil {
		c.log.Warnf("Availability cache entry corrupt, dropping: %+v", err)
		return nil
	}
	return &response
}

// Set stores the availability response under a short TTL.
func (c *AvailabilityCache) Set(ctx context.Context, department, date string, response *dto.AvailabilityResponse) {
	raw, err := json.Marshal(response)
	if err != nil {
		c.log.Warnf("Failed to marshal availability for cache: %+v", err)
		return
	}
	if err := c.client.Set(ctx, availabilityKey(department, date), raw, c.ttl).Err(); err != nil {
		c.log.Warnf("Availability cache write failed: %+v", err)
	}
}

// Invalidate drops the cached entry for (department, date). Every mutation
// of an appointment (book, reschedule, cancel) calls this for the affected
// department and date.
func (c *AvailabilityCache) Invalidate(ctx context.Context, department, date string) {
	if err := c.client.Del(ctx, availabilityKey(department, date)).Err(); err != nil {
		c.log.Warnf("Availability cache invalidation failed: %+v", err)
	}
}
