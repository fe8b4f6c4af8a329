package service

import (
	"context"
	"encoding/json"
	"time"

	"radiograph-service/internal/delivery/dto"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefix for cached patient lookups
	patientCacheKeyPrefix = "patient:"

	// Timeout for individual Redis operations
	cacheOpTimeout = 5 * time.Second
)

// PatientCache is a read-through cache for single-patient lookups, keyed by
// whatever identifier the caller used (store id or patient code). Writes to
// a patient invalidate both of its keys. A nil client disables the cache:
// every method degrades to a no-op / miss.
type PatientCache struct {
	client *redis.Client
	log    *logrus.Logger
	ttl    time.Duration
}

func NewPatientCache(client *redis.Client, log *logrus.Logger, ttl time.Duration) *PatientCache {
	return &PatientCache{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func (c *PatientCache) enabled() bool {
	return c != nil && c.client != nil
}

func (c *PatientCache) Get(ctx context.Context, key string) (*dto.PatientResponse, bool) {
	if !c.enabled() {
		return nil, false
	}

	opCtx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	raw, err := c.client.Get(opCtx, patientCacheKeyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Failed to read patient cache: %+v", err)
		}
		return nil, false
	}

	var patient dto.PatientResponse
	if err := json.Unmarshal(raw, &patient); err != nil {
		c.log.Warnf("Failed to decode cached patient: %+v", err)
		return nil, false
	}
	return &patient, true
}

func (c *PatientCache) Set(ctx context.Context, key string, patient *dto.PatientResponse) {
	if !c.enabled() || patient == nil {
		return
	}

	raw, err := json.Marshal(patient)
	if err != nil {
		c.log.Warnf("Failed to encode patient for cache: %+v", err)
		return
	}

	opCtx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	if err := c.client.Set(opCtx, patientCacheKeyPrefix+key, raw, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to write patient cache: %+v", err)
	}
}

func (c *PatientCache) Invalidate(ctx context.Context, keys ...string) {
	if !c.enabled() || len(keys) == 0 {
		return
	}

	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = patientCacheKeyPrefix + key
	}

	opCtx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	if err := c.client.Del(opCtx, prefixed...).Err(); err != nil {
		c.log.Warnf("Failed to invalidate patient cache: %+v", err)
	}
}

// Ping reports cache connectivity for the health endpoint.
func (c *PatientCache) Ping(ctx context.Context) error {
	if !c.enabled() {
		return redis.ErrClosed
	}

	opCtx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	return c.client.Ping(opCtx).Err()
}
