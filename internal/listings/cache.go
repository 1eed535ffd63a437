// internal/listings/cache.go
package listings

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/redis/go-redis/v9"

	"deal-analyzer/internal/common/errors"
	"deal-analyzer/internal/common/metrics"
	"deal-analyzer/internal/models"
)

// Cache keeps listing pages and per-listing analysis results in Redis.
// A miss is never an error; infrastructure failures are.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func pageKey(page, limit int) string {
	return fmt.Sprintf("listings:page:%d:%d", page, limit)
}

// analysisKey ties a cached result to both the listing and the exact
// assumptions document it was computed under.
func analysisKey(propertyID string, a models.InvestmentAssumptions) string {
	data, _ := json.Marshal(a)
	h := fnv.New64a()
	h.Write(data)
	return fmt.Sprintf("analysis:%s:%x", propertyID, h.Sum64())
}

func (c *Cache) GetPage(ctx context.Context, page, limit int) ([]models.Property, bool, error) {
	raw, err := c.client.Get(ctx, pageKey(page, limit)).Bytes()
	if err == redis.Nil {
		metrics.CacheHits.WithLabelValues("listings", "miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		metrics.CacheHits.WithLabelValues("listings", "error").Inc()
		return nil, false, errors.Wrap(errors.ErrorCodeCacheRead, "failed to read listing page from cache", err)
	}

	var props []models.Property
	if err := json.Unmarshal(raw, &props); err != nil {
		metrics.CacheHits.WithLabelValues("listings", "error").Inc()
		return nil, false, errors.Wrap(errors.ErrorCodeCacheRead, "failed to decode cached listing page", err)
	}

	metrics.CacheHits.WithLabelValues("listings", "hit").Inc()
	return props, true, nil
}

func (c *Cache) SetPage(ctx context.Context, page, limit int, props []models.Property) error {
	raw, err := json.Marshal(props)
	if err != nil {
		return errors.Wrap(errors.ErrorCodeCacheWrite, "failed to encode listing page", err)
	}
	if err := c.client.Set(ctx, pageKey(page, limit), raw, c.ttl).Err(); err != nil {
		return errors.Wrap(errors.ErrorCodeCacheWrite, "failed to cache listing page", err)
	}
	return nil
}

func (c *Cache) GetAnalysis(ctx context.Context, propertyID string, a models.InvestmentAssumptions) (*models.AnalysisResult, bool, error) {
	raw, err := c.client.Get(ctx, analysisKey(propertyID, a)).Bytes()
	if err == redis.Nil {
		metrics.CacheHits.WithLabelValues("analysis", "miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		metrics.CacheHits.WithLabelValues("analysis", "error").Inc()
		return nil, false, errors.Wrap(errors.ErrorCodeCacheRead, "failed to read analysis from cache", err)
	}

	var result models.AnalysisResult
	if err := json.Unmarshal(raw, &result); err != nil {
		metrics.CacheHits.WithLabelValues("analysis", "error").Inc()
		return nil, false, errors.Wrap(errors.ErrorCodeCacheRead, "failed to decode cached analysis", err)
	}

	metrics.CacheHits.WithLabelValues("analysis", "hit").Inc()
	return &result, true, nil
}

func (c *Cache) SetAnalysis(ctx context.Context, propertyID string, a models.InvestmentAssumptions, result models.AnalysisResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return errors.Wrap(errors.ErrorCodeCacheWrite, "failed to encode analysis", err)
	}
	if err := c.client.Set(ctx, analysisKey(propertyID, a), raw, c.ttl).Err(); err != nil {
		return errors.Wrap(errors.ErrorCodeCacheWrite, "failed to cache analysis", err)
	}
	return nil
}
