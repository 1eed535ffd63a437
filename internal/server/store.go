// internal/server/store.go
package server

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"deal-analyzer/internal/common/errors"
	"deal-analyzer/internal/models"
)

const assumptionsKey = "assumptions:current"

// RedisAssumptionsStore holds the active assumptions document. There is
// one document for the whole service; PUT replaces it wholesale.
type RedisAssumptionsStore struct {
	client   *redis.Client
	defaults models.InvestmentAssumptions
}

func NewRedisAssumptionsStore(client *redis.Client, defaults models.InvestmentAssumptions) *RedisAssumptionsStore {
	return &RedisAssumptionsStore{client: client, defaults: defaults}
}

// Current returns the stored assumptions, or the configured defaults
// when nothing has been stored yet.
func (s *RedisAssumptionsStore) Current(ctx context.Context) (models.InvestmentAssumptions, error) {
	raw, err := s.client.Get(ctx, assumptionsKey).Bytes()
	if err == redis.Nil {
		return s.defaults, nil
	}
	if err != nil {
		return models.InvestmentAssumptions{}, errors.Wrap(errors.ErrorCodeCacheRead, "failed to read assumptions", err)
	}

	var a models.InvestmentAssumptions
	if err := json.Unmarshal(raw, &a); err != nil {
		return models.InvestmentAssumptions{}, errors.Wrap(errors.ErrorCodeCacheRead, "failed to decode stored assumptions", err)
	}
	return a, nil
}

// Replace stores a new assumptions document. The caller validates it
// first; the store never inspects the values.
func (s *RedisAssumptionsStore) Replace(ctx context.Context, a models.InvestmentAssumptions) error {
	raw, err := json.Marshal(a)
	if err != nil {
		return errors.Wrap(errors.ErrorCodeCacheWrite, "failed to encode assumptions", err)
	}
	if err := s.client.Set(ctx, assumptionsKey, raw, 0).Err(); err != nil {
		return errors.Wrap(errors.ErrorCodeCacheWrite, "failed to store assumptions", err)
	}
	return nil
}
