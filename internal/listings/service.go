// internal/listings/service.go
package listings

import (
	"context"
	"time"

	"deal-analyzer/internal/analysis"
	"deal-analyzer/internal/common/errors"
	"deal-analyzer/internal/common/logger"
	"deal-analyzer/internal/common/metrics"
	"deal-analyzer/internal/models"
)

// AnalyzedListing pairs a listing with its computed deal analysis.
type AnalyzedListing struct {
	Property models.Property       `json:"property"`
	Analysis models.AnalysisResult `json:"analysis"`
}

// Service is the listing read path: Redis page cache in front of
// Postgres, with the generator as the source of last resort. Search is
// optional and nil when Elasticsearch is disabled.
type Service struct {
	gen    *Generator
	repo   *Repository
	cache  *Cache
	search *SearchIndex
	log    logger.Logger
}

func NewService(gen *Generator, repo *Repository, cache *Cache, search *SearchIndex, log logger.Logger) *Service {
	return &Service{
		gen:    gen,
		repo:   repo,
		cache:  cache,
		search: search,
		log:    log,
	}
}

// Page returns a page of listings, generating and persisting it on
// first access. Cache failures degrade to the slower path.
func (s *Service) Page(ctx context.Context, page, limit int) ([]models.Property, error) {
	if props, found, err := s.cache.GetPage(ctx, page, limit); err != nil {
		s.log.WithError(err).Warn("listing page cache read failed", map[string]interface{}{
			"page": page,
		})
	} else if found {
		metrics.ListingPagesServed.WithLabelValues("cache").Inc()
		return props, nil
	}

	props, err := s.repo.GetPage(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	source := "db"
	if len(props) == 0 {
		props = s.gen.Page(page, limit)
		source = "generated"

		if err := s.repo.SavePage(ctx, page, props); err != nil {
			return nil, err
		}
		if s.search != nil {
			if err := s.search.IndexPage(ctx, props); err != nil {
				s.log.WithError(err).Warn("failed to index generated listings", map[string]interface{}{
					"page": page,
				})
			}
		}
	}

	if err := s.cache.SetPage(ctx, page, limit, props); err != nil {
		s.log.WithError(err).Warn("listing page cache write failed", map[string]interface{}{
			"page": page,
		})
	}

	metrics.ListingPagesServed.WithLabelValues(source).Inc()
	return props, nil
}

// Get returns a single listing by id.
func (s *Service) Get(ctx context.Context, id string) (*models.Property, error) {
	return s.repo.GetByID(ctx, id)
}

// FilteredPage returns the listings of a page that pass the filter,
// each with its analysis under the given assumptions.
func (s *Service) FilteredPage(ctx context.Context, page, limit int, criteria models.FilterCriteria, assumptions models.InvestmentAssumptions) ([]AnalyzedListing, error) {
	props, err := s.Page(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	out := make([]AnalyzedListing, 0, len(props))
	for _, p := range props {
		if !analysis.MatchesFilter(p, criteria) {
			continue
		}
		result := s.analyze(ctx, p, assumptions)
		out = append(out, AnalyzedListing{Property: p, Analysis: result})
	}
	return out, nil
}

// Search resolves a free-text query through Elasticsearch and returns
// the matching listings with their analyses.
func (s *Service) Search(ctx context.Context, query string, size int, assumptions models.InvestmentAssumptions) ([]AnalyzedListing, error) {
	if s.search == nil {
		return nil, errors.New(errors.ErrorCodeSearchQueryFailed, "search is not enabled")
	}

	ids, err := s.search.SearchIDs(ctx, query, size)
	if err != nil {
		return nil, err
	}

	out := make([]AnalyzedListing, 0, len(ids))
	for _, id := range ids {
		p, err := s.repo.GetByID(ctx, id)
		if err != nil {
			// The index can briefly outlive a listing row.
			s.log.WithError(err).Warn("indexed listing missing from store", map[string]interface{}{
				"listing_id": id,
			})
			continue
		}
		result := s.analyze(ctx, *p, assumptions)
		out = append(out, AnalyzedListing{Property: *p, Analysis: result})
	}
	return out, nil
}

// analyze computes a deal analysis, consulting the analysis cache
// keyed by listing and assumptions.
func (s *Service) analyze(ctx context.Context, p models.Property, a models.InvestmentAssumptions) models.AnalysisResult {
	if cached, found, err := s.cache.GetAnalysis(ctx, p.ID, a); err != nil {
		s.log.WithError(err).Warn("analysis cache read failed", map[string]interface{}{
			"listing_id": p.ID,
		})
	} else if found {
		return *cached
	}

	start := time.Now()
	result := analysis.Analyze(p, a)
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	metrics.AnalysesComputed.WithLabelValues(string(result.Score)).Inc()

	if err := s.cache.SetAnalysis(ctx, p.ID, a, result); err != nil {
		s.log.WithError(err).Warn("analysis cache write failed", map[string]interface{}{
			"listing_id": p.ID,
		})
	}
	return result
}
