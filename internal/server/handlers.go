// internal/server/handlers.go
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"deal-analyzer/internal/alerts"
	"deal-analyzer/internal/analysis"
	"deal-analyzer/internal/common/errors"
	"deal-analyzer/internal/common/logger"
	"deal-analyzer/internal/common/metrics"
	"deal-analyzer/internal/common/validation"
	"deal-analyzer/internal/listings"
	"deal-analyzer/internal/models"
)

// ListingSource is the listing read path the handlers depend on.
type ListingSource interface {
	Page(ctx context.Context, page, limit int) ([]models.Property, error)
	Get(ctx context.Context, id string) (*models.Property, error)
	FilteredPage(ctx context.Context, page, limit int, criteria models.FilterCriteria, assumptions models.InvestmentAssumptions) ([]listings.AnalyzedListing, error)
	Search(ctx context.Context, query string, size int, assumptions models.InvestmentAssumptions) ([]listings.AnalyzedListing, error)
}

// Notifier dispatches alerts for deals that cross the alert threshold.
type Notifier interface {
	DealAlert(ctx context.Context, p models.Property, result models.AnalysisResult) (*alerts.Alert, error)
}

// AssumptionsProvider serves and replaces the active assumptions document.
type AssumptionsProvider interface {
	Current(ctx context.Context) (models.InvestmentAssumptions, error)
	Replace(ctx context.Context, a models.InvestmentAssumptions) error
}

type Handlers struct {
	source      ListingSource
	store       AssumptionsProvider
	notifier    Notifier
	log         logger.Logger
	defaultPage int
}

func NewHandlers(source ListingSource, store AssumptionsProvider, notifier Notifier, log logger.Logger, defaultPageSize int) *Handlers {
	if defaultPageSize <= 0 {
		defaultPageSize = 10
	}
	return &Handlers{
		source:      source,
		store:       store,
		notifier:    notifier,
		log:         log,
		defaultPage: defaultPageSize,
	}
}

// ==========================
// Listing Handlers
// ==========================

// listListings serves GET /api/v1/listings. Filter clauses come from
// query parameters; absent parameters fall back to the stock filter.
func (h *Handlers) listListings(c *gin.Context) {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", h.defaultPage)
	if page < 1 || limit < 1 || limit > 100 {
		h.writeError(c, errors.New(errors.ErrorCodeInvalidRequest, "page and limit must be positive; limit at most 100"))
		return
	}

	criteria, err := filterFromQuery(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	assumptions, err := h.store.Current(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	results, err := h.source.FilteredPage(c.Request.Context(), page, limit, criteria, assumptions)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":     page,
		"limit":    limit,
		"listings": results,
	})
}

// getListing serves GET /api/v1/listings/:id.
func (h *Handlers) getListing(c *gin.Context) {
	p, err := h.source.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	assumptions, err := h.store.Current(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, listings.AnalyzedListing{
		Property: *p,
		Analysis: h.analyze(c.Request.Context(), *p, assumptions),
	})
}

// searchListings serves GET /api/v1/search?q=...
func (h *Handlers) searchListings(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		h.writeError(c, errors.New(errors.ErrorCodeInvalidRequest, "q is required"))
		return
	}
	limit := intQuery(c, "limit", h.defaultPage)
	if limit < 1 || limit > 100 {
		h.writeError(c, errors.New(errors.ErrorCodeInvalidRequest, "limit must be between 1 and 100"))
		return
	}

	assumptions, err := h.store.Current(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	results, err := h.source.Search(c.Request.Context(), query, limit, assumptions)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":    query,
		"listings": results,
	})
}

// ==========================
// Analysis Handlers
// ==========================

type analyzeRequest struct {
	Property    models.Property `json:"property"`
	Assumptions json.RawMessage `json:"assumptions,omitempty"`
}

// analyzeListing serves POST /api/v1/analyze: a one-off analysis of a
// caller-supplied property, optionally under caller-supplied
// assumptions instead of the stored document.
func (h *Handlers) analyzeListing(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, errors.Wrap(errors.ErrorCodeInvalidRequest, "malformed request body", err))
		return
	}

	if req.Property.Price <= 0 {
		h.writeError(c, errors.New(errors.ErrorCodeInvalidRequest, "property.price must be positive"))
		return
	}

	var assumptions models.InvestmentAssumptions
	if len(req.Assumptions) > 0 {
		if err := validation.ValidateAssumptions(req.Assumptions); err != nil {
			h.writeError(c, errors.Wrap(errors.ErrorCodeAssumptionsInvalid, "assumptions rejected", err))
			return
		}
		if err := json.Unmarshal(req.Assumptions, &assumptions); err != nil {
			h.writeError(c, errors.Wrap(errors.ErrorCodeAssumptionsInvalid, "failed to decode assumptions", err))
			return
		}
		if err := assumptions.Validate(); err != nil {
			h.writeError(c, errors.Wrap(errors.ErrorCodeAssumptionsInvalid, "assumptions rejected", err))
			return
		}
	} else {
		current, err := h.store.Current(c.Request.Context())
		if err != nil {
			h.writeError(c, err)
			return
		}
		assumptions = current
	}

	result := h.analyze(c.Request.Context(), req.Property, assumptions)

	c.JSON(http.StatusOK, gin.H{
		"property": req.Property,
		"analysis": result,
	})
}

// analyze runs the engine, records metrics, and fires an alert when
// the deal scores Excellent. Alert failures never fail the request.
func (h *Handlers) analyze(ctx context.Context, p models.Property, a models.InvestmentAssumptions) models.AnalysisResult {
	start := time.Now()
	result := analysis.Analyze(p, a)
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	metrics.AnalysesComputed.WithLabelValues(string(result.Score)).Inc()

	if result.Score == models.DealScoreExcellent && h.notifier != nil {
		if _, err := h.notifier.DealAlert(ctx, p, result); err != nil {
			h.log.WithError(err).Warn("deal alert delivery failed", map[string]interface{}{
				"listingId": p.ID,
			})
		}
	}
	return result
}

// ==========================
// Assumptions Handlers
// ==========================

// getAssumptions serves GET /api/v1/assumptions.
func (h *Handlers) getAssumptions(c *gin.Context) {
	a, err := h.store.Current(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// putAssumptions serves PUT /api/v1/assumptions. The document is
// replaced wholesale; there is no field-level patching.
func (h *Handlers) putAssumptions(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		h.writeError(c, errors.Wrap(errors.ErrorCodeInvalidRequest, "failed to read request body", err))
		return
	}

	if err := validation.ValidateAssumptions(raw); err != nil {
		h.writeError(c, errors.Wrap(errors.ErrorCodeAssumptionsInvalid, "assumptions rejected", err))
		return
	}

	var a models.InvestmentAssumptions
	if err := json.Unmarshal(raw, &a); err != nil {
		h.writeError(c, errors.Wrap(errors.ErrorCodeAssumptionsInvalid, "failed to decode assumptions", err))
		return
	}
	if err := a.Validate(); err != nil {
		h.writeError(c, errors.Wrap(errors.ErrorCodeAssumptionsInvalid, "assumptions rejected", err))
		return
	}

	if err := h.store.Replace(c.Request.Context(), a); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// ==========================
// Helpers
// ==========================

func (h *Handlers) writeError(c *gin.Context, err error) {
	stdErr, ok := err.(*errors.StandardError)
	if !ok {
		stdErr = errors.Wrap(errors.ErrorCodeQueryExecution, "internal error", err)
	}

	status := errors.HTTPStatus(stdErr.Code)
	if status >= http.StatusInternalServerError {
		h.log.WithError(err).Error("request failed", map[string]interface{}{
			"path": c.Request.URL.Path,
		})
	}
	c.AbortWithStatusJSON(status, gin.H{"error": stdErr})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func floatQuery(c *gin.Context, name string, fallback float64) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New(errors.ErrorCodeInvalidRequest, name+" must be a number")
	}
	return v, nil
}

// filterFromQuery builds filter criteria from query parameters, with
// the stock filter supplying every absent clause.
func filterFromQuery(c *gin.Context) (models.FilterCriteria, error) {
	criteria := models.DefaultFilters()

	var err error
	if criteria.PriceMin, err = floatQuery(c, "priceMin", criteria.PriceMin); err != nil {
		return criteria, err
	}
	if criteria.PriceMax, err = floatQuery(c, "priceMax", criteria.PriceMax); err != nil {
		return criteria, err
	}
	if criteria.BathsMin, err = floatQuery(c, "bathsMin", criteria.BathsMin); err != nil {
		return criteria, err
	}
	criteria.BedsMin = intQuery(c, "bedsMin", criteria.BedsMin)
	criteria.Keywords = c.Query("keywords")
	criteria.ZipCode = c.Query("zipCode")

	if raw := c.Query("propertyType"); raw != "" {
		pt := models.PropertyType(raw)
		if pt != models.PropertyTypeAny && !validPropertyType(pt) {
			return criteria, errors.New(errors.ErrorCodeInvalidRequest, "unknown propertyType").
				WithDetail("propertyType", raw)
		}
		criteria.PropertyType = pt
	}
	return criteria, nil
}

func validPropertyType(pt models.PropertyType) bool {
	for _, known := range models.PropertyTypes {
		if pt == known {
			return true
		}
	}
	return false
}
