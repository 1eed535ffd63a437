// internal/listings/search.go
package listings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"deal-analyzer/internal/common/errors"
	"deal-analyzer/internal/models"
)

// SearchIndex provides full-text lookup over listing descriptions.
// Only the searchable fields are indexed; the listing body stays in
// Postgres.
type SearchIndex struct {
	client *elasticsearch.Client
	index  string
}

func NewSearchIndex(client *elasticsearch.Client, index string) *SearchIndex {
	return &SearchIndex{client: client, index: index}
}

type listingDoc struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	City        string `json:"city"`
	ZipCode     string `json:"zipCode"`
}

// Index adds or replaces a listing document.
func (s *SearchIndex) Index(ctx context.Context, p models.Property) error {
	doc := listingDoc{
		ID:          p.ID,
		Description: p.Details.Description,
		City:        p.Address.City,
		ZipCode:     p.Address.ZipCode,
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(errors.ErrorCodeSearchQueryFailed, "failed to encode listing document", err)
	}

	req := esapi.IndexRequest{
		Index:      s.index,
		DocumentID: p.ID,
		Body:       bytes.NewReader(body),
	}

	res, err := req.Do(ctx, s.client)
	if err != nil {
		return errors.Wrap(errors.ErrorCodeSearchQueryFailed, "failed to index listing", err).
			WithDetail("listing_id", p.ID)
	}
	defer res.Body.Close()

	if res.IsError() {
		return errors.New(errors.ErrorCodeSearchQueryFailed,
			fmt.Sprintf("index request returned %s", res.Status())).
			WithDetail("listing_id", p.ID)
	}
	return nil
}

// IndexPage indexes every listing of a page.
func (s *SearchIndex) IndexPage(ctx context.Context, props []models.Property) error {
	for _, p := range props {
		if err := s.Index(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// SearchIDs returns the ids of listings matching the query text, best
// match first.
func (s *SearchIndex) SearchIDs(ctx context.Context, query string, size int) ([]string, error) {
	body := map[string]interface{}{
		"size":    size,
		"_source": []string{"id"},
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"description", "city", "zipCode"},
			},
		},
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrorCodeSearchQueryFailed, "failed to encode search query", err)
	}

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(bytes.NewReader(raw)),
	)
	if err != nil {
		return nil, errors.Wrap(errors.ErrorCodeSearchQueryFailed, "search request failed", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, errors.New(errors.ErrorCodeSearchQueryFailed,
			fmt.Sprintf("search request returned %s", res.Status()))
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source listingDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, errors.Wrap(errors.ErrorCodeSearchQueryFailed, "failed to decode search response", err)
	}

	ids := make([]string, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		ids = append(ids, hit.Source.ID)
	}
	return ids, nil
}
