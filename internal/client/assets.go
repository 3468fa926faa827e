package client

import (
	"context"

	"github.com/go-resty/resty/v2"

	"nexpose-cli/pkg/models"
)

// Search runs an asset search and returns every matching asset.
func (c *NexposeClient) Search(ctx context.Context, criteria models.SearchCriteria) ([]models.Asset, error) {
	if criteria.Match == "" {
		criteria.Match = "all"
	}
	return fetchAll[models.Asset](ctx, c, "search assets", func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(criteria).Post("/assets/search")
	})
}

// Filter is a single-predicate Search.
func (c *NexposeClient) Filter(ctx context.Context, field models.SearchField, op models.SearchOperator, value any) ([]models.Asset, error) {
	return c.Search(ctx, models.SearchCriteria{
		Filters: []models.SearchFilter{{Field: field, Operator: op, Value: value}},
		Match:   "all",
	})
}
