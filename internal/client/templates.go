package client

import (
	"context"

	"github.com/go-resty/resty/v2"

	"nexpose-cli/pkg/models"
)

func (c *NexposeClient) ListScanTemplates(ctx context.Context) ([]models.ScanTemplate, error) {
	return fetchAll[models.ScanTemplate](ctx, c, "list scan templates", func(r *resty.Request) (*resty.Response, error) {
		return r.Get("/scan_templates")
	})
}

func (c *NexposeClient) ListEngines(ctx context.Context) ([]models.Engine, error) {
	return fetchAll[models.Engine](ctx, c, "list scan engines", func(r *resty.Request) (*resty.Response, error) {
		return r.Get("/scan_engines")
	})
}
