package client

import (
	"context"
	"strconv"

	"github.com/go-resty/resty/v2"

	"nexpose-cli/pkg/models"
)

// fetchAll walks every page of a collection. send issues the prepared
// request with the verb and path of the caller.
func fetchAll[T any](ctx context.Context, c *NexposeClient, op string, send func(*resty.Request) (*resty.Response, error)) ([]T, error) {
	all := []T{}
	for page := 0; ; page++ {
		var respData models.Page[T]

		req := c.HTTP.R().
			SetContext(ctx).
			SetQueryParam("page", strconv.Itoa(page)).
			SetQueryParam("size", strconv.Itoa(c.pageSize())).
			SetResult(&respData)

		resp, err := send(req)
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, newAPIError(op, resp)
		}

		all = append(all, respData.Resources...)

		// unpaginated collections report no page info at all
		if page+1 >= respData.Page.TotalPages {
			return all, nil
		}
	}
}
