package client

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"nexpose-cli/pkg/models"
)

// ListSites fetches every site visible to the user.
func (c *NexposeClient) ListSites(ctx context.Context) ([]models.Site, error) {
	return fetchAll[models.Site](ctx, c, "list sites", func(r *resty.Request) (*resty.Response, error) {
		return r.Get("/sites")
	})
}

// GetSite loads a single site.
func (c *NexposeClient) GetSite(ctx context.Context, id int) (*models.Site, error) {
	var site models.Site

	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetPathParam("id", fmt.Sprint(id)).
		SetResult(&site).
		Get("/sites/{id}")

	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, newAPIError(fmt.Sprintf("get site %d", id), resp)
	}

	return &site, nil
}

// IncludedTargets returns the addresses a site scans.
func (c *NexposeClient) IncludedTargets(ctx context.Context, siteID int) ([]string, error) {
	var respData struct {
		Addresses []string `json:"addresses"`
	}

	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetPathParam("id", fmt.Sprint(siteID)).
		SetResult(&respData).
		Get("/sites/{id}/included_targets")

	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, newAPIError(fmt.Sprintf("get targets of site %d", siteID), resp)
	}

	return respData.Addresses, nil
}

// SetIncludedTargets replaces the scan targets of a site with hostnames.
func (c *NexposeClient) SetIncludedTargets(ctx context.Context, siteID int, hostnames []string) error {
	if hostnames == nil {
		hostnames = []string{}
	}

	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetPathParam("id", fmt.Sprint(siteID)).
		SetBody(hostnames).
		Put("/sites/{id}/included_targets")

	if err != nil {
		return err
	}
	if resp.IsError() {
		return newAPIError(fmt.Sprintf("save targets of site %d", siteID), resp)
	}

	return nil
}
