// Package lookup resolves names and ids against a console. Every helper
// lists fresh from the console; nothing is cached between calls.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/sirupsen/logrus"

	"nexpose-cli/internal/index"
	"nexpose-cli/pkg/models"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrNegativeDays = errors.New("days must not be negative")
)

// Console is the part of the console API the helpers depend on.
type Console interface {
	ListSites(ctx context.Context) ([]models.Site, error)
	ListScanTemplates(ctx context.Context) ([]models.ScanTemplate, error)
	ListEngines(ctx context.Context) ([]models.Engine, error)
	Filter(ctx context.Context, field models.SearchField, op models.SearchOperator, value any) ([]models.Asset, error)
}

func build[K comparable, E models.Entity[K]](kind string, entities []E) *index.Index[K] {
	ix := index.Build[K](entities)
	for _, name := range ix.Duplicates() {
		logrus.WithFields(logrus.Fields{"kind": kind, "name": name}).
			Warn("duplicate name, lookups by name resolve to the last one listed")
	}
	return ix
}

func siteIndex(ctx context.Context, c Console) (*index.Index[int], error) {
	sites, err := c.ListSites(ctx)
	if err != nil {
		return nil, err
	}
	return build[int]("site", sites), nil
}

func templateIndex(ctx context.Context, c Console) (*index.Index[string], error) {
	tpls, err := c.ListScanTemplates(ctx)
	if err != nil {
		return nil, err
	}
	return build[string]("scan template", tpls), nil
}

// SiteNameToID returns the id of the site called name.
func SiteNameToID(ctx context.Context, c Console, name string) (int, bool, error) {
	ix, err := siteIndex(ctx, c)
	if err != nil {
		return 0, false, err
	}
	id, ok := ix.ID(name)
	return id, ok, nil
}

// SiteIDToName returns the name of site id.
func SiteIDToName(ctx context.Context, c Console, id int) (string, bool, error) {
	ix, err := siteIndex(ctx, c)
	if err != nil {
		return "", false, err
	}
	name, ok := ix.Name(id)
	return name, ok, nil
}

func SitesByID(ctx context.Context, c Console) (map[int]string, error) {
	ix, err := siteIndex(ctx, c)
	if err != nil {
		return nil, err
	}
	return ix.ByID(), nil
}

func SitesByName(ctx context.Context, c Console) (map[string]int, error) {
	ix, err := siteIndex(ctx, c)
	if err != nil {
		return nil, err
	}
	return ix.ByName(), nil
}

func ScanTemplatesByID(ctx context.Context, c Console) (map[string]string, error) {
	ix, err := templateIndex(ctx, c)
	if err != nil {
		return nil, err
	}
	return ix.ByID(), nil
}

func ScanTemplatesByName(ctx context.Context, c Console) (map[string]string, error) {
	ix, err := templateIndex(ctx, c)
	if err != nil {
		return nil, err
	}
	return ix.ByName(), nil
}

func ScanTemplateNameToID(ctx context.Context, c Console, name string) (string, bool, error) {
	ix, err := templateIndex(ctx, c)
	if err != nil {
		return "", false, err
	}
	id, ok := ix.ID(name)
	return id, ok, nil
}

func ScanTemplateIDToName(ctx context.Context, c Console, id string) (string, bool, error) {
	ix, err := templateIndex(ctx, c)
	if err != nil {
		return "", false, err
	}
	name, ok := ix.Name(id)
	return name, ok, nil
}

func EngineNameToID(ctx context.Context, c Console, name string) (int, bool, error) {
	engines, err := c.ListEngines(ctx)
	if err != nil {
		return 0, false, err
	}
	id, ok := build[int]("scan engine", engines).ID(name)
	return id, ok, nil
}

// ValidateEngineID reports whether id names an engine the console knows.
func ValidateEngineID(ctx context.Context, c Console, id int) (bool, error) {
	engines, err := c.ListEngines(ctx)
	if err != nil {
		return false, err
	}
	return index.IsValid(id, index.KeySet[int](engines)), nil
}

// ResolveSite accepts either a numeric site id or a site name. A numeric
// ref that is not a known id is tried as a name before giving up.
func ResolveSite(ctx context.Context, c Console, ref string) (int, string, error) {
	ix, err := siteIndex(ctx, c)
	if err != nil {
		return 0, "", err
	}
	if id, err := strconv.Atoi(ref); err == nil {
		if name, ok := ix.Name(id); ok {
			return id, name, nil
		}
	}
	if id, ok := ix.ID(ref); ok {
		return id, ref, nil
	}
	return 0, "", fmt.Errorf("site %q: %w", ref, ErrNotFound)
}

// GetAsset finds assets matching host, by address for IP literals and by
// host name otherwise.
func GetAsset(ctx context.Context, c Console, host string) ([]models.Asset, error) {
	field := models.FieldHostName
	if net.ParseIP(host) != nil {
		field = models.FieldIPAddress
	}
	return c.Filter(ctx, field, models.OperatorIs, host)
}

// NotScannedSince returns the assets whose last scan is older than days.
// The console's answer is returned as is.
func NotScannedSince(ctx context.Context, c Console, days int) ([]models.Asset, error) {
	if days < 0 {
		return nil, fmt.Errorf("%d: %w", days, ErrNegativeDays)
	}
	return c.Filter(ctx, models.FieldScanDate, models.OperatorEarlierThan, days)
}
