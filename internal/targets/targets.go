// Package targets loads scan targets for a site from CSV files.
package targets

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"nexpose-cli/pkg/models"
)

// SiteSaver loads a site and replaces its scan targets.
type SiteSaver interface {
	GetSite(ctx context.Context, id int) (*models.Site, error)
	SetIncludedTargets(ctx context.Context, siteID int, hostnames []string) error
}

// ReadHostnames returns the first column of every CSV row.
func ReadHostnames(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var hosts []string
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return hosts, nil
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		cell := rec[0]
		if row == 1 {
			// spreadsheet exports often start with a byte order mark
			cell = strings.TrimPrefix(cell, "\ufeff")
		}
		host := strings.TrimSpace(cell)
		if host == "" {
			return nil, fmt.Errorf("row %d: empty hostname", row)
		}
		hosts = append(hosts, host)
	}
}

// Load replaces the included targets of site siteID with the hostnames in
// the first column of csvPath and returns how many were saved.
func Load(ctx context.Context, s SiteSaver, siteID int, csvPath string) (int, error) {
	log := logrus.WithField("site", siteID)

	log.Info("loading site")
	site, err := s.GetSite(ctx, siteID)
	if err != nil {
		return 0, err
	}

	log.WithField("file", csvPath).Info("building hostname list")
	f, err := os.Open(csvPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	hosts, err := ReadHostnames(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", csvPath, err)
	}

	log.WithField("count", len(hosts)).Info("saving site targets")
	if err := s.SetIncludedTargets(ctx, site.ID, hosts); err != nil {
		return 0, err
	}

	log.WithFields(logrus.Fields{"name": site.Name, "count": len(hosts)}).Info("site targets replaced")
	return len(hosts), nil
}
