// Package exporter exposes console inventory as Prometheus metrics.
package exporter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"nexpose-cli/internal/lookup"
)

var (
	upDesc = prometheus.NewDesc(
		"nexpose_up", "Was the last scrape successful.", nil, nil,
	)
	scrapeDurationDesc = prometheus.NewDesc(
		"nexpose_scrape_duration_seconds", "Time taken to scrape the console API.", nil, nil,
	)
	sitesTotalDesc = prometheus.NewDesc(
		"nexpose_sites_total", "Number of sites.", nil, nil,
	)
	siteAssetsDesc = prometheus.NewDesc(
		"nexpose_site_assets", "Assets per site.", []string{"id", "name"}, nil,
	)
	templatesTotalDesc = prometheus.NewDesc(
		"nexpose_scan_templates_total", "Number of scan templates.", nil, nil,
	)
	engineUpDesc = prometheus.NewDesc(
		"nexpose_engine_up", "Scan engine status (1 = active).", []string{"id", "name", "address"}, nil,
	)
	notScannedDesc = prometheus.NewDesc(
		"nexpose_assets_not_scanned", "Assets whose last scan is older than the given number of days.", []string{"days"}, nil,
	)
)

// Collector scrapes the console on every Prometheus collection.
type Collector struct {
	Console   lookup.Console
	StaleDays int
	Timeout   time.Duration

	mu sync.Mutex
}

func NewCollector(c lookup.Console, staleDays int) *Collector {
	return &Collector{Console: c, StaleDays: staleDays, Timeout: 30 * time.Second}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- upDesc
	ch <- scrapeDurationDesc
	ch <- sitesTotalDesc
	ch <- siteAssetsDesc
	ch <- templatesTotalDesc
	ch <- engineUpDesc
	ch <- notScannedDesc
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := time.Now()
	ctx := context.Background()
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	success := 1.0
	fail := func(what string, err error) {
		success = 0
		logrus.WithError(err).Errorf("error scraping %s", what)
	}

	// 1. Sites
	if sites, err := c.Console.ListSites(ctx); err == nil {
		ch <- prometheus.MustNewConstMetric(sitesTotalDesc, prometheus.GaugeValue, float64(len(sites)))
		for _, s := range sites {
			ch <- prometheus.MustNewConstMetric(siteAssetsDesc, prometheus.GaugeValue, float64(s.Assets), strconv.Itoa(s.ID), s.Name)
		}
	} else {
		fail("sites", err)
	}

	// 2. Scan templates
	if tpls, err := c.Console.ListScanTemplates(ctx); err == nil {
		ch <- prometheus.MustNewConstMetric(templatesTotalDesc, prometheus.GaugeValue, float64(len(tpls)))
	} else {
		fail("scan templates", err)
	}

	// 3. Engines
	if engines, err := c.Console.ListEngines(ctx); err == nil {
		for _, e := range engines {
			up := 0.0
			if strings.EqualFold(e.Status, "active") {
				up = 1.0
			}
			addr := e.Address
			if addr == "" {
				addr = "unknown"
			}
			ch <- prometheus.MustNewConstMetric(engineUpDesc, prometheus.GaugeValue, up, strconv.Itoa(e.ID), e.Name, addr)
		}
	} else {
		fail("scan engines", err)
	}

	// 4. Stale assets
	if c.StaleDays >= 0 {
		if assets, err := lookup.NotScannedSince(ctx, c.Console, c.StaleDays); err == nil {
			ch <- prometheus.MustNewConstMetric(notScannedDesc, prometheus.GaugeValue, float64(len(assets)), fmt.Sprint(c.StaleDays))
		} else {
			fail("stale assets", err)
		}
	}

	ch <- prometheus.MustNewConstMetric(upDesc, prometheus.GaugeValue, success)
	ch <- prometheus.MustNewConstMetric(scrapeDurationDesc, prometheus.GaugeValue, time.Since(start).Seconds())
}
