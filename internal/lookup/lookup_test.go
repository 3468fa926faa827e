package lookup

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexpose-cli/pkg/models"
)

type filterCall struct {
	field models.SearchField
	op    models.SearchOperator
	value any
}

type fakeConsole struct {
	sites     []models.Site
	templates []models.ScanTemplate
	engines   []models.Engine
	assets    []models.Asset
	err       error

	listCalls int
	filters   []filterCall
}

func (f *fakeConsole) ListSites(context.Context) ([]models.Site, error) {
	f.listCalls++
	return f.sites, f.err
}

func (f *fakeConsole) ListScanTemplates(context.Context) ([]models.ScanTemplate, error) {
	f.listCalls++
	return f.templates, f.err
}

func (f *fakeConsole) ListEngines(context.Context) ([]models.Engine, error) {
	f.listCalls++
	return f.engines, f.err
}

func (f *fakeConsole) Filter(_ context.Context, field models.SearchField, op models.SearchOperator, value any) ([]models.Asset, error) {
	f.filters = append(f.filters, filterCall{field, op, value})
	return f.assets, f.err
}

func TestSiteLookups(t *testing.T) {
	ctx := context.Background()
	fc := &fakeConsole{sites: []models.Site{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}}

	name, ok, err := SiteIDToName(ctx, fc, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "A", name)

	id, ok, err := SiteNameToID(ctx, fc, "B")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, id)

	_, ok, err = SiteIDToName(ctx, fc, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	byID, err := SitesByID(ctx, fc)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "A", 2: "B"}, byID)

	byName, err := SitesByName(ctx, fc)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 1, "B": 2}, byName)

	// one listing per call
	assert.Equal(t, 5, fc.listCalls)
}

func TestDuplicateSiteNameWarnsAndLastWins(t *testing.T) {
	var buf bytes.Buffer
	orig := logrus.StandardLogger().Out
	logrus.SetOutput(&buf)
	defer logrus.SetOutput(orig)

	fc := &fakeConsole{sites: []models.Site{{ID: 4, Name: "Branch"}, {ID: 9, Name: "Branch"}}}

	id, ok, err := SiteNameToID(context.Background(), fc, "Branch")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 9, id)
	assert.Contains(t, buf.String(), "duplicate name")
	assert.Contains(t, buf.String(), "Branch")
}

func TestScanTemplateLookups(t *testing.T) {
	ctx := context.Background()
	fc := &fakeConsole{templates: []models.ScanTemplate{
		{ID: "full-audit-without-web-spider", Name: "Full audit without Web Spider"},
		{ID: "discovery", Name: "Discovery Scan"},
	}}

	byID, err := ScanTemplatesByID(ctx, fc)
	require.NoError(t, err)
	assert.Equal(t, "Discovery Scan", byID["discovery"])

	byName, err := ScanTemplatesByName(ctx, fc)
	require.NoError(t, err)
	assert.Equal(t, "full-audit-without-web-spider", byName["Full audit without Web Spider"])

	id, ok, err := ScanTemplateNameToID(ctx, fc, "Discovery Scan")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "discovery", id)

	name, ok, err := ScanTemplateIDToName(ctx, fc, "nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, name)
}

func TestValidateEngineID(t *testing.T) {
	ctx := context.Background()
	fc := &fakeConsole{engines: []models.Engine{{ID: 3, Name: "Local scan engine"}, {ID: 8, Name: "DMZ"}}}

	ok, err := ValidateEngineID(ctx, fc, 8)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ValidateEngineID(ctx, fc, 4)
	require.NoError(t, err)
	assert.False(t, ok)

	id, ok, err := EngineNameToID(ctx, fc, "DMZ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 8, id)

	ok, err = ValidateEngineID(ctx, &fakeConsole{}, 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolveSite(t *testing.T) {
	ctx := context.Background()
	fc := &fakeConsole{sites: []models.Site{{ID: 1, Name: "HQ"}, {ID: 2, Name: "2019"}}}

	id, name, err := ResolveSite(ctx, fc, "1")
	require.NoError(t, err)
	assert.Equal(t, 1, id)
	assert.Equal(t, "HQ", name)

	id, _, err = ResolveSite(ctx, fc, "HQ")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	id, _, err = ResolveSite(ctx, fc, "2019")
	require.NoError(t, err)
	assert.Equal(t, 2, id)

	_, _, err = ResolveSite(ctx, fc, "Nowhere")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestNotScannedSinceForwardsPredicate(t *testing.T) {
	want := []models.Asset{{ID: 7, IP: "10.0.0.7"}, {ID: 3, HostName: "old.corp"}}
	fc := &fakeConsole{assets: want}

	got, err := NotScannedSince(context.Background(), fc, 30)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	require.Len(t, fc.filters, 1)
	assert.Equal(t, filterCall{models.FieldScanDate, models.OperatorEarlierThan, 30}, fc.filters[0])
}

func TestNotScannedSinceRejectsNegativeDays(t *testing.T) {
	fc := &fakeConsole{}

	_, err := NotScannedSince(context.Background(), fc, -1)
	assert.True(t, errors.Is(err, ErrNegativeDays))
	assert.Empty(t, fc.filters)

	_, err = NotScannedSince(context.Background(), fc, 0)
	require.NoError(t, err)
	assert.Len(t, fc.filters, 1)
}

func TestGetAssetPicksField(t *testing.T) {
	fc := &fakeConsole{}
	ctx := context.Background()

	_, err := GetAsset(ctx, fc, "10.2.3.4")
	require.NoError(t, err)
	_, err = GetAsset(ctx, fc, "web01.corp")
	require.NoError(t, err)

	assert.Equal(t, []filterCall{
		{models.FieldIPAddress, models.OperatorIs, "10.2.3.4"},
		{models.FieldHostName, models.OperatorIs, "web01.corp"},
	}, fc.filters)
}

func TestConsoleErrorsPropagate(t *testing.T) {
	boom := errors.New("connection refused")
	fc := &fakeConsole{err: boom}
	ctx := context.Background()

	_, _, err := SiteNameToID(ctx, fc, "A")
	assert.ErrorIs(t, err, boom)
	_, err = ScanTemplatesByID(ctx, fc)
	assert.ErrorIs(t, err, boom)
	_, err = ValidateEngineID(ctx, fc, 1)
	assert.ErrorIs(t, err, boom)
	_, err = NotScannedSince(ctx, fc, 5)
	assert.ErrorIs(t, err, boom)
}
