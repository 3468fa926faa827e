package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexpose-cli/pkg/models"
)

func TestBuildPointLookups(t *testing.T) {
	ix := Build[int]([]models.Site{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}})

	name, ok := ix.Name(1)
	require.True(t, ok)
	assert.Equal(t, "A", name)

	id, ok := ix.ID("B")
	require.True(t, ok)
	assert.Equal(t, 2, id)

	name, ok = ix.Name(3)
	assert.False(t, ok)
	assert.Empty(t, name)

	id, ok = ix.ID("missing")
	assert.False(t, ok)
	assert.Zero(t, id)

	assert.Equal(t, 2, ix.Len())
	assert.Empty(t, ix.Duplicates())
}

func TestBuildRoundTripUniqueNames(t *testing.T) {
	templates := []models.ScanTemplate{
		{ID: "full-audit-without-web-spider", Name: "Full audit without Web Spider"},
		{ID: "discovery", Name: "Discovery Scan"},
		{ID: "pci-audit", Name: "PCI ASV External Audit"},
	}
	ix := Build[string](templates)

	for _, tpl := range templates {
		name, ok := ix.Name(tpl.ID)
		require.True(t, ok)
		id, ok := ix.ID(name)
		require.True(t, ok)
		assert.Equal(t, tpl.ID, id)

		id, _ = ix.ID(tpl.Name)
		back, _ := ix.Name(id)
		assert.Equal(t, tpl.Name, back)
	}
}

func TestBuildDuplicateNameLastWins(t *testing.T) {
	ix := Build[int]([]models.Engine{
		{ID: 3, Name: "Local scan engine"},
		{ID: 7, Name: "DMZ"},
		{ID: 9, Name: "Local scan engine"},
		{ID: 12, Name: "Local scan engine"},
	})

	id, ok := ix.ID("Local scan engine")
	require.True(t, ok)
	assert.Equal(t, 12, id)
	assert.Equal(t, []string{"Local scan engine"}, ix.Duplicates())

	// every id keeps its name
	for _, id := range []int{3, 9, 12} {
		name, ok := ix.Name(id)
		require.True(t, ok)
		assert.Equal(t, "Local scan engine", name)
	}
}

func TestBuildRepeatedEntityIsNotDuplicate(t *testing.T) {
	ix := Build[int]([]models.Site{{ID: 1, Name: "A"}, {ID: 1, Name: "A"}})
	assert.Empty(t, ix.Duplicates())
	assert.Equal(t, 1, ix.Len())
}

func TestMappingsAreCopies(t *testing.T) {
	ix := Build[int]([]models.Site{{ID: 1, Name: "A"}})

	byID := ix.ByID()
	byID[2] = "B"
	byName := ix.ByName()
	byName["B"] = 2

	_, ok := ix.Name(2)
	assert.False(t, ok)
	_, ok = ix.ID("B")
	assert.False(t, ok)
	assert.Equal(t, map[string]int{"A": 1}, ix.ByName())
}

func TestAssetNameFallsBackToIP(t *testing.T) {
	ix := Build[int]([]models.Asset{
		{ID: 10, IP: "10.0.0.5", HostName: "web01.corp"},
		{ID: 11, IP: "10.0.0.6"},
	})

	id, ok := ix.ID("10.0.0.6")
	require.True(t, ok)
	assert.Equal(t, 11, id)
	id, _ = ix.ID("web01.corp")
	assert.Equal(t, 10, id)
}

func TestIsValid(t *testing.T) {
	known := KeySet[int]([]models.Engine{{ID: 3}, {ID: 5}})

	assert.True(t, IsValid(3, known))
	assert.True(t, IsValid(5, known))
	assert.False(t, IsValid(4, known))
	assert.False(t, IsValid(3, map[int]struct{}{}))
	assert.False(t, IsValid(3, nil))
}
