package property

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProperty_TotalHappiness_SumsInstalledBoosts(t *testing.T) {
	p := &Property{Name: "Cottage"}
	assert.Equal(t, 0, p.TotalHappiness())

	require.NoError(t, p.InstallUpgrade(Upgrade{Name: "Garden", HappinessBoost: 10}))
	require.NoError(t, p.InstallUpgrade(Upgrade{Name: "Library", HappinessBoost: 25}))
	assert.Equal(t, 35, p.TotalHappiness())
}

func TestProperty_InstallUpgrade_PreservesOrder(t *testing.T) {
	p := &Property{Name: "Cottage"}
	require.NoError(t, p.InstallUpgrade(Upgrade{Name: "Garden"}))
	require.NoError(t, p.InstallUpgrade(Upgrade{Name: "Library"}))
	require.Len(t, p.Upgrades, 2)
	assert.Equal(t, "Garden", p.Upgrades[0].Name)
	assert.Equal(t, "Library", p.Upgrades[1].Name)
}

func TestProperty_InstallUpgrade_CapacityReached(t *testing.T) {
	p := &Property{Name: "Hut", UpgradeCapacity: 1}
	require.NoError(t, p.InstallUpgrade(Upgrade{Name: "Garden"}))
	err := p.InstallUpgrade(Upgrade{Name: "Library"})
	assert.Error(t, err)
	assert.Len(t, p.Upgrades, 1)
}

func TestProperty_ListingsAreMutuallyExclusive(t *testing.T) {
	p := &Property{Name: "Cottage", Owned: true}

	p.ListForSale(500)
	assert.True(t, p.ForSale)
	assert.False(t, p.ForRent)
	assert.Equal(t, 500, p.ListingPrice)

	p.ListForRent(40)
	assert.True(t, p.ForRent)
	assert.False(t, p.ForSale)
	assert.Equal(t, 40, p.ListingPrice)

	p.Delist()
	assert.False(t, p.ForSale)
	assert.False(t, p.ForRent)
	assert.Equal(t, 0, p.ListingPrice)
}

func TestProperty_Validate(t *testing.T) {
	assert.NoError(t, (&Property{Name: "Cottage", BasePrice: 300}).Validate())
	assert.Error(t, (&Property{BasePrice: 300}).Validate())
	assert.Error(t, (&Property{Name: "Cottage", BasePrice: -1}).Validate())
	assert.Error(t, (&Property{
		Name:            "Hut",
		UpgradeCapacity: 1,
		Catalog:         []Upgrade{{Name: "A"}, {Name: "B"}},
	}).Validate())
	assert.Error(t, (&Property{Name: "Cottage", ForSale: true, ForRent: true}).Validate())
}

func TestLoadProperties_ReadsDirectory(t *testing.T) {
	dir := t.TempDir()
	content := `
name: Riverside Cottage
description: A small cottage by the river
base_price: 600
upgrade_capacity: 3
upgrades:
  - name: Herb Garden
    description: Fresh herbs year round
    price: 120
    happiness_boost: 10
  - name: Reading Nook
    description: A quiet corner with shelves
    price: 200
    happiness_boost: 15
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cottage.yaml"), []byte(content), 0o644))

	props, err := LoadProperties(dir)
	require.NoError(t, err)
	require.Len(t, props, 1)
	assert.Equal(t, "Riverside Cottage", props[0].Name)
	assert.Len(t, props[0].Catalog, 2)
	assert.False(t, props[0].Owned)
	assert.Empty(t, props[0].Upgrades)
}

func TestLoadProperties_InvalidEntryFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("base_price: -5\n"), 0o644))
	_, err := LoadProperties(dir)
	assert.Error(t, err)
}
