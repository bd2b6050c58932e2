package data

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSpecies(t *testing.T) {
	require.NoError(t, LoadTechniques())
	require.NoError(t, LoadSpecies())

	require.NotEmpty(t, SpeciesTable)

	for id, tmpl := range SpeciesTable {
		for _, st := range AllStats {
			assert.GreaterOrEqual(t, tmpl.BaseStat(st), int32(1), "%s base %s", id, st)
		}
		assert.True(t, sort.SliceIsSorted(tmpl.LearnSet, func(a, b int) bool {
			return tmpl.LearnSet[a].Level < tmpl.LearnSet[b].Level
		}), "%s learnset not sorted", id)
		for _, e := range tmpl.LearnSet {
			assert.NotNil(t, GetTechnique(e.TechniqueID),
				"%s learnset references unknown technique %s", id, e.TechniqueID)
		}
	}
}

func TestSpeciesLearnsetQueries(t *testing.T) {
	require.NoError(t, LoadTechniques())
	require.NoError(t, LoadSpecies())

	pup := GetSpecies("ember_pup")
	require.NotNil(t, pup)

	assert.Equal(t, []string{"ember_burst"}, pup.TechniquesAtLevel(4))
	assert.Empty(t, pup.TechniquesAtLevel(5))

	known := pup.TechniquesUpToLevel(7)
	assert.Equal(t, []string{"tackle", "ember_burst", "war_cry"}, known)
}

func TestGetSpeciesUnknown(t *testing.T) {
	require.NoError(t, LoadSpecies())
	assert.Nil(t, GetSpecies("missingno"))
}

func TestLoadItems(t *testing.T) {
	require.NoError(t, LoadItems())
	require.NotEmpty(t, ItemTable)

	charm := GetItem("lucky_charm")
	require.NotNil(t, charm)
	assert.Equal(t, ItemStatBoost, charm.Kind)
	assert.Equal(t, StatSkill, charm.Stat)
	assert.True(t, charm.ImprovesGrowth)

	candy := GetItem("xp_candy_l")
	require.NotNil(t, candy)
	assert.Equal(t, ItemXPBoost, candy.Kind)
	assert.Equal(t, int64(5000), candy.XPAmount)

	assert.Nil(t, GetItem("mystery_box"))
}
