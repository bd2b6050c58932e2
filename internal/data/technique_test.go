package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTechniquePredicates(t *testing.T) {
	tests := []struct {
		name        string
		tmpl        TechniqueTemplate
		damaging    bool
		support     bool
		hitsEnemies bool
		hitsAllies  bool
		multiTarget bool
	}{
		{
			name:        "physical single",
			tmpl:        TechniqueTemplate{Category: CategoryPhysical, Target: TargetSingleEnemy, Power: 40},
			damaging:    true,
			hitsEnemies: true,
		},
		{
			name:        "intelligence all enemies",
			tmpl:        TechniqueTemplate{Category: CategoryIntelligence, Target: TargetAllEnemies, Power: 50},
			damaging:    true,
			hitsEnemies: true,
			multiTarget: true,
		},
		{
			name:       "healing single ally",
			tmpl:       TechniqueTemplate{Category: CategoryHealing, Target: TargetSingleAlly, EffectValue: 45},
			support:    true,
			hitsAllies: true,
		},
		{
			name:       "buff self",
			tmpl:       TechniqueTemplate{Category: CategoryBuff, Target: TargetSelf, EffectPercent: 30},
			support:    true,
			hitsAllies: true,
		},
		{
			name:        "debuff all enemies",
			tmpl:        TechniqueTemplate{Category: CategoryDebuff, Target: TargetAllEnemies, EffectPercent: -20},
			support:     true,
			hitsEnemies: true,
			multiTarget: true,
		},
		{
			name:        "special status only",
			tmpl:        TechniqueTemplate{Category: CategorySpecial, Target: TargetSingleEnemy, Status: StatusPoison},
			hitsEnemies: true,
		},
		{
			name:        "special with power",
			tmpl:        TechniqueTemplate{Category: CategorySpecial, Target: TargetEveryone, Power: 70},
			damaging:    true,
			hitsEnemies: true,
			hitsAllies:  true,
			multiTarget: true,
		},
		{
			name:        "random enemy",
			tmpl:        TechniqueTemplate{Category: CategoryIntelligence, Target: TargetRandomEnemy, Power: 75},
			damaging:    true,
			hitsEnemies: true,
		},
		{
			name:        "all allies",
			tmpl:        TechniqueTemplate{Category: CategoryHealing, Target: TargetAllAllies, EffectValue: 30},
			support:     true,
			hitsAllies:  true,
			multiTarget: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.damaging, tt.tmpl.IsDamaging(), "IsDamaging")
			assert.Equal(t, tt.support, tt.tmpl.IsSupport(), "IsSupport")
			assert.Equal(t, tt.hitsEnemies, tt.tmpl.TargetsEnemies(), "TargetsEnemies")
			assert.Equal(t, tt.hitsAllies, tt.tmpl.TargetsAllies(), "TargetsAllies")
			assert.Equal(t, tt.multiTarget, tt.tmpl.IsMultiTarget(), "IsMultiTarget")
		})
	}
}

func TestOffenseStat(t *testing.T) {
	phys := TechniqueTemplate{Category: CategoryPhysical}
	intel := TechniqueTemplate{Category: CategoryIntelligence}
	special := TechniqueTemplate{Category: CategorySpecial, Power: 70}

	assert.Equal(t, StatPower, phys.OffenseStat())
	assert.Equal(t, StatIntelligence, intel.OffenseStat())
	assert.Equal(t, StatPower, special.OffenseStat())
}

func TestLoadTechniquesClamps(t *testing.T) {
	require.NoError(t, LoadTechniques())

	for id, tmpl := range TechniqueTable {
		assert.GreaterOrEqual(t, tmpl.Accuracy, int32(0), "%s accuracy", id)
		assert.LessOrEqual(t, tmpl.Accuracy, int32(100), "%s accuracy", id)
		assert.GreaterOrEqual(t, tmpl.Power, int32(0), "%s power", id)
		assert.LessOrEqual(t, tmpl.Power, int32(300), "%s power", id)
		assert.GreaterOrEqual(t, tmpl.HitCount, int32(1), "%s hit count", id)
		assert.GreaterOrEqual(t, tmpl.StatusChance, int32(0), "%s status chance", id)
		assert.LessOrEqual(t, tmpl.StatusChance, int32(100), "%s status chance", id)
		assert.GreaterOrEqual(t, tmpl.GutsCost, int32(0), "%s guts cost", id)
	}
}

func TestLoadTechniquesCoversAllCategories(t *testing.T) {
	require.NoError(t, LoadTechniques())

	seen := map[Category]bool{}
	for _, tmpl := range TechniqueTable {
		seen[tmpl.Category] = true
	}
	for _, c := range []Category{
		CategoryPhysical, CategoryIntelligence, CategoryHealing,
		CategoryBuff, CategoryDebuff, CategorySpecial,
	} {
		assert.True(t, seen[c], "no technique authored for category %s", c)
	}
}

func TestGetTechniqueUnknown(t *testing.T) {
	require.NoError(t, LoadTechniques())
	assert.Nil(t, GetTechnique("no_such_move"))
}
