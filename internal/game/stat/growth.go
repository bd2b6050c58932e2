// Package stat implements creature stat growth: per-level gain rolls driven
// by growth ranks and the materialization of leveled creatures.
package stat

import (
	"fmt"

	"github.com/velrin/bestiago/internal/data"
	"github.com/velrin/bestiago/internal/model"
	"github.com/velrin/bestiago/internal/random"
)

// RollGain draws one level-up gain for a growth rank, uniform over the
// rank's inclusive range.
func RollGain(src random.Source, rank data.GrowthRank) int32 {
	lo, hi := data.GrowthRange(rank)
	if hi <= lo {
		return lo
	}
	return lo + int32(src.IntN(int(hi-lo)+1))
}

// LeveledStat rolls a stat up from its species base to the given level: one
// gain per level past 1. Gains are non-negative, so the result never drops
// below the base as level rises.
func LeveledStat(tmpl *data.SpeciesTemplate, st data.StatType, level int32, src random.Source) int32 {
	v := tmpl.BaseStat(st)
	for l := int32(2); l <= level; l++ {
		v += RollGain(src, tmpl.GrowthFor(st))
	}
	return max(v, 1)
}

// Spawn materializes a fresh creature of a species at the given level with
// rolled stats, the learnset known up to that level, and full HP and Guts.
// maxGuts is the battle resource pool size from balance.
func Spawn(id string, tmpl *data.SpeciesTemplate, nickname string, level int32, maxGuts int32, src random.Source) (*model.Creature, error) {
	if tmpl == nil {
		return nil, fmt.Errorf("spawning creature %q: nil species template", id)
	}
	if level < 1 || level > data.MaxCreatureLevel {
		return nil, fmt.Errorf("spawning creature %q: level %d out of range", id, level)
	}

	var stats [data.StatCount]int32
	for _, st := range data.AllStats {
		stats[st] = LeveledStat(tmpl, st, level, src)
	}

	if nickname == "" {
		nickname = tmpl.Name
	}

	c := model.NewCreature(model.CreatureParams{
		ID:         id,
		Species:    tmpl,
		Name:       nickname,
		Level:      level,
		XP:         data.GetExpForLevel(level),
		Stats:      stats,
		Growth:     tmpl.Growth,
		CurrentHP:  stats[data.StatLife],
		Guts:       maxGuts,
		MaxGuts:    maxGuts,
		Techniques: tmpl.TechniquesUpToLevel(level),
		Alive:      true,
	})
	return c, nil
}
