// Package progression implements creature growth: experience grants with
// chained level-ups, learnset grants and permanent item effects.
package progression

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/velrin/bestiago/internal/data"
	"github.com/velrin/bestiago/internal/game/stat"
	"github.com/velrin/bestiago/internal/model"
	"github.com/velrin/bestiago/internal/random"
)

var (
	// ErrNilCreature rejects operations on a nil creature.
	ErrNilCreature = errors.New("nil creature")
	// ErrDeadCreature rejects growth operations on a dead creature.
	ErrDeadCreature = errors.New("creature is dead")
	// ErrNegativeAmount rejects negative experience grants.
	ErrNegativeAmount = errors.New("negative experience amount")
)

// LevelUpReport describes what a single experience grant changed.
type LevelUpReport struct {
	OldLevel  int32
	NewLevel  int32
	StatGains [data.StatCount]int32
	Learned   []string // technique IDs granted by the learnset
}

// LeveledUp reports whether the grant crossed at least one level threshold.
func (r *LevelUpReport) LeveledUp() bool {
	return r.NewLevel > r.OldLevel
}

// ItemResult describes what applying an item changed.
type ItemResult struct {
	StatRaised   bool
	Stat         data.StatType
	NewValue     int32
	GrowthRaised bool
	NewRank      data.GrowthRank
	LevelUp      *LevelUpReport // set for XP items
}

// Engine drives creature progression. All stat gains are drawn from the
// injected source, so growth replays under a fixed seed.
type Engine struct {
	src random.Source
}

// New returns a progression engine drawing from src.
func New(src random.Source) *Engine {
	return &Engine{src: src}
}

// GrantExperience adds amount to the creature's cumulative experience and
// applies every level-up the new total crosses, one level at a time. Each
// level rolls one gain per stat from the creature's growth ranks, refills
// HP and Guts, and grants learnset techniques for exactly that level.
// Negative amounts and dead creatures are rejected.
func (e *Engine) GrantExperience(c *model.Creature, amount int64) (*LevelUpReport, error) {
	if c == nil {
		return nil, ErrNilCreature
	}
	if amount < 0 {
		return nil, fmt.Errorf("granting %d experience to %q: %w", amount, c.Name(), ErrNegativeAmount)
	}
	if c.IsDead() {
		return nil, fmt.Errorf("granting experience to %q: %w", c.Name(), ErrDeadCreature)
	}

	report := &LevelUpReport{OldLevel: c.Level()}

	exp := c.AddXP(amount)
	target := data.GetLevelForExp(exp, report.OldLevel)
	report.NewLevel = report.OldLevel

	for next := report.OldLevel + 1; next <= target; next++ {
		e.applyLevelUp(c, next, report)
	}

	if report.LeveledUp() {
		c.SetCurrentHP(c.MaxHP())
		c.RestoreGuts(c.MaxGuts())
		slog.Info("creature leveled up",
			"creature", c.Name(),
			"oldLevel", report.OldLevel,
			"newLevel", report.NewLevel,
			"exp", exp,
			"learned", report.Learned)
	}

	return report, nil
}

// applyLevelUp advances the creature to exactly level next: rolls the six
// stat gains and grants that level's learnset entries.
func (e *Engine) applyLevelUp(c *model.Creature, next int32, report *LevelUpReport) {
	for _, st := range data.AllStats {
		gain := stat.RollGain(e.src, c.Growth(st))
		c.RaiseStat(st, gain)
		report.StatGains[st] += gain
	}
	c.SetLevel(next)
	report.NewLevel = next

	sp := c.Species()
	if sp == nil {
		return
	}
	for _, id := range sp.TechniquesAtLevel(next) {
		if data.TechniqueTable != nil && data.GetTechnique(id) == nil {
			slog.Warn("learnset grants unknown technique",
				"creature", c.Name(), "technique", id, "level", next)
		}
		if c.LearnTechnique(id) {
			report.Learned = append(report.Learned, id)
		}
	}
}

// ApplyItem applies a consumable item to the creature. Stat boosts raise the
// base stat permanently and, for growth items, bump the stat's growth rank
// one step toward S. XP items delegate to GrantExperience.
func (e *Engine) ApplyItem(c *model.Creature, item *data.ItemTemplate) (*ItemResult, error) {
	if c == nil {
		return nil, ErrNilCreature
	}
	if item == nil {
		return nil, fmt.Errorf("applying item to %q: nil item template", c.Name())
	}
	if c.IsDead() {
		return nil, fmt.Errorf("applying item %q to %q: %w", item.ID, c.Name(), ErrDeadCreature)
	}

	switch item.Kind {
	case data.ItemStatBoost:
		res := &ItemResult{
			StatRaised: true,
			Stat:       item.Stat,
			NewValue:   c.RaiseStat(item.Stat, item.BoostAmount),
		}
		if item.ImprovesGrowth {
			res.GrowthRaised = true
			res.NewRank = c.RaiseGrowth(item.Stat)
		}
		slog.Info("item applied",
			"creature", c.Name(),
			"item", item.ID,
			"stat", item.Stat.String(),
			"newValue", res.NewValue,
			"growthRaised", res.GrowthRaised)
		return res, nil

	case data.ItemXPBoost:
		report, err := e.GrantExperience(c, item.XPAmount)
		if err != nil {
			return nil, err
		}
		return &ItemResult{LevelUp: report}, nil

	default:
		return nil, fmt.Errorf("applying item %q: unknown item kind %d", item.ID, item.Kind)
	}
}

// DefeatExperience returns the experience a defeated creature yields,
// scaled by its level.
func DefeatExperience(defeated *model.Creature) int64 {
	if defeated == nil || defeated.Species() == nil {
		return 0
	}
	yield := int64(defeated.Species().XPYield) * int64(defeated.Level())
	return max(yield, 1)
}
