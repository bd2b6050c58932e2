package model

import (
	"slices"
	"sync"

	"github.com/velrin/bestiago/internal/data"
)

// Creature is a mutable creature instance owned by a tamer or spawned wild.
// All access goes through the mutex; template data stays on the species.
type Creature struct {
	mu sync.RWMutex

	id      string
	tamerID string
	species *data.SpeciesTemplate
	name    string

	level int32
	xp    int64

	stats  [data.StatCount]int32
	growth [data.StatCount]data.GrowthRank

	currentHP int32
	guts      int32
	maxGuts   int32

	techniques []string

	alive bool

	status    *ActiveStatus
	modifiers []StatModifier
}

// CreatureParams carries everything needed to materialize a creature, either
// freshly rolled or restored from storage.
type CreatureParams struct {
	ID         string
	TamerID    string
	Species    *data.SpeciesTemplate
	Name       string
	Level      int32
	XP         int64
	Stats      [data.StatCount]int32
	Growth     [data.StatCount]data.GrowthRank
	CurrentHP  int32
	Guts       int32
	MaxGuts    int32
	Techniques []string
	Alive      bool
}

// NewCreature builds a creature from explicit params. Stats are clamped to
// at least 1, HP and Guts to their maxima.
func NewCreature(p CreatureParams) *Creature {
	c := &Creature{
		id:      p.ID,
		tamerID: p.TamerID,
		species: p.Species,
		name:    p.Name,
		level:   max(p.Level, 1),
		xp:      max(p.XP, 0),
		stats:   p.Stats,
		growth:  p.Growth,
		maxGuts: max(p.MaxGuts, 1),
		alive:   p.Alive,
	}
	for i := range c.stats {
		c.stats[i] = max(c.stats[i], 1)
	}
	c.currentHP = clamp(p.CurrentHP, 0, c.stats[data.StatLife])
	c.guts = clamp(p.Guts, 0, c.maxGuts)
	c.techniques = slices.Clone(p.Techniques)
	return c
}

func (c *Creature) ID() string { return c.id }

func (c *Creature) TamerID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tamerID
}

func (c *Creature) SetTamerID(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tamerID = id
}

// Species returns the immutable species template. Never nil for a properly
// constructed creature.
func (c *Creature) Species() *data.SpeciesTemplate { return c.species }

func (c *Creature) Name() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.name
}

func (c *Creature) SetName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.name = name
}

func (c *Creature) Level() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.level
}

// SetLevel sets the level clamped to [1, MaxCreatureLevel].
func (c *Creature) SetLevel(level int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.level = clamp(level, 1, data.MaxCreatureLevel)
}

func (c *Creature) XP() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.xp
}

// AddXP adds amount to the cumulative experience. Negative amounts are
// ignored here; the progression engine rejects them before this point.
func (c *Creature) AddXP(amount int64) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if amount > 0 {
		c.xp += amount
	}
	return c.xp
}

// Stat returns the base (unmodified) value of a stat.
func (c *Creature) Stat(st data.StatType) int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats[st]
}

// SetStat sets a base stat, clamped to at least 1. Setting Life trims
// current HP when it exceeds the new maximum.
func (c *Creature) SetStat(st data.StatType, v int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats[st] = max(v, 1)
	if st == data.StatLife && c.currentHP > c.stats[data.StatLife] {
		c.currentHP = c.stats[data.StatLife]
	}
}

// RaiseStat adds delta to a base stat and returns the new value.
func (c *Creature) RaiseStat(st data.StatType, delta int32) int32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats[st] = max(c.stats[st]+delta, 1)
	return c.stats[st]
}

// Stats returns a copy of all six base stats.
func (c *Creature) Stats() [data.StatCount]int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// EffectiveStat returns a stat with active modifiers and status penalties
// applied. Never below 1.
func (c *Creature) EffectiveStat(st data.StatType) int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pct := int32(0)
	for _, m := range c.modifiers {
		if m.Stat == st {
			pct += m.Percent
		}
	}
	if c.status != nil {
		if target, ok := statusStat(c.status.Kind); ok && target == st {
			pct -= c.status.Magnitude
		}
	}

	v := c.stats[st] + c.stats[st]*pct/100
	return max(v, 1)
}

// Growth returns the creature's growth rank for a stat. Starts as the
// species rank, raisable by items.
func (c *Creature) Growth(st data.StatType) data.GrowthRank {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.growth[st]
}

// GrowthRanks returns a copy of all six growth ranks.
func (c *Creature) GrowthRanks() [data.StatCount]data.GrowthRank {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.growth
}

// RaiseGrowth bumps the growth rank for a stat one step toward S. Returns
// the new rank.
func (c *Creature) RaiseGrowth(st data.StatType) data.GrowthRank {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.growth[st] = data.RankUp(c.growth[st])
	return c.growth[st]
}

// MaxHP is the Life stat.
func (c *Creature) MaxHP() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats[data.StatLife]
}

func (c *Creature) CurrentHP() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentHP
}

// SetCurrentHP sets current HP clamped to [0, MaxHP]. Does not change
// aliveness; battle flow decides death through ReduceHP.
func (c *Creature) SetCurrentHP(hp int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentHP = clamp(hp, 0, c.stats[data.StatLife])
}

// ReduceHP applies damage and reports whether this call killed the
// creature. Damage wakes a sleeping creature.
func (c *Creature) ReduceHP(damage int32) (died bool) {
	if damage <= 0 {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.alive {
		return false
	}

	c.currentHP = max(c.currentHP-damage, 0)
	if c.status != nil && c.status.Kind == data.StatusSleep {
		c.status = nil
	}
	if c.currentHP == 0 {
		c.alive = false
		return true
	}
	return false
}

// Heal restores HP clamped to the maximum and returns the amount actually
// restored. Dead creatures are not healed.
func (c *Creature) Heal(amount int32) int32 {
	if amount <= 0 {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.alive {
		return 0
	}

	before := c.currentHP
	c.currentHP = min(c.currentHP+amount, c.stats[data.StatLife])
	return c.currentHP - before
}

func (c *Creature) Guts() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.guts
}

func (c *Creature) MaxGuts() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxGuts
}

// SpendGuts consumes cost from the pool. Returns false without spending
// when the pool is short.
func (c *Creature) SpendGuts(cost int32) bool {
	if cost < 0 {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.guts < cost {
		return false
	}
	c.guts -= cost
	return true
}

// RestoreGuts adds amount to the pool clamped to the maximum.
func (c *Creature) RestoreGuts(amount int32) {
	if amount <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guts = min(c.guts+amount, c.maxGuts)
}

// Techniques returns a copy of the known technique IDs in learn order.
func (c *Creature) Techniques() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.techniques)
}

// Knows reports whether the creature knows a technique.
func (c *Creature) Knows(techniqueID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Contains(c.techniques, techniqueID)
}

// LearnTechnique adds a technique to the known list. Returns false when it
// was already known, so repeated grants stay idempotent.
func (c *Creature) LearnTechnique(techniqueID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if slices.Contains(c.techniques, techniqueID) {
		return false
	}
	c.techniques = append(c.techniques, techniqueID)
	return true
}

func (c *Creature) IsAlive() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.alive
}

func (c *Creature) IsDead() bool { return !c.IsAlive() }

// Revive brings a dead creature back with the given HP (at least 1) and
// clears its status and modifiers.
func (c *Creature) Revive(hp int32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.alive {
		return
	}
	c.alive = true
	c.currentHP = clamp(max(hp, 1), 1, c.stats[data.StatLife])
	c.status = nil
	c.modifiers = nil
}

// FullRestore refills HP and Guts to their maxima and clears status and
// modifiers. Used on level-up and at battle start.
func (c *Creature) FullRestore() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentHP = c.stats[data.StatLife]
	c.guts = c.maxGuts
	c.status = nil
	c.modifiers = nil
}

// Status returns a copy of the active primary status, or nil.
func (c *Creature) Status() *ActiveStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.status == nil {
		return nil
	}
	s := *c.status
	return &s
}

// HasStatus reports whether the given ailment is currently active.
func (c *Creature) HasStatus(kind data.StatusKind) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status != nil && c.status.Kind == kind
}

// ApplyStatus sets the primary status. One primary status at a time: the
// call is rejected while another ailment is active. Dead creatures never
// take a status.
func (c *Creature) ApplyStatus(s ActiveStatus) bool {
	if s.Kind == data.StatusNone {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.alive || c.status != nil {
		return false
	}
	c.status = &s
	return true
}

// CureStatus clears the primary status and reports whether one was active.
func (c *Creature) CureStatus() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	had := c.status != nil
	c.status = nil
	return had
}

// TickStatus decrements the status duration by one turn. Returns the kind
// that expired this tick, or StatusNone. A Remaining of 0 never expires.
func (c *Creature) TickStatus() data.StatusKind {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == nil || c.status.Remaining == 0 {
		return data.StatusNone
	}
	c.status.Remaining--
	if c.status.Remaining <= 0 {
		kind := c.status.Kind
		c.status = nil
		return kind
	}
	return data.StatusNone
}

// Modifiers returns a copy of the active stat modifiers.
func (c *Creature) Modifiers() []StatModifier {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.modifiers)
}

// AddModifier applies a timed stat modifier. Re-applying a modifier for the
// same stat replaces the old one, refreshing amount and duration instead of
// stacking. Dead creatures take no modifiers.
func (c *Creature) AddModifier(m StatModifier) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.alive {
		return false
	}
	for i := range c.modifiers {
		if c.modifiers[i].Stat == m.Stat {
			c.modifiers[i] = m
			return true
		}
	}
	c.modifiers = append(c.modifiers, m)
	return true
}

// TickModifiers decrements modifier durations by one turn and removes the
// expired ones, returning them. A Remaining of 0 never expires.
func (c *Creature) TickModifiers() []StatModifier {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expired []StatModifier
	kept := c.modifiers[:0]
	for _, m := range c.modifiers {
		if m.Remaining == 0 {
			kept = append(kept, m)
			continue
		}
		m.Remaining--
		if m.Remaining <= 0 {
			expired = append(expired, m)
			continue
		}
		kept = append(kept, m)
	}
	c.modifiers = kept
	return expired
}

func clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
