package data

import "time"

// Category classifies what a technique fundamentally does.
type Category int8

const (
	CategoryPhysical     Category = iota // Power-based damage
	CategoryIntelligence                 // Intelligence-based damage
	CategoryHealing                      // restores hit points
	CategoryBuff                         // timed stat raise
	CategoryDebuff                       // timed stat drop
	CategorySpecial                      // mixed or status-only behavior
)

func (c Category) String() string {
	switch c {
	case CategoryPhysical:
		return "Physical"
	case CategoryIntelligence:
		return "Intelligence"
	case CategoryHealing:
		return "Healing"
	case CategoryBuff:
		return "Buff"
	case CategoryDebuff:
		return "Debuff"
	case CategorySpecial:
		return "Special"
	default:
		return "Unknown"
	}
}

// TargetKind defines which creatures a technique reaches.
type TargetKind int8

const (
	TargetSingleEnemy TargetKind = iota // one chosen enemy
	TargetAllEnemies                    // every living enemy
	TargetRandomEnemy                   // one living enemy, chosen by the battle controller
	TargetSingleAlly                    // one chosen ally
	TargetAllAllies                     // every living ally
	TargetSelf                          // the user only
	TargetEveryone                      // all living creatures, allies first
)

func (t TargetKind) String() string {
	switch t {
	case TargetSingleEnemy:
		return "SingleEnemy"
	case TargetAllEnemies:
		return "AllEnemies"
	case TargetRandomEnemy:
		return "RandomEnemy"
	case TargetSingleAlly:
		return "SingleAlly"
	case TargetAllAllies:
		return "AllAllies"
	case TargetSelf:
		return "Self"
	case TargetEveryone:
		return "Everyone"
	default:
		return "Unknown"
	}
}

// StatusKind identifies a primary status ailment.
type StatusKind int8

const (
	StatusNone StatusKind = iota
	StatusPoison
	StatusBurn
	StatusStun
	StatusBlind
	StatusSlow
	StatusSilence
	StatusConfusion
	StatusSleep
	StatusFreeze
	StatusArmorBreak
	StatusWeakenedAttack
)

func (k StatusKind) String() string {
	switch k {
	case StatusNone:
		return "None"
	case StatusPoison:
		return "Poison"
	case StatusBurn:
		return "Burn"
	case StatusStun:
		return "Stun"
	case StatusBlind:
		return "Blind"
	case StatusSlow:
		return "Slow"
	case StatusSilence:
		return "Silence"
	case StatusConfusion:
		return "Confusion"
	case StatusSleep:
		return "Sleep"
	case StatusFreeze:
		return "Freeze"
	case StatusArmorBreak:
		return "ArmorBreak"
	case StatusWeakenedAttack:
		return "WeakenedAttack"
	default:
		return "Unknown"
	}
}

// TechniqueTemplate is the immutable authored definition of a technique.
// Shared across all creatures, never modified after LoadTechniques.
type TechniqueTemplate struct {
	ID       string
	Name     string
	Category Category
	Target   TargetKind

	GutsCost      int32 // resource consumed per use
	UsesPerBattle int32 // -1 = unlimited

	Power     int32 // damage base, 0-300
	Accuracy  int32 // base hit percent, 0-100
	CritBonus int32 // added critical percentage points
	HitCount  int32 // independent hits per use, >= 1

	// Support payload, read by Healing/Buff/Debuff categories.
	EffectValue    int32    // heal amount
	EffectStat     StatType // stat a buff/debuff touches
	EffectPercent  int32    // signed percent applied to EffectStat
	EffectDuration int32    // turns a buff/debuff lasts, 0 = battle end

	Status       StatusKind // ailment this technique may inflict
	StatusChance int32      // percent chance per use, 0-100
	StatusTurns  int32      // ailment duration in turns, 0 = battle end

	IgnoresDefense bool // damage skips the Defense term
	AlwaysHits     bool // skips the accuracy roll
	CanCritical    bool // eligible for critical rolls
	MakesContact   bool // physical contact, read by reactive abilities
	AffectsSelf    bool // support payload also lands on the user

	Priority int32 // -1 late, 0 normal, +1 early; read by the turn scheduler

	// Animation timing hints consumed by the sequencer.
	Windup   time.Duration // delay from playback start to the damage frame
	Duration time.Duration // total playback time
}

// IsDamaging reports whether resolving this technique rolls damage.
func (t *TechniqueTemplate) IsDamaging() bool {
	switch t.Category {
	case CategoryPhysical, CategoryIntelligence:
		return true
	case CategorySpecial:
		return t.Power > 0
	default:
		return false
	}
}

// IsSupport reports whether this technique carries a heal, buff or debuff
// payload.
func (t *TechniqueTemplate) IsSupport() bool {
	switch t.Category {
	case CategoryHealing, CategoryBuff, CategoryDebuff:
		return true
	default:
		return false
	}
}

// TargetsEnemies reports whether the technique reaches opposing creatures.
func (t *TechniqueTemplate) TargetsEnemies() bool {
	switch t.Target {
	case TargetSingleEnemy, TargetAllEnemies, TargetRandomEnemy, TargetEveryone:
		return true
	default:
		return false
	}
}

// TargetsAllies reports whether the technique reaches the user's own side.
func (t *TechniqueTemplate) TargetsAllies() bool {
	switch t.Target {
	case TargetSingleAlly, TargetAllAllies, TargetSelf, TargetEveryone:
		return true
	default:
		return false
	}
}

// IsMultiTarget reports whether the technique reaches more than one creature.
func (t *TechniqueTemplate) IsMultiTarget() bool {
	switch t.Target {
	case TargetAllEnemies, TargetAllAllies, TargetEveryone:
		return true
	default:
		return false
	}
}

// OffenseStat returns the stat the damage formula reads for this technique.
func (t *TechniqueTemplate) OffenseStat() StatType {
	if t.Category == CategoryIntelligence {
		return StatIntelligence
	}
	return StatPower
}

// Unlimited reports whether the technique has no per-battle use cap.
func (t *TechniqueTemplate) Unlimited() bool {
	return t.UsesPerBattle < 0
}
