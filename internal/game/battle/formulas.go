package battle

import (
	"github.com/velrin/bestiago/internal/config"
	"github.com/velrin/bestiago/internal/data"
	"github.com/velrin/bestiago/internal/random"
)

// HitChance computes the final percent chance for one hit to land.
// Formula: accuracy + (attacker Skill - defender Speed)/2, scaled down while
// the attacker is blind, clamped to the balance floor and ceiling. The clamp
// guarantees a residual miss and hit chance at any stat spread.
func HitChance(bal config.Balance, accuracy, attackerSkill, defenderSpeed int32, attackerBlind bool) int32 {
	chance := accuracy + (attackerSkill-defenderSpeed)/2
	if attackerBlind {
		chance = chance * bal.BlindAccuracyPct / 100
	}
	if chance < bal.AccuracyFloor {
		chance = bal.AccuracyFloor
	}
	if chance > bal.AccuracyCeil {
		chance = bal.AccuracyCeil
	}
	return chance
}

// RollHit draws one accuracy roll against a percent chance.
func RollHit(src random.Source, chance int32) bool {
	return int32(src.IntN(100)) < chance
}

// CritChance computes the critical chance in percentage points:
// base + Skill/divisor + technique bonus, clamped to [0,100].
func CritChance(bal config.Balance, attackerSkill, critBonus int32) float64 {
	chance := bal.CritBasePct + float64(attackerSkill)/float64(bal.CritSkillDiv) + float64(critBonus)
	if chance < 0 {
		chance = 0
	}
	if chance > 100 {
		chance = 100
	}
	return chance
}

// RollCrit draws one critical roll. The chance carries fractional percent,
// so the draw is in basis points.
func RollCrit(src random.Source, chancePct float64) bool {
	return src.IntN(10000) < int(chancePct*100)
}

// Damage rolls the damage for one landed hit.
// Formula: power x atk/(atk+def), where atk is the technique's offense stat
// and def the defender's Defense; a defense-ignoring hit drops the def term.
// Uniform variance of +-VariancePct and the critical multiplier apply on
// top. A landed damaging hit never deals less than 1.
func Damage(bal config.Balance, src random.Source, power, atk, def int32, ignoresDefense, critical bool) int32 {
	if power <= 0 {
		return 0
	}
	if atk < 1 {
		atk = 1
	}
	if def < 0 || ignoresDefense {
		def = 0
	}

	dmg := float64(power) * float64(atk) / float64(atk+def)

	if bal.VariancePct > 0 {
		v := bal.VariancePct
		dmg *= 1.0 + float64(int32(src.IntN(int(2*v+1)))-v)/100.0
	}

	if critical {
		dmg *= bal.CritMultiplier
	}

	if dmg < 1 {
		return 1
	}
	return int32(dmg)
}

// StatusMagnitude returns the stat penalty percent a status kind carries
// under the given balance. Kinds without a stat penalty return 0.
func StatusMagnitude(bal config.Balance, kind data.StatusKind) int32 {
	switch kind {
	case data.StatusSlow:
		return bal.SlowPct
	case data.StatusArmorBreak:
		return bal.ArmorBreakPct
	case data.StatusWeakenedAttack:
		return bal.WeakenAtkPct
	default:
		return 0
	}
}
