package model

import "github.com/velrin/bestiago/internal/data"

// ActiveStatus is the single primary ailment a creature can carry.
// Remaining counts battle turns; 0 means it lasts until battle end.
// Magnitude is the percentage the ailment applies to its stat, filled from
// balance at infliction time so the model stays config-free.
type ActiveStatus struct {
	Kind      data.StatusKind
	Remaining int32
	Magnitude int32
}

// StatModifier is a timed percentage modifier on one stat, produced by buff
// and debuff techniques. Remaining counts battle turns; 0 lasts until battle
// end. Source is the technique that applied it and the stacking key together
// with Stat: re-applying the same stat refreshes instead of stacking.
type StatModifier struct {
	Stat      data.StatType
	Percent   int32
	Remaining int32
	Source    string
}

// BlocksAction reports whether a status prevents the creature from acting
// at all this turn.
func BlocksAction(kind data.StatusKind) bool {
	switch kind {
	case data.StatusStun, data.StatusSleep, data.StatusFreeze:
		return true
	default:
		return false
	}
}

// BlocksCategory reports whether a status forbids using a technique of the
// given category. Silence leaves only raw physical moves available.
func BlocksCategory(kind data.StatusKind, cat data.Category) bool {
	if kind != data.StatusSilence {
		return false
	}
	return cat != data.CategoryPhysical
}

// statusStat returns the stat a status kind degrades, or false when the kind
// carries no stat penalty.
func statusStat(kind data.StatusKind) (data.StatType, bool) {
	switch kind {
	case data.StatusSlow:
		return data.StatSpeed, true
	case data.StatusArmorBreak:
		return data.StatDefense, true
	case data.StatusWeakenedAttack:
		return data.StatPower, true
	default:
		return 0, false
	}
}

// IsDamageOverTime reports whether a status deals end-of-turn damage.
func IsDamageOverTime(kind data.StatusKind) bool {
	return kind == data.StatusPoison || kind == data.StatusBurn
}
