package anim

import (
	"log/slog"

	"github.com/velrin/bestiago/internal/data"
)

// Trigger names an animation clip the presentation layer understands.
// The sequencer never interprets triggers beyond identity; unknown names
// degrade to TriggerAttack so a missing clip cannot stall a battle.
type Trigger string

const (
	TriggerAttack  Trigger = "attack"  // generic physical swing, also the fallback
	TriggerCast    Trigger = "cast"    // intelligence-based techniques
	TriggerHeal    Trigger = "heal"    // restorative techniques
	TriggerBuff    Trigger = "buff"    // stat raises and drops
	TriggerSpecial Trigger = "special" // mixed or status-only techniques
	TriggerHurt    Trigger = "hurt"    // damage reaction
	TriggerFaint   Trigger = "faint"   // defeat collapse
	TriggerVictory Trigger = "victory" // battle won
)

// Known reports whether a trigger names one of the defined clips.
func Known(t Trigger) bool {
	switch t {
	case TriggerAttack, TriggerCast, TriggerHeal, TriggerBuff,
		TriggerSpecial, TriggerHurt, TriggerFaint, TriggerVictory:
		return true
	default:
		return false
	}
}

// TriggerFor maps a technique to its playback trigger by category. A
// category outside the defined set falls back to the generic attack
// trigger with a warning instead of failing the sequence.
func TriggerFor(tech *data.TechniqueTemplate) Trigger {
	if tech == nil {
		return TriggerAttack
	}
	switch tech.Category {
	case data.CategoryPhysical:
		return TriggerAttack
	case data.CategoryIntelligence:
		return TriggerCast
	case data.CategoryHealing:
		return TriggerHeal
	case data.CategoryBuff, data.CategoryDebuff:
		return TriggerBuff
	case data.CategorySpecial:
		return TriggerSpecial
	default:
		slog.Warn("no trigger mapping for technique, using attack",
			"technique", tech.ID,
			"category", int8(tech.Category))
		return TriggerAttack
	}
}
