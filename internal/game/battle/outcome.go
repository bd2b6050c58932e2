// Package battle implements technique resolution: cost and usage gating,
// accuracy, criticals, damage, support payloads and status infliction, plus
// the battle session that applies resolved outcomes in animation order.
package battle

import (
	"time"

	"github.com/velrin/bestiago/internal/data"
	"github.com/velrin/bestiago/internal/model"
)

// FailReason enumerates why a technique use produced no effect at all.
// These are expected game outcomes, not errors.
type FailReason int8

const (
	FailNone     FailReason = iota // the technique executed
	FailNoGuts                     // Guts pool below the technique cost
	FailNoUses                     // per-battle uses exhausted
	FailActorDead
	FailSilenced
	FailBlocked  // stun, sleep or freeze prevented the action
	FailConfused // confusion wasted the action
)

func (f FailReason) String() string {
	switch f {
	case FailNone:
		return "None"
	case FailNoGuts:
		return "NoGuts"
	case FailNoUses:
		return "NoUses"
	case FailActorDead:
		return "ActorDead"
	case FailSilenced:
		return "Silenced"
	case FailBlocked:
		return "Blocked"
	case FailConfused:
		return "Confused"
	default:
		return "Unknown"
	}
}

// TargetOutcome records what one technique use did to one target.
// The resolver fills the rolled values; the session fills Heal, Defeated and
// StatusApplied when it applies the outcome at the damage frame.
type TargetOutcome struct {
	TargetID string

	Hit      bool  // at least one hit landed
	Hits     int32 // hits landed out of the technique's hit count
	Damage   int32 // total rolled damage across hits
	Critical bool  // at least one landed hit was critical

	HealRolled int32 // requested heal before the max-HP clamp
	Heal       int32 // actually restored

	Modifier *model.StatModifier // pending stat modifier, nil when none

	StatusAttempt *model.ActiveStatus // ailment that passed its chance roll
	StatusApplied data.StatusKind     // what actually stuck, None when rejected

	Defeated bool
}

// Outcome is the structured record of one technique use.
type Outcome struct {
	ActorID     string
	TechniqueID string

	// Failure set to anything but FailNone means the use cost nothing and
	// had no effects; Targets is empty.
	Failure FailReason

	GutsSpent int32

	Targets []TargetOutcome

	// SelfEffect carries the support payload redirected onto the actor for
	// affects-self techniques. Nil when the technique has none.
	SelfEffect *TargetOutcome

	// Timing hints for the animation sequencer.
	Windup   time.Duration
	Duration time.Duration
}

// Failed reports whether the use was rejected before any effect.
func (o *Outcome) Failed() bool {
	return o.Failure != FailNone
}

// TotalDamage sums rolled damage across all targets.
func (o *Outcome) TotalDamage() int32 {
	var sum int32
	for i := range o.Targets {
		sum += o.Targets[i].Damage
	}
	return sum
}
