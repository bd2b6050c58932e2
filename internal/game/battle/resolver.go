package battle

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/velrin/bestiago/internal/config"
	"github.com/velrin/bestiago/internal/data"
	"github.com/velrin/bestiago/internal/model"
	"github.com/velrin/bestiago/internal/random"
)

// Resolver turns one technique use into an Outcome. It rolls every random
// draw (accuracy, criticals, variance, status chance) but mutates nothing:
// the session applies the outcome to creatures when the animation reaches
// its damage frame. Target selection is the session's job; the resolver
// works against the target list it is handed.
type Resolver struct {
	bal   config.Balance
	usage *UsageTracker
	src   random.Source
}

// NewResolver creates a resolver for one battle.
func NewResolver(bal config.Balance, usage *UsageTracker, src random.Source) *Resolver {
	return &Resolver{bal: bal, usage: usage, src: src}
}

// Resolve runs the full resolution pipeline for one technique use:
// cost and usage gating, then per-target accuracy, per-hit criticals and
// damage, support payloads, and the status infliction roll. A use that
// fails its gates returns an Outcome with the Failure reason set and costs
// nothing. Only broken inputs return an error.
func (r *Resolver) Resolve(actor *model.Creature, tech *data.TechniqueTemplate, targets []*model.Creature) (*Outcome, error) {
	if actor == nil {
		return nil, fmt.Errorf("resolving technique: nil actor")
	}
	if tech == nil {
		return nil, fmt.Errorf("resolving technique for %q: nil template", actor.ID())
	}

	out := &Outcome{
		ActorID:     actor.ID(),
		TechniqueID: tech.ID,
		Windup:      tech.Windup,
		Duration:    tech.Duration,
	}
	if out.Windup <= 0 {
		out.Windup = time.Duration(r.bal.DefaultWindupMs) * time.Millisecond
	}
	if out.Duration <= 0 {
		out.Duration = time.Duration(r.bal.DefaultDurationMs) * time.Millisecond
	}

	// 1. Gates: the use must be payable and allowed before anything rolls.
	if actor.IsDead() {
		out.Failure = FailActorDead
		return out, nil
	}
	if st := actor.Status(); st != nil && model.BlocksCategory(st.Kind, tech.Category) {
		out.Failure = FailSilenced
		return out, nil
	}
	if !r.usage.CanUse(actor.ID(), tech) {
		out.Failure = FailNoUses
		return out, nil
	}
	if !actor.SpendGuts(tech.GutsCost) {
		out.Failure = FailNoGuts
		return out, nil
	}
	r.usage.Consume(actor.ID(), tech.ID)
	out.GutsSpent = tech.GutsCost

	skill := actor.EffectiveStat(data.StatSkill)
	atk := actor.EffectiveStat(tech.OffenseStat())
	blind := actor.HasStatus(data.StatusBlind)

	for _, target := range targets {
		if target == nil {
			continue
		}
		row := TargetOutcome{TargetID: target.ID()}
		if target.IsDead() {
			// Dead targets stay in the record but nothing can land on them.
			out.Targets = append(out.Targets, row)
			continue
		}

		// 2. Accuracy. Ally-directed support lands unconditionally; damage
		// and enemy-directed effects roll against the hit chance.
		chance := int32(0)
		needsRoll := !tech.AlwaysHits && (tech.IsDamaging() || tech.TargetsEnemies())
		if needsRoll {
			chance = HitChance(r.bal, tech.Accuracy, skill, target.EffectiveStat(data.StatSpeed), blind)
		}

		if tech.IsDamaging() {
			// 3. Per-hit rolls: each hit of a multi-hit technique rolls
			// accuracy and critical independently; a miss does not stop
			// the remaining hits.
			def := target.EffectiveStat(data.StatDefense)
			for h := int32(0); h < tech.HitCount; h++ {
				if needsRoll && !RollHit(r.src, chance) {
					continue
				}
				crit := tech.CanCritical && RollCrit(r.src, CritChance(r.bal, skill, tech.CritBonus))
				row.Hits++
				row.Damage += Damage(r.bal, r.src, tech.Power, atk, def, tech.IgnoresDefense, crit)
				if crit {
					row.Critical = true
				}
			}
			row.Hit = row.Hits > 0
		} else {
			if needsRoll && !RollHit(r.src, chance) {
				out.Targets = append(out.Targets, row)
				continue
			}
			row.Hit = true
			row.Hits = 1
		}

		// 4. Support payload: heals and timed stat modifiers ride on the
		// target row unless the technique redirects them onto the user.
		if row.Hit && !tech.AffectsSelf {
			fillSupport(&row, tech)
		}

		// 5. Status infliction: one roll per use per target, only after
		// something landed.
		if row.Hit && tech.Status != data.StatusNone && r.src.IntN(100) < int(tech.StatusChance) {
			row.StatusAttempt = &model.ActiveStatus{
				Kind:      tech.Status,
				Remaining: tech.StatusTurns,
				Magnitude: StatusMagnitude(r.bal, tech.Status),
			}
		}

		out.Targets = append(out.Targets, row)
	}

	// 6. Affects-self riders land on the user whether or not the targets
	// were hit.
	if tech.AffectsSelf {
		self := TargetOutcome{TargetID: actor.ID(), Hit: true, Hits: 1}
		fillSupport(&self, tech)
		out.SelfEffect = &self
	}

	slog.Debug("technique resolved",
		"actor", actor.Name(),
		"technique", tech.ID,
		"targets", len(out.Targets),
		"damage", out.TotalDamage())

	return out, nil
}

// fillSupport copies the technique's support payload onto an outcome row.
func fillSupport(row *TargetOutcome, tech *data.TechniqueTemplate) {
	if tech.Category == data.CategoryHealing && tech.EffectValue > 0 {
		row.HealRolled = tech.EffectValue
	}
	if tech.EffectPercent != 0 {
		row.Modifier = &model.StatModifier{
			Stat:      tech.EffectStat,
			Percent:   tech.EffectPercent,
			Remaining: tech.EffectDuration,
			Source:    tech.ID,
		}
	}
}
