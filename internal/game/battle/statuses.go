package battle

import (
	"log/slog"

	"github.com/velrin/bestiago/internal/config"
	"github.com/velrin/bestiago/internal/data"
	"github.com/velrin/bestiago/internal/model"
	"github.com/velrin/bestiago/internal/random"
)

// UpkeepResult records what end-of-turn upkeep did to one creature.
type UpkeepResult struct {
	DamageOverTime   int32 // HP lost to poison or burn
	Died             bool
	StatusExpired    data.StatusKind // ailment that wore off, None otherwise
	ModifiersExpired []model.StatModifier
}

// TickUpkeep runs end-of-turn upkeep for one creature: poison and burn
// damage first, then status and modifier expiry. Damage over time scales
// with max HP and can defeat the creature; a creature that dies here skips
// the expiry ticks since death clears its effects anyway.
func TickUpkeep(c *model.Creature, bal config.Balance) UpkeepResult {
	var res UpkeepResult
	if c == nil || c.IsDead() {
		return res
	}

	if st := c.Status(); st != nil && model.IsDamageOverTime(st.Kind) {
		pct := bal.PoisonPct
		if st.Kind == data.StatusBurn {
			pct = bal.BurnPct
		}
		dmg := c.MaxHP() * pct / 100
		if dmg < 1 {
			dmg = 1
		}
		res.DamageOverTime = dmg
		res.Died = c.ReduceHP(dmg)
		slog.Debug("status tick",
			"creature", c.Name(),
			"status", st.Kind.String(),
			"damage", dmg,
			"died", res.Died)
	}

	if res.Died {
		return res
	}
	res.StatusExpired = c.TickStatus()
	res.ModifiersExpired = c.TickModifiers()
	return res
}

// CanAct gates a creature's turn before any technique resolves. Stun, sleep
// and freeze hold the creature outright; confusion wastes the turn on a
// chance roll. The returned reason is FailNone when the creature may act.
func CanAct(c *model.Creature, bal config.Balance, src random.Source) FailReason {
	if c == nil || c.IsDead() {
		return FailActorDead
	}
	st := c.Status()
	if st == nil {
		return FailNone
	}
	if model.BlocksAction(st.Kind) {
		return FailBlocked
	}
	if st.Kind == data.StatusConfusion && src.IntN(100) < int(bal.ConfusionFailPct) {
		return FailConfused
	}
	return FailNone
}
