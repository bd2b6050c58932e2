package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Balance holds the tunable combat constants. The defaults are the balance
// contract the formula tests pin; a deployment may override them from YAML,
// but validation keeps every value inside the ranges the resolver assumes.
type Balance struct {
	// Accuracy curve: clamp(technique accuracy + (Skill-Speed)/2, floor, ceil).
	AccuracyFloor int32 `yaml:"accuracy_floor"`
	AccuracyCeil  int32 `yaml:"accuracy_ceil"`
	// Percent of the final hit chance kept while the attacker is blind.
	BlindAccuracyPct int32 `yaml:"blind_accuracy_pct"`

	// Critical chance in percentage points: base + Skill/div + technique
	// bonus, clamped to [0,100]. Base 6.25 is the classic 1-in-16.
	CritBasePct    float64 `yaml:"crit_base_pct"`
	CritSkillDiv   int32   `yaml:"crit_skill_div"`
	CritMultiplier float64 `yaml:"crit_multiplier"`

	// Uniform damage variance in +-percent.
	VariancePct int32 `yaml:"variance_pct"`

	// Battle resource pool size.
	MaxGuts int32 `yaml:"max_guts"`

	// End-of-turn damage, percent of max HP.
	PoisonPct int32 `yaml:"poison_pct"`
	BurnPct   int32 `yaml:"burn_pct"`

	// Stat penalties while the matching status is active, in percent.
	SlowPct       int32 `yaml:"slow_pct"`
	ArmorBreakPct int32 `yaml:"armor_break_pct"`
	WeakenAtkPct  int32 `yaml:"weaken_atk_pct"`

	// Chance a confused creature wastes its action.
	ConfusionFailPct int32 `yaml:"confusion_fail_pct"`

	// Fallback animation timings for techniques authored without hints.
	DefaultWindupMs   int32 `yaml:"default_windup_ms"`
	DefaultDurationMs int32 `yaml:"default_duration_ms"`
	// Settle delay between playback end and Idle.
	SettleMs int32 `yaml:"settle_ms"`
}

// DefaultBalance returns the contract values.
func DefaultBalance() Balance {
	return Balance{
		AccuracyFloor:     5,
		AccuracyCeil:      100,
		BlindAccuracyPct:  50,
		CritBasePct:       6.25,
		CritSkillDiv:      20,
		CritMultiplier:    1.5,
		VariancePct:       10,
		MaxGuts:           100,
		PoisonPct:         6,
		BurnPct:           8,
		SlowPct:           30,
		ArmorBreakPct:     30,
		WeakenAtkPct:      30,
		ConfusionFailPct:  33,
		DefaultWindupMs:   400,
		DefaultDurationMs: 900,
		SettleMs:          150,
	}
}

// Validate rejects balance values the battle formulas cannot work with.
func (b Balance) Validate() error {
	if b.AccuracyFloor < 0 || b.AccuracyCeil > 100 || b.AccuracyFloor > b.AccuracyCeil {
		return fmt.Errorf("accuracy clamp [%d,%d] outside [0,100]", b.AccuracyFloor, b.AccuracyCeil)
	}
	if b.CritBasePct < 0 || b.CritBasePct > 100 {
		return fmt.Errorf("crit base %.2f outside [0,100]", b.CritBasePct)
	}
	if b.CritSkillDiv <= 0 {
		return fmt.Errorf("crit skill divisor %d must be positive", b.CritSkillDiv)
	}
	if b.CritMultiplier < 1 {
		return fmt.Errorf("crit multiplier %.2f below 1", b.CritMultiplier)
	}
	if b.VariancePct < 0 || b.VariancePct > 50 {
		return fmt.Errorf("variance %d%% outside [0,50]", b.VariancePct)
	}
	if b.MaxGuts < 1 {
		return fmt.Errorf("max guts %d must be positive", b.MaxGuts)
	}
	for name, pct := range map[string]int32{
		"poison_pct":      b.PoisonPct,
		"burn_pct":        b.BurnPct,
		"slow_pct":        b.SlowPct,
		"armor_break_pct": b.ArmorBreakPct,
		"weaken_atk_pct":  b.WeakenAtkPct,
	} {
		if pct < 0 || pct > 100 {
			return fmt.Errorf("%s %d outside [0,100]", name, pct)
		}
	}
	if b.ConfusionFailPct < 0 || b.ConfusionFailPct > 100 {
		return fmt.Errorf("confusion_fail_pct %d outside [0,100]", b.ConfusionFailPct)
	}
	if b.DefaultWindupMs < 0 || b.DefaultDurationMs < 0 || b.SettleMs < 0 {
		return fmt.Errorf("animation timings must not be negative")
	}
	return nil
}

// LoadBalance loads balance constants from a YAML file over the defaults.
// A missing file yields defaults. Invalid values are a hard error: a server
// must not start on a broken balance.
func LoadBalance(path string) (Balance, error) {
	b := DefaultBalance()
	if path == "" {
		return b, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return b, nil
		}
		return b, fmt.Errorf("reading balance %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &b); err != nil {
		return b, fmt.Errorf("parsing balance %s: %w", path, err)
	}
	if err := b.Validate(); err != nil {
		return b, fmt.Errorf("validating balance %s: %w", path, err)
	}

	return b, nil
}
