package data

import (
	"log/slog"
	"time"
)

// TechniqueTable is the global registry of technique templates, keyed by
// technique ID. Loaded via LoadTechniques() at server start.
var TechniqueTable map[string]*TechniqueTemplate

// GetTechnique returns the TechniqueTemplate for an ID. Returns nil when
// unknown.
func GetTechnique(id string) *TechniqueTemplate {
	if TechniqueTable == nil {
		return nil
	}
	return TechniqueTable[id]
}

// LoadTechniques builds TechniqueTable from techniqueDefs. Authored values
// outside their documented ranges are clamped at load rather than rejected,
// so a bad authoring entry degrades instead of failing startup.
func LoadTechniques() error {
	TechniqueTable = make(map[string]*TechniqueTemplate, len(techniqueDefs))

	for i := range techniqueDefs {
		def := &techniqueDefs[i]
		if _, dup := TechniqueTable[def.id]; dup {
			slog.Warn("duplicate technique id, keeping first", "id", def.id)
			continue
		}

		TechniqueTable[def.id] = &TechniqueTemplate{
			ID:       def.id,
			Name:     def.name,
			Category: def.category,
			Target:   def.target,

			GutsCost:      max(def.gutsCost, 0),
			UsesPerBattle: def.usesPerBattle,

			Power:     clampInt32(def.power, 0, 300),
			Accuracy:  clampInt32(def.accuracy, 0, 100),
			CritBonus: clampInt32(def.critBonus, 0, 100),
			HitCount:  max(def.hitCount, 1),

			EffectValue:    max(def.effectValue, 0),
			EffectStat:     def.effectStat,
			EffectPercent:  clampInt32(def.effectPercent, -90, 300),
			EffectDuration: max(def.effectDuration, 0),

			Status:       def.status,
			StatusChance: clampInt32(def.statusChance, 0, 100),
			StatusTurns:  max(def.statusTurns, 0),

			IgnoresDefense: def.ignoresDefense,
			AlwaysHits:     def.alwaysHits,
			CanCritical:    def.canCritical,
			MakesContact:   def.makesContact,
			AffectsSelf:    def.affectsSelf,

			Priority: clampInt32(def.priority, -1, 1),

			Windup:   time.Duration(max(def.windupMs, 0)) * time.Millisecond,
			Duration: time.Duration(max(def.durationMs, 0)) * time.Millisecond,
		}
	}

	slog.Info("loaded techniques", "count", len(TechniqueTable))
	return nil
}

// clampInt32 bounds v to the inclusive [lo, hi] range.
func clampInt32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
