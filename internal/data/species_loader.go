package data

import (
	"log/slog"
	"sort"
)

// SpeciesTable is the global registry of species templates, keyed by species
// ID. Loaded via LoadSpecies() at server start, after LoadTechniques.
var SpeciesTable map[string]*SpeciesTemplate

// GetSpecies returns the SpeciesTemplate for an ID. Returns nil when unknown.
func GetSpecies(id string) *SpeciesTemplate {
	if SpeciesTable == nil {
		return nil
	}
	return SpeciesTable[id]
}

// LoadSpecies builds SpeciesTable from speciesDefs. Learnsets are sorted by
// level; entries referencing unknown techniques are kept but logged, the
// reference is resolved again at grant time.
func LoadSpecies() error {
	SpeciesTable = make(map[string]*SpeciesTemplate, len(speciesDefs))

	var learnEntries int
	for i := range speciesDefs {
		def := &speciesDefs[i]
		if _, dup := SpeciesTable[def.id]; dup {
			slog.Warn("duplicate species id, keeping first", "id", def.id)
			continue
		}

		tmpl := &SpeciesTemplate{
			ID:          def.id,
			Name:        def.name,
			BaseStats:   def.baseStats,
			CaptureRate: clampInt32(def.captureRate, 0, 255),
			XPYield:     max(def.xpYield, 0),
		}
		for s, rank := range def.growth {
			tmpl.Growth[s] = ParseGrowthRank(rank)
		}
		for s := range tmpl.BaseStats {
			tmpl.BaseStats[s] = max(tmpl.BaseStats[s], 1)
		}

		tmpl.LearnSet = make([]LearnEntry, len(def.learnSet))
		copy(tmpl.LearnSet, def.learnSet)
		sort.SliceStable(tmpl.LearnSet, func(a, b int) bool {
			return tmpl.LearnSet[a].Level < tmpl.LearnSet[b].Level
		})
		for _, e := range tmpl.LearnSet {
			if GetTechnique(e.TechniqueID) == nil {
				slog.Warn("learnset references unknown technique",
					"species", def.id, "technique", e.TechniqueID, "level", e.Level)
			}
		}
		learnEntries += len(tmpl.LearnSet)

		SpeciesTable[def.id] = tmpl
	}

	slog.Info("loaded species", "count", len(SpeciesTable), "learnset_entries", learnEntries)
	return nil
}
