package data

// LearnEntry binds a technique to the level at which a species learns it.
type LearnEntry struct {
	Level       int32
	TechniqueID string
}

// SpeciesTemplate is the immutable authored definition of a creature species.
// One instance per species, shared across all creatures. Never modified after
// LoadSpecies.
type SpeciesTemplate struct {
	ID          string
	Name        string
	BaseStats   [StatCount]int32      // level-1 values, indexed by StatType
	Growth      [StatCount]GrowthRank // growth rank per stat
	LearnSet    []LearnEntry          // sorted by Level ascending
	CaptureRate int32                 // 0-255, consumed by the capture flow
	XPYield     int32                 // base experience awarded when defeated
}

// BaseStat returns the level-1 value for a stat.
func (s *SpeciesTemplate) BaseStat(st StatType) int32 {
	return s.BaseStats[st]
}

// GrowthFor returns the authored growth rank for a stat.
func (s *SpeciesTemplate) GrowthFor(st StatType) GrowthRank {
	return s.Growth[st]
}

// TechniquesAtLevel returns the technique IDs the species learns at exactly
// the given level.
func (s *SpeciesTemplate) TechniquesAtLevel(level int32) []string {
	var ids []string
	for _, e := range s.LearnSet {
		if e.Level == level {
			ids = append(ids, e.TechniqueID)
		}
	}
	return ids
}

// TechniquesUpToLevel returns every technique ID the species knows at the
// given level, in learnset order.
func (s *SpeciesTemplate) TechniquesUpToLevel(level int32) []string {
	var ids []string
	for _, e := range s.LearnSet {
		if e.Level <= level {
			ids = append(ids, e.TechniqueID)
		}
	}
	return ids
}
