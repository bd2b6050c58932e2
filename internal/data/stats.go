package data

// StatType identifies one of the six creature battle stats.
type StatType int8

const (
	StatLife         StatType = iota // max hit points
	StatPower                        // physical offense
	StatIntelligence                 // special offense
	StatSkill                        // accuracy and critical rate
	StatSpeed                        // evasion and turn order
	StatDefense                      // damage mitigation
)

// StatCount is the number of battle stats a creature carries.
const StatCount = 6

// AllStats lists every StatType in canonical order. The order matches the
// array layout used by SpeciesTemplate and creature instances.
var AllStats = [StatCount]StatType{
	StatLife, StatPower, StatIntelligence, StatSkill, StatSpeed, StatDefense,
}

func (s StatType) String() string {
	switch s {
	case StatLife:
		return "Life"
	case StatPower:
		return "Power"
	case StatIntelligence:
		return "Intelligence"
	case StatSkill:
		return "Skill"
	case StatSpeed:
		return "Speed"
	case StatDefense:
		return "Defense"
	default:
		return "Unknown"
	}
}

// ParseStatType converts a string to a StatType. Defaults to StatLife.
func ParseStatType(s string) StatType {
	switch s {
	case "Life":
		return StatLife
	case "Power":
		return StatPower
	case "Intelligence":
		return StatIntelligence
	case "Skill":
		return StatSkill
	case "Speed":
		return StatSpeed
	case "Defense":
		return StatDefense
	default:
		return StatLife
	}
}

// GrowthRank grades how fast a stat grows on level-up. Higher ranks draw
// level-up gains from higher ranges.
type GrowthRank int8

const (
	GrowthF GrowthRank = iota // 0-1 per level
	GrowthD                   // 2-4 per level
	GrowthC                   // 4-6 per level
	GrowthB                   // 6-8 per level
	GrowthA                   // 8-10 per level
	GrowthS                   // 10-15 per level
)

// GrowthRange returns the inclusive [lo, hi] level-up gain range for a rank.
func GrowthRange(rank GrowthRank) (lo, hi int32) {
	switch rank {
	case GrowthS:
		return 10, 15
	case GrowthA:
		return 8, 10
	case GrowthB:
		return 6, 8
	case GrowthC:
		return 4, 6
	case GrowthD:
		return 2, 4
	case GrowthF:
		return 0, 1
	default:
		return 0, 1
	}
}

// RankUp returns the next rank up the ladder F→D→C→B→A→S. S stays S.
func RankUp(rank GrowthRank) GrowthRank {
	if rank >= GrowthS {
		return GrowthS
	}
	return rank + 1
}

func (r GrowthRank) String() string {
	switch r {
	case GrowthS:
		return "S"
	case GrowthA:
		return "A"
	case GrowthB:
		return "B"
	case GrowthC:
		return "C"
	case GrowthD:
		return "D"
	case GrowthF:
		return "F"
	default:
		return "F"
	}
}

// ParseGrowthRank converts a string rank letter to a GrowthRank.
// Defaults to GrowthF for unknown input.
func ParseGrowthRank(s string) GrowthRank {
	switch s {
	case "S":
		return GrowthS
	case "A":
		return GrowthA
	case "B":
		return GrowthB
	case "C":
		return GrowthC
	case "D":
		return GrowthD
	case "F":
		return GrowthF
	default:
		return GrowthF
	}
}
