package data

// MaxCreatureLevel is the maximum achievable creature level.
const MaxCreatureLevel = 50

// ExperienceTable holds cumulative XP required to reach each level.
// Index = level (0-50). Level 0 and 1 require 0 XP. The curve is cubic:
// reaching level n costs n^3 total experience.
var ExperienceTable = [51]int64{
	0,      // 0 (unused)
	0,      // 1
	8,      // 2
	27,     // 3
	64,     // 4
	125,    // 5
	216,    // 6
	343,    // 7
	512,    // 8
	729,    // 9
	1000,   // 10
	1331,   // 11
	1728,   // 12
	2197,   // 13
	2744,   // 14
	3375,   // 15
	4096,   // 16
	4913,   // 17
	5832,   // 18
	6859,   // 19
	8000,   // 20
	9261,   // 21
	10648,  // 22
	12167,  // 23
	13824,  // 24
	15625,  // 25
	17576,  // 26
	19683,  // 27
	21952,  // 28
	24389,  // 29
	27000,  // 30
	29791,  // 31
	32768,  // 32
	35937,  // 33
	39304,  // 34
	42875,  // 35
	46656,  // 36
	50653,  // 37
	54872,  // 38
	59319,  // 39
	64000,  // 40
	68921,  // 41
	74088,  // 42
	79507,  // 43
	85184,  // 44
	91125,  // 45
	97336,  // 46
	103823, // 47
	110592, // 48
	117649, // 49
	125000, // 50
}

// GetExpForLevel returns cumulative XP required to reach the given level.
// Returns 0 for level <= 1 and the cap value for level > MaxCreatureLevel.
func GetExpForLevel(level int32) int64 {
	if level <= 1 {
		return 0
	}
	if level > MaxCreatureLevel {
		level = MaxCreatureLevel
	}
	return ExperienceTable[level]
}

// GetLevelForExp returns the level corresponding to the given cumulative XP.
// Scans upward from startLevel to find the highest level whose threshold
// is <= exp.
func GetLevelForExp(exp int64, startLevel int32) int32 {
	if startLevel < 1 {
		startLevel = 1
	}
	level := startLevel
	for level < MaxCreatureLevel {
		if ExperienceTable[level+1] > exp {
			break
		}
		level++
	}
	return level
}
