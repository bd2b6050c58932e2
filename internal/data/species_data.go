package data

// speciesDef is the authored definition a SpeciesTemplate is built from.
// Stats and growth ranks are ordered Life, Power, Intelligence, Skill,
// Speed, Defense.
type speciesDef struct {
	id          string
	name        string
	baseStats   [StatCount]int32
	growth      [StatCount]string
	learnSet    []LearnEntry
	captureRate int32
	xpYield     int32
}

// speciesDefs is the authored species roster.
var speciesDefs = []speciesDef{
	{
		id: "ember_pup", name: "Emberpup",
		baseStats: [StatCount]int32{32, 14, 10, 11, 12, 9},
		growth:    [StatCount]string{"B", "A", "C", "B", "B", "C"},
		learnSet: []LearnEntry{
			{Level: 1, TechniqueID: "tackle"},
			{Level: 4, TechniqueID: "ember_burst"},
			{Level: 7, TechniqueID: "war_cry"},
			{Level: 11, TechniqueID: "fury_swipes"},
			{Level: 16, TechniqueID: "takedown"},
			{Level: 22, TechniqueID: "reckless_charge"},
		},
		captureRate: 190, xpYield: 16,
	},
	{
		id: "tidal_koi", name: "Tidalkoi",
		baseStats: [StatCount]int32{30, 9, 15, 12, 11, 10},
		growth:    [StatCount]string{"B", "C", "A", "B", "C", "B"},
		learnSet: []LearnEntry{
			{Level: 1, TechniqueID: "tackle"},
			{Level: 4, TechniqueID: "tide_jet"},
			{Level: 8, TechniqueID: "soothing_mist"},
			{Level: 13, TechniqueID: "mud_sling"},
			{Level: 18, TechniqueID: "storm_call"},
		},
		captureRate: 190, xpYield: 17,
	},
	{
		id: "gale_finch", name: "Galefinch",
		baseStats: [StatCount]int32{26, 11, 10, 13, 16, 8},
		growth:    [StatCount]string{"C", "B", "C", "A", "S", "D"},
		learnSet: []LearnEntry{
			{Level: 1, TechniqueID: "tackle"},
			{Level: 5, TechniqueID: "shadow_feint"},
			{Level: 9, TechniqueID: "swift_wind"},
			{Level: 14, TechniqueID: "hush_wing"},
			{Level: 20, TechniqueID: "mind_shard"},
		},
		captureRate: 210, xpYield: 14,
	},
	{
		id: "terra_shell", name: "Terrashell",
		baseStats: [StatCount]int32{36, 10, 8, 9, 6, 16},
		growth:    [StatCount]string{"A", "C", "D", "C", "F", "S"},
		learnSet: []LearnEntry{
			{Level: 1, TechniqueID: "tackle"},
			{Level: 5, TechniqueID: "stone_skin"},
			{Level: 10, TechniqueID: "guard_break"},
			{Level: 15, TechniqueID: "quake_stomp"},
			{Level: 24, TechniqueID: "earthsplitter"},
		},
		captureRate: 170, xpYield: 20,
	},
	{
		id: "volt_kit", name: "Voltkit",
		baseStats: [StatCount]int32{28, 12, 13, 12, 14, 8},
		growth:    [StatCount]string{"C", "B", "B", "B", "A", "D"},
		learnSet: []LearnEntry{
			{Level: 1, TechniqueID: "tackle"},
			{Level: 4, TechniqueID: "numbing_sting"},
			{Level: 9, TechniqueID: "storm_call"},
			{Level: 13, TechniqueID: "tar_shot"},
			{Level: 19, TechniqueID: "mind_shard"},
		},
		captureRate: 200, xpYield: 15,
	},
	{
		id: "moss_golem", name: "Mossgolem",
		baseStats: [StatCount]int32{40, 13, 9, 8, 5, 13},
		growth:    [StatCount]string{"S", "B", "D", "C", "F", "A"},
		learnSet: []LearnEntry{
			{Level: 1, TechniqueID: "tackle"},
			{Level: 5, TechniqueID: "toxic_spores"},
			{Level: 9, TechniqueID: "verdant_bloom"},
			{Level: 14, TechniqueID: "takedown"},
			{Level: 21, TechniqueID: "quake_stomp"},
		},
		captureRate: 160, xpYield: 22,
	},
	{
		id: "cinder_drake", name: "Cinderdrake",
		baseStats: [StatCount]int32{34, 16, 14, 12, 11, 11},
		growth:    [StatCount]string{"A", "S", "B", "B", "B", "B"},
		learnSet: []LearnEntry{
			{Level: 1, TechniqueID: "tackle"},
			{Level: 1, TechniqueID: "ember_burst"},
			{Level: 8, TechniqueID: "war_cry"},
			{Level: 12, TechniqueID: "piercing_horn"},
			{Level: 17, TechniqueID: "takedown"},
			{Level: 26, TechniqueID: "earthsplitter"},
		},
		captureRate: 90, xpYield: 34,
	},
	{
		id: "frost_wisp", name: "Frostwisp",
		baseStats: [StatCount]int32{27, 8, 16, 13, 12, 9},
		growth:    [StatCount]string{"C", "D", "S", "A", "B", "C"},
		learnSet: []LearnEntry{
			{Level: 1, TechniqueID: "frost_beam"},
			{Level: 6, TechniqueID: "inner_light"},
			{Level: 10, TechniqueID: "withering_glare"},
			{Level: 15, TechniqueID: "lullaby"},
			{Level: 20, TechniqueID: "storm_call"},
		},
		captureRate: 150, xpYield: 19,
	},
	{
		id: "dune_scarab", name: "Dunescarab",
		baseStats: [StatCount]int32{29, 13, 8, 12, 10, 14},
		growth:    [StatCount]string{"C", "A", "F", "B", "C", "A"},
		learnSet: []LearnEntry{
			{Level: 1, TechniqueID: "tackle"},
			{Level: 5, TechniqueID: "guard_break"},
			{Level: 10, TechniqueID: "piercing_horn"},
			{Level: 14, TechniqueID: "tar_shot"},
			{Level: 19, TechniqueID: "reckless_charge"},
		},
		captureRate: 180, xpYield: 18,
	},
	{
		id: "night_moth", name: "Nightmoth",
		baseStats: [StatCount]int32{27, 9, 14, 14, 13, 8},
		growth:    [StatCount]string{"C", "D", "A", "A", "B", "C"},
		learnSet: []LearnEntry{
			{Level: 1, TechniqueID: "tackle"},
			{Level: 4, TechniqueID: "lullaby"},
			{Level: 8, TechniqueID: "dizzy_dance"},
			{Level: 12, TechniqueID: "toxic_spores"},
			{Level: 17, TechniqueID: "mind_shard"},
			{Level: 22, TechniqueID: "terror_howl"},
		},
		captureRate: 200, xpYield: 16,
	},
}
