package data

// techniqueDef is the authored definition a TechniqueTemplate is built from.
// Durations are milliseconds.
type techniqueDef struct {
	id       string
	name     string
	category Category
	target   TargetKind

	gutsCost      int32
	usesPerBattle int32

	power     int32
	accuracy  int32
	critBonus int32
	hitCount  int32

	effectValue    int32
	effectStat     StatType
	effectPercent  int32
	effectDuration int32

	status       StatusKind
	statusChance int32
	statusTurns  int32

	ignoresDefense bool
	alwaysHits     bool
	canCritical    bool
	makesContact   bool
	affectsSelf    bool

	priority int32

	windupMs   int32
	durationMs int32
}

// techniqueDefs is the authored technique catalog.
var techniqueDefs = []techniqueDef{
	// Physical
	{
		id: "tackle", name: "Tackle", category: CategoryPhysical, target: TargetSingleEnemy,
		gutsCost: 10, usesPerBattle: -1, power: 40, accuracy: 95, hitCount: 1,
		canCritical: true, makesContact: true, windupMs: 350, durationMs: 800,
	},
	{
		id: "fury_swipes", name: "Fury Swipes", category: CategoryPhysical, target: TargetSingleEnemy,
		gutsCost: 15, usesPerBattle: -1, power: 18, accuracy: 80, hitCount: 3,
		canCritical: true, makesContact: true, windupMs: 300, durationMs: 1100,
	},
	{
		id: "takedown", name: "Takedown", category: CategoryPhysical, target: TargetSingleEnemy,
		gutsCost: 25, usesPerBattle: -1, power: 85, accuracy: 85, hitCount: 1,
		canCritical: true, makesContact: true, windupMs: 500, durationMs: 1000,
	},
	{
		id: "piercing_horn", name: "Piercing Horn", category: CategoryPhysical, target: TargetSingleEnemy,
		gutsCost: 30, usesPerBattle: 5, power: 60, accuracy: 90, hitCount: 1,
		ignoresDefense: true, canCritical: true, makesContact: true,
		windupMs: 450, durationMs: 950,
	},
	{
		id: "quake_stomp", name: "Quake Stomp", category: CategoryPhysical, target: TargetAllEnemies,
		gutsCost: 35, usesPerBattle: -1, power: 55, accuracy: 90, hitCount: 1,
		canCritical: true, windupMs: 600, durationMs: 1300,
	},
	{
		id: "shadow_feint", name: "Shadow Feint", category: CategoryPhysical, target: TargetSingleEnemy,
		gutsCost: 20, usesPerBattle: -1, power: 50, accuracy: 100, hitCount: 1,
		alwaysHits: true, canCritical: true, makesContact: true, priority: 1,
		windupMs: 250, durationMs: 700,
	},
	{
		id: "reckless_charge", name: "Reckless Charge", category: CategoryPhysical, target: TargetSingleEnemy,
		gutsCost: 30, usesPerBattle: -1, power: 90, accuracy: 90, hitCount: 1,
		effectStat: StatDefense, effectPercent: -25, effectDuration: 2, affectsSelf: true,
		canCritical: true, makesContact: true, windupMs: 550, durationMs: 1100,
	},

	// Intelligence
	{
		id: "ember_burst", name: "Ember Burst", category: CategoryIntelligence, target: TargetSingleEnemy,
		gutsCost: 20, usesPerBattle: -1, power: 65, accuracy: 95, hitCount: 1,
		canCritical: true, status: StatusBurn, statusChance: 10, statusTurns: 3,
		windupMs: 400, durationMs: 900,
	},
	{
		id: "tide_jet", name: "Tide Jet", category: CategoryIntelligence, target: TargetSingleEnemy,
		gutsCost: 20, usesPerBattle: -1, power: 60, accuracy: 100, hitCount: 1,
		canCritical: true, windupMs: 400, durationMs: 900,
	},
	{
		id: "storm_call", name: "Storm Call", category: CategoryIntelligence, target: TargetAllEnemies,
		gutsCost: 40, usesPerBattle: -1, power: 50, accuracy: 90, hitCount: 1,
		canCritical: true, status: StatusStun, statusChance: 10, statusTurns: 1,
		windupMs: 650, durationMs: 1400,
	},
	{
		id: "mind_shard", name: "Mind Shard", category: CategoryIntelligence, target: TargetRandomEnemy,
		gutsCost: 25, usesPerBattle: -1, power: 75, accuracy: 90, critBonus: 10, hitCount: 1,
		canCritical: true, windupMs: 450, durationMs: 950,
	},
	{
		id: "frost_beam", name: "Frost Beam", category: CategoryIntelligence, target: TargetSingleEnemy,
		gutsCost: 25, usesPerBattle: -1, power: 55, accuracy: 90, hitCount: 1,
		canCritical: true, status: StatusFreeze, statusChance: 15, statusTurns: 1,
		windupMs: 450, durationMs: 1000,
	},

	// Healing
	{
		id: "soothing_mist", name: "Soothing Mist", category: CategoryHealing, target: TargetSingleAlly,
		gutsCost: 25, usesPerBattle: 5, effectValue: 45, alwaysHits: true,
		windupMs: 400, durationMs: 900,
	},
	{
		id: "verdant_bloom", name: "Verdant Bloom", category: CategoryHealing, target: TargetAllAllies,
		gutsCost: 40, usesPerBattle: 3, effectValue: 30, alwaysHits: true,
		windupMs: 500, durationMs: 1200,
	},
	{
		id: "inner_light", name: "Inner Light", category: CategoryHealing, target: TargetSelf,
		gutsCost: 30, usesPerBattle: 3, effectValue: 60, alwaysHits: true,
		windupMs: 350, durationMs: 800,
	},

	// Buff
	{
		id: "war_cry", name: "War Cry", category: CategoryBuff, target: TargetSelf,
		gutsCost: 15, usesPerBattle: -1, effectStat: StatPower, effectPercent: 30,
		effectDuration: 3, alwaysHits: true, windupMs: 300, durationMs: 700,
	},
	{
		id: "stone_skin", name: "Stone Skin", category: CategoryBuff, target: TargetSingleAlly,
		gutsCost: 20, usesPerBattle: -1, effectStat: StatDefense, effectPercent: 40,
		effectDuration: 3, alwaysHits: true, windupMs: 350, durationMs: 800,
	},
	{
		id: "swift_wind", name: "Swift Wind", category: CategoryBuff, target: TargetAllAllies,
		gutsCost: 35, usesPerBattle: 3, effectStat: StatSpeed, effectPercent: 25,
		effectDuration: 3, alwaysHits: true, windupMs: 450, durationMs: 1000,
	},

	// Debuff
	{
		id: "withering_glare", name: "Withering Glare", category: CategoryDebuff, target: TargetSingleEnemy,
		gutsCost: 15, usesPerBattle: -1, accuracy: 90, effectStat: StatPower,
		effectPercent: -30, effectDuration: 3, windupMs: 350, durationMs: 800,
	},
	{
		id: "mud_sling", name: "Mud Sling", category: CategoryDebuff, target: TargetSingleEnemy,
		gutsCost: 15, usesPerBattle: -1, accuracy: 95, effectStat: StatSpeed,
		effectPercent: -20, effectDuration: 3,
		status: StatusBlind, statusChance: 30, statusTurns: 2,
		windupMs: 350, durationMs: 850,
	},
	{
		id: "terror_howl", name: "Terror Howl", category: CategoryDebuff, target: TargetAllEnemies,
		gutsCost: 30, usesPerBattle: 3, accuracy: 85, effectStat: StatPower,
		effectPercent: -20, effectDuration: 2, windupMs: 500, durationMs: 1200,
	},

	// Special
	{
		id: "earthsplitter", name: "Earthsplitter", category: CategorySpecial, target: TargetEveryone,
		gutsCost: 50, usesPerBattle: 1, power: 70, accuracy: 90, hitCount: 1,
		priority: -1, windupMs: 800, durationMs: 1800,
	},
	{
		id: "toxic_spores", name: "Toxic Spores", category: CategorySpecial, target: TargetSingleEnemy,
		gutsCost: 15, usesPerBattle: -1, accuracy: 90,
		status: StatusPoison, statusChance: 90, statusTurns: 4,
		windupMs: 400, durationMs: 900,
	},
	{
		id: "lullaby", name: "Lullaby", category: CategorySpecial, target: TargetAllEnemies,
		gutsCost: 25, usesPerBattle: 3, accuracy: 75,
		status: StatusSleep, statusChance: 80, statusTurns: 2,
		windupMs: 500, durationMs: 1300,
	},
	{
		id: "guard_break", name: "Guard Break", category: CategorySpecial, target: TargetSingleEnemy,
		gutsCost: 20, usesPerBattle: -1, power: 30, accuracy: 90, hitCount: 1,
		canCritical: true, makesContact: true,
		status: StatusArmorBreak, statusChance: 70, statusTurns: 3,
		windupMs: 400, durationMs: 900,
	},
	{
		id: "tar_shot", name: "Tar Shot", category: CategorySpecial, target: TargetSingleEnemy,
		gutsCost: 15, usesPerBattle: -1, accuracy: 90,
		status: StatusSlow, statusChance: 75, statusTurns: 3,
		windupMs: 350, durationMs: 850,
	},
	{
		id: "hush_wing", name: "Hush Wing", category: CategorySpecial, target: TargetSingleEnemy,
		gutsCost: 20, usesPerBattle: -1, accuracy: 85,
		status: StatusSilence, statusChance: 70, statusTurns: 2,
		windupMs: 400, durationMs: 900,
	},
	{
		id: "dizzy_dance", name: "Dizzy Dance", category: CategorySpecial, target: TargetAllEnemies,
		gutsCost: 30, usesPerBattle: 3, accuracy: 80,
		status: StatusConfusion, statusChance: 60, statusTurns: 2,
		windupMs: 500, durationMs: 1200,
	},
	{
		id: "numbing_sting", name: "Numbing Sting", category: CategorySpecial, target: TargetSingleEnemy,
		gutsCost: 15, usesPerBattle: -1, power: 25, accuracy: 90, hitCount: 1,
		canCritical: true, makesContact: true,
		status: StatusWeakenedAttack, statusChance: 60, statusTurns: 3,
		windupMs: 350, durationMs: 850,
	},
}
