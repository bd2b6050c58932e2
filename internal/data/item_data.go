package data

// itemDef is the authored definition an ItemTemplate is built from.
type itemDef struct {
	id             string
	name           string
	kind           ItemKind
	stat           StatType
	boostAmount    int32
	improvesGrowth bool
	xpAmount       int64
}

// itemDefs is the authored item catalog.
var itemDefs = []itemDef{
	{id: "power_seed", name: "Power Seed", kind: ItemStatBoost, stat: StatPower, boostAmount: 3},
	{id: "iron_shell", name: "Iron Shell", kind: ItemStatBoost, stat: StatDefense, boostAmount: 3},
	{id: "life_berry", name: "Life Berry", kind: ItemStatBoost, stat: StatLife, boostAmount: 5},
	{id: "swift_feather", name: "Swift Feather", kind: ItemStatBoost, stat: StatSpeed, boostAmount: 3},
	{id: "clever_root", name: "Clever Root", kind: ItemStatBoost, stat: StatIntelligence, boostAmount: 3},
	{id: "lucky_charm", name: "Lucky Charm", kind: ItemStatBoost, stat: StatSkill, boostAmount: 2, improvesGrowth: true},
	{id: "primal_essence", name: "Primal Essence", kind: ItemStatBoost, stat: StatPower, boostAmount: 5, improvesGrowth: true},
	{id: "xp_candy_s", name: "Small XP Candy", kind: ItemXPBoost, xpAmount: 500},
	{id: "xp_candy_l", name: "Large XP Candy", kind: ItemXPBoost, xpAmount: 5000},
}
