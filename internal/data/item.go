package data

// ItemKind classifies what applying an item does to a creature.
type ItemKind int8

const (
	ItemStatBoost ItemKind = iota // permanently raises one stat
	ItemXPBoost                   // grants experience
)

func (k ItemKind) String() string {
	switch k {
	case ItemStatBoost:
		return "StatBoost"
	case ItemXPBoost:
		return "XPBoost"
	default:
		return "Unknown"
	}
}

// ItemTemplate is the immutable authored definition of a consumable item.
// Never modified after LoadItems.
type ItemTemplate struct {
	ID   string
	Name string
	Kind ItemKind

	Stat           StatType // stat touched by ItemStatBoost
	BoostAmount    int32    // points added to Stat
	ImprovesGrowth bool     // also raises the stat's growth rank one step

	XPAmount int64 // experience granted by ItemXPBoost
}
