package data

import "log/slog"

// ItemTable is the global registry of item templates, keyed by item ID.
// Loaded via LoadItems() at server start.
var ItemTable map[string]*ItemTemplate

// GetItem returns the ItemTemplate for an ID. Returns nil when unknown.
func GetItem(id string) *ItemTemplate {
	if ItemTable == nil {
		return nil
	}
	return ItemTable[id]
}

// LoadItems builds ItemTable from itemDefs. Authored values outside their
// documented ranges are clamped.
func LoadItems() error {
	ItemTable = make(map[string]*ItemTemplate, len(itemDefs))

	for i := range itemDefs {
		def := &itemDefs[i]
		if _, dup := ItemTable[def.id]; dup {
			slog.Warn("duplicate item id, keeping first", "id", def.id)
			continue
		}

		ItemTable[def.id] = &ItemTemplate{
			ID:             def.id,
			Name:           def.name,
			Kind:           def.kind,
			Stat:           def.stat,
			BoostAmount:    max(def.boostAmount, 0),
			ImprovesGrowth: def.improvesGrowth,
			XPAmount:       max(def.xpAmount, 0),
		}
	}

	slog.Info("loaded items", "count", len(ItemTable))
	return nil
}
