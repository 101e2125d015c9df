package npc

import (
	"fmt"
	"math"

	"github.com/cory-johannsen/wrm/internal/game/dice"
)

// chanceScale is the resolution of drop-chance rolls.
const chanceScale = 10000

// ItemDrop defines a single item entry in a loot table with a drop chance.
type ItemDrop struct {
	ItemID string  `yaml:"item"`
	Chance float64 `yaml:"chance"`
	MinQty int     `yaml:"min_qty"`
	MaxQty int     `yaml:"max_qty"`
}

// LootTable defines the possible loot drops for a template.
type LootTable struct {
	Items []ItemDrop `yaml:"items"`
}

// Validate checks that the loot table satisfies its invariants.
//
// Precondition: lt must not be nil.
// Postcondition: Returns nil iff all item constraints hold; an empty loot
// table is valid.
func (lt *LootTable) Validate() error {
	for i, item := range lt.Items {
		if item.ItemID == "" {
			return fmt.Errorf("loot table: item[%d] must have a non-empty item id", i)
		}
		if item.Chance <= 0 || item.Chance > 1.0 {
			return fmt.Errorf("loot table: item[%d] chance must be in (0, 1.0], got %f", i, item.Chance)
		}
		if item.MinQty < 1 {
			return fmt.Errorf("loot table: item[%d] min_qty must be >= 1, got %d", i, item.MinQty)
		}
		if item.MinQty > item.MaxQty {
			return fmt.Errorf("loot table: item[%d] min_qty (%d) must be <= max_qty (%d)", i, item.MinQty, item.MaxQty)
		}
	}
	return nil
}

// LootItem is one rolled drop.
type LootItem struct {
	ItemDefID string
	Quantity  int
}

// LootResult holds the generated loot from a single defeat.
type LootResult struct {
	Items []LootItem
}

// GenerateLoot rolls loot from lt using src. Each entry draws one chance roll,
// and entries that drop draw one more for quantity when MaxQty > MinQty.
//
// Precondition: lt must have passed Validate().
// Postcondition: each item's Quantity is in [MinQty, MaxQty] for items that
// pass the chance roll; items appear in table order.
func GenerateLoot(lt LootTable, src dice.Source) LootResult {
	var result LootResult
	for _, item := range lt.Items {
		threshold := int(math.Round(item.Chance * chanceScale))
		if src.Intn(chanceScale) >= threshold {
			continue
		}
		qty := item.MinQty
		if spread := item.MaxQty - item.MinQty; spread > 0 {
			qty += src.Intn(spread + 1)
		}
		result.Items = append(result.Items, LootItem{ItemDefID: item.ItemID, Quantity: qty})
	}
	return result
}
