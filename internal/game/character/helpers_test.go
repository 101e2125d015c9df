package character_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/wrm/internal/game/character"
	"github.com/cory-johannsen/wrm/internal/game/dice"
	"github.com/cory-johannsen/wrm/internal/game/inventory"
	"github.com/cory-johannsen/wrm/internal/game/ruleset"
)

func testItems(t *testing.T) *inventory.Registry {
	t.Helper()
	reg := inventory.NewRegistry()
	defs := []*inventory.ItemDef{
		{ID: "sword", Name: "Sword", Category: inventory.CategoryWeapon, Weapon: &inventory.WeaponProps{
			Damage: dice.MustParse("1d6"), DamageType: ruleset.Slashing, Skill: ruleset.Swords, Reach: inventory.Melee,
		}},
		{ID: "greataxe", Name: "Greataxe", Category: inventory.CategoryWeapon, Weapon: &inventory.WeaponProps{
			Damage: dice.MustParse("1d6+2"), DamageType: ruleset.Slashing, Skill: ruleset.Axes, Reach: inventory.Melee,
			TwoHanded: true, MeleeDamage: 1,
		}},
		{ID: "leather_armor", Name: "Leather Armor", Category: inventory.CategoryArmor,
			Armor: &inventory.ArmorProps{Slot: inventory.SlotBody, DefenseBonus: 1, ManaPenalty: 1}},
		{ID: "plate_armor", Name: "Plate Armor", Category: inventory.CategoryArmor,
			Armor: &inventory.ArmorProps{Slot: inventory.SlotBody, DefenseBonus: 4, ManaPenalty: 3}},
		{ID: "shield", Name: "Shield", Category: inventory.CategoryArmor,
			Armor: &inventory.ArmorProps{Slot: inventory.SlotShield, DefenseBonus: 2, ManaPenalty: 1}},
		{ID: "gauntlets", Name: "Gauntlets", Category: inventory.CategoryArmor,
			Armor: &inventory.ArmorProps{Slot: inventory.SlotHands, DefenseBonus: 1}},
		{ID: "wand", Name: "Wand", Category: inventory.CategoryImplement,
			Implement: &inventory.ImplementProps{MaxMana: 4, ThaumaturgyBonus: 1, Spells: []string{"magic_light"}}},
		{ID: "health_potion", Name: "Health Potion", Category: inventory.CategoryPotion,
			Potion: &inventory.PotionProps{Heal: 10}},
		{ID: "herbal_draught", Name: "Herbal Draught", Category: inventory.CategoryPotion,
			Potion: &inventory.PotionProps{Heal: 1, HealDice: dice.MustParse("1d6")}},
	}
	for _, d := range defs {
		require.NoError(t, d.Validate())
		require.NoError(t, reg.RegisterItem(d))
	}
	return reg
}

func give(t *testing.T, c *character.Character, defID string) *inventory.ItemInstance {
	t.Helper()
	def, err := c.Items().Lookup(defID)
	require.NoError(t, err)
	inst := inventory.NewInstance(def)
	c.AddItem(inst)
	return inst
}

func fighter(t *testing.T) *character.Character {
	t.Helper()
	return character.New(character.Params{
		Name:       "Brom",
		Attributes: ruleset.Scores{Warrior: 4, Rogue: 2, Mage: 1},
		Skills:     []ruleset.Skill{ruleset.Swords, ruleset.Thaumaturgy},
		Items:      testItems(t),
	})
}
