package inventory_test

import (
	"testing"
	"testing/fstest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/wrm/internal/game/inventory"
	"github.com/cory-johannsen/wrm/internal/game/ruleset"
)

const swordYAML = `
id: sword
name: Sword
category: weapon
weapon:
  damage: 1d6
  damage_type: slashing
  skill: Swords
  reach: melee
`

const wandYAML = `
id: apprentice_wand
name: Apprentice Wand
category: implement
implement:
  max_mana: 4
  thaumaturgy_bonus: 1
  spells: [magic_light]
`

func TestLoadItems_ParsesYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"items/sword.yaml": {Data: []byte(swordYAML)},
		"items/wand.yaml":  {Data: []byte(wandYAML)},
	}
	items, err := inventory.LoadItems(fsys, "items")
	require.NoError(t, err)
	require.Len(t, items, 2)

	sword := items[0]
	assert.Equal(t, "sword", sword.ID)
	assert.Equal(t, 6, sword.Weapon.Damage.Sides)
	assert.Equal(t, ruleset.Slashing, sword.Weapon.DamageType)
	assert.Equal(t, ruleset.Swords, sword.Weapon.Skill)
	slot, ok := sword.Slot()
	assert.True(t, ok)
	assert.Equal(t, inventory.SlotWeapon, slot)

	wand := items[1]
	assert.True(t, wand.Implement.Stores("magic_light"))
	assert.False(t, wand.Implement.Stores("fire_bolt"))
}

func TestLoadItems_RejectsBadWeapon(t *testing.T) {
	fsys := fstest.MapFS{"items/bad.yaml": {Data: []byte(`
id: bad
name: Bad
category: weapon
weapon:
  damage: 1d6
  damage_type: slashing
  skill: Juggling
  reach: melee
`)}}
	_, err := inventory.LoadItems(fsys, "items")
	require.Error(t, err)
	assert.ErrorIs(t, err, ruleset.ErrUnknownSkill)
}

func TestItemDef_Validate_RequiresCategoryBlock(t *testing.T) {
	tests := []inventory.ItemDef{
		{ID: "a", Name: "A", Category: inventory.CategoryArmor},
		{ID: "b", Name: "B", Category: inventory.CategoryArmor, Armor: &inventory.ArmorProps{Slot: "head"}},
		{ID: "c", Name: "C", Category: inventory.CategoryPotion},
		{ID: "d", Name: "D", Category: "junk"},
	}
	for _, d := range tests {
		assert.Error(t, d.Validate(), d.ID)
	}
}

func TestRegistry_WeaponLookup(t *testing.T) {
	r := inventory.NewRegistry()
	require.NoError(t, r.RegisterItem(&inventory.ItemDef{
		ID: "potion", Name: "Potion", Category: inventory.CategoryPotion,
		Potion: &inventory.PotionProps{Heal: 10},
	}))
	require.Error(t, r.RegisterItem(&inventory.ItemDef{ID: "potion"}))

	_, err := r.Weapon("potion")
	assert.ErrorIs(t, err, inventory.ErrNotAWeapon)
	_, err = r.Weapon("halberd")
	assert.ErrorIs(t, err, inventory.ErrUnknownItem)

	w, err := r.Weapon(inventory.UnarmedStrike.ID)
	require.NoError(t, err)
	assert.Equal(t, -3, w.Weapon.Damage.Modifier)
	assert.Len(t, r.AllItems(), 2)
}

func TestNewInstance_ImplementStartsFull(t *testing.T) {
	def := &inventory.ItemDef{ID: "wand", Category: inventory.CategoryImplement,
		Implement: &inventory.ImplementProps{MaxMana: 4}}
	inst := inventory.NewInstance(def)
	assert.Equal(t, 4, inst.Mana)
	_, err := uuid.Parse(inst.InstanceID)
	assert.NoError(t, err)
}

func TestInventory_OrderedAddRemove(t *testing.T) {
	inv := inventory.NewInventory()
	a := &inventory.ItemInstance{InstanceID: "1", DefID: "sword"}
	b := &inventory.ItemInstance{InstanceID: "2", DefID: "potion"}
	c := &inventory.ItemInstance{InstanceID: "3", DefID: "potion"}
	inv.Add(a)
	inv.Add(b)
	inv.Add(c)

	got, ok := inv.FindByDef("potion")
	require.True(t, ok)
	assert.Equal(t, "2", got.InstanceID)
	assert.Equal(t, 2, inv.Count("potion"))

	_, ok = inv.Remove("2")
	assert.True(t, ok)
	_, ok = inv.Remove("2")
	assert.False(t, ok)
	assert.Equal(t, []*inventory.ItemInstance{a, c}, inv.Items())
}

func TestProperty_InventoryPreservesInsertionOrder(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 20).Draw(rt, "n")
		inv := inventory.NewInventory()
		var ids []string
		for i := 0; i < n; i++ {
			inst := inventory.NewInstance(inventory.UnarmedStrike)
			ids = append(ids, inst.InstanceID)
			inv.Add(inst)
		}
		items := inv.Items()
		require.Len(rt, items, n)
		for i, it := range items {
			assert.Equal(rt, ids[i], it.InstanceID)
		}
	})
}
