package npc_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/wrm/internal/game/dice"
	"github.com/cory-johannsen/wrm/internal/game/inventory"
	"github.com/cory-johannsen/wrm/internal/game/npc"
	"github.com/cory-johannsen/wrm/internal/game/ruleset"
)

const banditYAML = `id: bandit
name: Bandit
kind: monster
attributes: {warrior: 3, rogue: 2, mage: 0}
skills: [Swords, Thievery]
talents: [tough_as_nails]
resistances: {poison: 0.5}
equipment: [sword, leather_armor]
xp_value: 100
dialogue: Your coin or your life.
loot:
  items:
    - item: health_potion
      chance: 0.5
      min_qty: 1
      max_qty: 1
`

func registries(t *testing.T) (*inventory.Registry, *ruleset.Registry) {
	t.Helper()
	items := inventory.NewRegistry()
	require.NoError(t, items.RegisterItem(&inventory.ItemDef{ID: "sword", Name: "Sword", Category: inventory.CategoryWeapon,
		Weapon: &inventory.WeaponProps{Damage: dice.MustParse("1d6"), DamageType: ruleset.Slashing, Skill: ruleset.Swords, Reach: inventory.Melee}}))
	require.NoError(t, items.RegisterItem(&inventory.ItemDef{ID: "leather_armor", Name: "Leather Armor", Category: inventory.CategoryArmor,
		Armor: &inventory.ArmorProps{Slot: inventory.SlotBody, DefenseBonus: 1, ManaPenalty: 1}}))
	require.NoError(t, items.RegisterItem(&inventory.ItemDef{ID: "health_potion", Name: "Health Potion", Category: inventory.CategoryPotion,
		Potion: &inventory.PotionProps{Heal: 10}}))
	talents := ruleset.NewRegistry()
	require.NoError(t, talents.RegisterTalent(&ruleset.TalentDef{ID: "tough_as_nails", Name: "Tough as Nails", Type: ruleset.TalentGeneral,
		Effects: []ruleset.TalentEffect{{Kind: ruleset.EffectMaxHP, Amount: 2}}}))
	return items, talents
}

func TestLoadTemplates(t *testing.T) {
	fsys := fstest.MapFS{
		"npcs/bandit.yaml": {Data: []byte(banditYAML)},
		"npcs/notes.txt":   {Data: []byte("skip")},
	}
	templates, err := npc.LoadTemplates(fsys, "npcs")
	require.NoError(t, err)
	require.Len(t, templates, 1)
	b := templates[0]
	assert.Equal(t, "bandit", b.ID)
	assert.Equal(t, npc.KindMonster, b.Kind)
	assert.Equal(t, ruleset.Scores{Warrior: 3, Rogue: 2}, b.Attributes)
	assert.Equal(t, 100, b.XPValue)
	assert.Equal(t, []string{"sword", "leather_armor"}, b.Equipment)
	require.NotNil(t, b.Loot)
	assert.Equal(t, "health_potion", b.Loot.Items[0].ItemID)
}

func TestLoadTemplates_MissingDirIsEmpty(t *testing.T) {
	templates, err := npc.LoadTemplates(fstest.MapFS{}, "npcs")
	require.NoError(t, err)
	assert.Empty(t, templates)
}

func TestTemplate_Validate(t *testing.T) {
	valid := func() npc.Template {
		return npc.Template{ID: "goblin", Name: "Goblin", Kind: npc.KindMonster, Skills: []string{"Daggers"}}
	}
	tests := []struct {
		name   string
		mutate func(*npc.Template)
		want   string
	}{
		{"valid", func(*npc.Template) {}, ""},
		{"no id", func(t *npc.Template) { t.ID = "" }, "id must not be empty"},
		{"no name", func(t *npc.Template) { t.Name = "" }, "name must not be empty"},
		{"bad kind", func(t *npc.Template) { t.Kind = "dragon" }, "kind"},
		{"negative attribute", func(t *npc.Template) { t.Attributes.Rogue = -1 }, "attributes"},
		{"unknown skill", func(t *npc.Template) { t.Skills = []string{"Juggling"} }, "unknown skill"},
		{"bad resistance type", func(t *npc.Template) { t.Resistances = map[string]float64{"sonic": 0.5} }, "damage type"},
		{"bad resistance fraction", func(t *npc.Template) { t.Resistances = map[string]float64{"fire": 1.5} }, "resistance"},
		{"negative xp", func(t *npc.Template) { t.XPValue = -5 }, "xp_value"},
		{"bad loot", func(t *npc.Template) {
			t.Loot = &npc.LootTable{Items: []npc.ItemDrop{{ItemID: "x", Chance: 0, MinQty: 1, MaxQty: 1}}}
		}, "chance"},
		{"on hit without condition", func(t *npc.Template) { t.OnHit = &npc.OnHit{MinRoll: 4} }, "on_hit condition"},
		{"on hit zero roll", func(t *npc.Template) { t.OnHit = &npc.OnHit{Condition: "poisoned"} }, "min_roll"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tmpl := valid()
			tc.mutate(&tmpl)
			err := tmpl.Validate()
			if tc.want == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestBuild_AppliesStatBlock(t *testing.T) {
	items, talents := registries(t)
	tmpl, err := npc.LoadTemplateFromBytes([]byte(banditYAML))
	require.NoError(t, err)
	c, err := npc.Build(tmpl, items, talents, ruleset.DefaultRules())
	require.NoError(t, err)
	assert.Equal(t, "Bandit", c.Name())
	assert.Equal(t, "bandit", c.TemplateID())
	assert.Equal(t, 11, c.MaxHP())
	assert.True(t, c.HasSkill(ruleset.Thievery))
	assert.True(t, c.HasTalent("tough_as_nails"))
	assert.Equal(t, 0.5, c.Resistance(ruleset.Poison))
	assert.Equal(t, "sword", c.Weapon().ID)
	assert.Equal(t, 7, c.TotalDefense())
	assert.Equal(t, 2, c.Inventory().Len())
}

func TestBuild_UnknownReferences(t *testing.T) {
	items, talents := registries(t)
	_, err := npc.Build(&npc.Template{ID: "x", Name: "X", Kind: npc.KindNPC, Talents: []string{"flight"}},
		items, talents, ruleset.DefaultRules())
	require.ErrorIs(t, err, ruleset.ErrUnknownTalent)

	_, err = npc.Build(&npc.Template{ID: "x", Name: "X", Kind: npc.KindNPC, Equipment: []string{"halberd"}},
		items, talents, ruleset.DefaultRules())
	require.ErrorIs(t, err, inventory.ErrUnknownItem)

	_, err = npc.Build(&npc.Template{ID: "x", Name: "X", Kind: npc.KindNPC, Equipment: []string{"health_potion"}},
		items, talents, ruleset.DefaultRules())
	require.Error(t, err)
}

func TestGenerateLoot_Scripted(t *testing.T) {
	lt := npc.LootTable{Items: []npc.ItemDrop{
		{ItemID: "health_potion", Chance: 0.5, MinQty: 1, MaxQty: 3},
		{ItemID: "sword", Chance: 0.5, MinQty: 1, MaxQty: 1},
	}}
	require.NoError(t, lt.Validate())
	// Potion drops (0 < 5000) with quantity 1+1; sword misses (5000 >= 5000).
	src := dice.NewScriptedSource(1, 2, 5001)
	got := npc.GenerateLoot(lt, src)
	assert.Equal(t, []npc.LootItem{{ItemDefID: "health_potion", Quantity: 2}}, got.Items)
	assert.Zero(t, src.Remaining())
}

func TestGenerateLoot_CertainDrop(t *testing.T) {
	lt := npc.LootTable{Items: []npc.ItemDrop{{ItemID: "sword", Chance: 1, MinQty: 1, MaxQty: 1}}}
	got := npc.GenerateLoot(lt, dice.NewScriptedSource(10000))
	require.Len(t, got.Items, 1)
}

func TestLootTable_Validate(t *testing.T) {
	assert.NoError(t, (&npc.LootTable{}).Validate())
	assert.Error(t, (&npc.LootTable{Items: []npc.ItemDrop{{Chance: 0.5, MinQty: 1, MaxQty: 1}}}).Validate())
	assert.Error(t, (&npc.LootTable{Items: []npc.ItemDrop{{ItemID: "x", Chance: 1.5, MinQty: 1, MaxQty: 1}}}).Validate())
	assert.Error(t, (&npc.LootTable{Items: []npc.ItemDrop{{ItemID: "x", Chance: 0.5, MinQty: 0, MaxQty: 1}}}).Validate())
	assert.Error(t, (&npc.LootTable{Items: []npc.ItemDrop{{ItemID: "x", Chance: 0.5, MinQty: 5, MaxQty: 2}}}).Validate())
}

func TestProperty_GenerateLoot_QuantityInRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		minQty := rapid.IntRange(1, 5).Draw(rt, "min")
		maxQty := rapid.IntRange(minQty, 10).Draw(rt, "max")
		chance := rapid.Float64Range(0.01, 1.0).Draw(rt, "chance")
		lt := npc.LootTable{Items: []npc.ItemDrop{{ItemID: "potion", Chance: chance, MinQty: minQty, MaxQty: maxQty}}}
		result := npc.GenerateLoot(lt, dice.NewSeededSource(rapid.Int64().Draw(rt, "seed")))
		for _, item := range result.Items {
			assert.GreaterOrEqual(rt, item.Quantity, minQty)
			assert.LessOrEqual(rt, item.Quantity, maxQty)
		}
	})
}

func TestManager_SpawnAndTrack(t *testing.T) {
	items, talents := registries(t)
	m := npc.NewManager(items, talents, ruleset.DefaultRules())
	tmpl, err := npc.LoadTemplateFromBytes([]byte(banditYAML))
	require.NoError(t, err)
	require.NoError(t, m.AddTemplate(tmpl))
	require.Error(t, m.AddTemplate(tmpl))

	a, err := m.Spawn("bandit")
	require.NoError(t, err)
	b, err := m.Spawn("bandit")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotSame(t, a.Character, b.Character)

	got, ok := m.Get(a.ID)
	require.True(t, ok)
	assert.Same(t, a, got)
	assert.Same(t, a, m.Find("band"))
	assert.Nil(t, m.Find("goblin"))

	a.Character.TakeDamage(100, ruleset.Slashing)
	assert.Equal(t, []*npc.Instance{b}, m.Living())
	assert.Same(t, b, m.Find("BAND"))

	require.NoError(t, m.Remove(a.ID))
	require.Error(t, m.Remove(a.ID))

	_, err = m.Spawn("dragon")
	require.Error(t, err)
	assert.Len(t, m.Templates(), 1)
}

func TestInstance_HealthDescription(t *testing.T) {
	items, talents := registries(t)
	tmpl, err := npc.LoadTemplateFromBytes([]byte(banditYAML))
	require.NoError(t, err)
	c, err := npc.Build(tmpl, items, talents, ruleset.DefaultRules())
	require.NoError(t, err)
	inst := &npc.Instance{ID: "bandit-1", Template: tmpl, Character: c}
	// MaxHP 11, slashing unresisted.
	steps := []struct {
		damage int
		want   string
	}{
		{0, "unharmed"},
		{1, "barely scratched"},
		{3, "lightly wounded"},
		{2, "seriously wounded"},
		{3, "critically wounded"},
		{5, "dead"},
	}
	for _, s := range steps {
		c.TakeDamage(s.damage, ruleset.Slashing)
		assert.Equal(t, s.want, inst.HealthDescription(), "after %d damage, hp %d", s.damage, c.HP())
	}
}
