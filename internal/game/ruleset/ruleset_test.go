package ruleset_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/wrm/internal/game/ruleset"
)

func TestParseAttribute(t *testing.T) {
	for _, a := range ruleset.Attributes {
		got, err := ruleset.ParseAttribute(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	_, err := ruleset.ParseAttribute("bard")
	assert.ErrorIs(t, err, ruleset.ErrInvalidAttribute)
}

func TestAttribute_YAML(t *testing.T) {
	var v struct {
		Attr ruleset.Attribute `yaml:"attr"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("attr: rogue\n"), &v))
	assert.Equal(t, ruleset.Rogue, v.Attr)

	err := yaml.Unmarshal([]byte("attr: cleric\n"), &v)
	assert.ErrorIs(t, err, ruleset.ErrInvalidAttribute)

	out, err := yaml.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, "attr: rogue\n", string(out))
}

func TestScores_GetInvalid(t *testing.T) {
	_, err := ruleset.Scores{}.Get(ruleset.AttributeUnknown)
	assert.ErrorIs(t, err, ruleset.ErrInvalidAttribute)
}

func TestProperty_ScoresAdd_NeverNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := ruleset.Scores{
			Warrior: rapid.IntRange(0, 10).Draw(rt, "w"),
			Rogue:   rapid.IntRange(0, 10).Draw(rt, "r"),
			Mage:    rapid.IntRange(0, 10).Draw(rt, "m"),
		}
		attr := rapid.SampledFrom(ruleset.Attributes).Draw(rt, "attr")
		delta := rapid.IntRange(-20, 20).Draw(rt, "delta")
		got, err := s.Add(attr, delta)
		require.NoError(rt, err)
		v, _ := got.Get(attr)
		assert.GreaterOrEqual(rt, v, 0)
	})
}

func TestParseSkill(t *testing.T) {
	sk, err := ruleset.ParseSkill("Swords")
	require.NoError(t, err)
	assert.Equal(t, ruleset.Warrior, sk.Attribute())

	_, err = ruleset.ParseSkill("Basket Weaving")
	assert.ErrorIs(t, err, ruleset.ErrUnknownSkill)

	_, err = ruleset.ParseSkills([]string{"Bows", "swords"})
	assert.ErrorIs(t, err, ruleset.ErrUnknownSkill)
}

func TestSkillsFor(t *testing.T) {
	assert.Equal(t, []ruleset.Skill{
		ruleset.Alchemy, ruleset.Awareness, ruleset.Herbalism, ruleset.Lore, ruleset.Thaumaturgy,
	}, ruleset.SkillsFor(ruleset.Mage))
	assert.Len(t, ruleset.SkillsFor(ruleset.Rogue), 6)
	assert.Empty(t, ruleset.SkillsFor(ruleset.AttributeUnknown))
}

func TestParseDamageType(t *testing.T) {
	d, err := ruleset.ParseDamageType("poison")
	require.NoError(t, err)
	assert.Equal(t, ruleset.Poison, d)
	assert.Equal(t, "poison", d.String())

	_, err = ruleset.ParseDamageType("psychic")
	assert.ErrorIs(t, err, ruleset.ErrInvalidDamageType)
}

func TestRules_Validate(t *testing.T) {
	require.NoError(t, ruleset.DefaultRules().Validate())

	r := ruleset.DefaultRules()
	r.DieSides = 1
	r.XPGrowth = 0.5
	err := r.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "die_sides")
	assert.Contains(t, err.Error(), "xp_growth")
}

func TestLoadTalents_ParsesYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"talents/marksman.yaml": {Data: []byte(`
id: marksman
name: Marksman
type: general
effects:
  - kind: ranged_attack
    amount: 2
`)},
		"talents/scholar.yaml": {Data: []byte(`
id: scholar
name: Scholar
type: general
effects:
  - kind: skill_bonus
    skill: Lore
    amount: 2
`)},
		"talents/README.txt": {Data: []byte("ignored")},
	}
	talents, err := ruleset.LoadTalents(fsys, "talents")
	require.NoError(t, err)
	require.Len(t, talents, 2)
	assert.Equal(t, "marksman", talents[0].ID)
	assert.Equal(t, ruleset.EffectRangedAttack, talents[0].Effects[0].Kind)
	assert.Equal(t, ruleset.Lore, talents[1].Effects[0].Skill)
}

func TestLoadTalents_RejectsInvalidEffect(t *testing.T) {
	fsys := fstest.MapFS{
		"talents/bad.yaml": {Data: []byte(`
id: bad
name: Bad
type: general
effects:
  - kind: resistance
    damage_type: fire
    fraction: 1.5
`)},
	}
	_, err := ruleset.LoadTalents(fsys, "talents")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fraction")
}

func TestLoadRaces_MissingDirIsEmpty(t *testing.T) {
	races, err := ruleset.LoadRaces(fstest.MapFS{}, "races")
	require.NoError(t, err)
	assert.Empty(t, races)
}

func TestRegistry_RaceRequiresKnownTalents(t *testing.T) {
	r := ruleset.NewRegistry()
	require.NoError(t, r.RegisterTalent(&ruleset.TalentDef{ID: "sixth_sense", Name: "Sixth Sense", Type: ruleset.TalentRacial}))
	require.Error(t, r.RegisterTalent(&ruleset.TalentDef{ID: "sixth_sense"}))

	require.ErrorIs(t, r.RegisterRace(&ruleset.Race{ID: "elf", Name: "Elf", Talents: []string{"missing"}}), ruleset.ErrUnknownTalent)
	require.NoError(t, r.RegisterRace(&ruleset.Race{ID: "elf", Name: "Elf", Talents: []string{"sixth_sense"}}))

	race, ok := r.Race("elf")
	require.True(t, ok)
	assert.Equal(t, "Elf", race.Name)
	assert.Empty(t, r.GeneralTalents())
}

func TestRegistry_Lookup(t *testing.T) {
	r := ruleset.NewRegistry()
	require.NoError(t, r.RegisterTalent(&ruleset.TalentDef{ID: "scholar", Name: "Scholar", Type: ruleset.TalentGeneral}))

	got, err := r.Lookup("scholar")
	require.NoError(t, err)
	assert.Equal(t, "Scholar", got.Name)

	_, err = r.Lookup("nope")
	assert.ErrorIs(t, err, ruleset.ErrUnknownTalent)
}
