package character

import "github.com/cory-johannsen/wrm/internal/game/ruleset"

// AcquireTalent records t and applies its effects once.
//
// Precondition: t must not be nil.
// Postcondition: Returns false with no change if t.ID is already held.
func (c *Character) AcquireTalent(t *ruleset.TalentDef) bool {
	if c.HasTalent(t.ID) {
		return false
	}
	c.talents = append(c.talents, t.ID)
	for _, e := range t.Effects {
		c.applyEffect(e)
	}
	return true
}

func (c *Character) applyEffect(e ruleset.TalentEffect) {
	switch e.Kind {
	case ruleset.EffectMaxHP:
		c.maxHP = max(1, c.maxHP+e.Amount)
		c.hp = min(max(0, c.hp+e.Amount), c.maxHP)
	case ruleset.EffectRangedAttack:
		c.rangedBonus += e.Amount
	case ruleset.EffectAttribute:
		// Error is impossible for a validated effect.
		c.attrs, _ = c.attrs.Add(e.Attribute, e.Amount)
	case ruleset.EffectSkillBonus:
		c.skillBonus[e.Skill] += e.Amount
	case ruleset.EffectMeleeDamage:
		c.meleeBonus += e.Amount
	case ruleset.EffectNoMagic:
		c.attrs.Mage = 0
		c.maxMana = 0
		c.mana = 0
	case ruleset.EffectBloodMagic:
		c.bloodMagic = true
	case ruleset.EffectResistance:
		c.addResistance(e.DamageType, e.Fraction)
	}
}

// HasTalent reports whether the talent with id is held.
func (c *Character) HasTalent(id string) bool {
	for _, t := range c.talents {
		if t == id {
			return true
		}
	}
	return false
}

// Talents returns held talent IDs in acquisition order.
func (c *Character) Talents() []string {
	return append([]string(nil), c.talents...)
}

// CanUseMagic reports whether the entity has any mage aptitude.
func (c *Character) CanUseMagic() bool { return c.attrs.Mage > 0 }

// BloodMagic reports whether the entity may contribute HP to rituals.
func (c *Character) BloodMagic() bool { return c.bloodMagic }

// RangedAttackBonus returns the talent bonus to ranged attack checks.
func (c *Character) RangedAttackBonus() int { return c.rangedBonus }

// SkillBonus returns the sum of talent bonuses keyed to any of skills, plus
// the equipped implement's bonus when skills include Thaumaturgy.
// Every matching bonus applies independently.
func (c *Character) SkillBonus(skills []ruleset.Skill) int {
	total := 0
	for _, sk := range skills {
		total += c.skillBonus[sk]
		if sk == ruleset.Thaumaturgy {
			total += c.ThaumaturgyBonus()
		}
	}
	return total
}
