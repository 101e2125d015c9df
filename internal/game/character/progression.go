package character

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/wrm/internal/game/dice"
	"github.com/cory-johannsen/wrm/internal/game/ruleset"
)

// ErrNoAdvancement is returned when advancing without an unspent level-up.
var ErrNoAdvancement = errors.New("no advancement available")

// Level returns the current level.
func (c *Character) Level() int { return c.level }

// Experience returns experience accumulated toward the next level.
func (c *Character) Experience() int { return c.xp }

// Threshold returns the experience needed for the next level.
func (c *Character) Threshold() int { return c.threshold }

// PendingAdvances returns the number of unspent level-ups.
func (c *Character) PendingAdvances() int { return c.pendingAdvances }

// AddExperience accumulates amount. While experience meets the threshold,
// the threshold is subtracted, the level increments, and the threshold grows
// by the rules' growth factor, truncated.
//
// Postcondition: Returns the number of levels gained; each grants one advancement.
func (c *Character) AddExperience(amount int) int {
	if amount <= 0 {
		return 0
	}
	c.xp += amount
	gained := 0
	for c.xp >= c.threshold {
		c.xp -= c.threshold
		c.level++
		c.threshold = max(1, int(float64(c.threshold)*c.rules.XPGrowth))
		gained++
	}
	c.pendingAdvances += gained
	return gained
}

func (c *Character) spendAdvance() error {
	if c.pendingAdvances <= 0 {
		return ErrNoAdvancement
	}
	c.pendingAdvances--
	return nil
}

// RaiseAttribute spends an advancement to add 1 to attr.
func (c *Character) RaiseAttribute(attr ruleset.Attribute) error {
	if !attr.Valid() {
		return fmt.Errorf("%w: %d", ruleset.ErrInvalidAttribute, int(attr))
	}
	if err := c.spendAdvance(); err != nil {
		return err
	}
	c.attrs, _ = c.attrs.Add(attr, 1)
	return nil
}

// IncreaseMaxHP spends an advancement to add one standard die to max HP and refill HP.
//
// Postcondition: Returns the amount rolled.
func (c *Character) IncreaseMaxHP(src dice.Source) (int, error) {
	if err := c.spendAdvance(); err != nil {
		return 0, err
	}
	n := dice.Draw(src, c.rules.DieSides)
	c.maxHP += n
	c.hp = c.maxHP
	return n, nil
}

// IncreaseMaxMana spends an advancement to add one standard die to max mana and refill mana.
//
// Postcondition: Returns the amount rolled.
func (c *Character) IncreaseMaxMana(src dice.Source) (int, error) {
	if err := c.spendAdvance(); err != nil {
		return 0, err
	}
	n := dice.Draw(src, c.rules.DieSides)
	c.maxMana += n
	c.mana = c.maxMana
	return n, nil
}

// GainSkill spends an advancement to learn sk. The governing attribute must be > 0.
func (c *Character) GainSkill(sk ruleset.Skill) error {
	if !sk.Valid() {
		return fmt.Errorf("%w: %q", ruleset.ErrUnknownSkill, sk)
	}
	if c.HasSkill(sk) {
		return fmt.Errorf("skill %q already known", sk)
	}
	if v, _ := c.attrs.Get(sk.Attribute()); v <= 0 {
		return fmt.Errorf("skill %q requires %s > 0", sk, sk.Attribute())
	}
	if err := c.spendAdvance(); err != nil {
		return err
	}
	c.addSkill(sk)
	return nil
}

// GainTalent spends an advancement to acquire a general talent.
func (c *Character) GainTalent(t *ruleset.TalentDef) error {
	if t.Type != ruleset.TalentGeneral {
		return fmt.Errorf("talent %q is not a general talent", t.ID)
	}
	if c.HasTalent(t.ID) {
		return fmt.Errorf("talent %q already held", t.ID)
	}
	if err := c.spendAdvance(); err != nil {
		return err
	}
	c.AcquireTalent(t)
	return nil
}

// LearnSpell spends an advancement to add spellID to the spellbook.
func (c *Character) LearnSpell(spellID string) error {
	if c.Knows(spellID) {
		return fmt.Errorf("spell %q already known", spellID)
	}
	if err := c.spendAdvance(); err != nil {
		return err
	}
	c.Learn(spellID)
	return nil
}
