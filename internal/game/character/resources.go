package character

import (
	"math"

	"github.com/cory-johannsen/wrm/internal/game/ruleset"
)

// HP returns current hit points.
func (c *Character) HP() int { return c.hp }

// MaxHP returns maximum hit points.
func (c *Character) MaxHP() int { return c.maxHP }

// Mana returns current mana.
func (c *Character) Mana() int { return c.mana }

// MaxMana returns maximum mana.
func (c *Character) MaxMana() int { return c.maxMana }

// Fate returns the remaining fate points.
func (c *Character) Fate() int { return c.fate }

// IsDead reports whether HP has reached zero. A dead entity is not a valid combat target.
func (c *Character) IsDead() bool { return c.hp <= 0 }

// SeriouslyWounded reports whether current HP is at or below half of max HP.
func (c *Character) SeriouslyWounded() bool { return c.hp*2 <= c.maxHP }

// ReduceDamage applies the resistance against dt to amount.
//
// Postcondition: 0 <= result <= max(0, amount).
func (c *Character) ReduceDamage(amount int, dt ruleset.DamageType) int {
	if amount <= 0 {
		return 0
	}
	res := c.resistances[dt]
	if res <= 0 {
		return amount
	}
	return int(math.Floor(float64(amount)*(1-res) + 1e-9))
}

// TakeDamage applies amount of type dt after resistance and returns the HP lost.
//
// Postcondition: HP() >= 0.
func (c *Character) TakeDamage(amount int, dt ruleset.DamageType) int {
	dmg := min(c.ReduceDamage(amount, dt), c.hp)
	c.hp -= dmg
	return dmg
}

// Heal restores up to amount HP and returns the HP gained.
//
// Postcondition: HP() <= MaxHP().
func (c *Character) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	gain := min(amount, c.maxHP-c.hp)
	c.hp += gain
	return gain
}

// SpendMana deducts n mana.
//
// Postcondition: Returns false with no change if Mana() < n.
func (c *Character) SpendMana(n int) bool {
	if n < 0 || c.mana < n {
		return false
	}
	c.mana -= n
	return true
}

// RestoreMana adds up to n mana and returns the amount gained.
func (c *Character) RestoreMana(n int) int {
	if n <= 0 {
		return 0
	}
	gain := min(n, c.maxMana-c.mana)
	c.mana += gain
	return gain
}

// SpendFate deducts one fate point.
//
// Postcondition: Returns false with no change if Fate() == 0.
func (c *Character) SpendFate() bool {
	if c.fate <= 0 {
		return false
	}
	c.fate--
	return true
}

// SacrificeHP deducts n HP for blood magic. The entity must keep at least 1 HP.
//
// Postcondition: Returns false with no change unless HP() > n.
func (c *Character) SacrificeHP(n int) bool {
	if n < 0 || c.hp <= n {
		return false
	}
	c.hp -= n
	return true
}

// RestAll refills HP and mana to their maxima.
func (c *Character) RestAll() {
	c.hp = c.maxHP
	c.mana = c.maxMana
}

// ConditionPenalty returns the total check penalty of active status effects.
func (c *Character) ConditionPenalty() int { return c.conditions.CheckPenalty() }
