package character

import (
	"fmt"

	"github.com/cory-johannsen/wrm/internal/game/dice"
	"github.com/cory-johannsen/wrm/internal/game/inventory"
)

// Items returns the item registry the entity resolves definitions against.
func (c *Character) Items() *inventory.Registry { return c.items }

// AddItem places inst in the inventory.
//
// Precondition: inst must not be nil.
func (c *Character) AddItem(inst *inventory.ItemInstance) {
	c.inv.Add(inst)
}

// RemoveItem takes the instance out of the inventory, unequipping it first.
//
// Postcondition: Returns an error wrapping ErrNotOwned if the instance is absent.
func (c *Character) RemoveItem(instanceID string) (*inventory.ItemInstance, error) {
	if _, ok := c.inv.Get(instanceID); !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotOwned, instanceID)
	}
	for slot, it := range c.equipped {
		if it.InstanceID == instanceID {
			delete(c.equipped, slot)
		}
	}
	inst, _ := c.inv.Remove(instanceID)
	return inst, nil
}

// Equip places an owned instance in the slot its category routes to,
// evicting any prior occupant. Equipment bonuses are derived from the slots
// on every query, so eviction fully reverts the prior item.
//
// Postcondition: On error the equipment is unchanged. ErrNotOwned and
// ErrNotEquippable are recoverable; inventory.ErrUnknownItem indicates bad content.
func (c *Character) Equip(instanceID string) error {
	inst, ok := c.inv.Get(instanceID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotOwned, instanceID)
	}
	def, err := c.items.Lookup(inst.DefID)
	if err != nil {
		return err
	}
	slot, ok := def.Slot()
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotEquippable, def.ID)
	}
	c.equipped[slot] = inst
	return nil
}

// EquipDef equips the first owned instance of defID.
func (c *Character) EquipDef(defID string) error {
	inst, ok := c.inv.FindByDef(defID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotOwned, defID)
	}
	return c.Equip(inst.InstanceID)
}

// Unequip empties the slot holding instanceID.
//
// Postcondition: Returns an error wrapping ErrNotEquipped with no change if it is not equipped.
func (c *Character) Unequip(instanceID string) error {
	for slot, it := range c.equipped {
		if it.InstanceID == instanceID {
			delete(c.equipped, slot)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrNotEquipped, instanceID)
}

// Equipped returns the instance in slot.
func (c *Character) Equipped(slot inventory.Slot) (*inventory.ItemInstance, bool) {
	it, ok := c.equipped[slot]
	return it, ok
}

func (c *Character) equippedDef(slot inventory.Slot) *inventory.ItemDef {
	inst, ok := c.equipped[slot]
	if !ok {
		return nil
	}
	def, ok := c.items.Item(inst.DefID)
	if !ok {
		return nil
	}
	return def
}

// Weapon returns the equipped weapon definition, or UnarmedStrike.
func (c *Character) Weapon() *inventory.ItemDef {
	if def := c.equippedDef(inventory.SlotWeapon); def != nil && def.Weapon != nil {
		return def
	}
	return inventory.UnarmedStrike
}

// TotalDefense returns base defense plus body, hand, and shield armor bonuses.
// The shield bonus is voided while a two-handed weapon is equipped.
func (c *Character) TotalDefense() int {
	total := c.BaseDefense()
	for _, slot := range []inventory.Slot{inventory.SlotBody, inventory.SlotHands, inventory.SlotShield} {
		def := c.equippedDef(slot)
		if def == nil || def.Armor == nil {
			continue
		}
		if slot == inventory.SlotShield && c.Weapon().Weapon.TwoHanded {
			continue
		}
		total += def.Armor.DefenseBonus
	}
	return total
}

// ManaPenalty returns the summed mana penalty of equipped armor and shield.
func (c *Character) ManaPenalty() int {
	total := 0
	for _, slot := range []inventory.Slot{inventory.SlotBody, inventory.SlotHands, inventory.SlotShield} {
		if def := c.equippedDef(slot); def != nil && def.Armor != nil {
			total += def.Armor.ManaPenalty
		}
	}
	return total
}

// MeleeDamageBonus returns talent plus equipped-weapon melee damage bonuses.
func (c *Character) MeleeDamageBonus() int {
	total := c.meleeBonus
	if def := c.equippedDef(inventory.SlotWeapon); def != nil && def.Weapon != nil {
		total += def.Weapon.MeleeDamage
	}
	return total
}

// Implement returns the equipped implement instance and its definition.
func (c *Character) Implement() (*inventory.ItemInstance, *inventory.ItemDef, bool) {
	def := c.equippedDef(inventory.SlotImplement)
	if def == nil || def.Implement == nil {
		return nil, nil, false
	}
	return c.equipped[inventory.SlotImplement], def, true
}

// ThaumaturgyBonus returns the equipped implement's bonus to thaumaturgy checks.
func (c *Character) ThaumaturgyBonus() int {
	if _, def, ok := c.Implement(); ok {
		return def.Implement.ThaumaturgyBonus
	}
	return 0
}

// UsePotion consumes an owned potion instance and heals by its flat amount
// plus its healing dice rolled with src.
//
// Postcondition: Returns the HP gained; the instance is removed from the inventory.
func (c *Character) UsePotion(instanceID string, src dice.Source) (int, error) {
	inst, ok := c.inv.Get(instanceID)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotOwned, instanceID)
	}
	def, err := c.items.Lookup(inst.DefID)
	if err != nil {
		return 0, err
	}
	if def.Potion == nil {
		return 0, fmt.Errorf("%w: %q", ErrNotAPotion, def.ID)
	}
	amount := def.Potion.Heal
	if !def.Potion.HealDice.IsZero() {
		amount += dice.Roll(def.Potion.HealDice, src).Total()
	}
	_, _ = c.RemoveItem(instanceID)
	return c.Heal(amount), nil
}

// MeleeDamageWith returns talent melee bonuses plus the melee bonus of def,
// which need not be equipped.
//
// Precondition: def must be a weapon.
func (c *Character) MeleeDamageWith(def *inventory.ItemDef) int {
	return c.meleeBonus + def.Weapon.MeleeDamage
}
