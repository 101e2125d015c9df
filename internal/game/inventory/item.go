// Package inventory provides item definitions, their registry and loaders,
// and per-entity item instances and inventories.
package inventory

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/wrm/internal/game/dice"
	"github.com/cory-johannsen/wrm/internal/game/ruleset"
)

var (
	// ErrUnknownItem is returned when an item ID is not registered.
	ErrUnknownItem = errors.New("unknown item")
	// ErrNotAWeapon is returned when a weapon reference names a non-weapon item.
	ErrNotAWeapon = errors.New("item is not a weapon")
)

// Category classifies an item definition.
type Category string

const (
	CategoryWeapon    Category = "weapon"
	CategoryArmor     Category = "armor"
	CategoryPotion    Category = "potion"
	CategoryImplement Category = "implement"
)

// Slot is an equipment slot on an entity.
type Slot string

const (
	SlotWeapon    Slot = "weapon"
	SlotBody      Slot = "body"
	SlotShield    Slot = "shield"
	SlotHands     Slot = "hands"
	SlotImplement Slot = "implement"
)

// Slots lists every equipment slot in display order.
var Slots = []Slot{SlotWeapon, SlotBody, SlotShield, SlotHands, SlotImplement}

// Reach distinguishes melee from ranged weapons.
type Reach string

const (
	Melee  Reach = "melee"
	Ranged Reach = "ranged"
)

// WeaponProps are the weapon-specific attributes of an item.
type WeaponProps struct {
	Damage       dice.Expression    `yaml:"damage"`
	DamageType   ruleset.DamageType `yaml:"damage_type"`
	Skill        ruleset.Skill      `yaml:"skill"`
	Reach        Reach              `yaml:"reach"`
	TwoHanded    bool               `yaml:"two_handed"`
	IgnoresArmor bool               `yaml:"ignores_armor"`
	// MeleeDamage is a passive bonus to melee damage while equipped.
	MeleeDamage int `yaml:"melee_damage"`
}

// IsRanged reports whether the weapon attacks at range.
func (w *WeaponProps) IsRanged() bool { return w.Reach == Ranged }

// ArmorProps are the armor-specific attributes of an item.
type ArmorProps struct {
	Slot         Slot `yaml:"slot"` // body | shield | hands
	DefenseBonus int  `yaml:"defense_bonus"`
	// ManaPenalty is added to the mana cost of every spell cast while equipped.
	ManaPenalty int `yaml:"mana_penalty"`
}

// ImplementProps are the attributes of a magic implement.
type ImplementProps struct {
	MaxMana          int      `yaml:"max_mana"`
	ThaumaturgyBonus int      `yaml:"thaumaturgy_bonus"`
	Spells           []string `yaml:"spells"`
}

// Stores reports whether the implement's mana pool may fuel spellID.
func (p *ImplementProps) Stores(spellID string) bool {
	for _, s := range p.Spells {
		if s == spellID {
			return true
		}
	}
	return false
}

// PotionProps are the attributes of a consumable potion.
type PotionProps struct {
	Heal     int             `yaml:"heal"`
	HealDice dice.Expression `yaml:"heal_dice,omitempty"`
}

// ItemDef defines the immutable properties of an item loaded from YAML.
// Exactly the block matching Category is set.
type ItemDef struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Category    Category        `yaml:"category"`
	Value       int             `yaml:"value"`
	Weapon      *WeaponProps    `yaml:"weapon,omitempty"`
	Armor       *ArmorProps     `yaml:"armor,omitempty"`
	Implement   *ImplementProps `yaml:"implement,omitempty"`
	Potion      *PotionProps    `yaml:"potion,omitempty"`
}

// Slot returns the equipment slot the item occupies, or false if it cannot be equipped.
func (d *ItemDef) Slot() (Slot, bool) {
	switch d.Category {
	case CategoryWeapon:
		return SlotWeapon, true
	case CategoryArmor:
		return d.Armor.Slot, true
	case CategoryImplement:
		return SlotImplement, true
	default:
		return "", false
	}
}

// Validate checks that the ItemDef satisfies its invariants.
//
// Precondition: d is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (d *ItemDef) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	switch d.Category {
	case CategoryWeapon:
		errs = append(errs, d.validateWeapon()...)
	case CategoryArmor:
		if d.Armor == nil {
			errs = append(errs, errors.New("armor block is required for category armor"))
		} else if d.Armor.Slot != SlotBody && d.Armor.Slot != SlotShield && d.Armor.Slot != SlotHands {
			errs = append(errs, fmt.Errorf("armor slot must be body, shield or hands; got %q", d.Armor.Slot))
		}
	case CategoryImplement:
		if d.Implement == nil {
			errs = append(errs, errors.New("implement block is required for category implement"))
		} else if d.Implement.MaxMana < 0 {
			errs = append(errs, errors.New("implement max_mana must be >= 0"))
		}
	case CategoryPotion:
		if d.Potion == nil {
			errs = append(errs, errors.New("potion block is required for category potion"))
		} else if d.Potion.Heal < 0 {
			errs = append(errs, errors.New("potion heal must be >= 0"))
		}
	default:
		errs = append(errs, fmt.Errorf("category must be one of weapon, armor, potion, implement; got %q", d.Category))
	}
	if len(errs) > 0 {
		return fmt.Errorf("item %q validation failed: %w", d.ID, errors.Join(errs...))
	}
	return nil
}

func (d *ItemDef) validateWeapon() []error {
	w := d.Weapon
	if w == nil {
		return []error{errors.New("weapon block is required for category weapon")}
	}
	var errs []error
	if w.Damage.IsZero() {
		errs = append(errs, errors.New("weapon damage must be a dice expression"))
	}
	if !w.DamageType.Valid() {
		errs = append(errs, fmt.Errorf("weapon damage_type: %w", ruleset.ErrInvalidDamageType))
	}
	if !w.Skill.Valid() {
		errs = append(errs, fmt.Errorf("weapon skill: %w: %q", ruleset.ErrUnknownSkill, w.Skill))
	}
	if w.Reach != Melee && w.Reach != Ranged {
		errs = append(errs, fmt.Errorf("weapon reach must be melee or ranged; got %q", w.Reach))
	}
	return errs
}

// UnarmedStrike is the weapon used by an entity with nothing in its weapon slot.
var UnarmedStrike = &ItemDef{
	ID:       "unarmed_strike",
	Name:     "Unarmed Strike",
	Category: CategoryWeapon,
	Weapon: &WeaponProps{
		Damage:     dice.MustParse("1d6-3"),
		DamageType: ruleset.Bludgeoning,
		Skill:      ruleset.Unarmed,
		Reach:      Melee,
	},
}

// LoadItems reads every YAML file in dir of fsys, parses each as an ItemDef,
// validates it, and returns the collected slice.
// Damage and healing formulas are parsed here, once.
//
// Postcondition: returns all valid ItemDefs or the first encountered error.
func LoadItems(fsys fs.FS, dir string) ([]*ItemDef, error) {
	var items []*ItemDef
	err := ruleset.EachYAML(fsys, dir, func(name string, data []byte) error {
		var d ItemDef
		if err := yaml.Unmarshal(data, &d); err != nil {
			return fmt.Errorf("LoadItems: cannot parse file %q: %w", name, err)
		}
		if err := d.Validate(); err != nil {
			return fmt.Errorf("LoadItems: invalid item in %q: %w", name, err)
		}
		items = append(items, &d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
