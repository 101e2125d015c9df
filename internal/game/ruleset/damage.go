package ruleset

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDamageType is returned for a damage type outside the closed set.
var ErrInvalidDamageType = errors.New("invalid damage type")

// DamageType classifies incoming damage for resistance lookups.
// The zero value is intentionally invalid.
type DamageType int

const (
	DamageUnknown DamageType = iota
	Slashing
	Piercing
	Bludgeoning
	Fire
	Cold
	Poison
	Arcane
)

var damageNames = map[DamageType]string{
	Slashing:    "slashing",
	Piercing:    "piercing",
	Bludgeoning: "bludgeoning",
	Fire:        "fire",
	Cold:        "cold",
	Poison:      "poison",
	Arcane:      "arcane",
}

// String returns the damage type key.
func (d DamageType) String() string {
	if n, ok := damageNames[d]; ok {
		return n
	}
	return "unknown"
}

// Valid reports whether d is a member of the closed set.
func (d DamageType) Valid() bool {
	_, ok := damageNames[d]
	return ok
}

// ParseDamageType converts a key into a DamageType.
//
// Postcondition: Returns a valid DamageType, or an error wrapping ErrInvalidDamageType.
func ParseDamageType(s string) (DamageType, error) {
	for d, n := range damageNames {
		if n == s {
			return d, nil
		}
	}
	return DamageUnknown, fmt.Errorf("%w: %q", ErrInvalidDamageType, s)
}

// UnmarshalYAML decodes a damage type key.
func (d *DamageType) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseDamageType(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML encodes the damage type key.
func (d DamageType) MarshalYAML() (any, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDamageType, int(d))
	}
	return d.String(), nil
}
