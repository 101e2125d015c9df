// Package ruleset defines the closed vocabularies and numeric rules of the
// Warrior, Rogue & Mage system: attributes, skills, damage types, talents,
// races, and the tunable rules table.
package ruleset

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidAttribute is returned when an attribute reference is not one of
// warrior, rogue, or mage.
var ErrInvalidAttribute = errors.New("invalid attribute")

// Attribute identifies one of the three core scores.
// The zero value is intentionally invalid.
type Attribute int

const (
	AttributeUnknown Attribute = iota
	Warrior
	Rogue
	Mage
)

// Attributes lists every valid attribute in display order.
var Attributes = []Attribute{Warrior, Rogue, Mage}

// String returns the attribute key.
func (a Attribute) String() string {
	switch a {
	case Warrior:
		return "warrior"
	case Rogue:
		return "rogue"
	case Mage:
		return "mage"
	default:
		return "unknown"
	}
}

// Valid reports whether a is one of Warrior, Rogue, or Mage.
func (a Attribute) Valid() bool {
	return a == Warrior || a == Rogue || a == Mage
}

// ParseAttribute converts an attribute key into an Attribute.
//
// Postcondition: Returns a valid Attribute, or an error wrapping ErrInvalidAttribute.
func ParseAttribute(s string) (Attribute, error) {
	switch s {
	case "warrior":
		return Warrior, nil
	case "rogue":
		return Rogue, nil
	case "mage":
		return Mage, nil
	default:
		return AttributeUnknown, fmt.Errorf("%w: %q", ErrInvalidAttribute, s)
	}
}

// UnmarshalYAML decodes an attribute key.
func (a *Attribute) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseAttribute(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalYAML encodes the attribute key.
func (a Attribute) MarshalYAML() (any, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAttribute, int(a))
	}
	return a.String(), nil
}

// Scores holds the three attribute scores of an entity.
//
// Invariant: every score is >= 0.
type Scores struct {
	Warrior int `yaml:"warrior"`
	Rogue   int `yaml:"rogue"`
	Mage    int `yaml:"mage"`
}

// Get returns the score for attr.
//
// Postcondition: Returns an error wrapping ErrInvalidAttribute for an invalid attr.
func (s Scores) Get(attr Attribute) (int, error) {
	switch attr {
	case Warrior:
		return s.Warrior, nil
	case Rogue:
		return s.Rogue, nil
	case Mage:
		return s.Mage, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidAttribute, int(attr))
	}
}

// Add returns a copy of s with delta added to attr, flooring the result at zero.
//
// Postcondition: Returns an error wrapping ErrInvalidAttribute for an invalid attr.
func (s Scores) Add(attr Attribute, delta int) (Scores, error) {
	var p *int
	switch attr {
	case Warrior:
		p = &s.Warrior
	case Rogue:
		p = &s.Rogue
	case Mage:
		p = &s.Mage
	default:
		return s, fmt.Errorf("%w: %d", ErrInvalidAttribute, int(attr))
	}
	*p += delta
	if *p < 0 {
		*p = 0
	}
	return s, nil
}

// Sum returns warrior + rogue + mage.
func (s Scores) Sum() int { return s.Warrior + s.Rogue + s.Mage }
