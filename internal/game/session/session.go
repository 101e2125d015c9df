// Package session orchestrates one play session. It owns the event bus, the
// dice roller, the content registries, and every resolver, and it posts the
// domain events the quest ledger listens to.
package session

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/wrm/internal/content"
	"github.com/cory-johannsen/wrm/internal/game/character"
	"github.com/cory-johannsen/wrm/internal/game/check"
	"github.com/cory-johannsen/wrm/internal/game/combat"
	"github.com/cory-johannsen/wrm/internal/game/dice"
	"github.com/cory-johannsen/wrm/internal/game/event"
	"github.com/cory-johannsen/wrm/internal/game/inventory"
	"github.com/cory-johannsen/wrm/internal/game/magic"
	"github.com/cory-johannsen/wrm/internal/game/npc"
	"github.com/cory-johannsen/wrm/internal/game/ritual"
	"github.com/cory-johannsen/wrm/internal/game/ruleset"
)

// ErrUnknownQuest is returned when a quest ID is not in the loaded content.
var ErrUnknownQuest = errors.New("unknown quest")

// Deps configures New.
type Deps struct {
	Content *content.Content
	Source  dice.Source
	// Rules is the rules table. The zero value means ruleset.DefaultRules().
	Rules ruleset.Rules
	// MaxRounds bounds Duel; <= 0 means combat.DefaultMaxRounds.
	MaxRounds int
	Logger    *zap.Logger
}

// Session is a single-threaded game session.
type Session struct {
	content   *content.Content
	rules     ruleset.Rules
	maxRounds int
	logger    *zap.Logger

	bus     *event.Bus
	roller  *dice.Roller
	checks  *check.Resolver
	combat  *combat.Resolver
	caster  *magic.Caster
	rituals *ritual.Resolver
	npcs    *npc.Manager
}

// New wires a Session from d. On-hit hooks are registered for every NPC
// template that declares one.
//
// Precondition: d.Content, d.Source and d.Logger must be non-nil.
// Postcondition: Returns an error if the rules are invalid or content
// references an unknown spell effect.
func New(d Deps) (*Session, error) {
	rules := d.Rules
	if rules == (ruleset.Rules{}) {
		rules = ruleset.DefaultRules()
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("session rules: %w", err)
	}
	roller := dice.NewLoggedRoller(d.Source, d.Logger).WithSides(rules.DieSides)
	checks := check.NewResolver(roller, rules, d.Logger)

	lib, err := d.Content.Library(magic.DefaultEffects(d.Content.Conditions))
	if err != nil {
		return nil, err
	}
	npcs, err := d.Content.NPCManager(rules)
	if err != nil {
		return nil, err
	}
	hooks := combat.NewHookRegistry()
	for _, t := range npcs.Templates() {
		if t.OnHit == nil {
			continue
		}
		def, ok := d.Content.Conditions.Get(t.OnHit.Condition)
		if !ok {
			return nil, fmt.Errorf("npc %q: unknown on_hit condition %q", t.ID, t.OnHit.Condition)
		}
		hooks.Register(t.ID, combat.ApplyCondition(def, t.OnHit.MinRoll))
	}

	return &Session{
		content:   d.Content,
		rules:     rules,
		maxRounds: d.MaxRounds,
		logger:    d.Logger,
		bus:       event.NewBus(),
		roller:    roller,
		checks:    checks,
		combat:    combat.NewResolver(checks, hooks, d.Logger),
		caster:    magic.NewCaster(checks, lib, d.Logger),
		rituals:   ritual.NewResolver(checks, d.Logger),
		npcs:      npcs,
	}, nil
}

// Bus returns the session's event bus.
func (s *Session) Bus() *event.Bus { return s.bus }

// Roller returns the session's dice roller.
func (s *Session) Roller() *dice.Roller { return s.roller }

// Checks returns the check resolver.
func (s *Session) Checks() *check.Resolver { return s.checks }

// Combat returns the attack resolver.
func (s *Session) Combat() *combat.Resolver { return s.combat }

// Caster returns the spellcasting resolver.
func (s *Session) Caster() *magic.Caster { return s.caster }

// NPCs returns the NPC manager.
func (s *Session) NPCs() *npc.Manager { return s.npcs }

// Content returns the loaded content.
func (s *Session) Content() *content.Content { return s.content }

// Rules returns the session's rules table.
func (s *Session) Rules() ruleset.Rules { return s.rules }

// Create builds a player character from creation choices.
func (s *Session) Create(choices character.Creation) (*character.Character, error) {
	return character.Create(choices, s.content.Rules, s.content.Items, s.rules)
}

// Spawn builds a live NPC from the template templateID.
func (s *Session) Spawn(templateID string) (*npc.Instance, error) {
	return s.npcs.Spawn(templateID)
}

// Give adds a new instance of itemID to c and publishes ItemAcquired.
//
// Postcondition: Returns an error wrapping inventory.ErrUnknownItem with no
// state change if itemID is unknown.
func (s *Session) Give(c *character.Character, itemID string) (*inventory.ItemInstance, error) {
	def, err := c.Items().Lookup(itemID)
	if err != nil {
		return nil, err
	}
	inst := inventory.NewInstance(def)
	c.AddItem(inst)
	s.logger.Debug("item acquired", zap.String("owner", c.Name()), zap.String("item", def.ID))
	s.bus.Publish(event.Event{Kind: event.ItemAcquired, ItemName: def.Name, Owner: c.Name()})
	return inst, nil
}

// AwardXP adds amount experience to c and publishes LevelGained if c
// advanced. It returns the number of levels gained.
func (s *Session) AwardXP(c *character.Character, amount int) int {
	levels := c.AddExperience(amount)
	if levels > 0 {
		s.logger.Info("level gained", zap.String("name", c.Name()), zap.Int("level", c.Level()))
		s.bus.Publish(event.Event{Kind: event.LevelGained, Name: c.Name(), Owner: c.Name(), Level: c.Level()})
	}
	return levels
}

// UsePotion drinks the potion instance instanceID owned by c.
func (s *Session) UsePotion(c *character.Character, instanceID string) (int, error) {
	return c.UsePotion(instanceID, s.roller)
}

// Cast resolves c casting spellID.
func (s *Session) Cast(c *character.Character, spellID string, opts magic.CastOptions) (magic.CastResult, error) {
	return s.caster.Cast(c, spellID, opts)
}

// NewRitual starts a ritual for spellID led by primary.
//
// Postcondition: Returns an error wrapping magic.ErrUnknownSpell if absent.
func (s *Session) NewRitual(spellID string, primary *character.Character) (*ritual.Ritual, error) {
	spell, err := s.caster.Library().Spell(spellID)
	if err != nil {
		return nil, err
	}
	return ritual.New(spell, primary), nil
}

// PerformRitual resolves r against target, which may be nil.
func (s *Session) PerformRitual(r *ritual.Ritual, target *character.Character) (ritual.Result, error) {
	return s.rituals.Perform(r, target)
}
