package npc

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cory-johannsen/wrm/internal/game/inventory"
	"github.com/cory-johannsen/wrm/internal/game/ruleset"
)

// Manager holds templates and tracks the live instances spawned from them.
// All methods are safe for concurrent use.
type Manager struct {
	items   *inventory.Registry
	talents *ruleset.Registry
	rules   ruleset.Rules

	mu        sync.RWMutex
	templates map[string]*Template
	instances map[string]*Instance
	counter   atomic.Uint64
}

// NewManager creates a Manager that builds instances against the given registries.
//
// Precondition: items and talents must be non-nil.
func NewManager(items *inventory.Registry, talents *ruleset.Registry, rules ruleset.Rules) *Manager {
	return &Manager{
		items:     items,
		talents:   talents,
		rules:     rules,
		templates: make(map[string]*Template),
		instances: make(map[string]*Instance),
	}
}

// AddTemplate registers tmpl.
//
// Postcondition: Returns an error if tmpl.ID is already registered.
func (m *Manager) AddTemplate(tmpl *Template) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.templates[tmpl.ID]; ok {
		return fmt.Errorf("npc template %q already registered", tmpl.ID)
	}
	m.templates[tmpl.ID] = tmpl
	return nil
}

// Template returns the template with the given ID.
func (m *Manager) Template(id string) (*Template, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.templates[id]
	return t, ok
}

// Templates returns every registered template sorted by ID.
func (m *Manager) Templates() []*Template {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Template, 0, len(m.templates))
	for _, t := range m.templates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Spawn builds a new Instance from the template templateID.
//
// Postcondition: Returns a new Instance with a unique ID, or an error if the
// template is unknown or references unknown content.
func (m *Manager) Spawn(templateID string) (*Instance, error) {
	tmpl, ok := m.Template(templateID)
	if !ok {
		return nil, fmt.Errorf("npc template %q not found", templateID)
	}
	c, err := Build(tmpl, m.items, m.talents, m.rules)
	if err != nil {
		return nil, err
	}
	n := m.counter.Add(1)
	inst := &Instance{ID: fmt.Sprintf("%s-%d", tmpl.ID, n), Template: tmpl, Character: c}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.instances[inst.ID] = inst
	return inst, nil
}

// Remove deletes an instance by ID.
//
// Postcondition: Returns an error if the instance is not found.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.instances[id]; !ok {
		return fmt.Errorf("npc instance %q not found", id)
	}
	delete(m.instances, id)
	return nil
}

// Get returns the instance with the given ID.
//
// Postcondition: Returns (inst, true) if found, or (nil, false) otherwise.
func (m *Manager) Get(id string) (*Instance, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	inst, ok := m.instances[id]
	return inst, ok
}

// Living returns every instance that is not dead, sorted by ID.
//
// Postcondition: Returns a non-nil slice (may be empty).
func (m *Manager) Living() []*Instance {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Instance, 0, len(m.instances))
	for _, inst := range m.instances {
		if !inst.IsDead() {
			out = append(out, inst)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Find returns the first living instance, in ID order, whose name has target
// as a case-insensitive prefix. Returns nil if no match is found.
func (m *Manager) Find(target string) *Instance {
	lower := strings.ToLower(target)
	for _, inst := range m.Living() {
		if strings.HasPrefix(strings.ToLower(inst.Character.Name()), lower) {
			return inst
		}
	}
	return nil
}
