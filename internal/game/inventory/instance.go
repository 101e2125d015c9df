package inventory

import (
	"github.com/google/uuid"
)

// ItemInstance is one owned copy of an item definition with its own mutable state.
type ItemInstance struct {
	InstanceID string `yaml:"instance_id"`
	DefID      string `yaml:"def_id"`
	// Mana is the current charge of an implement; zero for other categories.
	Mana int `yaml:"mana,omitempty"`
}

// NewInstance creates a fresh instance of def with a new UUID and a full mana pool.
//
// Precondition: def must not be nil.
func NewInstance(def *ItemDef) *ItemInstance {
	inst := &ItemInstance{InstanceID: uuid.New().String(), DefID: def.ID}
	if def.Implement != nil {
		inst.Mana = def.Implement.MaxMana
	}
	return inst
}

// Inventory is an ordered collection of owned item instances.
// It is not safe for concurrent use.
type Inventory struct {
	items []*ItemInstance
}

// NewInventory returns an empty Inventory.
func NewInventory() *Inventory {
	return &Inventory{}
}

// Add appends inst.
//
// Precondition: inst must not be nil.
func (inv *Inventory) Add(inst *ItemInstance) {
	inv.items = append(inv.items, inst)
}

// Remove deletes the instance with instanceID and returns it.
//
// Postcondition: ok is false and the inventory is unchanged if instanceID is absent.
func (inv *Inventory) Remove(instanceID string) (*ItemInstance, bool) {
	for i, it := range inv.items {
		if it.InstanceID == instanceID {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return it, true
		}
	}
	return nil, false
}

// Get returns the instance with instanceID.
func (inv *Inventory) Get(instanceID string) (*ItemInstance, bool) {
	for _, it := range inv.items {
		if it.InstanceID == instanceID {
			return it, true
		}
	}
	return nil, false
}

// FindByDef returns the first instance of defID in insertion order.
func (inv *Inventory) FindByDef(defID string) (*ItemInstance, bool) {
	for _, it := range inv.items {
		if it.DefID == defID {
			return it, true
		}
	}
	return nil, false
}

// Count returns the number of instances of defID.
func (inv *Inventory) Count(defID string) int {
	n := 0
	for _, it := range inv.items {
		if it.DefID == defID {
			n++
		}
	}
	return n
}

// Items returns the instances in insertion order.
//
// Postcondition: the returned slice is a copy; the instances are shared.
func (inv *Inventory) Items() []*ItemInstance {
	out := make([]*ItemInstance, len(inv.items))
	copy(out, inv.items)
	return out
}

// Len returns the number of instances held.
func (inv *Inventory) Len() int { return len(inv.items) }
