package inventory

import (
	"fmt"

	"github.com/osse101/CaseForge_Go/internal/domain"
)

// CaseSlot counts unopened cases of one kind.
type CaseSlot struct {
	CaseID   string `json:"case_id"`
	Quantity int    `json:"quantity"`
}

// Holdings is a player's owned item instances and unopened cases.
// Instances keep acquisition order; lookups by id go through an index.
// Holdings is not safe for concurrent use; callers serialise access per player.
type Holdings struct {
	instances []domain.ItemInstance
	index     map[string]int
	cases     []CaseSlot
}

// NewHoldings returns empty holdings.
func NewHoldings() *Holdings {
	return &Holdings{index: make(map[string]int)}
}

// AddInstance stores an instance. Instance ids must be unique within the holdings.
func (h *Holdings) AddInstance(inst domain.ItemInstance) error {
	if inst.ID == "" {
		return fmt.Errorf("%w: instance id is required", domain.ErrInvalidInput)
	}
	if _, exists := h.index[inst.ID]; exists {
		return fmt.Errorf("%w: instance %s", domain.ErrDuplicateID, inst.ID)
	}
	h.index[inst.ID] = len(h.instances)
	h.instances = append(h.instances, inst)
	return nil
}

// Instance returns an owned instance by id.
func (h *Holdings) Instance(id string) (domain.ItemInstance, bool) {
	idx, ok := h.index[id]
	if !ok {
		return domain.ItemInstance{}, false
	}
	return h.instances[idx], true
}

// HasInstance reports whether the instance is owned.
func (h *Holdings) HasInstance(id string) bool {
	_, ok := h.index[id]
	return ok
}

// RemoveInstance deletes an owned instance and returns it.
func (h *Holdings) RemoveInstance(id string) (domain.ItemInstance, error) {
	idx, ok := h.index[id]
	if !ok {
		return domain.ItemInstance{}, fmt.Errorf("%w: instance %s", domain.ErrInsufficientStock, id)
	}
	removed := h.instances[idx]

	h.instances = append(h.instances[:idx], h.instances[idx+1:]...)
	delete(h.index, id)
	for i := idx; i < len(h.instances); i++ {
		h.index[h.instances[i].ID] = i
	}
	return removed, nil
}

// Instances returns a copy of all owned instances in acquisition order.
func (h *Holdings) Instances() []domain.ItemInstance {
	out := make([]domain.ItemInstance, len(h.instances))
	copy(out, h.instances)
	return out
}

// InstanceCount returns the number of owned instances.
func (h *Holdings) InstanceCount() int {
	return len(h.instances)
}

// findCase returns the slot index for a case, or -1.
func (h *Holdings) findCase(caseID string) int {
	for i, slot := range h.cases {
		if slot.CaseID == caseID {
			return i
		}
	}
	return -1
}

// AddCases increases the count of an unopened case.
func (h *Holdings) AddCases(caseID string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: case quantity must be positive (got %d)", domain.ErrInvalidInput, quantity)
	}
	if idx := h.findCase(caseID); idx >= 0 {
		h.cases[idx].Quantity += quantity
		return nil
	}
	h.cases = append(h.cases, CaseSlot{CaseID: caseID, Quantity: quantity})
	return nil
}

// RemoveCase takes one unopened case. Holdings are untouched when none are owned.
func (h *Holdings) RemoveCase(caseID string) error {
	idx := h.findCase(caseID)
	if idx < 0 || h.cases[idx].Quantity <= 0 {
		return fmt.Errorf("%w: no %s owned", domain.ErrInsufficientStock, caseID)
	}
	h.cases[idx].Quantity--
	if h.cases[idx].Quantity == 0 {
		h.cases = append(h.cases[:idx], h.cases[idx+1:]...)
	}
	return nil
}

// CaseCount returns how many of a case are owned.
func (h *Holdings) CaseCount(caseID string) int {
	if idx := h.findCase(caseID); idx >= 0 {
		return h.cases[idx].Quantity
	}
	return 0
}

// Cases returns a copy of all case slots.
func (h *Holdings) Cases() []CaseSlot {
	out := make([]CaseSlot, len(h.cases))
	copy(out, h.cases)
	return out
}
