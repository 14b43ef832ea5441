package session

import (
	"fmt"
	"slices"
	"time"

	"github.com/osse101/CaseForge_Go/internal/catalog"
	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/inventory"
)

// State is one player's economy state. It is owned by a single logical actor:
// the Store serialises every operation on a player.
type State struct {
	PlayerID       string
	Holdings       *inventory.Holdings
	Wallet         *inventory.Wallet
	GrantedPresets []string
	// Pending is the opened drop awaiting keep or sell; nil when idle.
	Pending *domain.Drop
	// Crafted holds templates synthesized by this player's crafts.
	Crafted   map[string]domain.ItemTemplate
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New creates a fresh session with the starting balance and every free grant.
func New(playerID string, reg *catalog.Registry, startingBalance int) *State {
	now := time.Now()
	st := &State{
		PlayerID:  playerID,
		Holdings:  inventory.NewHoldings(),
		Wallet:    inventory.NewWallet(startingBalance),
		Crafted:   make(map[string]domain.ItemTemplate),
		CreatedAt: now,
		UpdatedAt: now,
	}
	st.ApplyFreeGrants(reg)
	return st
}

// ApplyFreeGrants hands out every free grant the player has not received yet
// and returns the granted case ids.
func (s *State) ApplyFreeGrants(reg *catalog.Registry) []string {
	var granted []string
	for _, g := range reg.FreeGrants() {
		if slices.Contains(s.GrantedPresets, g.CaseID) {
			continue
		}
		if err := s.Holdings.AddCases(g.CaseID, g.Quantity); err != nil {
			continue
		}
		s.GrantedPresets = append(s.GrantedPresets, g.CaseID)
		granted = append(granted, g.CaseID)
	}
	return granted
}

// LookupTemplate resolves a template id against the catalog, then this
// player's synthesized templates.
func (s *State) LookupTemplate(reg *catalog.Registry, id string) (domain.ItemTemplate, bool) {
	if t, ok := reg.Item(id); ok {
		return t, true
	}
	t, ok := s.Crafted[id]
	return t, ok
}

// RegisterCrafted records a synthesized template.
func (s *State) RegisterCrafted(t domain.ItemTemplate) error {
	if _, exists := s.Crafted[t.ID]; exists {
		return fmt.Errorf("%w: crafted template %s", domain.ErrDuplicateID, t.ID)
	}
	if s.Crafted == nil {
		s.Crafted = make(map[string]domain.ItemTemplate)
	}
	s.Crafted[t.ID] = t
	return nil
}

// Touch marks the session as modified.
func (s *State) Touch() {
	s.UpdatedAt = time.Now()
}
