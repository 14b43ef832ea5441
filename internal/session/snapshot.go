package session

import (
	"context"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CaseForge_Go/internal/catalog"
	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/inventory"
	"github.com/osse101/CaseForge_Go/internal/logger"
	"github.com/osse101/CaseForge_Go/internal/quality"
)

// Snapshot is the plain-data form of a session exchanged with persistence.
type Snapshot struct {
	Version        int                   `json:"version"`
	PlayerID       string                `json:"player_id"`
	Balance        int                   `json:"balance"`
	CaseCounts     map[string]int        `json:"case_counts"`
	Instances      []domain.ItemInstance `json:"instances"`
	GrantedPresets []string              `json:"granted_presets"`
	Crafted        []domain.ItemTemplate `json:"crafted,omitempty"`
	Pending        *domain.Drop          `json:"pending,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	SavedAt        time.Time             `json:"saved_at"`

	// Version 0 layout: counts per template with an optional per-unit quality list.
	ItemCounts    map[string]int       `json:"item_counts,omitempty"`
	ItemQualities map[string][]float64 `json:"item_qualities,omitempty"`
}

// Snapshot captures the session as plain data.
func (s *State) Snapshot() *Snapshot {
	snap := &Snapshot{
		Version:        SnapshotVersion,
		PlayerID:       s.PlayerID,
		Balance:        s.Wallet.Balance(),
		CaseCounts:     make(map[string]int),
		Instances:      s.Holdings.Instances(),
		GrantedPresets: slices.Clone(s.GrantedPresets),
		CreatedAt:      s.CreatedAt,
		SavedAt:        time.Now(),
	}
	for _, slot := range s.Holdings.Cases() {
		snap.CaseCounts[slot.CaseID] = slot.Quantity
	}
	for _, id := range slices.Sorted(maps.Keys(s.Crafted)) {
		snap.Crafted = append(snap.Crafted, s.Crafted[id])
	}
	if s.Pending != nil {
		pending := *s.Pending
		snap.Pending = &pending
	}
	return snap
}

// Restore rebuilds a session from a snapshot. Entries that no longer resolve
// against the catalog are dropped with a warning. Version 0 quality lists that
// are shorter than their count are topped up from sampler.
//
// A case id present in the snapshot counts as already granted, even with a
// zero count, so removed-then-readded presets are not handed out twice.
func Restore(ctx context.Context, snap *Snapshot, reg *catalog.Registry, sampler quality.Sampler) (*State, error) {
	log := logger.FromContext(ctx)

	st := &State{
		PlayerID:       snap.PlayerID,
		Holdings:       inventory.NewHoldings(),
		Wallet:         inventory.NewWallet(snap.Balance),
		GrantedPresets: slices.Clone(snap.GrantedPresets),
		Crafted:        make(map[string]domain.ItemTemplate, len(snap.Crafted)),
		CreatedAt:      snap.CreatedAt,
		UpdatedAt:      time.Now(),
	}
	if st.CreatedAt.IsZero() {
		st.CreatedAt = st.UpdatedAt
	}

	for _, t := range snap.Crafted {
		if err := st.RegisterCrafted(t); err != nil {
			return nil, err
		}
	}

	for _, caseID := range slices.Sorted(maps.Keys(snap.CaseCounts)) {
		if !slices.Contains(st.GrantedPresets, caseID) && isFreeGrant(reg, caseID) {
			st.GrantedPresets = append(st.GrantedPresets, caseID)
		}
		qty := snap.CaseCounts[caseID]
		if qty <= 0 {
			continue
		}
		if _, ok := reg.Case(caseID); !ok {
			log.Warn(LogMsgSkippedUnknownCase, "case_id", caseID, "quantity", qty)
			continue
		}
		if err := st.Holdings.AddCases(caseID, qty); err != nil {
			return nil, err
		}
	}

	for _, inst := range snap.Instances {
		if _, ok := st.LookupTemplate(reg, inst.TemplateID); !ok {
			log.Warn(LogMsgSkippedUnknownItem, "template_id", inst.TemplateID, "instance_id", inst.ID)
			continue
		}
		if inst.ID == "" {
			inst.ID = uuid.NewString()
		}
		inst.Quality = quality.Normalize(inst.Quality)
		if err := st.Holdings.AddInstance(inst); err != nil {
			return nil, err
		}
	}

	if err := restoreLegacyItems(ctx, st, snap, reg, sampler); err != nil {
		return nil, err
	}

	if snap.Pending != nil {
		if _, ok := st.LookupTemplate(reg, snap.Pending.TemplateID); ok {
			pending := *snap.Pending
			st.Pending = &pending
		} else {
			log.Warn(LogMsgSkippedStalePending, "template_id", snap.Pending.TemplateID)
		}
	}

	return st, nil
}

func restoreLegacyItems(ctx context.Context, st *State, snap *Snapshot, reg *catalog.Registry, sampler quality.Sampler) error {
	if len(snap.ItemCounts) == 0 && len(snap.ItemQualities) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	ids := slices.Collect(maps.Keys(snap.ItemCounts))
	for id := range snap.ItemQualities {
		if _, counted := snap.ItemCounts[id]; !counted {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	for _, templateID := range ids {
		qualities := snap.ItemQualities[templateID]
		count, counted := snap.ItemCounts[templateID]
		if !counted {
			count = len(qualities)
		}
		if count <= 0 {
			continue
		}
		if _, ok := st.LookupTemplate(reg, templateID); !ok {
			log.Warn(LogMsgSkippedUnknownItem, "template_id", templateID, "count", count)
			continue
		}
		for i := 0; i < count; i++ {
			var q float64
			if i < len(qualities) {
				q = quality.Normalize(qualities[i])
			} else {
				q = sampler.Sample()
			}
			inst := domain.ItemInstance{
				ID:         uuid.NewString(),
				TemplateID: templateID,
				Quality:    q,
				AcquiredAt: st.UpdatedAt,
			}
			if err := st.Holdings.AddInstance(inst); err != nil {
				return err
			}
		}
	}
	return nil
}

func isFreeGrant(reg *catalog.Registry, caseID string) bool {
	for _, g := range reg.FreeGrants() {
		if g.CaseID == caseID {
			return true
		}
	}
	return false
}
