package lootbox

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CaseForge_Go/internal/catalog"
	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/event"
	"github.com/osse101/CaseForge_Go/internal/logger"
	"github.com/osse101/CaseForge_Go/internal/pricing"
	"github.com/osse101/CaseForge_Go/internal/quality"
	"github.com/osse101/CaseForge_Go/internal/rarity"
	"github.com/osse101/CaseForge_Go/internal/session"
)

// Resolution is the outcome of a keep or sell decision.
type Resolution struct {
	Choice     domain.DropChoice `json:"choice"`
	Drop       domain.Drop       `json:"drop"`
	InstanceID string            `json:"instance_id,omitempty"`
	Credited   int               `json:"credited"`
	Balance    int               `json:"balance"`
}

// Service opens cases and resolves the resulting drops.
type Service interface {
	Open(ctx context.Context, st *session.State, caseID string) (*domain.Drop, error)
	Resolve(ctx context.Context, st *session.State, choice domain.DropChoice) (*Resolution, error)
}

type service struct {
	catalog  *catalog.Registry
	weighter *rarity.Weighter
	sampler  quality.Sampler
	bus      event.Bus
	rnd      func() float64
}

// NewService creates a lootbox service. rnd drives the item draw; sampler
// supplies the drop quality.
func NewService(reg *catalog.Registry, weighter *rarity.Weighter, sampler quality.Sampler, bus event.Bus, rnd func() float64) Service {
	return &service{
		catalog:  reg,
		weighter: weighter,
		sampler:  sampler,
		bus:      bus,
		rnd:      rnd,
	}
}

// Open consumes one owned case and draws a pending drop from its pool.
// Nothing is mutated unless the case is actually consumed.
func (s *service) Open(ctx context.Context, st *session.State, caseID string) (*domain.Drop, error) {
	log := logger.FromContext(ctx)

	if _, ok := s.catalog.Case(caseID); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCaseNotFound, caseID)
	}
	if st.Pending != nil {
		return nil, fmt.Errorf("%w: drop %s from %s", domain.ErrDropPending, st.Pending.ID, st.Pending.CaseID)
	}

	templates, err := s.catalog.PoolTemplates(caseID)
	if err != nil {
		log.Warn(LogMsgOpenRejected, LogFieldCase, caseID, LogFieldError, err)
		return nil, err
	}

	if err := st.Holdings.RemoveCase(caseID); err != nil {
		return nil, err
	}

	pool := buildPool(templates, s.weighter.Weights(templates))
	picked := pool.pick(s.rnd())
	q := s.sampler.Sample()

	adjusted := pricing.AdjustedPrice(picked.BasePrice, q)
	drop := &domain.Drop{
		ID:            uuid.NewString(),
		CaseID:        caseID,
		TemplateID:    picked.ID,
		Name:          picked.Name,
		Category:      picked.Category,
		RarityTier:    picked.RarityTier,
		Quality:       q,
		AdjustedPrice: adjusted,
		SellValue:     pricing.LiquidationValue(adjusted),
		OpenedAt:      time.Now(),
	}
	st.Pending = drop

	log.Info(LogMsgCaseOpened,
		LogFieldCase, caseID,
		LogFieldTemplate, picked.ID,
		LogFieldQuality, q,
		LogFieldPrice, adjusted)
	event.Publish(ctx, s.bus, event.NewCaseOpenedEvent(st.PlayerID, caseID, picked.ID, q, adjusted))

	result := *drop
	return &result, nil
}

// Resolve applies the player's terminal decision to the pending drop.
func (s *service) Resolve(ctx context.Context, st *session.State, choice domain.DropChoice) (*Resolution, error) {
	if st.Pending == nil {
		return nil, domain.ErrNoPendingDrop
	}
	if choice != domain.ChoiceKeep && choice != domain.ChoiceSell {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidChoice, choice)
	}

	drop := *st.Pending
	res := &Resolution{Choice: choice, Drop: drop}
	log := logger.FromContext(ctx)

	switch choice {
	case domain.ChoiceKeep:
		inst := domain.ItemInstance{
			ID:         uuid.NewString(),
			TemplateID: drop.TemplateID,
			Quality:    drop.Quality,
			AcquiredAt: time.Now(),
		}
		if err := st.Holdings.AddInstance(inst); err != nil {
			return nil, err
		}
		res.InstanceID = inst.ID
		log.Info(LogMsgDropKept, LogFieldTemplate, drop.TemplateID, LogFieldQuality, drop.Quality)

	case domain.ChoiceSell:
		if drop.SellValue > 0 {
			if err := st.Wallet.Credit(drop.SellValue); err != nil {
				return nil, err
			}
		}
		res.Credited = drop.SellValue
		log.Info(LogMsgDropSold, LogFieldTemplate, drop.TemplateID, LogFieldCredited, drop.SellValue)
	}

	st.Pending = nil
	res.Balance = st.Wallet.Balance()

	event.Publish(ctx, s.bus, event.NewDropResolvedEvent(st.PlayerID, string(choice), drop.TemplateID, res.Credited))
	return res, nil
}
