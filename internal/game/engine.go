package game

import (
	"context"

	"github.com/osse101/CaseForge_Go/internal/catalog"
	"github.com/osse101/CaseForge_Go/internal/crafting"
	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/economy"
	"github.com/osse101/CaseForge_Go/internal/event"
	"github.com/osse101/CaseForge_Go/internal/logger"
	"github.com/osse101/CaseForge_Go/internal/lootbox"
	"github.com/osse101/CaseForge_Go/internal/pricing"
	"github.com/osse101/CaseForge_Go/internal/quality"
	"github.com/osse101/CaseForge_Go/internal/rarity"
	"github.com/osse101/CaseForge_Go/internal/session"
)

// Options wires an Engine.
type Options struct {
	Catalog  *catalog.Registry
	Weighter *rarity.Weighter
	Sampler  quality.Sampler
	Sessions *session.Store
	Bus      event.Bus
	// Rand drives item draws, craft rolls and craft quality.
	Rand     func() float64
	Crafting crafting.Config
}

// Engine is the single entry point for player operations. Every operation on a
// player runs under that player's session lock.
type Engine struct {
	catalog  *catalog.Registry
	weighter *rarity.Weighter
	sessions *session.Store
	lootbox  lootbox.Service
	crafting crafting.Service
	shop     economy.Service
}

// NewEngine builds the engine and its services.
func NewEngine(opts Options) *Engine {
	return &Engine{
		catalog:  opts.Catalog,
		weighter: opts.Weighter,
		sessions: opts.Sessions,
		lootbox:  lootbox.NewService(opts.Catalog, opts.Weighter, opts.Sampler, opts.Bus, opts.Rand),
		crafting: crafting.NewService(opts.Catalog, opts.Sampler, opts.Bus, opts.Crafting, opts.Rand),
		shop:     economy.NewService(opts.Catalog, opts.Sampler, opts.Bus),
	}
}

// Catalog returns the immutable catalog.
func (e *Engine) Catalog() *catalog.Registry {
	return e.catalog
}

// CatalogItems lists templates in one category ("" or "all" for every one).
// An empty sortBy keeps catalog order.
func (e *Engine) CatalogItems(category, sortBy string, desc bool) []domain.ItemTemplate {
	items := e.catalog.FilterItems(category)
	if sortBy == "" {
		return items
	}
	return catalog.SortItems(items, sortBy, desc)
}

// CatalogCases lists every case from cheapest to most expensive.
func (e *Engine) CatalogCases() []domain.Case {
	return e.catalog.Cases()
}

// OpenContainer opens one owned case and leaves its drop pending.
func (e *Engine) OpenContainer(ctx context.Context, playerID, caseID string) (*domain.Drop, error) {
	ctx = logger.WithPlayerID(ctx, playerID)
	var drop *domain.Drop
	err := e.sessions.WithSession(ctx, playerID, func(st *session.State) error {
		var err error
		drop, err = e.lootbox.Open(ctx, st, caseID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return drop, nil
}

// ResolveKeepOrSell keeps or sells the pending drop.
func (e *Engine) ResolveKeepOrSell(ctx context.Context, playerID string, choice domain.DropChoice) (*lootbox.Resolution, error) {
	ctx = logger.WithPlayerID(ctx, playerID)
	var res *lootbox.Resolution
	err := e.sessions.WithSession(ctx, playerID, func(st *session.State) error {
		var err error
		res, err = e.lootbox.Resolve(ctx, st, choice)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// CraftItems burns the selected instances and resolves a craft.
func (e *Engine) CraftItems(ctx context.Context, playerID string, instanceIDs []string, mode crafting.Mode, tier crafting.Tier) (*crafting.Result, error) {
	ctx = logger.WithPlayerID(ctx, playerID)
	var res *crafting.Result
	err := e.sessions.WithSession(ctx, playerID, func(st *session.State) error {
		var err error
		res, err = e.crafting.Craft(ctx, st, crafting.Request{InstanceIDs: instanceIDs, Mode: mode, Tier: tier})
		return err
	})
	// res may be set alongside err when the inputs were spent but the output
	// could not be added.
	return res, err
}

// PriceMultiplier exposes the quality price curve.
func (e *Engine) PriceMultiplier(q float64) float64 {
	return pricing.Multiplier(q)
}

// ListShop returns the current shop listings.
func (e *Engine) ListShop(ctx context.Context) []economy.Listing {
	return e.shop.ListShop(ctx)
}

// Buy purchases one unit of a shop listing.
func (e *Engine) Buy(ctx context.Context, playerID, listingID string) (*economy.Purchase, error) {
	ctx = logger.WithPlayerID(ctx, playerID)
	var p *economy.Purchase
	err := e.sessions.WithSession(ctx, playerID, func(st *session.State) error {
		var err error
		p, err = e.shop.Buy(ctx, st, listingID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Sell liquidates one owned instance.
func (e *Engine) Sell(ctx context.Context, playerID, instanceID string) (*economy.SaleResult, error) {
	ctx = logger.WithPlayerID(ctx, playerID)
	var res *economy.SaleResult
	err := e.sessions.WithSession(ctx, playerID, func(st *session.State) error {
		var err error
		res, err = e.shop.Sell(ctx, st, instanceID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Deposit tops up the player's wallet and returns the new balance.
func (e *Engine) Deposit(ctx context.Context, playerID string, amount int) (int, error) {
	ctx = logger.WithPlayerID(ctx, playerID)
	var balance int
	err := e.sessions.WithSession(ctx, playerID, func(st *session.State) error {
		var err error
		balance, err = e.shop.Deposit(ctx, st, amount)
		return err
	})
	return balance, err
}

// RarityParams returns the live rarity tuning.
func (e *Engine) RarityParams() rarity.Params {
	return e.weighter.Params()
}

// SetRarityParams replaces the rarity tuning for every later opening.
func (e *Engine) SetRarityParams(ctx context.Context, p rarity.Params) error {
	if err := e.weighter.SetParams(p); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgRarityUpdated,
		"power", p.Power,
		"min_weight", p.MinWeight,
		"global_multiplier", p.GlobalMultiplier)
	return nil
}
