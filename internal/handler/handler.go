package handler

import (
	"context"

	"github.com/osse101/CaseForge_Go/internal/crafting"
	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/economy"
	"github.com/osse101/CaseForge_Go/internal/game"
	"github.com/osse101/CaseForge_Go/internal/lootbox"
	"github.com/osse101/CaseForge_Go/internal/rarity"
)

// Engine is the subset of game.Engine the HTTP layer drives.
type Engine interface {
	CatalogItems(category, sortBy string, desc bool) []domain.ItemTemplate
	CatalogCases() []domain.Case
	Holdings(ctx context.Context, playerID string, q game.HoldingsQuery) (*game.HoldingsView, error)
	OpenContainer(ctx context.Context, playerID, caseID string) (*domain.Drop, error)
	ResolveKeepOrSell(ctx context.Context, playerID string, choice domain.DropChoice) (*lootbox.Resolution, error)
	CraftItems(ctx context.Context, playerID string, instanceIDs []string, mode crafting.Mode, tier crafting.Tier) (*crafting.Result, error)
	PriceMultiplier(q float64) float64
	ListShop(ctx context.Context) []economy.Listing
	Buy(ctx context.Context, playerID, listingID string) (*economy.Purchase, error)
	Sell(ctx context.Context, playerID, instanceID string) (*economy.SaleResult, error)
	Deposit(ctx context.Context, playerID string, amount int) (int, error)
	RarityParams() rarity.Params
	SetRarityParams(ctx context.Context, p rarity.Params) error
}

var _ Engine = (*game.Engine)(nil)
