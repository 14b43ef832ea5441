package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CaseForge_Go/internal/crafting"
	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/economy"
	"github.com/osse101/CaseForge_Go/internal/game"
	"github.com/osse101/CaseForge_Go/internal/lootbox"
	"github.com/osse101/CaseForge_Go/internal/rarity"
)

type MockEngine struct {
	mock.Mock
}

func (m *MockEngine) CatalogItems(category, sortBy string, desc bool) []domain.ItemTemplate {
	args := m.Called(category, sortBy, desc)
	items, _ := args.Get(0).([]domain.ItemTemplate)
	return items
}

func (m *MockEngine) CatalogCases() []domain.Case {
	args := m.Called()
	cases, _ := args.Get(0).([]domain.Case)
	return cases
}

func (m *MockEngine) Holdings(ctx context.Context, playerID string, q game.HoldingsQuery) (*game.HoldingsView, error) {
	args := m.Called(ctx, playerID, q)
	view, _ := args.Get(0).(*game.HoldingsView)
	return view, args.Error(1)
}

func (m *MockEngine) OpenContainer(ctx context.Context, playerID, caseID string) (*domain.Drop, error) {
	args := m.Called(ctx, playerID, caseID)
	drop, _ := args.Get(0).(*domain.Drop)
	return drop, args.Error(1)
}

func (m *MockEngine) ResolveKeepOrSell(ctx context.Context, playerID string, choice domain.DropChoice) (*lootbox.Resolution, error) {
	args := m.Called(ctx, playerID, choice)
	res, _ := args.Get(0).(*lootbox.Resolution)
	return res, args.Error(1)
}

func (m *MockEngine) CraftItems(ctx context.Context, playerID string, instanceIDs []string, mode crafting.Mode, tier crafting.Tier) (*crafting.Result, error) {
	args := m.Called(ctx, playerID, instanceIDs, mode, tier)
	res, _ := args.Get(0).(*crafting.Result)
	return res, args.Error(1)
}

func (m *MockEngine) PriceMultiplier(q float64) float64 {
	return m.Called(q).Get(0).(float64)
}

func (m *MockEngine) ListShop(ctx context.Context) []economy.Listing {
	args := m.Called(ctx)
	listings, _ := args.Get(0).([]economy.Listing)
	return listings
}

func (m *MockEngine) Buy(ctx context.Context, playerID, listingID string) (*economy.Purchase, error) {
	args := m.Called(ctx, playerID, listingID)
	p, _ := args.Get(0).(*economy.Purchase)
	return p, args.Error(1)
}

func (m *MockEngine) Sell(ctx context.Context, playerID, instanceID string) (*economy.SaleResult, error) {
	args := m.Called(ctx, playerID, instanceID)
	res, _ := args.Get(0).(*economy.SaleResult)
	return res, args.Error(1)
}

func (m *MockEngine) Deposit(ctx context.Context, playerID string, amount int) (int, error) {
	args := m.Called(ctx, playerID, amount)
	return args.Int(0), args.Error(1)
}

func (m *MockEngine) RarityParams() rarity.Params {
	return m.Called().Get(0).(rarity.Params)
}

func (m *MockEngine) SetRarityParams(ctx context.Context, p rarity.Params) error {
	return m.Called(ctx, p).Error(0)
}

// newRouter mounts the player routes the way the server does so chi path
// parameters resolve.
func newRouter(engine Engine) http.Handler {
	r := chi.NewRouter()
	r.Get("/catalog", HandleGetCatalog(engine))
	r.Get("/price-multiplier", HandlePriceMultiplier(engine))
	r.Get("/shop", HandleListShop(engine))
	r.Route("/players/{playerID}", func(r chi.Router) {
		r.Get("/", HandleGetHoldings(engine))
		r.Post("/cases/{caseID}/open", HandleOpenCase(engine))
		r.Post("/drop/resolve", HandleResolveDrop(engine))
		r.Post("/craft", HandleCraft(engine))
		r.Post("/shop/buy", HandleBuy(engine))
		r.Post("/deposit", HandleDeposit(engine))
		r.Post("/items/{instanceID}/sell", HandleSellItem(engine))
	})
	r.Get("/admin/rarity", HandleGetRarity(engine))
	r.Put("/admin/rarity", HandleSetRarity(engine))
	return r
}

func serve(engine Engine, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	w := httptest.NewRecorder()
	newRouter(engine).ServeHTTP(w, req)
	return w
}
