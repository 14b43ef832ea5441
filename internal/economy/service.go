package economy

import (
	"context"
	"slices"
	"sync"

	"github.com/osse101/CaseForge_Go/internal/catalog"
	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/event"
	"github.com/osse101/CaseForge_Go/internal/quality"
	"github.com/osse101/CaseForge_Go/internal/session"
)

// Listing is a shop entry as presented to players.
type Listing struct {
	ID   string             `json:"id"`
	Type domain.ListingType `json:"type"`
	Name string             `json:"name"`
	// Price is in the same currency as the wallet.
	Price int `json:"price"`
	// Remaining is nil for unlimited listings.
	Remaining *int `json:"remaining,omitempty"`
}

// Purchase is the outcome of a successful buy.
type Purchase struct {
	ListingID  string             `json:"listing_id"`
	Type       domain.ListingType `json:"type"`
	Price      int                `json:"price"`
	InstanceID string             `json:"instance_id,omitempty"`
	Quality    float64            `json:"quality,omitempty"`
	Balance    int                `json:"balance"`
	Remaining  *int               `json:"remaining,omitempty"`
}

// SaleResult is the outcome of liquidating one owned instance.
type SaleResult struct {
	InstanceID    string  `json:"instance_id"`
	TemplateID    string  `json:"template_id"`
	Quality       float64 `json:"quality"`
	AdjustedPrice int     `json:"adjusted_price"`
	Credited      int     `json:"credited"`
	Balance       int     `json:"balance"`
}

// Service runs the shop and wallet operations.
type Service interface {
	ListShop(ctx context.Context) []Listing
	Buy(ctx context.Context, st *session.State, listingID string) (*Purchase, error)
	Sell(ctx context.Context, st *session.State, instanceID string) (*SaleResult, error)
	Deposit(ctx context.Context, st *session.State, amount int) (int, error)
}

type service struct {
	catalog  *catalog.Registry
	sampler  quality.Sampler
	bus      event.Bus
	listings map[string]domain.ShopListing

	// stock is shared by every player; listings without a stock limit are absent.
	mu    sync.Mutex
	stock map[string]int
}

// NewService creates the shop over the catalog's listings. Limited stock starts
// at the catalog value and is shared across players for the process lifetime.
func NewService(reg *catalog.Registry, sampler quality.Sampler, bus event.Bus) Service {
	s := &service{
		catalog:  reg,
		sampler:  sampler,
		bus:      bus,
		listings: make(map[string]domain.ShopListing),
		stock:    make(map[string]int),
	}
	for _, l := range reg.ShopListings() {
		s.listings[l.ID] = l
		if l.Stock != nil {
			s.stock[l.ID] = *l.Stock
		}
	}
	return s
}

// ListShop returns cases from cheapest to most expensive, then items the same way.
func (s *service) ListShop(_ context.Context) []Listing {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Listing, 0, len(s.listings))
	for _, l := range s.catalog.ShopListings() {
		price, err := s.catalog.ListingPrice(l)
		if err != nil {
			continue
		}
		out = append(out, Listing{
			ID:        l.ID,
			Type:      l.Type,
			Name:      s.listingName(l),
			Price:     price,
			Remaining: s.remainingLocked(l.ID),
		})
	}

	slices.SortStableFunc(out, func(a, b Listing) int {
		if a.Type != b.Type {
			if a.Type == domain.ListingTypeCase {
				return -1
			}
			return 1
		}
		return a.Price - b.Price
	})
	return out
}

func (s *service) listingName(l domain.ShopListing) string {
	if l.Type == domain.ListingTypeCase {
		if c, ok := s.catalog.Case(l.ID); ok {
			return c.Name
		}
	}
	if t, ok := s.catalog.Item(l.ID); ok {
		return t.Name
	}
	return l.ID
}

// remainingLocked reports the stock left; callers hold mu.
func (s *service) remainingLocked(id string) *int {
	n, limited := s.stock[id]
	if !limited {
		return nil
	}
	return &n
}
