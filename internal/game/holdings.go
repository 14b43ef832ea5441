package game

import (
	"context"
	"fmt"
	"slices"

	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/logger"
	"github.com/osse101/CaseForge_Go/internal/pricing"
	"github.com/osse101/CaseForge_Go/internal/session"
)

// CaseView is an owned case stack.
type CaseView struct {
	CaseID   string `json:"case_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ItemView is an owned instance priced at its own quality.
type ItemView struct {
	InstanceID    string  `json:"instance_id"`
	TemplateID    string  `json:"template_id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	RarityTier    int     `json:"rarity_tier"`
	Quality       float64 `json:"quality"`
	AdjustedPrice int     `json:"adjusted_price"`
	SellValue     int     `json:"sell_value"`
}

// HoldingsView is a read-only picture of a player's session.
type HoldingsView struct {
	PlayerID string       `json:"player_id"`
	Balance  int          `json:"balance"`
	Cases    []CaseView   `json:"cases"`
	Items    []ItemView   `json:"items"`
	Pending  *domain.Drop `json:"pending,omitempty"`
}

// HoldingsQuery filters and orders the item list. The zero value lists every
// item in acquisition order.
type HoldingsQuery struct {
	Category string
	SortBy   string
	Desc     bool
}

// Holdings returns the player's cases, items, balance and pending drop.
func (e *Engine) Holdings(ctx context.Context, playerID string, q HoldingsQuery) (*HoldingsView, error) {
	switch q.SortBy {
	case "", SortByAcquired, SortByPrice, SortByQuality:
	default:
		return nil, fmt.Errorf("%w: sort field %q", domain.ErrInvalidInput, q.SortBy)
	}

	ctx = logger.WithPlayerID(ctx, playerID)
	var view *HoldingsView
	err := e.sessions.View(ctx, playerID, func(st *session.State) error {
		view = e.buildView(st, q)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (e *Engine) buildView(st *session.State, q HoldingsQuery) *HoldingsView {
	view := &HoldingsView{
		PlayerID: st.PlayerID,
		Balance:  st.Wallet.Balance(),
		Cases:    []CaseView{},
		Items:    []ItemView{},
	}
	if st.Pending != nil {
		pending := *st.Pending
		view.Pending = &pending
	}

	for _, slot := range st.Holdings.Cases() {
		name := slot.CaseID
		if c, ok := e.catalog.Case(slot.CaseID); ok {
			name = c.Name
		}
		view.Cases = append(view.Cases, CaseView{CaseID: slot.CaseID, Name: name, Quantity: slot.Quantity})
	}

	for _, inst := range st.Holdings.Instances() {
		tmpl, ok := st.LookupTemplate(e.catalog, inst.TemplateID)
		if !ok {
			continue
		}
		if q.Category != "" && q.Category != "all" && tmpl.Category != q.Category {
			continue
		}
		adjusted := pricing.AdjustedPrice(tmpl.BasePrice, inst.Quality)
		view.Items = append(view.Items, ItemView{
			InstanceID:    inst.ID,
			TemplateID:    tmpl.ID,
			Name:          tmpl.Name,
			Category:      tmpl.Category,
			RarityTier:    tmpl.RarityTier,
			Quality:       inst.Quality,
			AdjustedPrice: adjusted,
			SellValue:     pricing.LiquidationValue(adjusted),
		})
	}

	sortItems(view.Items, q.SortBy, q.Desc)
	return view
}

func sortItems(items []ItemView, field string, desc bool) {
	var cmp func(a, b ItemView) int
	switch field {
	case SortByPrice:
		cmp = func(a, b ItemView) int { return a.AdjustedPrice - b.AdjustedPrice }
	case SortByQuality:
		cmp = func(a, b ItemView) int {
			switch {
			case a.Quality < b.Quality:
				return -1
			case a.Quality > b.Quality:
				return 1
			}
			return 0
		}
	default:
		if desc {
			slices.Reverse(items)
		}
		return
	}
	if desc {
		asc := cmp
		cmp = func(a, b ItemView) int { return asc(b, a) }
	}
	slices.SortStableFunc(items, cmp)
}
