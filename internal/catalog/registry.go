package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/osse101/CaseForge_Go/internal/domain"
)

// FreeGrant is a case handed to every player once.
type FreeGrant struct {
	CaseID   string `json:"case_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

// Registry is the immutable catalog of item templates, cases, free grants and
// shop listings. It is built once by the loader and then only read, so it is
// safe for concurrent use.
type Registry struct {
	items     []domain.ItemTemplate
	itemIndex map[string]int
	cases     []domain.Case
	caseIndex map[string]int
	grants    []FreeGrant
	shop      []domain.ShopListing
}

// Item returns the template with the given id.
func (r *Registry) Item(id string) (domain.ItemTemplate, bool) {
	idx, ok := r.itemIndex[id]
	if !ok {
		return domain.ItemTemplate{}, false
	}
	return r.items[idx], true
}

// Items returns all templates in catalog order.
func (r *Registry) Items() []domain.ItemTemplate {
	return slices.Clone(r.items)
}

// Case returns the case with the given id.
func (r *Registry) Case(id string) (domain.Case, bool) {
	idx, ok := r.caseIndex[id]
	if !ok {
		return domain.Case{}, false
	}
	c := r.cases[idx]
	c.Pool = slices.Clone(c.Pool)
	return c, true
}

// Cases returns all cases from cheapest to most expensive. Ties keep catalog order.
func (r *Registry) Cases() []domain.Case {
	out := make([]domain.Case, len(r.cases))
	for i, c := range r.cases {
		c.Pool = slices.Clone(c.Pool)
		out[i] = c
	}
	slices.SortStableFunc(out, func(a, b domain.Case) int {
		return cmp.Compare(a.Price, b.Price)
	})
	return out
}

// PoolTemplates resolves a case pool into templates, preserving pool order.
func (r *Registry) PoolTemplates(caseID string) ([]domain.ItemTemplate, error) {
	c, ok := r.Case(caseID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCaseNotFound, caseID)
	}
	if len(c.Pool) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyPool, caseID)
	}
	out := make([]domain.ItemTemplate, 0, len(c.Pool))
	for _, id := range c.Pool {
		t, ok := r.Item(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
		}
		out = append(out, t)
	}
	return out, nil
}

// FreeGrants returns the once-per-player case grants.
func (r *Registry) FreeGrants() []FreeGrant {
	return slices.Clone(r.grants)
}

// ShopListings returns the configured listings in catalog order.
func (r *Registry) ShopListings() []domain.ShopListing {
	return slices.Clone(r.shop)
}

// ListingPrice returns the listing's price override, or the catalog price of what it sells.
func (r *Registry) ListingPrice(l domain.ShopListing) (int, error) {
	if l.Price != nil {
		return *l.Price, nil
	}
	switch l.Type {
	case domain.ListingTypeCase:
		if c, ok := r.Case(l.ID); ok {
			return c.Price, nil
		}
		return 0, fmt.Errorf("%w: %s", domain.ErrCaseNotFound, l.ID)
	case domain.ListingTypeItem:
		if t, ok := r.Item(l.ID); ok {
			return t.BasePrice, nil
		}
		return 0, fmt.Errorf("%w: %s", domain.ErrItemNotFound, l.ID)
	default:
		return 0, fmt.Errorf("%w: listing type %q", domain.ErrInvalidInput, l.Type)
	}
}

// ItemsByCategory returns templates whose category matches exactly, in catalog order.
func (r *Registry) ItemsByCategory(category string) []domain.ItemTemplate {
	var out []domain.ItemTemplate
	for _, t := range r.items {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// FilterItems is ItemsByCategory with "" or "all" meaning every template.
func (r *Registry) FilterItems(category string) []domain.ItemTemplate {
	if category == "" || strings.EqualFold(category, "all") {
		return r.Items()
	}
	return r.ItemsByCategory(category)
}

// Categories returns the distinct item categories in first-seen order.
func (r *Registry) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range r.items {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	return out
}

// SortItems returns a sorted copy of items. Unknown fields sort by price.
func SortItems(items []domain.ItemTemplate, field string, desc bool) []domain.ItemTemplate {
	out := slices.Clone(items)
	key := func(t domain.ItemTemplate) int { return t.BasePrice }
	if field == SortByRarity {
		key = func(t domain.ItemTemplate) int { return t.RarityTier }
	}
	slices.SortStableFunc(out, func(a, b domain.ItemTemplate) int {
		if desc {
			return cmp.Compare(key(b), key(a))
		}
		return cmp.Compare(key(a), key(b))
	})
	return out
}
