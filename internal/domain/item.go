package domain

import "time"

// ItemTemplate is an immutable catalog entry. ID is unique for the lifetime of the catalog.
type ItemTemplate struct {
	ID         string `json:"id" yaml:"id" validate:"required,max=64"`
	Name       string `json:"name" yaml:"name" validate:"required,max=128"`
	BasePrice  int    `json:"base_price" yaml:"base_price" validate:"gte=0"`
	Category   string `json:"category" yaml:"category" validate:"required,max=32"`
	RarityTier int    `json:"rarity_tier,omitempty" yaml:"rarity_tier" validate:"gte=0"` // 0 = common
}

// ItemInstance is a concrete owned unit of a template.
// Quality is assigned once at creation and never changes.
type ItemInstance struct {
	ID         string    `json:"id"`
	TemplateID string    `json:"template_id"`
	Quality    float64   `json:"quality"`
	AcquiredAt time.Time `json:"acquired_at"`
}

// Case is an immutable container definition with a fixed ordered pool of template ids.
type Case struct {
	ID    string   `json:"id" validate:"required,max=64"`
	Name  string   `json:"name" validate:"required,max=128"`
	Price int      `json:"price" validate:"gte=0"`
	Pool  []string `json:"pool" validate:"dive,required"`
}

// ListingType identifies what a shop listing sells
type ListingType string

const (
	ListingTypeCase ListingType = "case"
	ListingTypeItem ListingType = "item"
)

// ShopListing offers a catalog case or item for purchase.
// A nil Stock means unlimited supply.
type ShopListing struct {
	ID    string      `json:"id" validate:"required"`
	Type  ListingType `json:"type" validate:"required,oneof=case item"`
	Price *int        `json:"price,omitempty" validate:"omitempty,gte=0"`
	Stock *int        `json:"stock,omitempty" validate:"omitempty,gte=0"`
}
