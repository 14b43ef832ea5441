package domain

import "time"

// DropChoice is the player's terminal decision on an opened drop.
type DropChoice string

const (
	ChoiceKeep DropChoice = "keep"
	ChoiceSell DropChoice = "sell"
)

// Drop is the outcome of opening a case while it awaits a keep or sell decision.
type Drop struct {
	ID            string    `json:"id"`
	CaseID        string    `json:"case_id"`
	TemplateID    string    `json:"template_id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	RarityTier    int       `json:"rarity_tier"`
	Quality       float64   `json:"quality"`
	AdjustedPrice int       `json:"adjusted_price"`
	SellValue     int       `json:"sell_value"`
	OpenedAt      time.Time `json:"opened_at"`
}
