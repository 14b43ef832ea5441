package event

import "time"

// Economy event types
const (
	CaseOpened     Type = "case.opened"
	DropResolved   Type = "drop.resolved"
	CraftCompleted Type = "craft.completed"
	ShopPurchased  Type = "shop.purchased"
	ItemSold       Type = "item.sold"
	FundsDeposited Type = "wallet.deposited"
)

// CaseOpenedPayloadV1 describes one opened case.
type CaseOpenedPayloadV1 struct {
	PlayerID      string  `json:"player_id"`
	CaseID        string  `json:"case_id"`
	TemplateID    string  `json:"template_id"`
	Quality       float64 `json:"quality"`
	AdjustedPrice int     `json:"adjusted_price"`
	Timestamp     int64   `json:"timestamp"`
}

// DropResolvedPayloadV1 describes a keep or sell decision.
type DropResolvedPayloadV1 struct {
	PlayerID   string `json:"player_id"`
	Choice     string `json:"choice"`
	TemplateID string `json:"template_id"`
	Credited   int    `json:"credited"`
	Timestamp  int64  `json:"timestamp"`
}

// CraftCompletedPayloadV1 describes one craft attempt, successful or not.
type CraftCompletedPayloadV1 struct {
	PlayerID         string  `json:"player_id"`
	Mode             string  `json:"mode"`
	Tier             int     `json:"tier"`
	Success          bool    `json:"success"`
	Burned           int     `json:"burned"`
	Cost             int     `json:"cost"`
	OutputTemplateID string  `json:"output_template_id"`
	Synthesized      bool    `json:"synthesized"`
	Quality          float64 `json:"quality"`
	Timestamp        int64   `json:"timestamp"`
}

// ShopPurchasedPayloadV1 describes a shop purchase.
type ShopPurchasedPayloadV1 struct {
	PlayerID    string `json:"player_id"`
	ListingID   string `json:"listing_id"`
	ListingType string `json:"listing_type"`
	Price       int    `json:"price"`
	Timestamp   int64  `json:"timestamp"`
}

// ItemSoldPayloadV1 describes an owned instance liquidated for money.
type ItemSoldPayloadV1 struct {
	PlayerID   string `json:"player_id"`
	TemplateID string `json:"template_id"`
	Amount     int    `json:"amount"`
	Timestamp  int64  `json:"timestamp"`
}

// FundsDepositedPayloadV1 describes a wallet top-up.
type FundsDepositedPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	Amount    int    `json:"amount"`
	Timestamp int64  `json:"timestamp"`
}

func newEvent(t Type, payload interface{}) Event {
	return Event{Version: EventSchemaVersion, Type: t, Payload: payload}
}

// NewCaseOpenedEvent creates a case opened event
func NewCaseOpenedEvent(playerID, caseID, templateID string, quality float64, adjustedPrice int) Event {
	return newEvent(CaseOpened, CaseOpenedPayloadV1{
		PlayerID:      playerID,
		CaseID:        caseID,
		TemplateID:    templateID,
		Quality:       quality,
		AdjustedPrice: adjustedPrice,
		Timestamp:     time.Now().Unix(),
	})
}

// NewDropResolvedEvent creates a drop resolved event
func NewDropResolvedEvent(playerID, choice, templateID string, credited int) Event {
	return newEvent(DropResolved, DropResolvedPayloadV1{
		PlayerID:   playerID,
		Choice:     choice,
		TemplateID: templateID,
		Credited:   credited,
		Timestamp:  time.Now().Unix(),
	})
}

// NewCraftCompletedEvent creates a craft completed event
func NewCraftCompletedEvent(p CraftCompletedPayloadV1) Event {
	p.Timestamp = time.Now().Unix()
	return newEvent(CraftCompleted, p)
}

// NewShopPurchasedEvent creates a shop purchase event
func NewShopPurchasedEvent(playerID, listingID, listingType string, price int) Event {
	return newEvent(ShopPurchased, ShopPurchasedPayloadV1{
		PlayerID:    playerID,
		ListingID:   listingID,
		ListingType: listingType,
		Price:       price,
		Timestamp:   time.Now().Unix(),
	})
}

// NewItemSoldEvent creates an item sold event
func NewItemSoldEvent(playerID, templateID string, amount int) Event {
	return newEvent(ItemSold, ItemSoldPayloadV1{
		PlayerID:   playerID,
		TemplateID: templateID,
		Amount:     amount,
		Timestamp:  time.Now().Unix(),
	})
}

// NewFundsDepositedEvent creates a deposit event
func NewFundsDepositedEvent(playerID string, amount int) Event {
	return newEvent(FundsDeposited, FundsDepositedPayloadV1{
		PlayerID:  playerID,
		Amount:    amount,
		Timestamp: time.Now().Unix(),
	})
}
