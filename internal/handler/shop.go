package handler

import (
	"net/http"

	"github.com/osse101/CaseForge_Go/internal/economy"
)

// BuyRequest purchases one unit of a listing.
type BuyRequest struct {
	ListingID string `json:"listing_id" validate:"required,max=64"`
}

// ShopResponse wraps the current listings.
type ShopResponse struct {
	Listings []economy.Listing `json:"listings"`
}

// HandleListShop serves GET /api/v1/shop
func HandleListShop(engine Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listings := engine.ListShop(r.Context())
		if listings == nil {
			listings = []economy.Listing{}
		}
		respondJSON(w, http.StatusOK, ShopResponse{Listings: listings})
	}
}

// HandleBuy serves POST /players/{playerID}/shop/buy
func HandleBuy(engine Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := pathParam(w, r, "playerID")
		if !ok {
			return
		}
		var req BuyRequest
		if !decodeAndValidate(w, r, &req, "buy") {
			return
		}

		p, err := engine.Buy(r.Context(), playerID, req.ListingID)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}
