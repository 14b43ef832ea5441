package handler

import (
	"net/http"

	"github.com/osse101/CaseForge_Go/internal/crafting"
	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/game"
)

// ResolveDropRequest keeps or sells the pending drop.
type ResolveDropRequest struct {
	Choice string `json:"choice" validate:"required,oneof=keep sell"`
}

// CraftRequest burns the listed instances.
type CraftRequest struct {
	InstanceIDs []string `json:"instance_ids" validate:"required,min=1,max=8,unique,dive,required"`
	Mode        string   `json:"mode" validate:"required"`
	Tier        int      `json:"tier" validate:"omitempty,oneof=50 35 25 10"`
}

// DepositRequest tops up a wallet.
type DepositRequest struct {
	Amount int `json:"amount" validate:"gt=0,lte=1000000000"`
}

// BalanceResponse reports a wallet after a deposit.
type BalanceResponse struct {
	Balance int `json:"balance"`
}

// HandleGetHoldings serves GET /players/{playerID}?category=&sort=&desc=
func HandleGetHoldings(engine Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := pathParam(w, r, "playerID")
		if !ok {
			return
		}
		desc, ok := boolQuery(w, r, "desc")
		if !ok {
			return
		}
		q := game.HoldingsQuery{
			Category: r.URL.Query().Get("category"),
			SortBy:   r.URL.Query().Get("sort"),
			Desc:     desc,
		}

		view, err := engine.Holdings(r.Context(), playerID, q)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

// HandleOpenCase serves POST /players/{playerID}/cases/{caseID}/open
func HandleOpenCase(engine Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := pathParam(w, r, "playerID")
		if !ok {
			return
		}
		caseID, ok := pathParam(w, r, "caseID")
		if !ok {
			return
		}

		drop, err := engine.OpenContainer(r.Context(), playerID, caseID)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, drop)
	}
}

// HandleResolveDrop serves POST /players/{playerID}/drop/resolve
func HandleResolveDrop(engine Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := pathParam(w, r, "playerID")
		if !ok {
			return
		}
		var req ResolveDropRequest
		if !decodeAndValidate(w, r, &req, "resolve drop") {
			return
		}

		res, err := engine.ResolveKeepOrSell(r.Context(), playerID, domain.DropChoice(req.Choice))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleCraft serves POST /players/{playerID}/craft
func HandleCraft(engine Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := pathParam(w, r, "playerID")
		if !ok {
			return
		}
		var req CraftRequest
		if !decodeAndValidate(w, r, &req, "craft") {
			return
		}
		mode, err := crafting.ParseMode(req.Mode)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		res, err := engine.CraftItems(r.Context(), playerID, req.InstanceIDs, mode, crafting.Tier(req.Tier))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleDeposit serves POST /players/{playerID}/deposit
func HandleDeposit(engine Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := pathParam(w, r, "playerID")
		if !ok {
			return
		}
		var req DepositRequest
		if !decodeAndValidate(w, r, &req, "deposit") {
			return
		}

		balance, err := engine.Deposit(r.Context(), playerID, req.Amount)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, BalanceResponse{Balance: balance})
	}
}

// HandleSellItem serves POST /players/{playerID}/items/{instanceID}/sell
func HandleSellItem(engine Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := pathParam(w, r, "playerID")
		if !ok {
			return
		}
		instanceID, ok := pathParam(w, r, "instanceID")
		if !ok {
			return
		}

		res, err := engine.Sell(r.Context(), playerID, instanceID)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}
