package handler

import (
	"net/http"

	"github.com/osse101/CaseForge_Go/internal/logger"
	"github.com/osse101/CaseForge_Go/internal/rarity"
)

// HandleGetRarity serves GET /api/v1/admin/rarity
func HandleGetRarity(engine Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, engine.RarityParams())
	}
}

// HandleSetRarity serves PUT /api/v1/admin/rarity. The new parameters apply
// to every opening that starts afterwards.
func HandleSetRarity(engine Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p rarity.Params
		if !decodeAndValidate(w, r, &p, "set rarity") {
			return
		}
		if err := engine.SetRarityParams(r.Context(), p); err != nil {
			respondServiceError(w, r, err)
			return
		}
		logger.FromContext(r.Context()).Info(LogMsgRarityRetuned, "remote_addr", r.RemoteAddr)
		respondJSON(w, http.StatusOK, engine.RarityParams())
	}
}
