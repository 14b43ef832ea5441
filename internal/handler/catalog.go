package handler

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/osse101/CaseForge_Go/internal/catalog"
	"github.com/osse101/CaseForge_Go/internal/domain"
)

// CatalogResponse lists cases and (optionally filtered) item templates.
type CatalogResponse struct {
	Cases []domain.Case         `json:"cases"`
	Items []domain.ItemTemplate `json:"items"`
}

// PriceMultiplierResponse is the curve value at one quality.
type PriceMultiplierResponse struct {
	Quality    float64 `json:"quality"`
	Multiplier float64 `json:"multiplier"`
}

// HandleGetCatalog serves GET /api/v1/catalog?category=&sort=price|rarity&desc=
func HandleGetCatalog(engine Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		sortBy := q.Get("sort")
		switch sortBy {
		case "", catalog.SortByPrice, catalog.SortByRarity:
		default:
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, "sort"))
			return
		}
		desc, ok := boolQuery(w, r, "desc")
		if !ok {
			return
		}

		items := engine.CatalogItems(q.Get("category"), sortBy, desc)
		if items == nil {
			items = []domain.ItemTemplate{}
		}
		respondJSON(w, http.StatusOK, CatalogResponse{
			Cases: engine.CatalogCases(),
			Items: items,
		})
	}
}

// HandlePriceMultiplier serves GET /api/v1/price-multiplier?quality=
func HandlePriceMultiplier(engine Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("quality")
		q, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(q) || q < domain.MinQuality || q > 1 {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, "quality"))
			return
		}
		respondJSON(w, http.StatusOK, PriceMultiplierResponse{
			Quality:    q,
			Multiplier: engine.PriceMultiplier(q),
		})
	}
}
