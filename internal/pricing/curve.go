package pricing

import (
	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/utils"
)

// Multiplier maps a quality value to a price multiplier.
// It is non-decreasing over [0, 1) and reproduces exact values at every segment
// boundary: 0.40 at 0, 1.00 at 0.9, 5.00 at 0.995, 8.00 just above it, 10.00 at 0.999.
func Multiplier(q float64) float64 {
	q = utils.ClampFloat(q, domain.MinQuality, domain.MaxQuality)

	switch {
	case q < boundaryLow:
		return lerp(q, 0, boundaryLow, multiplierFloor, multiplierLow)
	case q < boundaryMid:
		return lerp(q, boundaryLow, boundaryMid, multiplierLow, multiplierMid)
	case q < boundaryHigh:
		return lerp(q, boundaryMid, boundaryHigh, multiplierMid, multiplierHigh)
	case q <= boundaryAnchor:
		return anchored(q)
	case q < boundaryPremium:
		// (0.995, 0.999): flat band, including the gap above 0.9989
		return multiplierFixed
	default:
		return multiplierPremium + premiumStep*(q-boundaryPremium)
	}
}

// anchored interpolates between the high-quality anchors. q must lie in [0.9, 0.995].
func anchored(q float64) float64 {
	for i := 0; i < len(highAnchors)-1; i++ {
		lo, hi := highAnchors[i], highAnchors[i+1]
		if q < hi.quality {
			return lerp(q, lo.quality, hi.quality, lo.multiplier, hi.multiplier)
		}
	}
	return highAnchors[len(highAnchors)-1].multiplier
}

// lerp maps x from [x0, x1] linearly onto [y0, y1]; x == x0 returns y0 exactly.
func lerp(x, x0, x1, y0, y1 float64) float64 {
	return y0 + (y1-y0)*((x-x0)/(x1-x0))
}

// AdjustedValue is the unrounded value of an instance: basePrice × Multiplier(q).
func AdjustedValue(basePrice int, q float64) float64 {
	return float64(basePrice) * Multiplier(q)
}

// AdjustedPrice rounds the adjusted value to currency, never below 1.
func AdjustedPrice(basePrice int, q float64) int {
	price := utils.RoundInt(AdjustedValue(basePrice, q))
	if price < 1 {
		return 1
	}
	return price
}

// LiquidationValue is the amount credited for selling an item with the given adjusted price.
func LiquidationValue(adjustedPrice int) int {
	return utils.RoundInt(float64(adjustedPrice) * LiquidationRatio)
}
