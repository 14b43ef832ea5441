package pricing

// Segment boundaries of the quality → multiplier curve
const (
	boundaryLow     = 0.5
	boundaryMid     = 0.75
	boundaryHigh    = 0.9
	boundaryAnchor  = 0.995
	boundaryPremium = 0.999
)

// Multipliers at the linear segment boundaries
const (
	multiplierFloor   = 0.40
	multiplierLow     = 0.65
	multiplierMid     = 0.75
	multiplierHigh    = 1.00
	multiplierFixed   = 8.00
	multiplierPremium = 10.00
)

// premiumStep is the multiplier gained per 0.0001 of quality above 0.999.
const premiumStep = 10000.0

// LiquidationRatio is the share of an adjusted price credited when an item is sold back.
const LiquidationRatio = 0.88

type anchor struct {
	quality    float64
	multiplier float64
}

// highAnchors define the piecewise-linear region [0.9, 0.995].
var highAnchors = []anchor{
	{0.90, 1.00},
	{0.91, 1.05},
	{0.93, 1.30},
	{0.95, 1.70},
	{0.99, 3.00},
	{0.995, 5.00},
}
