package crafting

import (
	"math"

	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/utils"
)

// improvementCap bounds how far a craft can raise quality above the input
// average. Higher averages improve less.
func improvementCap(avg float64) float64 {
	switch {
	case avg < 0.8:
		return capBelow80
	case avg < 0.9:
		return capBelow90
	case avg < 0.95:
		return capBelow95
	default:
		return capHighAvgQ
	}
}

// newQuality draws the output quality. The base value is uniform in
// [avg, min(MaxQuality, avg+cap)]; with probability boost a full sample from
// sample replaces it when larger. The result is never below avg.
func newQuality(avg, boost float64, rnd func() float64, sample func() float64) float64 {
	hi := math.Min(domain.MaxQuality, avg+improvementCap(avg))
	q := avg
	if hi > avg {
		q = utils.UniformRange(rnd(), avg, hi)
	}

	if rnd() < boost {
		if boosted := sample(); boosted > hi {
			q = boosted
		}
	}

	q = utils.RoundTo(math.Min(q, domain.MaxQuality), domain.QualityPrecision)
	if q < avg {
		q = floorQuality(avg)
	}
	return q
}

// floorQuality is the smallest rounded quality not below avg. Float noise
// from averaging (0.15000000000000002) rounds down instead of gaining a step.
func floorQuality(avg float64) float64 {
	rounded := utils.RoundTo(avg, domain.QualityPrecision)
	if avg-rounded > averageNoise {
		rounded = utils.CeilTo(avg, domain.QualityPrecision)
	}
	return math.Min(domain.MaxQuality, rounded)
}
