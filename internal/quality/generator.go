package quality

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/utils"
)

// Sampler produces a quality value in [0, 1) for a newly acquired item instance.
// Callers depend on this interface so tuning can be swapped without touching them.
type Sampler interface {
	Sample() float64
}

// TailBand is one of the nested ultra-rare ranges a boosted draw can land in.
type TailBand struct {
	Weight float64 `yaml:"weight"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
}

// Params tunes the generator.
type Params struct {
	Alpha      float64    `yaml:"alpha"`
	Beta       float64    `yaml:"beta"`
	TailChance float64    `yaml:"tail_chance"`
	Bands      []TailBand `yaml:"bands"`
}

// DefaultParams returns the production quality distribution.
func DefaultParams() Params {
	return Params{
		Alpha:      DefaultAlpha,
		Beta:       DefaultBeta,
		TailChance: DefaultTailChance,
		Bands: []TailBand{
			{Weight: 0.60, Min: 0.9900, Max: 0.9950},
			{Weight: 0.35, Min: 0.9951, Max: 0.9989},
			{Weight: 0.05, Min: 0.9990, Max: 0.9999},
		},
	}
}

// Validate checks the parameters describe a usable distribution.
func (p Params) Validate() error {
	if !finite(p.Alpha) || !finite(p.Beta) || !finite(p.TailChance) {
		return fmt.Errorf("%w: shape and tail parameters must be finite (alpha=%v, beta=%v, tail=%v)", domain.ErrInvalidInput, p.Alpha, p.Beta, p.TailChance)
	}
	if p.Alpha <= 0 || p.Beta <= 0 {
		return fmt.Errorf("%w: beta shape parameters must be positive (alpha=%v, beta=%v)", domain.ErrInvalidInput, p.Alpha, p.Beta)
	}
	if p.TailChance < 0 || p.TailChance > 1 {
		return fmt.Errorf("%w: tail chance must be within [0,1] (got %v)", domain.ErrInvalidInput, p.TailChance)
	}
	if p.TailChance > 0 && len(p.Bands) == 0 {
		return fmt.Errorf("%w: tail chance set without bands", domain.ErrInvalidInput)
	}
	for i, b := range p.Bands {
		if !finite(b.Weight) || !finite(b.Min) || !finite(b.Max) {
			return fmt.Errorf("%w: band %d has a non-finite value", domain.ErrInvalidInput, i)
		}
		if b.Weight <= 0 {
			return fmt.Errorf("%w: band %d weight must be positive", domain.ErrInvalidInput, i)
		}
		if b.Min < 0 || b.Max > 1 || b.Min >= b.Max {
			return fmt.Errorf("%w: band %d range [%v, %v) is invalid", domain.ErrInvalidInput, i, b.Min, b.Max)
		}
	}
	return nil
}

// Generator samples a Beta-distributed base quality with a rare fat right tail.
type Generator struct {
	params    Params
	base      distuv.Beta
	rng       *rand.Rand
	bandTotal float64
}

// NewGenerator builds a generator drawing from rng. The same rng may be shared with
// other engine components; reseeding it makes every draw reproducible.
func NewGenerator(params Params, rng *rand.Rand) (*Generator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	total := 0.0
	for _, b := range params.Bands {
		total += b.Weight
	}
	return &Generator{
		params:    params,
		base:      distuv.Beta{Alpha: params.Alpha, Beta: params.Beta, Src: rng},
		rng:       rng,
		bandTotal: total,
	}, nil
}

// Params returns the generator's tuning.
func (g *Generator) Params() Params {
	return g.params
}

// Sample returns a quality in [0, 1), rounded to six decimal places.
func (g *Generator) Sample() float64 {
	q := g.base.Rand()

	if g.rng.Float64() < g.params.TailChance {
		band := g.pickBand(g.rng.Float64())
		q = utils.UniformRange(g.rng.Float64(), band.Min, band.Max)
	}

	return Normalize(q)
}

// pickBand selects a tail band from a [0,1) roll proportionally to band weights.
func (g *Generator) pickBand(roll float64) TailBand {
	target := roll * g.bandTotal
	acc := 0.0
	for _, b := range g.params.Bands {
		acc += b.Weight
		if target < acc {
			return b
		}
	}
	return g.params.Bands[len(g.params.Bands)-1]
}

// Normalize clamps q to the quality domain and rounds it to canonical precision.
// The result is always strictly below 1.0.
func Normalize(q float64) float64 {
	q = utils.ClampFloat(q, domain.MinQuality, domain.MaxQuality)
	q = utils.RoundTo(q, domain.QualityPrecision)
	if q >= 1.0 {
		return domain.MaxQuality
	}
	return q
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
