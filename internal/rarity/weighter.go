package rarity

import (
	"fmt"
	"math"
	"sync"

	"github.com/osse101/CaseForge_Go/internal/domain"
)

// Default tuning
const (
	DefaultPower            = 1.5
	DefaultMinWeight        = 0.001
	DefaultGlobalMultiplier = 1.0
)

// Params tunes how sharply rarity suppresses selection probability.
type Params struct {
	// Power is the exponent applied to the rarity tier.
	Power float64 `json:"power" yaml:"power" validate:"gte=0"`
	// MinWeight keeps every outcome possible.
	MinWeight float64 `json:"min_weight" yaml:"min_weight" validate:"gt=0"`
	// GlobalMultiplier rescales every weight without changing relative odds above the floor.
	GlobalMultiplier float64 `json:"global_multiplier" yaml:"global_multiplier" validate:"gt=0"`
}

// DefaultParams returns the production rarity tuning.
func DefaultParams() Params {
	return Params{
		Power:            DefaultPower,
		MinWeight:        DefaultMinWeight,
		GlobalMultiplier: DefaultGlobalMultiplier,
	}
}

// Validate rejects parameters that would produce zero or negative weights.
func (p Params) Validate() error {
	if !finite(p.Power) || !finite(p.MinWeight) || !finite(p.GlobalMultiplier) {
		return fmt.Errorf("%w: rarity params must be finite (power=%v, min_weight=%v, global=%v)",
			domain.ErrInvalidInput, p.Power, p.MinWeight, p.GlobalMultiplier)
	}
	if p.Power < 0 {
		return fmt.Errorf("%w: rarity power must be non-negative (got %v)", domain.ErrInvalidInput, p.Power)
	}
	if p.MinWeight <= 0 {
		return fmt.Errorf("%w: min weight must be positive (got %v)", domain.ErrInvalidInput, p.MinWeight)
	}
	if p.GlobalMultiplier <= 0 {
		return fmt.Errorf("%w: global multiplier must be positive (got %v)", domain.ErrInvalidInput, p.GlobalMultiplier)
	}
	return nil
}

// Weight converts a rarity tier into a positive sampling weight.
func (p Params) Weight(tier int) float64 {
	raw := 1.0
	if tier > 0 {
		raw = 1.0 / math.Pow(float64(tier), p.Power)
	}
	return math.Max(p.MinWeight, raw*p.GlobalMultiplier)
}

// Weighter holds the live rarity tuning. Params may be replaced at runtime,
// so weights are derived on every call rather than cached.
type Weighter struct {
	mu     sync.RWMutex
	params Params
}

// NewWeighter creates a weighter with validated params.
func NewWeighter(params Params) (*Weighter, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Weighter{params: params}, nil
}

// Params returns the current tuning.
func (w *Weighter) Params() Params {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.params
}

// SetParams replaces the tuning; subsequent openings use it immediately.
func (w *Weighter) SetParams(params Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	w.mu.Lock()
	w.params = params
	w.mu.Unlock()
	return nil
}

// Weight returns the sampling weight for a rarity tier under the current tuning.
func (w *Weighter) Weight(tier int) float64 {
	return w.Params().Weight(tier)
}

// Weights returns the weights for a pool of templates, in pool order, using one
// consistent snapshot of the tuning.
func (w *Weighter) Weights(templates []domain.ItemTemplate) []float64 {
	p := w.Params()
	weights := make([]float64, len(templates))
	for i, t := range templates {
		weights[i] = p.Weight(t.RarityTier)
	}
	return weights
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
