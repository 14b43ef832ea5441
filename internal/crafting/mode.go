package crafting

import (
	"fmt"

	"github.com/osse101/CaseForge_Go/internal/domain"
)

// Mode selects how a craft values its target and decides success.
type Mode string

const (
	ModeProbabilistic Mode = "probabilistic"
	ModeDeterministic Mode = "deterministic"
	ModeFusion        Mode = "fusion"
	ModeUpgrade       Mode = "upgrade"
)

// Modes lists every supported mode.
var Modes = []Mode{ModeProbabilistic, ModeDeterministic, ModeFusion, ModeUpgrade}

// Tier is a success chance in percent.
type Tier int

const (
	Tier50 Tier = 50
	Tier35 Tier = 35
	Tier25 Tier = 25
	Tier10 Tier = 10
)

// tierSpec pairs a tier's value multiplier with its rare boost probability.
type tierSpec struct {
	multiplier float64
	boost      float64
}

var tiers = map[Tier]tierSpec{
	Tier50: {multiplier: 1.10, boost: 0.001},
	Tier35: {multiplier: 1.6, boost: 0.002},
	Tier25: {multiplier: 2.5, boost: 0.005},
	Tier10: {multiplier: 6.0, boost: 0.02},
}

// Tiers lists every supported tier, safest first.
var Tiers = []Tier{Tier50, Tier35, Tier25, Tier10}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidMode, s)
	}
	return m, nil
}

// Valid reports whether m is a supported mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeProbabilistic, ModeDeterministic, ModeFusion, ModeUpgrade:
		return true
	}
	return false
}

// Rolled reports whether the mode can fail.
func (m Mode) Rolled() bool {
	return m == ModeProbabilistic || m == ModeUpgrade
}

// Valid reports whether t is a supported tier.
func (t Tier) Valid() bool {
	_, ok := tiers[t]
	return ok
}

// Chance is the success probability of the tier.
func (t Tier) Chance() float64 {
	return float64(t) / 100.0
}

// effectiveTier is the tier whose boost applies. Modes that never fail ignore
// the requested tier and use the safest one.
func effectiveTier(m Mode, t Tier) Tier {
	if m.Rolled() {
		return t
	}
	return Tier50
}

// targetMultiplier scales the adjusted input sum into the target value.
func targetMultiplier(m Mode, t Tier, inputs int) float64 {
	switch m {
	case ModeProbabilistic:
		return tiers[t].multiplier
	case ModeFusion:
		return BaseMultiplier + FusionStepPerInput*float64(inputs-1)
	default:
		return BaseMultiplier
	}
}

// boostProbability is the chance a craft draws a full quality sample.
func boostProbability(m Mode, t Tier) float64 {
	return tiers[effectiveTier(m, t)].boost
}

// validateRequest checks everything that does not need player state.
func validateRequest(m Mode, t Tier, instanceIDs []string) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidMode, m)
	}
	if m.Rolled() && !t.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrInvalidTier, t)
	}

	n := len(instanceIDs)
	if m == ModeUpgrade {
		if n != UpgradeInputs {
			return fmt.Errorf("%w: "+ErrMsgUpgradeCountFmt, domain.ErrInvalidInput, UpgradeInputs, n)
		}
	} else if n < MinInputs || n > MaxInputs {
		return fmt.Errorf("%w: "+ErrMsgInputCountFmt, domain.ErrInvalidInput, m, MinInputs, MaxInputs, n)
	}

	seen := make(map[string]struct{}, n)
	for _, id := range instanceIDs {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: "+ErrMsgDuplicateInputFmt, domain.ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
