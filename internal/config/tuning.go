package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/CaseForge_Go/internal/crafting"
	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/quality"
	"github.com/osse101/CaseForge_Go/internal/rarity"
)

// Tuning holds the game balance knobs that can be changed without a rebuild.
type Tuning struct {
	Rarity   rarity.Params   `yaml:"rarity"`
	Quality  quality.Params  `yaml:"quality"`
	Crafting crafting.Config `yaml:"crafting"`
}

// DefaultTuning returns the production balance.
func DefaultTuning() Tuning {
	return Tuning{
		Rarity:   rarity.DefaultParams(),
		Quality:  quality.DefaultParams(),
		Crafting: crafting.DefaultConfig(),
	}
}

// LoadTuning overlays the YAML file at path on the defaults. An empty path
// returns the defaults.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf(ErrMsgReadTuningFmt, err)
	}
	return parseTuning(data, path)
}

// ParseTuning overlays a YAML document on the defaults and validates the result.
func ParseTuning(data []byte) (Tuning, error) {
	return parseTuning(data, "<inline>")
}

func parseTuning(data []byte, source string) (Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf(ErrMsgParseTuningFmt, source, err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate checks every section.
func (t Tuning) Validate() error {
	if err := t.Rarity.Validate(); err != nil {
		return fmt.Errorf(ErrMsgInvalidTuningFmt, "rarity", err)
	}
	if err := t.Quality.Validate(); err != nil {
		return fmt.Errorf(ErrMsgInvalidTuningFmt, "quality", err)
	}
	if math.IsNaN(t.Crafting.FeeRate) || t.Crafting.FeeRate < 0 || t.Crafting.FeeRate >= 1 {
		return fmt.Errorf(ErrMsgInvalidFeeRateFmt, domain.ErrInvalidInput, t.Crafting.FeeRate)
	}
	return nil
}
