package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CaseForge_Go/internal/domain"
)

func TestLoadTuning_EmptyPathIsDefault(t *testing.T) {
	got, err := LoadTuning("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), got)
}

func TestLoadTuning_OverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	doc := `
rarity:
  power: 2.0
crafting:
  fee_rate: 0.01
quality:
  tail_chance: 0.01
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	got, err := LoadTuning(path)
	require.NoError(t, err)

	assert.Equal(t, 2.0, got.Rarity.Power)
	assert.Equal(t, 0.001, got.Rarity.MinWeight, "unset keys keep defaults")
	assert.Equal(t, 0.01, got.Crafting.FeeRate)
	assert.Equal(t, 0.01, got.Quality.TailChance)
	assert.Equal(t, 17.0, got.Quality.Alpha)
	assert.Len(t, got.Quality.Bands, 3)
}

func TestParseTuning_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "negative power", doc: "rarity:\n  power: -1\n"},
		{name: "zero min weight", doc: "rarity:\n  min_weight: 0\n"},
		{name: "bad beta", doc: "quality:\n  alpha: 0\n"},
		{name: "fee rate of one", doc: "crafting:\n  fee_rate: 1\n"},
		{name: "NaN min weight", doc: "rarity:\n  min_weight: .nan\n"},
		{name: "infinite global multiplier", doc: "rarity:\n  global_multiplier: .inf\n"},
		{name: "NaN tail chance", doc: "quality:\n  tail_chance: .nan\n"},
		{name: "NaN alpha", doc: "quality:\n  alpha: .nan\n"},
		{name: "NaN fee rate", doc: "crafting:\n  fee_rate: .nan\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTuning([]byte(tt.doc))
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	_, err := ParseTuning([]byte("rarity: [unclosed"))
	assert.Error(t, err)
}

func TestLoadTuning_MissingFile(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
