package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiplier_ExactBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		quality  float64
		expected float64
	}{
		{name: "floor", quality: 0.0, expected: 0.40},
		{name: "low boundary", quality: 0.5, expected: 0.65},
		{name: "mid boundary", quality: 0.75, expected: 0.75},
		{name: "high boundary", quality: 0.9, expected: 1.00},
		{name: "anchor 0.91", quality: 0.91, expected: 1.05},
		{name: "anchor 0.93", quality: 0.93, expected: 1.30},
		{name: "anchor 0.95", quality: 0.95, expected: 1.70},
		{name: "anchor 0.99", quality: 0.99, expected: 3.00},
		{name: "anchor ceiling", quality: 0.995, expected: 5.00},
		{name: "just above anchor ceiling", quality: 0.9950001, expected: 8.00},
		{name: "fixed band", quality: 0.9989, expected: 8.00},
		{name: "gap before premium", quality: 0.99895, expected: 8.00},
		{name: "premium start", quality: 0.999, expected: 10.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Multiplier(tt.quality), 1e-9)
		})
	}

	// Exact equality where round-trip tests depend on it
	assert.Equal(t, 0.40, Multiplier(0.0))
	assert.Equal(t, 1.00, Multiplier(0.9))
	assert.Equal(t, 5.00, Multiplier(0.995))
	assert.Equal(t, 8.00, Multiplier(0.9950001))
	assert.Equal(t, 10.00, Multiplier(0.999))
}

func TestMultiplier_Interpolation(t *testing.T) {
	assert.InDelta(t, 0.525, Multiplier(0.25), 1e-9)
	assert.InDelta(t, 0.70, Multiplier(0.625), 1e-9)
	assert.InDelta(t, 0.875, Multiplier(0.825), 1e-9)
	assert.InDelta(t, 2.35, Multiplier(0.97), 1e-9)
	assert.InDelta(t, 4.0, Multiplier(0.9925), 1e-9)
	// +1.0 per 0.0001 above 0.999
	assert.InDelta(t, 11.0, Multiplier(0.9991), 1e-6)
	assert.InDelta(t, 15.0, Multiplier(0.9995), 1e-6)
}

func TestMultiplier_ContinuousAtBoundaries(t *testing.T) {
	const eps = 1e-9
	boundaries := []float64{0.5, 0.75, 0.9, 0.91, 0.93, 0.95, 0.99}

	for _, b := range boundaries {
		left := Multiplier(b - eps)
		right := Multiplier(b + eps)
		assert.InDelta(t, left, right, 1e-5, "curve must be continuous at %v", b)
		assert.InDelta(t, Multiplier(b), right, 1e-5)
	}
}

func TestMultiplier_StepsAtPremiumBands(t *testing.T) {
	// 0.995 and 0.999 are deliberate step-ups into the fixed and premium bands
	assert.InDelta(t, 5.0, Multiplier(0.995-1e-9), 1e-5)
	assert.Equal(t, 8.0, Multiplier(0.995+1e-9))
	assert.Equal(t, 8.0, Multiplier(0.999-1e-9))
	assert.InDelta(t, 10.0, Multiplier(0.999+1e-9), 1e-4)
}

func TestMultiplier_Monotonic(t *testing.T) {
	prev := Multiplier(0)
	for i := 1; i <= 999999; i++ {
		q := float64(i) / 1e6
		m := Multiplier(q)
		if m < prev-1e-12 {
			t.Fatalf("multiplier decreased at q=%v: %v < %v", q, m, prev)
		}
		prev = m
	}
}

func TestMultiplier_ClampsDomain(t *testing.T) {
	assert.Equal(t, Multiplier(0), Multiplier(-1))
	assert.Equal(t, Multiplier(0.999999), Multiplier(1.5))
	assert.InDelta(t, 19.99, Multiplier(1.0), 1e-6)
}

func TestAdjustedPrice(t *testing.T) {
	tests := []struct {
		name      string
		basePrice int
		quality   float64
		expected  int
	}{
		{name: "worst quality", basePrice: 100, quality: 0, expected: 40},
		{name: "par quality", basePrice: 250, quality: 0.9, expected: 250},
		{name: "rounds to nearest", basePrice: 5, quality: 0.5, expected: 3},
		{name: "floor of one", basePrice: 1, quality: 0, expected: 1},
		{name: "zero base still floors at one", basePrice: 0, quality: 0.5, expected: 1},
		{name: "premium", basePrice: 500, quality: 0.999, expected: 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AdjustedPrice(tt.basePrice, tt.quality))
		})
	}
}

func TestAdjustedValue(t *testing.T) {
	assert.InDelta(t, 40.0, AdjustedValue(100, 0), 1e-9)
	assert.InDelta(t, 2500.0, AdjustedValue(500, 0.995), 1e-9)
}

func TestLiquidationValue(t *testing.T) {
	assert.Equal(t, 88, LiquidationValue(100))
	assert.Equal(t, 35, LiquidationValue(40))
	assert.Equal(t, 1, LiquidationValue(1))
	assert.Equal(t, 0, LiquidationValue(0))
}
