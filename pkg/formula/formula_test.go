package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrectedGravity(t *testing.T) {
	// A reading at the calibration temperature needs no correction.
	assert.InDelta(t, 1.010, CorrectedGravity(20, 1.010), 0.00001)

	// A warmer sample reads low, so the correction raises it.
	got := CorrectedGravity(25, 1.010)
	assert.InDelta(t, 1.0111, got, 0.00001)

	// Rounded to 4 decimal places.
	assert.Equal(t, got, CorrectedGravity(25, 1.010))
}

func TestABV(t *testing.T) {
	tests := []struct {
		msg          string
		brixPct      float64
		finalGravity float64
		want         float64
	}{
		{"typical finished batch", 12.5, 1.010, 14.9},
		{"dry batch", 10.0, 0.998, 15.5},
	}

	for _, tt := range tests {
		got := ABV(tt.brixPct, tt.finalGravity)
		assert.InDelta(t, tt.want, got, 0.01, tt.msg)
	}
}

func TestSMV(t *testing.T) {
	tests := []struct {
		msg          string
		finalGravity float64
		want         float64
	}{
		{"sweet side", 1.010, -14.3},
		{"dry side", 0.998, 2.9},
		{"water", 1.0, 0.0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, SMV(tt.finalGravity), 0.01, tt.msg)
	}
}

func TestDilution(t *testing.T) {
	got := Dilution(14, 1.020, 12, 1.010, 10)

	assert.InDelta(t, 1.67, got.WaterToAddL, 0.001)
	assert.InDelta(t, 11.67, got.FinalVolumeL, 0.001)
	assert.InDelta(t, 12.0, got.FinalBrix, 0.001)
}

func TestDilution_NoWaterNeeded(t *testing.T) {
	got := Dilution(11, 1.008, 12, 1.010, 10)

	assert.Zero(t, got.WaterToAddL)
	assert.InDelta(t, 10.0, got.FinalVolumeL, 0.001)
	assert.InDelta(t, 11.0, got.FinalBrix, 0.001)
	assert.InDelta(t, 1.008, got.FinalGravity, 0.0001)
}
