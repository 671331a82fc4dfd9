// Package formula provides the brewing arithmetic used to derive the
// calculated recipe fields: temperature-corrected gravity, alcohol by
// volume, and Sake Meter Value. All functions are pure.
package formula

import (
	"math"
)

// CalibratedTempC is the hydrometer calibration temperature.
const CalibratedTempC = 20.0

// waterDensity approximates water density (g/mL) at tempC with a cubic
// polynomial, valid for brewing temperatures.
func waterDensity(tempC float64) float64 {
	return 0.999005559846799 -
		0.000020305299748608*tempC +
		0.0000058871378337408*tempC*tempC -
		0.00000001357811768736*tempC*tempC*tempC
}

func round(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}

// CorrectedGravity corrects a gravity reading taken at measuredTempC to
// the hydrometer's calibration temperature. Rounded to 4 places.
func CorrectedGravity(measuredTempC, measuredGravity float64) float64 {
	pmt := waterDensity(measuredTempC)
	pct := waterDensity(CalibratedTempC)
	return round(measuredGravity*pmt/pct, 4)
}

// ABV derives alcohol by volume (percent) from the Brix reading and the
// corrected final gravity. Rounded to 1 place.
func ABV(brixPct, finalGravity float64) float64 {
	return round(1.646*brixPct-2.703*(145-145/finalGravity)-1.794, 1)
}

// SMV derives the Sake Meter Value from the corrected final gravity.
// Rounded to 1 place.
func SMV(finalGravity float64) float64 {
	return round(1443/finalGravity-1443, 1)
}

// DilutionResult describes the water addition needed to reach a target
// profile.
type DilutionResult struct {
	WaterToAddL  float64
	FinalVolumeL float64
	FinalBrix    float64
	FinalGravity float64
}

// Dilution estimates the water addition that moves the batch from the
// current Brix/gravity toward the target. Linear approximation; good
// enough for finishing adjustments.
func Dilution(
	currentBrix, currentGravity float64,
	targetBrix, targetGravity float64,
	currentVolumeL float64,
) DilutionResult {
	var waterToAdd float64
	if currentBrix > targetBrix && currentBrix > 0 {
		waterToAdd = currentVolumeL * (currentBrix/targetBrix - 1)
	}

	finalVolume := currentVolumeL + waterToAdd
	finalBrix := currentBrix
	finalGravity := currentGravity
	if finalVolume > 0 {
		finalBrix = currentBrix * currentVolumeL / finalVolume
		finalGravity = currentGravity * currentVolumeL / finalVolume
	}

	return DilutionResult{
		WaterToAddL:  round(waterToAdd, 2),
		FinalVolumeL: round(finalVolume, 2),
		FinalBrix:    round(finalBrix, 2),
		FinalGravity: round(finalGravity, 4),
	}
}
