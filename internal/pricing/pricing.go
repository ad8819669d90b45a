// Package pricing derives billable weight and amounts for gold items.
//
// Every function here is PURE:
// - No side effects
// - No DB access
// - Fully deterministic
package pricing

import "math"

// Net weight is carried at milligram precision on the printed nota.
const netWeightDecimals = 3

// ComputeNet applies the shrinkage deduction to a gross weight and rounds the
// result to 3 decimal places. Non-positive or malformed gross weights yield 0;
// shrinkage is clamped to [0, 100] rather than rejected.
func ComputeNet(grossWeight, shrinkagePct float64) float64 {
	if !isFinite(grossWeight) || grossWeight <= 0 {
		return 0
	}
	s := clampShrinkage(shrinkagePct)
	return roundTo(grossWeight*(1-s/100), netWeightDecimals)
}

// ComputeSubtotal multiplies net weight by the negotiated price per gram. The
// result keeps full float precision; display rounding happens at format time.
func ComputeSubtotal(netWeight, pricePerGram float64) float64 {
	if !isFinite(netWeight) || netWeight < 0 {
		netWeight = 0
	}
	if !isFinite(pricePerGram) || pricePerGram < 0 {
		pricePerGram = 0
	}
	return netWeight * pricePerGram
}

// Derive recomputes both figures from the original gross weight. Edit flows
// must always go through here so repeated shrinkage changes never compound
// rounding error from a previously derived net weight.
func Derive(grossWeight, shrinkagePct, pricePerGram float64) (netWeight, subtotal float64) {
	netWeight = ComputeNet(grossWeight, shrinkagePct)
	return netWeight, ComputeSubtotal(netWeight, pricePerGram)
}

func clampShrinkage(s float64) float64 {
	if math.IsNaN(s) || s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
