package analysis

import "math"

// ModalityParams tune how a modality's mean risk score maps onto the
// condition distribution. The floor/slope and split ratios are carried over
// from the screening protocol as-is; they have no documented derivation.
type ModalityParams struct {
	NormalFloor float64
	Slope       float64
	// Ratios split the non-Normal residual across the four conditions.
	Ratios map[string]float64
}

// VideoParams biases toward Normal with a 30% floor.
var VideoParams = ModalityParams{
	NormalFloor: 0.30,
	Slope:       1.2,
	Ratios: map[string]float64{
		"Parkinson's": 0.35,
		"Stroke":      0.25,
		"Alzheimer's": 0.25,
		"Brain Tumor": 0.15,
	},
}

// AudioParams biases toward Normal with a 35% floor.
var AudioParams = ModalityParams{
	NormalFloor: 0.35,
	Slope:       1.1,
	Ratios: map[string]float64{
		"Parkinson's": 0.30,
		"Alzheimer's": 0.30,
		"Stroke":      0.25,
		"Brain Tumor": 0.15,
	},
}

const (
	videoWeight = 0.6
	audioWeight = 0.4

	// The residual split never gets less than this, even when Normal
	// saturates the distribution; renormalization absorbs the overshoot.
	minResidual = 0.1
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func mean(scores map[string]float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, v := range scores {
		sum += v
	}
	return sum / float64(len(scores))
}

// normalize rescales values by their rounded sum so they total 1.0 within
// 2-decimal rounding. A zero sum leaves the input as computed; callers must
// tolerate that degenerate case.
func normalize(probs map[string]float64) map[string]float64 {
	var total float64
	for _, v := range probs {
		total += v
	}
	if total <= 0 {
		return probs
	}
	out := make(map[string]float64, len(probs))
	for k, v := range probs {
		out[k] = round2(v / total)
	}
	return out
}

// Derive maps a feature-score observation onto the fixed condition set: the
// mean score drives the Normal probability down a slope to a floor, and the
// residual splits across the remaining conditions by the modality ratios.
func Derive(scores map[string]float64, p ModalityParams) map[string]float64 {
	risk := mean(scores)
	normal := math.Max(p.NormalFloor, 1-risk*p.Slope)
	residual := math.Max(minResidual, 1-normal)

	probs := make(map[string]float64, len(p.Ratios)+1)
	probs["Normal"] = round2(normal)
	for condition, ratio := range p.Ratios {
		probs[condition] = round2(residual * ratio)
	}

	return normalize(probs)
}

// Combine blends two distributions with the fixed video/audio weights over
// the union of their labels (missing labels count as 0) and renormalizes.
func Combine(videoProbs, audioProbs map[string]float64) map[string]float64 {
	combined := make(map[string]float64)
	for label := range videoProbs {
		combined[label] = 0
	}
	for label := range audioProbs {
		combined[label] = 0
	}

	for label := range combined {
		combined[label] = round2(videoProbs[label]*videoWeight + audioProbs[label]*audioWeight)
	}

	return normalize(combined)
}
