package analysis

import "math/rand"

// ScoreSource produces one feature-score observation: label → risk score in
// [0,1]. The default implementation is an explicit stand-in for a real
// feature-extraction pipeline; swapping in a real extractor must not touch
// the aggregation or recommendation logic.
type ScoreSource interface {
	Scores() map[string]float64
}

// RandomSource emits uniform random scores over a fixed label set.
type RandomSource struct {
	labels []string
	rng    *rand.Rand
}

func NewRandomSource(labels []string, seed int64) *RandomSource {
	return &RandomSource{
		labels: labels,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (s *RandomSource) Scores() map[string]float64 {
	out := make(map[string]float64, len(s.labels))
	for _, label := range s.labels {
		out[label] = s.rng.Float64()
	}
	return out
}

// AverageScores averages a series of observations per label. Labels missing
// from an observation count as absent, not zero.
func AverageScores(observations []map[string]float64) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, obs := range observations {
		for label, v := range obs {
			sums[label] += v
			counts[label]++
		}
	}

	avg := make(map[string]float64, len(sums))
	for label, sum := range sums {
		avg[label] = sum / float64(counts[label])
	}
	return avg
}
