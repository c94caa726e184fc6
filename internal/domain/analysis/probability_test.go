package analysis

import (
	"math"
	"testing"
)

func sum(probs map[string]float64) float64 {
	var total float64
	for _, v := range probs {
		total += v
	}
	return total
}

func TestDerive_SumsToOne(t *testing.T) {
	inputs := []map[string]float64{
		{"a": 0.0, "b": 0.0},
		{"a": 0.5, "b": 0.5},
		{"a": 1.0, "b": 1.0},
		{"a": 0.1, "b": 0.9, "c": 0.3},
	}

	for _, params := range []ModalityParams{VideoParams, AudioParams} {
		for _, scores := range inputs {
			probs := Derive(scores, params)
			if len(probs) != 5 {
				t.Fatalf("expected 5 labels, got %d: %v", len(probs), probs)
			}
			if s := sum(probs); math.Abs(s-1.0) > 0.05 {
				t.Errorf("sum %f out of rounding tolerance for scores %v", s, scores)
			}
			for label, p := range probs {
				if p < 0 {
					t.Errorf("negative probability %f for %s", p, label)
				}
			}
		}
	}
}

func TestDerive_FixedLabelSet(t *testing.T) {
	probs := Derive(map[string]float64{"x": 0.4}, VideoParams)
	want := map[string]bool{}
	for _, c := range Conditions {
		want[c] = true
	}
	for label := range probs {
		if !want[label] {
			t.Errorf("unexpected label %q", label)
		}
	}
	for _, c := range Conditions {
		if _, ok := probs[c]; !ok {
			t.Errorf("missing label %q", c)
		}
	}
}

func TestDerive_NormalFloor(t *testing.T) {
	// Maximum risk drives Normal to its floor before renormalization.
	probs := Derive(map[string]float64{"a": 1.0}, VideoParams)
	if probs["Normal"] <= 0 {
		t.Error("Normal must stay positive at maximum risk")
	}

	// Zero risk yields a Normal-dominated distribution.
	probs = Derive(map[string]float64{"a": 0.0}, VideoParams)
	if probs["Normal"] < 0.85 {
		t.Errorf("expected Normal-dominated distribution at zero risk, got %v", probs)
	}
}

func TestCombine_AllNormal(t *testing.T) {
	combined := Combine(map[string]float64{"Normal": 1.0}, map[string]float64{"Normal": 1.0})
	if combined["Normal"] != 1.0 {
		t.Errorf("expected all-normal combination, got %v", combined)
	}
}

func TestCombine_Weights(t *testing.T) {
	combined := Combine(map[string]float64{"A": 1.0}, map[string]float64{"B": 1.0})
	if combined["A"] != 0.6 {
		t.Errorf("expected A=0.6, got %f", combined["A"])
	}
	if combined["B"] != 0.4 {
		t.Errorf("expected B=0.4, got %f", combined["B"])
	}
}

func TestCombine_MissingLabelsZero(t *testing.T) {
	video := map[string]float64{"Normal": 0.5, "Stroke": 0.5}
	audio := map[string]float64{"Normal": 1.0}

	combined := Combine(video, audio)
	// Stroke only contributes via the video weight: 0.5*0.6 = 0.3.
	if combined["Stroke"] != 0.3 {
		t.Errorf("expected Stroke=0.3, got %f", combined["Stroke"])
	}
	if combined["Normal"] != 0.7 {
		t.Errorf("expected Normal=0.7, got %f", combined["Normal"])
	}
}

func TestNormalize_ZeroSumLeftAlone(t *testing.T) {
	in := map[string]float64{"A": 0, "B": 0}
	out := normalize(in)
	if out["A"] != 0 || out["B"] != 0 {
		t.Errorf("zero-sum distribution should be left as computed, got %v", out)
	}
}

func TestAverageScores(t *testing.T) {
	avg := AverageScores([]map[string]float64{
		{"a": 0.2, "b": 0.4},
		{"a": 0.6, "b": 0.8},
	})
	if math.Abs(avg["a"]-0.4) > 1e-9 {
		t.Errorf("expected a=0.4, got %f", avg["a"])
	}
	if math.Abs(avg["b"]-0.6) > 1e-9 {
		t.Errorf("expected b=0.6, got %f", avg["b"])
	}
}
