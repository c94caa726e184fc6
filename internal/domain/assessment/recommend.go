package assessment

import "fmt"

// Recommendation thresholds. These are tuning values carried over from the
// screening protocol; they have no documented clinical derivation.
const (
	mmseCognitiveCutoff = 24
	mocaCognitiveCutoff = 26
	updrsMovementCutoff = 20
	nihssVascularCutoff = 0

	normalConfidenceCutoff = 0.5
	conditionRiskCutoff    = 0.35
	tumorRiskCutoff        = 0.25

	severeCognitiveCutoff = 20
	severeMotorCutoff     = 30
	severeStrokeCutoff    = 5

	referralConfidenceCutoff = 0.6
	urgentConditionCutoff    = 0.4
)

const (
	recNeuropsychTesting = "Comprehensive neuropsychological testing"
	recMovementDisorder  = "Movement disorder specialist consultation"
	recVascularNeurology = "Vascular neurology evaluation and stroke prevention"
	recDaTscan           = "Consider DaTscan imaging for Parkinson's disease evaluation"
	recAlzheimerMarkers  = "Alzheimer's disease biomarker testing"
	recStrokeWorkup      = "Comprehensive stroke workup and prevention strategies"
	recTumorMRI          = "Brain MRI with contrast for tumor evaluation"
)

// Recommendation is the outcome of the clinical decision table.
type Recommendation struct {
	Recommendations   []string `json:"recommendations"`
	NormalFinding     bool     `json:"normal_finding"`
	PrimaryConcern    string   `json:"primary_concern"`
	Confidence        float64  `json:"confidence"`
	ReferToSpecialist bool     `json:"refer_to_specialist"`
	ReferralReasons   []string `json:"referral_reasons,omitempty"`
}

func argmax(probs map[string]float64) (string, float64) {
	var best string
	var bestVal float64
	first := true
	for label, p := range probs {
		if first || p > bestVal {
			best, bestVal = label, p
			first = false
		}
	}
	return best, bestVal
}

// Recommend evaluates the decision table against the clinical assessment
// (nil when the visit skipped the wizard) and the combined probability
// distribution. Rules fire independently and append in a fixed order; a
// confident Normal prediction short-circuits the condition-specific rules.
func Recommend(ca *ClinicalAssessment, combined map[string]float64) Recommendation {
	concern, confidence := argmax(combined)
	rec := Recommendation{
		PrimaryConcern: concern,
		Confidence:     confidence,
	}

	if ca != nil {
		if ca.MMSE < mmseCognitiveCutoff || ca.MoCA < mocaCognitiveCutoff {
			rec.Recommendations = append(rec.Recommendations, recNeuropsychTesting)
		}
		if ca.UPDRS > updrsMovementCutoff || ca.Tremors == "Moderate" || ca.Tremors == "Severe" {
			rec.Recommendations = append(rec.Recommendations, recMovementDisorder)
		}
		if ca.NIHSS > nihssVascularCutoff || ca.PriorTIAStroke == "Yes" {
			rec.Recommendations = append(rec.Recommendations, recVascularNeurology)
		}
	}

	switch {
	case concern == "Normal" && confidence > normalConfidenceCutoff:
		rec.NormalFinding = true
	case concern == "Parkinson's" && confidence > conditionRiskCutoff:
		rec.Recommendations = append(rec.Recommendations, recDaTscan)
	case concern == "Alzheimer's" && confidence > conditionRiskCutoff:
		rec.Recommendations = append(rec.Recommendations, recAlzheimerMarkers)
	case concern == "Stroke" && confidence > conditionRiskCutoff:
		rec.Recommendations = append(rec.Recommendations, recStrokeWorkup)
	case concern == "Brain Tumor" && confidence > tumorRiskCutoff:
		rec.Recommendations = append(rec.Recommendations, recTumorMRI)
	}

	if ca != nil {
		if ca.MMSE < severeCognitiveCutoff || ca.MoCA < severeCognitiveCutoff {
			rec.ReferToSpecialist = true
			rec.ReferralReasons = append(rec.ReferralReasons, "Severe cognitive impairment detected")
		}
		if ca.UPDRS > severeMotorCutoff {
			rec.ReferToSpecialist = true
			rec.ReferralReasons = append(rec.ReferralReasons, "Significant motor dysfunction")
		}
		if ca.NIHSS > severeStrokeCutoff {
			rec.ReferToSpecialist = true
			rec.ReferralReasons = append(rec.ReferralReasons, "Stroke-related complications")
		}
	}

	if confidence > referralConfidenceCutoff && concern != "Normal" {
		rec.ReferToSpecialist = true
		rec.ReferralReasons = append(rec.ReferralReasons,
			fmt.Sprintf("High AI confidence for %s (%.1f%%)", concern, confidence*100))
	} else if confidence > urgentConditionCutoff && (concern == "Brain Tumor" || concern == "Stroke") {
		rec.ReferToSpecialist = true
		rec.ReferralReasons = append(rec.ReferralReasons,
			fmt.Sprintf("Concerning findings for %s requiring urgent evaluation", concern))
	}

	return rec
}
