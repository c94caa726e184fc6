package analysis

// Conditions is the fixed label set every probability distribution is
// declared over. Callers never receive a label outside this set.
var Conditions = []string{"Normal", "Parkinson's", "Stroke", "Alzheimer's", "Brain Tumor"}

// MultimodalAnalysis is the persisted outcome of the capture flow for one
// visit: per-modality feature scores and probability distributions plus the
// weighted combination.
type MultimodalAnalysis struct {
	VideoScores   map[string]float64 `json:"video_scores"`
	VideoProbs    map[string]float64 `json:"video_probs"`
	AudioScores   map[string]float64 `json:"audio_scores"`
	AudioProbs    map[string]float64 `json:"audio_probs"`
	CombinedProbs map[string]float64 `json:"combined_probs"`
	AnalysisDate  string             `json:"analysis_date"`
}
