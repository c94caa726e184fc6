package flow

import (
	"github.com/neurohealth/neuroscreen/internal/domain/assessment"
	"github.com/neurohealth/neuroscreen/internal/domain/doctor"
	"github.com/neurohealth/neuroscreen/internal/domain/patient"
	"github.com/neurohealth/neuroscreen/pkg/prompts"
)

// View is what a client renders for the current page. Only the fields
// relevant to the page are populated.
type View struct {
	Page    Page   `json:"page"`
	Message string `json:"message,omitempty"`

	Doctor  *doctor.Doctor   `json:"doctor,omitempty"`
	Patient *patient.Patient `json:"patient,omitempty"`

	VisitIndex int `json:"visit_index"`

	Wizard *WizardView `json:"wizard,omitempty"`

	Recording *RecordingView `json:"recording,omitempty"`

	VideoScores map[string]float64 `json:"video_scores,omitempty"`
	VideoProbs  map[string]float64 `json:"video_probs,omitempty"`
	AudioScores map[string]float64 `json:"audio_scores,omitempty"`
	AudioProbs  map[string]float64 `json:"audio_probs,omitempty"`

	AudioCaptured  bool `json:"audio_captured,omitempty"`
	AudioProcessed bool `json:"audio_processed,omitempty"`

	CombinedProbs  map[string]float64         `json:"combined_probs,omitempty"`
	Recommendation *assessment.Recommendation `json:"recommendation,omitempty"`

	Tasks         []prompts.Task `json:"tasks,omitempty"`
	AudioFeatures []prompts.Task `json:"audio_features,omitempty"`
}

// WizardView describes the assessment wizard position.
type WizardView struct {
	Section       int                           `json:"section"`
	SectionTitle  string                        `json:"section_title"`
	TotalSections int                           `json:"total_sections"`
	Draft         assessment.ClinicalAssessment `json:"draft"`
}

// RecordingView is the live countdown state of the video recording page.
type RecordingView struct {
	ElapsedSeconds int          `json:"elapsed_seconds"`
	TotalSeconds   int          `json:"total_seconds"`
	TaskIndex      int          `json:"task_index"`
	Task           prompts.Task `json:"task"`
	TimeUp         bool         `json:"time_up"`
}

// Render builds the view for the session's current page. The message is
// consumed: it shows once and is cleared.
func (m *Machine) Render(st *SessionState) View {
	v := View{
		Page:       st.Page,
		Message:    st.Message,
		Doctor:     st.Doctor,
		Patient:    st.Patient,
		VisitIndex: st.VisitIndex,
	}
	st.Message = ""

	switch st.Page {
	case PageDoctorAssessment:
		w := st.Wizard
		if w == nil && st.Patient != nil {
			w = m.freshWizard(st)
			st.Wizard = w
		}
		if w != nil {
			v.Wizard = &WizardView{
				Section:       w.Section(),
				SectionTitle:  w.Title(),
				TotalSections: assessment.SectionCount,
				Draft:         w.Draft(),
			}
		}
	case PageVideoInstructions:
		v.Tasks = prompts.VideoTasks
	case PageVideoRecording:
		elapsed := 0
		if !st.RecordingStart.IsZero() {
			elapsed = int(m.now().Sub(st.RecordingStart).Seconds())
		}
		idx, task := prompts.VideoTaskAt(elapsed)
		v.Recording = &RecordingView{
			ElapsedSeconds: elapsed,
			TotalSeconds:   prompts.VideoTotalSeconds,
			TaskIndex:      idx,
			Task:           task,
			TimeUp:         elapsed >= prompts.VideoTotalSeconds,
		}
	case PageVideoAnalysis:
		v.VideoScores = st.VideoScores
		v.VideoProbs = st.VideoProbs
	case PageAudioInstructions:
		v.Tasks = prompts.AudioTasks
	case PageAudioRecording:
		v.Tasks = prompts.AudioTasks
		v.AudioCaptured = st.AudioClip != nil
		v.AudioProcessed = st.AudioProcessed
	case PageAudioAnalysis:
		v.AudioScores = st.AudioScores
		v.AudioProbs = st.AudioProbs
		v.AudioFeatures = prompts.AudioFeatures
	case PageFinalResults:
		v.VideoProbs = st.VideoProbs
		v.AudioProbs = st.AudioProbs
		v.CombinedProbs = st.CombinedProbs
		v.Recommendation = st.Recommendation
	}
	return v
}
