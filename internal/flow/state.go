package flow

import (
	"time"

	"github.com/neurohealth/neuroscreen/internal/domain/assessment"
	"github.com/neurohealth/neuroscreen/internal/domain/doctor"
	"github.com/neurohealth/neuroscreen/internal/domain/media"
	"github.com/neurohealth/neuroscreen/internal/domain/patient"
)

// SessionState is everything one browser session carries between actions.
// Nothing here is shared across sessions; the patient store is the only
// common mutable surface.
type SessionState struct {
	Page Page

	Doctor  *doctor.Doctor
	Patient *patient.Patient

	// VisitIndex selects the visit under assessment, -1 when none.
	VisitIndex int

	// Wizard is live while the doctor_assessment sub-flow is active.
	Wizard *assessment.Wizard

	VideoClip   *media.Clip
	VideoScores map[string]float64
	VideoProbs  map[string]float64

	AudioClip      *media.Clip
	AudioScores    map[string]float64
	AudioProbs     map[string]float64
	AudioProcessed bool

	// Filled when final_results is reached.
	CombinedProbs  map[string]float64
	Recommendation *assessment.Recommendation

	// RecordingStart anchors the video task countdown; zero when the
	// recording stage has not started.
	RecordingStart time.Time

	// Message is the last validation or precondition error, shown once on
	// the next view and cleared by the next successful action.
	Message string
}

// NewSessionState returns the initial state: the public registration page,
// nobody logged in, nothing selected.
func NewSessionState() *SessionState {
	return &SessionState{
		Page:       PagePatientRegister,
		VisitIndex: -1,
	}
}

// clearCaptureState drops everything the capture pipeline accumulated, as
// the "New Assessment" action does.
func (s *SessionState) clearCaptureState() {
	s.VideoClip = nil
	s.VideoScores = nil
	s.VideoProbs = nil
	s.AudioClip = nil
	s.AudioScores = nil
	s.AudioProbs = nil
	s.AudioProcessed = false
	s.RecordingStart = time.Time{}
	s.Wizard = nil
	s.CombinedProbs = nil
	s.Recommendation = nil
}

// fail records a message without transitioning.
func (s *SessionState) fail(msg string) {
	s.Message = msg
}

// failTo records a message and routes to a safe earlier page.
func (s *SessionState) failTo(page Page, msg string) {
	s.Message = msg
	s.Page = page
}

// goTo transitions and clears any stale message.
func (s *SessionState) goTo(page Page) {
	s.Message = ""
	s.Page = page
}
