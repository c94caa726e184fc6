package flow

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/neurohealth/neuroscreen/internal/domain/analysis"
	"github.com/neurohealth/neuroscreen/internal/domain/assessment"
	"github.com/neurohealth/neuroscreen/internal/domain/doctor"
	"github.com/neurohealth/neuroscreen/internal/domain/media"
	"github.com/neurohealth/neuroscreen/internal/domain/patient"
)

// Machine executes actions against session state. It owns no state itself;
// everything lives in the SessionState passed to Do.
type Machine struct {
	patients *patient.Service
	doctors  *doctor.Service
	analyzer *analysis.Service
	captures media.Saver
	logger   zerolog.Logger
	now      func() time.Time
}

func NewMachine(patients *patient.Service, doctors *doctor.Service, analyzer *analysis.Service, captures media.Saver, logger zerolog.Logger) *Machine {
	return &Machine{
		patients: patients,
		doctors:  doctors,
		analyzer: analyzer,
		captures: captures,
		logger:   logger,
		now:      time.Now,
	}
}

func (m *Machine) today() string {
	return m.now().Format("2006-01-02")
}

// Do applies one action. Validation and precondition failures never return
// an error; they set the state's message and hold or reroute the page. The
// returned error is reserved for infrastructure failures (context
// cancellation during analysis).
func (m *Machine) Do(ctx context.Context, st *SessionState, act Action) error {
	switch st.Page {
	case PagePatientRegister:
		m.doPatientRegister(ctx, st, act)
	case PageDoctorLogin:
		m.doDoctorLogin(st, act)
	case PageDoctorDashboard:
		m.doDoctorDashboard(ctx, st, act)
	case PagePatientRegisterByDoctor:
		m.doPatientRegisterByDoctor(ctx, st, act)
	case PageHome:
		m.doHome(st, act)
	case PagePatientInfo:
		m.doPatientInfo(ctx, st, act)
	case PageVisitingData:
		m.doVisitingData(ctx, st, act)
	case PageSelectFacility:
		m.doSelectFacility(ctx, st, act)
	case PageDoctorAssessment:
		m.doDoctorAssessment(ctx, st, act)
	case PageVideoInstructions:
		m.doVideoInstructions(st, act)
	case PageVideoRecording:
		return m.doVideoRecording(ctx, st, act)
	case PageVideoAnalysis:
		m.doVideoAnalysis(st, act)
	case PageAudioInstructions:
		m.doAudioInstructions(st, act)
	case PageAudioRecording:
		return m.doAudioRecording(ctx, st, act)
	case PageAudioAnalysis:
		m.doAudioAnalysis(ctx, st, act)
	case PageFinalResults:
		m.doFinalResults(st, act)
	default:
		st.fail("unknown page")
	}
	return nil
}

func (m *Machine) doPatientRegister(ctx context.Context, st *SessionState, act Action) {
	switch act.Name {
	case ActionRegister:
		if act.Register == nil {
			st.fail("registration details are required")
			return
		}
		p, err := m.patients.Register(ctx, *act.Register)
		if err != nil {
			st.fail(err.Error())
			return
		}
		st.Patient = p
		st.goTo(PageHome)
	case ActionDoctorLogin:
		st.goTo(PageDoctorLogin)
	default:
		st.fail("unknown action")
	}
}

func (m *Machine) doDoctorLogin(st *SessionState, act Action) {
	switch act.Name {
	case ActionLogin:
		if act.Login == nil {
			st.fail("username and password are required")
			return
		}
		d, err := m.doctors.Authenticate(act.Login.Username, act.Login.Password)
		if err != nil {
			st.fail("Invalid credentials. Please check username and password.")
			return
		}
		st.Doctor = d
		st.goTo(PageDoctorDashboard)
	case ActionBack:
		st.goTo(PagePatientRegister)
	default:
		st.fail("unknown action")
	}
}

func (m *Machine) doDoctorDashboard(ctx context.Context, st *SessionState, act Action) {
	if st.Doctor == nil {
		st.failTo(PageDoctorLogin, "Doctor not logged in. Please login first.")
		return
	}
	switch act.Name {
	case ActionSelectPatient:
		p, err := m.patients.Get(ctx, act.PatientID)
		if err != nil {
			st.fail("patient not found")
			return
		}
		st.Patient = p
		st.goTo(PageHome)
	case ActionRegisterPatient:
		st.goTo(PagePatientRegisterByDoctor)
	case ActionLogout:
		st.Doctor = nil
		st.goTo(PagePatientRegister)
	default:
		st.fail("unknown action")
	}
}

func (m *Machine) doPatientRegisterByDoctor(ctx context.Context, st *SessionState, act Action) {
	if st.Doctor == nil {
		st.failTo(PageDoctorLogin, "Doctor not logged in.")
		return
	}
	switch act.Name {
	case ActionRegister:
		if act.Register == nil {
			st.fail("registration details are required")
			return
		}
		in := *act.Register
		in.AssignedDoctor = st.Doctor.Name
		p, err := m.patients.Register(ctx, in)
		if err != nil {
			st.fail(err.Error())
			return
		}
		st.Patient = p
		st.goTo(PageHome)
	case ActionBack:
		st.goTo(PageDoctorDashboard)
	default:
		st.fail("unknown action")
	}
}

func (m *Machine) doHome(st *SessionState, act Action) {
	if st.Patient == nil {
		st.failTo(PagePatientRegister, "No patient selected.")
		return
	}
	switch act.Name {
	case ActionPatientInfo:
		st.goTo(PagePatientInfo)
	case ActionVisitingData:
		st.goTo(PageVisitingData)
	case ActionChangePatient:
		st.Patient = nil
		st.VisitIndex = -1
		st.clearCaptureState()
		if st.Doctor != nil {
			st.goTo(PageDoctorDashboard)
		} else {
			st.goTo(PagePatientRegister)
		}
	case ActionDoctorLogin:
		st.goTo(PageDoctorLogin)
	default:
		st.fail("unknown action")
	}
}

func (m *Machine) doPatientInfo(ctx context.Context, st *SessionState, act Action) {
	if st.Patient == nil {
		st.failTo(PagePatientRegister, "No patient selected.")
		return
	}
	switch act.Name {
	case ActionSaveProfile:
		if act.Profile == nil {
			st.fail("profile details are required")
			return
		}
		p, err := m.patients.UpdateProfile(ctx, st.Patient.PatientID, *act.Profile)
		if err != nil {
			st.fail(err.Error())
			return
		}
		st.Patient = p
		st.Message = ""
	case ActionAddVisit:
		p, index, err := m.patients.AddVisit(ctx, st.Patient.PatientID)
		if err != nil {
			st.fail(err.Error())
			return
		}
		st.Patient = p
		st.VisitIndex = index
		st.Wizard = nil
		st.goTo(PageSelectFacility)
	case ActionHome:
		st.goTo(PageHome)
	default:
		st.fail("unknown action")
	}
}

func (m *Machine) doVisitingData(ctx context.Context, st *SessionState, act Action) {
	if st.Patient == nil {
		st.failTo(PagePatientRegister, "No patient selected.")
		return
	}
	switch act.Name {
	case ActionEditVisit:
		idx, ok := visitIndex(st.Patient, act.VisitIndex)
		if !ok {
			st.fail("no such visit")
			return
		}
		st.VisitIndex = idx
		st.Wizard = nil
		st.goTo(PageSelectFacility)
	case ActionDeleteVisit:
		idx, ok := visitIndex(st.Patient, act.VisitIndex)
		if !ok {
			st.fail("no such visit")
			return
		}
		p, err := m.patients.DeleteVisit(ctx, st.Patient.PatientID, idx)
		if err != nil {
			st.fail(err.Error())
			return
		}
		st.Patient = p
		if st.VisitIndex == idx {
			st.VisitIndex = -1
		} else if st.VisitIndex > idx {
			st.VisitIndex--
		}
		st.Message = ""
	case ActionHome:
		st.goTo(PageHome)
	default:
		st.fail("unknown action")
	}
}

func (m *Machine) doSelectFacility(ctx context.Context, st *SessionState, act Action) {
	if !m.requireVisit(st) {
		return
	}
	switch act.Name {
	case ActionSaveContinue:
		p, err := m.patients.UpdateVisitInfo(ctx, st.Patient.PatientID, st.VisitIndex, act.Reason)
		if err != nil {
			st.fail(err.Error())
			return
		}
		st.Patient = p
		st.Wizard = m.freshWizard(st)
		st.goTo(PageDoctorAssessment)
	case ActionBack:
		st.goTo(PageVisitingData)
	default:
		st.fail("unknown action")
	}
}

// freshWizard seeds the assessment buffer from the visit's stored assessment
// so re-entering the flow edits the existing record.
func (m *Machine) freshWizard(st *SessionState) *assessment.Wizard {
	draft := assessment.ClinicalAssessment{}
	if st.VisitIndex >= 0 && st.VisitIndex < len(st.Patient.Visits) {
		if existing := st.Patient.Visits[st.VisitIndex].DoctorAssessment; existing != nil {
			draft = *existing
		}
	}
	return assessment.NewWizard(draft)
}

func (m *Machine) doDoctorAssessment(ctx context.Context, st *SessionState, act Action) {
	if !m.requireVisit(st) {
		return
	}
	if st.Wizard == nil {
		st.Wizard = m.freshWizard(st)
	}

	applySection(st.Wizard, act.Section)

	switch act.Name {
	case ActionNextSection:
		if !st.Wizard.Next() {
			st.fail("already on the last section")
			return
		}
		st.Message = ""
	case ActionPreviousSection:
		if !st.Wizard.Previous() {
			st.goTo(PageSelectFacility)
			return
		}
		st.Message = ""
	case ActionComplete:
		done, ok := st.Wizard.Complete(st.Patient.AssignedDoctor, m.today())
		if !ok {
			st.fail("complete is only available on the last section")
			return
		}
		p, err := m.patients.AttachAssessment(ctx, st.Patient.PatientID, st.VisitIndex, done)
		if err != nil {
			st.fail(err.Error())
			return
		}
		st.Patient = p
		st.Wizard = nil
		st.goTo(PageVideoInstructions)
	default:
		st.fail("unknown action")
	}
}

// applySection merges the submitted section fields into the wizard draft.
// Only the entry for the current section is honored.
func applySection(w *assessment.Wizard, data *SectionData) {
	if data == nil {
		return
	}
	switch w.Section() {
	case 0:
		if data.GeneralInfo != nil {
			w.ApplyGeneralInfo(*data.GeneralInfo)
		}
	case 1:
		if data.MedicalHistory != nil {
			w.ApplyMedicalHistory(*data.MedicalHistory)
		}
	case 2:
		if data.ClinicalObservations != nil {
			w.ApplyClinicalObservations(*data.ClinicalObservations)
		}
	case 3:
		if data.TestResults != nil {
			w.ApplyTestResults(*data.TestResults)
		}
	case 4:
		if data.ImagingFinal != nil {
			w.ApplyImagingFinal(*data.ImagingFinal)
		}
	}
}

func (m *Machine) doVideoInstructions(st *SessionState, act Action) {
	if !m.requireVisit(st) {
		return
	}
	switch act.Name {
	case ActionStart:
		st.RecordingStart = m.now()
		st.goTo(PageVideoRecording)
	case ActionBack:
		st.goTo(PageDoctorAssessment)
	default:
		st.fail("unknown action")
	}
}

func (m *Machine) doVideoRecording(ctx context.Context, st *SessionState, act Action) error {
	if !m.requireVisit(st) {
		return nil
	}
	switch act.Name {
	case ActionRestart:
		st.RecordingStart = m.now()
		st.Message = ""
	case ActionCapture:
		if act.Capture == nil {
			st.fail("no capture payload received")
			return nil
		}
		clip, err := m.captures.Save(ctx, st.Patient.PatientID, media.KindVideo, *act.Capture)
		if err != nil {
			st.fail("Error processing video: " + err.Error())
			return nil
		}
		st.VideoClip = clip
		st.Message = ""
	case ActionAnalyze:
		if st.VideoClip == nil {
			st.fail("No video found. Please record again.")
			return nil
		}
		scores, probs, err := m.analyzer.AnalyzeVideo(ctx)
		if err != nil {
			return err
		}
		st.VideoScores = scores
		st.VideoProbs = probs
		st.goTo(PageVideoAnalysis)
	default:
		st.fail("unknown action")
	}
	return nil
}

func (m *Machine) doVideoAnalysis(st *SessionState, act Action) {
	switch act.Name {
	case ActionRecordAgain:
		st.VideoClip = nil
		st.VideoScores = nil
		st.VideoProbs = nil
		st.RecordingStart = m.now()
		st.goTo(PageVideoRecording)
	case ActionContinue:
		if st.VideoProbs == nil {
			st.failTo(PageVideoRecording, "No video found. Please record again.")
			return
		}
		st.goTo(PageAudioInstructions)
	default:
		st.fail("unknown action")
	}
}

func (m *Machine) doAudioInstructions(st *SessionState, act Action) {
	switch act.Name {
	case ActionStart:
		st.goTo(PageAudioRecording)
	case ActionBack:
		st.goTo(PageVideoAnalysis)
	default:
		st.fail("unknown action")
	}
}

func (m *Machine) doAudioRecording(ctx context.Context, st *SessionState, act Action) error {
	if !m.requireVisit(st) {
		return nil
	}
	switch act.Name {
	case ActionCapture:
		if act.Capture == nil {
			st.fail("no capture payload received")
			return nil
		}
		clip, err := m.captures.Save(ctx, st.Patient.PatientID, media.KindAudio, *act.Capture)
		if err != nil {
			st.fail("Error processing audio: " + err.Error())
			return nil
		}
		st.AudioClip = clip
		st.Message = ""
	case ActionProcess:
		if st.AudioClip == nil {
			st.fail("record your speech before processing")
			return nil
		}
		scores, probs, err := m.analyzer.AnalyzeAudio(ctx)
		if err != nil {
			return err
		}
		st.AudioScores = scores
		st.AudioProbs = probs
		st.AudioProcessed = true
		st.goTo(PageAudioAnalysis)
	case ActionRecordAgain:
		st.AudioClip = nil
		st.AudioScores = nil
		st.AudioProbs = nil
		st.AudioProcessed = false
		st.Message = ""
	case ActionContinue:
		if !st.AudioProcessed {
			st.fail("process the recording before viewing results")
			return nil
		}
		st.goTo(PageAudioAnalysis)
	case ActionBack:
		st.goTo(PageAudioInstructions)
	default:
		st.fail("unknown action")
	}
	return nil
}

func (m *Machine) doAudioAnalysis(ctx context.Context, st *SessionState, act Action) {
	switch act.Name {
	case ActionFinal:
		if st.VideoProbs == nil || st.AudioProbs == nil {
			st.failTo(PageAudioRecording, "Missing analysis data. Please complete both assessments.")
			return
		}
		m.finishAssessment(ctx, st)
		st.goTo(PageFinalResults)
	case ActionBack:
		st.goTo(PageAudioRecording)
	default:
		st.fail("unknown action")
	}
}

// finishAssessment combines the modality distributions, evaluates the
// recommendation table, and persists the analysis onto the visit.
func (m *Machine) finishAssessment(ctx context.Context, st *SessionState) {
	st.CombinedProbs = m.analyzer.Combine(st.VideoProbs, st.AudioProbs)

	var ca *assessment.ClinicalAssessment
	if st.Patient != nil && st.VisitIndex >= 0 && st.VisitIndex < len(st.Patient.Visits) {
		ca = st.Patient.Visits[st.VisitIndex].DoctorAssessment
	}
	rec := assessment.Recommend(ca, st.CombinedProbs)
	st.Recommendation = &rec

	if st.Patient == nil || st.VisitIndex < 0 {
		return
	}
	ma := analysis.MultimodalAnalysis{
		VideoScores:   st.VideoScores,
		VideoProbs:    st.VideoProbs,
		AudioScores:   st.AudioScores,
		AudioProbs:    st.AudioProbs,
		CombinedProbs: st.CombinedProbs,
		AnalysisDate:  m.today(),
	}
	p, err := m.patients.AttachAnalysis(ctx, st.Patient.PatientID, st.VisitIndex, ma)
	if err != nil {
		m.logger.Warn().Err(err).
			Str("patient_id", st.Patient.PatientID).
			Int("visit_index", st.VisitIndex).
			Msg("could not persist analysis results")
		return
	}
	st.Patient = p
}

func (m *Machine) doFinalResults(st *SessionState, act Action) {
	switch act.Name {
	case ActionNewAssessment:
		st.clearCaptureState()
		st.VisitIndex = -1
		st.goTo(PageHome)
	case ActionHome:
		st.goTo(PageHome)
	default:
		st.fail("unknown action")
	}
}

// requireVisit checks the patient-and-visit precondition shared by the
// assessment and capture pages, rerouting when it fails.
func (m *Machine) requireVisit(st *SessionState) bool {
	if st.Patient == nil {
		st.failTo(PagePatientRegister, "No patient selected.")
		return false
	}
	if st.VisitIndex < 0 || st.VisitIndex >= len(st.Patient.Visits) {
		st.failTo(PagePatientInfo, "No visit selected.")
		return false
	}
	return true
}

func visitIndex(p *patient.Patient, idx *int) (int, bool) {
	if idx == nil || *idx < 0 || *idx >= len(p.Visits) {
		return 0, false
	}
	return *idx, true
}
