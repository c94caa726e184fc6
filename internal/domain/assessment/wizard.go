package assessment

// SectionCount is the number of wizard sections.
const SectionCount = 5

// SectionTitles names the wizard sections in order.
var SectionTitles = [SectionCount]string{
	"General Information",
	"Medical History",
	"Clinical Observations",
	"Test Results",
	"MRI/Imaging & Final",
}

// Wizard is the 5-section linear assessment entry flow. The cursor stays in
// [0,4] and section submissions merge into a draft distinct from the visit's
// persisted assessment, so values survive back-and-forth navigation until
// Complete copies the draft out.
type Wizard struct {
	section int
	draft   ClinicalAssessment
}

// NewWizard starts a wizard at section 0 with the given draft as its starting
// buffer (the visit's existing assessment when re-entering the flow).
func NewWizard(draft ClinicalAssessment) *Wizard {
	return &Wizard{draft: draft}
}

// Section returns the current cursor position.
func (w *Wizard) Section() int {
	return w.section
}

// Title returns the current section title.
func (w *Wizard) Title() string {
	return SectionTitles[w.section]
}

// Draft returns a copy of the transient assessment buffer.
func (w *Wizard) Draft() ClinicalAssessment {
	return w.draft
}

// Next advances the cursor. It returns false from the last section, where
// Complete is the only way forward.
func (w *Wizard) Next() bool {
	if w.section >= SectionCount-1 {
		return false
	}
	w.section++
	return true
}

// Previous moves the cursor back. It returns false from section 0, where the
// caller routes out of the wizard instead.
func (w *Wizard) Previous() bool {
	if w.section <= 0 {
		return false
	}
	w.section--
	return true
}

// OnLastSection reports whether Complete is available.
func (w *Wizard) OnLastSection() bool {
	return w.section == SectionCount-1
}

func (w *Wizard) ApplyGeneralInfo(s GeneralInfo) {
	w.draft.PatientID = s.PatientID
	w.draft.Name = s.Name
	w.draft.Age = s.Age
	w.draft.Gender = s.Gender
	w.draft.BloodGroup = s.BloodGroup
	w.draft.Education = s.Education
	w.draft.FamilyHistory = s.FamilyHistory
	w.draft.Lifestyle = s.Lifestyle
}

func (w *Wizard) ApplyMedicalHistory(s MedicalHistory) {
	w.draft.Hypertension = s.Hypertension
	w.draft.Diabetes = s.Diabetes
	w.draft.Hyperlipidemia = s.Hyperlipidemia
	w.draft.AtrialFibrillation = s.AtrialFibrillation
	w.draft.PriorTIAStroke = s.PriorTIAStroke
	w.draft.AcuteOnset = s.AcuteOnset
	w.draft.CarotidBruit = s.CarotidBruit
	w.draft.Cardiovascular = s.Cardiovascular
	w.draft.PsychHistory = s.PsychHistory
	w.draft.Medications = s.Medications
	w.draft.HeadInjury = s.HeadInjury
	w.draft.Seizures = s.Seizures
}

func (w *Wizard) ApplyClinicalObservations(s ClinicalObservations) {
	w.draft.Memory = s.Memory
	w.draft.OrientationDeficit = s.OrientationDeficit
	w.draft.SpeechIssues = s.SpeechIssues
	w.draft.Aphasia = s.Aphasia
	w.draft.Dysarthria = s.Dysarthria
	w.draft.Tremors = s.Tremors
	w.draft.Rigidity = s.Rigidity
	w.draft.Hemiparesis = s.Hemiparesis
	w.draft.Gait = s.Gait
	w.draft.Facial = s.Facial
	w.draft.MotorWeakness = s.MotorWeakness
	w.draft.Headaches = s.Headaches
	w.draft.VisionHearing = s.VisionHearing
	w.draft.Handwriting = s.Handwriting
	w.draft.SetShifting = s.SetShifting
	w.draft.PlanningImpairment = s.PlanningImpairment
	w.draft.IADLDecline = s.IADLDecline
	w.draft.ADLDecline = s.ADLDecline
	w.draft.ApathyScale = s.ApathyScale
	w.draft.DepressionScale = s.DepressionScale
}

func (w *Wizard) ApplyTestResults(s TestResults) {
	w.draft.MMSE = s.MMSE
	w.draft.MoCA = s.MoCA
	w.draft.DelayedRecall = s.DelayedRecall
	w.draft.RecognitionMemory = s.RecognitionMemory
	w.draft.ClockDrawing = s.ClockDrawing
	w.draft.TrailsBTime = s.TrailsBTime
	w.draft.StroopErrors = s.StroopErrors
	w.draft.UPDRS = s.UPDRS
	w.draft.NIHSS = s.NIHSS
}

func (w *Wizard) ApplyImagingFinal(s ImagingFinal) {
	w.draft.WhiteMatterLesions = s.WhiteMatterLesions
	w.draft.MRILacunes = s.MRILacunes
	w.draft.MedialTemporalAtrophy = s.MedialTemporalAtrophy
	w.draft.SmallVesselDisease = s.SmallVesselDisease
	w.draft.QuickScores = s.QuickScores
}

// Complete stamps the assessor and date onto the draft and returns the
// finished assessment. It is only valid on the last section. The caller
// persists the result, discards the wizard, and resets the cursor by
// starting a fresh one next time.
func (w *Wizard) Complete(assessingDoctor, assessmentDate string) (ClinicalAssessment, bool) {
	if !w.OnLastSection() {
		return ClinicalAssessment{}, false
	}
	done := w.draft
	done.AssessingDoctor = assessingDoctor
	done.AssessmentDate = assessmentDate
	w.draft = ClinicalAssessment{}
	w.section = 0
	return done, true
}
