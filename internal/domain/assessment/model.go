package assessment

// Severity scale used by most observation and imaging fields.
var SeverityLevels = []string{"None", "Mild", "Moderate", "Severe"}

// QuickScores are the coarse 0-100 sliders captured on the final section.
type QuickScores struct {
	Cognitive int    `json:"cognitive"`
	Motor     int    `json:"motor"`
	Speech    int    `json:"speech"`
	Mood      string `json:"mood"`
}

// ClinicalAssessment is the doctor-entered structured findings for a visit,
// collected across the five wizard sections. Field names match the persisted
// record keys.
type ClinicalAssessment struct {
	// Section 1: General Information
	PatientID     string   `json:"patient_id"`
	Name          string   `json:"name"`
	Age           int      `json:"age"`
	Gender        string   `json:"gender"`
	BloodGroup    string   `json:"blood_group"`
	Education     string   `json:"education"`
	FamilyHistory []string `json:"family_history"`
	Lifestyle     []string `json:"lifestyle"`

	// Section 2: Medical History
	Hypertension       string `json:"htn"`
	Diabetes           string `json:"diabetes"`
	Hyperlipidemia     string `json:"hyperlipidemia"`
	AtrialFibrillation string `json:"atrial_fibrillation"`
	PriorTIAStroke     string `json:"prior_tia_stroke"`
	AcuteOnset         string `json:"acute_onset"`
	CarotidBruit       string `json:"carotid_bruit"`
	Cardiovascular     string `json:"cardio"`
	PsychHistory       string `json:"psych_history"`
	Medications        string `json:"medications"`
	HeadInjury         string `json:"head_injury"`
	Seizures           string `json:"seizures"`

	// Section 3: Clinical Observations
	Memory             string `json:"memory"`
	OrientationDeficit string `json:"orientation_deficit"`
	SpeechIssues       string `json:"speech_issues"`
	Aphasia            string `json:"aphasia"`
	Dysarthria         string `json:"dysarthria"`
	Tremors            string `json:"tremors"`
	Rigidity           string `json:"rigidity"`
	Hemiparesis        string `json:"hemiparesis"`
	Gait               string `json:"gait"`
	Facial             string `json:"facial"`
	MotorWeakness      string `json:"motor_weakness"`
	Headaches          string `json:"headaches"`
	VisionHearing      string `json:"vision_hearing"`
	Handwriting        string `json:"handwriting"`
	SetShifting        string `json:"set_shifting"`
	PlanningImpairment string `json:"planning_impairment"`
	IADLDecline        string `json:"iadl_decline"`
	ADLDecline         string `json:"adl_decline"`
	ApathyScale        int    `json:"apathy_scale"`
	DepressionScale    int    `json:"depression_scale"`

	// Section 4: Test Results
	MMSE              int    `json:"mmse"`
	MoCA              int    `json:"moca"`
	DelayedRecall     string `json:"delayed_recall"`
	RecognitionMemory int    `json:"recognition_memory"`
	ClockDrawing      int    `json:"clock_drawing"`
	TrailsBTime       int    `json:"trails_b_time"`
	StroopErrors      int    `json:"stroop_errors"`
	UPDRS             int    `json:"updrs"`
	NIHSS             int    `json:"nihss"`

	// Section 5: Imaging & Final
	WhiteMatterLesions    string      `json:"white_matter_lesions"`
	MRILacunes            string      `json:"mri_lacunes"`
	MedialTemporalAtrophy string      `json:"medial_temporal_atrophy"`
	SmallVesselDisease    string      `json:"small_vessel_disease"`
	QuickScores           QuickScores `json:"quick_scores"`

	// Completion stamps
	AssessingDoctor string `json:"assessing_doctor,omitempty"`
	AssessmentDate  string `json:"assessment_date,omitempty"`
}

// GeneralInfo holds the section 1 form fields.
type GeneralInfo struct {
	PatientID     string   `json:"patient_id"`
	Name          string   `json:"name"`
	Age           int      `json:"age"`
	Gender        string   `json:"gender"`
	BloodGroup    string   `json:"blood_group"`
	Education     string   `json:"education"`
	FamilyHistory []string `json:"family_history"`
	Lifestyle     []string `json:"lifestyle"`
}

// MedicalHistory holds the section 2 form fields.
type MedicalHistory struct {
	Hypertension       string `json:"htn"`
	Diabetes           string `json:"diabetes"`
	Hyperlipidemia     string `json:"hyperlipidemia"`
	AtrialFibrillation string `json:"atrial_fibrillation"`
	PriorTIAStroke     string `json:"prior_tia_stroke"`
	AcuteOnset         string `json:"acute_onset"`
	CarotidBruit       string `json:"carotid_bruit"`
	Cardiovascular     string `json:"cardio"`
	PsychHistory       string `json:"psych_history"`
	Medications        string `json:"medications"`
	HeadInjury         string `json:"head_injury"`
	Seizures           string `json:"seizures"`
}

// ClinicalObservations holds the section 3 form fields.
type ClinicalObservations struct {
	Memory             string `json:"memory"`
	OrientationDeficit string `json:"orientation_deficit"`
	SpeechIssues       string `json:"speech_issues"`
	Aphasia            string `json:"aphasia"`
	Dysarthria         string `json:"dysarthria"`
	Tremors            string `json:"tremors"`
	Rigidity           string `json:"rigidity"`
	Hemiparesis        string `json:"hemiparesis"`
	Gait               string `json:"gait"`
	Facial             string `json:"facial"`
	MotorWeakness      string `json:"motor_weakness"`
	Headaches          string `json:"headaches"`
	VisionHearing      string `json:"vision_hearing"`
	Handwriting        string `json:"handwriting"`
	SetShifting        string `json:"set_shifting"`
	PlanningImpairment string `json:"planning_impairment"`
	IADLDecline        string `json:"iadl_decline"`
	ADLDecline         string `json:"adl_decline"`
	ApathyScale        int    `json:"apathy_scale"`
	DepressionScale    int    `json:"depression_scale"`
}

// TestResults holds the section 4 form fields.
type TestResults struct {
	MMSE              int    `json:"mmse"`
	MoCA              int    `json:"moca"`
	DelayedRecall     string `json:"delayed_recall"`
	RecognitionMemory int    `json:"recognition_memory"`
	ClockDrawing      int    `json:"clock_drawing"`
	TrailsBTime       int    `json:"trails_b_time"`
	StroopErrors      int    `json:"stroop_errors"`
	UPDRS             int    `json:"updrs"`
	NIHSS             int    `json:"nihss"`
}

// ImagingFinal holds the section 5 form fields.
type ImagingFinal struct {
	WhiteMatterLesions    string      `json:"white_matter_lesions"`
	MRILacunes            string      `json:"mri_lacunes"`
	MedialTemporalAtrophy string      `json:"medial_temporal_atrophy"`
	SmallVesselDisease    string      `json:"small_vessel_disease"`
	QuickScores           QuickScores `json:"quick_scores"`
}
