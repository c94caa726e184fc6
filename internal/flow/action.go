package flow

import (
	"github.com/neurohealth/neuroscreen/internal/domain/assessment"
	"github.com/neurohealth/neuroscreen/internal/domain/media"
	"github.com/neurohealth/neuroscreen/internal/domain/patient"
)

// Action names, grouped by page. A name is only meaningful on the page that
// defines it; the dispatcher rejects everything else.
const (
	// patient_register / patient_register_by_doctor
	ActionRegister    = "register"
	ActionDoctorLogin = "doctor_login"

	// doctor_login
	ActionLogin = "login"

	// doctor_dashboard
	ActionSelectPatient   = "select_patient"
	ActionRegisterPatient = "register_patient"
	ActionLogout          = "logout"

	// home
	ActionPatientInfo   = "patient_info"
	ActionVisitingData  = "visiting_data"
	ActionChangePatient = "change_patient"

	// patient_info
	ActionSaveProfile = "save_profile"
	ActionAddVisit    = "add_visit"

	// visiting_data
	ActionEditVisit   = "edit_visit"
	ActionDeleteVisit = "delete_visit"

	// select_facility
	ActionSaveContinue = "save_continue"

	// doctor_assessment
	ActionNextSection     = "next_section"
	ActionPreviousSection = "previous_section"
	ActionComplete        = "complete"

	// capture pages
	ActionStart       = "start"
	ActionRestart     = "restart"
	ActionCapture     = "capture"
	ActionAnalyze     = "analyze"
	ActionRecordAgain = "record_again"
	ActionContinue    = "continue"
	ActionProcess     = "process"
	ActionFinal       = "final"

	// final_results
	ActionNewAssessment = "new_assessment"

	// available on most pages
	ActionBack = "back"
	ActionHome = "home"
)

// SectionData carries the form fields of whichever wizard section is being
// submitted. Only the entry matching the current section is applied.
type SectionData struct {
	GeneralInfo          *assessment.GeneralInfo          `json:"general_info,omitempty"`
	MedicalHistory       *assessment.MedicalHistory       `json:"medical_history,omitempty"`
	ClinicalObservations *assessment.ClinicalObservations `json:"clinical_observations,omitempty"`
	TestResults          *assessment.TestResults          `json:"test_results,omitempty"`
	ImagingFinal         *assessment.ImagingFinal         `json:"imaging_final,omitempty"`
}

// LoginInput is the doctor_login form.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Action is one posted user interaction: a name plus whatever form payload
// that interaction carries.
type Action struct {
	Name string `json:"name"`

	Register   *patient.RegisterInput `json:"register,omitempty"`
	Login      *LoginInput            `json:"login,omitempty"`
	Profile    *patient.UpdateInput   `json:"profile,omitempty"`
	PatientID  string                 `json:"patient_id,omitempty"`
	VisitIndex *int                   `json:"visit_index,omitempty"`
	Reason     string                 `json:"reason,omitempty"`
	Section    *SectionData           `json:"section,omitempty"`
	Capture    *media.CapturePayload  `json:"capture,omitempty"`
}
