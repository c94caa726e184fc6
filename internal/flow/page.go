// Package flow drives the screening workflow: a per-session navigation
// machine over sixteen pages, with the assessment wizard and the guided
// capture pipeline as sub-machines.
package flow

// Page is one screen of the workflow.
type Page string

const (
	PagePatientRegister         Page = "patient_register"
	PageDoctorLogin             Page = "doctor_login"
	PageDoctorDashboard         Page = "doctor_dashboard"
	PagePatientRegisterByDoctor Page = "patient_register_by_doctor"
	PageHome                    Page = "home"
	PagePatientInfo             Page = "patient_info"
	PageVisitingData            Page = "visiting_data"
	PageSelectFacility          Page = "select_facility"
	PageDoctorAssessment        Page = "doctor_assessment"
	PageVideoInstructions       Page = "video_instructions"
	PageVideoRecording          Page = "video_recording"
	PageVideoAnalysis           Page = "video_analysis"
	PageAudioInstructions       Page = "audio_instructions"
	PageAudioRecording          Page = "audio_recording"
	PageAudioAnalysis           Page = "audio_analysis"
	PageFinalResults            Page = "final_results"
)

// Pages lists every page in presentation order.
var Pages = []Page{
	PagePatientRegister,
	PageDoctorLogin,
	PageDoctorDashboard,
	PagePatientRegisterByDoctor,
	PageHome,
	PagePatientInfo,
	PageVisitingData,
	PageSelectFacility,
	PageDoctorAssessment,
	PageVideoInstructions,
	PageVideoRecording,
	PageVideoAnalysis,
	PageAudioInstructions,
	PageAudioRecording,
	PageAudioAnalysis,
	PageFinalResults,
}

// Valid reports whether p names a known page.
func (p Page) Valid() bool {
	for _, known := range Pages {
		if p == known {
			return true
		}
	}
	return false
}
