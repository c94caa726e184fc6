package patient

import (
	"fmt"

	"github.com/neurohealth/neuroscreen/internal/domain/analysis"
	"github.com/neurohealth/neuroscreen/internal/domain/assessment"
)

// DefaultHospital is the facility every visit is booked at.
const DefaultHospital = "Primary Health Care Center"

// BloodGroups lists the accepted blood group values.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// Visit is one clinical encounter: reason, assessment, and analysis results.
type Visit struct {
	Date               string                           `json:"date"`
	Reason             string                           `json:"reason"`
	Hospital           string                           `json:"hospital"`
	Doctor             string                           `json:"doctor"`
	Status             string                           `json:"status,omitempty"`
	DoctorAssessment   *assessment.ClinicalAssessment   `json:"doctor_assessment,omitempty"`
	MultimodalAnalysis *analysis.MultimodalAnalysis     `json:"multimodal_analysis,omitempty"`
}

// Patient is a registered patient record with its ordered visit history.
type Patient struct {
	PatientID      string  `json:"patient_id"`
	Name           string  `json:"name"`
	Age            int     `json:"age"`
	BloodGroup     string  `json:"blood_group"`
	Phone          string  `json:"phone"`
	AssignedDoctor string  `json:"assigned_doctor"`
	Visits         []Visit `json:"visits"`
	CreatedDate    string  `json:"created_date"`
}

// Key returns the synthesized store key for a patient ID.
func Key(patientID string) string {
	return fmt.Sprintf("patient_%s@neurohealth.com", patientID)
}

// IsValidBloodGroup reports whether bg is one of the accepted values.
func IsValidBloodGroup(bg string) bool {
	for _, v := range BloodGroups {
		if v == bg {
			return true
		}
	}
	return false
}
