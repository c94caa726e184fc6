package doctor

// Doctor is a pre-provisioned clinician identity. Doctors are fixed reference
// data: there is no signup and no mutation at runtime.
type Doctor struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"-"`
	Email    string `json:"email"`
}

// AvailableDoctors lists the doctors a patient can be assigned to.
var AvailableDoctors = []string{"Dr. Syam Kumar", "Dr. Devi"}

var credentials = map[string]Doctor{
	"syam_kumar": {
		Name:     "Dr. Syam Kumar",
		Username: "syam_kumar",
		Password: "syam123",
		Email:    "syam.kumar@neurohealth.com",
	},
	"devi": {
		Name:     "Dr. Devi",
		Username: "devi",
		Password: "devi123",
		Email:    "devi@neurohealth.com",
	},
}

// ReferralHospital describes a specialist facility a patient can be referred to.
type ReferralHospital struct {
	Name       string   `json:"name"`
	Doctors    []string `json:"doctors"`
	Contact    string   `json:"contact"`
	Speciality string   `json:"speciality"`
}

// ReferralHospitals is the fixed directory of specialist hospitals offered
// when an assessment recommends a higher opinion.
var ReferralHospitals = []ReferralHospital{
	{
		Name:       "H1 - Apollo Hospital Chennai",
		Doctors:    []string{"Dr. Ravi Kumar - Neurologist", "Dr. Priya Sharma - Neurosurgeon"},
		Contact:    "+91-44-2829-3333",
		Speciality: "Comprehensive Neurological Care",
	},
	{
		Name:       "H2 - BLK-Max Super Speciality Hospital Delhi",
		Doctors:    []string{"Dr. Ashish Suri - Neurosurgeon", "Dr. Manjari Tripathi - Neurologist"},
		Contact:    "+91-11-3040-3040",
		Speciality: "Advanced Neurosciences",
	},
	{
		Name:       "H3 - Kokilaben Dhirubhai Ambani Hospital Mumbai",
		Doctors:    []string{"Dr. Sudhir Shah - Movement Disorders", "Dr. Nita Nair - Cognitive Neurology"},
		Contact:    "+91-22-4269-6969",
		Speciality: "Specialized Brain & Spine Care",
	},
}

// IsAvailable reports whether name is one of the assignable doctors.
func IsAvailable(name string) bool {
	for _, d := range AvailableDoctors {
		if d == name {
			return true
		}
	}
	return false
}
