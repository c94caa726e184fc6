// Package report builds the downloadable JSON summary of a completed
// screening visit.
package report

import (
	"time"

	"github.com/neurohealth/neuroscreen/internal/domain/patient"
)

// PatientInfo identifies who the report is about.
type PatientInfo struct {
	Name           string `json:"name"`
	PatientID      string `json:"patient_id"`
	Age            int    `json:"age"`
	AssessmentDate string `json:"assessment_date"`
}

// RecommendationSummary is the headline finding.
type RecommendationSummary struct {
	PrimaryConcern string  `json:"primary_concern"`
	Confidence     float64 `json:"confidence"`
}

// Document is the exported report body.
type Document struct {
	PatientInfo     PatientInfo           `json:"patient_info"`
	CombinedResults map[string]float64    `json:"combined_results"`
	Recommendation  RecommendationSummary `json:"recommendation"`
}

// Build assembles the document for one visit of a patient. primaryConcern
// and confidence come from the recommendation engine's top finding.
func Build(p *patient.Patient, combined map[string]float64, primaryConcern string, confidence float64, today time.Time) Document {
	return Document{
		PatientInfo: PatientInfo{
			Name:           p.Name,
			PatientID:      p.PatientID,
			Age:            p.Age,
			AssessmentDate: today.Format("2006-01-02"),
		},
		CombinedResults: combined,
		Recommendation: RecommendationSummary{
			PrimaryConcern: primaryConcern,
			Confidence:     confidence,
		},
	}
}

// Filename is the suggested download name for a report.
func Filename(patientID string, today time.Time) string {
	return "neurohealth_report_" + patientID + "_" + today.Format("2006-01-02") + ".json"
}
