package patient

import (
	"context"
	"fmt"
	"time"

	"github.com/neurohealth/neuroscreen/internal/domain/analysis"
	"github.com/neurohealth/neuroscreen/internal/domain/assessment"
	"github.com/neurohealth/neuroscreen/internal/domain/doctor"
)

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) today() string {
	return s.now().Format("2006-01-02")
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	BloodGroup     string `json:"blood_group"`
	Phone          string `json:"phone"`
	AssignedDoctor string `json:"assigned_doctor"`
}

// Register creates a patient with a fresh unique 6-digit ID and an empty
// visit history.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Patient, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !IsValidBloodGroup(in.BloodGroup) {
		return nil, fmt.Errorf("invalid blood group: %q", in.BloodGroup)
	}
	if !doctor.IsAvailable(in.AssignedDoctor) {
		return nil, fmt.Errorf("unknown doctor: %q", in.AssignedDoctor)
	}
	phone, err := CleanPhone(in.Phone)
	if err != nil {
		return nil, fmt.Errorf("invalid phone number: %w", err)
	}

	records, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	p := &Patient{
		PatientID:      GenerateUniqueID(usedIDs(records)),
		Name:           in.Name,
		Age:            in.Age,
		BloodGroup:     in.BloodGroup,
		Phone:          phone,
		AssignedDoctor: in.AssignedDoctor,
		Visits:         []Visit{},
		CreatedDate:    s.today(),
	}

	if err := s.store.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, patientID string) (*Patient, error) {
	return s.store.Get(ctx, patientID)
}

// UpdateInput carries the editable profile fields. An empty blood group
// keeps the existing value.
type UpdateInput struct {
	Name       string `json:"name"`
	Age        int    `json:"age"`
	BloodGroup string `json:"blood_group"`
	Phone      string `json:"phone"`
}

func (s *Service) UpdateProfile(ctx context.Context, patientID string, in UpdateInput) (*Patient, error) {
	phone, err := CleanPhone(in.Phone)
	if err != nil {
		return nil, fmt.Errorf("invalid phone number: %w", err)
	}
	if in.BloodGroup != "" && !IsValidBloodGroup(in.BloodGroup) {
		return nil, fmt.Errorf("invalid blood group: %q", in.BloodGroup)
	}

	p, err := s.store.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}

	p.Name = in.Name
	p.Age = in.Age
	p.Phone = phone
	if in.BloodGroup != "" {
		p.BloodGroup = in.BloodGroup
	}

	if err := s.store.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// AddVisit appends a new visit at today's date and returns its index.
func (s *Service) AddVisit(ctx context.Context, patientID string) (*Patient, int, error) {
	p, err := s.store.Get(ctx, patientID)
	if err != nil {
		return nil, 0, err
	}

	p.Visits = append(p.Visits, Visit{
		Date:     s.today(),
		Hospital: DefaultHospital,
		Doctor:   p.AssignedDoctor,
	})

	if err := s.store.Put(ctx, p); err != nil {
		return nil, 0, err
	}
	return p, len(p.Visits) - 1, nil
}

func (s *Service) visit(p *Patient, index int) (*Visit, error) {
	if index < 0 || index >= len(p.Visits) {
		return nil, fmt.Errorf("no visit selected")
	}
	return &p.Visits[index], nil
}

// UpdateVisitInfo records the visit reason and marks the visit completed.
func (s *Service) UpdateVisitInfo(ctx context.Context, patientID string, index int, reason string) (*Patient, error) {
	p, err := s.store.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}
	v, err := s.visit(p, index)
	if err != nil {
		return nil, err
	}

	v.Reason = reason
	v.Hospital = DefaultHospital
	v.Doctor = p.AssignedDoctor
	v.Status = "completed"

	if err := s.store.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) DeleteVisit(ctx context.Context, patientID string, index int) (*Patient, error) {
	p, err := s.store.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if _, err := s.visit(p, index); err != nil {
		return nil, err
	}

	p.Visits = append(p.Visits[:index], p.Visits[index+1:]...)

	if err := s.store.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// AttachAssessment stores the completed clinical assessment on a visit.
func (s *Service) AttachAssessment(ctx context.Context, patientID string, index int, ca assessment.ClinicalAssessment) (*Patient, error) {
	p, err := s.store.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}
	v, err := s.visit(p, index)
	if err != nil {
		return nil, err
	}

	v.DoctorAssessment = &ca

	if err := s.store.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// AttachAnalysis stores the multimodal analysis results on a visit.
func (s *Service) AttachAnalysis(ctx context.Context, patientID string, index int, ma analysis.MultimodalAnalysis) (*Patient, error) {
	p, err := s.store.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}
	v, err := s.visit(p, index)
	if err != nil {
		return nil, err
	}

	v.MultimodalAnalysis = &ma

	if err := s.store.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DashboardStats summarizes a doctor's patient panel.
type DashboardStats struct {
	TotalPatients      int `json:"total_patients"`
	PatientsWithVisits int `json:"patients_with_visits"`
	TotalVisits        int `json:"total_visits"`
}

// ListByDoctor returns the patients assigned to a doctor with panel stats.
func (s *Service) ListByDoctor(ctx context.Context, doctorName string) ([]*Patient, DashboardStats, error) {
	records, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, DashboardStats{}, err
	}

	var patients []*Patient
	stats := DashboardStats{}
	for _, p := range records {
		if p.AssignedDoctor != doctorName {
			continue
		}
		patients = append(patients, p)
		stats.TotalPatients++
		if len(p.Visits) > 0 {
			stats.PatientsWithVisits++
		}
		stats.TotalVisits += len(p.Visits)
	}
	return patients, stats, nil
}
