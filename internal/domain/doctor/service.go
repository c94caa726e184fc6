package doctor

import "fmt"

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Authenticate checks a username/password pair against the fixed credential
// table and returns the matching doctor.
func (s *Service) Authenticate(username, password string) (*Doctor, error) {
	for _, d := range credentials {
		if d.Username == username && d.Password == password {
			doc := d
			return &doc, nil
		}
	}
	return nil, fmt.Errorf("invalid credentials")
}

// GetByName returns the doctor with the given display name.
func (s *Service) GetByName(name string) (*Doctor, error) {
	for _, d := range credentials {
		if d.Name == name {
			doc := d
			return &doc, nil
		}
	}
	return nil, fmt.Errorf("doctor not found: %s", name)
}

// Hospitals returns the referral hospital directory.
func (s *Service) Hospitals() []ReferralHospital {
	return ReferralHospitals
}
