package models

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Profile is the role-specific payload attached to a User. Each role has its
// own concrete type; the union is keyed by User.Role when decoding.
type Profile interface {
	ProfileRole() Role
}

type PatientProfile struct {
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
}

func (*PatientProfile) ProfileRole() Role { return RolePatient }

type DoctorProfile struct {
	Specialty     string `json:"specialty,omitempty"`
	LicenseNumber string `json:"license_number,omitempty"`
	Phone         string `json:"phone,omitempty"`
}

func (*DoctorProfile) ProfileRole() Role { return RoleDoctor }

type HospitalAdminProfile struct {
	Phone string `json:"phone,omitempty"`
}

func (*HospitalAdminProfile) ProfileRole() Role { return RoleHospitalAdmin }

type SystemAdminProfile struct {
	Phone string `json:"phone,omitempty"`
}

func (*SystemAdminProfile) ProfileRole() Role { return RoleSystemAdmin }

type LabProfile struct {
	Department string `json:"department,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

func (*LabProfile) ProfileRole() Role { return RoleLab }

type PharmacistProfile struct {
	LicenseNumber string `json:"license_number,omitempty"`
	Phone         string `json:"phone,omitempty"`
}

func (*PharmacistProfile) ProfileRole() Role { return RolePharmacist }

// unmarshalProfile decodes raw into the concrete profile type for role.
func unmarshalProfile(role Role, raw json.RawMessage) (Profile, error) {
	var p Profile
	switch role {
	case RolePatient:
		p = &PatientProfile{}
	case RoleDoctor:
		p = &DoctorProfile{}
	case RoleHospitalAdmin:
		p = &HospitalAdminProfile{}
	case RoleSystemAdmin:
		p = &SystemAdminProfile{}
	case RoleLab:
		p = &LabProfile{}
	case RolePharmacist:
		p = &PharmacistProfile{}
	default:
		return nil, fmt.Errorf("unknown role %q", role)
	}
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("failed to decode %s profile: %w", role, err)
	}
	return p, nil
}
