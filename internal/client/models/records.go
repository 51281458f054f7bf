package models

import "time"

// Wire records for the auth endpoints.

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is the payload of POST /auth/login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterRequest is the account-creation payload for POST /auth/register.
type RegisterRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Name       string `json:"name" validate:"required"`
	Role       Role   `json:"role" validate:"required"`
	HospitalID string `json:"hospital_id,omitempty"`
}

// RegisteredUser is the backend's record of a newly created account.
type RegisteredUser struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"full_name"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// Domain records.

type Appointment struct {
	ID            int64     `json:"id"`
	PatientID     int64     `json:"patient_id"`
	DoctorID      int64     `json:"doctor_id"`
	ScheduledTime time.Time `json:"scheduled_time"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
}

// AppointmentUpdate carries the fields a reschedule may change.
type AppointmentUpdate struct {
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
	Status        string     `json:"status,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

type LabTest struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price,omitempty"`
	Status      string `json:"status,omitempty"`
}

// LabReport is the payload of POST /lab/tests/{id}/generate-report.
type LabReport struct {
	TestID    int64  `json:"test_id"`
	ReportURL string `json:"report_url"`
}

type Hospital struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Info    string `json:"info,omitempty"`
	Status  string `json:"status,omitempty"`
}

type Medicine struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Price        int64      `json:"price,omitempty"`
	Stock        int64      `json:"stock"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
	IsAvailable  bool       `json:"is_available"`
	Category     string     `json:"category,omitempty"`
	Manufacturer string     `json:"manufacturer,omitempty"`
}

// PharmacyExport is the payload of POST /pharmacy/export-data.
type PharmacyExport struct {
	URL string `json:"url"`
}
