// Package api implements the REST client for the hospital-management
// backend: a single choke point that attaches the bearer token, encodes and
// decodes JSON bodies, and normalizes failures into error values.
package api

import (
	"context"

	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/client/models"
)

// Remote is the backend surface consumed by the session and the CLI.
// *HTTPClient is the production implementation; tests substitute fakes.
type Remote interface {
	// Auth.
	Login(ctx context.Context, email, password string) (*models.TokenResponse, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisteredUser, error)
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
	GetCurrentUser(ctx context.Context) (*models.User, error)

	// Appointments.
	GetAppointments(ctx context.Context) ([]models.Appointment, error)
	RescheduleAppointment(ctx context.Context, id int64, update *models.AppointmentUpdate) (*models.Appointment, error)
	StartConsultation(ctx context.Context, id int64) (*models.Appointment, error)

	// Lab.
	GetLabTests(ctx context.Context) ([]models.LabTest, error)
	UpdateTestStatus(ctx context.Context, id int64, status string) (*models.LabTest, error)
	GenerateTestReport(ctx context.Context, id int64) (*models.LabReport, error)

	// Hospitals.
	GetHospitals(ctx context.Context) ([]models.Hospital, error)
	ApproveHospital(ctx context.Context, id int64) (*models.Hospital, error)
	RejectHospital(ctx context.Context, id int64, reason string) (*models.Hospital, error)

	// Pharmacy.
	GetMedicines(ctx context.Context) ([]models.Medicine, error)
	ToggleMedicineAvailability(ctx context.Context, id int64) (*models.Medicine, error)
	ExportPharmacyData(ctx context.Context) (*models.PharmacyExport, error)

	// Health probes server liveness.
	Health(ctx context.Context) error
}
