package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/client/models"
)

func (a *App) listAppointments(ctx context.Context) error {
	appointments, err := a.remote.GetAppointments(ctx)
	if err != nil {
		return err
	}

	if len(appointments) == 0 {
		fmt.Println("No appointments")
		return nil
	}
	for _, appt := range appointments {
		fmt.Printf("#%d  %s  patient=%d doctor=%d  %s", appt.ID,
			appt.ScheduledTime.Format(time.RFC3339), appt.PatientID, appt.DoctorID, appt.Status)
		if appt.Notes != "" {
			fmt.Printf("  (%s)", appt.Notes)
		}
		fmt.Println()
	}
	return nil
}

// rescheduleAppointment moves an appointment to a new time.
// Usage: reschedule <id> <RFC3339 time>
func (a *App) rescheduleAppointment(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: reschedule <id> <time, e.g. 2025-03-01T10:00:00Z>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid appointment id %q", args[0])
	}
	when, err := time.Parse(time.RFC3339, args[1])
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", args[1], err)
	}

	appt, err := a.remote.RescheduleAppointment(ctx, id, &models.AppointmentUpdate{ScheduledTime: &when})
	if err != nil {
		return err
	}
	fmt.Printf("Appointment #%d rescheduled to %s\n", appt.ID, appt.ScheduledTime.Format(time.RFC3339))
	return nil
}

// startConsultation marks an appointment as in consultation.
// Usage: consult <id>
func (a *App) startConsultation(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: consult <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid appointment id %q", args[0])
	}

	appt, err := a.remote.StartConsultation(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("Consultation started for appointment #%d\n", appt.ID)
	return nil
}
