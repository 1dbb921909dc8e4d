package appointment

import (
	"context"

	"github.com/serenitylabs/medspa-scheduler/internal/audit"
	domain "github.com/serenitylabs/medspa-scheduler/internal/domain/appointment"
	"github.com/serenitylabs/medspa-scheduler/internal/models"
)

type UpdateAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	appointmentID string,
	requested domain.Status,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	current := domain.Status(ap.Status)

	// Identity transition: success without touching the row, so
	// updated_at stays put.
	if requested == current {
		return ap, nil
	}

	if err := domain.ValidateTransition(current, requested); err != nil {
		return nil, err
	}

	ap.Status = string(requested)
	if err := uc.repo.UpdateAppointmentStatus(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		MedspaID: ap.MedspaID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"from": string(current), "to": string(requested)},
	})

	return ap, nil
}
