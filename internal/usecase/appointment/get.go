package appointment

import (
	"context"

	domain "github.com/serenitylabs/medspa-scheduler/internal/domain/appointment"
	"github.com/serenitylabs/medspa-scheduler/internal/models"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

// Execute loads the appointment with its services attached, so the
// transport can render a response without a second round trip.
func (uc *GetAppointment) Execute(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {
	return uc.repo.GetAppointmentByID(ctx, appointmentID)
}
