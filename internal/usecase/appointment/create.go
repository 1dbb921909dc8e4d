package appointment

import (
	"context"
	"time"

	"github.com/serenitylabs/medspa-scheduler/internal/audit"
	domain "github.com/serenitylabs/medspa-scheduler/internal/domain/appointment"
	"github.com/serenitylabs/medspa-scheduler/internal/httperr"
	"github.com/serenitylabs/medspa-scheduler/internal/models"
	"github.com/serenitylabs/medspa-scheduler/internal/timeutil"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	MedspaID   string
	StartTime  time.Time
	ServiceIDs []string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// Shape validation upstream already rejects empty selections; this
	// guard keeps internal callers from booking a zero-duration slot.
	if len(in.ServiceIDs) == 0 {
		return nil, httperr.InvalidRequestError("at least one service is required")
	}

	start := timeutil.EnsureUTC(in.StartTime)

	// Enforced here, not only at the transport, so callers bypassing
	// input validation still cannot book in the past.
	if start.Before(uc.now().UTC()) {
		return nil, httperr.InvalidRequestError("start_time cannot be in the past")
	}

	medspa, err := uc.repo.GetMedspaByID(ctx, in.MedspaID)
	if err != nil {
		return nil, err
	}

	services, totalPrice, totalDuration, err := resolveServices(
		ctx, uc.repo, medspa.ID, in.ServiceIDs,
	)
	if err != nil {
		return nil, err
	}

	end := start.Add(time.Duration(totalDuration) * time.Minute)
	serviceIDs := serviceIDsOf(services)

	conflicts, err := uc.repo.FindActiveOverlapping(
		ctx, medspa.ID, start, end, serviceIDs,
	)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		uc.audit.Dispatch(audit.Event{
			MedspaID: medspa.ID,
			Action:   "appointment_conflict",
			Entity:   "appointment",
			Metadata: map[string]any{"start": start, "end": end, "service_ids": serviceIDs},
		})
		return nil, httperr.ConflictError("one or more services are already booked for this time slot")
	}

	ap := &models.Appointment{
		MedspaID:      medspa.ID,
		StartTime:     start,
		Status:        string(domain.InitialStatus()),
		TotalPrice:    totalPrice,
		TotalDuration: totalDuration,
	}

	// The repository re-runs the overlap check inside the insert
	// transaction, so a race that slipped past the check above still
	// surfaces as Conflict here.
	if err := uc.repo.CreateWithServices(ctx, ap, serviceIDs); err != nil {
		return nil, err
	}

	ap.Services = services

	uc.audit.Dispatch(audit.Event{
		MedspaID: medspa.ID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
