package appointment

import (
	"context"
	"time"

	"github.com/serenitylabs/medspa-scheduler/internal/models"
)

// ListFilter narrows ListAppointments. Nil filters are skipped; both
// combine with AND semantics. Cursor is the id of the last item already
// seen (strict id > cursor).
type ListFilter struct {
	MedspaID *string
	Status   *Status
	Cursor   string
	Limit    int
}

// Repository is everything the scheduler needs from the entity store.
// Implementations map missing rows to httperr NotFound errors; the use
// cases propagate those unchanged.
type Repository interface {
	// -------- Medspa --------
	GetMedspaByID(
		ctx context.Context,
		id string,
	) (*models.Medspa, error)

	// -------- Services --------
	FindServicesByIDs(
		ctx context.Context,
		ids []string,
	) ([]models.Service, error)

	// -------- Appointment (create / conflict) --------

	// FindActiveOverlapping returns ids of scheduled appointments of the
	// medspa whose interval overlaps [start, end) half-open AND that are
	// linked to at least one of serviceIDs. Empty serviceIDs yields no
	// conflicts. Pure query.
	FindActiveOverlapping(
		ctx context.Context,
		medspaID string,
		start time.Time,
		end time.Time,
		serviceIDs []string,
	) ([]string, error)

	// CreateWithServices persists the appointment and its service links
	// as one atomic unit, re-running the overlap check inside the same
	// transaction that inserts.
	CreateWithServices(
		ctx context.Context,
		ap *models.Appointment,
		serviceIDs []string,
	) error

	// -------- Appointment (read / state change) --------
	GetAppointmentByID(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	UpdateAppointmentStatus(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// ListAppointments returns up to Limit+1 rows ordered by id ASC so
	// callers can detect whether a next page exists.
	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)
}
