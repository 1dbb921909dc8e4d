package appointment

import (
	"context"
	"time"

	domain "github.com/serenitylabs/medspa-scheduler/internal/domain/appointment"
	"github.com/serenitylabs/medspa-scheduler/internal/models"
)

type fakeRepo struct {
	getMedspaFn      func(ctx context.Context, id string) (*models.Medspa, error)
	findServicesFn   func(ctx context.Context, ids []string) ([]models.Service, error)
	findOverlapFn    func(ctx context.Context, medspaID string, start, end time.Time, serviceIDs []string) ([]string, error)
	createFn         func(ctx context.Context, ap *models.Appointment, serviceIDs []string) error
	getAppointmentFn func(ctx context.Context, id string) (*models.Appointment, error)
	updateStatusFn   func(ctx context.Context, ap *models.Appointment) error
	listFn           func(ctx context.Context, filter domain.ListFilter) ([]models.Appointment, error)

	updateStatusCalls int
}

func (f *fakeRepo) GetMedspaByID(ctx context.Context, id string) (*models.Medspa, error) {
	if f.getMedspaFn == nil {
		panic("GetMedspaByID not configured")
	}
	return f.getMedspaFn(ctx, id)
}

func (f *fakeRepo) FindServicesByIDs(ctx context.Context, ids []string) ([]models.Service, error) {
	if f.findServicesFn == nil {
		panic("FindServicesByIDs not configured")
	}
	return f.findServicesFn(ctx, ids)
}

func (f *fakeRepo) FindActiveOverlapping(ctx context.Context, medspaID string, start, end time.Time, serviceIDs []string) ([]string, error) {
	if f.findOverlapFn == nil {
		panic("FindActiveOverlapping not configured")
	}
	return f.findOverlapFn(ctx, medspaID, start, end, serviceIDs)
}

func (f *fakeRepo) CreateWithServices(ctx context.Context, ap *models.Appointment, serviceIDs []string) error {
	if f.createFn == nil {
		panic("CreateWithServices not configured")
	}
	return f.createFn(ctx, ap, serviceIDs)
}

func (f *fakeRepo) GetAppointmentByID(ctx context.Context, id string) (*models.Appointment, error) {
	if f.getAppointmentFn == nil {
		panic("GetAppointmentByID not configured")
	}
	return f.getAppointmentFn(ctx, id)
}

func (f *fakeRepo) UpdateAppointmentStatus(ctx context.Context, ap *models.Appointment) error {
	f.updateStatusCalls++
	if f.updateStatusFn == nil {
		panic("UpdateAppointmentStatus not configured")
	}
	return f.updateStatusFn(ctx, ap)
}

func (f *fakeRepo) ListAppointments(ctx context.Context, filter domain.ListFilter) ([]models.Appointment, error) {
	if f.listFn == nil {
		panic("ListAppointments not configured")
	}
	return f.listFn(ctx, filter)
}

var _ domain.Repository = (*fakeRepo)(nil)
