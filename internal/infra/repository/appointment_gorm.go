package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/serenitylabs/medspa-scheduler/internal/domain/appointment"
	"github.com/serenitylabs/medspa-scheduler/internal/httperr"
	"github.com/serenitylabs/medspa-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Medspa
// --------------------------------------------------

func (r *AppointmentGormRepository) GetMedspaByID(
	ctx context.Context,
	id string,
) (*models.Medspa, error) {

	var medspa models.Medspa
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&medspa).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFoundError("medspa not found")
		}
		return nil, err
	}
	return &medspa, nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *AppointmentGormRepository) FindServicesByIDs(
	ctx context.Context,
	ids []string,
) ([]models.Service, error) {

	if len(ids) == 0 {
		return nil, nil
	}

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) FindActiveOverlapping(
	ctx context.Context,
	medspaID string,
	start time.Time,
	end time.Time,
	serviceIDs []string,
) ([]string, error) {
	return findActiveOverlapping(r.db.WithContext(ctx), medspaID, start, end, serviceIDs)
}

func findActiveOverlapping(
	db *gorm.DB,
	medspaID string,
	start time.Time,
	end time.Time,
	serviceIDs []string,
) ([]string, error) {

	// Nothing requested, nothing to conflict over.
	if len(serviceIDs) == 0 {
		return nil, nil
	}

	var ids []string
	err := db.
		Model(&models.Appointment{}).
		Distinct("appointments.id").
		Joins("JOIN appointment_services aps ON aps.appointment_id = appointments.id").
		Where("appointments.medspa_id = ?", medspaID).
		Where("appointments.status = ?", string(domain.StatusScheduled)).
		Where("appointments.start_time < ?", end).
		Where("appointments.start_time + make_interval(mins => appointments.total_duration) > ?", start).
		Where("aps.service_id IN ?", serviceIDs).
		Order("appointments.id").
		Pluck("appointments.id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// CreateWithServices inserts the appointment row and its service links in
// one transaction. The per-medspa advisory lock serializes concurrent
// creates for the same tenant, and the overlap check runs again under
// that lock: two racing creates for the same service/time window cannot
// both pass it.
func (r *AppointmentGormRepository) CreateWithServices(
	ctx context.Context,
	ap *models.Appointment,
	serviceIDs []string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(hashtext(?))", ap.MedspaID,
		).Error; err != nil {
			return err
		}

		conflicts, err := findActiveOverlapping(
			tx, ap.MedspaID, ap.StartTime, ap.EndTime(), serviceIDs,
		)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return httperr.ConflictError("one or more services are already booked for this time slot")
		}

		if err := tx.Omit("Services").Create(ap).Error; err != nil {
			return mapPGError(err)
		}

		for _, serviceID := range serviceIDs {
			if err := tx.Exec(
				"INSERT INTO appointment_services (appointment_id, service_id) VALUES (?, ?)",
				ap.ID, serviceID,
			).Error; err != nil {
				return mapPGError(err)
			}
		}

		return nil
	})
}

// --------------------------------------------------
// Appointment (read / state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Where("id = ?", id).
		First(&ap).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFoundError("appointment not found")
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointmentStatus(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Update("status", ap.Status).Error
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Preload("Services")

	if filter.MedspaID != nil {
		q = q.Where("medspa_id = ?", *filter.MedspaID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", string(*filter.Status))
	}
	if filter.Cursor != "" {
		q = q.Where("id > ?", filter.Cursor)
	}

	var rows []models.Appointment
	if err := q.
		Order("id ASC").
		Limit(filter.Limit + 1).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
