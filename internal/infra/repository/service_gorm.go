package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/serenitylabs/medspa-scheduler/internal/httperr"
	"github.com/serenitylabs/medspa-scheduler/internal/models"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&service).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFoundError("service not found")
		}
		return nil, err
	}
	return &service, nil
}

// ListByMedspa returns up to limit+1 rows ordered by id, after the
// cursor (exclusive).
func (r *ServiceGormRepository) ListByMedspa(
	ctx context.Context,
	medspaID string,
	cursor string,
	limit int,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("medspa_id = ?", medspaID)
	if cursor != "" {
		q = q.Where("id > ?", cursor)
	}

	var rows []models.Service
	if err := q.
		Order("id ASC").
		Limit(limit + 1).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ServiceGormRepository) Create(
	ctx context.Context,
	service *models.Service,
) error {
	if err := r.db.WithContext(ctx).Create(service).Error; err != nil {
		return mapPGError(err)
	}
	return nil
}

func (r *ServiceGormRepository) Update(
	ctx context.Context,
	service *models.Service,
) error {
	if err := r.db.WithContext(ctx).Save(service).Error; err != nil {
		return mapPGError(err)
	}
	return nil
}
