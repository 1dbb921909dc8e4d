package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/serenitylabs/medspa-scheduler/internal/httperr"
	"github.com/serenitylabs/medspa-scheduler/internal/models"
)

type MedspaGormRepository struct {
	db *gorm.DB
}

func NewMedspaGormRepository(db *gorm.DB) *MedspaGormRepository {
	return &MedspaGormRepository{db: db}
}

func (r *MedspaGormRepository) GetByID(
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

// List returns up to limit+1 rows ordered by id, after the cursor
// (exclusive).
func (r *MedspaGormRepository) List(
	ctx context.Context,
	cursor string,
	limit int,
) ([]models.Medspa, error) {

	q := r.db.WithContext(ctx).Model(&models.Medspa{})
	if cursor != "" {
		q = q.Where("id > ?", cursor)
	}

	var rows []models.Medspa
	if err := q.
		Order("id ASC").
		Limit(limit + 1).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *MedspaGormRepository) Create(
	ctx context.Context,
	medspa *models.Medspa,
) error {
	if err := r.db.WithContext(ctx).Create(medspa).Error; err != nil {
		return mapPGError(err)
	}
	return nil
}
