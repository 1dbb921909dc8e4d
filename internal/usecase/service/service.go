package service

import (
	"context"
	"strings"

	"github.com/serenitylabs/medspa-scheduler/internal/cache"
	"github.com/serenitylabs/medspa-scheduler/internal/httperr"
	"github.com/serenitylabs/medspa-scheduler/internal/models"
	"github.com/serenitylabs/medspa-scheduler/internal/pagination"
)

// Repository is the slice of the store the offering use cases need.
type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Service, error)
	ListByMedspa(ctx context.Context, medspaID, cursor string, limit int) ([]models.Service, error)
	Create(ctx context.Context, service *models.Service) error
	Update(ctx context.Context, service *models.Service) error
}

// MedspaResolver checks the owning tenant exists before an offering is
// created or listed under it.
type MedspaResolver interface {
	GetByID(ctx context.Context, id string) (*models.Medspa, error)
}

type UseCases struct {
	repo    Repository
	medspas MedspaResolver
	cache   *cache.Client
}

func New(repo Repository, medspas MedspaResolver, cache *cache.Client) *UseCases {
	return &UseCases{repo: repo, medspas: medspas, cache: cache}
}

type CreateInput struct {
	Name        string
	Description string
	Price       int
	Duration    int
}

func (uc *UseCases) Create(ctx context.Context, medspaID string, in CreateInput) (*models.Service, error) {
	medspa, err := uc.medspas.GetByID(ctx, medspaID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.InvalidRequestError("name is required")
	}
	if in.Price <= 0 {
		return nil, httperr.InvalidRequestError("price must be positive")
	}
	if in.Duration <= 0 {
		return nil, httperr.InvalidRequestError("duration must be positive")
	}

	service := &models.Service{
		MedspaID:    medspa.ID,
		Name:        name,
		Description: in.Description,
		Price:       in.Price,
		Duration:    in.Duration,
	}
	if err := uc.repo.Create(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

func (uc *UseCases) Get(ctx context.Context, id string) (*models.Service, error) {
	var cached models.Service
	if uc.cache.GetJSON(ctx, cache.ServiceKey(id), &cached) {
		return &cached, nil
	}

	service, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.cache.SetJSON(ctx, cache.ServiceKey(id), service, cache.DefaultTTL)
	return service, nil
}

func (uc *UseCases) ListByMedspa(
	ctx context.Context,
	medspaID string,
	page pagination.Params,
) ([]models.Service, string, error) {

	medspa, err := uc.medspas.GetByID(ctx, medspaID)
	if err != nil {
		return nil, "", err
	}

	rows, err := uc.repo.ListByMedspa(ctx, medspa.ID, page.Cursor, page.Limit)
	if err != nil {
		return nil, "", err
	}

	items, nextCursor := pagination.Page(rows, page.Limit, func(s models.Service) string {
		return s.ID
	})
	return items, nextCursor, nil
}

// UpdateInput fields are optional; nil means "leave as is". The owning
// medspa is immutable and not updatable here.
type UpdateInput struct {
	Name        *string
	Description *string
	Price       *int
	Duration    *int
}

// Update edits an offering in place. Existing appointments keep their
// frozen totals; only future bookings see the new price/duration.
func (uc *UseCases) Update(ctx context.Context, id string, in UpdateInput) (*models.Service, error) {
	service, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, httperr.InvalidRequestError("name is required")
		}
		service.Name = name
	}
	if in.Description != nil {
		service.Description = *in.Description
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return nil, httperr.InvalidRequestError("price must be positive")
		}
		service.Price = *in.Price
	}
	if in.Duration != nil {
		if *in.Duration <= 0 {
			return nil, httperr.InvalidRequestError("duration must be positive")
		}
		service.Duration = *in.Duration
	}

	if err := uc.repo.Update(ctx, service); err != nil {
		return nil, err
	}

	uc.cache.Delete(ctx, cache.ServiceKey(service.ID))
	return service, nil
}
