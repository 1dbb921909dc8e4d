package medspa

import (
	"context"
	"strings"

	"github.com/serenitylabs/medspa-scheduler/internal/cache"
	"github.com/serenitylabs/medspa-scheduler/internal/httperr"
	"github.com/serenitylabs/medspa-scheduler/internal/models"
	"github.com/serenitylabs/medspa-scheduler/internal/pagination"
	"github.com/serenitylabs/medspa-scheduler/internal/validators"
)

// Repository is the slice of the store the medspa use cases need.
type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Medspa, error)
	List(ctx context.Context, cursor string, limit int) ([]models.Medspa, error)
	Create(ctx context.Context, medspa *models.Medspa) error
}

type UseCases struct {
	repo  Repository
	cache *cache.Client
}

func New(repo Repository, cache *cache.Client) *UseCases {
	return &UseCases{repo: repo, cache: cache}
}

type CreateInput struct {
	Name        string
	Address     string
	PhoneNumber string
	Email       string
}

func (uc *UseCases) Create(ctx context.Context, in CreateInput) (*models.Medspa, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.InvalidRequestError("name is required")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email != "" && !validators.IsEmailValid(email) {
		return nil, httperr.InvalidRequestError("email is not valid")
	}

	phone := strings.TrimSpace(in.PhoneNumber)
	if phone != "" && !validators.IsPhoneValid(phone) {
		return nil, httperr.InvalidRequestError("phone_number is not valid")
	}

	medspa := &models.Medspa{
		Name:        name,
		Address:     strings.TrimSpace(in.Address),
		PhoneNumber: phone,
		Email:       email,
	}
	if err := uc.repo.Create(ctx, medspa); err != nil {
		return nil, err
	}
	return medspa, nil
}

func (uc *UseCases) Get(ctx context.Context, id string) (*models.Medspa, error) {
	var cached models.Medspa
	if uc.cache.GetJSON(ctx, cache.MedspaKey(id), &cached) {
		return &cached, nil
	}

	medspa, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.cache.SetJSON(ctx, cache.MedspaKey(id), medspa, cache.DefaultTTL)
	return medspa, nil
}

func (uc *UseCases) List(ctx context.Context, page pagination.Params) ([]models.Medspa, string, error) {
	rows, err := uc.repo.List(ctx, page.Cursor, page.Limit)
	if err != nil {
		return nil, "", err
	}

	items, nextCursor := pagination.Page(rows, page.Limit, func(m models.Medspa) string {
		return m.ID
	})
	return items, nextCursor, nil
}
