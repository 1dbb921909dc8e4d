package service

import (
	"context"
	"testing"

	"github.com/serenitylabs/medspa-scheduler/internal/httperr"
	"github.com/serenitylabs/medspa-scheduler/internal/models"
	"github.com/serenitylabs/medspa-scheduler/internal/pagination"
)

type fakeRepo struct {
	getByIDFn      func(ctx context.Context, id string) (*models.Service, error)
	listByMedspaFn func(ctx context.Context, medspaID, cursor string, limit int) ([]models.Service, error)
	createFn       func(ctx context.Context, service *models.Service) error
	updateFn       func(ctx context.Context, service *models.Service) error
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	if f.getByIDFn == nil {
		panic("GetByID not configured")
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeRepo) ListByMedspa(ctx context.Context, medspaID, cursor string, limit int) ([]models.Service, error) {
	if f.listByMedspaFn == nil {
		panic("ListByMedspa not configured")
	}
	return f.listByMedspaFn(ctx, medspaID, cursor, limit)
}

func (f *fakeRepo) Create(ctx context.Context, service *models.Service) error {
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, service)
}

func (f *fakeRepo) Update(ctx context.Context, service *models.Service) error {
	if f.updateFn == nil {
		panic("Update not configured")
	}
	return f.updateFn(ctx, service)
}

type fakeMedspas struct {
	known map[string]bool
}

func (f *fakeMedspas) GetByID(ctx context.Context, id string) (*models.Medspa, error) {
	if !f.known[id] {
		return nil, httperr.NotFoundError("medspa not found")
	}
	return &models.Medspa{ID: id}, nil
}

func TestCreate_Success(t *testing.T) {
	var created *models.Service
	uc := New(&fakeRepo{
		createFn: func(ctx context.Context, s *models.Service) error {
			created = s
			return nil
		},
	}, &fakeMedspas{known: map[string]bool{"m1": true}}, nil)

	got, err := uc.Create(context.Background(), "m1", CreateInput{
		Name:     "  Hydrafacial ",
		Price:    12500,
		Duration: 60,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created == nil {
		t.Fatal("service was not persisted")
	}
	if got.Name != "Hydrafacial" {
		t.Fatalf("name = %q", got.Name)
	}
	if got.MedspaID != "m1" {
		t.Fatalf("medspa_id = %q", got.MedspaID)
	}
}

func TestCreate_UnknownMedspa(t *testing.T) {
	uc := New(&fakeRepo{}, &fakeMedspas{}, nil)

	_, err := uc.Create(context.Background(), "ghost", CreateInput{
		Name: "Facial", Price: 100, Duration: 30,
	})
	if !httperr.IsKind(err, httperr.KindNotFound) {
		t.Fatalf("error = %v, want NotFound", err)
	}
}

func TestCreate_Validation(t *testing.T) {
	uc := New(&fakeRepo{}, &fakeMedspas{known: map[string]bool{"m1": true}}, nil)

	cases := []struct {
		name string
		in   CreateInput
	}{
		{"empty name", CreateInput{Name: " ", Price: 100, Duration: 30}},
		{"zero price", CreateInput{Name: "Facial", Price: 0, Duration: 30}},
		{"negative price", CreateInput{Name: "Facial", Price: -5, Duration: 30}},
		{"zero duration", CreateInput{Name: "Facial", Price: 100, Duration: 0}},
	}
	for _, tc := range cases {
		_, err := uc.Create(context.Background(), "m1", tc.in)
		if !httperr.IsKind(err, httperr.KindInvalidRequest) {
			t.Errorf("%s: error = %v, want InvalidRequest", tc.name, err)
		}
	}
}

func TestUpdate_PartialFields(t *testing.T) {
	current := &models.Service{
		ID: "s1", MedspaID: "m1", Name: "Facial", Price: 1000, Duration: 15,
	}

	var updated *models.Service
	uc := New(&fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*models.Service, error) {
			return current, nil
		},
		updateFn: func(ctx context.Context, s *models.Service) error {
			updated = s
			return nil
		},
	}, &fakeMedspas{}, nil)

	price := 2500
	got, err := uc.Update(context.Background(), "s1", UpdateInput{Price: &price})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated == nil {
		t.Fatal("service was not persisted")
	}
	if got.Price != 2500 {
		t.Fatalf("price = %d, want 2500", got.Price)
	}
	// Untouched fields keep their values.
	if got.Name != "Facial" || got.Duration != 15 {
		t.Fatalf("unexpected drift: %+v", got)
	}
}

func TestUpdate_RejectsNonPositive(t *testing.T) {
	uc := New(&fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*models.Service, error) {
			return &models.Service{ID: "s1", Price: 1000, Duration: 15}, nil
		},
	}, &fakeMedspas{}, nil)

	zero := 0
	if _, err := uc.Update(context.Background(), "s1", UpdateInput{Price: &zero}); !httperr.IsKind(err, httperr.KindInvalidRequest) {
		t.Fatalf("price=0: error = %v, want InvalidRequest", err)
	}
	if _, err := uc.Update(context.Background(), "s1", UpdateInput{Duration: &zero}); !httperr.IsKind(err, httperr.KindInvalidRequest) {
		t.Fatalf("duration=0: error = %v, want InvalidRequest", err)
	}
}

func TestListByMedspa_UnknownMedspa(t *testing.T) {
	uc := New(&fakeRepo{}, &fakeMedspas{}, nil)

	_, _, err := uc.ListByMedspa(context.Background(), "ghost", pagination.Params{Limit: 20})
	if !httperr.IsKind(err, httperr.KindNotFound) {
		t.Fatalf("error = %v, want NotFound", err)
	}
}
