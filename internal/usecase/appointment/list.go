package appointment

import (
	"context"

	domain "github.com/serenitylabs/medspa-scheduler/internal/domain/appointment"
	"github.com/serenitylabs/medspa-scheduler/internal/models"
	"github.com/serenitylabs/medspa-scheduler/internal/pagination"
)

type ListAppointmentsInput struct {
	MedspaID *string
	Status   *domain.Status
	Page     pagination.Params
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]models.Appointment, string, error) {

	// A medspa filter must point at an existing tenant.
	if in.MedspaID != nil {
		if _, err := uc.repo.GetMedspaByID(ctx, *in.MedspaID); err != nil {
			return nil, "", err
		}
	}

	rows, err := uc.repo.ListAppointments(ctx, domain.ListFilter{
		MedspaID: in.MedspaID,
		Status:   in.Status,
		Cursor:   in.Page.Cursor,
		Limit:    in.Page.Limit,
	})
	if err != nil {
		return nil, "", err
	}

	items, nextCursor := pagination.Page(rows, in.Page.Limit, func(a models.Appointment) string {
		return a.ID
	})
	return items, nextCursor, nil
}
